package apperrors

import (
	"github.com/gin-gonic/gin"

	"talentmatch_backend/internal/logger"
)

// ErrorResponse is the wire shape for every error the API returns.
type ErrorResponse struct {
	Error   string      `json:"error"`
	Details interface{} `json:"details,omitempty"`
}

// HandleError maps any error to an HTTP response. Unknown errors become a
// generic 500 so internals never leak beyond the details field.
func HandleError(c *gin.Context, err error) {
	appErr, ok := AsAppError(err)
	if !ok {
		appErr = NewInternalError(err)
	}

	if appErr.HTTPCode >= 500 {
		logger.CtxWithError(c.Request.Context(), "request failed", err,
			"code", string(appErr.Code),
			"domain", appErr.Domain,
		)
	}

	c.JSON(appErr.HTTPCode, ErrorResponse{
		Error:   appErr.Message,
		Details: appErr.Details,
	})
}
