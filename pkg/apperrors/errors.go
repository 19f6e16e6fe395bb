package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is the application-level error carried from services up to the
// HTTP layer. Message and Details end up on the wire, Err stays internal.
type AppError struct {
	Code     ErrorCode
	Domain   string
	Message  string
	Details  interface{}
	Err      error
	HTTPCode int
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func (e *AppError) WithDetails(details interface{}) *AppError {
	e.Details = details
	return e
}

func New(code ErrorCode, domain, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Domain:   domain,
		Message:  message,
		HTTPCode: httpCode,
	}
}

func Wrap(err error, code ErrorCode, domain, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Domain:   domain,
		Message:  message,
		Err:      err,
		HTTPCode: httpCode,
	}
}

// AsAppError unwraps err looking for an *AppError anywhere in the chain.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

func NewBadRequestError(message string) *AppError {
	return New(CodeValidationFailed, "request", message, http.StatusBadRequest)
}

// ValidationError carries the per-field messages of a failed validation.
func ValidationError(fields map[string]string) *AppError {
	return New(CodeValidationFailed, "request", "Validation failed", http.StatusBadRequest).WithDetails(fields)
}

func NewInternalError(err error) *AppError {
	appErr := Wrap(err, CodeInternalError, "system", "Internal server error", http.StatusInternalServerError)
	if err != nil {
		appErr.Details = err.Error()
	}
	return appErr
}
