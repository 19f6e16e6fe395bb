package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"talentmatch_backend/internal/logger"
	"talentmatch_backend/internal/services"
	"talentmatch_backend/internal/services/dto"
)

type SearchHandler struct {
	*BaseHandler
	searchService services.SearchService
}

func NewSearchHandler(base *BaseHandler, searchService services.SearchService) *SearchHandler {
	return &SearchHandler{
		BaseHandler:   base,
		searchService: searchService,
	}
}

func (h *SearchHandler) RegisterRoutes(r *gin.RouterGroup) {
	search := r.Group("/search")
	{
		search.POST("/candidates", h.SearchCandidates)
	}
}

// SearchCandidates runs an employer's filter query over the discoverable
// candidate pool.
// POST /api/v1/search/candidates
func (h *SearchHandler) SearchCandidates(c *gin.Context) {
	var req dto.SearchCandidatesRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	resp, err := h.searchService.SearchCandidates(db, req.Filters)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	logger.CtxInfo(c.Request.Context(), "candidate search completed",
		"results", len(resp.Results),
	)

	c.JSON(http.StatusOK, resp)
}
