package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"talentmatch_backend/internal/logger"
	"talentmatch_backend/internal/services"
	"talentmatch_backend/internal/services/dto"
	"talentmatch_backend/pkg/apperrors"
)

type MatchingHandler struct {
	*BaseHandler
	matchingService services.MatchingService
}

func NewMatchingHandler(base *BaseHandler, matchingService services.MatchingService) *MatchingHandler {
	return &MatchingHandler{
		BaseHandler:     base,
		matchingService: matchingService,
	}
}

func (h *MatchingHandler) RegisterRoutes(r *gin.RouterGroup) {
	matching := r.Group("/matching")
	{
		matching.POST("/jobs", h.MatchJobs)
		matching.GET("/compatibility", h.GetCompatibility)
	}
}

// MatchJobs returns the active listings that strongly match a candidate.
// POST /api/v1/matching/jobs
func (h *MatchingHandler) MatchJobs(c *gin.Context) {
	var req dto.MatchJobsRequest
	// A missing or malformed body and a missing id produce the same
	// client error; the message is part of the API contract.
	if err := c.ShouldBindJSON(&req); err != nil || req.CandidateID == "" {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Candidate ID is required"))
		return
	}

	db := h.GetDB(c)

	resp, err := h.matchingService.MatchJobsForCandidate(db, req.CandidateID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	logger.CtxInfo(c.Request.Context(), "job matching completed",
		"candidate_id", req.CandidateID,
		"total_jobs", resp.TotalJobs,
		"matched_jobs", resp.MatchedJobs,
	)

	c.JSON(http.StatusOK, resp)
}

// GetCompatibility scores one candidate against one listing.
// GET /api/v1/matching/compatibility?candidate_id=...&listing_id=...
func (h *MatchingHandler) GetCompatibility(c *gin.Context) {
	var req dto.CompatibilityRequest
	if !h.BindAndValidateQuery(c, &req) {
		return
	}

	db := h.GetDB(c)

	resp, err := h.matchingService.GetCompatibility(db, req.CandidateID, req.ListingID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
