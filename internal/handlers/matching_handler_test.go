package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"talentmatch_backend/internal/matching"
	"talentmatch_backend/internal/middleware"
	"talentmatch_backend/internal/models"
	"talentmatch_backend/internal/services/dto"
	"talentmatch_backend/internal/validator"
	"talentmatch_backend/pkg/apperrors"
)

type stubMatchingService struct {
	matchResp *dto.MatchJobsResponse
	compat    *dto.CompatibilityResult
	err       error
}

func (s *stubMatchingService) MatchJobsForCandidate(db *gorm.DB, candidateID string) (*dto.MatchJobsResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.matchResp, nil
}

func (s *stubMatchingService) GetCompatibility(db *gorm.DB, candidateID, listingID string) (*dto.CompatibilityResult, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.compat, nil
}

type stubSearchService struct {
	resp *dto.SearchCandidatesResponse
	err  error
}

func (s *stubSearchService) SearchCandidates(db *gorm.DB, filters *matching.Filters) (*dto.SearchCandidatesResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.resp, nil
}

func newTestRouter(matchingSvc *stubMatchingService, searchSvc *stubSearchService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.DBMiddleware(&gorm.DB{}))

	base := NewBaseHandler(validator.New())
	api := router.Group("/api/v1")
	if matchingSvc != nil {
		NewMatchingHandler(base, matchingSvc).RegisterRoutes(api)
	}
	if searchSvc != nil {
		NewSearchHandler(base, searchSvc).RegisterRoutes(api)
	}
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	return rec, decoded
}

func TestMatchJobsHandler(t *testing.T) {
	t.Run("missing candidate id is a 400 with the contract message", func(t *testing.T) {
		router := newTestRouter(&stubMatchingService{}, nil)

		for _, body := range []string{`{}`, `{"candidateId":""}`, `not json`} {
			rec, decoded := doJSON(t, router, http.MethodPost, "/api/v1/matching/jobs", body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, "Candidate ID is required", decoded["error"])
		}
	})

	t.Run("unknown candidate is a 404 with details", func(t *testing.T) {
		router := newTestRouter(&stubMatchingService{
			err: apperrors.CandidateNotFound(errors.New("no rows in result set")),
		}, nil)

		rec, decoded := doJSON(t, router, http.MethodPost, "/api/v1/matching/jobs", `{"candidateId":"ghost"}`)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Candidate profile not found", decoded["error"])
		assert.Equal(t, "no rows in result set", decoded["details"])
	})

	t.Run("successful match uses the camelCase contract", func(t *testing.T) {
		router := newTestRouter(&stubMatchingService{
			matchResp: &dto.MatchJobsResponse{
				Matches: []dto.JobMatch{{
					Job:     models.JobListing{Title: "Backend Engineer"},
					Score:   95,
					Reasons: []string{"Role type matches your preference: Engineer"},
				}},
				TotalJobs:   3,
				MatchedJobs: 1,
			},
		}, nil)

		rec, decoded := doJSON(t, router, http.MethodPost, "/api/v1/matching/jobs", `{"candidateId":"cand-1"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, float64(3), decoded["totalJobs"])
		assert.Equal(t, float64(1), decoded["matchedJobs"])

		matches, ok := decoded["matches"].([]interface{})
		require.True(t, ok)
		require.Len(t, matches, 1)
		match := matches[0].(map[string]interface{})
		assert.Equal(t, float64(95), match["score"])
	})

	t.Run("listing fetch failure is a 500", func(t *testing.T) {
		router := newTestRouter(&stubMatchingService{
			err: apperrors.ListingFetchFailed(errors.New("connection refused")),
		}, nil)

		rec, decoded := doJSON(t, router, http.MethodPost, "/api/v1/matching/jobs", `{"candidateId":"cand-1"}`)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "Failed to fetch job listings", decoded["error"])
	})
}

func TestGetCompatibilityHandler(t *testing.T) {
	t.Run("both query params are required", func(t *testing.T) {
		router := newTestRouter(&stubMatchingService{}, nil)

		rec, decoded := doJSON(t, router, http.MethodGet, "/api/v1/matching/compatibility?candidate_id=cand-1", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Validation failed", decoded["error"])
		details := decoded["details"].(map[string]interface{})
		assert.Contains(t, details, "listing_id")
	})

	t.Run("returns the pair score", func(t *testing.T) {
		router := newTestRouter(&stubMatchingService{
			compat: &dto.CompatibilityResult{
				CandidateID: "cand-1",
				ListingID:   "listing-1",
				Score:       42,
				Reasons:     []string{"Matches 1 of 2 skills"},
			},
		}, nil)

		rec, decoded := doJSON(t, router, http.MethodGet, "/api/v1/matching/compatibility?candidate_id=cand-1&listing_id=listing-1", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, float64(42), decoded["score"])
		assert.Equal(t, "cand-1", decoded["candidateId"])
	})
}
