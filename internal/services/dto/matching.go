package dto

import (
	"talentmatch_backend/internal/models"
)

// Wire names are camelCase; the frontend contract depends on them.

type MatchJobsRequest struct {
	CandidateID string `json:"candidateId" validate:"required"`
}

// JobMatch is one scored listing, carrying the full listing record.
type JobMatch struct {
	Job     models.JobListing `json:"job"`
	Score   int               `json:"score"`
	Reasons []string          `json:"reasons"`
}

func (m JobMatch) RankScore() int { return m.Score }

type MatchJobsResponse struct {
	Matches     []JobMatch `json:"matches"`
	TotalJobs   int        `json:"totalJobs"`
	MatchedJobs int        `json:"matchedJobs"`
}

type CompatibilityRequest struct {
	CandidateID string `form:"candidate_id" json:"candidate_id" validate:"required"`
	ListingID   string `form:"listing_id" json:"listing_id" validate:"required"`
}

// CompatibilityResult is a single candidate/listing pair score with no
// threshold applied.
type CompatibilityResult struct {
	CandidateID string   `json:"candidateId"`
	ListingID   string   `json:"listingId"`
	Score       int      `json:"score"`
	Reasons     []string `json:"reasons"`
}
