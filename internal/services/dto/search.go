package dto

import (
	"talentmatch_backend/internal/matching"
	"talentmatch_backend/internal/models"
)

type SearchCandidatesRequest struct {
	Filters *matching.Filters `json:"filters" validate:"required"`
}

// CandidateResult is one scored candidate, carrying the full profile.
type CandidateResult struct {
	Candidate    models.CandidateProfile `json:"candidate"`
	MatchScore   int                     `json:"matchScore"`
	MatchReasons []string                `json:"matchReasons"`
	Breakdown    matching.Breakdown      `json:"breakdown"`
}

func (r CandidateResult) RankScore() int { return r.MatchScore }

type SearchCandidatesResponse struct {
	Results []CandidateResult `json:"results"`
}
