package services

import (
	"gorm.io/gorm"

	"talentmatch_backend/internal/matching"
	"talentmatch_backend/internal/repositories"
	"talentmatch_backend/internal/services/dto"
	"talentmatch_backend/pkg/apperrors"
)

// minSearchScore keeps any non-zero match in the results.
const minSearchScore = 1

type SearchService interface {
	SearchCandidates(db *gorm.DB, filters *matching.Filters) (*dto.SearchCandidatesResponse, error)
}

type searchService struct {
	profileRepo repositories.ProfileRepository
}

func NewSearchService(profileRepo repositories.ProfileRepository) SearchService {
	return &searchService{
		profileRepo: profileRepo,
	}
}

// SearchCandidates gates the discoverable pool on the hard filters, scores
// the survivors and returns them best first. An empty pool or a pool with
// no survivors is a valid empty result, not an error.
func (s *searchService) SearchCandidates(db *gorm.DB, filters *matching.Filters) (*dto.SearchCandidatesResponse, error) {
	profiles, err := s.profileRepo.FindDiscoverableCandidates(db)
	if err != nil {
		return nil, apperrors.CandidateFetchFailed(err)
	}

	results := make([]dto.CandidateResult, 0, len(profiles))
	for _, profile := range profiles {
		candidate := profile.Matching()
		if !matching.MatchesFilters(filters, candidate) {
			continue
		}

		result := matching.ScoreCandidateSearch(filters, candidate)
		results = append(results, dto.CandidateResult{
			Candidate:    profile,
			MatchScore:   result.Score,
			MatchReasons: result.Reasons,
			Breakdown:    result.Breakdown,
		})
	}

	return &dto.SearchCandidatesResponse{
		Results: matching.Rank(results, minSearchScore),
	}, nil
}
