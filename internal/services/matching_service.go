package services

import (
	"errors"

	"gorm.io/gorm"

	"talentmatch_backend/internal/matching"
	"talentmatch_backend/internal/repositories"
	"talentmatch_backend/internal/services/dto"
	"talentmatch_backend/pkg/apperrors"
)

// minJobMatchScore is the product cutoff: only listings scoring at least
// this appear in a candidate's matches.
const minJobMatchScore = 90

type MatchingService interface {
	MatchJobsForCandidate(db *gorm.DB, candidateID string) (*dto.MatchJobsResponse, error)
	GetCompatibility(db *gorm.DB, candidateID, listingID string) (*dto.CompatibilityResult, error)
}

type matchingService struct {
	profileRepo repositories.ProfileRepository
	listingRepo repositories.ListingRepository
}

func NewMatchingService(
	profileRepo repositories.ProfileRepository,
	listingRepo repositories.ListingRepository,
) MatchingService {
	return &matchingService{
		profileRepo: profileRepo,
		listingRepo: listingRepo,
	}
}

// MatchJobsForCandidate scores every active listing against the
// candidate's preferences and returns the strong matches, best first.
func (s *matchingService) MatchJobsForCandidate(db *gorm.DB, candidateID string) (*dto.MatchJobsResponse, error) {
	profile, err := s.profileRepo.FindCandidateByID(db, candidateID)
	if err != nil {
		// Any lookup failure reads as a missing profile to the caller.
		return nil, apperrors.CandidateNotFound(err)
	}

	listings, err := s.listingRepo.FindActiveListings(db)
	if err != nil {
		return nil, apperrors.ListingFetchFailed(err)
	}

	candidate := profile.Matching()

	matches := make([]dto.JobMatch, 0, len(listings))
	for _, listing := range listings {
		result := matching.ScoreCandidateJob(candidate, listing.Matching())
		matches = append(matches, dto.JobMatch{
			Job:     listing,
			Score:   result.Score,
			Reasons: result.Reasons,
		})
	}

	ranked := matching.Rank(matches, minJobMatchScore)

	return &dto.MatchJobsResponse{
		Matches:     ranked,
		TotalJobs:   len(listings),
		MatchedJobs: len(ranked),
	}, nil
}

// GetCompatibility scores a single candidate/listing pair with no
// threshold, for the profile page "how well do I fit" view.
func (s *matchingService) GetCompatibility(db *gorm.DB, candidateID, listingID string) (*dto.CompatibilityResult, error) {
	profile, err := s.profileRepo.FindCandidateByID(db, candidateID)
	if err != nil {
		return nil, apperrors.CandidateNotFound(err)
	}

	listing, err := s.listingRepo.FindListingByID(db, listingID)
	if err != nil {
		if errors.Is(err, repositories.ErrListingNotFound) {
			return nil, apperrors.ListingNotFound(err)
		}
		return nil, apperrors.ListingFetchFailed(err)
	}

	result := matching.ScoreCandidateJob(profile.Matching(), listing.Matching())

	return &dto.CompatibilityResult{
		CandidateID: candidateID,
		ListingID:   listingID,
		Score:       result.Score,
		Reasons:     result.Reasons,
	}, nil
}
