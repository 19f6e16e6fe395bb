package repositories

import (
	"errors"

	"gorm.io/gorm"

	"talentmatch_backend/internal/models"
)

var ErrCandidateNotFound = errors.New("candidate profile not found")

type ProfileRepository interface {
	FindCandidateByID(db *gorm.DB, id string) (*models.CandidateProfile, error)
	FindDiscoverableCandidates(db *gorm.DB) ([]models.CandidateProfile, error)
}

type profileRepository struct{}

func NewProfileRepository() ProfileRepository {
	return &profileRepository{}
}

func (r *profileRepository) FindCandidateByID(db *gorm.DB, id string) (*models.CandidateProfile, error) {
	var profile models.CandidateProfile
	err := db.First(&profile, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCandidateNotFound
		}
		return nil, err
	}
	return &profile, nil
}

// FindDiscoverableCandidates returns the searchable pool: profiles that
// opted into discovery and are open for work.
func (r *profileRepository) FindDiscoverableCandidates(db *gorm.DB) ([]models.CandidateProfile, error) {
	var profiles []models.CandidateProfile
	err := db.
		Where("discoverable = ? AND open_for_work = ?", true, true).
		Order("created_at ASC").
		Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}
