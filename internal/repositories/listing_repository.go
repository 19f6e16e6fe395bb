package repositories

import (
	"errors"

	"gorm.io/gorm"

	"talentmatch_backend/internal/models"
)

var ErrListingNotFound = errors.New("job listing not found")

type ListingRepository interface {
	FindListingByID(db *gorm.DB, id string) (*models.JobListing, error)
	FindActiveListings(db *gorm.DB) ([]models.JobListing, error)
}

type listingRepository struct{}

func NewListingRepository() ListingRepository {
	return &listingRepository{}
}

func (r *listingRepository) FindListingByID(db *gorm.DB, id string) (*models.JobListing, error) {
	var listing models.JobListing
	err := db.First(&listing, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrListingNotFound
		}
		return nil, err
	}
	return &listing, nil
}

func (r *listingRepository) FindActiveListings(db *gorm.DB) ([]models.JobListing, error) {
	var listings []models.JobListing
	err := db.
		Where("status = ?", models.ListingStatusActive).
		Order("created_at ASC").
		Find(&listings).Error
	if err != nil {
		return nil, err
	}
	return listings, nil
}
