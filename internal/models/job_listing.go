package models

import (
	"github.com/lib/pq"
	"gorm.io/datatypes"

	"talentmatch_backend/internal/matching"
	"talentmatch_backend/internal/normalize"
)

// Listing lifecycle statuses. Only active listings are matched.
const (
	ListingStatusDraft  = "draft"
	ListingStatusActive = "active"
	ListingStatusClosed = "closed"
)

type JobListing struct {
	BaseModel
	EmployerID  string `gorm:"type:uuid;index" json:"employer_id"`
	Title       string `json:"title"`
	Description string `json:"description"`

	RoleType       string `json:"role_type"`
	EmploymentType string `json:"employment_type"`
	WorkingHours   string `json:"working_hours"`
	Location       string `json:"location"`

	// Salary is always stored as a band; an exact posting has min == max.
	SalaryMin float64 `json:"salary_min"`
	SalaryMax float64 `json:"salary_max"`

	RequiredSkills pq.StringArray `gorm:"type:text[]" json:"required_skills"`
	OptionalSkills pq.StringArray `gorm:"type:text[]" json:"optional_skills"`
	Languages      datatypes.JSON `gorm:"type:jsonb" json:"languages"`

	Status string `gorm:"default:draft;index" json:"status"`
}

func (l *JobListing) GetLanguages() []matching.Language {
	var langs []matching.Language
	if normalize.Decode([]byte(l.Languages), &langs) && langs != nil {
		return langs
	}
	return []matching.Language{}
}

// Matching builds the canonical scoring view of this listing.
func (l *JobListing) Matching() *matching.Listing {
	return &matching.Listing{
		ID:             l.ID,
		RoleType:       l.RoleType,
		EmploymentType: l.EmploymentType,
		WorkingHours:   l.WorkingHours,
		Location:       l.Location,
		SalaryMin:      l.SalaryMin,
		SalaryMax:      l.SalaryMax,
		RequiredSkills: append([]string{}, l.RequiredSkills...),
		OptionalSkills: append([]string{}, l.OptionalSkills...),
		Languages:      l.GetLanguages(),
	}
}
