package models

import (
	"gorm.io/datatypes"

	"talentmatch_backend/internal/matching"
	"talentmatch_backend/internal/normalize"
)

// CandidateProfile is a candidate's stored profile. The preference fields
// are jsonb because the intake layer is schema-less: values may arrive as
// native arrays/objects or as JSON-encoded strings. Always read them
// through the getters, which normalize and never fail.
type CandidateProfile struct {
	BaseModel
	UserID   string `gorm:"type:uuid;index" json:"user_id"`
	FullName string `json:"full_name"`
	Summary  string `json:"summary"`

	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`

	PreferredRoleTypes       datatypes.JSON `gorm:"type:jsonb" json:"preferred_role_types"`
	PreferredEmploymentTypes datatypes.JSON `gorm:"type:jsonb" json:"preferred_employment_types"`
	PreferredLocationTypes   datatypes.JSON `gorm:"type:jsonb" json:"preferred_location_types"`
	PreferredWorkingHours    datatypes.JSON `gorm:"type:jsonb" json:"preferred_working_hours"`
	Skills                   datatypes.JSON `gorm:"type:jsonb" json:"skills"`
	Languages                datatypes.JSON `gorm:"type:jsonb" json:"languages"`
	SalaryExpectation        datatypes.JSON `gorm:"type:jsonb" json:"salary_expectation"`

	Discoverable bool `gorm:"default:false" json:"discoverable"`
	OpenForWork  bool `gorm:"default:false" json:"open_for_work"`
}

func (p *CandidateProfile) GetPreferredRoleTypes() []string {
	return normalize.Strings([]byte(p.PreferredRoleTypes))
}

func (p *CandidateProfile) GetPreferredEmploymentTypes() []string {
	return normalize.Strings([]byte(p.PreferredEmploymentTypes))
}

func (p *CandidateProfile) GetPreferredLocationTypes() []string {
	return normalize.Strings([]byte(p.PreferredLocationTypes))
}

func (p *CandidateProfile) GetPreferredWorkingHours() []string {
	return normalize.Strings([]byte(p.PreferredWorkingHours))
}

func (p *CandidateProfile) GetSkills() []string {
	return normalize.Strings([]byte(p.Skills))
}

func (p *CandidateProfile) GetLanguages() []matching.Language {
	var langs []matching.Language
	if normalize.Decode([]byte(p.Languages), &langs) && langs != nil {
		return langs
	}
	return []matching.Language{}
}

func (p *CandidateProfile) GetSalaryExpectation() matching.SalaryExpectation {
	var expectation matching.SalaryExpectation
	if normalize.Decode([]byte(p.SalaryExpectation), &expectation) {
		return expectation
	}
	return matching.SalaryExpectation{}
}

// Matching builds the canonical scoring view of this profile.
func (p *CandidateProfile) Matching() *matching.Candidate {
	return &matching.Candidate{
		ID:              p.ID,
		RoleTypes:       p.GetPreferredRoleTypes(),
		EmploymentTypes: p.GetPreferredEmploymentTypes(),
		LocationTypes:   p.GetPreferredLocationTypes(),
		WorkingHours:    p.GetPreferredWorkingHours(),
		Skills:          p.GetSkills(),
		Languages:       p.GetLanguages(),
		Salary:          p.GetSalaryExpectation(),
		City:            p.City,
		State:           p.State,
		Country:         p.Country,
	}
}
