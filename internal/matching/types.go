// Package matching holds the scoring core: the candidate→job scorer, the
// employer-search scorer and the ranker. Everything here is pure — inputs
// arrive already fetched and normalized, no I/O happens inside.
package matching

// Language describes per-language abilities. A candidate entry is a
// proficiency claim; a listing entry is a requirement.
type Language struct {
	Language string `json:"language"`
	Speak    bool   `json:"speak"`
	Read     bool   `json:"read"`
	Write    bool   `json:"write"`
}

// SalaryKind tags a candidate's salary expectation.
type SalaryKind string

const (
	SalaryExact SalaryKind = "exact"
	SalaryRange SalaryKind = "range"
)

// SalaryExpectation is a tagged union: exact carries Amount, range carries
// Min/Max. A zero Kind (or an exact expectation with Amount 0) means the
// candidate never stated one.
type SalaryExpectation struct {
	Kind   SalaryKind `json:"kind"`
	Amount float64    `json:"amount,omitempty"`
	Min    float64    `json:"min,omitempty"`
	Max    float64    `json:"max,omitempty"`
}

// Candidate is the canonical scoring view of a candidate profile.
type Candidate struct {
	ID              string
	RoleTypes       []string
	EmploymentTypes []string
	LocationTypes   []string
	WorkingHours    []string
	Skills          []string
	Languages       []Language
	Salary          SalaryExpectation
	City            string
	State           string
	Country         string
}

// Listing is the canonical scoring view of a job listing.
type Listing struct {
	ID             string
	RoleType       string
	EmploymentType string
	WorkingHours   string
	Location       string
	SalaryMin      float64
	SalaryMax      float64
	RequiredSkills []string
	OptionalSkills []string
	Languages      []Language
}

// Filters is an employer-initiated candidate search query. Zero salary
// bounds mean "unset". Keywords is accepted on the wire but not scored.
type Filters struct {
	RoleTypes       []string `json:"roleTypes"`
	EmploymentTypes []string `json:"employmentTypes"`
	WorkingHours    []string `json:"workingHours"`
	Location        string   `json:"location"`
	Skills          []string `json:"skills"`
	SalaryMin       float64  `json:"salaryMin"`
	SalaryMax       float64  `json:"salaryMax"`
	Keywords        string   `json:"keywords"`
}

// Result is a candidate→job match outcome.
type Result struct {
	Score   int      `json:"score"`
	Reasons []string `json:"reasons"`
}

// CriterionDetail reports one breakdown criterion of the search scorer.
type CriterionDetail struct {
	Matched bool   `json:"matched"`
	Reason  string `json:"reason"`
}

// SkillsDetail reports the skills criterion of the search scorer.
type SkillsDetail struct {
	Matched       int      `json:"matched"`
	Total         int      `json:"total"`
	MatchedSkills []string `json:"matchedSkills"`
	MissingSkills []string `json:"missingSkills"`
}

// Breakdown is the per-criterion transparency detail of a search match.
type Breakdown struct {
	RoleType       CriterionDetail `json:"roleType"`
	EmploymentType CriterionDetail `json:"employmentType"`
	WorkingHours   CriterionDetail `json:"workingHours"`
	Location       CriterionDetail `json:"location"`
	Salary         CriterionDetail `json:"salary"`
	Skills         SkillsDetail    `json:"skills"`
}

// SearchResult is an employer-search match outcome.
type SearchResult struct {
	Score     int       `json:"score"`
	Reasons   []string  `json:"reasons"`
	Breakdown Breakdown `json:"breakdown"`
}

func contains(set []string, value string) bool {
	for _, s := range set {
		if s == value {
			return true
		}
	}
	return false
}

func containsAll(set []string, values []string) bool {
	for _, v := range values {
		if !contains(set, v) {
			return false
		}
	}
	return true
}
