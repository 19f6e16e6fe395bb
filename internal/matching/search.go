package matching

import (
	"fmt"
	"math"
	"strings"
)

// Soft-criterion points for the employer search scorer. The denominator
// (40 + 10 = 50) is what turns raw points into the percentage candidates
// see, so it must not drift when criteria change.
const (
	searchSkillsPoints   = 40.0
	searchLocationPoints = 10.0
	searchMaxPoints      = searchSkillsPoints + searchLocationPoints
)

// MatchesFilters applies the hard gates: every role type, employment type
// and working-hours value the employer requested must be present in the
// candidate's preference set. Empty categories impose no constraint.
// Candidates failing a gate never reach scoring.
func MatchesFilters(filters *Filters, candidate *Candidate) bool {
	if !containsAll(candidate.RoleTypes, filters.RoleTypes) {
		return false
	}
	if !containsAll(candidate.EmploymentTypes, filters.EmploymentTypes) {
		return false
	}
	if !containsAll(candidate.WorkingHours, filters.WorkingHours) {
		return false
	}
	return true
}

// ScoreCandidateSearch computes the soft score (0-100) and per-criterion
// breakdown for a candidate that already passed the hard gates.
func ScoreCandidateSearch(filters *Filters, candidate *Candidate) SearchResult {
	score := 0.0
	reasons := []string{}
	breakdown := Breakdown{}

	// Gated criteria contribute no points here but still populate the
	// breakdown for transparency.
	breakdown.RoleType = gateDetail("role type", filters.RoleTypes, candidate.RoleTypes)
	breakdown.EmploymentType = gateDetail("employment type", filters.EmploymentTypes, candidate.EmploymentTypes)
	breakdown.WorkingHours = gateDetail("working hours", filters.WorkingHours, candidate.WorkingHours)

	// Skills (40 points, proportional to requested skills matched)
	skills := skillsDetail(filters.Skills, candidate.Skills)
	breakdown.Skills = skills
	if skills.Total == 0 {
		score += searchSkillsPoints
	} else if skills.Matched > 0 {
		score += float64(skills.Matched) / float64(skills.Total) * searchSkillsPoints
		reasons = append(reasons, fmt.Sprintf("Matches %d of %d requested skills", skills.Matched, skills.Total))
	}

	// Location (10 points)
	if filters.Location == "" {
		score += searchLocationPoints
		breakdown.Location = CriterionDetail{Matched: true, Reason: "No location requested"}
	} else if locationMatches(filters.Location, candidate) {
		score += searchLocationPoints
		breakdown.Location = CriterionDetail{Matched: true, Reason: fmt.Sprintf("Located in %s", filters.Location)}
		reasons = append(reasons, fmt.Sprintf("Located in %s", filters.Location))
	} else {
		breakdown.Location = CriterionDetail{Matched: false, Reason: "Outside the requested location"}
	}

	// Salary is informational only: it can match and produce a reason but
	// never contributes points or enters the denominator.
	if salaryOverlaps(filters, candidate.Salary) {
		breakdown.Salary = CriterionDetail{Matched: true, Reason: "Salary expectation within the requested range"}
		reasons = append(reasons, "Salary expectation within the requested range")
	} else {
		breakdown.Salary = CriterionDetail{Matched: false, Reason: "Salary expectation not compared"}
	}

	return SearchResult{
		Score:     int(math.Round(score / searchMaxPoints * 100)),
		Reasons:   reasons,
		Breakdown: breakdown,
	}
}

func gateDetail(label string, requested, preferred []string) CriterionDetail {
	if len(requested) == 0 {
		return CriterionDetail{Matched: true, Reason: fmt.Sprintf("No %s requested", label)}
	}
	if containsAll(preferred, requested) {
		return CriterionDetail{Matched: true, Reason: fmt.Sprintf("Preferred %s includes all requested values", label)}
	}
	return CriterionDetail{Matched: false, Reason: fmt.Sprintf("Missing requested %s", label)}
}

// skillsDetail matches each requested skill against the candidate's skills
// by case-insensitive substring in either direction.
func skillsDetail(requested, candidateSkills []string) SkillsDetail {
	detail := SkillsDetail{
		Total:         len(requested),
		MatchedSkills: []string{},
		MissingSkills: []string{},
	}

	for _, want := range requested {
		found := false
		for _, have := range candidateSkills {
			if fuzzyContains(want, have) {
				found = true
				break
			}
		}
		if found {
			detail.Matched++
			detail.MatchedSkills = append(detail.MatchedSkills, want)
		} else {
			detail.MissingSkills = append(detail.MissingSkills, want)
		}
	}

	return detail
}

func locationMatches(requested string, candidate *Candidate) bool {
	location := strings.TrimSpace(strings.Join([]string{candidate.City, candidate.State, candidate.Country}, " "))
	if location == "" {
		return false
	}
	return fuzzyContains(requested, location)
}

// salaryOverlaps checks the candidate's expectation against the requested
// band. Both filter bounds must be set; a zero bound means no request.
func salaryOverlaps(filters *Filters, expectation SalaryExpectation) bool {
	if filters.SalaryMin <= 0 || filters.SalaryMax <= 0 {
		return false
	}

	switch expectation.Kind {
	case SalaryExact:
		return expectation.Amount >= filters.SalaryMin && expectation.Amount <= filters.SalaryMax
	case SalaryRange:
		return expectation.Min <= filters.SalaryMax && filters.SalaryMin <= expectation.Max
	default:
		return false
	}
}

// fuzzyContains reports whether either string contains the other,
// case-insensitively.
func fuzzyContains(a, b string) bool {
	la, lb := strings.ToLower(a), strings.ToLower(b)
	return strings.Contains(la, lb) || strings.Contains(lb, la)
}
