package matching

import (
	"fmt"
	"math"
	"strings"
)

// Criterion weights for the candidate→job scorer. They sum to 100 and the
// visible percentage depends on them, so treat them as product constants.
const (
	roleTypeWeight       = 25.0
	employmentTypeWeight = 15.0
	locationTypeWeight   = 15.0
	workingHoursWeight   = 10.0
	skillsWeight         = 20.0
	salaryWeight         = 10.0

	languagePointsPerFlag = 1.5
	languageWeightCap     = 5.0

	salaryTolerance = 0.10
)

// ScoreCandidateJob calculates how well a job listing matches a candidate's
// stated preferences (0-100), with one reason per satisfied criterion.
func ScoreCandidateJob(candidate *Candidate, listing *Listing) Result {
	score := 0.0
	reasons := []string{}

	// Role type (25 points)
	if contains(candidate.RoleTypes, listing.RoleType) {
		score += roleTypeWeight
		reasons = append(reasons, fmt.Sprintf("Role type matches your preference: %s", listing.RoleType))
	}

	// Employment type (15 points)
	if contains(candidate.EmploymentTypes, listing.EmploymentType) {
		score += employmentTypeWeight
		reasons = append(reasons, fmt.Sprintf("Employment type matches your preference: %s", listing.EmploymentType))
	}

	// Location (15 points). The listing's location string is checked
	// against the candidate's preferred location types set.
	if contains(candidate.LocationTypes, listing.Location) {
		score += locationTypeWeight
		reasons = append(reasons, fmt.Sprintf("Location matches your preference: %s", listing.Location))
	}

	// Working hours (10 points)
	if contains(candidate.WorkingHours, listing.WorkingHours) {
		score += workingHoursWeight
		reasons = append(reasons, fmt.Sprintf("Working hours match your preference: %s", listing.WorkingHours))
	}

	// Skills (20 points, proportional over required + optional)
	matched, total := skillOverlap(candidate.Skills, listing)
	if total > 0 && matched > 0 {
		score += float64(matched) / float64(total) * skillsWeight
		reasons = append(reasons, fmt.Sprintf("Matches %d of %d skills", matched, total))
	}

	// Salary (10 points, no partial credit)
	if salaryMatches(candidate.Salary, listing) {
		score += salaryWeight
		reasons = append(reasons, "Salary is within your expected range")
	}

	// Languages (up to 5 points, 1.5 per jointly required+claimed flag)
	if languagePoints := languageOverlap(candidate.Languages, listing.Languages); languagePoints > 0 {
		score += languagePoints
		reasons = append(reasons, "Meets language requirements")
	}

	return Result{
		Score:   int(math.Round(score)),
		Reasons: reasons,
	}
}

// skillOverlap counts how many of the listing's skills (required and
// optional, deduplicated) appear in the candidate's skill set.
func skillOverlap(candidateSkills []string, listing *Listing) (matched, total int) {
	seen := map[string]bool{}
	for _, skill := range listing.RequiredSkills {
		seen[skill] = true
	}
	for _, skill := range listing.OptionalSkills {
		seen[skill] = true
	}

	for skill := range seen {
		total++
		if contains(candidateSkills, skill) {
			matched++
		}
	}
	return matched, total
}

// salaryMatches compares the listing's midpoint salary against the
// candidate's expectation: within 10% of an exact figure, or inside the
// expected range. An exact expectation of 0 means none was stated.
func salaryMatches(expectation SalaryExpectation, listing *Listing) bool {
	midpoint := (listing.SalaryMin + listing.SalaryMax) / 2

	switch expectation.Kind {
	case SalaryExact:
		if expectation.Amount <= 0 {
			return false
		}
		return math.Abs(midpoint-expectation.Amount)/expectation.Amount <= salaryTolerance
	case SalaryRange:
		return midpoint >= expectation.Min && midpoint <= expectation.Max
	default:
		return false
	}
}

// languageOverlap awards 1.5 points per ability flag that the listing
// requires and the candidate claims, capped at 5.
func languageOverlap(claims, requirements []Language) float64 {
	matchedFlags := 0

	for _, req := range requirements {
		for _, claim := range claims {
			if !strings.EqualFold(req.Language, claim.Language) {
				continue
			}
			if req.Speak && claim.Speak {
				matchedFlags++
			}
			if req.Read && claim.Read {
				matchedFlags++
			}
			if req.Write && claim.Write {
				matchedFlags++
			}
			break
		}
	}

	points := float64(matchedFlags) * languagePointsPerFlag
	if points > languageWeightCap {
		points = languageWeightCap
	}
	return points
}
