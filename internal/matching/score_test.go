package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreCandidateJob(t *testing.T) {
	t.Run("role employment and salary match", func(t *testing.T) {
		candidate := &Candidate{
			RoleTypes:       []string{"Engineer"},
			EmploymentTypes: []string{"Permanent"},
			Salary:          SalaryExpectation{Kind: SalaryExact, Amount: 45000},
		}
		listing := &Listing{
			RoleType:       "Engineer",
			EmploymentType: "Permanent",
			WorkingHours:   "Full-time",
			SalaryMin:      40000,
			SalaryMax:      50000,
		}

		result := ScoreCandidateJob(candidate, listing)

		assert.Equal(t, 50, result.Score)
		assert.Equal(t, []string{
			"Role type matches your preference: Engineer",
			"Employment type matches your preference: Permanent",
			"Salary is within your expected range",
		}, result.Reasons)
	})

	t.Run("skills are proportional over required and optional", func(t *testing.T) {
		candidate := &Candidate{Skills: []string{"Python", "SQL"}}
		listing := &Listing{RequiredSkills: []string{"Python", "SQL", "Docker"}}

		result := ScoreCandidateJob(candidate, listing)

		assert.Equal(t, 13, result.Score)
		assert.Equal(t, []string{"Matches 2 of 3 skills"}, result.Reasons)
	})

	t.Run("listing with no skills contributes nothing", func(t *testing.T) {
		candidate := &Candidate{Skills: []string{"Python"}}
		listing := &Listing{}

		result := ScoreCandidateJob(candidate, listing)

		assert.Equal(t, 0, result.Score)
		assert.Empty(t, result.Reasons)
	})

	t.Run("salary range expectation uses the listing midpoint", func(t *testing.T) {
		candidate := &Candidate{
			Salary: SalaryExpectation{Kind: SalaryRange, Min: 40000, Max: 50000},
		}

		inside := ScoreCandidateJob(candidate, &Listing{SalaryMin: 42000, SalaryMax: 48000})
		assert.Equal(t, 10, inside.Score)

		outside := ScoreCandidateJob(candidate, &Listing{SalaryMin: 30000, SalaryMax: 35000})
		assert.Equal(t, 0, outside.Score)
		assert.Empty(t, outside.Reasons)
	})

	t.Run("exact salary far from midpoint contributes nothing", func(t *testing.T) {
		candidate := &Candidate{
			Salary: SalaryExpectation{Kind: SalaryExact, Amount: 50000},
		}
		listing := &Listing{SalaryMin: 30000, SalaryMax: 35000}

		result := ScoreCandidateJob(candidate, listing)

		assert.Equal(t, 0, result.Score)
		assert.Empty(t, result.Reasons)
	})

	t.Run("exact salary of zero is no expectation", func(t *testing.T) {
		candidate := &Candidate{Salary: SalaryExpectation{Kind: SalaryExact}}
		listing := &Listing{}

		result := ScoreCandidateJob(candidate, listing)

		assert.Equal(t, 0, result.Score)
	})

	t.Run("language flags earn 1.5 points each", func(t *testing.T) {
		candidate := &Candidate{
			Languages: []Language{{Language: "english", Speak: true, Read: true, Write: true}},
		}
		listing := &Listing{
			Languages: []Language{{Language: "English", Speak: true, Read: true}},
		}

		result := ScoreCandidateJob(candidate, listing)

		assert.Equal(t, 3, result.Score)
		assert.Equal(t, []string{"Meets language requirements"}, result.Reasons)
	})

	t.Run("language contribution is capped at 5", func(t *testing.T) {
		candidate := &Candidate{
			Languages: []Language{
				{Language: "English", Speak: true, Read: true, Write: true},
				{Language: "German", Speak: true, Read: true, Write: true},
			},
		}
		listing := &Listing{
			Languages: []Language{
				{Language: "English", Speak: true, Read: true, Write: true},
				{Language: "German", Speak: true, Read: true, Write: true},
			},
		}

		result := ScoreCandidateJob(candidate, listing)

		assert.Equal(t, 5, result.Score)
	})

	t.Run("full match reaches 100", func(t *testing.T) {
		candidate := &Candidate{
			RoleTypes:       []string{"Engineer"},
			EmploymentTypes: []string{"Permanent"},
			LocationTypes:   []string{"Remote"},
			WorkingHours:    []string{"Full-time"},
			Skills:          []string{"Go", "SQL"},
			Languages:       []Language{{Language: "English", Speak: true, Read: true, Write: true}},
			Salary:          SalaryExpectation{Kind: SalaryExact, Amount: 45000},
		}
		listing := &Listing{
			RoleType:       "Engineer",
			EmploymentType: "Permanent",
			Location:       "Remote",
			WorkingHours:   "Full-time",
			RequiredSkills: []string{"Go"},
			OptionalSkills: []string{"SQL"},
			Languages:      []Language{{Language: "English", Speak: true, Read: true, Write: true}},
			SalaryMin:      40000,
			SalaryMax:      50000,
		}

		result := ScoreCandidateJob(candidate, listing)

		assert.Equal(t, 100, result.Score)
		assert.Len(t, result.Reasons, 7)
	})

	t.Run("empty candidate and listing score zero without panicking", func(t *testing.T) {
		result := ScoreCandidateJob(&Candidate{}, &Listing{})

		assert.Equal(t, 0, result.Score)
		assert.Empty(t, result.Reasons)
	})

	t.Run("deterministic for fixed input", func(t *testing.T) {
		candidate := &Candidate{
			RoleTypes: []string{"Engineer"},
			Skills:    []string{"Go"},
		}
		listing := &Listing{RoleType: "Engineer", RequiredSkills: []string{"Go", "SQL"}}

		first := ScoreCandidateJob(candidate, listing)
		for i := 0; i < 10; i++ {
			assert.Equal(t, first, ScoreCandidateJob(candidate, listing))
		}
	})

	t.Run("adding a matching skill never lowers the score", func(t *testing.T) {
		listing := &Listing{RequiredSkills: []string{"Go", "SQL", "Docker"}}

		before := ScoreCandidateJob(&Candidate{Skills: []string{"Go"}}, listing)
		after := ScoreCandidateJob(&Candidate{Skills: []string{"Go", "SQL"}}, listing)

		assert.GreaterOrEqual(t, after.Score, before.Score)
	})

	t.Run("scores stay within bounds", func(t *testing.T) {
		candidates := []*Candidate{
			{},
			{RoleTypes: []string{"Engineer"}, Skills: []string{"Go"}},
			{Salary: SalaryExpectation{Kind: SalaryRange, Min: 0, Max: 1000000}},
		}
		listings := []*Listing{
			{},
			{RoleType: "Engineer", RequiredSkills: []string{"Go"}},
			{SalaryMin: 50000, SalaryMax: 60000},
		}

		for _, c := range candidates {
			for _, l := range listings {
				result := ScoreCandidateJob(c, l)
				assert.GreaterOrEqual(t, result.Score, 0)
				assert.LessOrEqual(t, result.Score, 100)
			}
		}
	})
}
