package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type rankedStub struct {
	ID    string
	Score int
}

func (r rankedStub) RankScore() int { return r.Score }

func TestRank(t *testing.T) {
	t.Run("filters below threshold and sorts descending", func(t *testing.T) {
		input := []rankedStub{
			{ID: "a", Score: 95},
			{ID: "b", Score: 40},
			{ID: "c", Score: 100},
			{ID: "d", Score: 90},
		}

		out := Rank(input, 90)

		scores := make([]int, len(out))
		for i, r := range out {
			scores[i] = r.Score
		}
		assert.Equal(t, []int{100, 95, 90}, scores)
	})

	t.Run("ties keep input order", func(t *testing.T) {
		input := []rankedStub{
			{ID: "first", Score: 80},
			{ID: "second", Score: 80},
			{ID: "third", Score: 90},
		}

		out := Rank(input, 1)

		assert.Equal(t, []rankedStub{
			{ID: "third", Score: 90},
			{ID: "first", Score: 80},
			{ID: "second", Score: 80},
		}, out)
	})

	t.Run("input slice is left untouched", func(t *testing.T) {
		input := []rankedStub{{ID: "a", Score: 10}, {ID: "b", Score: 90}}

		Rank(input, 1)

		assert.Equal(t, "a", input[0].ID)
		assert.Equal(t, "b", input[1].ID)
	})

	t.Run("empty input yields empty output", func(t *testing.T) {
		out := Rank([]rankedStub{}, 90)

		assert.NotNil(t, out)
		assert.Empty(t, out)
	})
}
