package matching

import "sort"

// Ranked is anything carrying a match score.
type Ranked interface {
	RankScore() int
}

// Rank drops every result scoring below minScore and orders the rest
// descending. The sort is stable so equal scores keep their input order;
// callers rely on that for deterministic presentation. No truncation or
// pagination happens here.
func Rank[T Ranked](results []T, minScore int) []T {
	out := make([]T, 0, len(results))
	for _, r := range results {
		if r.RankScore() >= minScore {
			out = append(out, r)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].RankScore() > out[j].RankScore()
	})

	return out
}
