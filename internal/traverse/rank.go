package traverse

import "sort"

// Candidate is a node discovered by context discovery.
type Candidate struct {
	ID     string `json:"id"`
	Depth  int    `json:"depth"`
	Degree int    `json:"degree"` // |forward| + |reverse| in the snapshot
	Order  int    `json:"-"`      // Discovery order
}

// Rank orders candidates by ascending depth, then descending degree, then
// discovery order, and keeps at most limit of them. The input is not
// modified.
func Rank(candidates []Candidate, limit int) []Candidate {
	ranked := make([]Candidate, len(candidates))
	copy(ranked, candidates)

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.Depth != b.Depth {
			return a.Depth < b.Depth
		}
		if a.Degree != b.Degree {
			return a.Degree > b.Degree
		}
		return a.Order < b.Order
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
