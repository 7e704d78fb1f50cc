package traverse

import (
	"depscope/internal/graph"
)

// Context-discovery defaults.
const (
	DefaultContextDepth = 1
	DefaultResultCap    = 30
)

// ContextOptions configures Context. A related node is at least one hop away,
// so the smallest meaningful Depth is 1; zero or negative values select
// DefaultContextDepth, which is also 1. Deeper overrides are honoured as given.
type ContextOptions struct {
	Depth     int // Hop bound, at least 1 (default 1)
	ResultCap int // Maximum related ids returned (default 30)
}

// ContextResult holds related ids ranked nearest-first, busiest-first.
type ContextResult struct {
	Related []string    `json:"related"`
	Ranked  []Candidate `json:"ranked"`
	Stats   Stats       `json:"stats"`
}

// Context explores the union of forward and reverse adjacency from seed up to
// opts.Depth hops. Nodes reached exactly at the bound are recorded but not
// expanded. Every non-seed node is scored by depth and by its degree in adj,
// then ranked and truncated to opts.ResultCap once the walk has finished.
func Context(seed string, adj *graph.Adjacency, opts ContextOptions) ContextResult {
	if opts.Depth <= 0 {
		opts.Depth = DefaultContextDepth
	}
	if opts.ResultCap <= 0 {
		opts.ResultCap = DefaultResultCap
	}

	var found []Candidate
	stats := Walk(seed, adj, Policy{
		Directions: Both,
		MaxDepth:   opts.Depth,
	}, func(s Step) {
		if !s.New {
			return
		}
		found = append(found, Candidate{
			ID:     s.To,
			Depth:  s.Depth,
			Degree: adj.Degree(s.To),
			Order:  len(found),
		})
	})

	ranked := Rank(found, opts.ResultCap)
	related := make([]string, len(ranked))
	for i, c := range ranked {
		related[i] = c.ID
	}

	return ContextResult{Related: related, Ranked: ranked, Stats: stats}
}
