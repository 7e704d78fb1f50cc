package traverse

import (
	"depscope/internal/graph"
)

// ExistsFunc reports whether a node id exists as a real file. The engine does
// no I/O itself; callers supply this probe.
type ExistsFunc func(id string) bool

// ImpactOptions configures Impact.
type ImpactOptions struct {
	Exists ExistsFunc // Optional; consulted only for seeds unknown to forward
}

// ImpactResult lists the seed followed by everything reachable from it.
type ImpactResult struct {
	Affected []string `json:"affected"`
	Stats    Stats    `json:"stats"`
}

// Impact walks forward adjacency from seed with no depth bound and no result
// cap. Forward adjacency is "what this node declares as a dependency", so
// the result is the seed's transitive dependencies, not its dependents.
//
// A seed absent from forward yields a singleton result when opts.Exists
// reports it on disk, and an empty result otherwise.
func Impact(seed string, forward graph.AdjacencyList, opts ImpactOptions) ImpactResult {
	if _, known := forward[seed]; !known {
		if opts.Exists != nil && opts.Exists(seed) {
			return ImpactResult{
				Affected: []string{seed},
				Stats:    Stats{NodesVisited: 1},
			}
		}
		return ImpactResult{Affected: []string{}}
	}

	affected := []string{seed}
	stats := Walk(seed, &graph.Adjacency{Forward: forward}, Policy{
		Directions: Forward,
		MaxDepth:   Unbounded,
	}, func(s Step) {
		if s.New {
			affected = append(affected, s.To)
		}
	})

	return ImpactResult{Affected: affected, Stats: stats}
}
