// Package traverse runs bounded breadth-first explorations over a graph
// snapshot's adjacency. One primitive, Walk, is specialized by policy into
// impact analysis, focus mode and context discovery.
//
// All functions are pure reads of the adjacency they are given. Concurrent
// callers may share a snapshot as long as nobody mutates it.
package traverse

import (
	"depscope/internal/graph"
)

// Direction selects which adjacency a walk follows.
type Direction uint8

const (
	// Forward follows dependencies (what a node imports).
	Forward Direction = 1 << iota
	// Reverse follows dependents (what imports a node).
	Reverse
	// Both follows the union, forward neighbors first.
	Both = Forward | Reverse
)

// Unbounded disables the depth bound of a Policy.
const Unbounded = -1

// Policy parameterizes Walk.
type Policy struct {
	Directions Direction
	MaxDepth   int // Nodes at this depth are reached but not expanded; Unbounded for none
	MaxFanout  int // Neighbors considered per node; <= 0 for all
}

// Step is one traversed edge.
type Step struct {
	From    string // Node being expanded
	To      string // Neighbor reached
	Depth   int    // Depth of To when reached through this step
	Reverse bool   // True when the step walked against edge direction
	EdgeID  string // Id of the underlying edge, in its source->target orientation
	New     bool   // True the first time To is reached
}

// Stats describes a finished walk.
type Stats struct {
	NodesVisited   int `json:"nodesVisited"`
	EdgesTraversed int `json:"edgesTraversed"`
	MaxDepth       int `json:"maxDepth"`
}

type queueItem struct {
	id    string
	depth int
}

// Walk explores breadth-first from seed under p, calling visit for every
// traversed edge. A visited set keyed on node id guarantees termination on
// cyclic graphs. A seed unknown to adj is treated as a node without
// neighbors.
func Walk(seed string, adj *graph.Adjacency, p Policy, visit func(Step)) Stats {
	if adj == nil {
		adj = &graph.Adjacency{}
	}
	if p.Directions == 0 {
		p.Directions = Forward
	}

	visited := map[string]bool{seed: true}
	queue := []queueItem{{seed, 0}}
	var stats Stats

	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]

		if p.MaxDepth != Unbounded && item.depth >= p.MaxDepth {
			continue
		}

		for _, step := range neighbors(item.id, adj, p) {
			stats.EdgesTraversed++
			step.Depth = item.depth + 1
			if !visited[step.To] {
				visited[step.To] = true
				step.New = true
				if step.Depth > stats.MaxDepth {
					stats.MaxDepth = step.Depth
				}
				queue = append(queue, queueItem{step.To, step.Depth})
			}
			if visit != nil {
				visit(step)
			}
		}
	}

	stats.NodesVisited = len(visited)
	return stats
}

// neighbors lists the steps leaving id, capped at p.MaxFanout. Adjacency lists
// are appended in edge order, so the k-th occurrence of a pair in a list is
// the pair's k-th edge, which is what EdgeID derives.
func neighbors(id string, adj *graph.Adjacency, p Policy) []Step {
	var fwd, rev []string
	if p.Directions&Forward != 0 {
		fwd = adj.Forward[id]
	}
	if p.Directions&Reverse != 0 {
		rev = adj.Reverse[id]
	}

	total := len(fwd) + len(rev)
	if p.MaxFanout > 0 && total > p.MaxFanout {
		total = p.MaxFanout
	}
	if total == 0 {
		return nil
	}

	steps := make([]Step, 0, total)
	// Each list holds every edge of its pairs, so occurrences are counted
	// per list.
	seenTargets := make(map[string]int)
	for _, target := range fwd {
		if len(steps) == total {
			return steps
		}
		steps = append(steps, Step{From: id, To: target, EdgeID: graph.EdgeID(id, target, seenTargets[target])})
		seenTargets[target]++
	}
	seenSources := make(map[string]int)
	for _, source := range rev {
		if len(steps) == total {
			return steps
		}
		steps = append(steps, Step{From: id, To: source, Reverse: true, EdgeID: graph.EdgeID(source, id, seenSources[source])})
		seenSources[source]++
	}
	return steps
}
