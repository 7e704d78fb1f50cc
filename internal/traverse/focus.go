package traverse

import (
	"fmt"
	"log/slog"
	"time"

	"depscope/internal/graph"
)

// Lens picks the direction focus mode walks.
type Lens string

const (
	LensChildren Lens = "children" // forward adjacency
	LensParents  Lens = "parents"  // reverse adjacency
)

// ParseLens converts a string to a Lens, defaulting to children.
func ParseLens(s string) Lens {
	if s == string(LensParents) {
		return LensParents
	}
	return LensChildren
}

// Focus-mode defaults.
const (
	DefaultFocusDepth     = 2
	DefaultMaxFanout      = 100
	DefaultSlowFocusLimit = 50 * time.Millisecond
)

// now is replaced in tests.
var now = time.Now

// FocusOptions configures Focus.
type FocusOptions struct {
	Depth         int           // Hop bound; 0 shows only the root
	Lens          Lens          // Default children
	MaxFanout     int           // Neighbors considered per node (default 100)
	SlowThreshold time.Duration // Advisory warning threshold (default 50ms)
	Logger        *slog.Logger  // Optional
}

// FocusResult is the subgraph to render. Both lists are duplicate-free and in
// discovery order.
type FocusResult struct {
	Root         string        `json:"root"`
	Lens         Lens          `json:"lens"`
	VisibleNodes []string      `json:"visibleNodes"`
	VisibleEdges []string      `json:"visibleEdges"`
	Stats        Stats         `json:"stats"`
	Duration     time.Duration `json:"durationNs"`
	Warnings     []string      `json:"warnings,omitempty"`

	nodeSet map[string]struct{}
	edgeSet map[string]struct{}
}

// HasNode reports whether id is visible.
func (r *FocusResult) HasNode(id string) bool {
	_, ok := r.nodeSet[id]
	return ok
}

// HasEdge reports whether the edge id is visible.
func (r *FocusResult) HasEdge(id string) bool {
	_, ok := r.edgeSet[id]
	return ok
}

// Focus explores from root in the lens direction, up to opts.Depth hops,
// considering only the first opts.MaxFanout neighbors of each node. Every
// traversed edge is recorded by its id in source->target orientation, even
// when walking parents. A traversal slower than opts.SlowThreshold logs a
// warning and reports it in Warnings; it is never aborted.
func Focus(root string, adj *graph.Adjacency, opts FocusOptions) *FocusResult {
	if opts.Depth < 0 {
		opts.Depth = 0
	}
	if opts.Lens == "" {
		opts.Lens = LensChildren
	}
	if opts.MaxFanout <= 0 {
		opts.MaxFanout = DefaultMaxFanout
	}
	if opts.SlowThreshold <= 0 {
		opts.SlowThreshold = DefaultSlowFocusLimit
	}

	dir := Forward
	if opts.Lens == LensParents {
		dir = Reverse
	}

	start := now()
	result := &FocusResult{
		Root:         root,
		Lens:         opts.Lens,
		VisibleNodes: []string{root},
		VisibleEdges: []string{},
		nodeSet:      map[string]struct{}{root: {}},
		edgeSet:      make(map[string]struct{}),
	}

	result.Stats = Walk(root, adj, Policy{
		Directions: dir,
		MaxDepth:   opts.Depth,
		MaxFanout:  opts.MaxFanout,
	}, func(s Step) {
		if _, ok := result.nodeSet[s.To]; !ok {
			result.nodeSet[s.To] = struct{}{}
			result.VisibleNodes = append(result.VisibleNodes, s.To)
		}
		if _, ok := result.edgeSet[s.EdgeID]; !ok {
			result.edgeSet[s.EdgeID] = struct{}{}
			result.VisibleEdges = append(result.VisibleEdges, s.EdgeID)
		}
	})

	result.Duration = now().Sub(start)
	if result.Duration > opts.SlowThreshold {
		msg := fmt.Sprintf("focus traversal took %s (threshold %s)", result.Duration, opts.SlowThreshold)
		result.Warnings = append(result.Warnings, msg)
		if opts.Logger != nil {
			opts.Logger.Warn("Slow focus traversal",
				"root", root,
				"lens", string(opts.Lens),
				"visibleNodes", len(result.VisibleNodes),
				"duration", result.Duration,
			)
		}
	}

	return result
}
