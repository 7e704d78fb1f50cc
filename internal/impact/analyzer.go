// Package impact answers "what does changing this file touch" for a caller
// supplied path or topic: it resolves the input to a graph node, runs the
// forward impact traversal, and annotates the result with how the seed was
// found and what the analysis does not cover.
package impact

import (
	"fmt"
	"log/slog"

	"depscope/internal/graph"
	"depscope/internal/paths"
	"depscope/internal/resolve"
	"depscope/internal/traverse"
)

// Analyzer runs impact analyses against one graph snapshot. It is safe for
// concurrent use as long as the snapshot is not mutated.
type Analyzer struct {
	ids     []string
	forward graph.AdjacencyList
	exists  traverse.ExistsFunc
	root    string
	logger  *slog.Logger
}

// Options configures an Analyzer.
type Options struct {
	WorkspaceRoot string              // Used to normalize unresolved path inputs
	Exists        traverse.ExistsFunc // Optional disk probe for seeds absent from the graph
	Logger        *slog.Logger        // Optional
}

// NewAnalyzer creates an analyzer over the given node ids and forward adjacency.
func NewAnalyzer(ids []string, forward graph.AdjacencyList, opts Options) *Analyzer {
	return &Analyzer{
		ids:     ids,
		forward: forward,
		exists:  opts.Exists,
		root:    opts.WorkspaceRoot,
		logger:  opts.Logger,
	}
}

// Analyze resolves input and walks forward from the resolved seed. It never
// fails: an input that cannot be resolved yields a result with Status
// SeedOnDisk or SeedMissing and explanatory notes.
func (a *Analyzer) Analyze(input string, isTopic bool) *Result {
	result := &Result{
		Input:  input,
		Limits: NewAnalysisLimits(),
	}
	result.Limits.AddNote(noteDirection)

	match, ok := resolve.ResolveMatch(input, a.ids, isTopic)
	switch {
	case ok:
		result.Seed = match.ID
		result.Resolved = true
		result.ResolvedBy = match.Heuristic
		if match.Heuristic != resolve.HeuristicExact {
			result.Limits.AddNote(fmt.Sprintf("Seed resolved by %s heuristic: %q -> %q", match.Heuristic, input, match.ID))
		}
	case isTopic:
		result.Status = SeedMissing
		result.Affected = []string{}
		result.Limits.AddNote(noteTopicMissing)
		a.finish(result)
		return result
	default:
		result.Seed = paths.ToNodeID(input, a.root)
		result.Limits.AddNote(noteUnresolved)
	}

	impact := traverse.Impact(result.Seed, a.forward, traverse.ImpactOptions{Exists: a.exists})
	result.Affected = impact.Affected
	result.Stats = impact.Stats

	_, inGraph := a.forward[result.Seed]
	switch {
	case inGraph:
		result.Status = SeedInGraph
		if len(a.forward[result.Seed]) == 0 {
			result.Limits.AddNote(noteNoForwardDeps)
		}
	case len(impact.Affected) > 0:
		result.Status = SeedOnDisk
		result.Limits.AddNote(noteOnDisk)
	default:
		result.Status = SeedMissing
		result.Limits.AddNote(noteMissing)
	}

	a.finish(result)
	return result
}

func (a *Analyzer) finish(result *Result) {
	result.Directories = summarizeDirectories(result.Affected)
	result.BlastRadius = computeBlastRadius(result.Affected, result.Directories, result.Stats.MaxDepth)

	if a.logger != nil {
		a.logger.Debug("Impact analysis complete",
			"input", result.Input,
			"seed", result.Seed,
			"status", string(result.Status),
			"affected", len(result.Affected),
			"edgesTraversed", result.Stats.EdgesTraversed,
		)
	}
}
