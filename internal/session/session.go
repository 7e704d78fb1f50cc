// Package session holds one loaded graph snapshot and everything derived
// from it. A Session is built once and then only read; a rescan produces a
// new Session rather than updating an old one.
package session

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	deperrors "depscope/internal/errors"
	"depscope/internal/graph"
	"depscope/internal/impact"
	"depscope/internal/paths"
	"depscope/internal/resolve"
	"depscope/internal/slogutil"
	"depscope/internal/traverse"
)

// Options configures Load and New.
type Options struct {
	WorkspaceRoot string
	// Aggregate selects the capped rendering builder instead of the
	// full-fidelity one. Impact and context answers on an aggregate
	// session may be incomplete.
	Aggregate        bool
	AggregateOptions graph.AggregateOptions
	Exists           traverse.ExistsFunc // Defaults to DiskExists(WorkspaceRoot)
	Logger           *slog.Logger
}

// Session is an immutable graph snapshot with its adjacency index.
type Session struct {
	ID        string             `json:"id"`
	Root      string             `json:"root"`
	Source    string             `json:"source,omitempty"`
	LoadedAt  time.Time          `json:"loadedAt"`
	Aggregate bool               `json:"aggregate"`
	Report    graph.DecodeReport `json:"report"`

	Graph     *graph.Graph     `json:"-"`
	Adjacency *graph.Adjacency `json:"-"`

	ids      []string
	exists   traverse.ExistsFunc
	analyzer *impact.Analyzer
	logger   *slog.Logger
}

// Load reads, decodes and indexes a scanner output file.
func Load(path string, opts Options) (*Session, error) {
	data, err := ReadScannerOutput(path)
	if err != nil {
		return nil, err
	}
	mods, report, err := graph.DecodeModules(data)
	if err != nil {
		return nil, err
	}
	s := New(mods, report, opts)
	s.Source = path
	return s, nil
}

// New builds a session from already-decoded module records.
func New(mods []graph.ModuleRecord, report graph.DecodeReport, opts Options) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = slogutil.NewDiscardLogger()
	}

	var g *graph.Graph
	if opts.Aggregate {
		aggOpts := opts.AggregateOptions
		aggOpts.Logger = logger
		g = graph.BuildAggregate(mods, opts.WorkspaceRoot, aggOpts)
	} else {
		g = graph.Build(mods, opts.WorkspaceRoot)
	}
	adj := graph.BuildAdjacency(g)

	exists := opts.Exists
	if exists == nil {
		exists = DiskExists(opts.WorkspaceRoot)
	}

	s := &Session{
		ID:        uuid.New().String(),
		Root:      opts.WorkspaceRoot,
		LoadedAt:  time.Now().UTC(),
		Aggregate: opts.Aggregate,
		Report:    report,
		Graph:     g,
		Adjacency: adj,
		ids:       g.NodeIDs(),
		exists:    exists,
		logger:    logger,
	}
	s.analyzer = impact.NewAnalyzer(s.ids, adj.Forward, impact.Options{
		WorkspaceRoot: opts.WorkspaceRoot,
		Exists:        exists,
		Logger:        logger,
	})

	logger.Info("Graph session loaded",
		"session", s.ID,
		"nodes", g.Meta.NodeCount,
		"edges", g.Meta.EdgeCount,
		"sizeCapped", g.Meta.SizeCapped,
		"skippedModules", report.SkippedModules,
	)
	if problem := report.Problem(); problem != nil {
		logger.Warn("Scanner output had malformed records",
			"code", deperrors.CodeOf(problem),
			"error", problem,
		)
	}
	return s
}

// DiskExists returns a probe reporting whether a node id names a regular file
// under root. With an empty root ids are checked relative to the working
// directory.
func DiskExists(root string) traverse.ExistsFunc {
	return func(id string) bool {
		if id == "" {
			return false
		}
		p := id
		if root != "" {
			p = paths.JoinRepoPath(root, id)
		}
		info, err := os.Stat(p)
		return err == nil && info.Mode().IsRegular()
	}
}

// KnownIDs returns the node ids in insertion order. The slice is shared; do
// not modify it.
func (s *Session) KnownIDs() []string {
	return s.ids
}

// Stats summarizes the snapshot.
func (s *Session) Stats() graph.Stats {
	return graph.ComputeStats(s.Graph, s.Adjacency)
}

// Resolve maps a fuzzy input to a node id.
func (s *Session) Resolve(input string, isTopic bool) (resolve.Match, bool) {
	return resolve.ResolveMatch(input, s.ids, isTopic)
}

// Resolution is one entry of a ResolveAll batch.
type Resolution struct {
	Input     string `json:"input"`
	ID        string `json:"id,omitempty"`
	Heuristic string `json:"heuristic,omitempty"`
	Resolved  bool   `json:"resolved"`
}

// ResolveAll resolves every input concurrently against the snapshot. Results
// are in input order. Only context cancellation produces an error.
func (s *Session) ResolveAll(ctx context.Context, inputs []string, isTopic bool) ([]Resolution, error) {
	results := make([]Resolution, len(inputs))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(8)

	for i, input := range inputs {
		i, input := i, input
		eg.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			m, ok := s.Resolve(input, isTopic)
			results[i] = Resolution{Input: input, ID: m.ID, Heuristic: m.Heuristic, Resolved: ok}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Impact runs impact analysis for a fuzzy input.
func (s *Session) Impact(input string, isTopic bool) *impact.Result {
	return s.analyzer.Analyze(input, isTopic)
}

// Focus resolves input as a path and explores from it. Unlike Impact, a
// focus root must be a node of the snapshot.
func (s *Session) Focus(input string, opts traverse.FocusOptions) (*traverse.FocusResult, error) {
	m, ok := s.Resolve(input, false)
	if !ok {
		return nil, deperrors.Newf(deperrors.UnresolvedSeed, "no graph node matches %q", input)
	}
	if opts.Logger == nil {
		opts.Logger = s.logger
	}
	return traverse.Focus(m.ID, s.Adjacency, opts), nil
}

// ContextOutcome is a context discovery result with the seed it started from.
type ContextOutcome struct {
	Seed      string `json:"seed"`
	Heuristic string `json:"heuristic"`
	traverse.ContextResult
}

// Context resolves input and gathers the nodes around it.
func (s *Session) Context(input string, isTopic bool, opts traverse.ContextOptions) (*ContextOutcome, error) {
	m, ok := s.Resolve(input, isTopic)
	if !ok {
		return nil, deperrors.Newf(deperrors.UnresolvedSeed, "no graph node matches %q", input)
	}
	return &ContextOutcome{
		Seed:          m.ID,
		Heuristic:     m.Heuristic,
		ContextResult: traverse.Context(m.ID, s.Adjacency, opts),
	}, nil
}
