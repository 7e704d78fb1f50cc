package graph

import (
	"log/slog"
	"strings"
	"time"

	"depscope/internal/paths"
)

// DefaultNodeCap is the node limit of the aggregation builder.
const DefaultNodeCap = 300

// AggregateOptions configures BuildAggregate.
type AggregateOptions struct {
	NodeCap       int          // Maximum nodes created (default 300)
	KeepSelfEdges bool         // Keep edges whose source equals target (default false)
	Logger        *slog.Logger // Optional
}

// DefaultAggregateOptions returns the options used for rendering graphs.
func DefaultAggregateOptions() AggregateOptions {
	return AggregateOptions{
		NodeCap: DefaultNodeCap,
	}
}

// Build constructs the full-fidelity graph used by impact analysis and
// context discovery. It keeps self-edges and has no node cap.
// Records missing a source, and dependencies missing a resolved path, are
// skipped silently.
func Build(mods []ModuleRecord, workspaceRoot string) *Graph {
	b := newBuilder(workspaceRoot, 0, true, nil)
	b.addModules(mods)
	return b.finish()
}

// BuildAggregate constructs the rendering graph. New-node creation stops at
// opts.NodeCap and the result is marked SizeCapped; edges touching a node
// that was never created are dropped. Self-edges are dropped unless
// opts.KeepSelfEdges is set.
func BuildAggregate(mods []ModuleRecord, workspaceRoot string, opts AggregateOptions) *Graph {
	if opts.NodeCap <= 0 {
		opts.NodeCap = DefaultNodeCap
	}
	b := newBuilder(workspaceRoot, opts.NodeCap, opts.KeepSelfEdges, opts.Logger)
	b.addModules(mods)
	g := b.finish()
	if g.Meta.SizeCapped && b.logger != nil {
		b.logger.Warn("Graph node cap reached, rendering partial graph",
			"cap", opts.NodeCap,
			"droppedNodes", b.droppedNodes,
			"droppedEdges", b.droppedEdges,
		)
	}
	return g
}

type builder struct {
	root          string
	nodeCap       int // 0 = unlimited
	keepSelfEdges bool
	logger        *slog.Logger

	nodes      []Node
	nodeIndex  map[string]struct{}
	edges      []Edge
	pairCounts map[string]int
	capped     bool

	droppedNodes int
	droppedEdges int
}

func newBuilder(root string, nodeCap int, keepSelfEdges bool, logger *slog.Logger) *builder {
	return &builder{
		root:          root,
		nodeCap:       nodeCap,
		keepSelfEdges: keepSelfEdges,
		logger:        logger,
		nodes:         make([]Node, 0),
		nodeIndex:     make(map[string]struct{}),
		edges:         make([]Edge, 0),
		pairCounts:    make(map[string]int),
	}
}

func (b *builder) addModules(mods []ModuleRecord) {
	for _, mod := range mods {
		sourceID := paths.ToNodeID(mod.Source, b.root)
		if sourceID == "" {
			b.debug("Skipping module without source")
			continue
		}
		sourceOK := b.ensureNode(sourceID)

		for _, dep := range mod.Dependencies {
			targetID := paths.ToNodeID(dep.Resolved, b.root)
			if targetID == "" {
				b.debug("Skipping dependency without resolved path", "source", sourceID)
				continue
			}
			if !b.keepSelfEdges && targetID == sourceID {
				continue
			}
			targetOK := b.ensureNode(targetID)
			if !sourceOK || !targetOK {
				b.droppedEdges++
				continue
			}
			b.addEdge(sourceID, targetID, ClassifyEdge(dep.TypeList()))
		}
	}
}

// ensureNode reports whether id exists after the call.
func (b *builder) ensureNode(id string) bool {
	if _, ok := b.nodeIndex[id]; ok {
		return true
	}
	if b.nodeCap > 0 && len(b.nodes) >= b.nodeCap {
		b.capped = true
		b.droppedNodes++
		return false
	}
	b.nodeIndex[id] = struct{}{}
	b.nodes = append(b.nodes, Node{
		ID:    id,
		Label: paths.Base(id),
		Path:  b.absPath(id),
		Kind:  ClassifyNode(id),
	})
	return true
}

func (b *builder) addEdge(source, target string, kind EdgeKind) {
	pair := source + "\x00" + target
	n := b.pairCounts[pair]
	b.pairCounts[pair] = n + 1
	b.edges = append(b.edges, Edge{
		ID:     EdgeID(source, target, n),
		Source: source,
		Target: target,
		Kind:   kind,
	})
}

func (b *builder) absPath(id string) string {
	if b.root == "" {
		return id
	}
	return paths.JoinRepoPath(b.root, id)
}

func (b *builder) debug(msg string, args ...any) {
	if b.logger != nil {
		b.logger.Debug(msg, args...)
	}
}

func (b *builder) finish() *Graph {
	return &Graph{
		Nodes: b.nodes,
		Edges: b.edges,
		Meta: Meta{
			GeneratedAt: time.Now().UTC(),
			NodeCount:   len(b.nodes),
			EdgeCount:   len(b.edges),
			SizeCapped:  b.capped,
		},
	}
}

// ClassifyEdge maps scanner dependency types to an edge kind.
// esm/es6 win over cjs/commonjs, which win over dynamic.
func ClassifyEdge(types []string) EdgeKind {
	var hasRequire, hasDynamic bool
	for _, t := range types {
		switch strings.ToLower(strings.TrimSpace(t)) {
		case "esm", "es6":
			return EdgeImport
		case "cjs", "commonjs":
			hasRequire = true
		case "dynamic":
			hasDynamic = true
		}
	}
	switch {
	case hasRequire:
		return EdgeRequire
	case hasDynamic:
		return EdgeDynamic
	default:
		return EdgeUnknown
	}
}

var (
	codeExts  = map[string]bool{".ts": true, ".tsx": true, ".js": true, ".jsx": true, ".mjs": true, ".cjs": true, ".mts": true, ".cts": true, ".vue": true, ".svelte": true}
	styleExts = map[string]bool{".css": true, ".scss": true, ".sass": true, ".less": true}
	dataExts  = map[string]bool{".json": true, ".yaml": true, ".yml": true, ".toml": true}
	docExts   = map[string]bool{".md": true, ".mdx": true, ".txt": true}
)

// ClassifyNode derives a node kind from its id.
func ClassifyNode(id string) NodeKind {
	if strings.HasPrefix(id, "node_modules/") || strings.Contains(id, "/node_modules/") || strings.HasPrefix(id, "../") {
		return NodeExternal
	}

	base := strings.ToLower(paths.Base(id))
	ext := ""
	if i := strings.LastIndex(base, "."); i > 0 {
		ext = base[i:]
	}

	switch {
	case codeExts[ext]:
		if isTestFile(id, base) {
			return NodeTest
		}
		return NodeCode
	case styleExts[ext]:
		return NodeStyle
	case dataExts[ext]:
		return NodeData
	case docExts[ext]:
		return NodeDoc
	default:
		return NodeOther
	}
}

func isTestFile(id, base string) bool {
	if strings.Contains(base, ".test.") || strings.Contains(base, ".spec.") {
		return true
	}
	lower := strings.ToLower(id)
	return strings.HasPrefix(lower, "__tests__/") || strings.Contains(lower, "/__tests__/")
}
