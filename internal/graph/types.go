// Package graph builds the file-level dependency graph from scanner records
// and derives the adjacency index traversals run over.
package graph

import (
	"strconv"
	"strings"
	"time"
)

// NodeKind classifies a file by what it is used for.
type NodeKind string

const (
	NodeCode     NodeKind = "code"
	NodeTest     NodeKind = "test"
	NodeStyle    NodeKind = "style"
	NodeData     NodeKind = "data"
	NodeDoc      NodeKind = "doc"
	NodeExternal NodeKind = "external" // resolved into node_modules or outside the workspace
	NodeOther    NodeKind = "other"
)

// EdgeKind is the import mechanism of a dependency.
type EdgeKind string

const (
	EdgeImport  EdgeKind = "import"
	EdgeRequire EdgeKind = "require"
	EdgeDynamic EdgeKind = "dynamic"
	EdgeUnknown EdgeKind = "unknown"
)

// Node is a single file in the graph.
type Node struct {
	ID    string   `json:"id"`    // Workspace-relative, forward slashes
	Label string   `json:"label"` // Basename
	Path  string   `json:"path"`  // Absolute path on disk
	Kind  NodeKind `json:"kind"`
}

// Edge is a directed dependency from Source to Target.
type Edge struct {
	ID     string   `json:"id"`
	Source string   `json:"source"`
	Target string   `json:"target"`
	Kind   EdgeKind `json:"kind"`
}

// Meta describes a graph snapshot.
type Meta struct {
	GeneratedAt time.Time `json:"generatedAt"`
	NodeCount   int       `json:"nodeCount"`
	EdgeCount   int       `json:"edgeCount"`
	SizeCapped  bool      `json:"sizeCapped"`
}

// Graph is an immutable snapshot. Nothing in this module mutates a Graph
// after a builder returns it.
type Graph struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
	Meta  Meta   `json:"meta"`
}

// NodeIDs returns node ids in insertion order.
func (g *Graph) NodeIDs() []string {
	if g == nil {
		return nil
	}
	ids := make([]string, len(g.Nodes))
	for i, n := range g.Nodes {
		ids[i] = n.ID
	}
	return ids
}

var edgeIDEscaper = strings.NewReplacer("%", "%25", "#", "%23", ">", "%3E")

// EdgeID derives the id of the n-th (0-based) edge between the same ordered
// pair: "a->b", "a->b#1", "a->b#2", ...
//
// '%', '#' and '>' inside node ids are percent-escaped, so "->" and "#" only
// ever appear as separators and distinct edges never share an id.
func EdgeID(source, target string, occurrence int) string {
	base := edgeIDEscaper.Replace(source) + "->" + edgeIDEscaper.Replace(target)
	if occurrence <= 0 {
		return base
	}
	return base + "#" + strconv.Itoa(occurrence)
}
