package main

import (
	"fmt"
	"strings"

	"depscope/internal/graph"
	"depscope/internal/impact"
	"depscope/internal/output"
	"depscope/internal/session"
	"depscope/internal/traverse"
	"depscope/internal/version"
)

// Response is the envelope every command prints.
type Response struct {
	DepscopeVersion string       `json:"depscopeVersion"`
	Session         *SessionInfo `json:"session,omitempty"`
	Data            interface{}  `json:"data"`
	Warnings        []string     `json:"warnings,omitempty"`
}

// SessionInfo identifies the snapshot a response was computed from.
type SessionInfo struct {
	ID                  string `json:"id"`
	Source              string `json:"source"`
	Aggregate           bool   `json:"aggregate"`
	Nodes               int    `json:"nodes"`
	Edges               int    `json:"edges"`
	SizeCapped          bool   `json:"sizeCapped"`
	SkippedModules      int    `json:"skippedModules"`
	SkippedDependencies int    `json:"skippedDependencies"`
}

// GraphResponseCLI is the data of `depscope graph`.
type GraphResponseCLI struct {
	Meta  graph.Meta   `json:"meta"`
	Stats graph.Stats  `json:"stats"`
	Nodes []graph.Node `json:"nodes,omitempty"`
	Edges []graph.Edge `json:"edges,omitempty"`
}

// ResolveResponseCLI is the data of `depscope resolve`.
type ResolveResponseCLI struct {
	Topic   bool                 `json:"topic"`
	Results []session.Resolution `json:"results"`
}

func newResponse(s *session.Session, data interface{}) *Response {
	resp := &Response{
		DepscopeVersion: version.Version,
		Data:            data,
	}
	if s != nil {
		resp.Session = &SessionInfo{
			ID:                  s.ID,
			Source:              s.Source,
			Aggregate:           s.Aggregate,
			Nodes:               s.Graph.Meta.NodeCount,
			Edges:               s.Graph.Meta.EdgeCount,
			SizeCapped:          s.Graph.Meta.SizeCapped,
			SkippedModules:      s.Report.SkippedModules,
			SkippedDependencies: s.Report.SkippedDependencies,
		}
		if problem := s.Report.Problem(); problem != nil {
			resp.Warnings = append(resp.Warnings, problem.Error())
		}
		if s.Graph.Meta.SizeCapped {
			resp.Warnings = append(resp.Warnings, fmt.Sprintf("graph capped at %d nodes; results may be partial", s.Graph.Meta.NodeCount))
		}
	}
	return resp
}

// formatHuman formats the response in human-readable format
func formatHuman(resp interface{}) (string, error) {
	r, ok := resp.(*Response)
	if !ok {
		return formatJSON(resp)
	}

	var b strings.Builder
	var err error
	switch d := r.Data.(type) {
	case *GraphResponseCLI:
		formatGraphHuman(&b, d)
	case *ResolveResponseCLI:
		formatResolveHuman(&b, d)
	case *impact.Result:
		formatImpactHuman(&b, d)
	case *traverse.FocusResult:
		formatFocusHuman(&b, d)
	case *session.ContextOutcome:
		formatContextHuman(&b, d)
	case version.BuildInfo:
		b.WriteString(fmt.Sprintf("depscope %s (commit %s, built %s, %s)\n", d.Version, d.Commit, d.BuildDate, d.GoVersion))
	default:
		var s string
		s, err = formatJSON(r.Data)
		b.WriteString(s)
		b.WriteString("\n")
	}
	if err != nil {
		return "", err
	}

	if r.Session != nil {
		b.WriteString(fmt.Sprintf("\nSession %s: %d nodes, %d edges", shortID(r.Session.ID), r.Session.Nodes, r.Session.Edges))
		if r.Session.Aggregate {
			b.WriteString(" (rendering graph)")
		}
		b.WriteString("\n")
	}
	for _, w := range r.Warnings {
		b.WriteString(fmt.Sprintf("! %s\n", w))
	}
	return strings.TrimRight(b.String(), "\n"), nil
}

func formatGraphHuman(b *strings.Builder, d *GraphResponseCLI) {
	b.WriteString("Dependency Graph\n")
	b.WriteString(strings.Repeat("=", 60) + "\n\n")
	b.WriteString(fmt.Sprintf("Nodes: %d (%d isolated)\n", d.Stats.TotalNodes, d.Stats.IsolatedNodes))
	b.WriteString(fmt.Sprintf("Edges: %d (avg out-degree %s)\n", d.Stats.TotalEdges, output.FormatFloat(d.Stats.AvgOutDegree)))
	if d.Stats.SizeCapped {
		b.WriteString("Size capped: yes\n")
	}

	if len(d.Stats.NodesByKind) > 0 {
		b.WriteString("\nNodes by kind:\n")
		for _, k := range output.SortedKeys(d.Stats.NodesByKind) {
			b.WriteString(fmt.Sprintf("  %-10s %d\n", k, d.Stats.NodesByKind[k]))
		}
	}
	if len(d.Stats.EdgesByKind) > 0 {
		b.WriteString("\nEdges by kind:\n")
		for _, k := range output.SortedKeys(d.Stats.EdgesByKind) {
			b.WriteString(fmt.Sprintf("  %-10s %d\n", k, d.Stats.EdgesByKind[k]))
		}
	}

	if len(d.Nodes) > 0 {
		b.WriteString("\nNodes:\n")
		for _, n := range d.Nodes {
			b.WriteString(fmt.Sprintf("  %s [%s]\n", n.ID, n.Kind))
		}
	}
	if len(d.Edges) > 0 {
		b.WriteString("\nEdges:\n")
		for _, e := range d.Edges {
			b.WriteString(fmt.Sprintf("  %s (%s)\n", e.ID, e.Kind))
		}
	}
}

func formatResolveHuman(b *strings.Builder, d *ResolveResponseCLI) {
	for _, r := range d.Results {
		if !r.Resolved {
			b.WriteString(fmt.Sprintf("✗ %s: no match\n", r.Input))
			continue
		}
		b.WriteString(fmt.Sprintf("✓ %s -> %s (%s)\n", r.Input, r.ID, r.Heuristic))
	}
}

func formatImpactHuman(b *strings.Builder, d *impact.Result) {
	b.WriteString(fmt.Sprintf("Impact Analysis: %s\n", d.Seed))
	b.WriteString(strings.Repeat("=", 60) + "\n\n")

	if d.BlastRadius != nil {
		b.WriteString(fmt.Sprintf("Risk Level: %s\n", d.BlastRadius.RiskLevel))
		b.WriteString(fmt.Sprintf("Files: %d in %d directories, max depth %d\n\n",
			d.BlastRadius.FileCount, d.BlastRadius.DirectoryCount, d.BlastRadius.MaxDepth))
	}

	if len(d.Directories) > 0 {
		b.WriteString("By Directory:\n")
		for _, dir := range d.Directories {
			b.WriteString(fmt.Sprintf("  %s: %d files\n", dir.Directory, dir.FileCount))
		}
		b.WriteString("\n")
	}

	if len(d.Affected) > 0 {
		b.WriteString("Affected:\n")
		for _, id := range d.Affected[:min(20, len(d.Affected))] {
			b.WriteString(fmt.Sprintf("  - %s\n", id))
		}
		if len(d.Affected) > 20 {
			b.WriteString(fmt.Sprintf("  ... and %d more\n", len(d.Affected)-20))
		}
		b.WriteString("\n")
	}

	if d.Limits != nil && d.Limits.HasLimitations() {
		b.WriteString("Notes:\n")
		for _, n := range d.Limits.Notes {
			b.WriteString(fmt.Sprintf("  * %s\n", n))
		}
	}
}

func formatFocusHuman(b *strings.Builder, d *traverse.FocusResult) {
	b.WriteString(fmt.Sprintf("Focus: %s (%s)\n", d.Root, d.Lens))
	b.WriteString(strings.Repeat("=", 60) + "\n\n")
	b.WriteString(fmt.Sprintf("Visible: %d nodes, %d edges, depth %d\n\n", len(d.VisibleNodes), len(d.VisibleEdges), d.Stats.MaxDepth))
	for _, e := range d.VisibleEdges {
		b.WriteString(fmt.Sprintf("  %s\n", e))
	}
	for _, w := range d.Warnings {
		b.WriteString(fmt.Sprintf("! %s\n", w))
	}
}

func formatContextHuman(b *strings.Builder, d *session.ContextOutcome) {
	b.WriteString(fmt.Sprintf("Context: %s (via %s)\n", d.Seed, d.Heuristic))
	b.WriteString(strings.Repeat("=", 60) + "\n\n")
	for i, c := range d.Ranked {
		b.WriteString(fmt.Sprintf("%2d. %s (depth %d, degree %d)\n", i+1, c.ID, c.Depth, c.Degree))
	}
	if len(d.Ranked) == 0 {
		b.WriteString("No related files\n")
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
