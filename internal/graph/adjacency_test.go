package graph

import "testing"

func TestBuildAdjacency(t *testing.T) {
	mods := []ModuleRecord{
		{Source: "a.ts", Dependencies: []DependencyRecord{{Resolved: "b.ts"}, {Resolved: "b.ts"}, {Resolved: "c.ts"}}},
		{Source: "b.ts", Dependencies: []DependencyRecord{{Resolved: "a.ts"}}},
		{Source: "lonely.ts"},
	}
	g := Build(mods, "")
	adj := BuildAdjacency(g)

	// Every node is seeded, including isolated ones.
	for _, id := range g.NodeIDs() {
		if _, ok := adj.Forward[id]; !ok {
			t.Errorf("Forward missing %s", id)
		}
		if _, ok := adj.Reverse[id]; !ok {
			t.Errorf("Reverse missing %s", id)
		}
	}
	if adj.Forward["lonely.ts"] == nil || len(adj.Forward["lonely.ts"]) != 0 {
		t.Errorf("isolated node should map to an empty list, got %v", adj.Forward["lonely.ts"])
	}

	// Parallel edges are not deduplicated.
	if got := adj.Forward["a.ts"]; len(got) != 3 || got[0] != "b.ts" || got[1] != "b.ts" || got[2] != "c.ts" {
		t.Errorf("Forward[a.ts] = %v", got)
	}
	if got := adj.Reverse["b.ts"]; len(got) != 2 {
		t.Errorf("Reverse[b.ts] = %v", got)
	}

	if adj.Degree("a.ts") != 4 {
		t.Errorf("Degree(a.ts) = %d, want 4", adj.Degree("a.ts"))
	}
	if adj.Degree("missing.ts") != 0 || adj.Has("missing.ts") {
		t.Error("unknown ids must have degree 0 and not be known")
	}
}

func TestAdjacencySymmetry(t *testing.T) {
	g := Build(sampleModules(), "/repo")
	adj := BuildAdjacency(g)

	for _, e := range g.Edges {
		if !contains(adj.Forward[e.Source], e.Target) {
			t.Errorf("%s not in Forward[%s]", e.Target, e.Source)
		}
		if !contains(adj.Reverse[e.Target], e.Source) {
			t.Errorf("%s not in Reverse[%s]", e.Source, e.Target)
		}
	}
}

func TestBuildAdjacencyNil(t *testing.T) {
	adj := BuildAdjacency(nil)
	if adj.Forward == nil || adj.Reverse == nil || len(adj.Forward) != 0 {
		t.Error("nil graph should yield empty, non-nil maps")
	}
}

func TestComputeStats(t *testing.T) {
	mods := []ModuleRecord{
		{Source: "a.ts", Dependencies: []DependencyRecord{{Resolved: "b.css", DependencyTypes: []string{"es6"}}}},
		{Source: "README.md"},
	}
	g := Build(mods, "")
	stats := ComputeStats(g, nil)

	if stats.TotalNodes != 3 || stats.TotalEdges != 1 {
		t.Errorf("totals = %d/%d", stats.TotalNodes, stats.TotalEdges)
	}
	if stats.IsolatedNodes != 1 {
		t.Errorf("IsolatedNodes = %d, want 1", stats.IsolatedNodes)
	}
	if stats.NodesByKind[NodeStyle] != 1 || stats.EdgesByKind[EdgeImport] != 1 {
		t.Errorf("kind counts: %+v %+v", stats.NodesByKind, stats.EdgesByKind)
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
