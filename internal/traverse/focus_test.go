package traverse

import (
	"bytes"
	"fmt"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestFocusFanoutCap(t *testing.T) {
	pairs := make([][2]string, 0, 150)
	for i := 0; i < 150; i++ {
		pairs = append(pairs, edge("hub", fmt.Sprintf("leaf%03d", i)))
	}
	_, adj := buildAdj(pairs...)

	result := Focus("hub", adj, FocusOptions{Depth: 1, Lens: LensChildren, MaxFanout: 100})

	if len(result.VisibleNodes) != 101 {
		t.Fatalf("expected root + 100 neighbors, got %d", len(result.VisibleNodes))
	}
	if len(result.VisibleEdges) != 100 {
		t.Errorf("expected 100 edges, got %d", len(result.VisibleEdges))
	}
	if !result.HasNode("leaf099") || result.HasNode("leaf100") {
		t.Error("only the first 100 neighbors in iteration order should be visible")
	}
}

func TestFocusLensParentsKeepsEdgeOrientation(t *testing.T) {
	_, adj := buildAdj(edge("page", "button"), edge("form", "button"), edge("app", "page"), edge("button", "icon"))

	result := Focus("button", adj, FocusOptions{Depth: 2, Lens: LensParents})

	wantNodes := []string{"button", "page", "form", "app"}
	if !equalStrings(result.VisibleNodes, wantNodes) {
		t.Errorf("VisibleNodes = %v, want %v", result.VisibleNodes, wantNodes)
	}
	for _, id := range []string{"page->button", "form->button", "app->page"} {
		if !result.HasEdge(id) {
			t.Errorf("missing edge %s in %v", id, result.VisibleEdges)
		}
	}
	if result.HasNode("icon") {
		t.Error("parents lens must not walk forward")
	}
}

func TestFocusDepth(t *testing.T) {
	_, adj := buildAdj(edge("a", "b"), edge("b", "c"), edge("c", "d"))

	tests := []struct {
		depth int
		want  []string
	}{
		{0, []string{"a"}},
		{-3, []string{"a"}},
		{1, []string{"a", "b"}},
		{2, []string{"a", "b", "c"}},
	}

	for _, tt := range tests {
		result := Focus("a", adj, FocusOptions{Depth: tt.depth})
		if !equalStrings(result.VisibleNodes, tt.want) {
			t.Errorf("depth %d: VisibleNodes = %v, want %v", tt.depth, result.VisibleNodes, tt.want)
		}
		if result.Lens != LensChildren {
			t.Errorf("default lens = %q", result.Lens)
		}
	}
}

func TestFocusRecordsParallelAndCycleEdges(t *testing.T) {
	_, adj := buildAdj(edge("a", "b"), edge("a", "b"), edge("b", "a"))

	result := Focus("a", adj, FocusOptions{Depth: 3})

	want := []string{"a->b", "a->b#1", "b->a"}
	if !equalStrings(result.VisibleEdges, want) {
		t.Errorf("VisibleEdges = %v, want %v", result.VisibleEdges, want)
	}
	if !equalStrings(result.VisibleNodes, []string{"a", "b"}) {
		t.Errorf("VisibleNodes = %v", result.VisibleNodes)
	}
}

func TestFocusSlowWarningIsAdvisory(t *testing.T) {
	_, adj := buildAdj(edge("a", "b"), edge("b", "c"))

	origNow := now
	t.Cleanup(func() { now = origNow })
	tick := time.Unix(0, 0)
	now = func() time.Time {
		tick = tick.Add(80 * time.Millisecond)
		return tick
	}

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	result := Focus("a", adj, FocusOptions{Depth: 5, Logger: logger})

	if !equalStrings(result.VisibleNodes, []string{"a", "b", "c"}) {
		t.Errorf("slow traversal must still complete, got %v", result.VisibleNodes)
	}
	if len(result.Warnings) != 1 {
		t.Fatalf("expected one warning, got %v", result.Warnings)
	}
	if !strings.Contains(buf.String(), "Slow focus traversal") {
		t.Errorf("expected warning log, got %q", buf.String())
	}
}

func TestFocusFastHasNoWarning(t *testing.T) {
	_, adj := buildAdj(edge("a", "b"))

	origNow := now
	t.Cleanup(func() { now = origNow })
	fixed := time.Unix(0, 0)
	now = func() time.Time { return fixed }

	result := Focus("a", adj, FocusOptions{Depth: 1})
	if len(result.Warnings) != 0 {
		t.Errorf("unexpected warnings %v", result.Warnings)
	}
}

func TestParseLens(t *testing.T) {
	if ParseLens("parents") != LensParents {
		t.Error("parents")
	}
	if ParseLens("children") != LensChildren || ParseLens("") != LensChildren || ParseLens("sideways") != LensChildren {
		t.Error("unknown lenses default to children")
	}
}
