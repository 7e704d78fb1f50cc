package traverse

import (
	"fmt"
	"testing"
)

func TestContextCycleTerminates(t *testing.T) {
	_, adj := buildAdj(edge("a", "b"), edge("b", "a"))

	result := Context("a", adj, ContextOptions{Depth: 5, ResultCap: 30})

	if !equalStrings(result.Related, []string{"b"}) {
		t.Errorf("Related = %v, want [b]", result.Related)
	}
	if result.Stats.NodesVisited != 2 {
		t.Errorf("NodesVisited = %d, want 2", result.Stats.NodesVisited)
	}
}

func TestContextDepthBound(t *testing.T) {
	_, adj := buildAdj(edge("a", "b"), edge("b", "c"))

	result := Context("a", adj, ContextOptions{Depth: 1})
	if !equalStrings(result.Related, []string{"b"}) {
		t.Errorf("Related = %v, want [b]", result.Related)
	}

	result = Context("a", adj, ContextOptions{Depth: 2})
	if !equalStrings(result.Related, []string{"b", "c"}) {
		t.Errorf("Related = %v, want [b c]", result.Related)
	}
}

func TestContextDefaultDepthIsOneHop(t *testing.T) {
	_, adj := buildAdj(edge("a", "b"), edge("b", "c"))
	result := Context("a", adj, ContextOptions{})
	if !equalStrings(result.Related, []string{"b"}) {
		t.Errorf("Related = %v, want [b]", result.Related)
	}
}

func TestContextNonPositiveDepthUsesMinimum(t *testing.T) {
	_, adj := buildAdj(edge("a", "b"), edge("b", "c"), edge("c", "d"))

	for _, depth := range []int{0, -1, -5} {
		t.Run(fmt.Sprintf("depth=%d", depth), func(t *testing.T) {
			result := Context("a", adj, ContextOptions{Depth: depth})
			if !equalStrings(result.Related, []string{"b"}) {
				t.Errorf("Related = %v, want [b]", result.Related)
			}
		})
	}

	result := Context("a", adj, ContextOptions{Depth: 3})
	if !equalStrings(result.Related, []string{"b", "c", "d"}) {
		t.Errorf("Depth 3 Related = %v, want [b c d]", result.Related)
	}
}

func TestContextUnionOfDirections(t *testing.T) {
	_, adj := buildAdj(edge("a", "dep"), edge("user", "a"))

	result := Context("a", adj, ContextOptions{Depth: 1})
	if len(result.Related) != 2 {
		t.Fatalf("Related = %v, want both imports and imported-by", result.Related)
	}
}

func TestContextRanksByDegree(t *testing.T) {
	// seed discovers "light" before "heavy"; heavy has degree 5, light 2.
	_, adj := buildAdj(
		edge("seed", "light"), edge("seed", "heavy"),
		edge("light", "l1"),
		edge("heavy", "h1"), edge("heavy", "h2"), edge("heavy", "h3"), edge("heavy", "h4"),
	)

	result := Context("seed", adj, ContextOptions{Depth: 1})

	if !equalStrings(result.Related, []string{"heavy", "light"}) {
		t.Errorf("Related = %v, want [heavy light]", result.Related)
	}
	if result.Ranked[0].Degree != 5 || result.Ranked[1].Degree != 2 {
		t.Errorf("Ranked = %+v", result.Ranked)
	}
}

func TestContextDepthBeforeDegree(t *testing.T) {
	_, adj := buildAdj(
		edge("seed", "near"),
		edge("near", "far"),
		edge("far", "x1"), edge("far", "x2"), edge("far", "x3"),
	)

	result := Context("seed", adj, ContextOptions{Depth: 2})
	if !equalStrings(result.Related, []string{"near", "far"}) {
		t.Errorf("Related = %v, want shallower nodes first", result.Related)
	}
}

func TestContextResultCap(t *testing.T) {
	var pairs [][2]string
	for i := 0; i < 50; i++ {
		pairs = append(pairs, edge("seed", fmt.Sprintf("n%02d", i)))
	}
	_, adj := buildAdj(pairs...)

	result := Context("seed", adj, ContextOptions{Depth: 1, ResultCap: 10})
	if len(result.Related) != 10 {
		t.Fatalf("len(Related) = %d, want 10", len(result.Related))
	}
	// Equal depth and degree fall back to discovery order.
	if result.Related[0] != "n00" || result.Related[9] != "n09" {
		t.Errorf("Related = %v", result.Related)
	}
	// The walk itself is not cut short by the cap.
	if result.Stats.NodesVisited != 51 {
		t.Errorf("NodesVisited = %d, want 51", result.Stats.NodesVisited)
	}

	if def := Context("seed", adj, ContextOptions{Depth: 1}); len(def.Related) != DefaultResultCap {
		t.Errorf("default cap: got %d", len(def.Related))
	}
}

func TestContextUnknownSeed(t *testing.T) {
	_, adj := buildAdj(edge("a", "b"))
	result := Context("ghost", adj, ContextOptions{})
	if result.Related == nil || len(result.Related) != 0 {
		t.Errorf("Related = %v, want empty non-nil", result.Related)
	}
}

func TestRank(t *testing.T) {
	in := []Candidate{
		{ID: "d2", Depth: 2, Degree: 9, Order: 0},
		{ID: "a", Depth: 1, Degree: 1, Order: 1},
		{ID: "b", Depth: 1, Degree: 3, Order: 2},
		{ID: "c", Depth: 1, Degree: 3, Order: 3},
	}

	got := Rank(in, 3)
	ids := []string{got[0].ID, got[1].ID, got[2].ID}
	if !equalStrings(ids, []string{"b", "c", "a"}) {
		t.Errorf("Rank = %v", ids)
	}
	if in[0].ID != "d2" {
		t.Error("Rank must not reorder its input")
	}
	if len(Rank(in, 0)) != 4 {
		t.Error("limit <= 0 keeps everything")
	}
}
