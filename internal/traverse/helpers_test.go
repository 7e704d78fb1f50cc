package traverse

import (
	"depscope/internal/graph"
)

// buildAdj builds adjacency from "a->b" pairs through the real graph builder.
func buildAdj(pairs ...[2]string) (*graph.Graph, *graph.Adjacency) {
	var mods []graph.ModuleRecord
	index := make(map[string]int)
	for _, p := range pairs {
		i, ok := index[p[0]]
		if !ok {
			i = len(mods)
			index[p[0]] = i
			mods = append(mods, graph.ModuleRecord{Source: p[0]})
		}
		if p[1] != "" {
			mods[i].Dependencies = append(mods[i].Dependencies, graph.DependencyRecord{Resolved: p[1]})
		}
	}
	g := graph.Build(mods, "")
	return g, graph.BuildAdjacency(g)
}

func edge(a, b string) [2]string { return [2]string{a, b} }

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
