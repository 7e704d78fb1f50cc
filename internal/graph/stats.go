package graph

// Stats summarizes a graph snapshot.
type Stats struct {
	TotalNodes    int              `json:"totalNodes"`
	TotalEdges    int              `json:"totalEdges"`
	IsolatedNodes int              `json:"isolatedNodes"`
	NodesByKind   map[NodeKind]int `json:"nodesByKind"`
	EdgesByKind   map[EdgeKind]int `json:"edgesByKind"`
	AvgOutDegree  float64          `json:"avgOutDegree"`
	SizeCapped    bool             `json:"sizeCapped"`
}

// ComputeStats returns statistics about g using its adjacency.
func ComputeStats(g *Graph, adj *Adjacency) Stats {
	stats := Stats{
		NodesByKind: make(map[NodeKind]int),
		EdgesByKind: make(map[EdgeKind]int),
	}
	if g == nil {
		return stats
	}
	if adj == nil {
		adj = BuildAdjacency(g)
	}

	stats.TotalNodes = len(g.Nodes)
	stats.TotalEdges = len(g.Edges)
	stats.SizeCapped = g.Meta.SizeCapped

	for _, n := range g.Nodes {
		stats.NodesByKind[n.Kind]++
		if adj.Degree(n.ID) == 0 {
			stats.IsolatedNodes++
		}
	}
	for _, e := range g.Edges {
		stats.EdgesByKind[e.Kind]++
	}

	if stats.TotalNodes > 0 {
		stats.AvgOutDegree = float64(stats.TotalEdges) / float64(stats.TotalNodes)
	}
	return stats
}
