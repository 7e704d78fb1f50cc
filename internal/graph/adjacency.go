package graph

// AdjacencyList maps a node id to its neighbor ids. Repeated edges appear
// repeatedly; lists are never deduplicated.
type AdjacencyList map[string][]string

// Adjacency holds both directions of a graph snapshot.
// Forward maps a node to what it depends on; Reverse maps a node to what
// depends on it. Every known node id has an entry in both, possibly empty.
type Adjacency struct {
	Forward AdjacencyList `json:"forward"`
	Reverse AdjacencyList `json:"reverse"`
}

// BuildAdjacency derives forward and reverse adjacency from g in one pass
// over its edges. Edges referencing ids that are not graph nodes still get
// entries, so lookups never need an existence check.
func BuildAdjacency(g *Graph) *Adjacency {
	adj := &Adjacency{
		Forward: make(AdjacencyList),
		Reverse: make(AdjacencyList),
	}
	if g == nil {
		return adj
	}

	for _, n := range g.Nodes {
		adj.Forward[n.ID] = []string{}
		adj.Reverse[n.ID] = []string{}
	}

	for _, e := range g.Edges {
		adj.Forward[e.Source] = append(adj.Forward[e.Source], e.Target)
		adj.Reverse[e.Target] = append(adj.Reverse[e.Target], e.Source)
		if _, ok := adj.Forward[e.Target]; !ok {
			adj.Forward[e.Target] = []string{}
		}
		if _, ok := adj.Reverse[e.Source]; !ok {
			adj.Reverse[e.Source] = []string{}
		}
	}

	return adj
}

// Has reports whether id is a known node of the snapshot.
func (a *Adjacency) Has(id string) bool {
	if a == nil {
		return false
	}
	_, ok := a.Forward[id]
	return ok
}

// Degree returns |Forward[id]| + |Reverse[id]|, counting parallel edges.
func (a *Adjacency) Degree(id string) int {
	if a == nil {
		return 0
	}
	return len(a.Forward[id]) + len(a.Reverse[id])
}
