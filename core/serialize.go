package core

// Adjacency returns the graph's edge structure keyed by vertex values:
// map[u.Value()]map[v.Value()]weight. Vertices without outgoing edges do
// not appear as outer keys; callers that need the full vertex set use
// Vertices. The returned maps are fresh copies, safe to retain.
// Complexity: O(V + E)
func (g *Graph) Adjacency() map[string]map[string]int64 {
	out := make(map[string]map[string]int64, len(g.edges))
	for u, inner := range g.edges {
		row := make(map[string]int64, len(inner))
		for v, w := range inner {
			row[v.Value()] = w
		}
		out[u.Value()] = row
	}

	return out
}

// FromAdjacency reconstructs a Graph from the flat edge-map form
// produced by Adjacency. Vertices are rebuilt from their string values;
// weights are restored verbatim.
// Complexity: O(V + E)
func FromAdjacency(data map[string]map[string]int64) *Graph {
	g := NewGraph()
	for u, inner := range data {
		for v, w := range inner {
			g.AddEdge(NewVertex(u), NewVertex(v), w)
		}
	}

	return g
}
