package core

import (
	"errors"
	"sort"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	// Weight 0 is a real value; absence is always reported, never defaulted.
	ErrEdgeNotFound = errors.New("core: edge not found")
)

// Graph is a directed, weighted graph: a vertex set plus an adjacency
// mapping u → (v → weight). Weights are int64; zero-weight edges are
// present edges, distinct from absence.
//
// Graph is not safe for concurrent mutation; callers that share one
// instance across goroutines must serialize access externally.
type Graph struct {
	vertices map[Vertex]struct{}
	edges    map[Vertex]map[Vertex]int64
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		vertices: make(map[Vertex]struct{}),
		edges:    make(map[Vertex]map[Vertex]int64),
	}
}

// AddVertex inserts v into the vertex set. Re-adding is a no-op.
// Complexity: O(1)
func (g *Graph) AddVertex(v Vertex) {
	g.vertices[v] = struct{}{}
}

// AddEdge inserts the directed edge (u,v) with the given weight,
// overwriting any previous weight, and adds both endpoints to the
// vertex set if absent. Whether overwriting an edge is meaningful is
// the caller's contract, not the Graph's.
// Complexity: O(1)
func (g *Graph) AddEdge(u, v Vertex, weight int64) {
	inner, ok := g.edges[u]
	if !ok {
		inner = make(map[Vertex]int64)
		g.edges[u] = inner
	}
	inner[v] = weight
	g.vertices[u] = struct{}{}
	g.vertices[v] = struct{}{}
}

// RemoveEdge deletes the directed edge (u,v). Both endpoints remain in
// the vertex set. Returns ErrEdgeNotFound if the edge is absent.
// Complexity: O(1)
func (g *Graph) RemoveEdge(u, v Vertex) error {
	inner, ok := g.edges[u]
	if !ok {
		return ErrEdgeNotFound
	}
	if _, ok = inner[v]; !ok {
		return ErrEdgeNotFound
	}
	delete(inner, v)
	if len(inner) == 0 {
		delete(g.edges, u)
	}

	return nil
}

// Weight returns the weight of edge (u,v), or ErrEdgeNotFound if the
// edge is absent. A stored weight of 0 is returned as 0 with a nil
// error; absence is never reported as 0.
// Complexity: O(1)
func (g *Graph) Weight(u, v Vertex) (int64, error) {
	inner, ok := g.edges[u]
	if !ok {
		return 0, ErrEdgeNotFound
	}
	w, ok := inner[v]
	if !ok {
		return 0, ErrEdgeNotFound
	}

	return w, nil
}

// HasVertex reports whether v is a member of the vertex set.
// Complexity: O(1)
func (g *Graph) HasVertex(v Vertex) bool {
	_, ok := g.vertices[v]
	return ok
}

// HasEdge reports whether the directed edge (u,v) is present.
// Complexity: O(1)
func (g *Graph) HasEdge(u, v Vertex) bool {
	_, ok := g.edges[u][v]
	return ok
}

// Vertices returns all vertices sorted by value (stable, deterministic
// order; rely on it for reproducible traversals and golden tests).
// Complexity: O(V log V)
func (g *Graph) Vertices() []Vertex {
	out := make([]Vertex, 0, len(g.vertices))
	for v := range g.vertices {
		out = append(out, v)
	}
	sortVertices(out)

	return out
}

// Neighbors returns the targets of all outgoing edges of u, sorted by
// value. A vertex with no outgoing edges yields an empty slice.
// Returns ErrVertexNotFound if u is not in the vertex set.
// Complexity: O(deg(u) log deg(u))
func (g *Graph) Neighbors(u Vertex) ([]Vertex, error) {
	if !g.HasVertex(u) {
		return nil, ErrVertexNotFound
	}
	inner := g.edges[u]
	out := make([]Vertex, 0, len(inner))
	for v := range inner {
		out = append(out, v)
	}
	sortVertices(out)

	return out, nil
}

// OutDegree returns the number of outgoing edges of u.
// Complexity: O(1)
func (g *Graph) OutDegree(u Vertex) int {
	return len(g.edges[u])
}

// VertexCount returns the size of the vertex set.
// Complexity: O(1)
func (g *Graph) VertexCount() int { return len(g.vertices) }

// EdgeCount returns the total number of directed edges.
// Complexity: O(V)
func (g *Graph) EdgeCount() int {
	n := 0
	for _, inner := range g.edges {
		n += len(inner)
	}

	return n
}

// Clone returns a deep copy of g. The copy shares no maps with the
// original, so mutating one never affects the other.
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	c := &Graph{
		vertices: make(map[Vertex]struct{}, len(g.vertices)),
		edges:    make(map[Vertex]map[Vertex]int64, len(g.edges)),
	}
	for v := range g.vertices {
		c.vertices[v] = struct{}{}
	}
	for u, inner := range g.edges {
		dst := make(map[Vertex]int64, len(inner))
		for v, w := range inner {
			dst[v] = w
		}
		c.edges[u] = dst
	}

	return c
}

func sortVertices(vs []Vertex) {
	sort.Slice(vs, func(i, j int) bool { return vs[i].Less(vs[j]) })
}
