// Package core defines the central Vertex and Graph types used by every
// algorithm in flownet.
//
// A Graph is a directed, weighted adjacency structure: a set of vertices
// plus a nested mapping u → (v → int64 weight). Absence of an entry means
// "no edge"; a weight of 0 is a real, present edge and is never implied
// by absence. Every vertex referenced by the adjacency mapping is also a
// member of the vertex set.
//
// Vertices are immutable value types, ordered and comparable by their
// underlying string value, and usable directly as map keys. A Graph never
// mutates a Vertex, only its adjacency.
//
// Iteration order: Vertices and Neighbors return results sorted by vertex
// value, so every traversal built on top of core is deterministic.
//
// Errors:
//
//	ErrVertexNotFound - an operation referenced a vertex not in the graph.
//	ErrEdgeNotFound   - a weight lookup or removal referenced an absent edge.
package core
