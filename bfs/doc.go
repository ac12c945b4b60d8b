// Package bfs provides breadth-first search over a core.Graph.
//
// Traverse explores vertices in increasing edge-count distance from a
// start vertex and returns visit order, depth and parent links.
// ShortestPath returns the fewest-edge path between two vertices,
// short-circuiting as soon as the target is discovered; it is the
// augmenting-path primitive of the flow engine (Edmonds–Karp bounds
// augmentations to O(V·E²) precisely because paths are BFS-shortest).
//
// Neighbor iteration follows core's sorted order, so results are
// deterministic for a fixed graph.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V) for queue, visited set and parent links.
package bfs
