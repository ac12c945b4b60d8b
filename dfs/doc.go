// Package dfs provides depth-first search over a core.Graph.
//
// Path returns *a* path (edge-count-unbounded) between two vertices,
// using an explicit stack rather than recursion. HasCycleFrom reports
// whether the subgraph reachable from a start vertex contains a directed
// cycle; it is the acyclicity precondition check used by sssp.Dijkstra.
// Both walk neighbors in core's sorted order, so results are
// deterministic for a fixed graph.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V) for the stack and color/parent maps.
package dfs
