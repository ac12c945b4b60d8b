// Package sssp implements single-source shortest paths over a core.Graph.
//
// Two algorithms share one edge-relaxation primitive:
//
//   - Dijkstra
//
//   - Method: min-heap with lazy decrease-key (stale entries skipped on pop).
//
//   - Precondition: the subgraph reachable from the source must be acyclic,
//     verified explicitly via dfs.HasCycleFrom before the heap loop runs.
//     A cyclic reachable subgraph is a caller contract violation
//     (ErrCyclicGraph), not a runtime condition.
//
//   - Time:   O((V + E) log V); Memory: O(V + E).
//
//   - Bellman–Ford
//
//   - Method: V rounds of relaxation over every edge; an edge that still
//     relaxes afterwards witnesses a negative-weight cycle.
//
//   - Returns either the cycle (closed vertex sequence, first == last, in
//     traversal order) with no maps, or complete distance and predecessor
//     maps with no cycle.
//
//   - Time:   O(V · E); Memory: O(V).
//
// Distances are int64; Unreachable (math.MaxInt64) marks vertices the
// source cannot reach. Relaxation never fires from an unreachable tail,
// so distances cannot overflow past the sentinel. Edges are visited in
// core's sorted order, making results deterministic for a fixed graph.
package sssp
