package sssp

import (
	"errors"
	"math"

	"github.com/katalvlaran/flownet/core"
)

// Unreachable is the distance assigned to vertices the source cannot
// reach. Relaxation treats it as absorbing: no edge is relaxed from an
// unreachable tail.
const Unreachable = int64(math.MaxInt64)

// Sentinel errors for shortest-path execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("sssp: graph is nil")

	// ErrSourceNotFound is returned when the source vertex is absent.
	ErrSourceNotFound = errors.New("sssp: source vertex not found")

	// ErrCyclicGraph is returned by Dijkstra when the subgraph reachable
	// from the source contains a cycle (caller contract violation).
	ErrCyclicGraph = errors.New("sssp: reachable subgraph is not acyclic")

	// ErrBrokenPredecessors indicates the predecessor chain ended before
	// revisiting a vertex during negative-cycle extraction. It signals an
	// internal inconsistency, not a property of the input graph.
	ErrBrokenPredecessors = errors.New("sssp: predecessor chain broke during cycle extraction")
)

// Result holds single-source shortest-path output:
//   - Dist: vertex → shortest distance from the source (Unreachable if none).
//   - Prev: vertex → predecessor on its shortest path. The source maps to
//     itself; unreachable vertices are absent.
type Result struct {
	Dist map[core.Vertex]int64
	Prev map[core.Vertex]core.Vertex
}

// PathTo reconstructs the shortest path from the source to dest, or nil
// if dest is unreachable.
func (r *Result) PathTo(dest core.Vertex) []core.Vertex {
	if d, ok := r.Dist[dest]; !ok || d == Unreachable {
		return nil
	}
	path := []core.Vertex{dest}
	for cur := dest; ; {
		prev, ok := r.Prev[cur]
		if !ok || prev == cur {
			break
		}
		path = append(path, prev)
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// BellmanFordResult is the two-mode output of BellmanFord: exactly one of
// Cycle or (Dist, Prev) is populated.
//   - Cycle: a negative-weight cycle as a closed vertex sequence
//     (first == last) in edge-traversal order; Dist and Prev are nil.
//   - Dist/Prev: complete shortest-path maps when no negative cycle is
//     reachable; Cycle is nil.
type BellmanFordResult struct {
	Cycle []core.Vertex
	Dist  map[core.Vertex]int64
	Prev  map[core.Vertex]core.Vertex
}
