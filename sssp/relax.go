package sssp

import "github.com/katalvlaran/flownet/core"

// relax applies the triangle inequality to edge (u,v) with weight w:
//
//	dist(v) ← dist(u) + w   if dist(v) > dist(u) + w
//
// On improvement it records u as v's predecessor (when prev is non-nil)
// and hands the new (vertex, distance) pair to push (when non-nil),
// supporting Dijkstra's lazy, possibly-stale priority queue. Returns
// whether the relaxation fired. dist must contain entries for u and v.
func relax(
	u, v core.Vertex,
	w int64,
	dist map[core.Vertex]int64,
	prev map[core.Vertex]core.Vertex,
	push func(v core.Vertex, d int64),
) bool {
	du := dist[u]
	if du == Unreachable {
		return false
	}
	nd := du + w
	if nd >= dist[v] {
		return false
	}
	dist[v] = nd
	if prev != nil {
		prev[v] = u
	}
	if push != nil {
		push(v, nd)
	}

	return true
}
