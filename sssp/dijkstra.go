package sssp

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/flownet/core"
	"github.com/katalvlaran/flownet/dfs"
)

// Dijkstra computes shortest distances and predecessors from source to
// every vertex of g.
//
// The subgraph reachable from source must be acyclic; this is verified
// up front (ErrCyclicGraph otherwise). Within that contract weights may
// be negative: the heap is lazy and a vertex is re-expanded whenever a
// shorter distance for it is popped, so label correction converges on a
// DAG regardless of sign.
//
// Complexity:
//
//	Time:   O((V + E) log V) after an O(V + E) acyclicity check.
//	Memory: O(V + E) for maps and the lazy heap.
func Dijkstra(g *core.Graph, source core.Vertex) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(source) {
		return nil, ErrSourceNotFound
	}
	cyclic, err := dfs.HasCycleFrom(g, source)
	if err != nil {
		return nil, fmt.Errorf("sssp: acyclicity check: %w", err)
	}
	if cyclic {
		return nil, ErrCyclicGraph
	}

	vertices := g.Vertices()
	res := &Result{
		Dist: make(map[core.Vertex]int64, len(vertices)),
		Prev: make(map[core.Vertex]core.Vertex, len(vertices)),
	}
	for _, v := range vertices {
		res.Dist[v] = Unreachable
	}
	res.Dist[source] = 0
	res.Prev[source] = source

	pq := make(nodePQ, 0, len(vertices))
	heap.Init(&pq)
	heap.Push(&pq, &nodeItem{v: source, dist: 0})
	push := func(v core.Vertex, d int64) {
		heap.Push(&pq, &nodeItem{v: v, dist: d})
	}

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*nodeItem)
		u := item.v
		if item.dist > res.Dist[u] {
			continue // stale heap entry
		}
		neighbors, nerr := g.Neighbors(u)
		if nerr != nil {
			return nil, fmt.Errorf("sssp: neighbors of %q: %w", u, nerr)
		}
		for _, v := range neighbors {
			w, werr := g.Weight(u, v)
			if werr != nil {
				return nil, fmt.Errorf("sssp: weight of %q→%q: %w", u, v, werr)
			}
			relax(u, v, w, res.Dist, res.Prev, push)
		}
	}

	return res, nil
}

// nodeItem pairs a vertex with the distance it was pushed at.
type nodeItem struct {
	v    core.Vertex
	dist int64
}

// nodePQ is a min-heap of *nodeItem ordered by distance, using the
// lazy-decrease-key pattern: improvements push fresh entries and stale
// ones are skipped on pop.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
