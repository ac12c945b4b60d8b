package sssp

import (
	"fmt"

	"github.com/katalvlaran/flownet/core"
)

// BellmanFord computes single-source shortest paths from source over g,
// detecting negative-weight cycles.
//
// It runs V rounds of relaxation over every edge. If any edge still
// admits relaxation afterwards, a negative cycle is reachable from
// source: the cycle is extracted by following predecessor pointers from
// the violating edge's head until a vertex repeats, trimming the prefix
// used only to reach the cycle, and returning the cycle closed
// (first == last) in traversal order. Otherwise complete distance and
// predecessor maps are returned.
//
// Complexity:
//
//	Time:   O(V · E)
//	Memory: O(V)
func BellmanFord(g *core.Graph, source core.Vertex) (*BellmanFordResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(source) {
		return nil, ErrSourceNotFound
	}

	vertices := g.Vertices()
	dist := make(map[core.Vertex]int64, len(vertices))
	prev := make(map[core.Vertex]core.Vertex, len(vertices))
	for _, v := range vertices {
		dist[v] = Unreachable
	}
	dist[source] = 0

	// V rounds of relaxation over all edges, in sorted order for
	// deterministic predecessor structure.
	for range vertices {
		for _, u := range vertices {
			neighbors, err := g.Neighbors(u)
			if err != nil {
				return nil, fmt.Errorf("sssp: neighbors of %q: %w", u, err)
			}
			for _, v := range neighbors {
				w, err := g.Weight(u, v)
				if err != nil {
					return nil, fmt.Errorf("sssp: weight of %q→%q: %w", u, v, err)
				}
				relax(u, v, w, dist, prev, nil)
			}
		}
	}

	// Any edge that still relaxes witnesses a negative cycle.
	for _, u := range vertices {
		neighbors, err := g.Neighbors(u)
		if err != nil {
			return nil, fmt.Errorf("sssp: neighbors of %q: %w", u, err)
		}
		for _, v := range neighbors {
			w, err := g.Weight(u, v)
			if err != nil {
				return nil, fmt.Errorf("sssp: weight of %q→%q: %w", u, v, err)
			}
			if dist[u] != Unreachable && dist[u]+w < dist[v] {
				cycle, cerr := extractCycle(v, prev)
				if cerr != nil {
					return nil, cerr
				}

				return &BellmanFordResult{Cycle: cycle}, nil
			}
		}
	}

	return &BellmanFordResult{Dist: dist, Prev: prev}, nil
}

// extractCycle follows predecessor pointers from v until a vertex
// repeats, then trims any prefix used only to reach the cycle. The walk
// runs backwards along predecessors, so the trimmed sequence is reversed
// to yield the cycle in edge-traversal order, closed (first == last).
func extractCycle(v core.Vertex, prev map[core.Vertex]core.Vertex) ([]core.Vertex, error) {
	seen := make(map[core.Vertex]bool)
	walk := make([]core.Vertex, 0, len(prev)+1)
	next := v
	for !seen[next] {
		seen[next] = true
		walk = append(walk, next)
		p, ok := prev[next]
		if !ok {
			return nil, ErrBrokenPredecessors
		}
		next = p
	}
	// next repeated: it is on the cycle. Close the walk with it, then
	// drop everything before its first occurrence.
	walk = append(walk, next)
	first := 0
	for i, u := range walk {
		if u == next {
			first = i
			break
		}
	}
	walk = walk[first:]
	for i, j := 0, len(walk)-1; i < j; i, j = i+1, j-1 {
		walk[i], walk[j] = walk[j], walk[i]
	}

	return walk, nil
}
