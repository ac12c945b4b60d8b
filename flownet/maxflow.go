package flownet

import (
	"context"

	"github.com/katalvlaran/flownet/bfs"
	"github.com/katalvlaran/flownet/core"
)

// MaxFlow computes the maximum flow from source to sink using the
// Edmonds–Karp method: repeatedly find a shortest augmenting path in
// the residual graph by breadth-first search and saturate it.
//
// The network's flow and residual graphs are mutated in place, so the
// returned value can also be read back per edge via Flow. Calling
// MaxFlow again on a saturated network finds no augmenting path and
// returns the same total.
//
// Complexity: O(V·E²) augmentations in the worst case.
func (n *Network) MaxFlow(ctx context.Context) (int64, error) {
	for {
		path, err := bfs.ShortestPath(n.residual, n.source, n.sink, bfs.WithContext(ctx))
		if err != nil {
			return 0, err
		}
		if len(path) < 2 {
			break // no augmenting path remains (or source == sink)
		}
		if err = n.pushAugmentingFlow(path, false); err != nil {
			return 0, err
		}
		if n.verify {
			if err = n.Verify(); err != nil {
				return 0, err
			}
		}
	}

	return n.outOfSource()
}

// minCapAlongAugPath finds the bottleneck of an augmenting path in the
// residual graph. A hop (u,v) with no capacity edge is the reverse of
// capacity edge (v,u); its headroom is the flow currently on (v,u).
func (n *Network) minCapAlongAugPath(path []core.Vertex) (int64, error) {
	var minCap int64 = -1
	for i := 0; i+1 < len(path); i++ {
		u, v := path[i], path[i+1]
		var headroom int64
		if n.capacity.HasEdge(u, v) {
			c, err := n.capacity.Weight(u, v)
			if err != nil {
				return 0, invariantf("capacity edge %q→%q vanished", u, v)
			}
			f, err := n.flow.Weight(u, v)
			if err != nil {
				return 0, invariantf("flow edge %q→%q missing for capacity edge", u, v)
			}
			headroom = c - f
		} else {
			f, err := n.flow.Weight(v, u)
			if err != nil {
				return 0, invariantf("residual hop %q→%q has neither capacity nor reverse flow", u, v)
			}
			headroom = f
		}
		if minCap < 0 || headroom < minCap {
			minCap = headroom
		}
	}

	return minCap, nil
}

// minCapAlongResCycle finds the bottleneck of a residual cycle by the
// residual weights themselves.
func (n *Network) minCapAlongResCycle(cycle []core.Vertex) (int64, error) {
	var minCap int64 = -1
	for i := 0; i+1 < len(cycle); i++ {
		w, err := n.residual.Weight(cycle[i], cycle[i+1])
		if err != nil {
			return 0, invariantf("cycle hop %q→%q absent from residual graph", cycle[i], cycle[i+1])
		}
		if minCap < 0 || w < minCap {
			minCap = w
		}
	}

	return minCap, nil
}

// pushAugmentingFlow saturates a path or closed cycle of residual hops:
// it raises flow along forward hops, lowers it along backward hops, and
// rebalances the residual graph (and cost graph, when the network is
// costed) around the bottleneck.
func (n *Network) pushAugmentingFlow(hops []core.Vertex, isCycle bool) error {
	var (
		delta int64
		err   error
	)
	if isCycle {
		delta, err = n.minCapAlongResCycle(hops)
	} else {
		delta, err = n.minCapAlongAugPath(hops)
	}
	if err != nil {
		return err
	}

	costed := len(n.cost) > 0
	for i := 0; i+1 < len(hops); i++ {
		u, v := hops[i], hops[i+1]

		// 1. Adjust flow on the underlying capacity edge(s). Opposing
		// flow is canceled before forward flow is added: with
		// anti-parallel capacity edges the hop's residual weight pools
		// both, and only this order keeps each edge inside [0, cap].
		remaining := delta
		if n.flow.HasEdge(v, u) {
			f, werr := n.flow.Weight(v, u)
			if werr != nil {
				return invariantf("flow edge %q→%q vanished mid-push", v, u)
			}
			canceled := min64(remaining, f)
			n.flow.AddEdge(v, u, f-canceled)
			remaining -= canceled
		}
		if remaining > 0 {
			if !n.flow.HasEdge(u, v) {
				return invariantf("hop %q→%q pushes %d beyond cancelable flow", u, v, remaining)
			}
			f, werr := n.flow.Weight(u, v)
			if werr != nil {
				return invariantf("flow edge %q→%q vanished mid-push", u, v)
			}
			n.flow.AddEdge(u, v, f+remaining)
		}

		// 2. Shrink the used residual edge, dropping it when saturated.
		r, werr := n.residual.Weight(u, v)
		if werr != nil {
			return invariantf("residual edge %q→%q missing during push", u, v)
		}
		if delta > r {
			return invariantf("bottleneck %d exceeds residual %d on %q→%q", delta, r, u, v)
		}
		if delta == r {
			if rerr := n.residual.RemoveEdge(u, v); rerr != nil {
				return invariantf("residual edge %q→%q vanished during removal", u, v)
			}
			if costed && n.costGraph.HasEdge(u, v) {
				if rerr := n.costGraph.RemoveEdge(u, v); rerr != nil {
					return invariantf("cost edge %q→%q vanished during removal", u, v)
				}
			}
		} else {
			n.residual.AddEdge(u, v, r-delta)
		}

		// 3. Grow the reverse residual edge, with its cost if costed.
		if n.residual.HasEdge(v, u) {
			rev, werr2 := n.residual.Weight(v, u)
			if werr2 != nil {
				return invariantf("residual edge %q→%q vanished mid-push", v, u)
			}
			n.residual.AddEdge(v, u, rev+delta)
		} else {
			n.residual.AddEdge(v, u, delta)
			if costed {
				n.costGraph.AddEdge(v, u, n.reverseCost(u, v))
			}
		}
	}

	n.log.WithFields(map[string]interface{}{
		"hops":  len(hops) - 1,
		"delta": delta,
		"cycle": isCycle,
	}).Debug("flow pushed")

	return nil
}

func min64(a, b int64) int64 {
	if a < b {
		return a
	}

	return b
}

// reverseCost is the per-unit cost of residual edge (v,u) created by
// pushing flow along (u,v): the original cost of (v,u) if the network
// has such a capacity edge, otherwise the negated original cost of
// (u,v). Undoing flow earns the cost back.
func (n *Network) reverseCost(u, v core.Vertex) int64 {
	if c, ok := n.cost[v][u]; ok {
		return c
	}

	return -n.cost[u][v]
}
