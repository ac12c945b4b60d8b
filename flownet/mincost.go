package flownet

import (
	"context"

	"github.com/katalvlaran/flownet/sssp"
)

// MinCostMaxFlow computes a maximum flow of minimum total cost by cycle
// canceling: first establish any maximum flow, then repeatedly find a
// negative-cost cycle in the residual cost graph with Bellman–Ford and
// push the cycle's bottleneck around it. Each cancellation reroutes
// flow without changing its total, so the flow stays maximum while the
// cost strictly decreases; it terminates when no negative cycle remains.
//
// Returns the total cost (sum over capacity edges of flow × cost) and
// the total flow out of the source.
//
// Complexity: O(V·E² + C·V·E) where C bounds the number of canceled
// cycles by the initial cost of the maximum flow.
func (n *Network) MinCostMaxFlow(ctx context.Context) (cost, flow int64, err error) {
	if _, err = n.MaxFlow(ctx); err != nil {
		return 0, 0, err
	}

	for {
		if err = ctx.Err(); err != nil {
			return 0, 0, err
		}
		// The sink reaches every saturated region through the reverse
		// edges max flow created, so one Bellman–Ford run from the sink
		// sees every cancellable cycle.
		res, bfErr := sssp.BellmanFord(n.costGraph, n.sink)
		if bfErr != nil {
			return 0, 0, bfErr
		}
		if res.Cycle == nil {
			break
		}
		if err = n.pushAugmentingFlow(res.Cycle, true); err != nil {
			return 0, 0, err
		}
		if n.verify {
			if err = n.Verify(); err != nil {
				return 0, 0, err
			}
		}
	}

	if cost, err = n.totalCost(); err != nil {
		return 0, 0, err
	}
	if flow, err = n.outOfSource(); err != nil {
		return 0, 0, err
	}

	return cost, flow, nil
}

// totalCost sums flow × cost over every capacity edge carrying flow.
func (n *Network) totalCost() (int64, error) {
	var total int64
	for _, u := range n.flow.Vertices() {
		neighbors, err := n.flow.Neighbors(u)
		if err != nil {
			return 0, invariantf("vertex %q missing from flow graph", u)
		}
		for _, v := range neighbors {
			f, err := n.flow.Weight(u, v)
			if err != nil {
				return 0, invariantf("flow edge %q→%q vanished during costing", u, v)
			}
			if f == 0 {
				continue
			}
			c, ok := n.cost[u][v]
			if !ok {
				return 0, invariantf("edge %q→%q carries flow %d but has no cost", u, v, f)
			}
			total += f * c
		}
	}

	return total, nil
}
