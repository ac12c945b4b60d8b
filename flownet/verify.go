package flownet

import (
	"github.com/katalvlaran/flownet/core"
)

// Verify checks the structural invariant tying the four graphs together
// and returns a wrapped ErrInvariantViolation naming the first breach.
// It is an opt-in development aid (see WithVerification); the mutation
// paths maintain the invariant themselves and never call it.
//
// Checked properties:
//
//  1. all four graphs hold the same vertex set
//  2. the flow graph has exactly the capacity graph's edges, with
//     0 ≤ flow ≤ capacity on each
//  3. for every ordered pair, the residual weight equals forward
//     headroom (capacity − flow) plus reverse flow from an anti-parallel
//     capacity edge, with the residual edge present iff that sum is
//     positive
//  4. on a costed network, the cost graph mirrors the residual edge set
//     with derivable per-unit costs
//  5. flow is conserved at every vertex besides source and sink
//
// Complexity: O(V + E) over the union of the four edge sets.
func (n *Network) Verify() error {
	if err := n.verifyVertexSets(); err != nil {
		return err
	}
	if err := n.verifyFlowBounds(); err != nil {
		return err
	}
	if err := n.verifyResidual(); err != nil {
		return err
	}
	if len(n.cost) > 0 {
		if err := n.verifyCostGraph(); err != nil {
			return err
		}
	}

	return n.verifyConservation()
}

func (n *Network) verifyVertexSets() error {
	want := n.capacity.Vertices()
	for name, g := range map[string]*core.Graph{
		"flow":     n.flow,
		"residual": n.residual,
		"cost":     n.costGraph,
	} {
		if g.VertexCount() != len(want) {
			return invariantf("%s graph has %d vertices, capacity graph has %d",
				name, g.VertexCount(), len(want))
		}
		for _, v := range want {
			if !g.HasVertex(v) {
				return invariantf("vertex %q missing from %s graph", v, name)
			}
		}
	}
	if !n.capacity.HasVertex(n.source) {
		return invariantf("source %q not a vertex", n.source)
	}
	if !n.capacity.HasVertex(n.sink) {
		return invariantf("sink %q not a vertex", n.sink)
	}

	return nil
}

func (n *Network) verifyFlowBounds() error {
	if n.flow.EdgeCount() != n.capacity.EdgeCount() {
		return invariantf("flow graph has %d edges, capacity graph has %d",
			n.flow.EdgeCount(), n.capacity.EdgeCount())
	}
	for _, u := range n.capacity.Vertices() {
		neighbors, err := n.capacity.Neighbors(u)
		if err != nil {
			return invariantf("vertex %q missing from capacity graph", u)
		}
		for _, v := range neighbors {
			c, _ := n.capacity.Weight(u, v)
			f, err := n.flow.Weight(u, v)
			if err != nil {
				return invariantf("capacity edge %q→%q has no flow edge", u, v)
			}
			if f < 0 || f > c {
				return invariantf("flow %d on %q→%q outside [0, %d]", f, u, v, c)
			}
		}
	}

	return nil
}

// verifyResidual recomputes the expected residual weight of every
// ordered pair touched by a capacity edge in either direction.
func (n *Network) verifyResidual() error {
	expected := make(map[core.Vertex]map[core.Vertex]int64)
	add := func(u, v core.Vertex, w int64) {
		inner, ok := expected[u]
		if !ok {
			inner = make(map[core.Vertex]int64)
			expected[u] = inner
		}
		inner[v] += w
	}
	for _, u := range n.capacity.Vertices() {
		neighbors, err := n.capacity.Neighbors(u)
		if err != nil {
			return invariantf("vertex %q missing from capacity graph", u)
		}
		for _, v := range neighbors {
			c, _ := n.capacity.Weight(u, v)
			f, err := n.flow.Weight(u, v)
			if err != nil {
				return invariantf("capacity edge %q→%q has no flow edge", u, v)
			}
			add(u, v, c-f) // forward headroom
			add(v, u, f)   // undo capacity
		}
	}

	var count int
	for u, inner := range expected {
		for v, want := range inner {
			if want == 0 {
				if n.residual.HasEdge(u, v) {
					return invariantf("residual edge %q→%q should be absent", u, v)
				}

				continue
			}
			count++
			got, err := n.residual.Weight(u, v)
			if err != nil {
				return invariantf("residual edge %q→%q missing, want weight %d", u, v, want)
			}
			if got != want {
				return invariantf("residual %q→%q is %d, want %d", u, v, got, want)
			}
		}
	}
	if n.residual.EdgeCount() != count {
		return invariantf("residual graph has %d edges, want %d", n.residual.EdgeCount(), count)
	}

	return nil
}

// verifyCostGraph requires the cost graph's edge set to mirror the
// residual graph's, each edge weighted by the original cost in its
// direction or the negated original cost of the opposite direction.
func (n *Network) verifyCostGraph() error {
	if n.costGraph.EdgeCount() != n.residual.EdgeCount() {
		return invariantf("cost graph has %d edges, residual graph has %d",
			n.costGraph.EdgeCount(), n.residual.EdgeCount())
	}
	for _, u := range n.residual.Vertices() {
		neighbors, err := n.residual.Neighbors(u)
		if err != nil {
			return invariantf("vertex %q missing from residual graph", u)
		}
		for _, v := range neighbors {
			got, err := n.costGraph.Weight(u, v)
			if err != nil {
				return invariantf("residual edge %q→%q has no cost edge", u, v)
			}
			var want int64
			if c, ok := n.cost[u][v]; ok {
				want = c
			} else if c, ok = n.cost[v][u]; ok {
				want = -c
			} else {
				return invariantf("no cost derivable for residual edge %q→%q", u, v)
			}
			if got != want {
				return invariantf("cost of %q→%q is %d, want %d", u, v, got, want)
			}
		}
	}

	return nil
}

// verifyConservation checks inflow == outflow at every vertex other
// than source and sink.
func (n *Network) verifyConservation() error {
	in := make(map[core.Vertex]int64)
	out := make(map[core.Vertex]int64)
	for _, u := range n.flow.Vertices() {
		neighbors, err := n.flow.Neighbors(u)
		if err != nil {
			return invariantf("vertex %q missing from flow graph", u)
		}
		for _, v := range neighbors {
			f, _ := n.flow.Weight(u, v)
			out[u] += f
			in[v] += f
		}
	}
	for _, v := range n.flow.Vertices() {
		if v == n.source || v == n.sink {
			continue
		}
		if in[v] != out[v] {
			return invariantf("vertex %q receives %d but sends %d", v, in[v], out[v])
		}
	}
	if net := out[n.source] - in[n.source]; net != in[n.sink]-out[n.sink] {
		return invariantf("source emits %d but sink absorbs %d", net, in[n.sink]-out[n.sink])
	}

	return nil
}
