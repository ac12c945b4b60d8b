package flownet

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/flownet/core"
)

// Network is a flow network between a distinguished source and sink.
// See the package documentation for the four-graph representation and
// the structural invariant linking them.
//
// The four graphs own their containers independently; no two graphs
// ever share an underlying map. Synchronization between them happens
// only through AddEdge and pushAugmentingFlow.
type Network struct {
	source core.Vertex
	sink   core.Vertex

	capacity  *core.Graph
	flow      *core.Graph
	residual  *core.Graph
	costGraph *core.Graph

	// cost is the original cost function on capacity edges. Only AddEdge
	// writes it; every reverse-edge cost in costGraph is derived from it.
	cost map[core.Vertex]map[core.Vertex]int64

	verify bool
	log    logrus.FieldLogger
}

// New creates an empty Network with the given source and sink, which
// become members of all four graphs immediately.
func New(source, sink core.Vertex, opts ...Option) *Network {
	n := &Network{
		source:    source,
		sink:      sink,
		capacity:  core.NewGraph(),
		flow:      core.NewGraph(),
		residual:  core.NewGraph(),
		costGraph: core.NewGraph(),
		cost:      make(map[core.Vertex]map[core.Vertex]int64),
		log:       discardLogger(),
	}
	for _, opt := range opts {
		opt(n)
	}
	n.addVertex(source)
	n.addVertex(sink)

	return n
}

// addVertex registers v with all four graphs. The cost graph needs the
// full vertex set too: Bellman–Ford counts relaxation rounds by it.
func (n *Network) addVertex(v core.Vertex) {
	n.capacity.AddVertex(v)
	n.flow.AddVertex(v)
	n.residual.AddVertex(v)
	n.costGraph.AddVertex(v)
}

// AddEdge appends the capacity edge (u,v), initializing flow to 0 and
// residual capacity to the full capacity. WithCost records a per-unit
// cost in the cost graph and the immutable original cost mapping.
//
// Fails with ErrNegativeCapacity when capacity < 0 and ErrDuplicateEdge
// when (u,v) was added before. Adding an edge never removes or rescales
// prior flow on other edges.
func (n *Network) AddEdge(u, v core.Vertex, capacity int64, opts ...EdgeOption) error {
	if capacity < 0 {
		return fmt.Errorf("%w: edge %q→%q capacity=%d", ErrNegativeCapacity, u, v, capacity)
	}
	if n.capacity.HasEdge(u, v) {
		return fmt.Errorf("%w: %q→%q", ErrDuplicateEdge, u, v)
	}
	var cfg edgeConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	n.addVertex(u)
	n.addVertex(v)
	n.capacity.AddEdge(u, v, capacity)
	n.flow.AddEdge(u, v, 0)
	// A zero-capacity edge admits no flow and therefore no residual
	// entry; anything else starts fully augmentable.
	if capacity > 0 {
		n.residual.AddEdge(u, v, capacity)
	}
	if cfg.hasCost {
		if capacity > 0 {
			n.costGraph.AddEdge(u, v, cfg.cost)
		}
		inner, ok := n.cost[u]
		if !ok {
			inner = make(map[core.Vertex]int64)
			n.cost[u] = inner
		}
		inner[v] = cfg.cost
	}

	if n.verify {
		return n.Verify()
	}

	return nil
}

// Source returns the network's source vertex.
func (n *Network) Source() core.Vertex { return n.source }

// Sink returns the network's sink vertex.
func (n *Network) Sink() core.Vertex { return n.sink }

// Capacity returns the capacity of edge (u,v), or core.ErrEdgeNotFound
// if no such capacity edge exists.
func (n *Network) Capacity(u, v core.Vertex) (int64, error) {
	return n.capacity.Weight(u, v)
}

// Flow returns the current flow on capacity edge (u,v), or
// core.ErrEdgeNotFound if no such capacity edge exists.
func (n *Network) Flow(u, v core.Vertex) (int64, error) {
	return n.flow.Weight(u, v)
}

// Cost returns the original cost of capacity edge (u,v) and whether one
// was recorded.
func (n *Network) Cost(u, v core.Vertex) (int64, bool) {
	c, ok := n.cost[u][v]
	return c, ok
}

// FlowGraph exposes the live flow graph so callers can read back the
// final per-edge assignment. The returned graph must be treated as
// read-only; mutating it breaks the network invariant.
func (n *Network) FlowGraph() *core.Graph { return n.flow }

// ResidualGraph exposes the live residual graph, read-only by the same
// convention as FlowGraph.
func (n *Network) ResidualGraph() *core.Graph { return n.residual }

// outOfSource sums the flow leaving the source.
func (n *Network) outOfSource() (int64, error) {
	neighbors, err := n.flow.Neighbors(n.source)
	if err != nil {
		return 0, invariantf("source %q missing from flow graph", n.source)
	}
	var total int64
	for _, v := range neighbors {
		f, werr := n.flow.Weight(n.source, v)
		if werr != nil {
			return 0, invariantf("flow edge %q→%q vanished during summation", n.source, v)
		}
		total += f
	}

	return total, nil
}
