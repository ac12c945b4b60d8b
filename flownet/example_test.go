package flownet_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/flownet/core"
	"github.com/katalvlaran/flownet/flownet"
)

// A small water pipeline: two routes from the pump to the reservoir,
// limited by the pump's own outlets.
func ExampleNetwork_MaxFlow() {
	pump := core.NewVertex("pump")
	tank := core.NewVertex("tank")
	a := core.NewVertex("a")
	b := core.NewVertex("b")

	n := flownet.New(pump, tank)
	_ = n.AddEdge(pump, a, 4)
	_ = n.AddEdge(pump, b, 3)
	_ = n.AddEdge(a, tank, 5)
	_ = n.AddEdge(b, tank, 5)

	total, _ := n.MaxFlow(context.Background())
	fmt.Println("max flow:", total)
	// Output:
	// max flow: 7
}

// Shipping goods through two depots with different handling fees; the
// total cost is the fee-weighted sum over every leg carrying load.
func ExampleNetwork_MinCostMaxFlow() {
	factory := core.NewVertex("factory")
	store := core.NewVertex("store")
	cheap := core.NewVertex("depot-cheap")
	fast := core.NewVertex("depot-fast")

	n := flownet.New(factory, store)
	_ = n.AddEdge(factory, cheap, 6, flownet.WithCost(1))
	_ = n.AddEdge(factory, fast, 10, flownet.WithCost(4))
	_ = n.AddEdge(cheap, store, 6, flownet.WithCost(1))
	_ = n.AddEdge(fast, store, 10, flownet.WithCost(1))

	cost, flow, _ := n.MinCostMaxFlow(context.Background())
	fmt.Printf("flow %d at cost %d\n", flow, cost)
	// Output:
	// flow 16 at cost 62
}
