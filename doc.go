// Package flownet is a directed weighted-graph library with a flow-network
// engine on top: Edmonds–Karp maximum flow and cycle-canceling
// minimum-cost maximum flow, with snapshot persistence for long-running
// computations.
//
// The module is organized as focused subpackages:
//
//	core/    — Vertex and Graph primitives with deterministic iteration
//	bfs/     — breadth-first traversal and fewest-edge paths
//	dfs/     — depth-first reachability and cycle detection
//	sssp/    — Dijkstra and Bellman–Ford with negative-cycle extraction
//	flownet/ — the Network type: max flow, min-cost max flow, snapshots
//	codec/   — JSON/msgpack snapshot encoding with optional zstd
//	netgen/  — deterministic network generators for tests and benchmarks
//
// A minimal session:
//
//	n := flownet.New(core.NewVertex("s"), core.NewVertex("t"))
//	_ = n.AddEdge(core.NewVertex("s"), core.NewVertex("t"), 10, flownet.WithCost(3))
//	cost, flow, err := n.MinCostMaxFlow(ctx)
//
// The cmd/flownet command runs the same computations over persisted
// snapshots from the shell.
package flownet
