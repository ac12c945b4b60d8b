// Package flownet implements a flow network over integer capacities:
// maximum flow via shortest augmenting paths (Edmonds–Karp) and
// minimum-cost maximum flow via negative-cycle canceling.
//
// A Network composes four mutually-consistent core.Graphs plus one
// immutable cost mapping:
//
//   - capacity: topology and per-edge capacity; append-only via AddEdge.
//   - flow:     current flow per capacity edge; edges start at 0 and are
//     never removed (zero flow is stored explicitly, not by deletion).
//   - residual: remaining pushable capacity per directed edge, including
//     reverse edges that represent cancelable flow.
//   - costGraph: mirrors the residual edge set, weighting each residual
//     edge with its cost (forward edges keep the original cost; reverse
//     edges carry the negated original cost unless the reverse direction
//     is itself an original cost edge, in which case its own cost wins).
//   - cost: the original cost function on capacity edges, written only
//     by AddEdge.
//
// MaxFlow repeatedly finds a fewest-edge augmenting path in the residual
// graph via BFS and pushes the bottleneck amount until no path remains
// (O(V·E²) augmentations; termination relies on integral capacities).
// MinCostMaxFlow first obtains a feasible max flow, then cancels
// Bellman–Ford negative-cost cycles found in the cost graph from the
// sink until none remain; each cancellation strictly reduces total cost
// without changing the flow value, so the result is minimum-cost among
// all maximum flows.
//
// A Network is not safe for concurrent use: the four graphs form a
// single unit of mutation, and a reader observing them mid-augmentation
// would see a violated invariant. Wrap each Network in one mutex
// spanning construction and every query if sharing is required.
//
// Verify checks the full structural invariant linking the four graphs.
// It is a development-time tool: enable WithVerification() in tests to
// run it after every mutation; release paths leave it off.
//
// Errors:
//
//	ErrNegativeCapacity   - AddEdge called with capacity < 0.
//	ErrDuplicateEdge      - AddEdge called twice for the same ordered pair.
//	ErrInvariantViolation - corrupted internal state; a bug, not an
//	                        operating condition (never recovered from).
//	ErrInvalidSnapshot    - malformed persisted network.
package flownet
