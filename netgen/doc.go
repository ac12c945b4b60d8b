// Package netgen constructs flow networks with well-known topologies:
// chains, grids, bipartite matching networks, and random sparse DAGs.
//
// Generators are deterministic for equal inputs, options, and seed, so
// tests and benchmarks can pin exact flow values. Capacities and costs
// come from pluggable CapacityFn/CostFn hooks; the stochastic generators
// require an explicit seed via WithSeed or WithRand.
package netgen
