package netgen

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/flownet/core"
	"github.com/katalvlaran/flownet/flownet"
)

// Sentinel errors; branch with errors.Is.
var (
	// ErrTooFewVertices reports a size parameter below the generator's
	// minimum.
	ErrTooFewVertices = errors.New("netgen: parameter too small")

	// ErrInvalidProbability reports a probability outside [0, 1].
	ErrInvalidProbability = errors.New("netgen: probability out of range")

	// ErrNeedRandSource reports a stochastic generator invoked without
	// WithSeed or WithRand.
	ErrNeedRandSource = errors.New("netgen: rng is required")
)

// CapacityFn produces an edge capacity, optionally sampling from rng.
// It must be deterministic for a given seed.
type CapacityFn func(rng *rand.Rand) int64

// CostFn produces a per-unit edge cost, optionally sampling from rng.
type CostFn func(rng *rand.Rand) int64

// ConstantCapacity yields the same capacity for every edge.
func ConstantCapacity(c int64) CapacityFn {
	return func(*rand.Rand) int64 { return c }
}

// UniformCapacity samples capacities uniformly from [lo, hi]. It draws
// from the generator's RNG, so WithSeed or WithRand must be set.
func UniformCapacity(lo, hi int64) CapacityFn {
	return func(rng *rand.Rand) int64 { return lo + rng.Int63n(hi-lo+1) }
}

// ConstantCost yields the same per-unit cost for every edge.
func ConstantCost(c int64) CostFn {
	return func(*rand.Rand) int64 { return c }
}

type config struct {
	rng      *rand.Rand
	capacity CapacityFn
	cost     CostFn // nil builds an uncosted network
	idFn     func(int) string
	netOpts  []flownet.Option
}

// Option customizes a generator.
type Option func(*config)

// WithSeed seeds the generator's RNG deterministically.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand supplies an explicit RNG; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) Option {
	return func(c *config) {
		if r != nil {
			c.rng = r
		}
	}
}

// WithCapacityFn sets the capacity hook (default: constant 1).
func WithCapacityFn(fn CapacityFn) Option {
	return func(c *config) {
		if fn != nil {
			c.capacity = fn
		}
	}
}

// WithCostFn sets the per-unit cost hook; without it the generated
// network carries no costs and supports MaxFlow only.
func WithCostFn(fn CostFn) Option {
	return func(c *config) { c.cost = fn }
}

// WithIDScheme sets the vertex naming function, index to label. The
// default zero-pads to keep lexicographic and index order aligned.
func WithIDScheme(fn func(int) string) Option {
	return func(c *config) {
		if fn != nil {
			c.idFn = fn
		}
	}
}

// WithNetworkOptions forwards options to the constructed Network, e.g.
// flownet.WithVerification for generator tests.
func WithNetworkOptions(opts ...flownet.Option) Option {
	return func(c *config) { c.netOpts = append(c.netOpts, opts...) }
}

func newConfig(opts ...Option) config {
	cfg := config{
		capacity: ConstantCapacity(1),
		idFn:     func(i int) string { return fmt.Sprintf("v%04d", i) },
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// addEdge applies the capacity and cost hooks for one generated edge.
func (c config) addEdge(n *flownet.Network, u, v core.Vertex) error {
	var eopts []flownet.EdgeOption
	if c.cost != nil {
		eopts = append(eopts, flownet.WithCost(c.cost(c.rng)))
	}

	return n.AddEdge(u, v, c.capacity(c.rng), eopts...)
}

// Path builds a chain of n vertices v0→v1→…→v(n-1) with v0 as source
// and v(n-1) as sink. Its max flow is the minimum capacity on the chain.
// Complexity: O(n)
func Path(n int, opts ...Option) (*flownet.Network, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: path needs n ≥ 2, got %d", ErrTooFewVertices, n)
	}
	cfg := newConfig(opts...)

	net := flownet.New(core.NewVertex(cfg.idFn(0)), core.NewVertex(cfg.idFn(n-1)), cfg.netOpts...)
	for i := 0; i+1 < n; i++ {
		u, v := core.NewVertex(cfg.idFn(i)), core.NewVertex(cfg.idFn(i+1))
		if err := cfg.addEdge(net, u, v); err != nil {
			return nil, fmt.Errorf("netgen: path edge %d: %w", i, err)
		}
	}

	return net, nil
}

// Grid builds a rows×cols lattice with edges pointing right and down,
// the top-left corner as source and the bottom-right as sink. With unit
// capacities its max flow is 1 on a single row or column and 2 otherwise
// (the two edge-disjoint corner paths).
// Complexity: O(rows · cols)
func Grid(rows, cols int, opts ...Option) (*flownet.Network, error) {
	if rows < 1 || cols < 1 || rows*cols < 2 {
		return nil, fmt.Errorf("%w: grid needs at least 2 cells, got %d×%d", ErrTooFewVertices, rows, cols)
	}
	cfg := newConfig(opts...)
	at := func(r, c int) core.Vertex { return core.NewVertex(cfg.idFn(r*cols + c)) }

	net := flownet.New(at(0, 0), at(rows-1, cols-1), cfg.netOpts...)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if c+1 < cols {
				if err := cfg.addEdge(net, at(r, c), at(r, c+1)); err != nil {
					return nil, fmt.Errorf("netgen: grid edge: %w", err)
				}
			}
			if r+1 < rows {
				if err := cfg.addEdge(net, at(r, c), at(r+1, c)); err != nil {
					return nil, fmt.Errorf("netgen: grid edge: %w", err)
				}
			}
		}
	}

	return net, nil
}

// Bipartite builds the matching network for a complete bipartite graph:
// source→each left vertex, every left→right pair, each right→sink, all
// with unit capacity. Its max flow equals min(left, right), the size of
// a maximum matching.
// Complexity: O(left · right)
func Bipartite(left, right int, opts ...Option) (*flownet.Network, error) {
	if left < 1 || right < 1 {
		return nil, fmt.Errorf("%w: bipartite needs both sides non-empty, got %d×%d",
			ErrTooFewVertices, left, right)
	}
	cfg := newConfig(opts...)
	// Matching semantics need unit capacities throughout; the capacity
	// and cost hooks are deliberately not consulted here.
	source, sink := core.NewVertex("s"), core.NewVertex("t")
	lv := func(i int) core.Vertex { return core.NewVertex("l" + cfg.idFn(i)) }
	rv := func(j int) core.Vertex { return core.NewVertex("r" + cfg.idFn(j)) }

	net := flownet.New(source, sink, cfg.netOpts...)
	for i := 0; i < left; i++ {
		if err := net.AddEdge(source, lv(i), 1); err != nil {
			return nil, fmt.Errorf("netgen: bipartite source edge: %w", err)
		}
		for j := 0; j < right; j++ {
			if err := net.AddEdge(lv(i), rv(j), 1); err != nil {
				return nil, fmt.Errorf("netgen: bipartite pair edge: %w", err)
			}
		}
	}
	for j := 0; j < right; j++ {
		if err := net.AddEdge(rv(j), sink, 1); err != nil {
			return nil, fmt.Errorf("netgen: bipartite sink edge: %w", err)
		}
	}

	return net, nil
}

// RandomSparse builds a random DAG on n vertices: each forward pair
// (i, j) with i < j gets an edge with probability p, which guarantees
// acyclicity. No connecting path is forced, so the result may have max
// flow 0. Requires an RNG (WithSeed or WithRand).
// Complexity: O(n²)
func RandomSparse(n int, p float64, opts ...Option) (*flownet.Network, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: random network needs n ≥ 2, got %d", ErrTooFewVertices, n)
	}
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("%w: got %g", ErrInvalidProbability, p)
	}
	cfg := newConfig(opts...)
	if cfg.rng == nil {
		return nil, ErrNeedRandSource
	}

	net := flownet.New(core.NewVertex(cfg.idFn(0)), core.NewVertex(cfg.idFn(n-1)), cfg.netOpts...)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if cfg.rng.Float64() >= p {
				continue
			}
			u, v := core.NewVertex(cfg.idFn(i)), core.NewVertex(cfg.idFn(j))
			if err := cfg.addEdge(net, u, v); err != nil {
				return nil, fmt.Errorf("netgen: random edge: %w", err)
			}
		}
	}

	return net, nil
}
