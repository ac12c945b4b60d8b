package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/flownet/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartVertexNotFound is returned when the start vertex is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments. An invalid
// Option (e.g. negative depth) is recorded internally and surfaced as
// ErrOptionViolation when the search runs.
type Option func(*Options)

// Options holds parameters and callbacks customizing a traversal.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// FilterNeighbor can skip edges by returning false.
	// Called for each edge curr→neighbor.
	FilterNeighbor func(curr, neighbor core.Vertex) bool

	// error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults: background context,
// no depth limit, no neighbor filtering.
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		MaxDepth:       0,
		FilterNeighbor: func(_, _ core.Vertex) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth stops the search at the given depth.
//
//	d > 0:  limit to depth d
//	d == 0: explicit no depth limit
//	d < 0:  invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor core.Vertex) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// Result holds the outcome of a traversal:
//   - Order:  vertices visited, in visit sequence.
//   - Depth:  vertex → distance (in edges) from the start.
//   - Parent: vertex → predecessor in the BFS tree (start has none).
type Result struct {
	Order  []core.Vertex
	Depth  map[core.Vertex]int
	Parent map[core.Vertex]core.Vertex
}

// PathTo reconstructs the shortest-length path from the start vertex to
// dest, or nil if dest was not reached.
func (r *Result) PathTo(dest core.Vertex) []core.Vertex {
	if _, ok := r.Depth[dest]; !ok {
		return nil
	}
	path := []core.Vertex{dest}
	for cur := dest; ; {
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		path = append(path, prev)
		cur = prev
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
