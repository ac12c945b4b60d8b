package bfs

import (
	"fmt"

	"github.com/katalvlaran/flownet/core"
)

// queueItem pairs a vertex with its BFS depth.
type queueItem struct {
	v     core.Vertex
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    Options
	queue   []queueItem
	visited map[core.Vertex]bool
	res     *Result

	// target short-circuits the loop once discovered; nil disables it.
	target *core.Vertex
	found  bool
}

// Traverse runs breadth-first search on g starting from start, applying
// any number of functional Options. Returns ErrGraphNil or
// ErrStartVertexNotFound for invalid input, ErrOptionViolation for bad
// options, or the context's error on cancellation.
func Traverse(g *core.Graph, start core.Vertex, opts ...Option) (*Result, error) {
	w, err := newWalker(g, start, nil, opts)
	if err != nil {
		return nil, err
	}

	return w.res, w.loop()
}

// ShortestPath returns the shortest-length path (by edge count, not
// weight) from start to target, or nil if target is unreachable.
// Unreachability is not an error: a nil path with a nil error means
// "no path exists", which is the termination signal of the augmenting
// loop in the flow engine.
func ShortestPath(g *core.Graph, start, target core.Vertex, opts ...Option) ([]core.Vertex, error) {
	w, err := newWalker(g, start, &target, opts)
	if err != nil {
		return nil, err
	}
	if err = w.loop(); err != nil {
		return nil, err
	}

	return w.res.PathTo(target), nil
}

// newWalker validates inputs, applies options and seeds the queue.
func newWalker(g *core.Graph, start core.Vertex, target *core.Vertex, opts []Option) (*walker, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(start) {
		return nil, ErrStartVertexNotFound
	}

	n := g.VertexCount()
	w := &walker{
		graph:   g,
		opts:    o,
		queue:   make([]queueItem, 0, n),
		visited: make(map[core.Vertex]bool, n),
		target:  target,
		res: &Result{
			Order:  make([]core.Vertex, 0, n),
			Depth:  make(map[core.Vertex]int, n),
			Parent: make(map[core.Vertex]core.Vertex, n),
		},
	}
	w.visited[start] = true
	w.res.Depth[start] = 0
	w.queue = append(w.queue, queueItem{v: start, depth: 0})

	return w, nil
}

// loop processes the queue until empty, target found, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 && !w.found {
		// cancellation check (once per dequeue)
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.v)
		if w.target != nil && item.v == *w.target {
			break
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth, then enqueues each
// unseen neighbor with a parent link.
func (w *walker) enqueueNeighbors(item queueItem) error {
	neighbors, err := w.graph.Neighbors(item.v)
	if err != nil {
		return fmt.Errorf("bfs: neighbors of %q: %w", item.v, err)
	}
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}
	for _, nbr := range neighbors {
		if w.visited[nbr] || !w.opts.FilterNeighbor(item.v, nbr) {
			continue
		}
		w.visited[nbr] = true
		w.res.Depth[nbr] = nextDepth
		w.res.Parent[nbr] = item.v
		w.queue = append(w.queue, queueItem{v: nbr, depth: nextDepth})
		if w.target != nil && nbr == *w.target {
			w.found = true
		}
	}

	return nil
}
