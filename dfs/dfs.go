package dfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/flownet/core"
)

// Sentinel errors for DFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound is returned when the start vertex is absent.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")
)

// Path returns some path from start to target, or nil if target is
// unreachable. The path carries no length guarantee (use bfs for
// fewest-edge paths). Unreachability is reported as (nil, nil).
func Path(g *core.Graph, start, target core.Vertex) ([]core.Vertex, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(start) {
		return nil, ErrStartVertexNotFound
	}

	visited := map[core.Vertex]bool{start: true}
	parent := make(map[core.Vertex]core.Vertex)
	stack := []core.Vertex{start}
	reached := start == target

	for len(stack) > 0 && !reached {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if cur == target {
			break
		}
		neighbors, err := g.Neighbors(cur)
		if err != nil {
			return nil, fmt.Errorf("dfs: neighbors of %q: %w", cur, err)
		}
		for _, nbr := range neighbors {
			if visited[nbr] {
				continue
			}
			visited[nbr] = true
			parent[nbr] = cur
			stack = append(stack, nbr)
			if nbr == target {
				reached = true
			}
		}
	}
	if !reached {
		return nil, nil
	}

	// Follow parent links back to start, then reverse.
	path := []core.Vertex{target}
	for cur := target; cur != start; {
		cur = parent[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// vertex colors for cycle detection.
const (
	white = iota // unvisited
	gray         // on the current DFS path
	black        // fully explored
)

// frame is one explicit DFS stack entry: a vertex plus the index of the
// next neighbor to explore. Carrying the iteration cursor in the frame
// (instead of recursing with shared mutable state) keeps the current
// path explicit and avoids recursion-depth limits on deep graphs.
type frame struct {
	v    core.Vertex
	nbrs []core.Vertex
	next int
}

// HasCycleFrom reports whether the subgraph reachable from start
// contains a directed cycle. A back edge to a gray (on-path) vertex is
// the witness; cross edges to black vertices are not cycles.
func HasCycleFrom(g *core.Graph, start core.Vertex) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	if !g.HasVertex(start) {
		return false, ErrStartVertexNotFound
	}

	color := make(map[core.Vertex]int, g.VertexCount())
	nbrs, err := g.Neighbors(start)
	if err != nil {
		return false, fmt.Errorf("dfs: neighbors of %q: %w", start, err)
	}
	color[start] = gray
	stack := []*frame{{v: start, nbrs: nbrs}}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if top.next >= len(top.nbrs) {
			// All children explored: retire the vertex from the path.
			color[top.v] = black
			stack = stack[:len(stack)-1]
			continue
		}
		nbr := top.nbrs[top.next]
		top.next++

		switch color[nbr] {
		case gray:
			return true, nil
		case black:
			continue
		default:
			children, err := g.Neighbors(nbr)
			if err != nil {
				return false, fmt.Errorf("dfs: neighbors of %q: %w", nbr, err)
			}
			color[nbr] = gray
			stack = append(stack, &frame{v: nbr, nbrs: children})
		}
	}

	return false, nil
}
