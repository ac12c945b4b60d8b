package bfs_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/flownet/bfs"
	"github.com/katalvlaran/flownet/core"
)

func v(s string) core.Vertex { return core.NewVertex(s) }

// diamond builds a→b, a→c, b→d, c→d plus the long detour a→e→f→d.
func diamond() *core.Graph {
	g := core.NewGraph()
	g.AddEdge(v("a"), v("b"), 1)
	g.AddEdge(v("a"), v("c"), 1)
	g.AddEdge(v("b"), v("d"), 1)
	g.AddEdge(v("c"), v("d"), 1)
	g.AddEdge(v("a"), v("e"), 1)
	g.AddEdge(v("e"), v("f"), 1)
	g.AddEdge(v("f"), v("d"), 1)

	return g
}

func TestTraverseOrderAndDepth(t *testing.T) {
	res, err := bfs.Traverse(diamond(), v("a"))
	require.NoError(t, err)

	require.Equal(t, []core.Vertex{v("a"), v("b"), v("c"), v("e"), v("d"), v("f")}, res.Order,
		"visit order follows sorted neighbors level by level")
	require.Equal(t, 0, res.Depth[v("a")])
	require.Equal(t, 1, res.Depth[v("b")])
	require.Equal(t, 2, res.Depth[v("d")])
	require.Equal(t, v("a"), res.Parent[v("b")])
}

func TestShortestPathPrefersFewestEdges(t *testing.T) {
	path, err := bfs.ShortestPath(diamond(), v("a"), v("d"))
	require.NoError(t, err)
	require.Len(t, path, 3, "a→b→d beats the a→e→f→d detour")
	require.Equal(t, v("a"), path[0])
	require.Equal(t, v("d"), path[2])
}

func TestShortestPathUnreachable(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge(v("a"), v("b"), 1)
	g.AddVertex(v("z"))

	path, err := bfs.ShortestPath(g, v("a"), v("z"))
	require.NoError(t, err, "unreachable target is not an error")
	require.Nil(t, path)

	// Direction matters: b cannot reach a.
	path, err = bfs.ShortestPath(g, v("b"), v("a"))
	require.NoError(t, err)
	require.Nil(t, path)
}

func TestShortestPathToSelf(t *testing.T) {
	path, err := bfs.ShortestPath(diamond(), v("a"), v("a"))
	require.NoError(t, err)
	require.Equal(t, []core.Vertex{v("a")}, path)
}

func TestStartVertexNotFound(t *testing.T) {
	_, err := bfs.Traverse(core.NewGraph(), v("a"))
	require.ErrorIs(t, err, bfs.ErrStartVertexNotFound)

	_, err = bfs.ShortestPath(core.NewGraph(), v("a"), v("b"))
	require.ErrorIs(t, err, bfs.ErrStartVertexNotFound)
}

func TestNilGraph(t *testing.T) {
	_, err := bfs.Traverse(nil, v("a"))
	require.ErrorIs(t, err, bfs.ErrGraphNil)
}

func TestOptionViolation(t *testing.T) {
	_, err := bfs.Traverse(diamond(), v("a"), bfs.WithMaxDepth(-1))
	require.ErrorIs(t, err, bfs.ErrOptionViolation)
}

func TestMaxDepthLimitsExploration(t *testing.T) {
	res, err := bfs.Traverse(diamond(), v("a"), bfs.WithMaxDepth(1))
	require.NoError(t, err)
	_, seenD := res.Depth[v("d")]
	require.False(t, seenD, "depth-2 vertices lie beyond MaxDepth=1")
	require.Equal(t, 1, res.Depth[v("b")])
}

func TestFilterNeighbor(t *testing.T) {
	// Block the b-route and the e-detour; only a→c→d remains.
	path, err := bfs.ShortestPath(diamond(), v("a"), v("d"),
		bfs.WithFilterNeighbor(func(_, nbr core.Vertex) bool {
			return nbr != v("b") && nbr != v("e")
		}))
	require.NoError(t, err)
	require.Equal(t, []core.Vertex{v("a"), v("c"), v("d")}, path)
}

func TestContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := bfs.Traverse(diamond(), v("a"), bfs.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}
