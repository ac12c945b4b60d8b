package dfs_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/flownet/core"
	"github.com/katalvlaran/flownet/dfs"
)

func v(s string) core.Vertex { return core.NewVertex(s) }

func TestPathFindsAnyRoute(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge(v("a"), v("b"), 1)
	g.AddEdge(v("b"), v("c"), 1)
	g.AddEdge(v("a"), v("c"), 1)

	path, err := dfs.Path(g, v("a"), v("c"))
	require.NoError(t, err)
	require.NotEmpty(t, path)
	require.Equal(t, v("a"), path[0])
	require.Equal(t, v("c"), path[len(path)-1])
	// Every hop must be a real edge.
	for i := 0; i < len(path)-1; i++ {
		require.True(t, g.HasEdge(path[i], path[i+1]), "hop %v→%v missing", path[i], path[i+1])
	}
}

func TestPathUnreachableAndSelf(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge(v("a"), v("b"), 1)
	g.AddVertex(v("z"))

	path, err := dfs.Path(g, v("a"), v("z"))
	require.NoError(t, err)
	require.Nil(t, path)

	path, err = dfs.Path(g, v("a"), v("a"))
	require.NoError(t, err)
	require.Equal(t, []core.Vertex{v("a")}, path)
}

func TestPathErrors(t *testing.T) {
	_, err := dfs.Path(nil, v("a"), v("b"))
	require.ErrorIs(t, err, dfs.ErrGraphNil)

	_, err = dfs.Path(core.NewGraph(), v("a"), v("b"))
	require.ErrorIs(t, err, dfs.ErrStartVertexNotFound)
}

func TestHasCycleFromDetectsBackEdge(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge(v("a"), v("b"), 1)
	g.AddEdge(v("b"), v("c"), 1)
	g.AddEdge(v("c"), v("a"), 1)

	cyclic, err := dfs.HasCycleFrom(g, v("a"))
	require.NoError(t, err)
	require.True(t, cyclic)
}

func TestHasCycleFromDAGWithDiamond(t *testing.T) {
	// Diamond shares a vertex via two routes; a cross edge to a finished
	// vertex must not be mistaken for a back edge.
	g := core.NewGraph()
	g.AddEdge(v("a"), v("b"), 1)
	g.AddEdge(v("a"), v("c"), 1)
	g.AddEdge(v("b"), v("d"), 1)
	g.AddEdge(v("c"), v("d"), 1)

	cyclic, err := dfs.HasCycleFrom(g, v("a"))
	require.NoError(t, err)
	require.False(t, cyclic)
}

func TestHasCycleFromIgnoresUnreachableCycle(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge(v("a"), v("b"), 1)
	// Cycle x→y→x is not reachable from a.
	g.AddEdge(v("x"), v("y"), 1)
	g.AddEdge(v("y"), v("x"), 1)

	cyclic, err := dfs.HasCycleFrom(g, v("a"))
	require.NoError(t, err)
	require.False(t, cyclic)
}

func TestHasCycleFromSelfLoop(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge(v("a"), v("a"), 1)

	cyclic, err := dfs.HasCycleFrom(g, v("a"))
	require.NoError(t, err)
	require.True(t, cyclic)
}

func TestHasCycleFromDeepChain(t *testing.T) {
	// A long chain would overflow a recursive implementation's stack;
	// the explicit-frame walk must handle it.
	g := core.NewGraph()
	const n = 200000
	for i := 0; i < n; i++ {
		g.AddEdge(v(pad(i)), v(pad(i+1)), 1)
	}

	cyclic, err := dfs.HasCycleFrom(g, v(pad(0)))
	require.NoError(t, err)
	require.False(t, cyclic)
}

// pad renders i with leading zeros so sorted vertex order matches
// numeric order.
func pad(i int) string {
	s := strconv.Itoa(i)
	for len(s) < 7 {
		s = "0" + s
	}

	return s
}
