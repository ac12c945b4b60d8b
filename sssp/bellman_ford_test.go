package sssp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/flownet/core"
	"github.com/katalvlaran/flownet/sssp"
)

func TestBellmanFordDistances(t *testing.T) {
	res, err := sssp.BellmanFord(dag(), v("a"))
	require.NoError(t, err)
	require.Nil(t, res.Cycle)
	require.NotNil(t, res.Dist)
	require.NotNil(t, res.Prev)

	require.Equal(t, int64(0), res.Dist[v("a")])
	require.Equal(t, int64(2), res.Dist[v("b")])
	require.Equal(t, int64(6), res.Dist[v("e")])
	require.Equal(t, v("c"), res.Prev[v("b")])
}

func TestBellmanFordHandlesNegativeWeights(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge(v("a"), v("b"), 4)
	g.AddEdge(v("a"), v("c"), 2)
	g.AddEdge(v("c"), v("b"), -1)
	g.AddEdge(v("b"), v("d"), 2)

	res, err := sssp.BellmanFord(g, v("a"))
	require.NoError(t, err)
	require.Nil(t, res.Cycle)
	require.Equal(t, int64(1), res.Dist[v("b")])
	require.Equal(t, int64(3), res.Dist[v("d")])
}

// TestBellmanFordNegativeCycle exercises the reference scenario:
// a→b(2), d→a(2), a→c(−1), c→e(−2), e→a(1) from source d must report
// the cycle a→c→e→a (up to rotation).
func TestBellmanFordNegativeCycle(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge(v("a"), v("b"), 2)
	g.AddEdge(v("d"), v("a"), 2)
	g.AddEdge(v("a"), v("c"), -1)
	g.AddEdge(v("c"), v("e"), -2)
	g.AddEdge(v("e"), v("a"), 1)

	res, err := sssp.BellmanFord(g, v("d"))
	require.NoError(t, err)
	require.Nil(t, res.Dist, "cycle mode carries no distance map")
	require.Nil(t, res.Prev)
	require.Len(t, res.Cycle, 4)
	require.Equal(t, res.Cycle[0], res.Cycle[3], "cycle is closed")

	// Every hop is a real edge and the total weight is negative.
	total := int64(0)
	for i := 0; i < len(res.Cycle)-1; i++ {
		w, werr := g.Weight(res.Cycle[i], res.Cycle[i+1])
		require.NoError(t, werr, "cycle hop %v→%v must exist", res.Cycle[i], res.Cycle[i+1])
		total += w
	}
	require.Equal(t, int64(-2), total)

	// Rotation-independent comparison against a→c→e→a.
	require.ElementsMatch(t,
		[]core.Vertex{v("a"), v("c"), v("e")},
		res.Cycle[:3])
}

func TestBellmanFordIgnoresUnreachableNegativeCycle(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge(v("s"), v("t"), 1)
	g.AddEdge(v("x"), v("y"), -5)
	g.AddEdge(v("y"), v("x"), 2)

	res, err := sssp.BellmanFord(g, v("s"))
	require.NoError(t, err)
	require.Nil(t, res.Cycle, "cycles the source cannot reach are not reported")
	require.Equal(t, int64(1), res.Dist[v("t")])
	require.Equal(t, sssp.Unreachable, res.Dist[v("x")])
}

func TestBellmanFordErrors(t *testing.T) {
	_, err := sssp.BellmanFord(nil, v("a"))
	require.ErrorIs(t, err, sssp.ErrGraphNil)

	_, err = sssp.BellmanFord(core.NewGraph(), v("a"))
	require.ErrorIs(t, err, sssp.ErrSourceNotFound)
}
