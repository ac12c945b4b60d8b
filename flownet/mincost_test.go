package flownet_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/flownet/flownet"
)

// costedNetwork builds the eight-edge costed network used throughout:
// a→b(10,5), a→c(15,2), b→c(5,2), b→d(5,5), c→d(3,1), c→e(15,7),
// d→t(2,2), e→t(20,1), source a, sink t. Its max flow is 17 and the
// cheapest routing of it costs 170.
func costedNetwork(t *testing.T, opts ...flownet.Option) *flownet.Network {
	t.Helper()
	n := flownet.New(v("a"), v("t"), opts...)
	require.NoError(t, n.AddEdge(v("a"), v("b"), 10, flownet.WithCost(5)))
	require.NoError(t, n.AddEdge(v("a"), v("c"), 15, flownet.WithCost(2)))
	require.NoError(t, n.AddEdge(v("b"), v("c"), 5, flownet.WithCost(2)))
	require.NoError(t, n.AddEdge(v("b"), v("d"), 5, flownet.WithCost(5)))
	require.NoError(t, n.AddEdge(v("c"), v("d"), 3, flownet.WithCost(1)))
	require.NoError(t, n.AddEdge(v("c"), v("e"), 15, flownet.WithCost(7)))
	require.NoError(t, n.AddEdge(v("d"), v("t"), 2, flownet.WithCost(2)))
	require.NoError(t, n.AddEdge(v("e"), v("t"), 20, flownet.WithCost(1)))

	return n
}

func TestMinCostMaxFlow(t *testing.T) {
	n := costedNetwork(t, flownet.WithVerification())

	cost, flow, err := n.MinCostMaxFlow(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(170), cost)
	require.Equal(t, int64(17), flow)
	require.NoError(t, n.Verify())
}

func TestMinCostMaxFlowMatchesMaxFlowValue(t *testing.T) {
	ctx := context.Background()

	plain := costedNetwork(t)
	maxOnly, err := plain.MaxFlow(ctx)
	require.NoError(t, err)

	n := costedNetwork(t)
	_, flow, err := n.MinCostMaxFlow(ctx)
	require.NoError(t, err)
	require.Equal(t, maxOnly, flow, "cycle canceling reroutes flow without changing its value")
}

func TestMinCostMaxFlowOptimalRouting(t *testing.T) {
	n := costedNetwork(t)

	_, _, err := n.MinCostMaxFlow(context.Background())
	require.NoError(t, err)

	// The two units through the cheap d→t lane come from c→d, not the
	// pricier b→d detour.
	fcd, err := n.Flow(v("c"), v("d"))
	require.NoError(t, err)
	require.Equal(t, int64(2), fcd)
	fbd, err := n.Flow(v("b"), v("d"))
	require.NoError(t, err)
	require.Zero(t, fbd)
	fet, err := n.Flow(v("e"), v("t"))
	require.NoError(t, err)
	require.Equal(t, int64(15), fet)
}

func TestMinCostMaxFlowSingleCostedPath(t *testing.T) {
	n := flownet.New(v("s"), v("t"), flownet.WithVerification())
	require.NoError(t, n.AddEdge(v("s"), v("m"), 4, flownet.WithCost(3)))
	require.NoError(t, n.AddEdge(v("m"), v("t"), 4, flownet.WithCost(2)))

	cost, flow, err := n.MinCostMaxFlow(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(4), flow)
	require.Equal(t, int64(20), cost)
}

func TestMinCostMaxFlowCanceledContext(t *testing.T) {
	n := costedNetwork(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := n.MinCostMaxFlow(ctx)
	require.ErrorIs(t, err, context.Canceled)
}
