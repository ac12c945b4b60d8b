package flownet_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/flownet/flownet"
)

func TestVerifyFreshNetwork(t *testing.T) {
	require.NoError(t, flownet.New(v("s"), v("t")).Verify())
}

func TestVerifyAfterFullRun(t *testing.T) {
	n := costedNetwork(t)
	_, _, err := n.MinCostMaxFlow(context.Background())
	require.NoError(t, err)
	require.NoError(t, n.Verify())
}

func TestVerifyDetectsFlowAboveCapacity(t *testing.T) {
	n := flownet.New(v("s"), v("t"))
	require.NoError(t, n.AddEdge(v("s"), v("t"), 3))

	n.FlowGraph().AddEdge(v("s"), v("t"), 4)

	require.ErrorIs(t, n.Verify(), flownet.ErrInvariantViolation)
}

func TestVerifyDetectsResidualDrift(t *testing.T) {
	n := flownet.New(v("s"), v("t"))
	require.NoError(t, n.AddEdge(v("s"), v("t"), 3))

	n.ResidualGraph().AddEdge(v("s"), v("t"), 1)

	require.ErrorIs(t, n.Verify(), flownet.ErrInvariantViolation)
}

func TestVerifyDetectsStrayResidualEdge(t *testing.T) {
	n := flownet.New(v("s"), v("t"))
	require.NoError(t, n.AddEdge(v("s"), v("t"), 3))

	n.ResidualGraph().AddEdge(v("t"), v("s"), 2)

	require.ErrorIs(t, n.Verify(), flownet.ErrInvariantViolation)
}

func TestVerifyDetectsBrokenConservation(t *testing.T) {
	n := flownet.New(v("s"), v("t"))
	require.NoError(t, n.AddEdge(v("s"), v("m"), 5))
	require.NoError(t, n.AddEdge(v("m"), v("t"), 5))
	_, err := n.MaxFlow(context.Background())
	require.NoError(t, err)

	// Drain the second leg so m absorbs flow it never forwards. The
	// residual graph is adjusted to match, isolating the conservation
	// check from the residual one.
	n.FlowGraph().AddEdge(v("m"), v("t"), 0)
	n.ResidualGraph().AddEdge(v("m"), v("t"), 5)
	require.NoError(t, n.ResidualGraph().RemoveEdge(v("t"), v("m")))

	require.ErrorIs(t, n.Verify(), flownet.ErrInvariantViolation)
}

func TestVerifyAcceptsAntiParallelEdges(t *testing.T) {
	n := flownet.New(v("s"), v("t"), flownet.WithVerification())
	require.NoError(t, n.AddEdge(v("s"), v("m"), 4))
	require.NoError(t, n.AddEdge(v("m"), v("t"), 4))
	require.NoError(t, n.AddEdge(v("t"), v("m"), 2))

	total, err := n.MaxFlow(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(4), total)
	require.NoError(t, n.Verify())
}
