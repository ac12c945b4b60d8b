package flownet

import (
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// Sentinel errors for flow-network operations.
var (
	// ErrNegativeCapacity is returned by AddEdge when capacity < 0.
	// Always surfaced to the caller, never recovered internally.
	ErrNegativeCapacity = errors.New("flownet: negative capacity")

	// ErrDuplicateEdge is returned by AddEdge when the ordered pair
	// already has a capacity edge. Overwriting capacity under existing
	// flow has no defined meaning, so re-adding is rejected outright.
	ErrDuplicateEdge = errors.New("flownet: edge already exists")

	// ErrInvariantViolation reports corrupted graph state: flow exceeding
	// capacity, missing reverse residual edges, cost/residual divergence,
	// or source/sink imbalance. It indicates a bug in mutation logic, not
	// a condition callers should handle.
	ErrInvariantViolation = errors.New("flownet: invariant violation")

	// ErrInvalidSnapshot is returned when loading a persisted network
	// that is structurally malformed.
	ErrInvalidSnapshot = errors.New("flownet: invalid snapshot")
)

// invariantf wraps ErrInvariantViolation with detail.
func invariantf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrInvariantViolation}, args...)...)
}

// Option configures a Network at construction.
type Option func(*Network)

// WithLogger attaches a structured logger; augmentations and cycle
// cancellations are reported at Debug level. The default logger
// discards everything.
func WithLogger(l logrus.FieldLogger) Option {
	return func(n *Network) {
		if l != nil {
			n.log = l
		}
	}
}

// WithVerification runs the full invariant check after construction
// mutations and after every augmentation. Development-time only: it
// turns each mutation into an O(V+E) scan.
func WithVerification() Option {
	return func(n *Network) { n.verify = true }
}

// EdgeOption configures a single AddEdge call.
type EdgeOption func(*edgeConfig)

type edgeConfig struct {
	cost    int64
	hasCost bool
}

// WithCost assigns a per-unit cost to the edge, recording it in both
// the mutable cost graph and the immutable original cost mapping.
func WithCost(cost int64) EdgeOption {
	return func(c *edgeConfig) {
		c.cost = cost
		c.hasCost = true
	}
}

// discardLogger returns a logrus logger that writes nowhere; the
// library stays silent unless a caller opts in via WithLogger.
func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}
