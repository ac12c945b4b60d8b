package flownet

import (
	"fmt"
	"os"

	"github.com/katalvlaran/flownet/codec"
	"github.com/katalvlaran/flownet/core"
)

// Snapshot is the portable state of a Network: the full adjacency of
// all four graphs plus the original cost mapping, keyed by vertex
// value. A snapshot taken mid-computation resumes exactly where it left
// off, because the residual and cost graphs are stored verbatim rather
// than rebuilt from capacity and flow.
type Snapshot struct {
	Source       string                      `json:"source" msgpack:"source"`
	Sink         string                      `json:"sink" msgpack:"sink"`
	Vertices     []string                    `json:"vertices" msgpack:"vertices"`
	Capacities   map[string]map[string]int64 `json:"capacities" msgpack:"capacities"`
	Flow         map[string]map[string]int64 `json:"flow" msgpack:"flow"`
	Residual     map[string]map[string]int64 `json:"residual" msgpack:"residual"`
	Cost         map[string]map[string]int64 `json:"cost" msgpack:"cost"`
	ResidualCost map[string]map[string]int64 `json:"residualCost" msgpack:"residualCost"`
}

// Snapshot captures the network's current state. The result shares no
// storage with the network and stays valid across later mutations.
func (n *Network) Snapshot() *Snapshot {
	vertices := n.capacity.Vertices()
	names := make([]string, len(vertices))
	for i, v := range vertices {
		names[i] = v.Value()
	}

	cost := make(map[string]map[string]int64, len(n.cost))
	for u, inner := range n.cost {
		m := make(map[string]int64, len(inner))
		for v, c := range inner {
			m[v.Value()] = c
		}
		cost[u.Value()] = m
	}

	return &Snapshot{
		Source:       n.source.Value(),
		Sink:         n.sink.Value(),
		Vertices:     names,
		Capacities:   n.capacity.Adjacency(),
		Flow:         n.flow.Adjacency(),
		Residual:     n.residual.Adjacency(),
		Cost:         cost,
		ResidualCost: n.costGraph.Adjacency(),
	}
}

// FromSnapshot reconstructs a Network from a Snapshot. The persisted
// graphs are adopted verbatim; nothing is re-derived, so partially
// augmented networks round-trip losslessly.
func FromSnapshot(s *Snapshot, opts ...Option) (*Network, error) {
	if s == nil {
		return nil, fmt.Errorf("%w: nil snapshot", ErrInvalidSnapshot)
	}
	if s.Source == "" || s.Sink == "" {
		return nil, fmt.Errorf("%w: empty source or sink", ErrInvalidSnapshot)
	}

	n := New(core.NewVertex(s.Source), core.NewVertex(s.Sink), opts...)
	n.capacity = core.FromAdjacency(s.Capacities)
	n.flow = core.FromAdjacency(s.Flow)
	n.residual = core.FromAdjacency(s.Residual)
	n.costGraph = core.FromAdjacency(s.ResidualCost)
	for u, inner := range s.Cost {
		m := make(map[core.Vertex]int64, len(inner))
		for v, c := range inner {
			m[core.NewVertex(v)] = c
		}
		n.cost[core.NewVertex(u)] = m
	}
	// The vertex list carries isolated vertices the adjacency maps
	// cannot express.
	for _, name := range s.Vertices {
		n.addVertex(core.NewVertex(name))
	}
	n.addVertex(n.source)
	n.addVertex(n.sink)

	if n.verify {
		if err := n.Verify(); err != nil {
			return nil, err
		}
	}

	return n, nil
}

// Save writes the network's snapshot to path using enc (codec plus
// optional compression).
func (n *Network) Save(path string, enc *codec.Encoder) error {
	data, err := enc.Marshal(n.Snapshot())
	if err != nil {
		return fmt.Errorf("flownet: encode snapshot: %w", err)
	}
	if err = os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("flownet: write snapshot: %w", err)
	}

	return nil
}

// Load reads a snapshot from path using enc and reconstructs the
// network it describes.
func Load(path string, enc *codec.Encoder, opts ...Option) (*Network, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("flownet: read snapshot: %w", err)
	}
	var s Snapshot
	if err = enc.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("flownet: decode snapshot: %w", err)
	}

	return FromSnapshot(&s, opts...)
}

// SaveJSON writes an uncompressed JSON snapshot, the interchange format
// other tooling reads.
func (n *Network) SaveJSON(path string) error {
	return n.Save(path, codec.NewEncoder())
}

// LoadJSON reads an uncompressed JSON snapshot.
func LoadJSON(path string, opts ...Option) (*Network, error) {
	return Load(path, codec.NewEncoder(), opts...)
}
