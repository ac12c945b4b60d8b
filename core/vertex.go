package core

// Vertex is an immutable identity wrapper around a string value.
// Equality, hashing (map-key use) and ordering derive solely from that
// value. Callers always construct vertices explicitly via NewVertex;
// no core mutation method wraps raw values implicitly.
type Vertex struct {
	val string
}

// NewVertex returns the Vertex identified by val.
func NewVertex(val string) Vertex { return Vertex{val: val} }

// Value returns the underlying identity value.
func (v Vertex) Value() string { return v.val }

// Less reports whether v orders strictly before other.
func (v Vertex) Less(other Vertex) bool { return v.val < other.val }

// String implements fmt.Stringer; vertices serialize as their raw value.
func (v Vertex) String() string { return v.val }
