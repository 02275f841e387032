package csr

import (
	"errors"
	"fmt"
	"math"
)

// MaxVertices is the largest vertex count accepted from a header or by
// Build. Vertex ids are 32-bit in the file formats, and n+1 offsets must
// stay addressable.
const MaxVertices = math.MaxInt32

// Sentinel errors for CSR construction and parsing.
var (
	// ErrInputMalformed indicates that a file does not follow the
	// "n m" header plus array-length contract (truncated, non-integer, negative).
	ErrInputMalformed = errors.New("csr: input malformed")

	// ErrVertexOutOfRange indicates an edge endpoint or neighbor id outside [0, n).
	ErrVertexOutOfRange = errors.New("csr: vertex out of range")

	// ErrGraphNil is returned when a nil *Graph is passed.
	ErrGraphNil = errors.New("csr: graph is nil")
)

// Edge is one directed edge From → To.
type Edge struct {
	From int
	To   int
}

// String renders the edge as "u->v".
func (e Edge) String() string {
	return fmt.Sprintf("%d->%d", e.From, e.To)
}

// EdgeList is the parsed content of an edge-list file.
// Edges are kept in input order.
type EdgeList struct {
	N     int
	M     int
	Edges []Edge
}

// Graph is a directed graph in Compressed Sparse Row form.
//
//	len(Offsets) == N+1, Offsets[0] == 0, Offsets[N] == M
//	len(Indices) == M
//
// The out-neighbors of v are Indices[Offsets[v]:Offsets[v+1]].
type Graph struct {
	N       int
	M       int
	Offsets []int
	Indices []int
}

// Neighbors returns the out-neighbors of v as a sub-slice of g.Indices.
// The slice is shared with the graph and must not be modified.
// Returns nil if v is outside [0, N).
func (g *Graph) Neighbors(v int) []int {
	if v < 0 || v >= g.N {
		return nil
	}
	return g.Indices[g.Offsets[v]:g.Offsets[v+1]]
}

// Degree returns the out-degree of v, or 0 if v is outside [0, N).
func (g *Graph) Degree(v int) int {
	if v < 0 || v >= g.N {
		return 0
	}
	return g.Offsets[v+1] - g.Offsets[v]
}

// HasVertex reports whether v is a valid vertex id.
func (g *Graph) HasVertex(v int) bool {
	return v >= 0 && v < g.N
}

// Edges expands the graph back into its edge multiset, grouped by source
// vertex in ascending order and, within a source, by ascending destination.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.M)
	for u := 0; u < g.N; u++ {
		for _, v := range g.Neighbors(u) {
			out = append(out, Edge{From: u, To: v})
		}
	}
	return out
}
