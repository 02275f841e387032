package csr

import (
	"fmt"
	"slices"
)

// Build converts n vertices and a directed edge sequence into CSR form.
//
// Steps:
//  1. Allocate n empty neighbor buffers.
//  2. Append each edge's destination to its source buffer, in input order.
//  3. For every vertex in id order, sort its buffer ascending, extend
//     Offsets by the buffer size, and append the buffer to Indices.
//
// Self-loops and parallel edges are kept. The buffers are released once
// flattened. Returns ErrInputMalformed for n outside [0, MaxVertices] and
// ErrVertexOutOfRange for any endpoint outside [0, n).
func Build(n int, edges []Edge) (*Graph, error) {
	if n < 0 || n > MaxVertices {
		return nil, fmt.Errorf("%w: vertex count %d outside [0,%d]", ErrInputMalformed, n, MaxVertices)
	}

	adj := make([][]int, n)
	for i, e := range edges {
		if e.From < 0 || e.From >= n || e.To < 0 || e.To >= n {
			return nil, fmt.Errorf("%w: edge #%d %s with n=%d", ErrVertexOutOfRange, i, e, n)
		}
		adj[e.From] = append(adj[e.From], e.To)
	}

	g := &Graph{
		N:       n,
		M:       len(edges),
		Offsets: make([]int, n+1),
		Indices: make([]int, 0, len(edges)),
	}
	for i := 0; i < n; i++ {
		slices.Sort(adj[i])
		g.Offsets[i+1] = g.Offsets[i] + len(adj[i])
		g.Indices = append(g.Indices, adj[i]...)
		adj[i] = nil
	}

	return g, nil
}

// FromEdgeList builds a CSR graph from a parsed edge-list file.
func FromEdgeList(el *EdgeList) (*Graph, error) {
	if el == nil {
		return nil, fmt.Errorf("%w: nil edge list", ErrInputMalformed)
	}
	return Build(el.N, el.Edges)
}
