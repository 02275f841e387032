package csr

import (
	"fmt"
	"slices"
)

// Validate checks every CSR invariant of g:
//
//   - len(Offsets) == N+1 and len(Indices) == M
//   - Offsets[0] == 0, Offsets[N] == M, Offsets non-decreasing
//   - every index in [0, N)
//   - every neighbor slice sorted ascending
//
// Returns ErrGraphNil for nil g and ErrInputMalformed describing the first
// violation found.
func (g *Graph) Validate() error {
	if g == nil {
		return ErrGraphNil
	}
	if err := g.checkStructure(); err != nil {
		return err
	}
	for v := 0; v < g.N; v++ {
		if !slices.IsSorted(g.Neighbors(v)) {
			return fmt.Errorf("%w: neighbors of vertex %d are not sorted", ErrInputMalformed, v)
		}
	}
	return nil
}

// checkStructure verifies everything Validate does except sortedness.
// BFS needs only this much to index safely.
func (g *Graph) checkStructure() error {
	if g.N < 0 || g.M < 0 {
		return fmt.Errorf("%w: negative header n=%d m=%d", ErrInputMalformed, g.N, g.M)
	}
	if len(g.Offsets) != g.N+1 {
		return fmt.Errorf("%w: %d offsets, want n+1=%d", ErrInputMalformed, len(g.Offsets), g.N+1)
	}
	if len(g.Indices) != g.M {
		return fmt.Errorf("%w: %d indices, want m=%d", ErrInputMalformed, len(g.Indices), g.M)
	}
	if g.Offsets[0] != 0 {
		return fmt.Errorf("%w: offsets[0]=%d, want 0", ErrInputMalformed, g.Offsets[0])
	}
	if g.Offsets[g.N] != g.M {
		return fmt.Errorf("%w: offsets[n]=%d, want m=%d", ErrInputMalformed, g.Offsets[g.N], g.M)
	}
	for i := 0; i < g.N; i++ {
		if g.Offsets[i+1] < g.Offsets[i] {
			return fmt.Errorf("%w: offsets decrease at vertex %d (%d > %d)",
				ErrInputMalformed, i, g.Offsets[i], g.Offsets[i+1])
		}
	}
	for i, x := range g.Indices {
		if x < 0 || x >= g.N {
			return fmt.Errorf("%w: indices[%d]=%d outside [0,%d): %w",
				ErrInputMalformed, i, x, g.N, ErrVertexOutOfRange)
		}
	}
	return nil
}
