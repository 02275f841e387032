// Package bfs provides tunable options, result types and error definitions
// for breadth-first search over a csr.Graph.
package bfs

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Unreached is the level of a vertex with no directed path from the source.
// Levels are never negative otherwise, so the value cannot collide with a
// real distance however large the graph.
const Unreached = -1

// noParent marks the source and unreached vertices in Result.Parent.
const noParent = -1

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrInvalidSource is returned when the source vertex is outside [0, n)
	// or cannot be parsed as a vertex id.
	ErrInvalidSource = errors.New("bfs: invalid source vertex")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrResultNil is returned when writing a nil *Result.
	ErrResultNil = errors.New("bfs: result is nil")

	// ErrNoPath is returned by Result.PathTo for unreached targets.
	ErrNoPath = errors.New("bfs: no path")
)

// Option tweaks a single traversal. Options are applied in order; an
// invalid value is remembered and BFS fails with ErrOptionViolation
// before touching the graph.
type Option func(*BFSOptions)

// BFSOptions is the resolved configuration of one traversal. The zero
// value is not usable; start from DefaultOptions.
type BFSOptions struct {
	// Ctx is polled once per dequeued vertex.
	Ctx context.Context

	// OnEnqueue sees each vertex once, when it receives its level.
	OnEnqueue func(v, level int)

	// OnDequeue sees each vertex as it leaves the queue.
	OnDequeue func(v, level int)

	// OnVisit runs after OnDequeue and before the vertex's out-edges are
	// scanned. A non-nil error stops the traversal.
	OnVisit func(v, level int) error

	// MaxDepth > 0 caps the assigned levels; 0 means unbounded.
	MaxDepth int

	// FilterNeighbor reports whether the edge curr→neighbor may be
	// followed. Rejected edges are ignored for that scan only.
	FilterNeighbor func(curr, neighbor int) bool

	err error
}

// DefaultOptions returns the configuration of a plain level-order
// traversal: background context, no depth cap, every edge followed and
// no-op hooks.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:            context.Background(),
		OnEnqueue:      func(int, int) {},
		OnDequeue:      func(int, int) {},
		OnVisit:        func(int, int) error { return nil },
		FilterNeighbor: func(int, int) bool { return true },
	}
}

// WithContext makes the traversal stop with ctx.Err() once ctx is done.
// A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue sets the discovery hook.
func WithOnEnqueue(fn func(v, level int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue sets the dequeue hook.
func WithOnDequeue(fn func(v, level int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit sets the visit hook; its error aborts the traversal and is
// returned wrapped, together with the partial Result.
func WithOnVisit(fn func(v, level int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth leaves every vertex more than d hops from the source
// Unreached. d == 0 removes the cap; d < 0 is an ErrOptionViolation.
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor restricts which CSR edges are followed.
func WithFilterNeighbor(fn func(curr, neighbor int) bool) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// Result holds the outcome of one traversal.
//   - Levels: hop distance from Source per vertex, Unreached if none.
//   - Parent: discovering vertex per vertex, -1 for Source and unreached.
//   - Order:  vertices in dequeue order.
//   - Elapsed: wall-clock duration of the traversal itself.
type Result struct {
	Source  int
	Levels  []int
	Parent  []int
	Order   []int
	Elapsed time.Duration
}

// Level returns the level of v and whether v was reached.
func (r *Result) Level(v int) (int, bool) {
	if v < 0 || v >= len(r.Levels) || r.Levels[v] == Unreached {
		return Unreached, false
	}
	return r.Levels[v], true
}

// Reached reports whether v has a level.
func (r *Result) Reached(v int) bool {
	_, ok := r.Level(v)
	return ok
}

// ReachedCount returns how many vertices, source included, were reached.
func (r *Result) ReachedCount() int {
	return len(r.Order)
}

// MaxLevel returns the largest assigned level (the BFS depth).
func (r *Result) MaxLevel() int {
	if len(r.Order) == 0 {
		return 0
	}
	return r.Levels[r.Order[len(r.Order)-1]]
}

// PathTo reconstructs the shortest path from Source to dest.
// Returns ErrNoPath if dest was not reached.
func (r *Result) PathTo(dest int) ([]int, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("%w to %d", ErrNoPath, dest)
	}
	// build reversed path
	path := make([]int, 0, r.Levels[dest]+1)
	for cur := dest; cur != noParent; cur = r.Parent[cur] {
		path = append(path, cur)
	}
	// reverse to get source → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
