package bfs

import (
	"context"
	"fmt"
	"time"

	"github.com/katalvlaran/csrbfs/csr"
)

// walker encapsulates mutable BFS state.
type walker struct {
	graph *csr.Graph
	opts  BFSOptions
	ctx   context.Context
	queue []int
	head  int
	res   *Result
}

// BFS runs breadth-first search on g from source, applying any number of
// functional Options.
//
// The traversal is the textbook FIFO scheme: the source gets level 0; each
// dequeued vertex v at level L assigns L+1 to every neighbor still
// Unreached, in CSR order, and enqueues it. A vertex is assigned exactly
// once, on first discovery, so self-loops and parallel edges never
// re-enqueue anything. g must be structurally valid, which csr.Build and
// csr.Read guarantee.
//
// Returns ErrGraphNil or ErrInvalidSource for invalid input (before any
// allocation), ErrOptionViolation for bad options, ctx.Err() on
// cancellation, or any user-supplied hook error.
func BFS(g *csr.Graph, source int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrInvalidSource, source, g.N)
	}

	start := time.Now()
	w := &walker{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]int, 0, g.N),
		res: &Result{
			Source: source,
			Levels: make([]int, g.N),
			Parent: make([]int, g.N),
		},
	}
	for i := range w.res.Levels {
		w.res.Levels[i] = Unreached
		w.res.Parent[i] = noParent
	}

	w.discover(source, 0, noParent)
	err := w.loop()
	// queue holds every discovered vertex in FIFO order
	w.res.Order = w.queue[:w.head]
	w.res.Elapsed = time.Since(start)

	return w.res, err
}

// discover assigns level to v, records its parent, calls OnEnqueue,
// and pushes v to the back of the queue.
func (w *walker) discover(v, level, parent int) {
	w.res.Levels[v] = level
	w.res.Parent[v] = parent
	w.opts.OnEnqueue(v, level)
	w.queue = append(w.queue, v)
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for w.head < len(w.queue) {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		v := w.dequeue()
		level := w.res.Levels[v]
		if err := w.opts.OnVisit(v, level); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", v, err)
		}
		w.expand(v, level)
	}
	return nil
}

// dequeue pops the front vertex and invokes OnDequeue.
func (w *walker) dequeue() int {
	v := w.queue[w.head]
	w.head++
	w.opts.OnDequeue(v, w.res.Levels[v])
	return v
}

// expand discovers every still-unreached neighbor of v at level+1.
func (w *walker) expand(v, level int) {
	next := level + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	for _, nbr := range w.graph.Neighbors(v) {
		if w.res.Levels[nbr] != Unreached {
			continue
		}
		if !w.opts.FilterNeighbor(v, nbr) {
			continue
		}
		w.discover(nbr, next, v)
	}
}
