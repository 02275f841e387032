// Package bfs provides single-source breadth-first search over a csr.Graph,
// returning per-vertex hop distances (levels), parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing level from a source vertex along
//     directed CSR edges.
//   - Returns a Result containing:
//   - Levels:  vertex → distance (edges) from the source, or Unreached (-1)
//   - Parent:  vertex → its predecessor in the BFS tree
//   - Order:   visit sequence
//   - Elapsed: traversal wall-clock time
//   - Supports functional hooks at three stages:
//   - OnEnqueue (a vertex was discovered and given its level)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual edges via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//   - Writes the distance file format ("i,level" / "i -1" + timing line).
//
// Determinism
//
//	Levels depend only on the graph and the source. Visit order follows the
//	CSR neighbor order, which csr.Build sorts ascending, so Order and Parent
//	are reproducible as well.
//
// Complexity (V = vertices, E = edges)
//
//   - Time:   O(V + E)   (each vertex enqueued once, each edge scanned once)
//   - Memory: O(V)       (queue, Levels, Parent)
//
// Usage
//
//	g, err := csr.ReadFile("CSR.txt")
//	...
//	res, err := bfs.BFS(g, 0)
//	if err != nil {
//		// ErrGraphNil, ErrInvalidSource, ErrOptionViolation, ctx errors or hook errors
//	}
//	err = bfs.WriteDistancesFile("bfs_output.txt", res)
//
// Errors
//
//   - ErrGraphNil         if the graph pointer is nil.
//   - ErrInvalidSource    if the source is outside [0, n) or not an integer.
//   - ErrOptionViolation  if an Option is invalid (e.g. negative MaxDepth).
//   - ErrResultNil        if WriteDistances receives a nil result.
//   - ErrNoPath           from Result.PathTo for unreached targets.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
