// Package csr builds and serializes Compressed Sparse Row (CSR) graphs
// from whitespace-separated directed edge lists.
//
// What
//
//   - Parse an edge-list file: a header "n m" followed by m pairs "u v".
//   - Group every edge under its source vertex, sort each neighbor list
//     ascending, and flatten the lists into two arrays:
//   - Offsets: n+1 entries, Offsets[0] == 0, Offsets[n] == m, non-decreasing.
//   - Indices: m entries, the concatenation of the sorted neighbor lists.
//   - Read and write the CSR text format consumed by package bfs.
//   - Expand a CSR graph back into its edge multiset.
//
// Vertex i's out-neighbors are exactly Indices[Offsets[i]:Offsets[i+1]].
// Self-loops and parallel edges are preserved, never deduplicated.
//
// CSR text format
//
//	n m
//	o0 o1 ... on
//	i0 i1 ... i(m-1)
//
// Every array value is followed by one space, and each array ends with a
// newline. Write reproduces that layout byte for byte so files stay
// interchangeable with existing tooling.
//
// Complexity (n = vertices, m = edges, d = max out-degree)
//
//   - Build: O(m log d) time, O(n + m) memory.
//   - Read/Write/Validate/Edges: O(n + m).
//
// Errors
//
//   - ErrInputMalformed   header or array lengths do not match the file contract,
//     or n exceeds MaxVertices.
//   - ErrVertexOutOfRange an edge endpoint lies outside [0, n).
//   - ErrGraphNil         a nil *Graph was supplied.
package csr
