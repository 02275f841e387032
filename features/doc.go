// Package features derives per-vertex structural features from a CSR graph
// and exports them as CSV or Parquet rows for downstream placement models.
//
// Features are computed over out-adjacency, counting parallel edges and
// self-loops as they appear in the CSR slice:
//
//	vertex_id            vertex id
//	degree               out-degree
//	avg_neighbor_degree  mean out-degree of the out-neighbors (0 if none)
//	var_neighbor_degree  population variance of those degrees (0 if none)
//	memory_estimate      degree * BytesPerEdge
//	adjacency_size       equal to degree
//	self_loops           number of v→v entries
//
// Complexity is O(n + m) time and O(n) memory for the rows.
package features
