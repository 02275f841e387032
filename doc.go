// Package csrbfs is a small toolkit for turning directed edge lists into
// Compressed Sparse Row (CSR) graphs and running single-source
// breadth-first search over them.
//
// What is in here?
//
//	csr/         edge-list parsing, CSR construction, the CSR text format
//	bfs/         level-order traversal over a csr.Graph + distance file writer
//	features/    per-vertex degree statistics exported as CSV or Parquet
//	internal/    config (envconfig), logging (zap), metrics (Prometheus), CLI errors
//	cmd/         csrbuild, bfs and csrfeatures binaries
//
// Pipeline:
//
//	graph.txt ──csrbuild──► CSR.txt ──bfs──► bfs_output.txt
//	                           │
//	                           └──csrfeatures──► vertex_features.csv
//
// Quick example (4 vertices, 4 directed edges):
//
//	0 ──► 1
//	│     │
//	▼     ▼
//	2 ──► 3
//
//	g, _ := csr.Build(4, []csr.Edge{{0, 1}, {0, 2}, {1, 3}, {2, 3}})
//	res, _ := bfs.BFS(g, 0) // res.Levels == [0 1 1 2]
package csrbfs
