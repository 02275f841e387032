package features

import (
	"github.com/katalvlaran/csrbfs/csr"
)

// BytesPerEdge is the per-edge storage estimate behind memory_estimate.
const BytesPerEdge = 8

// Columns lists the exported column names in output order.
var Columns = []string{
	"vertex_id",
	"degree",
	"avg_neighbor_degree",
	"var_neighbor_degree",
	"memory_estimate",
	"adjacency_size",
	"self_loops",
}

// VertexFeatures is one exported row.
type VertexFeatures struct {
	VertexID          int64   `parquet:"vertex_id"`
	Degree            int64   `parquet:"degree"`
	AvgNeighborDegree float64 `parquet:"avg_neighbor_degree"`
	VarNeighborDegree float64 `parquet:"var_neighbor_degree"`
	MemoryEstimate    int64   `parquet:"memory_estimate"`
	AdjacencySize     int64   `parquet:"adjacency_size"`
	SelfLoops         int64   `parquet:"self_loops"`
}

// Extract computes one row per vertex in id order.
func Extract(g *csr.Graph) ([]VertexFeatures, error) {
	if g == nil {
		return nil, csr.ErrGraphNil
	}
	rows := make([]VertexFeatures, g.N)
	for v := 0; v < g.N; v++ {
		nbrs := g.Neighbors(v)
		deg := len(nbrs)

		var sum, sumSq float64
		var loops int64
		for _, u := range nbrs {
			d := float64(g.Degree(u))
			sum += d
			sumSq += d * d
			if u == v {
				loops++
			}
		}
		var mean, variance float64
		if deg > 0 {
			mean = sum / float64(deg)
			variance = sumSq/float64(deg) - mean*mean
			if variance < 0 {
				variance = 0 // rounding
			}
		}

		rows[v] = VertexFeatures{
			VertexID:          int64(v),
			Degree:            int64(deg),
			AvgNeighborDegree: mean,
			VarNeighborDegree: variance,
			MemoryEstimate:    int64(deg) * BytesPerEdge,
			AdjacencySize:     int64(deg),
			SelfLoops:         loops,
		}
	}
	return rows, nil
}
