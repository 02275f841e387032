package features

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/parquet-go/parquet-go"
)

// WriteCSV writes a header row followed by one record per vertex.
func WriteCSV(w io.Writer, rows []VertexFeatures) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Columns); err != nil {
		return err
	}
	rec := make([]string, len(Columns))
	for _, r := range rows {
		rec[0] = strconv.FormatInt(r.VertexID, 10)
		rec[1] = strconv.FormatInt(r.Degree, 10)
		rec[2] = strconv.FormatFloat(r.AvgNeighborDegree, 'g', -1, 64)
		rec[3] = strconv.FormatFloat(r.VarNeighborDegree, 'g', -1, 64)
		rec[4] = strconv.FormatInt(r.MemoryEstimate, 10)
		rec[5] = strconv.FormatInt(r.AdjacencySize, 10)
		rec[6] = strconv.FormatInt(r.SelfLoops, 10)
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteParquet writes rows as a single zstd-compressed Parquet file.
func WriteParquet(w io.Writer, rows []VertexFeatures) error {
	pw := parquet.NewGenericWriter[VertexFeatures](w, parquet.Compression(&parquet.Zstd))
	if _, err := pw.Write(rows); err != nil {
		_ = pw.Close()
		return err
	}
	return pw.Close()
}

// WriteFile writes rows to path, as Parquet when the extension is
// ".parquet" and as CSV otherwise.
// Create failures are returned as the underlying *fs.PathError.
func WriteFile(path string, rows []VertexFeatures) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = cerr
		}
	}()

	if strings.EqualFold(filepath.Ext(path), ".parquet") {
		return WriteParquet(f, rows)
	}
	return WriteCSV(f, rows)
}
