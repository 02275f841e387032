package metrics

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder_Observe(t *testing.T) {
	r := New("bfs")
	r.ObserveGraph(5, 4)
	r.ObserveTraversal(4, 2, 3*time.Millisecond)
	r.OutputBytes.Add(42)

	assert.Equal(t, 5.0, testutil.ToFloat64(r.GraphVertices))
	assert.Equal(t, 4.0, testutil.ToFloat64(r.GraphEdges))
	assert.Equal(t, 4.0, testutil.ToFloat64(r.ReachedVertices))
	assert.Equal(t, 2.0, testutil.ToFloat64(r.MaxLevel))
	assert.Equal(t, 42.0, testutil.ToFloat64(r.OutputBytes))

	n, err := testutil.GatherAndCount(r.Registry(), "csrbfs_bfs_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

// TestRecorder_Isolated ensures two recorders never share state.
func TestRecorder_Isolated(t *testing.T) {
	a, b := New("csrbuild"), New("csrbuild")
	a.ObserveGraph(10, 20)
	assert.Equal(t, 0.0, testutil.ToFloat64(b.GraphVertices))
}

func TestRecorder_Flush(t *testing.T) {
	r := New("csrbuild")
	r.ObserveGraph(3, 2)
	r.BuildDuration.Observe(0.01)

	require.NoError(t, r.Flush(""))

	path := filepath.Join(t.TempDir(), "csrbuild.prom")
	require.NoError(t, r.Flush(path))
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(raw)
	assert.Contains(t, text, `csrbfs_graph_vertices{tool="csrbuild"} 3`)
	assert.Contains(t, text, `csrbfs_graph_edges{tool="csrbuild"} 2`)
	assert.Contains(t, text, "csrbfs_build_duration_seconds_count")

	assert.Error(t, r.Flush(filepath.Join(t.TempDir(), "missing", "x.prom")))
}
