package bfs_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/csrbfs/bfs"
	"github.com/katalvlaran/csrbfs/csr"
)

// TestWriteDistances locks the mixed separator format and the timing line.
func TestWriteDistances(t *testing.T) {
	g := mustBuild(t, 5, csr.Edge{From: 0, To: 1}, csr.Edge{From: 0, To: 2}, csr.Edge{From: 1, To: 3}, csr.Edge{From: 2, To: 3})
	res, err := bfs.BFS(g, 0)
	require.NoError(t, err)
	res.Elapsed = 1500 * time.Millisecond

	var buf bytes.Buffer
	require.NoError(t, bfs.WriteDistances(&buf, res))
	assert.Equal(t, "0,0\n1,1\n2,1\n3,2\n4 -1\nBFS execution time: 1.5 seconds\n", buf.String())

	assert.ErrorIs(t, bfs.WriteDistances(&buf, nil), bfs.ErrResultNil)
}

// TestWriteDistancesFile writes to disk and reports create failures.
func TestWriteDistancesFile(t *testing.T) {
	res, err := bfs.BFS(chain(t, 2), 1)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "bfs_output.txt")
	require.NoError(t, bfs.WriteDistancesFile(path, res))
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(string(raw), "\n")
	assert.Equal(t, []string{"0 -1", "1,0"}, lines[:2])
	assert.True(t, strings.HasPrefix(lines[2], "BFS execution time: "))
	assert.True(t, strings.HasSuffix(lines[2], " seconds"))

	err = bfs.WriteDistancesFile(filepath.Join(t.TempDir(), "missing", "out.txt"), res)
	assert.Error(t, err)
}

// TestFormatSeconds matches six-significant-digit general formatting.
func TestFormatSeconds(t *testing.T) {
	cases := map[time.Duration]string{
		0:                          "0",
		1500 * time.Millisecond:    "1.5",
		12 * time.Microsecond:      "1.2e-05",
		1234567 * time.Microsecond: "1.23457",
		250 * time.Millisecond:     "0.25",
	}
	for d, want := range cases {
		assert.Equal(t, want, bfs.FormatSeconds(d), "duration %v", d)
	}
}

// TestParseSource accepts in-range integers only.
func TestParseSource(t *testing.T) {
	v, err := bfs.ParseSource(" 3\n", 4)
	require.NoError(t, err)
	assert.Equal(t, 3, v)

	for _, in := range []string{"4", "-1", "", "abc", "1.5"} {
		_, err := bfs.ParseSource(in, 4)
		assert.ErrorIs(t, err, bfs.ErrInvalidSource, "input %q", in)
	}
}
