package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// diamondCSR is 0→1, 0→2, 1→3, 2→3 plus isolated vertex 4.
const diamondCSR = "5 4\n0 2 3 4 4 4 \n1 2 3 3 \n"

var timingLine = regexp.MustCompile(`^BFS execution time: [0-9.e+-]+ seconds$`)

func setup(t *testing.T, body string) (in, out string) {
	t.Helper()
	dir := t.TempDir()
	in = filepath.Join(dir, "CSR.txt")
	require.NoError(t, os.WriteFile(in, []byte(body), 0o644))
	return in, filepath.Join(dir, "bfs_output.txt")
}

func readLines(t *testing.T, path string) []string {
	t.Helper()
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	return strings.Split(strings.TrimSuffix(string(raw), "\n"), "\n")
}

func TestRun_SourceFlag(t *testing.T) {
	in, out := setup(t, diamondCSR)
	var stdout, stderr bytes.Buffer

	code := run(context.Background(), []string{"bfs", "-source", "0", "-o", out, in}, strings.NewReader(""), &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	lines := readLines(t, out)
	require.Len(t, lines, 6)
	assert.Equal(t, []string{"0,0", "1,1", "2,1", "3,2", "4 -1"}, lines[:5])
	assert.Regexp(t, timingLine, lines[5])

	assert.True(t, strings.HasPrefix(stdout.String(), "Nodes: 5\nEdges: 4\n\nBFS results written to "+out+"\n"), stdout.String())
	assert.Regexp(t, `BFS time: [0-9.e+-]+ seconds\n$`, stdout.String())
}

func TestRun_Prompt(t *testing.T) {
	in, out := setup(t, diamondCSR)
	var stdout, stderr bytes.Buffer

	code := run(context.Background(), []string{"bfs", "-o", out, in}, strings.NewReader("  3\n"), &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	assert.Contains(t, stdout.String(), "Enter source vertex (0-4): ")

	lines := readLines(t, out)
	assert.Equal(t, []string{"0 -1", "1 -1", "2 -1", "3,0", "4 -1"}, lines[:5])
}

func TestRun_MetricsFile(t *testing.T) {
	in, out := setup(t, diamondCSR)
	prom := filepath.Join(filepath.Dir(out), "bfs.prom")
	t.Setenv("CSRBFS_METRICS_FILE", prom)

	var stdout, stderr bytes.Buffer
	require.Equal(t, 0, run(context.Background(), []string{"bfs", "-source", "0", "-o", out, in}, nil, &stdout, &stderr), stderr.String())

	raw, err := os.ReadFile(prom)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `csrbfs_bfs_reached_vertices{tool="bfs"} 4`)
	assert.Contains(t, string(raw), `csrbfs_bfs_max_level{tool="bfs"} 2`)
}

func TestRun_InvalidSource(t *testing.T) {
	for _, src := range []string{"5", "-1", "x"} {
		t.Run(src, func(t *testing.T) {
			in, out := setup(t, diamondCSR)
			var stdout, stderr bytes.Buffer
			code := run(context.Background(), []string{"bfs", "-o", out, in}, strings.NewReader(src+"\n"), &stdout, &stderr)
			assert.Equal(t, 1, code)
			assert.Contains(t, stderr.String(), "invalid source vertex")
			assert.NoFileExists(t, out)
		})
	}

	in, out := setup(t, diamondCSR)
	var stdout, stderr bytes.Buffer
	assert.Equal(t, 1, run(context.Background(), []string{"bfs", "-o", out, in}, strings.NewReader(""), &stdout, &stderr))
	assert.NoFileExists(t, out)
}

func TestRun_Failures(t *testing.T) {
	t.Run("usage", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		assert.Equal(t, 1, run(context.Background(), []string{"bfs"}, nil, &stdout, &stderr))
		assert.Equal(t, "Usage: bfs [-source v] [-max-depth d] [-o output] <CSR filename>\n", stderr.String())
	})

	t.Run("flags after file", func(t *testing.T) {
		in, out := setup(t, diamondCSR)
		var stdout, stderr bytes.Buffer
		assert.Equal(t, 1, run(context.Background(), []string{"bfs", in, "-source", "0"}, nil, &stdout, &stderr))
		assert.Contains(t, stderr.String(), "Usage: bfs ")
		assert.Empty(t, stdout.String())
		assert.NoFileExists(t, out)
	})

	t.Run("negative max depth", func(t *testing.T) {
		in, out := setup(t, diamondCSR)
		var stdout, stderr bytes.Buffer
		assert.Equal(t, 1, run(context.Background(), []string{"bfs", "-source", "0", "-max-depth", "-1", "-o", out, in}, nil, &stdout, &stderr))
		assert.Contains(t, stderr.String(), "MaxDepth cannot be negative")
		assert.NoFileExists(t, out)
	})

	t.Run("missing csr", func(t *testing.T) {
		_, out := setup(t, diamondCSR)
		missing := filepath.Join(filepath.Dir(out), "nope.txt")
		var stdout, stderr bytes.Buffer
		assert.Equal(t, 1, run(context.Background(), []string{"bfs", "-source", "0", "-o", out, missing}, nil, &stdout, &stderr))
		assert.Contains(t, stderr.String(), "Error opening file: "+missing)
		assert.NoFileExists(t, out)
	})

	t.Run("malformed csr", func(t *testing.T) {
		in, out := setup(t, "5 4\n0 2 3\n")
		var stdout, stderr bytes.Buffer
		assert.Equal(t, 1, run(context.Background(), []string{"bfs", "-source", "0", "-o", out, in}, nil, &stdout, &stderr))
		assert.Contains(t, stderr.String(), "malformed")
		assert.NoFileExists(t, out)
	})

	t.Run("uncreatable output", func(t *testing.T) {
		in, out := setup(t, diamondCSR)
		bad := filepath.Join(filepath.Dir(out), "missing", "bfs_output.txt")
		var stdout, stderr bytes.Buffer
		assert.Equal(t, 1, run(context.Background(), []string{"bfs", "-source", "0", "-o", bad, in}, nil, &stdout, &stderr))
		assert.Contains(t, stderr.String(), "Error creating file: "+bad)
	})
}

func TestRun_MaxDepth(t *testing.T) {
	in, out := setup(t, diamondCSR)
	var stdout, stderr bytes.Buffer

	code := run(context.Background(), []string{"bfs", "-source", "0", "-max-depth", "1", "-o", out, in}, nil, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	assert.Equal(t, []string{"0,0", "1,1", "2,1", "3 -1", "4 -1"}, readLines(t, out)[:5])
}

func TestRun_Cancelled(t *testing.T) {
	in, out := setup(t, diamondCSR)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var stdout, stderr bytes.Buffer
	assert.Equal(t, 1, run(ctx, []string{"bfs", "-source", "0", "-o", out, in}, nil, &stdout, &stderr))
	assert.Contains(t, stderr.String(), context.Canceled.Error())
	assert.NoFileExists(t, out)
}
