// Command bfs runs a single-source breadth-first search over a CSR file
// and writes per-vertex levels to a distance file.
//
//	bfs [-source v] [-max-depth d] [-o bfs_output.txt] <CSR filename>
//
// Flags must precede the file name. Without -source the tool prompts for
// the source vertex on stdin. An out-of-range source aborts before any
// traversal or output. With -max-depth d > 0 vertices farther than d hops
// are written as unreached. An interrupt cancels the traversal.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/csrbfs/bfs"
	"github.com/katalvlaran/csrbfs/csr"
	"github.com/katalvlaran/csrbfs/internal/cli"
	"github.com/katalvlaran/csrbfs/internal/config"
	"github.com/katalvlaran/csrbfs/internal/logging"
	"github.com/katalvlaran/csrbfs/internal/metrics"
)

const synopsis = "[-source v] [-max-depth d] [-o output] <CSR filename>"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args, os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	prog := filepath.Base(args[0])

	cfg, err := config.Load()
	if err != nil {
		return cli.Fail(stderr, nil, err)
	}
	logger, err := logging.New(logging.Config{
		Format: cfg.LogFormat,
		Level:  cfg.LogLevel,
		Output: zapcore.AddSync(stderr),
	})
	if err != nil {
		return cli.Fail(stderr, nil, err)
	}
	defer func() { _ = logger.Sync() }()

	fs := flag.NewFlagSet(prog, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	source := fs.String("source", "", "source vertex (prompted on stdin when empty)")
	maxDepth := fs.Int("max-depth", 0, "leave vertices beyond this level unreached (0: no limit)")
	out := fs.String("o", cfg.BFSOutput, "distance output file")
	if err := fs.Parse(args[1:]); err != nil || fs.NArg() != 1 {
		return cli.Fail(stderr, logger, cli.Usage(prog, synopsis))
	}

	rec := metrics.New("bfs")
	t := &tool{
		in:     fs.Arg(0),
		out:    *out,
		source: *source,
		opts:   []bfs.Option{bfs.WithContext(ctx), bfs.WithMaxDepth(*maxDepth)},
		stdin:  stdin,
		stdout: stdout,
		logger: logger,
		rec:    rec,
	}
	if err := t.run(); err != nil {
		return cli.Fail(stderr, logger, err)
	}
	if err := rec.Flush(cfg.MetricsFile); err != nil {
		logger.Warn("metrics flush failed", zap.String("path", cfg.MetricsFile), zap.Error(err))
	}
	return cli.ExitOK
}

// tool carries the state of one invocation.
type tool struct {
	in, out string
	source  string
	opts    []bfs.Option
	stdin   io.Reader
	stdout  io.Writer
	logger  *zap.Logger
	rec     *metrics.Recorder
}

func (t *tool) run() error {
	start := time.Now()
	g, err := csr.ReadFile(t.in)
	if err != nil {
		if cli.IsPathError(err) {
			return cli.OpenError(t.in, err)
		}
		return err
	}
	t.rec.LoadDuration.Observe(time.Since(start).Seconds())
	t.rec.ObserveGraph(g.N, g.M)
	t.logger.Info("csr loaded", zap.String("path", t.in), zap.Int("n", g.N), zap.Int("m", g.M))

	fmt.Fprintf(t.stdout, "Nodes: %d\n", g.N)
	fmt.Fprintf(t.stdout, "Edges: %d\n", g.M)

	src, err := t.readSource(g.N)
	if err != nil {
		return err
	}

	res, err := bfs.BFS(g, src, t.opts...)
	if err != nil {
		return err
	}
	t.rec.ObserveTraversal(res.ReachedCount(), res.MaxLevel(), res.Elapsed)
	t.logger.Info("bfs finished",
		zap.Int("source", src),
		zap.Int("reached", res.ReachedCount()),
		zap.Int("max_level", res.MaxLevel()),
		zap.Duration("elapsed", res.Elapsed))

	if err := bfs.WriteDistancesFile(t.out, res); err != nil {
		if cli.IsPathError(err) {
			return cli.CreateError(t.out, err)
		}
		return err
	}
	if fi, err := os.Stat(t.out); err == nil {
		t.rec.OutputBytes.Add(float64(fi.Size()))
	}

	fmt.Fprintf(t.stdout, "\nBFS results written to %s\n", t.out)
	fmt.Fprintf(t.stdout, "BFS time: %s seconds\n", bfs.FormatSeconds(res.Elapsed))
	return nil
}

// readSource returns the -source value or prompts for the first
// whitespace-separated token on stdin.
func (t *tool) readSource(n int) (int, error) {
	if t.source != "" {
		return bfs.ParseSource(t.source, n)
	}
	fmt.Fprintf(t.stdout, "Enter source vertex (0-%d): ", n-1)
	sc := bufio.NewScanner(t.stdin)
	sc.Split(bufio.ScanWords)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return 0, fmt.Errorf("reading source vertex: %w", err)
		}
		return 0, fmt.Errorf("%w: no input", bfs.ErrInvalidSource)
	}
	return bfs.ParseSource(sc.Text(), n)
}
