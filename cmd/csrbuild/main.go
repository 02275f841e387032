// Command csrbuild converts an edge-list file into a CSR file.
//
//	csrbuild [-o CSR.txt] <input_file>
//
// The input holds "n m" followed by m directed edges "u v". The output
// holds "n m", the n+1 offsets, and the m sorted neighbor indices.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/csrbfs/csr"
	"github.com/katalvlaran/csrbfs/internal/cli"
	"github.com/katalvlaran/csrbfs/internal/config"
	"github.com/katalvlaran/csrbfs/internal/logging"
	"github.com/katalvlaran/csrbfs/internal/metrics"
)

const synopsis = "[-o output] <input_file>"

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
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
	out := fs.String("o", cfg.CSROutput, "CSR output file")
	if err := fs.Parse(args[1:]); err != nil || fs.NArg() != 1 {
		return cli.Fail(stderr, logger, cli.Usage(prog, synopsis))
	}

	rec := metrics.New("csrbuild")
	if err := convert(fs.Arg(0), *out, logger, rec); err != nil {
		return cli.Fail(stderr, logger, err)
	}
	if err := rec.Flush(cfg.MetricsFile); err != nil {
		logger.Warn("metrics flush failed", zap.String("path", cfg.MetricsFile), zap.Error(err))
	}
	_, _ = fmt.Fprintf(stdout, "CSR written to %s\n", *out)
	return cli.ExitOK
}

// convert reads the edge list at in, builds the CSR form, and writes it to out.
func convert(in, out string, logger *zap.Logger, rec *metrics.Recorder) error {
	start := time.Now()
	el, err := csr.ReadEdgeListFile(in)
	if err != nil {
		if cli.IsPathError(err) {
			return cli.OpenError(in, err)
		}
		return err
	}
	rec.LoadDuration.Observe(time.Since(start).Seconds())
	logger.Info("edge list loaded", zap.String("path", in), zap.Int("n", el.N), zap.Int("m", el.M))

	start = time.Now()
	g, err := csr.FromEdgeList(el)
	if err != nil {
		return fmt.Errorf("%s: %w", in, err)
	}
	built := time.Since(start)
	rec.BuildDuration.Observe(built.Seconds())
	rec.ObserveGraph(g.N, g.M)
	logger.Info("csr built", zap.Duration("elapsed", built))

	if err := csr.WriteFile(out, g); err != nil {
		if cli.IsPathError(err) {
			return cli.CreateError(out, err)
		}
		return err
	}
	if fi, err := os.Stat(out); err == nil {
		rec.OutputBytes.Add(float64(fi.Size()))
	}
	logger.Info("csr written", zap.String("path", out))
	return nil
}
