// Command csrfeatures derives per-vertex structural features from a CSR
// file and writes them as CSV, or as Parquet when the output ends in
// ".parquet".
//
//	csrfeatures [-o vertex_features.csv] <CSR filename>
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
	"github.com/katalvlaran/csrbfs/features"
	"github.com/katalvlaran/csrbfs/internal/cli"
	"github.com/katalvlaran/csrbfs/internal/config"
	"github.com/katalvlaran/csrbfs/internal/logging"
	"github.com/katalvlaran/csrbfs/internal/metrics"
)

const synopsis = "[-o output] <CSR filename>"

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
	out := fs.String("o", cfg.FeaturesOutput, "features output file (.csv or .parquet)")
	if err := fs.Parse(args[1:]); err != nil || fs.NArg() != 1 {
		return cli.Fail(stderr, logger, cli.Usage(prog, synopsis))
	}
	in := fs.Arg(0)

	rec := metrics.New("csrfeatures")
	start := time.Now()
	g, err := csr.ReadFile(in)
	if err != nil {
		if cli.IsPathError(err) {
			err = cli.OpenError(in, err)
		}
		return cli.Fail(stderr, logger, err)
	}
	rec.LoadDuration.Observe(time.Since(start).Seconds())
	rec.ObserveGraph(g.N, g.M)

	rows, err := features.Extract(g)
	if err != nil {
		return cli.Fail(stderr, logger, err)
	}
	if err := features.WriteFile(*out, rows); err != nil {
		if cli.IsPathError(err) {
			err = cli.CreateError(*out, err)
		}
		return cli.Fail(stderr, logger, err)
	}
	if fi, err := os.Stat(*out); err == nil {
		rec.OutputBytes.Add(float64(fi.Size()))
	}
	logger.Info("features written", zap.String("path", *out), zap.Int("rows", len(rows)))

	if err := rec.Flush(cfg.MetricsFile); err != nil {
		logger.Warn("metrics flush failed", zap.String("path", cfg.MetricsFile), zap.Error(err))
	}
	_, _ = fmt.Fprintf(stdout, "Features written to %s\n", *out)
	return cli.ExitOK
}
