// Package config loads tool configuration from the environment.
//
// Every setting has a default matching the tools' fixed file names, so an
// empty environment changes nothing. Variables use the CSRBFS_ prefix, and
// an optional .env file is read first without overriding variables already
// set.
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Prefix is prepended to every environment variable name.
const Prefix = "CSRBFS"

// Config validation errors
var (
	ErrEmptyCSROutput      = errors.New("config: csr_output cannot be empty")
	ErrEmptyBFSOutput      = errors.New("config: bfs_output cannot be empty")
	ErrEmptyFeaturesOutput = errors.New("config: features_output cannot be empty")
	ErrInvalidLogFormat    = errors.New("config: log_format must be 'json' or 'console'")
	ErrInvalidLogLevel     = errors.New("config: log_level must be debug, info, warn, or error")
)

// Config holds settings shared by the csrbuild, bfs and csrfeatures tools.
type Config struct {
	CSROutput      string `envconfig:"CSR_OUTPUT" default:"CSR.txt"`
	BFSOutput      string `envconfig:"BFS_OUTPUT" default:"bfs_output.txt"`
	FeaturesOutput string `envconfig:"FEATURES_OUTPUT" default:"vertex_features.csv"`
	LogLevel       string `envconfig:"LOG_LEVEL" default:"warn"`
	LogFormat      string `envconfig:"LOG_FORMAT" default:"console"`
	// MetricsFile, when set, receives a Prometheus text exposition after each run.
	MetricsFile string `envconfig:"METRICS_FILE"`
}

// Load reads envFiles (".env" when none are given) into the process
// environment, then processes CSRBFS_* variables into a validated Config.
// Missing env files are ignored.
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: loading env file: %w", err)
	}

	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the configuration and returns the first error found.
func (c *Config) Validate() error {
	if c.CSROutput == "" {
		return ErrEmptyCSROutput
	}
	if c.BFSOutput == "" {
		return ErrEmptyBFSOutput
	}
	if c.FeaturesOutput == "" {
		return ErrEmptyFeaturesOutput
	}
	if c.LogFormat != "json" && c.LogFormat != "console" {
		return ErrInvalidLogFormat
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return ErrInvalidLogLevel
	}
	return nil
}
