// Package logging builds the zap loggers used by the command-line tools.
package logging

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds logger configuration options
type Config struct {
	// Format specifies the log output format: "json" or "console"
	Format string
	// Level specifies the minimum log level: "debug", "info", "warn", "error"
	Level string
	// Output specifies where logs are written (defaults to os.Stderr)
	Output zapcore.WriteSyncer
}

// DefaultConfig returns the default logger configuration.
// Warn level keeps normal runs silent on the console.
func DefaultConfig() Config {
	return Config{
		Format: "console",
		Level:  "warn",
		Output: os.Stderr,
	}
}

// New creates a zap logger based on the provided configuration
func New(cfg Config) (*zap.Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	output := cfg.Output
	if output == nil {
		output = os.Stderr
	}

	var encoder zapcore.Encoder
	switch strings.ToLower(cfg.Format) {
	case "console", "text":
		encoderConfig := zap.NewDevelopmentEncoderConfig()
		encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	case "json", "":
		encoderConfig := zap.NewProductionEncoderConfig()
		encoderConfig.TimeKey = "timestamp"
		encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	default:
		return nil, fmt.Errorf("invalid log format: %s", cfg.Format)
	}

	core := zapcore.NewCore(encoder, output, level)
	return zap.New(core), nil
}

// Discard returns a logger that discards all output (useful for tests)
func Discard() *zap.Logger {
	return zap.NewNop()
}

// ParseLevel converts a string level to zapcore.Level
func ParseLevel(level string) (zapcore.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel, nil
	case "info":
		return zapcore.InfoLevel, nil
	case "warn", "warning":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.InfoLevel, fmt.Errorf("invalid log level: %s", level)
	}
}
