// Package cli holds the error taxonomy and exit-code policy shared by the
// command-line tools. Every failure is fatal to the invocation: one
// diagnostic line on stderr, exit status 1.
package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"

	"go.uber.org/zap"
)

// Exit statuses.
const (
	ExitOK      = 0
	ExitFailure = 1
)

// Error classes not owned by the domain packages.
var (
	// ErrUsage marks a missing or malformed command-line argument.
	ErrUsage = errors.New("usage error")

	// ErrFileOpen marks an input that cannot be opened or an output that
	// cannot be created.
	ErrFileOpen = errors.New("file open error")
)

// UsageError carries the synopsis printed for ErrUsage failures.
type UsageError struct {
	Prog     string
	Synopsis string
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("Usage: %s %s", e.Prog, e.Synopsis)
}

// Is makes errors.Is(err, ErrUsage) match.
func (e *UsageError) Is(target error) bool {
	return target == ErrUsage
}

// Usage returns a UsageError for prog.
func Usage(prog, synopsis string) error {
	return &UsageError{Prog: prog, Synopsis: synopsis}
}

// OpenError wraps a failure to open an input file.
func OpenError(path string, err error) error {
	return fmt.Errorf("Error opening file: %s: %w: %w", path, ErrFileOpen, err)
}

// CreateError wraps a failure to create an output file.
func CreateError(path string, err error) error {
	return fmt.Errorf("Error creating file: %s: %w: %w", path, ErrFileOpen, err)
}

// IsPathError reports whether err stems from a filesystem operation on a
// named path (open, create, read of a directory, ...).
func IsPathError(err error) bool {
	var pe *fs.PathError
	return errors.As(err, &pe)
}

// ExitCode maps err to a process exit status.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	return ExitFailure
}

// Fail prints the single diagnostic line for err, records it at debug
// level, and returns the exit status. logger may be nil.
func Fail(stderr io.Writer, logger *zap.Logger, err error) int {
	_, _ = fmt.Fprintln(stderr, err.Error())
	if logger != nil {
		logger.Debug("invocation failed",
			zap.Bool("usage", errors.Is(err, ErrUsage)),
			zap.Bool("file", errors.Is(err, ErrFileOpen)),
			zap.Error(err))
	}
	return ExitCode(err)
}
