package bfs

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
)

// WriteDistances writes one line per vertex in ascending id order, then a
// timing line:
//
//	<i>,<level>    reached vertex
//	<i> -1         unreached vertex
//	BFS execution time: <seconds> seconds
//
// The comma/space mismatch between reached and unreached lines is the
// established file format and is kept byte for byte.
func WriteDistances(w io.Writer, res *Result) error {
	if res == nil {
		return ErrResultNil
	}
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 32)
	for i, level := range res.Levels {
		buf = strconv.AppendInt(buf[:0], int64(i), 10)
		if level == Unreached {
			buf = append(buf, " -1\n"...)
		} else {
			buf = append(buf, ',')
			buf = strconv.AppendInt(buf, int64(level), 10)
			buf = append(buf, '\n')
		}
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(bw, "BFS execution time: %s seconds\n", FormatSeconds(res.Elapsed)); err != nil {
		return err
	}
	return bw.Flush()
}

// WriteDistancesFile creates (or truncates) path and writes res to it.
// Create failures are returned as the underlying *fs.PathError.
func WriteDistancesFile(path string, res *Result) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = cerr
		}
	}()
	return WriteDistances(f, res)
}

// FormatSeconds renders d in seconds with six significant digits,
// switching to exponent form for very small or large values (1.2e-05).
func FormatSeconds(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'g', 6, 64)
}

// ParseSource parses operator input as a source vertex for a graph of n
// vertices. Surrounding whitespace is ignored. Non-integer input and ids
// outside [0, n) yield ErrInvalidSource.
func ParseSource(s string, n int) (int, error) {
	s = strings.TrimSpace(s)
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrInvalidSource, s)
	}
	if v < 0 || v >= n {
		return 0, fmt.Errorf("%w: %d not in [0,%d)", ErrInvalidSource, v, n)
	}
	return v, nil
}
