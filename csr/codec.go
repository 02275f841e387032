package csr

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
)

// Write encodes g in CSR text form: the "n m" header, then Offsets on one
// line and Indices on the next, each value followed by a single space.
func Write(w io.Writer, g *Graph) error {
	if g == nil {
		return ErrGraphNil
	}
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 24)

	buf = strconv.AppendInt(buf[:0], int64(g.N), 10)
	buf = append(buf, ' ')
	buf = strconv.AppendInt(buf, int64(g.M), 10)
	buf = append(buf, '\n')
	if _, err := bw.Write(buf); err != nil {
		return err
	}

	for _, arr := range [][]int{g.Offsets, g.Indices} {
		for _, x := range arr {
			buf = strconv.AppendInt(buf[:0], int64(x), 10)
			buf = append(buf, ' ')
			if _, err := bw.Write(buf); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteFile creates (or truncates) path and writes g to it.
// Create failures are returned as the underlying *fs.PathError.
func WriteFile(path string, g *Graph) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = cerr
		}
	}()
	return Write(f, g)
}

// Read decodes a CSR text stream and checks its structure: array lengths,
// Offsets[0] == 0, Offsets[n] == m, non-decreasing offsets, and every
// index inside [0, n). Neighbor slices are not required to be sorted.
// Any violation is reported as ErrInputMalformed.
func Read(r io.Reader) (*Graph, error) {
	tok := newTokenizer(r)
	n, m, err := tok.header()
	if err != nil {
		return nil, err
	}

	g := &Graph{
		N:       n,
		M:       m,
		Offsets: make([]int, 0, capHint(n+1)),
		Indices: make([]int, 0, capHint(m)),
	}
	for i := 0; i <= n; i++ {
		x, err := tok.next("offset")
		if err != nil {
			return nil, fmt.Errorf("offsets[%d] of %d: %w", i, n+1, err)
		}
		g.Offsets = append(g.Offsets, x)
	}
	for i := 0; i < m; i++ {
		x, err := tok.next("index")
		if err != nil {
			return nil, fmt.Errorf("indices[%d] of %d: %w", i, m, err)
		}
		g.Indices = append(g.Indices, x)
	}

	if err := g.checkStructure(); err != nil {
		return nil, err
	}
	return g, nil
}

// ReadFile opens path, decodes it with Read, and closes it.
// Open failures are returned as the underlying *fs.PathError.
func ReadFile(path string) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	g, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}
