package csr

import (
	"fmt"
	"io"
	"os"
)

// ParseEdgeList reads an edge-list description:
//
//	n m
//	u0 v0
//	...
//	u(m-1) v(m-1)
//
// Tokens may be separated by any whitespace; line structure is not
// significant. Content after the m-th pair is ignored.
// Returns ErrInputMalformed if the header is missing or negative, a token
// is not an integer, or fewer than m pairs follow.
func ParseEdgeList(r io.Reader) (*EdgeList, error) {
	tok := newTokenizer(r)
	n, m, err := tok.header()
	if err != nil {
		return nil, err
	}

	el := &EdgeList{N: n, M: m, Edges: make([]Edge, 0, capHint(m))}
	for i := 0; i < m; i++ {
		u, err := tok.next("edge source")
		if err != nil {
			return nil, fmt.Errorf("edge %d of %d: %w", i+1, m, err)
		}
		v, err := tok.next("edge destination")
		if err != nil {
			return nil, fmt.Errorf("edge %d of %d: %w", i+1, m, err)
		}
		el.Edges = append(el.Edges, Edge{From: u, To: v})
	}
	return el, nil
}

// ReadEdgeListFile opens path, parses it with ParseEdgeList, and closes it.
// Open failures are returned as the underlying *fs.PathError.
func ReadEdgeListFile(path string) (*EdgeList, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	el, err := ParseEdgeList(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return el, nil
}
