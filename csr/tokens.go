package csr

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// maxPrealloc caps slice capacity reserved from an untrusted header.
// Larger inputs still load, growing by append.
const maxPrealloc = 1 << 20

// tokenizer yields whitespace-separated integers from a text stream.
type tokenizer struct {
	sc  *bufio.Scanner
	pos int // 1-based index of the last token read
}

func newTokenizer(r io.Reader) *tokenizer {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), bufio.MaxScanTokenSize)
	sc.Split(bufio.ScanWords)
	return &tokenizer{sc: sc}
}

// next reads one integer; what names the value for error messages.
// End of input, oversized tokens and non-integer tokens are
// ErrInputMalformed; other read failures are returned wrapped as-is.
func (t *tokenizer) next(what string) (int, error) {
	if !t.sc.Scan() {
		switch err := t.sc.Err(); {
		case errors.Is(err, bufio.ErrTooLong):
			return 0, fmt.Errorf("%w: token after #%d (%s) is too long: %w", ErrInputMalformed, t.pos, what, err)
		case err != nil:
			return 0, fmt.Errorf("csr: reading %s: %w", what, err)
		}
		return 0, fmt.Errorf("%w: unexpected end of input reading %s", ErrInputMalformed, what)
	}
	t.pos++
	v, err := strconv.Atoi(t.sc.Text())
	if err != nil {
		return 0, fmt.Errorf("%w: token #%d %q (%s) is not an integer", ErrInputMalformed, t.pos, t.sc.Text(), what)
	}
	return v, nil
}

// header reads the "n m" pair shared by both file formats.
func (t *tokenizer) header() (n, m int, err error) {
	if n, err = t.next("vertex count"); err != nil {
		return 0, 0, err
	}
	if m, err = t.next("edge count"); err != nil {
		return 0, 0, err
	}
	if n < 0 || m < 0 {
		return 0, 0, fmt.Errorf("%w: negative header n=%d m=%d", ErrInputMalformed, n, m)
	}
	if n > MaxVertices {
		return 0, 0, fmt.Errorf("%w: vertex count %d exceeds %d", ErrInputMalformed, n, MaxVertices)
	}
	return n, m, nil
}

func capHint(n int) int {
	switch {
	case n < 0:
		return 0
	case n > maxPrealloc:
		return maxPrealloc
	}
	return n
}
