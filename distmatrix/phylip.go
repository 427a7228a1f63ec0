package distmatrix

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrMalformedPhylip indicates the input does not follow the expected
// PHYLIP-style shape: an integer N on the first line, then N lines each
// starting with a taxon name followed by N whitespace-separated numbers.
var ErrMalformedPhylip = errors.New("distmatrix: malformed PHYLIP input")

// ParsePhylip reads a PHYLIP-style lower/full symmetric distance matrix from
// r: the first line is an integer N, the next N lines each hold a taxon name
// followed by N whitespace-separated decimal numbers. Whitespace is
// insensitive to run length.
//
// This is the matrix-source collaborator referenced by the driver's external
// interfaces; it performs its own validation (via New) before the core ever
// sees the result, and never panics on malformed input.
func ParsePhylip(r io.Reader) (*Matrix, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	if !sc.Scan() {
		return nil, fmt.Errorf("%w: empty input", ErrMalformedPhylip)
	}
	n, err := strconv.Atoi(strings.TrimSpace(sc.Text()))
	if err != nil || n <= 0 {
		return nil, fmt.Errorf("%w: invalid taxon count: %q", ErrMalformedPhylip, sc.Text())
	}

	names := make([]string, 0, n)
	d := make([][]float64, 0, n)
	for i := 0; i < n; i++ {
		if !sc.Scan() {
			return nil, fmt.Errorf("%w: expected %d rows, got %d", ErrMalformedPhylip, n, i)
		}
		fields := strings.Fields(sc.Text())
		if len(fields) != n+1 {
			return nil, fmt.Errorf("%w: row %d has %d fields, want %d", ErrMalformedPhylip, i, len(fields), n+1)
		}
		names = append(names, fields[0])
		row := make([]float64, n)
		for j, tok := range fields[1:] {
			v, verr := strconv.ParseFloat(tok, 64)
			if verr != nil {
				return nil, fmt.Errorf("%w: row %d col %d: %v", ErrMalformedPhylip, i, j, verr)
			}
			row[j] = v
		}
		d = append(d, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPhylip, err)
	}

	return New(d, names)
}
