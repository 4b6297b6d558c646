package nw

import (
	"strconv"
	"strings"
)

// Result holds one optimal alignment and its summary.
type Result struct {
	Score int `json:"score"` // S(n-1,m-1)

	A       string `json:"aligned1"` // seq1 with gaps
	B       string `json:"aligned2"` // seq2 with gaps
	Midline string `json:"midline"`  // "|" match, "." mismatch, " " gap

	Path []Move `json:"-"` // one Move per column, forward order

	Len        int `json:"length"`     // number of columns
	Matches    int `json:"matches"`    // Diag columns with equal characters
	Mismatches int `json:"mismatches"` // Diag columns with different characters
	Gaps       int `json:"gaps"`       // Up and Left columns

	Matrix string `json:"matrix,omitempty"` // only with WithMatrix()
}

// newResult renders path and counts its columns.
func newResult(a, b []rune, gap rune, path []Move) *Result {
	r := &Result{Path: path, Len: len(path)}
	r.A, r.B = render(a, b, gap, path)

	var mid strings.Builder
	mid.Grow(len(path))
	i, j := 0, 0
	for _, mv := range path {
		switch mv {
		case MoveDiag:
			if a[i] == b[j] {
				r.Matches++
				mid.WriteByte('|')
			} else {
				r.Mismatches++
				mid.WriteByte('.')
			}
			i++
			j++
		case MoveUp:
			r.Gaps++
			mid.WriteByte(' ')
			i++
		case MoveLeft:
			r.Gaps++
			mid.WriteByte(' ')
			j++
		}
	}
	r.Midline = mid.String()

	return r
}

// Identity returns Matches/Len, or 0 for an empty alignment.
func (r *Result) Identity() float64 {
	if r.Len == 0 {
		return 0
	}

	return float64(r.Matches) / float64(r.Len)
}

// CIGAR returns the path in extended CIGAR notation, treating seq1 as the
// query: '=' match, 'X' mismatch, 'I' seq1 against a gap, 'D' seq2 against a gap.
// An empty alignment yields "".
func (r *Result) CIGAR() string {
	var (
		buf  strings.Builder
		last byte
		n    int
	)
	flush := func() {
		if n > 0 {
			buf.WriteString(strconv.Itoa(n))
			buf.WriteByte(last)
		}
	}

	a, b := []rune(r.A), []rune(r.B)
	for k, mv := range r.Path {
		var op byte
		switch mv {
		case MoveDiag:
			op = 'X'
			if a[k] == b[k] {
				op = '='
			}
		case MoveUp:
			op = 'I'
		case MoveLeft:
			op = 'D'
		}
		if op == last {
			n++
			continue
		}
		flush()
		last, n = op, 1
	}
	flush()

	return buf.String()
}
