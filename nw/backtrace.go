package nw

import (
	"fmt"
	"strings"
)

// Backtrace reconstructs one optimal alignment of a and b from flags.
//
// The walk starts at (n-1, m-1). At each cell it takes the lowest set bit
// (Diag, then Up, then Left) and stops as soon as either index drops below
// zero. Whatever prefix of the other sequence was never visited is emitted
// verbatim against leading gaps, so both outputs have the same length
// L = max(emitted1+remaining1, emitted2+remaining2) >= max(n, m).
//
// Errors:
//   - ErrNilFlagMatrix: flags is nil.
//   - ErrDimensionMismatch: flags is not len(a)×len(b).
//   - ErrNoOptimalMove: a visited cell has no bit set; nothing is returned.
//
// Complexity: O(n+m) time and memory.
func Backtrace(a, b []rune, gap rune, flags *FlagMatrix) (aligned1, aligned2 string, err error) {
	path, err := trace(len(a), len(b), flags)
	if err != nil {
		return "", "", err
	}
	aligned1, aligned2 = render(a, b, gap, path)

	return aligned1, aligned2, nil
}

// trace returns the alignment path in forward order, leftover prefix first.
func trace(n, m int, flags *FlagMatrix) ([]Move, error) {
	if flags == nil {
		return nil, ErrNilFlagMatrix
	}
	if flags.Rows() != n || flags.Cols() != m {
		return nil, fmt.Errorf("%w: table is %dx%d, sequences are %dx%d",
			ErrDimensionMismatch, flags.Rows(), flags.Cols(), n, m)
	}

	// 1) Walk back from the bottom-right cell, collecting moves in reverse.
	rev := make([]Move, 0, n+m)
	row, col := n-1, m-1
	remaining1, remaining2 := n, m
	for row >= 0 && col >= 0 {
		f, err := flags.At(row, col)
		if err != nil {
			return nil, err
		}
		mv, ok := f.Best()
		if !ok {
			return nil, fmt.Errorf("%w: cell (%d,%d)", ErrNoOptimalMove, row, col)
		}
		rev = append(rev, mv)

		switch mv {
		case MoveDiag:
			row--
			col--
			remaining1--
			remaining2--
		case MoveUp:
			row--
			remaining1--
		case MoveLeft:
			col--
			remaining2--
		}
	}

	// 2) The loop ends with one side exhausted, so at most one of the
	//    remaining counters is non-zero. Its unvisited prefix becomes
	//    leading columns against gaps in the other output.
	path := make([]Move, 0, remaining1+remaining2+len(rev))
	for k := 0; k < remaining1; k++ {
		path = append(path, MoveUp)
	}
	for k := 0; k < remaining2; k++ {
		path = append(path, MoveLeft)
	}

	// 3) Append the walked moves in forward order.
	for k := len(rev) - 1; k >= 0; k-- {
		path = append(path, rev[k])
	}

	return path, nil
}

// render lays out a and b along path, writing gap in gap columns.
func render(a, b []rune, gap rune, path []Move) (string, string) {
	var s1, s2 strings.Builder
	s1.Grow(len(path))
	s2.Grow(len(path))

	i, j := 0, 0
	for _, mv := range path {
		switch mv {
		case MoveDiag:
			s1.WriteRune(a[i])
			s2.WriteRune(b[j])
			i++
			j++
		case MoveUp:
			s1.WriteRune(a[i])
			s2.WriteRune(gap)
			i++
		case MoveLeft:
			s1.WriteRune(gap)
			s2.WriteRune(b[j])
			j++
		}
	}

	return s1.String(), s2.String()
}
