package nw

import "errors"

var (
	// ErrNoOptimalMove reports a visited flag cell with no bit set. The scorer
	// never produces one, so this signals a corrupted or hand-built table.
	ErrNoOptimalMove = errors.New("nw: flag cell has no optimal move")

	// ErrGapInSequence indicates that the gap rune occurs as data in one of the
	// inputs, which would make gap columns indistinguishable from residues.
	ErrGapInSequence = errors.New("nw: gap character occurs in input sequence")

	// ErrInvalidGap indicates that the gap is not a valid Unicode code point.
	ErrInvalidGap = errors.New("nw: invalid gap character")

	// ErrNilFlagMatrix indicates that Backtrace was handed a nil table.
	ErrNilFlagMatrix = errors.New("nw: flag matrix is nil")

	// ErrDimensionMismatch indicates a flag table whose shape is not n×m.
	ErrDimensionMismatch = errors.New("nw: flag matrix shape does not match sequences")
)
