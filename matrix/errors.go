// Package matrix: sentinel error set.
// Every message is prefixed with "matrix: ..." so failures are easy to grep.
// Callers match them with errors.Is; methods wrap them with positional context.

package matrix

import "errors"

var (
	// ErrBadShape is returned when a requested shape is invalid (rows<0 or cols<0).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// At and Set return this rather than panicking.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates that a nil *Dense receiver was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)
