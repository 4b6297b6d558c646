package nw

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/nwalign/matrix"
)

// Move is one step of an alignment path. Its value is also the bit index
// of the matching Flag, so Diag < Up < Left is the tie-break order.
type Move uint8

const (
	// MoveDiag aligns seq1[i] with seq2[j] (match or mismatch).
	MoveDiag Move = iota
	// MoveUp aligns seq1[i] with a gap.
	MoveUp
	// MoveLeft aligns a gap with seq2[j].
	MoveLeft
)

// String returns "diag", "up" or "left".
func (m Move) String() string {
	switch m {
	case MoveDiag:
		return "diag"
	case MoveUp:
		return "up"
	case MoveLeft:
		return "left"
	}

	return fmt.Sprintf("Move(%d)", uint8(m))
}

// Flag is the set of moves that achieved a cell's maximum score.
type Flag uint8

// Flag bits, one per Move.
const (
	Diag Flag = 1 << MoveDiag // 0b001
	Up   Flag = 1 << MoveUp   // 0b010
	Left Flag = 1 << MoveLeft // 0b100
)

// Has reports whether mv is among the optimal moves.
func (f Flag) Has(mv Move) bool {
	return f&(1<<mv) != 0
}

// Best returns the lowest-numbered set move (Diag, then Up, then Left).
// ok is false when no bit is set.
func (f Flag) Best() (mv Move, ok bool) {
	for mv = MoveDiag; mv <= MoveLeft; mv++ {
		if f.Has(mv) {
			return mv, true
		}
	}

	return 0, false
}

// String renders the set moves as arrows in Diag, Up, Left order, e.g.
// "↖↑" for Diag|Up. An empty flag renders as "·".
func (f Flag) String() string {
	if f&(Diag|Up|Left) == 0 {
		return "·"
	}
	var sb strings.Builder
	if f.Has(MoveDiag) {
		sb.WriteString("↖")
	}
	if f.Has(MoveUp) {
		sb.WriteString("↑")
	}
	if f.Has(MoveLeft) {
		sb.WriteString("←")
	}

	return sb.String()
}

// FlagMatrix is the n×m table of per-cell optimal moves built by Score.
type FlagMatrix struct {
	cells *matrix.Dense[Flag]
}

// NewFlagMatrix returns a zeroed rows×cols table. Score builds its own;
// this constructor exists for callers that persist or synthesize tables.
func NewFlagMatrix(rows, cols int) (*FlagMatrix, error) {
	d, err := matrix.NewDense[Flag](rows, cols)
	if err != nil {
		return nil, err
	}

	return &FlagMatrix{cells: d}, nil
}

// Rows returns len(seq1).
func (f *FlagMatrix) Rows() int { return f.cells.Rows() }

// Cols returns len(seq2).
func (f *FlagMatrix) Cols() int { return f.cells.Cols() }

// At returns the flag at (row, col).
func (f *FlagMatrix) At(row, col int) (Flag, error) { return f.cells.At(row, col) }

// Set stores the flag at (row, col).
func (f *FlagMatrix) Set(row, col int, v Flag) error { return f.cells.Set(row, col, v) }

// Clone returns an independent copy of the table, for callers that keep it
// after further alignments.
func (f *FlagMatrix) Clone() (*FlagMatrix, error) {
	if f == nil {
		return nil, ErrNilFlagMatrix
	}
	cells, err := f.cells.Clone()
	if err != nil {
		return nil, err
	}

	return &FlagMatrix{cells: cells}, nil
}

// String renders the numeric flags one row per line.
func (f *FlagMatrix) String() string { return f.cells.String() }

// Options configures Align.
//
// Fields:
//   - SaveMatrix: render the score and flag tables into Result.Matrix.
//   - AllowGapInSequence: skip the check that the gap rune is absent from
//     both inputs. Gap-removal no longer recovers the inputs when it fires.
type Options struct {
	SaveMatrix         bool
	AllowGapInSequence bool
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the zero configuration: no matrix dump, strict gap check.
func DefaultOptions() Options {
	return Options{}
}

// WithMatrix requests the diagnostic dump of both tables in Result.Matrix.
func WithMatrix() Option {
	return func(o *Options) { o.SaveMatrix = true }
}

// WithGapInSequence allows the gap rune to occur as sequence data.
func WithGapInSequence() Option {
	return func(o *Options) { o.AllowGapInSequence = true }
}
