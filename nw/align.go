package nw

import (
	"fmt"
	"unicode/utf8"
)

// Align computes the optimal global alignment of a and b and reconstructs
// one optimal path, writing gap into gap columns.
//
// Preconditions and validation (in order):
//  1. gap must be a valid code point (ErrInvalidGap).
//  2. gap must not occur in a or b (ErrGapInSequence), unless
//     WithGapInSequence() is given.
//
// Empty inputs are not errors: "" vs "" scores 0 with two empty outputs,
// and "A" vs "" scores -1 with outputs "A" and "-".
//
// Complexity: O(n·m) time and memory.
func Align(a, b string, gap rune, opts ...Option) (*Result, error) {
	// 1) Build Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate the gap rune against both inputs.
	if !utf8.ValidRune(gap) {
		return nil, fmt.Errorf("%w: %U", ErrInvalidGap, gap)
	}
	s1, s2 := []rune(a), []rune(b)
	if !cfg.AllowGapInSequence {
		if err := checkGap(gap, s1, s2); err != nil {
			return nil, err
		}
	}

	// 3) Score, then trace.
	t := fill(s1, s2)
	path, err := trace(len(s1), len(s2), t.flags)
	if err != nil {
		return nil, err
	}

	// 4) Assemble the result.
	res := newResult(s1, s2, gap, path)
	res.Score = t.final(len(s1), len(s2))
	if cfg.SaveMatrix {
		res.Matrix = t.dump()
	}

	return res, nil
}

// checkGap returns ErrGapInSequence with the first offending position.
func checkGap(gap rune, seqs ...[]rune) error {
	for s, seq := range seqs {
		for i, r := range seq {
			if r == gap {
				return fmt.Errorf("%w: %q at position %d of sequence %d", ErrGapInSequence, gap, i, s+1)
			}
		}
	}

	return nil
}
