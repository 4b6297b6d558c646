package nw

import (
	"github.com/katalvlaran/nwalign/matrix"
)

const (
	matchScore    = 1
	mismatchScore = -1
	gapScore      = -1
)

// table holds both DP tables for one alignment. It is owned by the call
// that built it and never shared.
type table struct {
	scores *matrix.Dense[int]
	flags  *FlagMatrix
}

// Score fills the score and flag tables for a against b and returns the flag
// table together with the final alignment score.
//
// Algorithm (row-major, i over a, j over b):
//
//	diag = S(i-1,j-1) + (a[i]==b[j] ? +1 : -1)
//	up   = S(i-1,j)   - 1
//	left = S(i,j-1)   - 1
//	S(i,j) = max(diag, up, left)
//	F(i,j) = {moves whose candidate == S(i,j)}
//
// The final score is S(n-1,m-1). When a or b is empty no cell exists and
// the virtual boundary supplies it: 0 for two empty inputs, -(n+m) otherwise.
//
// Complexity: O(n·m) time and memory.
func Score(a, b []rune) (*FlagMatrix, int) {
	t := fill(a, b)

	return t.flags, t.final(len(a), len(b))
}

// fill builds both tables in a single pass.
func fill(a, b []rune) *table {
	n, m := len(a), len(b)
	// Shapes are non-negative, so construction cannot fail.
	scores, _ := matrix.NewDense[int](n, m)
	flags, _ := NewFlagMatrix(n, m)
	t := &table{scores: scores, flags: flags}

	var diag, up, left, best int
	for i := 0; i < n; i++ {
		for j := 0; j < m; j++ {
			// 1) Candidate sums from the three predecessors.
			sub := mismatchScore
			if a[i] == b[j] {
				sub = matchScore
			}
			diag = t.boundaryOrCell(i-1, j-1) + sub
			up = t.boundaryOrCell(i-1, j) + gapScore
			left = t.boundaryOrCell(i, j-1) + gapScore

			// 2) Keep the maximum.
			best = max(diag, up, left)

			// 3) Record every move that reached it; exact integer equality.
			var f Flag
			if diag == best {
				f |= Diag
			}
			if up == best {
				f |= Up
			}
			if left == best {
				f |= Left
			}

			// (i,j) is in range by construction.
			_ = t.scores.Set(i, j, best)
			_ = t.flags.Set(i, j, f)
		}
	}

	return t
}

// boundaryOrCell returns S(r,c), computing the virtual row/column -1 on demand.
func (t *table) boundaryOrCell(r, c int) int {
	switch {
	case r < 0:
		return (c + 1) * gapScore
	case c < 0:
		return (r + 1) * gapScore
	}
	v, _ := t.scores.At(r, c)

	return v
}

// final returns S(n-1,m-1), falling back to the boundary for empty inputs.
func (t *table) final(n, m int) int {
	return t.boundaryOrCell(n-1, m-1)
}
