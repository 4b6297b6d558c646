package nw_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/nwalign/nw"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAlign_Scenarios pins score and outputs for hand-checked inputs.
func TestAlign_Scenarios(t *testing.T) {
	tests := []struct {
		name    string
		a, b    string
		score   int
		wantA   string
		wantB   string
		wantMid string
	}{
		{name: "textbook", a: "GATTACA", b: "GCATGCU", score: 0, wantA: "G-ATTACA", wantB: "GCA-TGCU", wantMid: "| | |.|."},
		{name: "one empty", a: "A", b: "", score: -1, wantA: "A", wantB: "-", wantMid: " "},
		{name: "other empty", a: "", b: "AB", score: -2, wantA: "--", wantB: "AB", wantMid: "  "},
		{name: "both empty", a: "", b: "", score: 0, wantA: "", wantB: "", wantMid: ""},
		{name: "identical", a: "AAAA", b: "AAAA", score: 4, wantA: "AAAA", wantB: "AAAA", wantMid: "||||"},
		{name: "leftover prefix", a: "AC", b: "C", score: 0, wantA: "AC", wantB: "-C", wantMid: " |"},
		{name: "diag beats left", a: "A", b: "AA", score: 0, wantA: "-A", wantB: "AA", wantMid: " |"},
		{name: "diag beats up", a: "AA", b: "A", score: 0, wantA: "AA", wantB: "-A", wantMid: " |"},
		{name: "inner gap", a: "ACGT", b: "AGT", score: 2, wantA: "ACGT", wantB: "A-GT", wantMid: "| ||"},
		{name: "kitten", a: "kitten", b: "sitting", score: 1, wantA: "kitten-", wantB: "sitting", wantMid: ".|||.| "},
		{name: "up then left tie", a: "AB", b: "BA", score: -1, wantA: "-AB", wantB: "BA-", wantMid: " | "},
		{name: "multibyte runes", a: "héllo", b: "hello", score: 3, wantA: "héllo", wantB: "hello", wantMid: "|.|||"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res, err := nw.Align(tc.a, tc.b, '-')
			require.NoError(t, err)
			assert.Equal(t, tc.score, res.Score, "score")
			assert.Equal(t, tc.wantA, res.A, "aligned1")
			assert.Equal(t, tc.wantB, res.B, "aligned2")
			assert.Equal(t, tc.wantMid, res.Midline, "midline")
		})
	}
}

// TestAlign_Statistics checks column counts, identity and CIGAR.
func TestAlign_Statistics(t *testing.T) {
	res, err := nw.Align("GATTACA", "GCATGCU", '-')
	require.NoError(t, err)

	assert.Equal(t, 8, res.Len)
	assert.Equal(t, 4, res.Matches)
	assert.Equal(t, 2, res.Mismatches)
	assert.Equal(t, 2, res.Gaps)
	assert.InDelta(t, 0.5, res.Identity(), 1e-12)
	assert.Equal(t, "1=1D1=1I1=1X1=1X", res.CIGAR())

	want := []nw.Move{
		nw.MoveDiag, nw.MoveLeft, nw.MoveDiag, nw.MoveUp,
		nw.MoveDiag, nw.MoveDiag, nw.MoveDiag, nw.MoveDiag,
	}
	if diff := cmp.Diff(want, res.Path); diff != "" {
		t.Errorf("path mismatch (-want +got):\n%s", diff)
	}

	empty, err := nw.Align("", "", '-')
	require.NoError(t, err)
	assert.Equal(t, 0.0, empty.Identity())
	assert.Equal(t, "", empty.CIGAR())

	ident, err := nw.Align("AAAA", "AAAA", '-')
	require.NoError(t, err)
	assert.Equal(t, "4=", ident.CIGAR())
	assert.Equal(t, 1.0, ident.Identity())
}

// TestAlign_GapInSequence verifies the gap rune is rejected as data unless allowed.
func TestAlign_GapInSequence(t *testing.T) {
	_, err := nw.Align("AC-T", "ACT", '-')
	assert.ErrorIs(t, err, nw.ErrGapInSequence, "gap in sequence 1")

	_, err = nw.Align("ACT", "A-T", '-')
	assert.ErrorIs(t, err, nw.ErrGapInSequence, "gap in sequence 2")

	// A different gap rune is fine.
	res, err := nw.Align("AC-T", "ACT", '_')
	require.NoError(t, err)
	assert.Equal(t, "AC-T", res.A)

	// Permissive mode reproduces the ambiguous output: stripping gap runes
	// no longer recovers sequence 1.
	res, err = nw.Align("A-", "A", '-', nw.WithGapInSequence())
	require.NoError(t, err)
	assert.Equal(t, "A-", res.A)
	assert.Equal(t, "A-", res.B)
	assert.NotEqual(t, "A-", stripGap(res.A, '-'), "round-trip is lost when gap is data")
}

// TestAlign_InvalidGap rejects surrogate halves and out-of-range runes.
func TestAlign_InvalidGap(t *testing.T) {
	_, err := nw.Align("A", "A", 0xD800)
	assert.ErrorIs(t, err, nw.ErrInvalidGap)
	_, err = nw.Align("A", "A", -1)
	assert.ErrorIs(t, err, nw.ErrInvalidGap)
}

// TestAlign_MatrixDump checks the diagnostic rendering of both tables.
func TestAlign_MatrixDump(t *testing.T) {
	res, err := nw.Align("AGT", "ACGT", '-', nw.WithMatrix())
	require.NoError(t, err)
	want := "alignment score matrix:\n" +
		"[1, 0, -1, -2]\n" +
		"[0, 0, 1, 0]\n" +
		"[-1, -1, 0, 2]\n" +
		"\nbest candidate sum matrix:\n" +
		"[1, 4, 4, 4]\n" +
		"[2, 1, 1, 4]\n" +
		"[2, 3, 2, 1]\n"
	assert.Equal(t, want, res.Matrix)

	plain, err := nw.Align("AGT", "ACGT", '-')
	require.NoError(t, err)
	assert.Empty(t, plain.Matrix, "matrix is only rendered on request")
}
