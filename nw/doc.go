// Package nw computes optimal global alignments of two character sequences
// with the Needleman-Wunsch dynamic-programming algorithm.
//
// 🚀 What is Needleman-Wunsch?
//
//	A global aligner: it accounts for both sequences end to end, inserting
//	gaps so that matching characters line up. Typical uses:
//	  • DNA / protein sequence comparison
//	  • diffing short strings where every position matters
//	  • teaching dynamic programming with an explicit traceback
//
// ✨ Scoring (fixed):
//
//	+1 match, -1 mismatch, -1 gap.
//
// The scorer fills an n×m score table S and a parallel flag table F in one
// row-major pass. Row -1 and column -1 are virtual and never stored:
//
//	S(-1,-1) = 0,  S(i,-1) = -(i+1),  S(-1,j) = -(j+1)
//
//	S(i,j) = max( S(i-1,j-1) ± 1,   // Diag: match / mismatch
//	              S(i-1,j)   - 1,   // Up:   seq1[i] against a gap
//	              S(i,j-1)   - 1 )  // Left: seq2[j] against a gap
//
// F(i,j) records every move that reached the maximum, so ties set several
// bits. The backtrace walks from the bottom-right cell, always preferring
// Diag, then Up, then Left, and reports exactly one optimal alignment.
//
// ⚙️ Usage:
//
//	res, err := nw.Align("GATTACA", "GCATGCU", '-')
//	if err != nil {
//	  // ErrGapInSequence, ErrInvalidGap, ...
//	}
//	fmt.Println(res.A)
//	fmt.Println(res.B)
//	fmt.Println(res.Score) // 0
//
// The two phases are also exported on their own (Score and Backtrace) for
// callers that want the flag table.
//
// Performance:
//
//   - Time:   O(n·m)
//   - Memory: O(n·m)
package nw
