// Package nwalign is a small toolkit for optimal global alignment of two
// character sequences with the Needleman-Wunsch algorithm.
//
// 🚀 What is in the box?
//
//	• nw/     : scorer, backtracer and the Align entry point
//	• matrix/ : generic row-major Dense[T] grid backing the DP tables
//	• fasta/  : FASTA reader (plain, gzip, stdin) for CLI input
//	• cmd/nwalign: command-line front end (text or JSON output)
//
// ✨ Scoring is fixed at +1 match, -1 mismatch, -1 gap; exactly one optimal
// alignment is reported, chosen by the Diag > Up > Left tie-break.
//
// Quick ASCII example:
//
//	G-ATTACA
//	| | |.|.
//	GCA-TGCU      score = 0
//
//	go get github.com/katalvlaran/nwalign/nw
package nwalign
