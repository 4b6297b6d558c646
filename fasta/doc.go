// Package fasta reads sequences for alignment from FASTA files.
//
// A record starts at a '>' header line; the following lines up to the next
// header are concatenated with surrounding whitespace removed. Files may be
// gzip-compressed (detected by magic bytes or a ".gz" suffix), and the path
// "-" reads standard input.
package fasta
