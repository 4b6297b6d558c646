package fasta

import "errors"

var (
	// ErrNoRecords indicates that the input held no FASTA record.
	ErrNoRecords = errors.New("fasta: no records")

	// ErrSequenceBeforeHeader indicates sequence data before the first '>' line.
	ErrSequenceBeforeHeader = errors.New("fasta: sequence data before first header")

	// ErrRecordNotFound indicates that no record carries the requested ID.
	ErrRecordNotFound = errors.New("fasta: record not found")
)
