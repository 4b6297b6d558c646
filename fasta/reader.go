package fasta

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"
)

// Record is one parsed FASTA entry.
type Record struct {
	ID          string // header up to the first whitespace
	Description string // rest of the header line, trimmed
	Seq         string
}

// Read parses every record from r.
// Blank lines and ';' comment lines are skipped.
func Read(r io.Reader) ([]Record, error) {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024 // allow very long single-line sequences
	sc.Buffer(make([]byte, 64*1024), maxLine)

	var (
		recs []Record
		cur  *Record
		seq  strings.Builder
		line int
	)
	flush := func() {
		if cur != nil {
			cur.Seq = seq.String()
			recs = append(recs, *cur)
			seq.Reset()
		}
	}

	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		switch {
		case text == "" || strings.HasPrefix(text, ";"):
			continue
		case strings.HasPrefix(text, ">"):
			flush()
			cur = parseHeader(text[1:])
		default:
			if cur == nil {
				return nil, fmt.Errorf("%w (line %d)", ErrSequenceBeforeHeader, line)
			}
			seq.WriteString(strings.Join(strings.Fields(text), ""))
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("fasta: read: %w", err)
	}
	flush()
	if len(recs) == 0 {
		return nil, ErrNoRecords
	}

	return recs, nil
}

// parseHeader splits a header line (without '>') at its first whitespace.
func parseHeader(h string) *Record {
	h = strings.TrimSpace(h)
	i := strings.IndexFunc(h, unicode.IsSpace)
	if i < 0 {
		return &Record{ID: h}
	}

	return &Record{ID: h[:i], Description: strings.TrimSpace(h[i:])}
}

// ReadFile parses every record from path ("-" for stdin, gzip detected).
func ReadFile(path string) ([]Record, error) {
	rc, err := openReader(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	recs, err := Read(rc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return recs, nil
}

// ReadFirst returns the first record of path.
func ReadFirst(path string) (Record, error) {
	recs, err := ReadFile(path)
	if err != nil {
		return Record{}, err
	}

	return recs[0], nil
}

// Lookup returns the record with the given ID.
func Lookup(recs []Record, id string) (Record, error) {
	for _, r := range recs {
		if r.ID == id {
			return r, nil
		}
	}

	return Record{}, fmt.Errorf("%w: %q", ErrRecordNotFound, id)
}
