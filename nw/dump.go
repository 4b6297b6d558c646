package nw

import "strings"

// dump renders both tables the way the diagnostic output lists them:
// the score table, a blank line, then the numeric flag table.
func (t *table) dump() string {
	var sb strings.Builder
	sb.WriteString("alignment score matrix:\n")
	sb.WriteString(t.scores.String())
	sb.WriteString("\nbest candidate sum matrix:\n")
	sb.WriteString(t.flags.String())

	return sb.String()
}
