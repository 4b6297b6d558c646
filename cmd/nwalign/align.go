package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"
	"unicode/utf8"

	"github.com/katalvlaran/nwalign/fasta"
	"github.com/katalvlaran/nwalign/internal/config"
	"github.com/katalvlaran/nwalign/nw"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// input is one sequence to align plus its FASTA ID, if any.
type input struct {
	name string
	seq  string
}

// jsonOutput is the --format json document.
type jsonOutput struct {
	Name1 string `json:"name1,omitempty"`
	Name2 string `json:"name2,omitempty"`
	*nw.Result
	Identity float64 `json:"identity"`
	CIGAR    string  `json:"cigar"`
}

// runAlign aligns args[0] against args[1] and writes the result.
func runAlign(cmd *cobra.Command, args []string) error {
	gap, err := parseGap(args)
	if err != nil {
		return err
	}

	if !cfg.FASTA && (record1 != "" || record2 != "") {
		return fmt.Errorf("--record1 and --record2 require --fasta")
	}
	in1, err := loadInput(args[0], record1)
	if err != nil {
		return err
	}
	in2, err := loadInput(args[1], record2)
	if err != nil {
		return err
	}

	var opts []nw.Option
	if cfg.ShowMatrix {
		opts = append(opts, nw.WithMatrix())
	}
	if cfg.AllowGapInSequence {
		opts = append(opts, nw.WithGapInSequence())
	}

	logger.Debug("Aligning",
		zap.Int("len1", utf8.RuneCountInString(in1.seq)),
		zap.Int("len2", utf8.RuneCountInString(in2.seq)),
		zap.String("gap", string(gap)))

	start := time.Now()
	res, err := nw.Align(in1.seq, in2.seq, gap, opts...)
	if err != nil {
		logger.Error("Alignment failed", zap.Error(err))
		return err
	}
	logger.Info("Alignment complete",
		zap.Int("score", res.Score),
		zap.Int("length", res.Len),
		zap.Int("gaps", res.Gaps),
		zap.Duration("elapsed", time.Since(start)))

	out := cmd.OutOrStdout()
	if cfg.Format == config.FormatJSON {
		return writeJSON(out, in1, in2, res)
	}
	return writeText(out, res)
}

// parseGap returns the gap rune from args[2] or the configuration.
func parseGap(args []string) (rune, error) {
	if len(args) < 3 {
		return cfg.GapRune(), nil
	}
	if utf8.RuneCountInString(args[2]) != 1 {
		return 0, fmt.Errorf("gap must be exactly one character, got %q", args[2])
	}
	r, _ := utf8.DecodeRuneInString(args[2])
	return r, nil
}

// loadInput returns arg itself, or a record of the FASTA file it names:
// the one with ID id, or the first when id is empty.
func loadInput(arg, id string) (input, error) {
	if !cfg.FASTA {
		return input{seq: arg}, nil
	}
	var (
		rec fasta.Record
		err error
	)
	if id == "" {
		rec, err = fasta.ReadFirst(arg)
	} else {
		var recs []fasta.Record
		if recs, err = fasta.ReadFile(arg); err == nil {
			rec, err = fasta.Lookup(recs, id)
		}
	}
	if err != nil {
		return input{}, err
	}
	logger.Debug("Loaded FASTA record",
		zap.String("path", arg),
		zap.String("id", rec.ID),
		zap.Int("length", len(rec.Seq)))
	return input{name: rec.ID, seq: rec.Seq}, nil
}

// writeText prints the optional matrices, the aligned pair and the score.
func writeText(w io.Writer, res *nw.Result) error {
	if res.Matrix != "" {
		if _, err := fmt.Fprintf(w, "%s\nbacktracing:\n", res.Matrix); err != nil {
			return err
		}
	}
	lines := []string{res.A}
	if cfg.Midline {
		lines = append(lines, res.Midline)
	}
	lines = append(lines, res.B)
	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "(alignment score = %d)\n", res.Score)
	return err
}

// writeJSON prints one indented JSON document.
func writeJSON(w io.Writer, in1, in2 input, res *nw.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(jsonOutput{
		Name1:    in1.name,
		Name2:    in2.name,
		Result:   res,
		Identity: res.Identity(),
		CIGAR:    res.CIGAR(),
	})
}
