package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/nwalign/internal/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose    bool
	configPath string
	format     string
	showMatrix bool
	midline    bool
	allowGap   bool
	fastaInput bool
	record1    string
	record2    string

	// Resolved configuration
	cfg *config.Config

	// Logger
	logger *zap.Logger
)

// rootCmd aligns two sequences
var rootCmd = &cobra.Command{
	Use:   "nwalign [flags] <seq1> <seq2> [gap]",
	Short: "Global pairwise alignment with Needleman-Wunsch",
	Long: `Aligns two sequences end to end with the Needleman-Wunsch algorithm
(+1 match, -1 mismatch, -1 gap) and prints one optimal alignment followed by
its score.

The optional third argument is the gap character (default "-", or "gap" from
the config file). It must be a single character that does not occur in either
sequence unless --allow-gap-in-seq is given.

Examples:
  nwalign GATTACA GCATGCU
  nwalign --midline GATTACA GCATGCU _
  nwalign --fasta --format json query.fa target.fa.gz
  nwalign --fasta --record2 chr2 query.fa genome.fa`,
	Args:          cobra.RangeArgs(2, 3),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = resolveConfig()
		if err != nil {
			return err
		}

		// Initialize logger
		zc := zap.NewProductionConfig()
		level, err := zapcore.ParseLevel(cfg.LogLevel)
		if err != nil {
			return fmt.Errorf("failed to parse log level: %w", err)
		}
		if verbose {
			level = zapcore.DebugLevel
		}
		zc.Level = zap.NewAtomicLevelAt(level)
		logger, err = zc.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger.Debug("Configuration resolved",
			zap.String("path", configPath),
			zap.String("format", cfg.Format),
			zap.String("gap", cfg.Gap))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runAlign,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultPath, "Path to YAML config file")
	rootCmd.Flags().StringVarP(&format, "format", "f", "", "Output format: text or json (overrides config)")
	rootCmd.Flags().BoolVar(&showMatrix, "matrix", false, "Print the score and flag matrices")
	rootCmd.Flags().BoolVar(&midline, "midline", false, "Print a match line between the aligned sequences")
	rootCmd.Flags().BoolVar(&allowGap, "allow-gap-in-seq", false, "Accept sequences that contain the gap character")
	rootCmd.Flags().BoolVar(&fastaInput, "fasta", false, "Read each sequence from the first record of a FASTA file")
	rootCmd.Flags().StringVar(&record1, "record1", "", "With --fasta, align the record with this ID from the first file")
	rootCmd.Flags().StringVar(&record2, "record2", "", "With --fasta, align the record with this ID from the second file")
}

// resolveConfig loads the config file and applies command-line overrides.
func resolveConfig() (*config.Config, error) {
	c, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if format != "" {
		c.Format = format
	}
	c.ShowMatrix = c.ShowMatrix || showMatrix
	c.Midline = c.Midline || midline
	c.AllowGapInSequence = c.AllowGapInSequence || allowGap
	c.FASTA = c.FASTA || fastaInput
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
