package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mitomaster/mitoseq/internal/report"
	"github.com/mitomaster/mitoseq/internal/variantfile"
)

func newBatchCmd() *cobra.Command {
	var (
		mode       string
		locusID    int
		outputFile string
	)

	cmd := &cobra.Command{
		Use:   "batch --mode <sequence|transcript|translation> <variant-file>",
		Short: "Reconstruct sequences for every record in a variant-list file",
		Long: `Read a variant-list file (one record per line: name, variants, and an
optional window) and reconstruct the requested sequence layer for each
record. Records are processed by a worker pool; output keeps the input
order. Use '-' to read from stdin.`,
		Example: `  mitoseq batch --mode sequence samples.tsv
  mitoseq batch --mode translation --locus 16 samples.tsv.gz
  cat samples.tsv | mitoseq batch --mode transcript --locus 16 -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m := report.Mode(mode)
			switch m {
			case report.ModeSequence, report.ModeTranscript, report.ModeTranslation:
			default:
				return fmt.Errorf("unknown mode %q (expected sequence, transcript, or translation)", mode)
			}
			if m != report.ModeSequence && locusID == 0 {
				return fmt.Errorf("--locus is required for %s mode", m)
			}

			rd, err := loadProvider()
			if err != nil {
				return err
			}

			parser, err := variantfile.NewParser(args[0])
			if err != nil {
				return err
			}
			defer parser.Close()

			out := cmd.OutOrStdout()
			if outputFile != "" {
				f, err := os.Create(outputFile)
				if err != nil {
					return fmt.Errorf("create output file: %w", err)
				}
				defer f.Close()
				out = f
			}

			writer := report.NewTabWriter(out)
			if err := writer.WriteHeader(); err != nil {
				return fmt.Errorf("write header: %w", err)
			}

			reporter := report.NewReporter(rd, m, locusID)
			reporter.SetLogger(logger)
			return reporter.ReportAll(parser, writer)
		},
	}

	cmd.Flags().StringVarP(&mode, "mode", "m", string(report.ModeSequence), "Sequence layer to reconstruct: sequence, transcript, translation")
	cmd.Flags().IntVarP(&locusID, "locus", "l", 0, "Locus id (transcript and translation modes)")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (default: stdout)")

	return cmd
}
