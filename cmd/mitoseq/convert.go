package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mitomaster/mitoseq/internal/refdata"
)

func newConvertCmd() *cobra.Command {
	var (
		inputPath  string
		outputPath string
	)

	cmd := &cobra.Command{
		Use:   "convert --input <bundle.yaml> --output <store.duckdb>",
		Short: "Import a YAML reference bundle into a DuckDB store",
		Long: `Convert a YAML reference bundle (reference sequence, locus table,
codon table, transcripts, translations) into a DuckDB store, which
other commands load through --refdata.`,
		Example: `  mitoseq convert --input rcrs.yaml --output rcrs.duckdb
  mitoseq convert -i rcrs.yaml -o ~/.mitoseq/rcrs.duckdb`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if filepath.Ext(outputPath) != ".duckdb" && filepath.Ext(outputPath) != ".db" {
				outputPath += ".duckdb"
			}

			// Imports replace the store wholesale; start clean.
			if _, err := os.Stat(outputPath); err == nil {
				if err := os.Remove(outputPath); err != nil {
					return fmt.Errorf("remove existing store: %w", err)
				}
			}

			bundle, err := refdata.LoadBundle(inputPath)
			if err != nil {
				return err
			}

			store, err := refdata.Open(outputPath)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.Import(bundle); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %q (%d loci) into %s\n",
				bundle.Name, len(bundle.Loci), outputPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "Input YAML reference bundle")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output DuckDB store path")
	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}
