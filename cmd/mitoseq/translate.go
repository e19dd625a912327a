package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/mitomaster/mitoseq/internal/mito"
)

func newTranslateCmd() *cobra.Command {
	var (
		locusID    int
		showCodons bool
		showFrames bool
		fullSeq    bool
	)

	cmd := &cobra.Command{
		Use:   "translate --locus <id> [position:token ...]",
		Short: "Translate the variant-bearing transcript of a coding locus",
		Long: `Map genomic variants through the transcript of a protein-coding locus
and report the codon-level amino-acid changes, annotated with the
reading-frame shift wherever indels have moved the frame.`,
		Example: `  mitoseq translate --locus 16 3460:A
  mitoseq translate --locus 16 --frames 3571:-
  mitoseq translate --locus 16 --seq 3460:A`,
		RunE: func(cmd *cobra.Command, args []string) error {
			rd, err := loadProvider()
			if err != nil {
				return err
			}

			variants, err := parseVariantArgs(args)
			if err != nil {
				return err
			}

			dna, err := mito.NewDNA(rd, variants)
			if err != nil {
				return err
			}
			dna.SetLogger(logger)

			rna, err := dna.Transcribe(locusID)
			if err != nil {
				return err
			}
			aa, err := rna.Translate()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			if fullSeq {
				seq, err := aa.Seq()
				if err != nil {
					return err
				}
				fmt.Fprintln(out, seq)
				return nil
			}

			rendered, err := aa.Variants(mito.VariantOptions{
				ShowCodons: showCodons,
				ShowFrames: showFrames,
			})
			if err != nil {
				return err
			}

			positions := make([]int, 0, len(rendered))
			for pos := range rendered {
				positions = append(positions, pos)
			}
			sort.Ints(positions)
			for _, pos := range positions {
				fmt.Fprintf(out, "%d\t%s\n", pos, rendered[pos])
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&locusID, "locus", "l", 0, "Coding locus id to translate")
	cmd.Flags().BoolVar(&showCodons, "codons", false, "Report codons instead of residues")
	cmd.Flags().BoolVar(&showFrames, "frames", false, "Append frame annotations to out-of-frame codons")
	cmd.Flags().BoolVar(&fullSeq, "seq", false, "Print the full variant-bearing residue sequence instead of per-position changes")
	_ = cmd.MarkFlagRequired("locus")

	return cmd
}
