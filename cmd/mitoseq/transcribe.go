package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mitomaster/mitoseq/internal/mito"
)

func newTranscribeCmd() *cobra.Command {
	var (
		locusID int
		refOnly bool
		gapless bool
	)

	cmd := &cobra.Command{
		Use:   "transcribe --locus <id> [position:token ...]",
		Short: "Reconstruct the transcript of a locus",
		Long: `Map genomic variants into the transcript-local frame of a locus and
reconstruct the RNA sequence. Variants outside the locus are dropped;
light-strand loci are complemented and renumbered from the locus end.`,
		Example: `  mitoseq transcribe --locus 16 3460:A
  mitoseq transcribe --locus 16 --ref`,
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

			var seq string
			if refOnly {
				seq, err = rna.RefSeq()
			} else {
				seq, err = rna.Seq()
			}
			if err != nil {
				return err
			}
			if gapless {
				seq = mito.StripGaps(seq)
			}

			fmt.Fprintln(cmd.OutOrStdout(), seq)
			return nil
		},
	}

	cmd.Flags().IntVarP(&locusID, "locus", "l", 0, "Locus id to transcribe")
	cmd.Flags().BoolVar(&refOnly, "ref", false, "Return the reference transcript, ignoring variants")
	cmd.Flags().BoolVar(&gapless, "gapless", false, "Strip deletion gap markers from the output")
	_ = cmd.MarkFlagRequired("locus")

	return cmd
}
