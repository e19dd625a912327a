package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mitomaster/mitoseq/internal/mito"
)

func newSeqCmd() *cobra.Command {
	var (
		from, to int
		refOnly  bool
		gapless  bool
	)

	cmd := &cobra.Command{
		Use:   "seq [position:token ...]",
		Short: "Reconstruct a genomic sequence",
		Example: `  mitoseq seq 3460:A 11778:A
  mitoseq seq --from 100 --to 105
  mitoseq seq --from 16567 --to 6 8993.01:CC`,
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

			var seq string
			switch {
			case refOnly && from > 0:
				seq, err = dna.RefSeq(from, to)
			case refOnly:
				seq, err = dna.RefSeq()
			case from > 0:
				seq, err = dna.Seq(from, to)
			default:
				seq, err = dna.Seq()
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

	cmd.Flags().IntVar(&from, "from", 0, "Window start (1-based; with --to)")
	cmd.Flags().IntVar(&to, "to", 0, "Window end (1-based inclusive; may be below --from on the circular genome)")
	cmd.Flags().BoolVar(&refOnly, "ref", false, "Return the reference sequence, ignoring variants")
	cmd.Flags().BoolVar(&gapless, "gapless", false, "Strip deletion gap markers from the output")
	cmd.MarkFlagsRequiredTogether("from", "to")

	return cmd
}
