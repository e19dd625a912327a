// Package main provides the mitoseq command-line tool.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/mitomaster/mitoseq/internal/mito"
	"github.com/mitomaster/mitoseq/internal/refdata"
	"github.com/mitomaster/mitoseq/internal/variantfile"
)

// Version information (set at build time)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// logger is configured in the root PersistentPreRunE; commands and the
// engine share it.
var logger = zap.NewNop()

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:           "mitoseq",
		Short:         "Reconstruct mitochondrial DNA, RNA, and protein sequences from variant lists",
		Long: `mitoseq overlays sparse variant maps (substitutions, insertions,
deletions) onto the circular mitochondrial reference genome and
reconstructs the resulting genomic, transcript, and protein sequences,
tracking strand direction and indel-induced frame shifts.`,
		Version:       fmt.Sprintf("%s (%s) built %s", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			initConfig()
			if verbose {
				l, err := zap.NewDevelopment()
				if err != nil {
					return fmt.Errorf("create logger: %w", err)
				}
				logger = l
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringP("refdata", "r", "", "Reference data: YAML bundle or DuckDB store")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	_ = viper.BindPFlag("refdata", cmd.PersistentFlags().Lookup("refdata"))

	cmd.AddCommand(newSeqCmd())
	cmd.AddCommand(newTranscribeCmd())
	cmd.AddCommand(newTranslateCmd())
	cmd.AddCommand(newBatchCmd())
	cmd.AddCommand(newConvertCmd())
	cmd.AddCommand(newConfigCmd())

	return cmd
}

func initConfig() {
	viper.SetConfigName(".mitoseq")
	viper.SetConfigType("yaml")
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
	}
	viper.SetEnvPrefix("MITOSEQ")
	viper.AutomaticEnv()

	// A missing config file is fine; flags and env cover everything.
	_ = viper.ReadInConfig()
}

// loadProvider opens the configured reference data set.
func loadProvider() (*refdata.Memory, error) {
	path := viper.GetString("refdata")
	if path == "" {
		return nil, fmt.Errorf("no reference data configured (use --refdata, MITOSEQ_REFDATA, or set refdata in ~/.mitoseq.yaml)")
	}

	switch filepath.Ext(path) {
	case ".duckdb", ".db":
		store, err := refdata.Open(path)
		if err != nil {
			return nil, err
		}
		defer store.Close()
		return store.Load()
	default:
		bundle, err := refdata.LoadBundle(path)
		if err != nil {
			return nil, err
		}
		return bundle.Provider()
	}
}

// parseVariantArgs parses positional "position:token" arguments;
// semicolon-separated lists are accepted too.
func parseVariantArgs(args []string) (map[mito.Position]string, error) {
	variants := make(map[mito.Position]string)
	for _, arg := range args {
		parsed, err := variantfile.ParseVariants(arg)
		if err != nil {
			return nil, err
		}
		for pos, token := range parsed {
			if _, dup := variants[pos]; dup {
				return nil, fmt.Errorf("duplicate variant position %s", pos)
			}
			variants[pos] = token
		}
	}
	return variants, nil
}
