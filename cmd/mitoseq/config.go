package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// configPath is the file the config subcommands write to: whatever file
// viper loaded, or ~/.mitoseq.yaml when none exists yet.
func configPath() (string, error) {
	if p := viper.ConfigFileUsed(); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".mitoseq.yaml"), nil
}

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or edit mitoseq settings",
		Example: `  mitoseq config
  mitoseq config get refdata
  mitoseq config set refdata ~/rcrs.duckdb`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings := viper.AllSettings()
			if len(settings) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "# no settings; see 'mitoseq config set'")
				return nil
			}
			out, err := yaml.Marshal(settings)
			if err != nil {
				return fmt.Errorf("render settings: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), string(out))
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "get <key>",
		Short: "Print a single setting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			val := viper.Get(args[0])
			if val == nil {
				return fmt.Errorf("%q is not set", args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), val)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "set <key> <value>",
		Short: "Write a setting to the config file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]
			if b, err := strconv.ParseBool(value); err == nil {
				viper.Set(key, b)
			} else {
				viper.Set(key, value)
			}

			path, err := configPath()
			if err != nil {
				return err
			}
			if err := viper.WriteConfigAs(path); err != nil {
				return fmt.Errorf("write %s: %w", path, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s = %s (%s)\n", key, value, path)
			return nil
		},
	})

	return cmd
}
