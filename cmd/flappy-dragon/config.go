package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-dragon/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect game configuration",
	Long: `Inspect the game configuration.

Configuration is looked up in this order:
  1. --config <path>
  2. ~/.flappy-dragon/config.yaml
  3. ./configs/dragon.yaml
  4. built-in defaults

Fields missing from a file keep their default values.`,
}

var configDumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the effective configuration as YAML",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load(flagConfig)
		if err != nil {
			return err
		}
		return dumpConfig(cmd.OutOrStdout(), cfg)
	},
}

var configValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check a configuration file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return validateConfigFile(cmd.OutOrStdout(), args[0])
	},
}

func init() {
	configCmd.AddCommand(configDumpCmd)
	configCmd.AddCommand(configValidateCmd)
}

func dumpConfig(w io.Writer, cfg config.Config) error {
	data, err := config.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("cannot encode config: %w", err)
	}
	_, err = w.Write(data)
	return err
}

func validateConfigFile(w io.Writer, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("cannot read %s: %w", path, err)
	}
	if _, err := config.Parse(data); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	fmt.Fprintf(w, "%s: ok\n", path)
	return nil
}
