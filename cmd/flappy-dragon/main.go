// flappy-dragon is a side-scrolling terminal game: keep the dragon in the
// air and fly it through the gaps between walls.
//
// Usage:
//
//	flappy-dragon play              - Play in this terminal
//	flappy-dragon serve             - Start SSH server for remote play
//	flappy-dragon scores            - Show high scores
//	flappy-dragon config dump       - Print the effective configuration
//	flappy-dragon config validate   - Check a configuration file
//
// Global flags:
//
//	--fps <rate>        - Host frame rate (default: 60)
//	--seed <value>      - RNG seed for reproducible gameplay
//	--db <path>         - Database path (default: ~/.flappy-dragon/scores.db)
//	--config <path>     - Game configuration YAML
//	--log-file <path>   - Write logs to a file
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-dragon/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy-dragon",
	Short: "Flappy Dragon - fly a dragon through walls in your terminal",
	Long: `Flappy Dragon is a terminal side-scroller. The dragon falls under
gravity; flap to stay airborne and pass through the gaps in the walls.
Every wall passed scores a point.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  scores   - View high scores
  config   - Inspect and check configuration

Examples:
  flappy-dragon play
  flappy-dragon play --backend tcell --seed 42
  flappy-dragon serve --ssh :2222
  flappy-dragon scores`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Host frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
