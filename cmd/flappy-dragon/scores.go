package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/flappy-dragon/internal/platform/tui"
	"github.com/vovakirdan/flappy-dragon/internal/storage"
)

var (
	flagLimit int
	flagPlain bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the best runs.

On a terminal this opens an interactive board; when output is piped,
or with --plain, the top runs are printed as text.

Examples:
  flappy-dragon scores
  flappy-dragon scores --plain --limit 5
  flappy-dragon scores --db ./scores.db`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to print in plain mode")
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print text instead of the interactive board")
}

func runScores(cmd *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	fd := int(os.Stdout.Fd())
	if !flagPlain && term.IsTerminal(fd) {
		width, height, sizeErr := term.GetSize(fd)
		if sizeErr != nil {
			width, height = 80, 24
		}
		if err := tui.RunScoreboard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			store.Close()
			os.Exit(1)
		}
		return
	}

	if err := printScores(cmd.OutOrStdout(), store, flagLimit); err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		store.Close()
		os.Exit(1)
	}
}

// printScores writes the top runs as a plain table.
func printScores(w io.Writer, store *storage.Store, limit int) error {
	runs, err := store.TopRuns(limit)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "High Scores - Flappy Dragon")
	fmt.Fprintln(w)

	if len(runs) == 0 {
		fmt.Fprintln(w, "No scores recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 'flappy-dragon play' to set the first high score!")
		return nil
	}

	fmt.Fprintf(w, "  %-4s  %-12s  %-6s  %-6s  %s\n", "Rank", "Player", "Score", "Ticks", "Date")
	fmt.Fprintf(w, "  %-4s  %-12s  %-6s  %-6s  %s\n", "----", "------", "-----", "-----", "----")

	for i, r := range runs {
		player := r.Player
		if player == "" {
			player = "-"
		}
		fmt.Fprintf(w, "  %-4d  %-12s  %-6d  %-6d  %s\n",
			i+1, player, r.Score, r.Ticks, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats()
	if err != nil {
		return err
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Best: %d  Runs: %d  Average: %.1f\n", stats.HighScore, stats.Runs, stats.AvgScore)
	return nil
}
