package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/flappy-dragon/internal/config"
	"github.com/vovakirdan/flappy-dragon/internal/core"
	"github.com/vovakirdan/flappy-dragon/internal/platform/console"
	"github.com/vovakirdan/flappy-dragon/internal/platform/tui"
	"github.com/vovakirdan/flappy-dragon/internal/storage"
)

var flagBackend string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Flappy Dragon",
	Long: `Start the game in this terminal.

Controls:
  P          - Play (from the menu or after dying)
  Space      - Flap
  Esc        - Pause / continue
  Q          - Quit (menu, pause and death screens)
  Ctrl+C     - Quit immediately
  Ctrl+S     - Save a text screenshot (bubbletea backend)

Backends:
  bubbletea  - Bubble Tea renderer (default)
  tcell      - Direct tcell renderer

Examples:
  flappy-dragon play
  flappy-dragon play --seed 42
  flappy-dragon play --backend tcell
  flappy-dragon play --config ./my-dragon.yaml --log-file dragon.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagBackend, "backend", "bubbletea", "Renderer: bubbletea or tcell")
}

func runPlay(cmd *cobra.Command, _ []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// The game owns the terminal, so logs only go to --log-file.
	logger, closeLog, err := newLogger("dragon", io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog.Close()

	width, height := cfg.Screen.Width, cfg.Screen.Height
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
		if w < cfg.Screen.Width || h < cfg.Screen.Height {
			fmt.Fprintf(os.Stderr, "Warning: terminal is %dx%d, the game needs %dx%d\n",
				w, h, cfg.Screen.Width, cfg.Screen.Height)
		}
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("playing without score storage", "error", err)
		// Continue without storage - game still works
		store = nil
	}

	logger.Debug("starting game", "backend", flagBackend, "seed", rt.Seed, "fps", rt.TickRate)

	var runErr error
	switch flagBackend {
	case "bubbletea", "tui":
		runErr = tui.Run(cfg, rt, store, logger)
	case "tcell":
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		runErr = console.Run(ctx, cfg, rt, store, logger)
		stop()
	default:
		runErr = fmt.Errorf("unknown backend %q (want bubbletea or tcell)", flagBackend)
	}

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		closeLog.Close()
		os.Exit(1)
	}
}

