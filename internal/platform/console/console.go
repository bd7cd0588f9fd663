// Package console hosts Flappy Dragon directly on a tcell screen.
// It is the lighter alternative to the Bubble Tea host: one goroutine polls
// terminal events, the main loop runs frames off a ticker and blits the
// session's screen with real background colours.
package console

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/flappy-dragon/internal/config"
	"github.com/vovakirdan/flappy-dragon/internal/core"
	"github.com/vovakirdan/flappy-dragon/internal/games/dragon"
	"github.com/vovakirdan/flappy-dragon/internal/storage"
)

// Host drives one session on a tcell screen.
type Host struct {
	screen   tcell.Screen
	session  *dragon.Session
	buf      *core.Screen
	store    *storage.Store
	logger   *log.Logger
	player   string
	seed     int64
	tickRate int

	pending  core.Action
	lastTick time.Time
	mode     dragon.Mode
}

// New creates a host for an initialised screen. store and logger may be nil.
func New(screen tcell.Screen, cfg config.Config, rt core.RuntimeConfig, store *storage.Store, logger *log.Logger) *Host {
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	if rt.TickRate <= 0 {
		rt.TickRate = 60
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := &Host{
		screen:   screen,
		session:  dragon.New(cfg, rt.Seed),
		buf:      core.NewScreen(cfg.Screen.Width, cfg.Screen.Height),
		store:    store,
		logger:   logger,
		player:   "local",
		seed:     rt.Seed,
		tickRate: rt.TickRate,
		mode:     dragon.ModeMenu,
	}
	h.loadBest()
	return h
}

// SetPlayer sets the name runs are recorded under.
func (h *Host) SetPlayer(name string) {
	h.player = name
}

// Session exposes the hosted session.
func (h *Host) Session() *dragon.Session {
	return h.session
}

func (h *Host) loadBest() {
	if h.store == nil {
		return
	}
	best, err := h.store.HighScore()
	if err != nil {
		h.logger.Warn("could not read high score", "error", err)
		return
	}
	h.session.SetBest(best)
}

// Run loops until the session quits, Ctrl+C is pressed or ctx is done.
func (h *Host) Run(ctx context.Context) error {
	ticker := time.NewTicker(time.Second / time.Duration(h.tickRate))
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	h.Frame(time.Now())
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-events:
			if !h.HandleEvent(ev) {
				return nil
			}

		case now := <-ticker.C:
			if h.Frame(now) {
				return nil
			}
		}
	}
}

// HandleEvent queues input for the next frame. It returns false when the
// program should exit immediately.
func (h *Host) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if action := MapKey(ev, h.session.Mode()); action != core.ActionNone && h.pending == core.ActionNone {
			h.pending = action
		}

	case *tcell.EventResize:
		h.screen.Sync()
	}
	return true
}

// Frame runs one session frame at now and draws it. It reports whether
// the session asked to quit.
func (h *Host) Frame(now time.Time) bool {
	var elapsedMs float64
	if !h.lastTick.IsZero() {
		elapsedMs = float64(now.Sub(h.lastTick)) / float64(time.Millisecond)
	}
	h.lastTick = now

	res := h.session.Frame(elapsedMs, h.pending, h.buf)
	h.pending = core.ActionNone

	if res.Mode != h.mode {
		h.logger.Debug("mode changed", "from", h.mode, "to", res.Mode)
		h.mode = res.Mode
	}
	if res.Died {
		h.recordRun(res.Score)
	}

	h.Blit()
	return res.Quit
}

func (h *Host) recordRun(score int) {
	h.logger.Info("run finished", "player", h.player, "score", score, "ticks", h.session.Ticks())
	if h.store == nil || score == 0 {
		return
	}
	_, err := h.store.SaveRun(storage.Run{
		Player: h.player,
		Score:  score,
		Ticks:  h.session.Ticks(),
		Seed:   h.seed,
	})
	if err != nil {
		h.logger.Warn("could not save run", "error", err)
		return
	}
	h.loadBest()
}

// Blit copies the session's screen to the terminal and shows it.
func (h *Host) Blit() {
	h.screen.Clear()
	for y := 0; y < h.buf.Height(); y++ {
		for x := 0; x < h.buf.Width(); x++ {
			c := h.buf.Cell(x, y)
			h.screen.SetContent(x, y, c.Rune, nil, Style(c))
		}
	}
	h.screen.Show()
}

// Style converts a cell's colours to a tcell style.
func Style(c core.Cell) tcell.Style {
	return tcell.StyleDefault.Foreground(Color(c.Fg)).Background(Color(c.Bg))
}

// Color maps a palette colour to tcell's 256-colour palette.
func Color(c core.Color) tcell.Color {
	code, ok := c.ANSI()
	if !ok {
		return tcell.ColorDefault
	}
	return tcell.PaletteColor(code)
}

// MapKey translates a key event to an action for the given mode.
// Esc pauses while playing and resumes while paused.
func MapKey(ev *tcell.EventKey, mode dragon.Mode) core.Action {
	switch ev.Key() {
	case tcell.KeyEscape:
		if mode == dragon.ModePaused {
			return core.ActionResume
		}
		return core.ActionPause
	case tcell.KeyCtrlC:
		return core.ActionQuit
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ':
			return core.ActionFlap
		case 'p', 'P':
			return core.ActionPlay
		case 'q', 'Q':
			return core.ActionQuit
		}
	}
	return core.ActionNone
}

// Run opens the terminal, plays until quit and restores the terminal.
func Run(ctx context.Context, cfg config.Config, rt core.RuntimeConfig, store *storage.Store, logger *log.Logger) error {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("console: cannot create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("console: cannot init screen: %w", err)
	}
	defer screen.Fini()

	screen.SetStyle(tcell.StyleDefault)
	screen.HideCursor()

	if w, hgt := screen.Size(); w < cfg.Screen.Width || hgt < cfg.Screen.Height {
		logger.Warn("terminal smaller than the playfield", "have", fmt.Sprintf("%dx%d", w, hgt),
			"need", fmt.Sprintf("%dx%d", cfg.Screen.Width, cfg.Screen.Height))
	}

	return New(screen, cfg, rt, store, logger).Run(ctx)
}
