package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy-dragon/internal/config"
	"github.com/vovakirdan/flappy-dragon/internal/core"
	"github.com/vovakirdan/flappy-dragon/internal/games/dragon"
	"github.com/vovakirdan/flappy-dragon/internal/storage"
)

// Model is the Bubble Tea model hosting one game session.
type Model struct {
	session *dragon.Session
	screen  *core.Screen
	store   *storage.Store
	logger  *log.Logger
	painter *Painter
	keys    *KeyMapper
	config  core.RuntimeConfig
	player  string

	pending  core.Action // At most one action is handed to each frame
	lastTick time.Time
	mode     dragon.Mode
	quitting bool
}

// NewModel creates a model for a fresh session on the menu screen.
// store and logger may be nil.
func NewModel(cfg config.Config, rt core.RuntimeConfig, store *storage.Store, logger *log.Logger) Model {
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		session: dragon.New(cfg, rt.Seed),
		screen:  core.NewScreen(cfg.Screen.Width, cfg.Screen.Height),
		store:   store,
		logger:  logger,
		painter: NewPainter(nil),
		keys:    NewKeyMapper(),
		config:  rt,
		player:  currentUser(),
		mode:    dragon.ModeMenu,
	}
	m.loadBest()

	// Draw the menu before the first tick arrives.
	m.session.Frame(0, core.ActionNone, m.screen)
	return m
}

func currentUser() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "local"
}

func (m Model) loadBest() {
	if m.store == nil {
		return
	}
	best, err := m.store.HighScore()
	if err != nil {
		m.logger.Warn("could not read high score", "error", err)
		return
	}
	m.session.SetBest(best)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey queues the key's action for the next frame.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keys.IsHardQuit(msg) {
		m.quitting = true
		return m, tea.Quit
	}
	if m.keys.IsScreenshot(msg) {
		m.saveScreenshot()
		return m, nil
	}

	if action := m.keys.MapKey(msg, m.session.Mode()); action != core.ActionNone && m.pending == core.ActionNone {
		m.pending = action
	}
	return m, nil
}

// handleTick runs one session frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	var elapsedMs float64
	if !m.lastTick.IsZero() {
		elapsedMs = float64(now.Sub(m.lastTick)) / float64(time.Millisecond)
	}
	m.lastTick = now

	res := m.session.Frame(elapsedMs, m.pending, m.screen)
	m.pending = core.ActionNone

	if res.Mode != m.mode {
		m.logger.Debug("mode changed", "from", m.mode, "to", res.Mode)
		m.mode = res.Mode
	}
	if res.Died {
		m.recordRun(res.Score)
	}
	if res.Quit {
		m.quitting = true
		return m, tea.Quit
	}

	return m, tickCmd(m.config.TickRate)
}

// recordRun saves a finished run and refreshes the best score.
func (m Model) recordRun(score int) {
	m.logger.Info("run finished", "player", m.player, "score", score, "ticks", m.session.Ticks())
	if m.store == nil || score == 0 {
		return
	}

	_, err := m.store.SaveRun(storage.Run{
		Player: m.player,
		Score:  score,
		Ticks:  m.session.Ticks(),
		Seed:   m.config.Seed,
	})
	if err != nil {
		m.logger.Warn("could not save run", "error", err)
		return
	}
	m.loadBest()
}

// screenshotDir returns ~/.flappy-dragon/screenshots.
func screenshotDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".flappy-dragon", "screenshots"), nil
}

// saveScreenshot writes the current screen as plain text.
func (m Model) saveScreenshot() {
	dir, err := screenshotDir()
	if err != nil {
		m.logger.Warn("could not locate home directory for screenshot", "error", err)
		return
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("dragon_%s.txt", timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.tooSmall() {
		return fmt.Sprintf("Terminal too small: need %dx%d, have %dx%d.\nResize or press q to quit.",
			m.screen.Width(), m.screen.Height(), m.config.ScreenW, m.config.ScreenH)
	}

	return m.painter.Render(m.screen)
}

// tooSmall reports whether the known terminal size cannot fit the screen.
func (m Model) tooSmall() bool {
	if m.config.ScreenW <= 0 || m.config.ScreenH <= 0 {
		return false
	}
	return m.config.ScreenW < m.screen.Width() || m.config.ScreenH < m.screen.Height()
}

// Session exposes the hosted session.
func (m Model) Session() *dragon.Session {
	return m.session
}

// Run starts the Bubble Tea program with a new model.
func Run(cfg config.Config, rt core.RuntimeConfig, store *storage.Store, logger *log.Logger) error {
	model := NewModel(cfg, rt, store, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
