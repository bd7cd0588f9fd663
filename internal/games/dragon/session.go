// Package dragon implements Flappy Dragon.
// The player keeps a falling dragon airborne and threads it through gaps in
// a stream of gates. A Session owns all state and is driven by its host
// once per rendered frame.
package dragon

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/flappy-dragon/internal/config"
	"github.com/vovakirdan/flappy-dragon/internal/core"
)

// Mode is the screen the session is on.
type Mode int

const (
	ModeMenu Mode = iota
	ModePlaying
	ModePaused
	ModeDead
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "Menu"
	case ModePlaying:
		return "Playing"
	case ModePaused:
		return "Paused"
	case ModeDead:
		return "Dead"
	default:
		return "Unknown"
	}
}

// FrameResult is returned by Session.Frame after each frame.
type FrameResult struct {
	Mode   Mode
	Score  int
	Ticked bool // A physics tick ran this frame
	Died   bool // The session entered ModeDead this frame
	Quit   bool // The host should exit
}

// Session is one run of the game: player, gate stream, mode, score and the
// frame-time accumulator. It is not safe for concurrent use; hosts drive it
// from a single goroutine.
type Session struct {
	cfg     config.Config
	rng     *rand.Rand
	player  *Player
	stream  *Stream
	spawner Spawner
	clock   *core.Timestep

	mode     Mode
	score    int
	best     int
	ticks    int
	quitting bool
}

// Option customises a Session.
type Option func(*Session)

// WithRand makes the session draw from rng instead of creating its own.
func WithRand(rng *rand.Rand) Option {
	return func(s *Session) {
		s.rng = rng
	}
}

// WithSpawner overrides the spawner built from the configuration.
func WithSpawner(sp Spawner) Option {
	return func(s *Session) {
		s.spawner = sp
	}
}

// New creates a session on the menu screen. cfg must already be validated.
// A zero seed uses the current time.
func New(cfg config.Config, seed int64, opts ...Option) *Session {
	s := &Session{
		cfg:     cfg,
		spawner: NewSpawner(cfg.Spawn),
		clock:   core.NewTimestep(cfg.Timing.FrameMs),
		mode:    ModeMenu,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		s.rng = rand.New(rand.NewSource(seed))
	}

	s.player = s.newPlayer()
	s.stream = NewStream(s.rng, cfg)
	return s
}

func (s *Session) newPlayer() *Player {
	return NewPlayer(s.cfg.Player.StartX, s.cfg.Player.StartY, s.cfg.Physics)
}

// Frame runs one host frame: exactly one mode handler, selected by the
// current mode, consumes the frame's input and draws into dst.
func (s *Session) Frame(elapsedMs float64, in core.Action, dst core.Canvas) FrameResult {
	var res FrameResult

	switch s.mode {
	case ModeMenu:
		s.mainMenu(in, dst)
	case ModePlaying:
		res.Ticked = s.play(elapsedMs, in, dst)
		res.Died = s.mode == ModeDead
	case ModePaused:
		s.pauseMenu(in, dst)
	case ModeDead:
		s.dead(in, dst)
	}

	res.Mode = s.mode
	res.Score = s.score
	res.Quit = s.quitting
	return res
}

// play is the Playing handler. It reports whether a physics tick ran.
func (s *Session) play(elapsedMs float64, in core.Action, dst core.Canvas) bool {
	dst.ClsBg(core.ColorNavy)

	ticked := s.clock.Advance(elapsedMs)
	if ticked {
		s.tick()
	}

	switch in {
	case core.ActionFlap:
		s.player.Flap()
	case core.ActionPause:
		s.mode = ModePaused
	}

	if s.spawner.OnFrame(s.clock.Elapsed(), s.rng) {
		s.stream.Spawn(s.player.X)
	}

	s.drawWorld(dst)

	s.score += s.stream.Retire(s.player.X)

	if s.player.Fallen(s.cfg.Screen.Height) || s.stream.Hit(s.player) {
		s.mode = ModeDead
	}
	return ticked
}

// tick runs one fixed physics step.
func (s *Session) tick() {
	s.player.Advance()
	s.ticks++
	if s.spawner.OnTick(s.ticks, s.rng) {
		s.stream.Spawn(s.player.X)
	}
}

func (s *Session) mainMenu(in core.Action, dst core.Canvas) {
	drawMainMenu(dst)

	switch in {
	case core.ActionPlay:
		s.Restart()
	case core.ActionQuit:
		s.quitting = true
	}
}

func (s *Session) pauseMenu(in core.Action, dst core.Canvas) {
	drawPauseMenu(dst)

	switch in {
	case core.ActionResume:
		s.mode = ModePlaying
	case core.ActionQuit:
		s.quitting = true
	}
}

func (s *Session) dead(in core.Action, dst core.Canvas) {
	drawDead(dst, s.score, s.best)

	switch in {
	case core.ActionPlay:
		s.Restart()
	case core.ActionQuit:
		s.quitting = true
	}
}

// Restart starts a fresh run from any mode: new player, a stream holding a
// single new gate, zero score, and an empty accumulator.
func (s *Session) Restart() {
	s.player = s.newPlayer()
	s.clock.Reset()
	s.stream.Reset()
	s.mode = ModePlaying
	s.score = 0
	s.ticks = 0
}

// SetBest records the best score known to the host, shown on the death screen.
func (s *Session) SetBest(best int) {
	s.best = best
}

// Mode returns the current mode.
func (s *Session) Mode() Mode {
	return s.mode
}

// Score returns the score of the current run.
func (s *Session) Score() int {
	return s.score
}

// Ticks returns the number of physics ticks in the current run.
func (s *Session) Ticks() int {
	return s.ticks
}

// Player returns a copy of the player.
func (s *Session) Player() Player {
	return *s.player
}

// Obstacles returns the gates in the stream, head first.
func (s *Session) Obstacles() []Obstacle {
	return s.stream.Obstacles()
}

// Quitting reports whether the session asked the host to exit.
func (s *Session) Quitting() bool {
	return s.quitting
}
