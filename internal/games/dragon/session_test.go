package dragon

import (
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/vovakirdan/flappy-dragon/internal/config"
	"github.com/vovakirdan/flappy-dragon/internal/core"
)

// tickMs is comfortably above the default 40ms step, so every frame ticks.
const tickMs = 41

type noSpawn struct{}

func (noSpawn) OnTick(int, *rand.Rand) bool { return false }
func (noSpawn) OnFrame(float64, *rand.Rand) bool { return false }

type everyFrame struct{}

func (everyFrame) OnTick(int, *rand.Rand) bool { return false }
func (everyFrame) OnFrame(float64, *rand.Rand) bool { return true }

func newTestSession(t *testing.T, opts ...Option) (*Session, *core.Screen) {
	t.Helper()
	cfg := config.Default()
	opts = append([]Option{WithSpawner(noSpawn{})}, opts...)
	s := New(cfg, 1, opts...)
	return s, core.NewScreen(cfg.Screen.Width, cfg.Screen.Height)
}

func startPlaying(t *testing.T, s *Session, dst core.Canvas) {
	t.Helper()
	res := s.Frame(0, core.ActionPlay, dst)
	if res.Mode != ModePlaying {
		t.Fatalf("Play from %v should start playing, got %v", ModeMenu, res.Mode)
	}
}

func rowText(s *core.Screen, y int) string {
	var sb strings.Builder
	for x := 0; x < s.Width(); x++ {
		sb.WriteRune(s.Cell(x, y).Rune)
	}
	return sb.String()
}

func TestSessionStartsInMenu(t *testing.T) {
	s, _ := newTestSession(t)

	if s.Mode() != ModeMenu {
		t.Errorf("initial mode = %v, expected Menu", s.Mode())
	}
	if s.Score() != 0 {
		t.Errorf("initial score = %d, expected 0", s.Score())
	}
	if len(s.Obstacles()) != 1 {
		t.Errorf("expected one gate, got %d", len(s.Obstacles()))
	}
}

func TestSessionPlayScenario(t *testing.T) {
	s, screen := newTestSession(t)
	startPlaying(t, s, screen)

	if s.Score() != 0 {
		t.Errorf("score = %d, expected 0", s.Score())
	}
	obs := s.Obstacles()
	if len(obs) != 1 || obs[0].X != 80 {
		t.Fatalf("expected a single gate at X=80, got %+v", obs)
	}

	for i := 0; i < 10; i++ {
		res := s.Frame(tickMs, core.ActionNone, screen)
		if !res.Ticked {
			t.Fatalf("frame %d should tick", i)
		}
	}

	wantY, wantV := 25.0, 0.0
	for i := 0; i < 10; i++ {
		wantV += 0.1
		wantY += wantV
	}
	p := s.Player()
	if p.Y != wantY {
		t.Errorf("after 10 ticks Y = %f, expected %f", p.Y, wantY)
	}
	if s.Ticks() != 10 || p.X != 15 {
		t.Errorf("ticks = %d, X = %d; expected 10 and 15", s.Ticks(), p.X)
	}

	before := p.Y
	res := s.Frame(0, core.ActionFlap, screen)
	if res.Ticked {
		t.Fatal("a zero-length frame should not tick")
	}
	if got := s.Player().Velocity; got != -1.0 {
		t.Errorf("flap should set velocity to -1.0 immediately, got %f", got)
	}

	s.Frame(tickMs, core.ActionNone, screen)
	p = s.Player()
	if math.Abs(p.Velocity-(-0.9)) > 1e-9 {
		t.Errorf("velocity after flap and tick = %f, expected -0.9", p.Velocity)
	}
	if math.Abs((before-p.Y)-0.9) > 1e-9 {
		t.Errorf("Y should drop by 0.9 from %f, got %f", before, p.Y)
	}
}

func TestSessionTicksOnlyPastThreshold(t *testing.T) {
	s, screen := newTestSession(t)
	startPlaying(t, s, screen)

	for i := 0; i < 2; i++ {
		if s.Frame(16, core.ActionNone, screen).Ticked {
			t.Fatalf("frame %d should not tick yet", i)
		}
	}
	if !s.Frame(16, core.ActionNone, screen).Ticked {
		t.Error("48ms accumulated should tick")
	}
	if s.Player().X != 6 {
		t.Errorf("one tick should move X to 6, got %d", s.Player().X)
	}
}

func TestSessionIgnoresUnrecognisedInput(t *testing.T) {
	tests := []struct {
		name   string
		setup  func(*Session)
		mode   Mode
		inputs []core.Action
	}{
		{
			name:   "menu",
			setup:  func(*Session) {},
			mode:   ModeMenu,
			inputs: []core.Action{core.ActionNone, core.ActionFlap, core.ActionPause, core.ActionResume},
		},
		{
			name:   "paused",
			setup:  func(s *Session) { s.Restart(); s.mode = ModePaused },
			mode:   ModePaused,
			inputs: []core.Action{core.ActionNone, core.ActionFlap, core.ActionPause, core.ActionPlay},
		},
		{
			name:   "dead",
			setup:  func(s *Session) { s.Restart(); s.mode = ModeDead },
			mode:   ModeDead,
			inputs: []core.Action{core.ActionNone, core.ActionFlap, core.ActionPause, core.ActionResume},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, screen := newTestSession(t)
			tc.setup(s)

			for _, in := range tc.inputs {
				res := s.Frame(tickMs, in, screen)
				if res.Mode != tc.mode || res.Quit {
					t.Errorf("%v in %v changed state to %v (quit=%v)", in, tc.mode, res.Mode, res.Quit)
				}
			}
		})
	}
}

func TestSessionQuit(t *testing.T) {
	for _, mode := range []Mode{ModeMenu, ModePaused, ModeDead} {
		s, screen := newTestSession(t)
		if mode != ModeMenu {
			s.Restart()
			s.mode = mode
		}

		res := s.Frame(0, core.ActionQuit, screen)
		if !res.Quit || !s.Quitting() {
			t.Errorf("Quit in %v should signal the host", mode)
		}
	}

	s, screen := newTestSession(t)
	startPlaying(t, s, screen)
	if s.Frame(0, core.ActionQuit, screen).Quit {
		t.Error("Quit is not bound while playing")
	}
}

func TestSessionPauseResume(t *testing.T) {
	s, screen := newTestSession(t)
	startPlaying(t, s, screen)

	for i := 0; i < 5; i++ {
		s.Frame(tickMs, core.ActionNone, screen)
	}
	s.score = 3

	if res := s.Frame(0, core.ActionPause, screen); res.Mode != ModePaused {
		t.Fatalf("Pause should enter Paused, got %v", res.Mode)
	}
	frozen := s.Player()

	for i := 0; i < 20; i++ {
		s.Frame(tickMs, core.ActionNone, screen)
	}
	if s.Player() != frozen {
		t.Errorf("player changed while paused: %+v -> %+v", frozen, s.Player())
	}
	if !strings.Contains(rowText(screen, 5), "Pause!") {
		t.Errorf("pause screen not drawn, row 5 = %q", rowText(screen, 5))
	}

	if res := s.Frame(0, core.ActionResume, screen); res.Mode != ModePlaying {
		t.Fatalf("Resume should return to Playing, got %v", res.Mode)
	}
	if s.Score() != 3 {
		t.Errorf("resume must keep the score, got %d", s.Score())
	}
	if s.Player().X != frozen.X {
		t.Errorf("resume must keep the player, X %d -> %d", frozen.X, s.Player().X)
	}
}

func TestSessionFallDeathOverridesInput(t *testing.T) {
	for _, in := range []core.Action{core.ActionNone, core.ActionFlap, core.ActionPause} {
		s, screen := newTestSession(t)
		startPlaying(t, s, screen)
		s.player.Y = 60
		s.player.Velocity = 2

		res := s.Frame(tickMs, in, screen)
		if res.Mode != ModeDead || !res.Died {
			t.Errorf("falling past the bottom with %v should kill, got %v", in, res.Mode)
		}
	}
}

func TestSessionCollisionDeath(t *testing.T) {
	s, screen := newTestSession(t)
	startPlaying(t, s, screen)

	// Gap spans [27, 67], so the player at Y~25 hits the upper wall.
	s.stream.obstacles = []Obstacle{{X: 6, GapY: 47, Size: 40}}

	res := s.Frame(tickMs, core.ActionNone, screen)
	if res.Mode != ModeDead {
		t.Errorf("hitting a wall should kill, mode = %v", res.Mode)
	}
}

func TestSessionRetireScores(t *testing.T) {
	s, screen := newTestSession(t)
	startPlaying(t, s, screen)
	s.stream.obstacles = []Obstacle{{X: 6, GapY: 25, Size: 40}, {X: 80, GapY: 25, Size: 40}}

	s.Frame(tickMs, core.ActionNone, screen) // X=6, inside the gap
	if s.Score() != 0 || len(s.Obstacles()) != 2 {
		t.Fatalf("gate at the player's column is not passed yet: score=%d gates=%d", s.Score(), len(s.Obstacles()))
	}

	s.Frame(tickMs, core.ActionNone, screen) // X=7, passed
	if s.Score() != 1 {
		t.Errorf("passing a gate should score 1, got %d", s.Score())
	}
	if obs := s.Obstacles(); len(obs) != 1 || obs[0].X != 80 {
		t.Errorf("passed gate should leave the head, got %+v", obs)
	}

	s.Frame(tickMs, core.ActionNone, screen)
	if s.Score() != 1 {
		t.Errorf("a gate must score only once, got %d", s.Score())
	}
}

func TestSessionRestartFromAnyMode(t *testing.T) {
	for _, mode := range []Mode{ModePlaying, ModePaused, ModeDead} {
		t.Run(mode.String(), func(t *testing.T) {
			s, screen := newTestSession(t, WithSpawner(TickSpawner{Every: 1, Chance: 1}))
			startPlaying(t, s, screen)
			for i := 0; i < 5; i++ {
				s.Frame(tickMs, core.ActionFlap, screen)
			}
			s.score = 7
			s.mode = mode

			s.Restart()

			if s.Mode() != ModePlaying || s.Score() != 0 || s.Ticks() != 0 {
				t.Errorf("after restart mode=%v score=%d ticks=%d", s.Mode(), s.Score(), s.Ticks())
			}
			if obs := s.Obstacles(); len(obs) != 1 || obs[0].X != 80 {
				t.Errorf("stream should hold one fresh gate at 80, got %+v", obs)
			}
			p := s.Player()
			if p.X != 5 || p.Y != 25 || p.Velocity != 0 || p.Frame != 0 {
				t.Errorf("player not reset: %+v", p)
			}
			if s.clock.Elapsed() != 0 {
				t.Errorf("accumulator not reset: %v", s.clock.Elapsed())
			}
		})
	}
}

func TestSessionDeadPlayRestarts(t *testing.T) {
	s, screen := newTestSession(t)
	startPlaying(t, s, screen)
	s.player.Y = 60
	s.Frame(tickMs, core.ActionNone, screen)
	if s.Mode() != ModeDead {
		t.Fatalf("expected Dead, got %v", s.Mode())
	}

	res := s.Frame(0, core.ActionPlay, screen)
	if res.Mode != ModePlaying || s.Player().Y != 25 {
		t.Errorf("Play on the death screen should restart, mode=%v Y=%f", res.Mode, s.Player().Y)
	}
}

func TestSessionTickSpawning(t *testing.T) {
	s, screen := newTestSession(t, WithSpawner(TickSpawner{Every: 1, Chance: 1}))
	startPlaying(t, s, screen)

	for i := 0; i < 3; i++ {
		s.Frame(tickMs, core.ActionFlap, screen)
	}

	obs := s.Obstacles()
	want := []int{80, 86, 87, 88}
	if len(obs) != len(want) {
		t.Fatalf("expected %d gates, got %d", len(want), len(obs))
	}
	for i, x := range want {
		if obs[i].X != x {
			t.Errorf("gate %d at X=%d, expected %d", i, obs[i].X, x)
		}
	}
}

func TestSessionFrameSpawningKeepsOrder(t *testing.T) {
	s, screen := newTestSession(t, WithSpawner(everyFrame{}))
	startPlaying(t, s, screen)

	// Several frames without a tick all target the same column.
	for i := 0; i < 5; i++ {
		s.Frame(0, core.ActionNone, screen)
	}
	if n := len(s.Obstacles()); n != 2 {
		t.Errorf("only one gate may occupy a column, got %d gates", n)
	}
}

func TestSessionDeterminism(t *testing.T) {
	cfg := config.Default()

	run := func() (int, []Obstacle, Mode) {
		s := New(cfg, 12345)
		screen := core.NewScreen(cfg.Screen.Width, cfg.Screen.Height)
		s.Frame(0, core.ActionPlay, screen)
		for i := 0; i < 400 && s.Mode() == ModePlaying; i++ {
			in := core.ActionNone
			if i%12 == 0 {
				in = core.ActionFlap
			}
			s.Frame(tickMs, in, screen)
		}
		return s.Score(), append([]Obstacle(nil), s.Obstacles()...), s.Mode()
	}

	score1, obs1, mode1 := run()
	score2, obs2, mode2 := run()

	if score1 != score2 || mode1 != mode2 {
		t.Errorf("runs differ: score %d/%d mode %v/%v", score1, score2, mode1, mode2)
	}
	if len(obs1) != len(obs2) {
		t.Fatalf("gate counts differ: %d vs %d", len(obs1), len(obs2))
	}
	for i := range obs1 {
		if obs1[i] != obs2[i] {
			t.Errorf("gate %d differs: %+v vs %+v", i, obs1[i], obs2[i])
		}
	}
}

func TestSessionWithRandShared(t *testing.T) {
	cfg := config.Default()
	rng := rand.New(rand.NewSource(9))
	s := New(cfg, 0, WithRand(rng))

	want := NewObstacle(cfg.Screen.Width, rand.New(rand.NewSource(9)), cfg)
	if got := s.Obstacles()[0]; got != want {
		t.Errorf("first gate should come from the injected source: got %+v, expected %+v", got, want)
	}
}

func TestSessionRenderPlaying(t *testing.T) {
	s, screen := newTestSession(t)
	startPlaying(t, s, screen)
	s.Frame(tickMs, core.ActionNone, screen)

	ground := screen.Height() - 1
	if c := screen.Cell(10, ground); c.Rune != GroundChar || c.Bg != core.ColorWhite {
		t.Errorf("ground should be drawn at row %d, got %+v", ground, c)
	}
	if c := screen.Cell(40, 20); c.Bg != core.ColorNavy {
		t.Errorf("playfield background should be navy, got %+v", c)
	}
	if !strings.HasPrefix(rowText(screen, 2), "Score 0") {
		t.Errorf("HUD score line = %q", rowText(screen, 2))
	}

	p := s.Player()
	if got := screen.Cell(0, int(p.Y)).Rune; got != p.Glyph() {
		t.Errorf("dragon glyph at (0, %d) = %q, expected %q", int(p.Y), got, p.Glyph())
	}

	gate := s.Obstacles()[0]
	screenX := gate.X - p.X
	top := gate.GapY - gate.HalfSize()
	bottom := gate.GapY + gate.HalfSize()
	rows := []struct {
		y    int
		wall bool
	}{
		{top - 1, true},
		{top, false},
		{gate.GapY, false},
		{bottom - 1, false},
		{bottom, true},
	}
	for _, r := range rows {
		if r.y < 3 || r.y >= ground {
			continue
		}
		if got := screen.Cell(screenX, r.y).Rune == WallChar; got != r.wall {
			t.Errorf("row %d of gate %+v: wall drawn = %v, expected %v", r.y, gate, got, r.wall)
		}
	}
}

func TestSessionRenderScreens(t *testing.T) {
	s, screen := newTestSession(t)

	s.Frame(0, core.ActionNone, screen)
	if !strings.Contains(rowText(screen, 5), "Welcome to Flappy Dragon") {
		t.Errorf("menu title missing, row 5 = %q", rowText(screen, 5))
	}
	if !strings.Contains(rowText(screen, 8), "(P) Play Game") || !strings.Contains(rowText(screen, 9), "(Q) Quit Game") {
		t.Error("menu options missing")
	}

	s.Restart()
	s.score = 4
	s.mode = ModeDead
	s.SetBest(10)
	s.Frame(0, core.ActionNone, screen)
	if !strings.Contains(rowText(screen, 5), "You are dead!") {
		t.Errorf("death title missing, row 5 = %q", rowText(screen, 5))
	}
	if !strings.Contains(rowText(screen, 6), "You earned 4 points") {
		t.Errorf("score line missing, row 6 = %q", rowText(screen, 6))
	}
	if !strings.Contains(rowText(screen, 7), "Best: 10") {
		t.Errorf("best line missing, row 7 = %q", rowText(screen, 7))
	}
}
