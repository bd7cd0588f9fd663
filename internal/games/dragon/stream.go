package dragon

import (
	"math/rand"

	"github.com/vovakirdan/flappy-dragon/internal/config"
)

// Stream is the FIFO of gates ahead of the player. Gates are appended at the
// tail and retired from the head; X strictly increases from head to tail.
type Stream struct {
	obstacles []Obstacle
	rng       *rand.Rand
	cfg       config.Config
}

// NewStream creates a stream that draws gap positions from rng.
// The stream does not own rng; the session shares it with the spawner.
func NewStream(rng *rand.Rand, cfg config.Config) *Stream {
	s := &Stream{
		obstacles: make([]Obstacle, 0, 8),
		rng:       rng,
		cfg:       cfg,
	}
	s.Reset()
	return s
}

// Reset clears the stream down to a single fresh gate one screen width
// into the world.
func (s *Stream) Reset() {
	s.obstacles = s.obstacles[:0]
	s.obstacles = append(s.obstacles, NewObstacle(s.cfg.Screen.Width, s.rng, s.cfg))
}

// Spawn appends a gate one screen width ahead of playerX.
// Returns false when that column is not to the right of the tail.
func (s *Stream) Spawn(playerX int) bool {
	return s.Push(NewObstacle(playerX+s.cfg.Screen.Width, s.rng, s.cfg))
}

// Push appends o at the tail. It is rejected when o.X is not strictly
// greater than the current tail, so the ordering invariant always holds.
func (s *Stream) Push(o Obstacle) bool {
	if n := len(s.obstacles); n > 0 && o.X <= s.obstacles[n-1].X {
		return false
	}
	s.obstacles = append(s.obstacles, o)
	return true
}

// Retire removes every gate the player has moved past and returns how many
// were removed. Each retired gate is worth one point.
func (s *Stream) Retire(playerX int) int {
	n := 0
	for n < len(s.obstacles) && s.obstacles[n].X < playerX {
		n++
	}
	if n > 0 {
		s.obstacles = append(s.obstacles[:0], s.obstacles[n:]...)
	}
	return n
}

// Hit reports whether the player collides with any gate.
func (s *Stream) Hit(p *Player) bool {
	for _, o := range s.obstacles {
		if o.Intersects(p) {
			return true
		}
	}
	return false
}

// Obstacles returns the current gates, head first.
func (s *Stream) Obstacles() []Obstacle {
	return s.obstacles
}

// Len returns the number of gates in the stream.
func (s *Stream) Len() int {
	return len(s.obstacles)
}
