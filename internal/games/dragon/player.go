package dragon

import (
	"github.com/vovakirdan/flappy-dragon/internal/config"
)

// dragonFrames is the wing-beat animation cycle, one glyph per tick.
var dragonFrames = [...]rune{'@', '^', '-', 'v', '-', '^'}

// AnimationFrames is the length of the animation cycle.
const AnimationFrames = len(dragonFrames)

// Player is the dragon. Y grows downward; row 0 is the top of the screen.
type Player struct {
	X        int     // World column, +1 per tick
	Y        float64 // Never negative
	Velocity float64 // Positive = falling
	Frame    int     // Index into the animation cycle

	physics config.Physics
}

// NewPlayer creates a player at (x, y) with zero velocity.
func NewPlayer(x, y int, physics config.Physics) *Player {
	return &Player{
		X:       x,
		Y:       float64(y),
		physics: physics,
	}
}

// Advance applies one physics tick: gravity up to the fall-speed cap,
// vertical motion clamped at the top edge, one column of forward motion,
// and one animation step.
func (p *Player) Advance() {
	if p.Velocity < p.physics.MaxFallSpeed {
		p.Velocity += p.physics.Gravity
	}
	p.Y += p.Velocity
	if p.Y < 0 {
		p.Y = 0
	}

	p.X++
	p.Frame = (p.Frame + 1) % AnimationFrames
}

// Flap replaces the current velocity with the upward impulse.
func (p *Player) Flap() {
	p.Velocity = p.physics.FlapImpulse
}

// Glyph returns the current animation glyph.
func (p *Player) Glyph() rune {
	return dragonFrames[p.Frame]
}

// Fallen reports whether the player dropped past the bottom boundary.
func (p *Player) Fallen(boundary int) bool {
	return int(p.Y) > boundary
}
