package dragon

import (
	"math/rand"

	"github.com/vovakirdan/flappy-dragon/internal/config"
	"github.com/vovakirdan/flappy-dragon/internal/core"
)

// Obstacle is a gate: a column of wall with a passable gap.
type Obstacle struct {
	X    int // World column
	GapY int // Row at the centre of the gap
	Size int // Gap height
}

// NewObstacle creates a gate at world column x with a random gap centre
// drawn from the configured range.
func NewObstacle(x int, rng *rand.Rand, cfg config.Config) Obstacle {
	lo, hi := cfg.GapRange()
	return Obstacle{
		X:    x,
		GapY: lo + rng.Intn(hi-lo),
		Size: cfg.GateSize(),
	}
}

// HalfSize returns half the gap height.
func (o Obstacle) HalfSize() int {
	return o.Size / 2
}

// Intersects reports whether the player is in this gate's column and
// strictly outside the gap [GapY-half, GapY+half].
func (o Obstacle) Intersects(p *Player) bool {
	if p.X != o.X {
		return false
	}
	half := float64(o.HalfSize())
	gap := float64(o.GapY)
	return p.Y < gap-half || p.Y > gap+half
}

// TopWall returns the wall cells above the gap.
func (o Obstacle) TopWall() core.Rect {
	return core.NewRect(o.X, 0, 1, o.GapY-o.HalfSize())
}

// BottomWall returns the wall cells between the gap and the ground row.
// Row GapY+half is wall: every Y inside it except its top edge is a hit.
func (o Obstacle) BottomWall(groundRow int) core.Rect {
	top := o.GapY + o.HalfSize()
	return core.NewRect(o.X, top, 1, groundRow-top)
}
