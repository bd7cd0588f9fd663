package dragon

import (
	"math/rand"

	"github.com/vovakirdan/flappy-dragon/internal/config"
)

// Spawner decides when a new gate enters the stream.
// A session consults OnTick once per physics tick and OnFrame once per
// playing frame; a policy normally answers only one of them.
type Spawner interface {
	OnTick(tick int, rng *rand.Rand) bool
	OnFrame(accumulatedMs float64, rng *rand.Rand) bool
}

// NewSpawner returns the spawner for the configured policy.
func NewSpawner(cfg config.Spawn) Spawner {
	if cfg.Policy == config.SpawnPerFrame {
		return FrameSpawner{}
	}
	return TickSpawner{Every: cfg.EveryTicks, Chance: cfg.Chance}
}

// TickSpawner rolls a one-in-Chance draw on every Every-th tick, so the
// cadence is independent of the display frame rate.
type TickSpawner struct {
	Every  int
	Chance int
}

// OnTick implements Spawner.
func (t TickSpawner) OnTick(tick int, rng *rand.Rand) bool {
	if t.Every <= 0 || t.Chance <= 0 || tick%t.Every != 0 {
		return false
	}
	return rng.Intn(t.Chance) == 0
}

// OnFrame implements Spawner.
func (TickSpawner) OnFrame(float64, *rand.Rand) bool {
	return false
}

// FrameSpawner reproduces the classic cadence: on frames where the
// truncated frame-time accumulator is a multiple of 50, a draw from [1, 40)
// that is a multiple of 10 spawns a gate. In practice that is the frame a
// tick fired on, with odds of 3 in 39, so it varies with frame rate.
type FrameSpawner struct{}

// OnTick implements Spawner.
func (FrameSpawner) OnTick(int, *rand.Rand) bool {
	return false
}

// OnFrame implements Spawner.
func (FrameSpawner) OnFrame(accumulatedMs float64, rng *rand.Rand) bool {
	if int(accumulatedMs)%50 != 0 {
		return false
	}
	return (rng.Intn(39)+1)%10 == 0
}
