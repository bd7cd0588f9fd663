// Package config provides YAML-based game configuration loading and
// validation.
package config

// SpawnPolicy selects how gate spawning is timed.
type SpawnPolicy string

const (
	// SpawnPerTick rolls for a spawn on physics ticks, independent of frame rate.
	SpawnPerTick SpawnPolicy = "tick"
	// SpawnPerFrame rolls on every rendered frame against the frame-time
	// accumulator, matching the classic cadence.
	SpawnPerFrame SpawnPolicy = "frame"
)

// Config contains all configuration for Flappy Dragon.
type Config struct {
	Screen    Screen    `yaml:"screen"`
	Timing    Timing    `yaml:"timing"`
	Physics   Physics   `yaml:"physics"`
	Player    Player    `yaml:"player"`
	Obstacles Obstacles `yaml:"obstacles"`
	Spawn     Spawn     `yaml:"spawn"`
}

// Screen defines the size of the visible world in cells.
type Screen struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Timing defines the fixed physics step.
type Timing struct {
	FrameMs float64 `yaml:"frame_ms"` // Accumulated frame time that triggers a tick
}

// Physics defines the dragon's vertical motion.
type Physics struct {
	Gravity      float64 `yaml:"gravity"`        // Velocity added per tick
	MaxFallSpeed float64 `yaml:"max_fall_speed"` // Gravity stops applying at this velocity
	FlapImpulse  float64 `yaml:"flap_impulse"`   // Velocity set on flap (negative = up)
}

// Player defines where the dragon starts.
type Player struct {
	StartX int `yaml:"start_x"`
	StartY int `yaml:"start_y"`
}

// Obstacles defines gate geometry.
type Obstacles struct {
	GateSize    int `yaml:"gate_size"`     // Gap height
	MinGateSize int `yaml:"min_gate_size"` // Lower bound applied to gate_size
	Margin      int `yaml:"margin"`        // Minimum distance of gap centre from top and ground
}

// Spawn defines gate spawn cadence.
type Spawn struct {
	Policy     SpawnPolicy `yaml:"policy"`
	EveryTicks int         `yaml:"every_ticks"` // Roll only on every Nth tick (tick policy)
	Chance     int         `yaml:"chance"`      // One-in-N roll (tick policy)
}

// GroundRow returns the row occupied by the ground.
func (c Config) GroundRow() int {
	return c.Screen.Height - 1
}

// GateSize returns the effective gate size.
func (c Config) GateSize() int {
	return max(c.Obstacles.MinGateSize, c.Obstacles.GateSize)
}

// HalfGate returns half the effective gate size.
func (c Config) HalfGate() int {
	return c.GateSize() / 2
}

// GapRange returns the half-open range [lo, hi) gap centres are drawn from.
// The margin is never smaller than half a gate, so the whole gap stays
// between the top edge and the ground.
func (c Config) GapRange() (lo, hi int) {
	margin := max(c.Obstacles.Margin, c.HalfGate())
	return margin, c.GroundRow() - margin
}
