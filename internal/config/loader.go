package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// Load loads Flappy Dragon configuration.
// Search order: customPath -> ~/.flappy-dragon/config.yaml -> ./configs/dragon.yaml -> embedded default.
// Fields missing from a file keep their default values. The result is validated.
func Load(customPath string) (Config, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return Config{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			return parseFound(userCfgPath, data)
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "dragon.yaml")); err == nil {
		return parseFound("configs/dragon.yaml", data)
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultDragonYAML)
	if err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func parseFound(path string, data []byte) (Config, error) {
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes a YAML document over the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func Marshal(cfg Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// Validate reports configuration that would make the game unplayable or
// break its invariants. It is meant to run once at startup.
func (c Config) Validate() error {
	switch {
	case c.Screen.Width <= 0:
		return invalid("screen.width must be positive, got %d", c.Screen.Width)
	case c.Screen.Height <= 0:
		return invalid("screen.height must be positive, got %d", c.Screen.Height)
	case c.Timing.FrameMs <= 0:
		return invalid("timing.frame_ms must be positive, got %v", c.Timing.FrameMs)
	case c.Physics.Gravity < 0:
		return invalid("physics.gravity must not be negative, got %v", c.Physics.Gravity)
	case c.Physics.MaxFallSpeed <= 0:
		return invalid("physics.max_fall_speed must be positive, got %v", c.Physics.MaxFallSpeed)
	case c.Physics.FlapImpulse >= 0:
		return invalid("physics.flap_impulse must be negative (upward), got %v", c.Physics.FlapImpulse)
	case c.Player.StartY < 0 || c.Player.StartY >= c.GroundRow():
		return invalid("player.start_y must be within [0, %d), got %d", c.GroundRow(), c.Player.StartY)
	case c.GateSize() <= 0:
		return invalid("obstacles.gate_size must be positive, got %d", c.GateSize())
	}

	if lo, hi := c.GapRange(); hi <= lo {
		return invalid("gate of size %d does not fit %d playable rows", c.GateSize(), c.GroundRow())
	}

	switch c.Spawn.Policy {
	case SpawnPerTick:
		if c.Spawn.EveryTicks <= 0 {
			return invalid("spawn.every_ticks must be positive, got %d", c.Spawn.EveryTicks)
		}
		if c.Spawn.Chance <= 0 {
			return invalid("spawn.chance must be positive, got %d", c.Spawn.Chance)
		}
	case SpawnPerFrame:
	default:
		return invalid("spawn.policy must be %q or %q, got %q", SpawnPerTick, SpawnPerFrame, c.Spawn.Policy)
	}

	return nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("config: %s: %w", fmt.Sprintf(format, args...), ErrInvalid)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".flappy-dragon", filename)
}
