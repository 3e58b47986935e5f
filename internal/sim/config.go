package sim

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Geometry describes the physical layout of the crossing in world
// units. The window maps 1:1 onto the world rectangle, with the
// intersection at its center.
type Geometry struct {
	WorldWidth    float64 `yaml:"world_width"`
	WorldHeight   float64 `yaml:"world_height"`
	RoadHalfWidth float64 `yaml:"road_half_width"`
	StopZone      float64 `yaml:"stop_zone"`
	CullMargin    float64 `yaml:"cull_margin"`
	SpawnMargin   float64 `yaml:"spawn_margin"`
}

func (g Geometry) CenterX() float64 { return g.WorldWidth / 2 }
func (g Geometry) CenterY() float64 { return g.WorldHeight / 2 }

// Timing holds the light cycle durations in simulated milliseconds.
// A full red period is derived as green+yellow, never set directly,
// so the two axes always share one total cycle period.
type Timing struct {
	GreenMs  int64 `yaml:"green_ms"`
	YellowMs int64 `yaml:"yellow_ms"`
}

// VehicleDefaults are applied to every spawned vehicle.
type VehicleDefaults struct {
	Speed  float64 `yaml:"speed"`  // units per second
	Length float64 `yaml:"length"` // along the direction of travel
	Width  float64 `yaml:"width"`
}

// SpawnConfig bounds the uniform random spawn interval (inclusive).
type SpawnConfig struct {
	MinIntervalMs int64 `yaml:"min_interval_ms"`
	MaxIntervalMs int64 `yaml:"max_interval_ms"`
}

type Config struct {
	Geometry Geometry        `yaml:"geometry"`
	Lights   Timing          `yaml:"lights"`
	Vehicles VehicleDefaults `yaml:"vehicles"`
	Spawn    SpawnConfig     `yaml:"spawn"`
}

// Default returns the reference configuration: a 900x600 world with an
// 80-unit road through the center and the standard cycle timings.
func Default() Config {
	return Config{
		Geometry: Geometry{
			WorldWidth:    900,
			WorldHeight:   600,
			RoadHalfWidth: 40,
			StopZone:      5,
			CullMargin:    50,
			SpawnMargin:   30,
		},
		Lights: Timing{
			GreenMs:  6000,
			YellowMs: 2000,
		},
		Vehicles: VehicleDefaults{
			Speed:  120,
			Length: 25,
			Width:  15,
		},
		Spawn: SpawnConfig{
			MinIntervalMs: 1500,
			MaxIntervalMs: 4000,
		},
	}
}

// Load reads a YAML file over the defaults, so a file only needs the
// keys it wants to change.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	g := c.Geometry
	switch {
	case g.WorldWidth <= 0 || g.WorldHeight <= 0:
		return fmt.Errorf("config: world dimensions must be positive")
	case g.RoadHalfWidth <= 0:
		return fmt.Errorf("config: road half width must be positive")
	case g.StopZone <= 0:
		return fmt.Errorf("config: stop zone must be positive")
	case g.CullMargin < 0 || g.SpawnMargin < 0:
		return fmt.Errorf("config: margins must not be negative")
	case 2*g.RoadHalfWidth >= g.WorldWidth || 2*g.RoadHalfWidth >= g.WorldHeight:
		return fmt.Errorf("config: road wider than the world")
	case c.Lights.GreenMs <= 0 || c.Lights.YellowMs <= 0:
		return fmt.Errorf("config: light durations must be positive")
	case c.Vehicles.Speed <= 0 || c.Vehicles.Length <= 0 || c.Vehicles.Width <= 0:
		return fmt.Errorf("config: vehicle speed and footprint must be positive")
	case c.Spawn.MinIntervalMs <= 0 || c.Spawn.MaxIntervalMs < c.Spawn.MinIntervalMs:
		return fmt.Errorf("config: spawn interval range is empty or negative")
	}
	return nil
}
