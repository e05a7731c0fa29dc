// Package worldgen drives the generation pipeline: plates, heightmap,
// hydrology, climate, assembled into an immutable world.World.
package worldgen

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/talgya/hexforge/internal/hydrology"
)

// Config holds all generation tuning. Zero values are filled from
// DefaultConfig, so a partial YAML file only overrides what it names.
type Config struct {
	Seed   int64 `yaml:"seed"`
	Width  int   `yaml:"width"`
	Height int   `yaml:"height"`

	// PlateCount is the target number of tectonic plates. Grids too small
	// to fit them collapse to a single plate.
	PlateCount int `yaml:"plate_count"`

	// EquatorRow places the climate equator; -1 means the middle row.
	EquatorRow int `yaml:"equator_row"`

	RiverMinFlow     int `yaml:"river_min_flow"`
	RiverAreaDivisor int `yaml:"river_area_divisor"`
	LakeMaxArea      int `yaml:"lake_max_area"`

	// Workers bounds the row fan-out for the per-hex stages. 0 means one
	// worker per logical CPU.
	Workers int `yaml:"workers"`
}

// DefaultConfig returns the standard generation parameters.
func DefaultConfig() Config {
	hydro := hydrology.DefaultConfig()
	return Config{
		Seed:             42,
		Width:            120,
		Height:           80,
		PlateCount:       6,
		EquatorRow:       -1,
		RiverMinFlow:     hydro.RiverMinFlow,
		RiverAreaDivisor: hydro.RiverAreaDivisor,
		LakeMaxArea:      hydro.LakeMaxArea,
	}
}

// LoadConfig reads a YAML config file, filling unset fields from defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.fillDefaults()
	return cfg, nil
}

func (c *Config) fillDefaults() {
	def := DefaultConfig()
	if c.PlateCount <= 0 {
		c.PlateCount = def.PlateCount
	}
	if c.RiverMinFlow <= 0 {
		c.RiverMinFlow = def.RiverMinFlow
	}
	if c.RiverAreaDivisor <= 0 {
		c.RiverAreaDivisor = def.RiverAreaDivisor
	}
	if c.LakeMaxArea <= 0 {
		c.LakeMaxArea = def.LakeMaxArea
	}
}

// hydroConfig converts the relevant fields for the hydrology engine.
func (c Config) hydroConfig() hydrology.Config {
	return hydrology.Config{
		RiverMinFlow:     c.RiverMinFlow,
		RiverAreaDivisor: c.RiverAreaDivisor,
		LakeMaxArea:      c.LakeMaxArea,
	}
}
