// Package config loads the renderer's noise and viewport parameters from a
// TOML file, the same way NoiseTorch-ng loads its own settings: a flat
// struct decoded with BurntSushi/toml, with sane defaults and explicit
// validation separated from decoding.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// WorldConfig is the on-disk configuration for one isoworld instance.
type WorldConfig struct {
	Periods     []int
	Amplitudes  []float32
	PixelWidth  int
	PixelHeight int
	Scale       float32
	Seed        int32
}

// Default returns the configuration used when no file is present.
func Default() WorldConfig {
	return WorldConfig{
		Periods:     []int{64, 32, 16, 8},
		Amplitudes:  []float32{8, 4, 2, 1},
		PixelWidth:  640,
		PixelHeight: 480,
		Scale:       16,
		Seed:        1,
	}
}

// Load decodes a TOML file at path into a WorldConfig and validates it.
func Load(path string) (WorldConfig, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return WorldConfig{}, fmt.Errorf("config: decode %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return WorldConfig{}, err
	}
	return cfg, nil
}

// Write encodes cfg as TOML to path.
func Write(path string, cfg WorldConfig) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("config: create %s: %w", path, err)
	}
	defer f.Close()
	if err := toml.NewEncoder(f).Encode(&cfg); err != nil {
		return fmt.Errorf("config: encode %s: %w", path, err)
	}
	return nil
}

// Validate checks the preconditions isoworld.New itself enforces, so a
// malformed config file is rejected before a renderer is ever constructed.
func (c WorldConfig) Validate() error {
	if len(c.Periods) == 0 {
		return fmt.Errorf("config: periods must not be empty")
	}
	if len(c.Periods) != len(c.Amplitudes) {
		return fmt.Errorf("config: len(periods)=%d != len(amplitudes)=%d", len(c.Periods), len(c.Amplitudes))
	}
	const heightmapSize = 64
	for _, p := range c.Periods {
		if p <= 0 || heightmapSize%p != 0 {
			return fmt.Errorf("config: period %d must be positive and divide heightmap size %d", p, heightmapSize)
		}
	}
	if c.PixelWidth <= 0 || c.PixelHeight <= 0 {
		return fmt.Errorf("config: pixel dimensions must be positive, got %dx%d", c.PixelWidth, c.PixelHeight)
	}
	if c.Scale <= 0 {
		return fmt.Errorf("config: scale must be positive, got %f", c.Scale)
	}
	return nil
}
