// Package viewer holds the window-independent parts of the tetromino viewer:
// its configuration and the session that owns the active piece.
package viewer

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// Screen layout in pixels around the field.
const (
	MarginX    = 50
	MarginY    = 50
	PanelWidth = 220
)

// Config holds the viewer settings. Fields missing from a YAML file keep
// their defaults.
type Config struct {
	Field      FieldConfig `yaml:"field"`
	CellSize   int         `yaml:"cell_size"`
	Spawn      SpawnConfig `yaml:"spawn"`
	Randomizer string      `yaml:"randomizer"`
	Seed       uint64      `yaml:"seed"`
	Inspector  bool        `yaml:"inspector"`
}

// FieldConfig is the size of the drawn field in cells.
type FieldConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SpawnConfig is the anchor new pieces appear at.
type SpawnConfig struct {
	Row int `yaml:"row"`
	Col int `yaml:"col"`
}

// DefaultConfig returns a 10x20 field with a uniform randomizer.
func DefaultConfig() Config {
	return Config{
		Field:      FieldConfig{Width: 10, Height: 20},
		CellSize:   30,
		Spawn:      SpawnConfig{Row: 0, Col: 3},
		Randomizer: "uniform",
	}
}

// LoadConfig reads a YAML file over the defaults. An empty path returns the
// defaults unchanged.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports every problem with the config joined into one error.
func (c Config) Validate() error {
	var errs []error
	if c.Field.Width <= 0 || c.Field.Height <= 0 {
		errs = append(errs, fmt.Errorf("field must be at least 1x1, got %dx%d", c.Field.Width, c.Field.Height))
	}
	if c.Field.Width > math.MaxInt8 || c.Field.Height > math.MaxInt8 {
		errs = append(errs, fmt.Errorf("field must fit in %d rows and columns", math.MaxInt8))
	}
	if c.CellSize <= 0 {
		errs = append(errs, fmt.Errorf("cell_size must be positive, got %d", c.CellSize))
	}
	if !fitsInt8(c.Spawn.Row) || !fitsInt8(c.Spawn.Col) {
		errs = append(errs, fmt.Errorf("spawn (%d,%d) out of range", c.Spawn.Row, c.Spawn.Col))
	}
	switch c.Randomizer {
	case "uniform", "bag":
	default:
		errs = append(errs, fmt.Errorf("unknown randomizer %q", c.Randomizer))
	}
	return errors.Join(errs...)
}

// WindowSize returns the window dimensions needed for the field, its margins
// and the side panel.
func (c Config) WindowSize() (int, int) {
	width := MarginX*2 + c.Field.Width*c.CellSize + PanelWidth
	height := MarginY*2 + c.Field.Height*c.CellSize
	return width, height
}

func fitsInt8(v int) bool {
	return v >= math.MinInt8 && v <= math.MaxInt8
}
