package viewer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "viewer.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, 10, cfg.Field.Width)
	assert.Equal(t, 20, cfg.Field.Height)
	assert.Equal(t, "uniform", cfg.Randomizer)
}

func TestLoadConfigEmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
field:
  width: 12
cell_size: 24
spawn:
  row: -2
  col: 4
randomizer: bag
seed: 42
inspector: true
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, Config{
		Field:      FieldConfig{Width: 12, Height: 20},
		CellSize:   24,
		Spawn:      SpawnConfig{Row: -2, Col: 4},
		Randomizer: "bag",
		Seed:       42,
		Inspector:  true,
	}, cfg)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadConfigBadYAML(t *testing.T) {
	path := writeConfig(t, "field: [1, 2")
	_, err := LoadConfig(path)
	assert.ErrorContains(t, err, path)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"zero width", func(c *Config) { c.Field.Width = 0 }, "field must be at least 1x1"},
		{"huge field", func(c *Config) { c.Field.Height = 500 }, "field must fit"},
		{"cell size", func(c *Config) { c.CellSize = -1 }, "cell_size must be positive"},
		{"spawn range", func(c *Config) { c.Spawn.Col = 200 }, "spawn (0,200) out of range"},
		{"randomizer", func(c *Config) { c.Randomizer = "history" }, `unknown randomizer "history"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			assert.ErrorContains(t, cfg.Validate(), tt.want)
		})
	}
}

func TestValidateJoinsErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CellSize = 0
	cfg.Randomizer = ""

	err := cfg.Validate()
	assert.ErrorContains(t, err, "cell_size")
	assert.ErrorContains(t, err, "randomizer")
}

func TestWindowSize(t *testing.T) {
	width, height := DefaultConfig().WindowSize()
	assert.Equal(t, 100+300+PanelWidth, width)
	assert.Equal(t, 100+600, height)
}
