package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 5, cfg.AmmoMax)
	assert.False(t, cfg.BulletsEnabled)
	assert.Equal(t, 50*time.Millisecond, cfg.TickInterval)
}

func TestLoadYAMLOverlaysDefaults(t *testing.T) {
	path := writeFile(t, "duck-hunt.yaml", `
screenWidth: 100
screenHeight: 40
bulletsEnabled: true
spawnDelayInitial: 30
spawnDelayFloor: 10
tickInterval: 40ms
seed: 1234
audio:
  enabled: false
  masterVolume: 0.25
`)

	cfg, err := Load(path, "")
	require.NoError(t, err)

	assert.Equal(t, 100, cfg.ScreenWidth)
	assert.Equal(t, 40, cfg.ScreenHeight)
	assert.True(t, cfg.BulletsEnabled)
	assert.Equal(t, 30, cfg.SpawnDelayInitial)
	assert.Equal(t, 10, cfg.SpawnDelayFloor)
	assert.Equal(t, 40*time.Millisecond, cfg.TickInterval)
	assert.Equal(t, uint64(1234), cfg.Seed)
	assert.False(t, cfg.Audio.Enabled)
	assert.InDelta(t, 0.25, cfg.Audio.MasterVolume, 1e-9)

	// Untouched keys keep their defaults
	assert.Equal(t, Default().BirdWidth, cfg.BirdWidth)
	assert.Equal(t, Default().Audio.SampleRate, cfg.Audio.SampleRate)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
		errContains string
		invalid     bool
	}{
		{
			name:        "malformed yaml",
			yamlContent: "screenWidth: [",
			errContains: "failed to parse config YAML",
		},
		{
			name:        "floor above initial",
			yamlContent: "spawnDelayInitial: 5\nspawnDelayFloor: 10\n",
			errContains: "spawnDelayInitial",
			invalid:     true,
		},
		{
			name:        "initial ammo above max",
			yamlContent: "ammoMax: 3\nammoInitial: 4\n",
			errContains: "ammoInitial",
			invalid:     true,
		},
		{
			name:        "negative score",
			yamlContent: "instantHitScore: -1\n",
			errContains: "rewards and scores",
			invalid:     true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, "cfg.yaml", tt.yamlContent), "")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errContains)
			if tt.invalid {
				assert.ErrorIs(t, err, ErrInvalidConfig)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), "")
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.ScreenWidth = 0 }},
		{"zero bird", func(c *Config) { c.BirdHeight = 0 }},
		{"bird taller than screen", func(c *Config) { c.BirdHeight = c.ScreenHeight + 1 }},
		{"zero floor", func(c *Config) { c.SpawnDelayFloor = 0 }},
		{"zero speed", func(c *Config) { c.CrosshairSpeed = 0 }},
		{"zero substeps", func(c *Config) { c.BulletSubsteps = 0 }},
		{"zero ammo max", func(c *Config) { c.AmmoMax = 0; c.AmmoInitial = 0 }},
		{"negative initial ammo", func(c *Config) { c.AmmoInitial = -1 }},
		{"zero animation interval", func(c *Config) { c.AnimationInterval = 0 }},
		{"zero tick", func(c *Config) { c.TickInterval = 0 }},
		{"loud volume", func(c *Config) { c.Audio.MasterVolume = 1.5 }},
		{"zero sample rate", func(c *Config) { c.Audio.SampleRate = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestExampleConfigLoads(t *testing.T) {
	cfg, err := Load(filepath.Join("..", "duck-hunt.example.yaml"), "")
	require.NoError(t, err)

	def := Default()
	assert.Equal(t, def.ScreenWidth, cfg.ScreenWidth)
	assert.Equal(t, def.TickInterval, cfg.TickInterval)
	assert.Equal(t, def.BulletSubsteps, cfg.BulletSubsteps)
	assert.Equal(t, []string{"space", "f", "enter"}, cfg.Keys["fire"])
}
