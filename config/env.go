package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variable names
const (
	EnvBullets        = "DUCK_HUNT_BULLETS"
	EnvCrosshairSpeed = "DUCK_HUNT_CROSSHAIR_SPEED"
	EnvScreenWidth    = "DUCK_HUNT_SCREEN_WIDTH"
	EnvScreenHeight   = "DUCK_HUNT_SCREEN_HEIGHT"
	EnvSeed           = "DUCK_HUNT_SEED"
	EnvAudioEnabled   = "DUCK_HUNT_AUDIO_ENABLED"
	EnvMasterVolume   = "DUCK_HUNT_MASTER_VOLUME" // 0-100
)

// ApplyEnv loads envFile if present and overrides settings from DUCK_HUNT_* variables
// Variables already set in the process take precedence over the file
func (c *Config) ApplyEnv(envFile string) error {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to load env file %s: %w", envFile, err)
		}
	}
	return c.applyLookup(os.LookupEnv)
}

func (c *Config) applyLookup(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvBullets); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvBullets, err)
		}
		c.BulletsEnabled = b
	}

	ints := []struct {
		name string
		dst  *int
	}{
		{EnvCrosshairSpeed, &c.CrosshairSpeed},
		{EnvScreenWidth, &c.ScreenWidth},
		{EnvScreenHeight, &c.ScreenHeight},
	}
	for _, it := range ints {
		v, ok := lookup(it.name)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", it.name, err)
		}
		*it.dst = n
	}

	if v, ok := lookup(EnvSeed); ok {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSeed, err)
		}
		c.Seed = n
	}

	if v, ok := lookup(EnvAudioEnabled); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvAudioEnabled, err)
		}
		c.Audio.Enabled = b
	}

	// Master volume is given as a percentage and clamped
	if v, ok := lookup(EnvMasterVolume); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvMasterVolume, err)
		}
		vol := float64(n) / 100.0
		if vol < 0 {
			vol = 0
		}
		if vol > 1 {
			vol = 1
		}
		c.Audio.MasterVolume = vol
	}

	return nil
}
