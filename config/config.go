package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/duck-hunt/constant"
	"github.com/lixenwraith/duck-hunt/parameter"
)

// ErrInvalidConfig wraps every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// Config is supplied once at session start
type Config struct {
	ScreenWidth  int `yaml:"screenWidth"`
	ScreenHeight int `yaml:"screenHeight"`
	BirdWidth    int `yaml:"birdWidth"`
	BirdHeight   int `yaml:"birdHeight"`

	SpawnDelayInitial int `yaml:"spawnDelayInitial"`
	SpawnDelayFloor   int `yaml:"spawnDelayFloor"`

	CrosshairSpeed int `yaml:"crosshairSpeed"`

	BulletsEnabled bool `yaml:"bulletsEnabled"`
	BulletSubsteps int  `yaml:"bulletSubsteps"`
	BarrelLength   int  `yaml:"barrelLength"`
	BarrelStretch  int  `yaml:"barrelStretch"`

	InstantHitReward   int `yaml:"instantHitReward"`
	InstantHitScore    int `yaml:"instantHitScore"`
	BallisticHitReward int `yaml:"ballisticHitReward"`
	BallisticHitScore  int `yaml:"ballisticHitScore"`

	AmmoMax     int `yaml:"ammoMax"`
	AmmoInitial int `yaml:"ammoInitial"`

	// AnimationInterval is ticks per bird frame advance, decoupled from motion
	AnimationInterval int `yaml:"animationInterval"`

	TickInterval time.Duration `yaml:"tickInterval"`

	// Seed drives the spawn random source, 0 picks a time-based seed
	Seed uint64 `yaml:"seed"`

	Audio Audio `yaml:"audio"`

	// Keys rebinds actions to key names, e.g. fire: [space, enter]
	Keys map[string][]string `yaml:"keys"`
}

// Audio configures the launcher sound output
type Audio struct {
	Enabled      bool    `yaml:"enabled"`
	MasterVolume float64 `yaml:"masterVolume"`
	SampleRate   int     `yaml:"sampleRate"`
}

// Default returns the stock tuning
func Default() Config {
	return Config{
		ScreenWidth:        parameter.ScreenWidth,
		ScreenHeight:       parameter.ScreenHeight,
		BirdWidth:          parameter.BirdWidth,
		BirdHeight:         parameter.BirdHeight,
		SpawnDelayInitial:  parameter.SpawnDelayInitial,
		SpawnDelayFloor:    parameter.SpawnDelayFloor,
		CrosshairSpeed:     parameter.CrosshairSpeed,
		BulletsEnabled:     false,
		BulletSubsteps:     parameter.BulletSubsteps,
		BarrelLength:       parameter.BarrelLength,
		BarrelStretch:      parameter.BarrelStretch,
		InstantHitReward:   parameter.InstantHitReward,
		InstantHitScore:    parameter.InstantHitScore,
		BallisticHitReward: parameter.BallisticHitReward,
		BallisticHitScore:  parameter.BallisticHitScore,
		AmmoMax:            parameter.AmmoMax,
		AmmoInitial:        parameter.AmmoInitial,
		AnimationInterval:  parameter.AnimationInterval,
		TickInterval:       constant.GameUpdateInterval,
		Audio: Audio{
			Enabled:      true,
			MasterVolume: constant.AudioMasterVolume,
			SampleRate:   constant.AudioSampleRate,
		},
	}
}

// Load reads a YAML file over the defaults, then applies environment overrides and validates
// envFile names an optional dotenv file, empty to skip
func Load(path, envFile string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config YAML: %w", err)
		}
	}

	if err := cfg.ApplyEnv(envFile); err != nil {
		return cfg, err
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects settings the simulation cannot honour
func (c *Config) Validate() error {
	switch {
	case c.ScreenWidth < 1 || c.ScreenHeight < 1:
		return fmt.Errorf("%w: screen must be at least 1x1, got %dx%d", ErrInvalidConfig, c.ScreenWidth, c.ScreenHeight)
	case c.BirdWidth < 1 || c.BirdHeight < 1:
		return fmt.Errorf("%w: bird must be at least 1x1, got %dx%d", ErrInvalidConfig, c.BirdWidth, c.BirdHeight)
	case c.BirdHeight > c.ScreenHeight:
		return fmt.Errorf("%w: bird height %d exceeds screen height %d", ErrInvalidConfig, c.BirdHeight, c.ScreenHeight)
	case c.SpawnDelayFloor < 1:
		return fmt.Errorf("%w: spawnDelayFloor must be >= 1, got %d", ErrInvalidConfig, c.SpawnDelayFloor)
	case c.SpawnDelayInitial < c.SpawnDelayFloor:
		return fmt.Errorf("%w: spawnDelayInitial %d is below spawnDelayFloor %d", ErrInvalidConfig, c.SpawnDelayInitial, c.SpawnDelayFloor)
	case c.CrosshairSpeed < 1:
		return fmt.Errorf("%w: crosshairSpeed must be >= 1, got %d", ErrInvalidConfig, c.CrosshairSpeed)
	case c.BulletSubsteps < 1:
		return fmt.Errorf("%w: bulletSubsteps must be >= 1, got %d", ErrInvalidConfig, c.BulletSubsteps)
	case c.BarrelLength < 0 || c.BarrelStretch < 0:
		return fmt.Errorf("%w: barrel length and stretch must be >= 0", ErrInvalidConfig)
	case c.AmmoMax < 1:
		return fmt.Errorf("%w: ammoMax must be >= 1, got %d", ErrInvalidConfig, c.AmmoMax)
	case c.AmmoInitial < 0 || c.AmmoInitial > c.AmmoMax:
		return fmt.Errorf("%w: ammoInitial must be within [0, %d], got %d", ErrInvalidConfig, c.AmmoMax, c.AmmoInitial)
	case c.InstantHitReward < 0 || c.InstantHitScore < 0 || c.BallisticHitReward < 0 || c.BallisticHitScore < 0:
		return fmt.Errorf("%w: rewards and scores must be >= 0", ErrInvalidConfig)
	case c.AnimationInterval < 1:
		return fmt.Errorf("%w: animationInterval must be >= 1, got %d", ErrInvalidConfig, c.AnimationInterval)
	case c.TickInterval <= 0:
		return fmt.Errorf("%w: tickInterval must be positive, got %s", ErrInvalidConfig, c.TickInterval)
	case c.Audio.MasterVolume < 0 || c.Audio.MasterVolume > 1:
		return fmt.Errorf("%w: audio.masterVolume must be within [0, 1], got %g", ErrInvalidConfig, c.Audio.MasterVolume)
	case c.Audio.SampleRate < 1:
		return fmt.Errorf("%w: audio.sampleRate must be positive, got %d", ErrInvalidConfig, c.Audio.SampleRate)
	}
	return nil
}
