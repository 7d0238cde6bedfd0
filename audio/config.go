package audio

import "github.com/lixenwraith/duck-hunt/constant"

// AudioConfig holds sound output settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64
	SampleRate    int
	EffectVolumes [soundTypeCount]float64
}

// DefaultAudioConfig returns stock volumes per effect
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: constant.AudioMasterVolume,
		SampleRate:   constant.AudioSampleRate,
		EffectVolumes: [soundTypeCount]float64{
			SoundShot:     0.8,
			SoundDryFire:  0.6,
			SoundHit:      0.7,
			SoundQuack:    0.35,
			SoundGameOver: 0.7,
		},
	}
}

// NewAudioConfig builds a config from launcher settings, keeping default effect volumes
func NewAudioConfig(enabled bool, masterVolume float64, sampleRate int) *AudioConfig {
	cfg := DefaultAudioConfig()
	cfg.Enabled = enabled
	cfg.MasterVolume = clampVolume(masterVolume)
	if sampleRate > 0 {
		cfg.SampleRate = sampleRate
	}
	return cfg
}

func clampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
