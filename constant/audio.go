package constant

import "time"

// Audio Defaults
const (
	AudioSampleRate   = 44100
	AudioBufferLength = 100 * time.Millisecond
	AudioMasterVolume = 0.5
)

// Shot Sound: noise burst with fast decay
const (
	ShotSoundDuration = 120 * time.Millisecond
	ShotSoundAttack   = 2 * time.Millisecond
	ShotSoundRelease  = 100 * time.Millisecond
)

// Dry Fire Sound: short click
const (
	DryFireSoundDuration = 40 * time.Millisecond
	DryFireSoundAttack   = 1 * time.Millisecond
	DryFireSoundRelease  = 30 * time.Millisecond
)

// Hit Sound: two-note chime
const (
	HitSoundNote1Duration = 60 * time.Millisecond
	HitSoundNote2Duration = 140 * time.Millisecond
	HitSoundAttack        = 2 * time.Millisecond
	HitSoundNote1Release  = 20 * time.Millisecond
	HitSoundNote2Release  = 120 * time.Millisecond
)

// Quack Sound: nasal square wave on spawn
const (
	QuackSoundDuration = 90 * time.Millisecond
	QuackSoundAttack   = 5 * time.Millisecond
	QuackSoundRelease  = 60 * time.Millisecond
)

// Game Over Sound: descending saw
const (
	GameOverNoteDuration = 180 * time.Millisecond
	GameOverSoundAttack  = 5 * time.Millisecond
	GameOverSoundRelease = 120 * time.Millisecond
)
