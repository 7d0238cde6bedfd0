package audio

import "errors"

// SoundType represents different sound effects
type SoundType int

const (
	SoundShot     SoundType = iota // Round fired
	SoundDryFire                   // Trigger pulled on an empty gun
	SoundHit                       // Bird downed
	SoundQuack                     // Bird entered the sky
	SoundGameOver                  // Session ended
	soundTypeCount
)

var soundNames = [soundTypeCount]string{
	SoundShot:     "shot",
	SoundDryFire:  "dry_fire",
	SoundHit:      "hit",
	SoundQuack:    "quack",
	SoundGameOver: "game_over",
}

func (s SoundType) String() string {
	if s < 0 || s >= soundTypeCount {
		return "unknown"
	}
	return soundNames[s]
}

// Sentinel errors
var (
	ErrAudioDisabled = errors.New("audio disabled by config")
)
