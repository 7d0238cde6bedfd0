package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/duck-hunt/constant"
	"github.com/lixenwraith/duck-hunt/event"
)

// SoundManager plays game event sounds through a single mixer
type SoundManager struct {
	mu          sync.Mutex
	config      *AudioConfig
	mixer       *beep.Mixer
	initialized bool
	muted       bool
}

// NewSoundManager creates a manager; nil config selects defaults
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{
		config: cfg,
		mixer:  &beep.Mixer{},
	}
}

// Initialize opens the speaker and attaches the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if !sm.config.Enabled {
		return ErrAudioDisabled
	}

	rate := beep.SampleRate(sm.config.SampleRate)
	if err := speaker.Init(rate, rate.N(constant.AudioBufferLength)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences all playing sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	// beep has no speaker close; cleared mixer leaves nothing to drain
	sm.initialized = false
}

// Play queues one sound effect, no-op when uninitialized or muted
func (sm *SoundManager) Play(st SoundType) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}

	s := GetSoundEffect(st, sm.config)
	if s == nil {
		return
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// ToggleMute flips mute state and returns the new value
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = !sm.muted
	return sm.muted
}

// SetMuted sets mute state
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	sm.muted = muted
	sm.mu.Unlock()
}

// IsMuted reports mute state
func (sm *SoundManager) IsMuted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// IsInitialized reports whether the speaker is attached
func (sm *SoundManager) IsInitialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// HandleEvents plays the sounds for one frame's events
func (sm *SoundManager) HandleEvents(events []event.GameEvent) {
	for _, st := range SoundsFor(events) {
		sm.Play(st)
	}
}

// SoundsFor maps events to sounds, each type at most once in first-seen order
func SoundsFor(events []event.GameEvent) []SoundType {
	var seen [soundTypeCount]bool
	var out []SoundType
	for _, ev := range events {
		st, ok := soundForEvent(ev.Type)
		if !ok || seen[st] {
			continue
		}
		seen[st] = true
		out = append(out, st)
	}
	return out
}

func soundForEvent(t event.EventType) (SoundType, bool) {
	switch t {
	case event.EventShot:
		return SoundShot, true
	case event.EventDryFire:
		return SoundDryFire, true
	case event.EventKill:
		return SoundHit, true
	case event.EventSpawn:
		return SoundQuack, true
	case event.EventGameOver:
		return SoundGameOver, true
	default:
		// Escapes are silent
		return 0, false
	}
}
