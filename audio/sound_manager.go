package audio

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// SoundManager plays the session cues through the system speaker
// Every method is safe to call before Initialize or after Cleanup; cues are then dropped
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	initialized bool
	muted       bool
}

// NewSoundManager creates a new sound manager; nil cfg uses defaults
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
	}
}

// Initialize sets up the audio system
// A disabled config leaves the manager silent without touching the speaker
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}
	if sm.cfg.SampleRate <= 0 {
		return ErrInvalidSampleRate
	}

	// Initialize speaker with sample rate and buffer size
	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(time.Millisecond*100)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and closes the audio system
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Clear()
	speaker.Close()
	sm.initialized = false
}

// Play queues the cue for soundType unless muted or uninitialized
func (sm *SoundManager) Play(soundType SoundType) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}

	streamer := GetSoundEffect(soundType, sm.cfg)
	if streamer == nil {
		return
	}
	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
}

// PlayLaunch plays the launch sweep
func (sm *SoundManager) PlayLaunch() { sm.Play(SoundLaunch) }

// PlayScore plays the goal chime
func (sm *SoundManager) PlayScore() { sm.Play(SoundScore) }

// PlayMiss plays the out-of-bounds buzz
func (sm *SoundManager) PlayMiss() { sm.Play(SoundMiss) }

// ToggleMute flips the mute state and returns the new value
// Muting cuts any cue still playing
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.muted = !sm.muted
	if sm.muted && sm.initialized {
		speaker.Lock()
		sm.mixer.Clear()
		speaker.Unlock()
	}
	log.Printf("audio: muted=%v", sm.muted)
	return sm.muted
}

// SetMuted forces the mute state
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = muted
}

// Muted reports the current mute state
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// Initialized reports whether the speaker is live
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}
