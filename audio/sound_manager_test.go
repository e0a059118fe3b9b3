package audio

import (
	"testing"
)

// TestSoundManagerGracefulDegradation verifies audio operations don't panic when not initialized
func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManager(nil)

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Sound operations panicked without initialization: %v", r)
		}
	}()

	sm.PlayLaunch()
	sm.PlayScore()
	sm.PlayMiss()
	sm.Play(SoundType(99))
	sm.Cleanup()
}

// TestSoundManagerDisabled verifies a disabled config never opens the speaker
func TestSoundManagerDisabled(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.Enabled = false
	sm := NewSoundManager(cfg)

	if err := sm.Initialize(); err != nil {
		t.Fatalf("Disabled initialize should succeed, got %v", err)
	}
	if sm.Initialized() {
		t.Error("Disabled manager must stay uninitialized")
	}
	sm.PlayScore()
}

// TestSoundManagerInvalidSampleRate verifies configuration errors surface from Initialize
func TestSoundManagerInvalidSampleRate(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.SampleRate = 0
	sm := NewSoundManager(cfg)

	if err := sm.Initialize(); err != ErrInvalidSampleRate {
		t.Errorf("Expected ErrInvalidSampleRate, got %v", err)
	}
}

// TestSoundManagerInitialization verifies sound manager can be initialized and cleaned up
func TestSoundManagerInitialization(t *testing.T) {
	sm := NewSoundManager(nil)

	// Speaker initialization may fail in CI/test environments without audio devices
	err := sm.Initialize()
	if err != nil {
		t.Logf("Sound initialization failed (expected in test environment): %v", err)
		return
	}

	// Second initialization should be a no-op
	if err := sm.Initialize(); err != nil {
		t.Errorf("Second initialization should succeed as no-op, got error: %v", err)
	}

	sm.PlayLaunch()
	sm.Cleanup()
	if sm.Initialized() {
		t.Error("Expected manager to be uninitialized after cleanup")
	}
}

// TestSoundManagerMute verifies mute toggling without a speaker
func TestSoundManagerMute(t *testing.T) {
	sm := NewSoundManager(nil)

	if sm.Muted() {
		t.Fatal("Expected unmuted by default")
	}
	if !sm.ToggleMute() || !sm.Muted() {
		t.Error("Expected first toggle to mute")
	}
	if sm.ToggleMute() || sm.Muted() {
		t.Error("Expected second toggle to unmute")
	}

	sm.SetMuted(true)
	if !sm.Muted() {
		t.Error("Expected SetMuted(true) to mute")
	}
	sm.PlayScore()
}
