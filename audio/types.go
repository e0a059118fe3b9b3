package audio

import (
	"errors"

	"github.com/lixenwraith/trajectory/parameter"
)

// SoundType represents different sound cues
type SoundType int

const (
	SoundLaunch SoundType = iota // Ball leaves the launcher
	SoundScore                   // Ball reached the target
	SoundMiss                    // Ball left the canvas
	soundTypeCount
)

func (s SoundType) String() string {
	switch s {
	case SoundLaunch:
		return "launch"
	case SoundScore:
		return "score"
	case SoundMiss:
		return "miss"
	}
	return "unknown"
}

// AudioConfig controls cue synthesis and playback
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64
	EffectVolumes map[SoundType]float64
	SampleRate    int
}

// DefaultAudioConfig returns the stock audio settings
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: parameter.AudioMasterVolume,
		EffectVolumes: map[SoundType]float64{
			SoundLaunch: 0.6,
			SoundScore:  1.0,
			SoundMiss:   0.8,
		},
		SampleRate: parameter.AudioSampleRate,
	}
}

// Sentinel errors
var (
	ErrInvalidSampleRate = errors.New("audio sample rate must be positive")
)
