package audio

import (
	"encoding/json"
	"log"
	"os"
	"strconv"

	"github.com/lixenwraith/trajectory/vmath"
)

// Environment variables read by ApplyEnv
const (
	EnvAudioEnabled = "TRAJECTORY_AUDIO_ENABLED"
	// EnvMasterVolume is a percentage, 0 to 100
	EnvMasterVolume = "TRAJECTORY_MASTER_VOLUME"
	// EnvSFXVolumes is a JSON object of cue name to volume, e.g. {"miss": 0.3}
	EnvSFXVolumes = "TRAJECTORY_SFX_VOLUMES"
	EnvSampleRate = "TRAJECTORY_SAMPLE_RATE"
)

// LoadAudioConfig returns the default audio configuration with environment overrides applied
func LoadAudioConfig() *AudioConfig {
	cfg := DefaultAudioConfig()
	ApplyEnv(cfg)
	return cfg
}

// ApplyEnv overrides cfg from environment variables; malformed values are logged and ignored
func ApplyEnv(cfg *AudioConfig) {
	envValue(EnvAudioEnabled, strconv.ParseBool, func(v bool) { cfg.Enabled = v })
	envValue(EnvMasterVolume, strconv.Atoi, func(pct int) { cfg.MasterVolume = clampVolume(float64(pct) / 100) })
	envValue(EnvSampleRate, strconv.Atoi, func(rate int) {
		if rate > 0 {
			cfg.SampleRate = rate
		}
	})
	envValue(EnvSFXVolumes, parseVolumes, func(volumes map[string]float64) {
		if cfg.EffectVolumes == nil {
			cfg.EffectVolumes = make(map[SoundType]float64, soundTypeCount)
		}
		for st := SoundType(0); st < soundTypeCount; st++ {
			if v, ok := volumes[st.String()]; ok {
				cfg.EffectVolumes[st] = clampVolume(v)
			}
		}
	})
}

// envValue parses a set environment variable and hands the result to apply
func envValue[T any](key string, parse func(string) (T, error), apply func(T)) {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return
	}
	v, err := parse(raw)
	if err != nil {
		log.Printf("audio: ignoring %s=%q: %v", key, raw, err)
		return
	}
	apply(v)
}

func parseVolumes(raw string) (map[string]float64, error) {
	var volumes map[string]float64
	err := json.Unmarshal([]byte(raw), &volumes)
	return volumes, err
}

func clampVolume(v float64) float64 {
	return vmath.Clamp(v, 0, 1)
}
