// Package config assembles runtime settings from defaults, an optional TOML file and the environment
package config

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"

	"github.com/lixenwraith/trajectory/audio"
	"github.com/lixenwraith/trajectory/parameter"
	"github.com/lixenwraith/trajectory/session"
	"github.com/lixenwraith/trajectory/vmath"
)

// Environment variables overriding file values
const (
	EnvSpeed          = "TRAJECTORY_SPEED"
	EnvGravity        = "TRAJECTORY_GRAVITY"
	EnvAngle          = "TRAJECTORY_ANGLE"
	EnvPixelsPerMeter = "TRAJECTORY_PIXELS_PER_METER"
	EnvFrameRate      = "TRAJECTORY_FRAME_RATE"
	EnvScoreThreshold = "TRAJECTORY_SCORE_THRESHOLD"
	EnvTargetX        = "TRAJECTORY_TARGET_X"
)

// maxFrameRate bounds the ticker; above this the terminal cannot keep up
const maxFrameRate = 240

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Physics PhysicsConfig `toml:"physics"`
	Scene   SceneConfig   `toml:"scene"`
	Audio   AudioConfig   `toml:"audio"`
}

// PhysicsConfig holds the launch defaults and simulation scale
type PhysicsConfig struct {
	Speed          float64 `toml:"speed"`
	Gravity        float64 `toml:"gravity"`
	Angle          float64 `toml:"angle"`
	PixelsPerMeter float64 `toml:"pixels_per_meter"`
	FrameRate      float64 `toml:"frame_rate"`
	ScoreThreshold float64 `toml:"score_threshold"`
}

// SceneConfig holds placement in canvas pixels and meters
type SceneConfig struct {
	TargetX          float64 `toml:"target_x"`
	LauncherMaxRaise float64 `toml:"launcher_max_raise"`
}

type AudioConfig struct {
	Enabled      bool    `toml:"enabled"`
	MasterVolume float64 `toml:"master_volume"`
	SampleRate   int     `toml:"sample_rate"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Physics: PhysicsConfig{
			Speed:          parameter.DefaultSpeed,
			Gravity:        parameter.DefaultGravity,
			Angle:          parameter.DefaultAngleDeg,
			PixelsPerMeter: parameter.PixelsPerMeter,
			FrameRate:      parameter.FrameRate,
			ScoreThreshold: parameter.ScoreThresholdMeters,
		},
		Scene: SceneConfig{
			TargetX:          parameter.TargetInitialX,
			LauncherMaxRaise: parameter.LauncherMaxRaiseMeters,
		},
		Audio: AudioConfig{
			Enabled:      true,
			MasterVolume: parameter.AudioMasterVolume,
			SampleRate:   parameter.AudioSampleRate,
		},
	}
}

// Load builds a Config from defaults, the TOML file at path (skipped when empty),
// a .env file in the working directory and process environment, then validates it
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := decode(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	// Load .env file if it exists
	_ = godotenv.Load()
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func decode(data []byte, cfg *Config) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(cfg)
}

func (c *Config) applyEnv() {
	c.Physics.Speed = getEnvFloat(EnvSpeed, c.Physics.Speed)
	c.Physics.Gravity = getEnvFloat(EnvGravity, c.Physics.Gravity)
	c.Physics.Angle = getEnvFloat(EnvAngle, c.Physics.Angle)
	c.Physics.PixelsPerMeter = getEnvFloat(EnvPixelsPerMeter, c.Physics.PixelsPerMeter)
	c.Physics.FrameRate = getEnvFloat(EnvFrameRate, c.Physics.FrameRate)
	c.Physics.ScoreThreshold = getEnvFloat(EnvScoreThreshold, c.Physics.ScoreThreshold)
	c.Scene.TargetX = getEnvFloat(EnvTargetX, c.Scene.TargetX)
}

// Validate rejects values the session cannot run with
// Degenerate launch values (zero or negative speed and gravity) are allowed
func (c *Config) Validate() error {
	p := c.Physics
	finite := []struct {
		name  string
		value float64
	}{
		{"speed", p.Speed},
		{"gravity", p.Gravity},
		{"angle", p.Angle},
		{"target_x", c.Scene.TargetX},
		{"launcher_max_raise", c.Scene.LauncherMaxRaise},
	}
	for _, f := range finite {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return fmt.Errorf("%w: %s must be finite", ErrInvalidConfig, f.name)
		}
	}
	if p.FrameRate > maxFrameRate {
		return fmt.Errorf("%w: frame_rate %v exceeds %d", ErrInvalidConfig, p.FrameRate, maxFrameRate)
	}
	if c.Audio.MasterVolume < 0 || c.Audio.MasterVolume > 1 {
		return fmt.Errorf("%w: master_volume %v outside [0,1]", ErrInvalidConfig, c.Audio.MasterVolume)
	}
	if c.Audio.Enabled && c.Audio.SampleRate <= 0 {
		return fmt.Errorf("%w: sample_rate must be positive", ErrInvalidConfig)
	}
	if err := c.SessionSettings().Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// SessionSettings maps the configuration onto session settings
func (c *Config) SessionSettings() session.Settings {
	s := session.DefaultSettings()
	s.DefaultSpeed = c.Physics.Speed
	s.DefaultGravity = c.Physics.Gravity
	s.DefaultAngleDeg = vmath.NormalizeDegrees(c.Physics.Angle)
	s.PixelsPerMeter = c.Physics.PixelsPerMeter
	s.FrameRate = c.Physics.FrameRate
	s.ScoreThresholdM = c.Physics.ScoreThreshold
	s.TargetStart[0] = c.Scene.TargetX
	s.LauncherMaxRaiseM = c.Scene.LauncherMaxRaise
	return s
}

// AudioSettings maps the configuration onto the audio package, applying its own env overrides last
func (c *Config) AudioSettings() *audio.AudioConfig {
	ac := audio.DefaultAudioConfig()
	ac.Enabled = c.Audio.Enabled
	ac.MasterVolume = c.Audio.MasterVolume
	ac.SampleRate = c.Audio.SampleRate
	audio.ApplyEnv(ac)
	return ac
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}
