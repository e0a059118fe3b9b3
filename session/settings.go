package session

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/lixenwraith/trajectory/parameter"
	"github.com/lixenwraith/trajectory/vmath"
)

// Settings fixes the tunables of a session at construction
// Positions are canvas pixels, physics quantities are SI
type Settings struct {
	PixelsPerMeter  float64
	FrameRate       float64
	ScoreThresholdM float64

	DefaultSpeed    float64
	DefaultGravity  float64
	DefaultAngleDeg float64

	LauncherStart     vmath.Vec2
	TargetStart       vmath.Vec2
	GroundY           float64
	LauncherMaxRaiseM float64
	LaunchOffsetY     float64
	ArrowPivotOffset  vmath.Vec2

	// Extent is the visible canvas; the out-of-bounds test uses it until a resize arrives
	Extent vmath.Vec2
}

// DefaultSettings returns the stock classroom configuration
func DefaultSettings() Settings {
	return Settings{
		PixelsPerMeter:  parameter.PixelsPerMeter,
		FrameRate:       parameter.FrameRate,
		ScoreThresholdM: parameter.ScoreThresholdMeters,

		DefaultSpeed:    parameter.DefaultSpeed,
		DefaultGravity:  parameter.DefaultGravity,
		DefaultAngleDeg: parameter.DefaultAngleDeg,

		LauncherStart:     vmath.V2(parameter.LauncherInitialX, parameter.GroundLineY),
		TargetStart:       vmath.V2(parameter.TargetInitialX, parameter.GroundLineY),
		GroundY:           parameter.GroundLineY,
		LauncherMaxRaiseM: parameter.LauncherMaxRaiseMeters,
		LaunchOffsetY:     parameter.LaunchOffsetY,
		ArrowPivotOffset:  vmath.V2(parameter.ArrowPivotOffsetX, parameter.ArrowPivotOffsetY),

		Extent: vmath.V2(parameter.CanvasWidth, parameter.CanvasHeight),
	}
}

// Validate rejects settings that would make the simulation undefined
// Degenerate launch values (zero or negative speed/gravity) stay legal
func (s Settings) Validate() error {
	if !positiveFinite(s.PixelsPerMeter) {
		return fmt.Errorf("pixels per meter must be positive, got %v", s.PixelsPerMeter)
	}
	if !positiveFinite(s.FrameRate) || s.FrameInterval() <= 0 {
		return fmt.Errorf("frame rate must be positive with a non-zero frame interval, got %v", s.FrameRate)
	}
	if !positiveFinite(s.ScoreThresholdM) {
		return fmt.Errorf("score threshold must be positive, got %v", s.ScoreThresholdM)
	}
	if s.LauncherMaxRaiseM < 0 {
		return fmt.Errorf("launcher max raise must not be negative, got %v", s.LauncherMaxRaiseM)
	}
	if s.Extent[0] <= 0 || s.Extent[1] <= 0 {
		return fmt.Errorf("extent must be positive, got %v", s.Extent)
	}
	return nil
}

func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

// Timestep is the fixed simulation step in seconds
func (s Settings) Timestep() float64 {
	return 1 / s.FrameRate
}

// FrameInterval is the wall-clock period of one step; fractional frame rates are kept exact
func (s Settings) FrameInterval() time.Duration {
	return time.Duration(float64(time.Second) / s.FrameRate)
}

// LauncherMinY is the highest (smallest y) the launcher may be dragged to
func (s Settings) LauncherMinY() float64 {
	return s.GroundY - s.LauncherMaxRaiseM*s.PixelsPerMeter
}

// FormatDefault renders a default value the way the field shows it ("11.5", "9.8")
func FormatDefault(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatAngle renders an indicator angle with one decimal place
func FormatAngle(deg float64) string {
	return strconv.FormatFloat(deg, 'f', 1, 64)
}
