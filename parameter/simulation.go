package parameter

import "time"

// Launch Defaults
const (
	// DefaultSpeed is the launch speed restored on reset (m/s)
	DefaultSpeed = 11.5
	// DefaultSpeedText is the speed field text restored on reset
	DefaultSpeedText = "11.5"

	// DefaultGravity is the gravity magnitude restored on reset (m/s², positive pulls down)
	DefaultGravity = 9.8
	// DefaultGravityText is the gravity field text restored on reset
	DefaultGravityText = "9.8"

	// DefaultAngleDeg is the indicator angle restored on reset (0 = up, clockwise)
	DefaultAngleDeg = 45.0
)

// Physics
const (
	// PixelsPerMeter converts canvas pixels to simulation meters
	PixelsPerMeter = 100.0

	// FrameRate fixes the simulation timestep at 1/FrameRate seconds
	FrameRate = 60

	// FrameInterval is the host frame period matching FrameRate
	FrameInterval = time.Second / FrameRate

	// ScoreThresholdMeters is the proximity that counts as reaching the target
	// Tunable; 0.2 and 1.1 are also playable
	ScoreThresholdMeters = 1.0
)

// Bounce Sandbox, canvas pixel units
const (
	BounceGravity     = 980.0
	BounceRadius      = 10.0
	BounceRestitution = 0.8
	BounceMass        = 1.0
	// BounceRestSpeed stops the ball once a bounce leaves less vertical speed than this
	BounceRestSpeed = 40.0
)
