package vmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vec2 is a float64 2D vector, meters or pixels depending on the caller
// Y grows downward in both frames
type Vec2 = mgl64.Vec2

// V2 builds a Vec2 from components
func V2(x, y float64) Vec2 {
	return Vec2{x, y}
}

// Distance returns the Euclidean distance between a and b
func Distance(a, b Vec2) float64 {
	return b.Sub(a).Len()
}

// ToMeters converts a pixel-space vector to meters using pixels-per-meter scale
func ToMeters(px Vec2, scale float64) Vec2 {
	return Vec2{px[0] / scale, px[1] / scale}
}

// ToPixels converts a meter-space vector to pixels using pixels-per-meter scale
func ToPixels(m Vec2, scale float64) Vec2 {
	return m.Mul(scale)
}

// DegToRad converts degrees to radians
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// RadToDeg converts radians to degrees
func RadToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}

// NormalizeDegrees wraps an angle into [0, 360)
func NormalizeDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	// -0.0 and float rounding of values just below 0 land on 360
	if deg >= 360 {
		deg = 0
	}
	return deg
}

// Heading returns the direction from pivot to p in degrees where 0 points up
// and angles grow clockwise on a y-down screen
func Heading(pivot, p Vec2) float64 {
	d := p.Sub(pivot)
	return NormalizeDegrees(RadToDeg(math.Atan2(d[1], d[0])) + 90)
}

// HeadingVector returns the unit vector for a heading in degrees (0 = up, clockwise)
func HeadingVector(deg float64) Vec2 {
	rad := DegToRad(deg)
	return Vec2{math.Sin(rad), -math.Cos(rad)}
}

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
