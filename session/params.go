package session

import "github.com/lixenwraith/trajectory/vmath"

// Params is the mutable scene configuration edited while configuring
type Params struct {
	// Launcher moves vertically only
	Launcher vmath.Vec2
	// Target moves horizontally only
	Target vmath.Vec2
	// AngleDeg is the indicator angle, 0 = up, clockwise, in [0,360)
	AngleDeg float64
	// AngleText is the read-only display of AngleDeg
	AngleText string
}

func defaultParams(s Settings) Params {
	return Params{
		Launcher:  s.LauncherStart,
		Target:    s.TargetStart,
		AngleDeg:  s.DefaultAngleDeg,
		AngleText: FormatAngle(s.DefaultAngleDeg),
	}
}

// AnglePivot returns the point the angle indicator rotates around
func (p Params) AnglePivot(s Settings) vmath.Vec2 {
	return p.Launcher.Add(s.ArrowPivotOffset)
}

// LaunchAngle converts the indicator convention (0 = up, clockwise) to the physics
// convention (0 = right, 90 = up)
func LaunchAngle(indicatorDeg float64) float64 {
	return 90 - indicatorDeg
}
