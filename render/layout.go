package render

import (
	"github.com/lixenwraith/trajectory/core"
	"github.com/lixenwraith/trajectory/parameter"
	"github.com/lixenwraith/trajectory/session"
	"github.com/lixenwraith/trajectory/vmath"
)

// Layout owns the on-screen geometry of controls and scene objects in canvas pixels
type Layout struct{}

// StartButton returns the simulate control
func (Layout) StartButton() core.Area {
	return core.Area{X: parameter.StartButtonX, Y: parameter.ButtonY, Width: parameter.ButtonWidth, Height: parameter.ButtonHeight}
}

// ResetButton returns the reset control
func (Layout) ResetButton() core.Area {
	return core.Area{X: parameter.ResetButtonX, Y: parameter.ButtonY, Width: parameter.ButtonWidth, Height: parameter.ButtonHeight}
}

func fieldArea(extent vmath.Vec2, y float64) core.Area {
	return core.Area{X: extent[0] - parameter.FieldRightInset, Y: y, Width: parameter.FieldWidth, Height: parameter.FieldHeight}
}

// SpeedField returns the speed text box
func (Layout) SpeedField(extent vmath.Vec2) core.Area {
	return fieldArea(extent, parameter.SpeedFieldY)
}

// AngleField returns the read-only angle display
func (Layout) AngleField(extent vmath.Vec2) core.Area {
	return fieldArea(extent, parameter.AngleFieldY)
}

// GravityField returns the gravity text box
func (Layout) GravityField(extent vmath.Vec2) core.Area {
	return fieldArea(extent, parameter.GravityFieldY)
}

// LauncherBox returns the launcher body centered on its anchor
func (Layout) LauncherBox(anchor vmath.Vec2) core.Area {
	return vmath.AreaAround(anchor, parameter.LauncherWidth, parameter.LauncherHeight)
}

// TargetBox returns the target body centered on its anchor
func (Layout) TargetBox(anchor vmath.Vec2) core.Area {
	return vmath.AreaAround(anchor, parameter.TargetWidth, parameter.TargetHeight)
}

// ArrowTip returns the end of the angle indicator
func (Layout) ArrowTip(pivot vmath.Vec2, deg float64) vmath.Vec2 {
	return pivot.Add(vmath.HeadingVector(deg).Mul(parameter.ArrowLength))
}

// ArrowBox returns the padded bounds of the angle indicator
func (l Layout) ArrowBox(pivot vmath.Vec2, deg float64) core.Area {
	return vmath.AreaBounding(pivot, l.ArrowTip(pivot, deg), parameter.ArrowHitPadding)
}

// Regions implements session.Layout
func (l Layout) Regions(v session.View) session.Regions {
	return session.Regions{
		Start:    session.Rect(l.StartButton()),
		Reset:    session.Rect(l.ResetButton()),
		Launcher: session.Rect(l.LauncherBox(v.Launcher)),
		Target:   session.Rect(l.TargetBox(v.Target)),
		Speed:    session.Rect(l.SpeedField(v.Extent)),
		Gravity:  session.Rect(l.GravityField(v.Extent)),
		Angle:    session.Rect(l.ArrowBox(v.AnglePivot, v.AngleDeg)),
	}
}
