package session

import "github.com/lixenwraith/trajectory/vmath"

// Drag converts pointer motion into constrained parameter edits
// The active drag target is the session Focus; Drag only keeps the grab offset
type Drag struct {
	offset vmath.Vec2
}

// Begin captures the offset between the grabbed anchor and the pointer
func (d *Drag) Begin(anchor, pointer vmath.Vec2) {
	d.offset = anchor.Sub(pointer)
}

// Move applies pointer p to params for the given drag focus
// Returns true if params changed
func (d *Drag) Move(focus Focus, params *Params, s Settings, p vmath.Vec2) bool {
	switch focus {
	case FocusDragLauncher:
		y := vmath.Clamp(p[1]+d.offset[1], s.LauncherMinY(), s.GroundY)
		changed := y != params.Launcher[1]
		params.Launcher[1] = y
		return changed

	case FocusDragTarget:
		x := p[0] + d.offset[0]
		changed := x != params.Target[0]
		params.Target[0] = x
		return changed

	case FocusDragAngle:
		// Absolute: the indicator points at the pointer, the captured offset is unused
		deg := vmath.Heading(params.AnglePivot(s), p)
		changed := deg != params.AngleDeg
		params.AngleDeg = deg
		params.AngleText = FormatAngle(deg)
		return changed
	}
	return false
}
