package session

import (
	"github.com/lixenwraith/trajectory/core"
	"github.com/lixenwraith/trajectory/vmath"
)

// Region is an on-screen hit-test shape in canvas pixels
type Region interface {
	Contains(p vmath.Vec2) bool
}

// Rect is an axis-aligned Region
type Rect core.Area

// Contains reports whether p lies inside r, edges inclusive
func (r Rect) Contains(p vmath.Vec2) bool {
	return vmath.AreaContains(core.Area(r), p)
}

// Regions are the hit-test shapes for one frame, supplied by the presentation layer
// A nil Region is never hit
type Regions struct {
	Start    Region
	Reset    Region
	Launcher Region
	Target   Region
	Speed    Region
	Gravity  Region
	Angle    Region
}

// Layout produces hit-test regions for the current view
type Layout interface {
	Regions(v View) Regions
}

// Hit is the result of routing a pointer-down through the regions
type Hit uint8

const (
	HitNone Hit = iota
	HitStart
	HitReset
	HitLauncher
	HitTarget
	HitSpeed
	HitGravity
	HitAngle
)

func contains(r Region, p vmath.Vec2) bool {
	return r != nil && r.Contains(p)
}

// HitConfiguring resolves a pointer-down while configuring
// Priority: start, launcher, target, speed field, gravity field, angle indicator
func (r Regions) HitConfiguring(p vmath.Vec2) Hit {
	switch {
	case contains(r.Start, p):
		return HitStart
	case contains(r.Launcher, p):
		return HitLauncher
	case contains(r.Target, p):
		return HitTarget
	case contains(r.Speed, p):
		return HitSpeed
	case contains(r.Gravity, p):
		return HitGravity
	case contains(r.Angle, p):
		return HitAngle
	}
	return HitNone
}

// HitFinished resolves a pointer-down after a run ended; only reset is live
func (r Regions) HitFinished(p vmath.Vec2) Hit {
	if contains(r.Reset, p) {
		return HitReset
	}
	return HitNone
}
