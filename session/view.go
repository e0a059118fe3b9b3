package session

import (
	"math"

	"github.com/google/uuid"

	"github.com/lixenwraith/trajectory/core"
	"github.com/lixenwraith/trajectory/vmath"
)

// View is the read-only per-frame state handed to the presentation layer
type View struct {
	Phase   core.Phase
	Outcome core.Outcome
	Focus   Focus
	RunID   uuid.UUID

	Launcher   vmath.Vec2
	Target     vmath.Vec2
	AnglePivot vmath.Vec2
	AngleDeg   float64
	AngleText  string

	SpeedText     string
	GravityText   string
	SpeedActive   bool
	GravityActive bool

	// Ball is valid only when HasBall
	HasBall bool
	Ball    vmath.Vec2

	// DistanceM and HeightM are the launcher-to-target separations
	DistanceM float64
	HeightM   float64

	FlightTime float64
	ApexM      float64

	Extent vmath.Vec2
}

// View snapshots the controller state
func (c *Controller) View() View {
	v := View{
		Phase:   c.phase,
		Outcome: c.outcome,
		Focus:   c.focus,
		RunID:   c.runID,

		Launcher:   c.params.Launcher,
		Target:     c.params.Target,
		AnglePivot: c.params.AnglePivot(c.settings),
		AngleDeg:   c.params.AngleDeg,
		AngleText:  c.params.AngleText,

		SpeedText:     c.speed.Text(),
		GravityText:   c.gravity.Text(),
		SpeedActive:   c.focus == FocusEditSpeed,
		GravityActive: c.focus == FocusEditGravity,

		DistanceM: math.Abs(c.params.Launcher[0]-c.params.Target[0]) / c.settings.PixelsPerMeter,
		HeightM:   math.Abs(c.params.Launcher[1]-c.params.Target[1]) / c.settings.PixelsPerMeter,

		Extent: c.extent,
	}
	if c.body != nil {
		v.HasBall = true
		v.Ball = c.body.PositionPx()
		v.FlightTime = c.body.FlightTime()
		v.ApexM = c.body.ApexHeight()
	}
	return v
}
