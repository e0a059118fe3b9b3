package physics

import (
	"math"

	"github.com/lixenwraith/trajectory/core"
	"github.com/lixenwraith/trajectory/vmath"
)

// Projectile is a ball launched under constant downward gravity
// All quantities are in meters and seconds; y grows downward
type Projectile struct {
	kinetic        core.Kinetic
	gravity        float64
	pixelsPerMeter float64

	origin     vmath.Vec2
	flightTime float64
	apexY      float64
}

// NewProjectile creates a projectile at originM with launch speed (m/s), launch angle
// (degrees, 0 = right, 90 = up), gravity magnitude (m/s², positive pulls down) and scale
// Negative speed or gravity is accepted and simply flips the respective direction
func NewProjectile(originM vmath.Vec2, speed, angleDeg, gravity, pixelsPerMeter float64) *Projectile {
	rad := vmath.DegToRad(angleDeg)
	return &Projectile{
		kinetic: core.Kinetic{
			Pos: originM,
			// Negative y is up in screen frame
			Vel: vmath.V2(speed*math.Cos(rad), -speed*math.Sin(rad)),
		},
		gravity:        gravity,
		pixelsPerMeter: pixelsPerMeter,
		origin:         originM,
		apexY:          originM[1],
	}
}

// Step advances the projectile by dt seconds
func (p *Projectile) Step(dt float64) {
	p.kinetic.Accel = vmath.V2(0, p.gravity)
	Integrate(&p.kinetic, dt)
	p.flightTime += dt
	if p.kinetic.Pos[1] < p.apexY {
		p.apexY = p.kinetic.Pos[1]
	}
}

// IsScored reports whether the projectile is strictly closer than thresholdM to targetM
func (p *Projectile) IsScored(targetM vmath.Vec2, thresholdM float64) bool {
	return vmath.Distance(p.kinetic.Pos, targetM) < thresholdM
}

// IsOutOfBounds reports whether the projectile left [0,maxXM] x [0,maxYM]
// Points on the boundary are in bounds
func (p *Projectile) IsOutOfBounds(maxXM, maxYM float64) bool {
	pos := p.kinetic.Pos
	return pos[0] < 0 || pos[0] > maxXM || pos[1] < 0 || pos[1] > maxYM
}

// Position returns the current position in meters
func (p *Projectile) Position() vmath.Vec2 {
	return p.kinetic.Pos
}

// Velocity returns the current velocity in meters per second
func (p *Projectile) Velocity() vmath.Vec2 {
	return p.kinetic.Vel
}

// PositionPx returns the current position in canvas pixels
func (p *Projectile) PositionPx() vmath.Vec2 {
	return vmath.ToPixels(p.kinetic.Pos, p.pixelsPerMeter)
}

// Gravity returns the gravity magnitude in m/s²
func (p *Projectile) Gravity() float64 {
	return p.gravity
}

// FlightTime returns the simulated seconds since launch
func (p *Projectile) FlightTime() float64 {
	return p.flightTime
}

// ApexHeight returns how far above the launch point the projectile climbed, in meters
func (p *Projectile) ApexHeight() float64 {
	return p.origin[1] - p.apexY
}
