package physics

import (
	"github.com/lixenwraith/trajectory/core"
	"github.com/lixenwraith/trajectory/vmath"
)

// Particle is a point mass driven by accumulated forces
type Particle struct {
	core.Kinetic
	Mass float64
}

// NewParticle creates a particle at rest with the given mass
func NewParticle(pos vmath.Vec2, mass float64) *Particle {
	return &Particle{
		Kinetic: core.Kinetic{Pos: pos},
		Mass:    mass,
	}
}

// ApplyForce accumulates force for the next Update
func (p *Particle) ApplyForce(force vmath.Vec2) {
	ApplyForce(&p.Kinetic, force, p.Mass)
}

// ApplyGravity applies weight m*g for a downward acceleration g
func (p *Particle) ApplyGravity(g vmath.Vec2) {
	p.ApplyForce(g.Mul(p.Mass))
}

// Update integrates one step and clears accumulated forces
func (p *Particle) Update(dt float64) {
	Integrate(&p.Kinetic, dt)
}

// BounceFloor reflects the particle off a horizontal floor at floorY
// Vertical speed is scaled by restitution and the particle is placed on the floor
// Returns true if a bounce occurred
func (p *Particle) BounceFloor(floorY, radius, restitution float64) bool {
	if p.Pos[1]+radius < floorY {
		return false
	}
	p.Vel[1] = -p.Vel[1] * restitution
	p.Pos[1] = floorY - radius
	return true
}
