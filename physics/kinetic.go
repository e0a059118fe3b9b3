package physics

import (
	"github.com/lixenwraith/trajectory/core"
	"github.com/lixenwraith/trajectory/vmath"
)

// Step performs semi-implicit Euler integration: v' = v + a*dt; p' = p + v'*dt
// Velocity is updated first and the updated velocity moves the position
func Step(pos, vel, acc vmath.Vec2, dt float64) (newPos, newVel vmath.Vec2) {
	newVel = vel.Add(acc.Mul(dt))
	newPos = pos.Add(newVel.Mul(dt))
	return newPos, newVel
}

// Integrate advances k by dt and clears the accumulated acceleration
// Forces must be re-applied before every step
func Integrate(k *core.Kinetic, dt float64) vmath.Vec2 {
	k.Pos, k.Vel = Step(k.Pos, k.Vel, k.Accel, dt)
	k.Accel = vmath.Vec2{}
	return k.Pos
}

// ApplyForce accumulates a = F/m
// Zero mass is treated as immovable
func ApplyForce(k *core.Kinetic, force vmath.Vec2, mass float64) {
	if mass == 0 {
		return
	}
	k.Accel = k.Accel.Add(force.Mul(1 / mass))
}

// ApplyImpulse adds velocity delta (momentum transfer)
func ApplyImpulse(k *core.Kinetic, dv vmath.Vec2) {
	k.Vel = k.Vel.Add(dv)
}

// SetImpulse overrides velocity (hard redirect)
func SetImpulse(k *core.Kinetic, v vmath.Vec2) {
	k.Vel = v
}
