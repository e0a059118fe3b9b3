package physics

import (
	"math"
	"testing"

	"github.com/lixenwraith/trajectory/vmath"
)

func TestParticleFallsAndBounces(t *testing.T) {
	p := NewParticle(vmath.V2(400, 100), 1)
	gravity := vmath.V2(0, 98)
	floorY, radius := 550.0, 10.0

	bounced := false
	for i := 0; i < 600 && !bounced; i++ {
		p.ApplyGravity(gravity)
		p.Update(1.0 / 60)
		bounced = p.BounceFloor(floorY, radius, 0.8)
	}

	if !bounced {
		t.Fatal("Expected particle to reach the floor")
	}
	if p.Pos[1] != floorY-radius {
		t.Errorf("Expected particle resting on floor at %v, got %v", floorY-radius, p.Pos[1])
	}
	if p.Vel[1] >= 0 {
		t.Errorf("Expected upward velocity after bounce, got %v", p.Vel[1])
	}
}

func TestBounceRestitution(t *testing.T) {
	p := NewParticle(vmath.V2(0, 545), 2)
	p.Vel = vmath.V2(0, 50)

	if !p.BounceFloor(550, 10, 0.8) {
		t.Fatal("Expected bounce when overlapping floor")
	}
	if math.Abs(p.Vel[1]+40) > 1e-12 {
		t.Errorf("Expected vy -40 after 0.8 restitution, got %v", p.Vel[1])
	}

	p.Pos[1] = 100
	if p.BounceFloor(550, 10, 0.8) {
		t.Error("Expected no bounce above the floor")
	}
}

func TestParticleMassScalesForce(t *testing.T) {
	light := NewParticle(vmath.V2(0, 0), 1)
	heavy := NewParticle(vmath.V2(0, 0), 4)
	force := vmath.V2(8, 0)

	light.ApplyForce(force)
	heavy.ApplyForce(force)
	light.Update(1)
	heavy.Update(1)

	if light.Vel[0] != 8 || heavy.Vel[0] != 2 {
		t.Errorf("Expected a = F/m (8 and 2), got %v and %v", light.Vel[0], heavy.Vel[0])
	}
}
