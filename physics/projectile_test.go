package physics

import (
	"math"
	"testing"

	"github.com/lixenwraith/trajectory/vmath"
)

func TestNewProjectileInitialVelocity(t *testing.T) {
	tests := []struct {
		name   string
		speed  float64
		angle  float64
		wantVX float64
		wantVY float64
	}{
		{"rightward", 10, 0, 10, 0},
		{"straight up", 10, 90, 0, -10},
		{"diagonal", 10, 45, 10 * math.Sqrt2 / 2, -10 * math.Sqrt2 / 2},
		{"negative speed points backward", -10, 0, -10, 0},
		{"zero speed", 0, 30, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := NewProjectile(vmath.V2(0, 0), tc.speed, tc.angle, 9.8, 100)
			v := p.Velocity()
			if math.Abs(v[0]-tc.wantVX) > 1e-9 || math.Abs(v[1]-tc.wantVY) > 1e-9 {
				t.Errorf("Expected velocity (%v, %v), got %v", tc.wantVX, tc.wantVY, v)
			}
		})
	}
}

func TestProjectileStepAppliesDownwardGravity(t *testing.T) {
	p := NewProjectile(vmath.V2(1, 5), 0, 0, 9.8, 100)
	dt := 1.0 / 60

	p.Step(dt)

	wantVY := 9.8 * dt
	if math.Abs(p.Velocity()[1]-wantVY) > 1e-12 {
		t.Errorf("Expected vy %v, got %v", wantVY, p.Velocity()[1])
	}
	if math.Abs(p.Position()[1]-(5+wantVY*dt)) > 1e-12 {
		t.Errorf("Expected semi-implicit position, got %v", p.Position()[1])
	}
	if p.Position()[0] != 1 {
		t.Errorf("Expected x unchanged, got %v", p.Position()[0])
	}
	if math.Abs(p.FlightTime()-dt) > 1e-12 {
		t.Errorf("Expected flight time %v, got %v", dt, p.FlightTime())
	}
}

func TestProjectileNegativeGravityRises(t *testing.T) {
	p := NewProjectile(vmath.V2(5, 5), 0, 0, -9.8, 100)
	for i := 0; i < 10; i++ {
		p.Step(0.1)
	}
	if p.Position()[1] >= 5 {
		t.Errorf("Expected upward drift under negative gravity, got y=%v", p.Position()[1])
	}
	if p.ApexHeight() <= 0 {
		t.Errorf("Expected positive apex height, got %v", p.ApexHeight())
	}
}

func TestIsScoredThreshold(t *testing.T) {
	r := 1.1
	p := NewProjectile(vmath.V2(0, 0), 0, 0, 0, 100)

	if p.IsScored(vmath.V2(r, 0), r) {
		t.Error("Expected distance exactly at threshold to not score")
	}
	if !p.IsScored(vmath.V2(r-1e-9, 0), r) {
		t.Error("Expected distance just under threshold to score")
	}
	if !p.IsScored(vmath.V2(0, -(r - 1e-9)), r) {
		t.Error("Expected scoring to be symmetric in direction")
	}
	if p.IsScored(vmath.V2(3, 4), 5) {
		t.Error("Expected 3-4-5 distance at threshold 5 to not score")
	}
}

func TestIsOutOfBounds(t *testing.T) {
	maxX, maxY := 19.2, 10.8
	tests := []struct {
		name string
		pos  vmath.Vec2
		want bool
	}{
		{"origin is inside", vmath.V2(0, 0), false},
		{"far corner is inside", vmath.V2(maxX, maxY), false},
		{"center", vmath.V2(9, 5), false},
		{"past right edge", vmath.V2(maxX+1e-9, 5), true},
		{"past bottom edge", vmath.V2(5, maxY+1e-9), true},
		{"left of origin", vmath.V2(-1e-9, 5), true},
		{"above top", vmath.V2(5, -1e-9), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := NewProjectile(tc.pos, 0, 0, 0, 100)
			if got := p.IsOutOfBounds(maxX, maxY); got != tc.want {
				t.Errorf("IsOutOfBounds(%v) = %v, want %v", tc.pos, got, tc.want)
			}
		})
	}
}

func TestPositionPx(t *testing.T) {
	p := NewProjectile(vmath.V2(1.18, 5.49), 0, 0, 0, 100)
	px := p.PositionPx()
	if math.Abs(px[0]-118) > 1e-9 || math.Abs(px[1]-549) > 1e-9 {
		t.Errorf("Expected (118, 549) px, got %v", px)
	}
}

type flightResult struct {
	outcome string
	steps   int
	pos     vmath.Vec2
}

func fly(origin, target vmath.Vec2, threshold float64) flightResult {
	p := NewProjectile(origin, 11.5, 45, 9.8, 100)
	dt := 1.0 / 60
	for i := 1; i <= 100000; i++ {
		p.Step(dt)
		if p.IsScored(target, threshold) {
			return flightResult{"scored", i, p.Position()}
		}
		if p.IsOutOfBounds(19.2, 10.8) {
			return flightResult{"out", i, p.Position()}
		}
	}
	return flightResult{"none", 0, p.Position()}
}

func TestFlightDeterministic(t *testing.T) {
	target := vmath.V2(15.3, 6.9)

	// Launch from the top-left corner leaves the canvas upward on the first step
	first := fly(vmath.V2(0, 0), target, 1.1)
	if first.outcome != "out" || first.steps != 1 {
		t.Errorf("Expected out of bounds on step 1, got %+v", first)
	}

	for run := 0; run < 5; run++ {
		again := fly(vmath.V2(0, 0), target, 1.1)
		if again != first {
			t.Fatalf("Run %d diverged: %+v vs %+v", run, again, first)
		}
	}
}

func TestFlightReachesTarget(t *testing.T) {
	target := vmath.V2(15.3, 6.9)
	first := fly(vmath.V2(0, 5), target, 1.1)
	if first.outcome != "scored" {
		t.Fatalf("Expected scored, got %+v", first)
	}
	if first.steps != 107 {
		t.Errorf("Expected score on step 107, got %d", first.steps)
	}

	second := fly(vmath.V2(0, 5), target, 1.1)
	if math.Abs(second.pos[0]-first.pos[0]) > 1e-5 || math.Abs(second.pos[1]-first.pos[1]) > 1e-5 {
		t.Errorf("Expected reproducible final position, got %v vs %v", first.pos, second.pos)
	}
}
