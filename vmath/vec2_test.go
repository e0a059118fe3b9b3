package vmath

import (
	"math"
	"testing"

	"github.com/lixenwraith/trajectory/core"
)

func TestHeading(t *testing.T) {
	pivot := V2(100, 100)
	tests := []struct {
		name string
		p    Vec2
		want float64
	}{
		{"up", V2(100, 50), 0},
		{"right", V2(150, 100), 90},
		{"down", V2(100, 150), 180},
		{"left", V2(50, 100), 270},
		{"up-right", V2(150, 50), 45},
		{"up-left", V2(50, 50), 315},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Heading(pivot, tc.p)
			if math.Abs(got-tc.want) > 1e-9 {
				t.Errorf("Heading(%v) = %v, want %v", tc.p, got, tc.want)
			}
			if got < 0 || got >= 360 {
				t.Errorf("Heading out of [0,360): %v", got)
			}
		})
	}
}

func TestHeadingVectorInvertsHeading(t *testing.T) {
	pivot := V2(0, 0)
	for _, deg := range []float64{0, 30, 90, 135, 200, 315} {
		tip := pivot.Add(HeadingVector(deg).Mul(120))
		if got := Heading(pivot, tip); math.Abs(got-deg) > 1e-9 {
			t.Errorf("Heading(HeadingVector(%v)) = %v", deg, got)
		}
	}
}

func TestNormalizeDegrees(t *testing.T) {
	tests := map[float64]float64{
		0:    0,
		45:   45,
		360:  0,
		-90:  270,
		725:  5,
		-720: 0,
	}
	for in, want := range tests {
		if got := NormalizeDegrees(in); math.Abs(got-want) > 1e-9 {
			t.Errorf("NormalizeDegrees(%v) = %v, want %v", in, got, want)
		}
	}
}

func TestUnitConversion(t *testing.T) {
	px := V2(1550, 800)
	m := ToMeters(px, 100)
	if m != V2(15.5, 8) {
		t.Errorf("Expected (15.5, 8) m, got %v", m)
	}
	if back := ToPixels(m, 100); back != px {
		t.Errorf("Expected round trip to %v, got %v", px, back)
	}
	if d := Distance(V2(0, 0), V2(3, 4)); d != 5 {
		t.Errorf("Expected distance 5, got %v", d)
	}
}

func TestClamp(t *testing.T) {
	if Clamp(5, 0, 10) != 5 || Clamp(-1, 0, 10) != 0 || Clamp(11, 0, 10) != 10 {
		t.Error("Clamp returned value outside expectations")
	}
}

func TestAreaContains(t *testing.T) {
	a := core.Area{X: 10, Y: 20, Width: 100, Height: 50}

	if !AreaContains(a, V2(10, 20)) || !AreaContains(a, V2(110, 70)) {
		t.Error("Expected edges to be inside")
	}
	if AreaContains(a, V2(9.9, 30)) || AreaContains(a, V2(50, 70.1)) {
		t.Error("Expected points past the edges to be outside")
	}
	if c := AreaCenter(a); c != V2(60, 45) {
		t.Errorf("Expected center (60,45), got %v", c)
	}
}

func TestAreaAroundAndBounding(t *testing.T) {
	a := AreaAround(V2(100, 100), 20, 40)
	if a != (core.Area{X: 90, Y: 80, Width: 20, Height: 40}) {
		t.Errorf("Unexpected AreaAround result %+v", a)
	}

	b := AreaBounding(V2(50, 10), V2(10, 30), 5)
	if b != (core.Area{X: 5, Y: 5, Width: 50, Height: 30}) {
		t.Errorf("Unexpected AreaBounding result %+v", b)
	}
}
