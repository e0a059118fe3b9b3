package vmath

import (
	"math"

	"github.com/lixenwraith/trajectory/core"
)

// AreaCenter returns the center point of the area
func AreaCenter(a core.Area) Vec2 {
	return Vec2{a.X + a.Width/2, a.Y + a.Height/2}
}

// AreaContains checks if point is within area, edges inclusive
func AreaContains(a core.Area, p Vec2) bool {
	return p[0] >= a.X && p[0] <= a.X+a.Width && p[1] >= a.Y && p[1] <= a.Y+a.Height
}

// AreaAround returns an area of the given size centered on c
func AreaAround(c Vec2, width, height float64) core.Area {
	return core.Area{X: c[0] - width/2, Y: c[1] - height/2, Width: width, Height: height}
}

// AreaBounding returns the smallest area covering both points, grown by pad on every side
func AreaBounding(a, b Vec2, pad float64) core.Area {
	minX, maxX := math.Min(a[0], b[0]), math.Max(a[0], b[0])
	minY, maxY := math.Min(a[1], b[1]), math.Max(a[1], b[1])
	return core.Area{
		X:      minX - pad,
		Y:      minY - pad,
		Width:  maxX - minX + 2*pad,
		Height: maxY - minY + 2*pad,
	}
}
