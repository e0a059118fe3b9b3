package core

// Area represents a rectangular region in canvas pixels
type Area struct {
	X, Y          float64 // Top-left corner
	Width, Height float64
}

// Empty reports whether the area has no extent
func (a Area) Empty() bool {
	return a.Width <= 0 || a.Height <= 0
}
