package core

import "github.com/go-gl/mathgl/mgl64"

// Kinetic is a point-mass motion state
type Kinetic struct {
	// Pos in meters, y grows downward
	Pos mgl64.Vec2
	// Vel in meters per second
	Vel mgl64.Vec2
	// Accel in meters per second squared, accumulated by forces between steps
	Accel mgl64.Vec2
}
