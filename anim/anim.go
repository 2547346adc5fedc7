// Package anim holds the per-frame animation state of the spinning square.
package anim

import "math"

const (
	// RotationRate is the square's angular speed in radians per second.
	RotationRate = 2.0
	// HueRate is the color cycling speed in degrees per second.
	HueRate = 30.0
)

// State is the animation state. The zero value is the startup state.
//
// Neither accumulator is wrapped: Rotation grows without bound and Hue grows
// by an increment already reduced modulo 360. Consumers reduce on read.
type State struct {
	Rotation float64 // radians
	Hue      float64 // degrees
}

// Advance moves the state forward by dt seconds. dt must be non-negative
// and finite.
func (s *State) Advance(dt float64) {
	s.Rotation += RotationRate * dt
	s.Hue += math.Mod(HueRate*dt, 360.0)
}
