package core

import "github.com/golang/geo/r3"

// Ray represents a ray with an origin and direction
type Ray struct {
	Origin    r3.Vector
	Direction r3.Vector
}

// NewRay creates a new ray
func NewRay(origin, direction r3.Vector) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) r3.Vector {
	return r.Origin.Add(r.Direction.Mul(t))
}
