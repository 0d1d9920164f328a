package geometry

import (
	"math"

	"github.com/golang/geo/r3"

	"github.com/jmv97/go-raygeom/pkg/core"
)

// NoHit is the sentinel distance reported when a ray misses a triangle.
// It compares greater than any real hit distance, so traversal code can keep
// the nearest hit with an ordinary < comparison.
const NoHit = math.MaxFloat64

// Intersect returns the ray parameter t at which the ray hits the triangle,
// or NoHit if it misses. Boundary hits count: the barycentric bounds u in
// [0,1], v in [0,1], u+v <= 1 and the distance bound t >= 0 are all
// inclusive. Back faces are not culled; rays hit either side of the triangle.
func (t Triangle) Intersect(ray core.Ray) float64 {
	tHit, _ := t.IntersectNormal(ray)
	return tHit
}

// IntersectNormal is Intersect, additionally returning the triangle's
// unnormalized geometric normal (B-A)x(C-A). The normal follows vertex
// winding and is not unit length; normalize it if unit length is required.
func (t Triangle) IntersectNormal(ray core.Ray) (float64, r3.Vector) {
	v1v0 := t.B.Sub(t.A)
	v2v0 := t.C.Sub(t.A)
	rov0 := ray.Origin.Sub(t.A)

	// Cramer-style solve with a single division by dot(direction, n).
	// A ray parallel to the plane divides by zero; the resulting non-finite
	// u, v and tHit fail the inclusive bounds below, which accept only
	// finite in-range values.
	n := v1v0.Cross(v2v0)
	q := rov0.Cross(ray.Direction)
	d := 1.0 / ray.Direction.Dot(n)

	u := -d * q.Dot(v2v0)
	v := d * q.Dot(v1v0)
	tHit := -d * n.Dot(rov0)

	if u >= 0 && u <= 1 && v >= 0 && v <= 1 && u+v <= 1 && tHit >= 0 {
		return tHit, n
	}
	return NoHit, n
}
