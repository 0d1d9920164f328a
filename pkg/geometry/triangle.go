package geometry

import (
	"fmt"
	"math"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
)

// Triangle represents a single triangle defined by three vertices.
// It is a plain value type: every query is a pure function of the three
// stored vertices, so triangles can be shared across any number of
// goroutines without coordination.
type Triangle struct {
	A, B, C r3.Vector
}

// NewTriangle creates a new triangle from three vertices
func NewTriangle(a, b, c r3.Vector) Triangle {
	return Triangle{A: a, B: b, C: c}
}

// SurfaceArea returns the area of the triangle, 0.5*|(B-A)x(C-A)|.
// Degenerate triangles (collinear or coincident vertices) report exactly zero.
func (t Triangle) SurfaceArea() float64 {
	return t.B.Sub(t.A).Cross(t.C.Sub(t.A)).Norm() * 0.5
}

// GeometricNormal returns the unnormalized normal (B-A)x(C-A).
// Its direction follows vertex winding; it is not guaranteed outward-facing.
func (t Triangle) GeometricNormal() r3.Vector {
	return t.B.Sub(t.A).Cross(t.C.Sub(t.A))
}

// Normal returns the unit normal of the triangle's plane.
// For a degenerate triangle the cross product is the zero vector and the
// components come back non-finite; callers that may encounter zero-area
// triangles should check SurfaceArea() > 0 first.
func (t Triangle) Normal() r3.Vector {
	n := t.GeometricNormal()
	return n.Mul(1 / n.Norm())
}

// Centroid returns the centroid (A+B+C)/3
func (t Triangle) Centroid() r3.Vector {
	return t.A.Add(t.B).Add(t.C).Mul(1.0 / 3.0)
}

// CentroidAxis returns the centroid coordinate along a single axis
// (0=X, 1=Y, 2=Z). Equals the corresponding component of Centroid().
func (t Triangle) CentroidAxis(axis int) float64 {
	c := t.Centroid()
	switch axis {
	case 0:
		return c.X
	case 1:
		return c.Y
	default:
		return c.Z
	}
}

// Vertices returns the ordered vertex triple [A, B, C]
func (t Triangle) Vertices() [3]r3.Vector {
	return [3]r3.Vector{t.A, t.B, t.C}
}

// EdgeLengths returns the lengths of edges AB, BC and CA
func (t Triangle) EdgeLengths() [3]float64 {
	return [3]float64{
		t.B.Sub(t.A).Norm(),
		t.C.Sub(t.B).Norm(),
		t.A.Sub(t.C).Norm(),
	}
}

// Perimeter returns the total length of the three edges
func (t Triangle) Perimeter() float64 {
	lengths := t.EdgeLengths()
	return lengths[0] + lengths[1] + lengths[2]
}

// BoundingBox returns the axis-aligned bounding box for this triangle
func (t Triangle) BoundingBox() AABB {
	return NewAABBFromPoints(t.A, t.B, t.C)
}

// SampleUniform maps a sample pair in [0,1)x[0,1) to a point on the triangle,
// distributed uniformly with respect to surface area. It uses the square-root
// barycentric transform: the three implicit weights sum to 1, so the result
// always lies in the triangle's plane within its convex hull. Inputs outside
// the unit square are not validated and extrapolate outside the triangle.
func (t Triangle) SampleUniform(sample r2.Point) r3.Vector {
	sx := math.Sqrt(sample.X)
	f0 := 1 - sx
	f1 := sx * (1 - sample.Y)
	f2 := sx * sample.Y
	return t.A.Mul(f0).Add(t.B.Mul(f1)).Add(t.C.Mul(f2))
}

// Barycoord returns the barycentric coordinates of a point assumed to lie in
// the triangle's plane. A degenerate triangle has no meaningful coordinates;
// those return (-2, -1, -1), which fails every containment bound.
func (t Triangle) Barycoord(p r3.Vector) r3.Vector {
	v0 := t.C.Sub(t.A)
	v1 := t.B.Sub(t.A)
	v2 := p.Sub(t.A)

	dot00 := v0.Dot(v0)
	dot01 := v0.Dot(v1)
	dot02 := v0.Dot(v2)
	dot11 := v1.Dot(v1)
	dot12 := v1.Dot(v2)

	denom := dot00*dot11 - dot01*dot01
	if denom == 0 {
		return r3.Vector{X: -2, Y: -1, Z: -1}
	}

	invDenom := 1 / denom
	u := (dot11*dot02 - dot01*dot12) * invDenom
	v := (dot00*dot12 - dot01*dot02) * invDenom
	return r3.Vector{X: 1 - u - v, Y: v, Z: u}
}

// String returns a debug representation of the triangle
func (t Triangle) String() string {
	return fmt.Sprintf("[a=[%v,%v,%v], b=[%v,%v,%v], c=[%v,%v,%v]]",
		t.A.X, t.A.Y, t.A.Z,
		t.B.X, t.B.Y, t.B.Z,
		t.C.X, t.C.Y, t.C.Z)
}
