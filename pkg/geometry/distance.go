package geometry

import (
	"math"

	"github.com/golang/geo/r3"
)

// DistanceSquared returns the squared distance from a point to the nearest
// point on the triangle's bounded surface (not its infinite plane).
//
// Each edge gets a sign test telling whether the point projects outside it.
// If the point projects outside at least one edge the nearest point lies on
// one of the three segments; otherwise it is the perpendicular foot on the
// supporting plane.
func (t Triangle) DistanceSquared(p r3.Vector) float64 {
	v21 := t.B.Sub(t.A)
	p1 := p.Sub(t.A)
	v32 := t.C.Sub(t.B)
	p2 := p.Sub(t.B)
	v13 := t.A.Sub(t.C)
	p3 := p.Sub(t.C)
	nor := v21.Cross(v13)

	inside := sign(v21.Cross(nor).Dot(p1)) +
		sign(v32.Cross(nor).Dot(p2)) +
		sign(v13.Cross(nor).Dot(p3))
	if inside < 2 {
		return math.Min(
			segmentDistanceSquared(v21, p1),
			math.Min(
				segmentDistanceSquared(v32, p2),
				segmentDistanceSquared(v13, p3)))
	}

	d := nor.Dot(p1)
	return d * d / nor.Norm2()
}

// Distance returns the distance from a point to the nearest point on the
// triangle's bounded surface
func (t Triangle) Distance(p r3.Vector) float64 {
	return math.Sqrt(t.DistanceSquared(p))
}

// Contains reports whether a point lying in the triangle's plane falls
// inside the triangle, boundary included. The point is assumed to be
// in-plane already; this is not a general 3D containment test.
func (t Triangle) Contains(p r3.Vector) bool {
	a := t.A.Sub(p)
	b := t.B.Sub(p)
	c := t.C.Sub(p)

	// Sub-triangle normals all point the same way iff p is inside
	u := b.Cross(c)
	v := c.Cross(a)
	w := a.Cross(b)

	return u.Dot(v) >= 0 && u.Dot(w) >= 0
}

// ClosestPoint returns the nearest point on the bounded triangle to p.
// When p projects inside the triangle the projection is returned directly;
// otherwise the nearest of the three edge segments wins, exact ties going to
// the earlier edge in the order AB, BC, CA.
func (t Triangle) ClosestPoint(p r3.Vector) r3.Vector {
	n := t.Normal()
	projected := p.Sub(n.Mul(n.Dot(p.Sub(t.A))))
	if t.Contains(projected) {
		return projected
	}

	closest := closestPointOnSegment(t.A, t.B, p)
	bestDist := p.Sub(closest).Norm2()

	if c := closestPointOnSegment(t.B, t.C, p); p.Sub(c).Norm2() < bestDist {
		closest = c
		bestDist = p.Sub(c).Norm2()
	}
	if c := closestPointOnSegment(t.C, t.A, p); p.Sub(c).Norm2() < bestDist {
		closest = c
	}
	return closest
}

// closestPointOnSegment returns the point on segment [start, end] nearest
// to p, clamping the projection factor to [0, 1]
func closestPointOnSegment(start, end, p r3.Vector) r3.Vector {
	edge := end.Sub(start)
	h := clamp01(p.Sub(start).Dot(edge) / edge.Norm2())
	return start.Add(edge.Mul(h))
}

// segmentDistanceSquared returns the squared distance from a point to a
// segment, with both expressed relative to the segment start
func segmentDistanceSquared(edge, p r3.Vector) float64 {
	h := clamp01(p.Dot(edge) / edge.Norm2())
	return edge.Mul(h).Sub(p).Norm2()
}

func clamp01(x float64) float64 {
	return math.Max(0, math.Min(1, x))
}

func sign(x float64) float64 {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}
