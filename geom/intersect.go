package geom

import "github.com/arl/gogeo/f32/d3"

const epsilon = 1e-6

// cross2D returns the z component of (b-a) x (d-c), i.e. the standard
// 2D cross product of the two segment direction vectors. It is built
// on gogeo's Vec3Cross (z pinned at 0) rather than a hand-rolled
// a*d-b*c, so the one true cross product implementation stays in gogeo.
func cross2D(ax, ay, bx, by float32) float32 {
	var out d3.Vec3 = make(d3.Vec3, 3)
	d3.Vec3Cross(out, d3.NewVec3XYZ(ax, ay, 0), d3.NewVec3XYZ(bx, by, 0))
	return out[2]
}

// SegmentIntersect computes the intersection of segment p1-p2 with
// segment p3-p4, if any, using the standard parametric line test. The
// returned point carries only X/Y; callers (the row generator) fill in
// the intersection-specific tags (angle, headland, island).
func SegmentIntersect(p1, p2, p3, p4 Point) (Point, bool) {
	rX, rY := p2.X()-p1.X(), p2.Y()-p1.Y()
	sX, sY := p4.X()-p3.X(), p4.Y()-p3.Y()

	denom := cross2D(rX, rY, sX, sY)
	if denom > -epsilon && denom < epsilon {
		// Parallel (or collinear) segments never produce a usable
		// crossing point for row/boundary intersection purposes.
		return Point{}, false
	}

	qpX, qpY := p3.X()-p1.X(), p3.Y()-p1.Y()
	t := cross2D(qpX, qpY, sX, sY) / denom
	u := cross2D(qpX, qpY, rX, rY) / denom

	if t < -epsilon || t > 1+epsilon || u < -epsilon || u > 1+epsilon {
		return Point{}, false
	}
	return NewPoint(p1.X()+t*rX, p1.Y()+t*rY), true
}

// PointInPolygon reports whether (x, y) lies inside p, using the
// standard ray-casting (even-odd) rule. Available for diagnostics;
// the generator itself does not call it.
func PointInPolygon(p *Polygon, x, y float32) bool {
	n := p.N()
	inside := false
	for i := 0; i < n; i++ {
		a, b := p.At(i), p.At(i+1)
		ax, ay, bx, by := a.X(), a.Y(), b.X(), b.Y()
		if (ay > y) != (by > y) {
			xCross := ax + (y-ay)/(by-ay)*(bx-ax)
			if x < xCross {
				inside = !inside
			}
		}
	}
	return inside
}
