package geom

import "github.com/arl/math32"

// BestDirection approximates a polygon's dominant axis: the direction
// of its longest edge, folded into [0, 180) degrees since an axis has
// no inherent sign.
type BestDirection struct {
	DirDeg float32
	EdgeIx int
}

// Polygon is a cyclic, ordered, simple closed ring of Points (vertex
// count >= 3), plus data derived once and cached until the vertices
// change: bounding box, per-edge length, per-vertex tangent angle, and
// the longest-edge direction used as a stand-in for the field's
// dominant axis.
//
// Indexing is always modular through At/Iter; callers never walk the
// backing slice directly, so degenerate wraparound (edge n-1 -> 0)
// never needs special-casing at call sites.
type Polygon struct {
	Pts []Point

	bbox    BBox
	edgeLen []float32
	tangent []float32 // tangent[i] = angle (radians) of edge i -> i+1
	best    BestDirection
	bestOK  bool
}

// NewPolygon builds a Polygon from pts and computes its derived data.
// pts is not validated: with fewer than 3 vertices BestDirection
// reports false, and behavior for fewer than 3 distinct vertices is
// otherwise undefined. No caller rejects such input before this.
func NewPolygon(pts []Point) *Polygon {
	p := &Polygon{Pts: pts}
	p.CalculateData()
	return p
}

// N returns the number of vertices.
func (p *Polygon) N() int { return len(p.Pts) }

func mod(i, n int) int {
	if n == 0 {
		return 0
	}
	m := i % n
	if m < 0 {
		m += n
	}
	return m
}

// At returns the vertex at cyclic index i.
func (p *Polygon) At(i int) Point {
	return p.Pts[mod(i, p.N())]
}

// Iter walks the cycle from start to end inclusive, stepping by +1 or
// -1, and returns the visited indices in order. If start == end it
// returns just [start] rather than the full cycle.
func (p *Polygon) Iter(start, end, step int) []int {
	n := p.N()
	if n == 0 {
		return nil
	}
	start = mod(start, n)
	end = mod(end, n)
	idxs := []int{start}
	if start == end {
		return idxs
	}
	i := start
	for steps := 0; steps < n; steps++ {
		if step >= 0 {
			i = mod(i+1, n)
		} else {
			i = mod(i-1, n)
		}
		idxs = append(idxs, i)
		if i == end {
			break
		}
	}
	return idxs
}

// CalculateData recomputes bbox, edge lengths, tangents and the best
// direction from the current Pts. Callers must call it again after
// mutating Pts in place (Rotate/Translate return a fresh Polygon with
// this already done).
func (p *Polygon) CalculateData() {
	n := p.N()
	p.bbox = boundsOf(p.Pts)
	p.edgeLen = make([]float32, n)
	p.tangent = make([]float32, n)
	for i := 0; i < n; i++ {
		a, b := p.At(i), p.At(i+1)
		dx, dy := b.X()-a.X(), b.Y()-a.Y()
		p.edgeLen[i] = math32.Sqrt(dx*dx + dy*dy)
		p.tangent[i] = math32.Atan2(dy, dx)
	}
	p.calcBestDirection()
}

func (p *Polygon) calcBestDirection() {
	n := p.N()
	if n < 3 {
		p.bestOK = false
		return
	}
	maxLen := float32(-1)
	maxIx := 0
	for i := 0; i < n; i++ {
		if p.edgeLen[i] > maxLen {
			maxLen = p.edgeLen[i]
			maxIx = i
		}
	}
	deg := p.tangent[maxIx] * 180 / math32.Pi
	deg = math32.Mod(deg, 180)
	if deg < 0 {
		deg += 180
	}
	p.best = BestDirection{DirDeg: deg, EdgeIx: maxIx}
	p.bestOK = true
}

// BBox returns the polygon's bounding box.
func (p *Polygon) BBox() BBox { return p.bbox }

// EdgeLen returns the length of the edge from vertex i to vertex i+1.
func (p *Polygon) EdgeLen(i int) float32 { return p.edgeLen[mod(i, p.N())] }

// Tangent returns the angle (radians) of the edge from vertex i to i+1.
func (p *Polygon) Tangent(i int) float32 { return p.tangent[mod(i, p.N())] }

// BestDirection returns the longest-edge direction, and whether it is
// defined (false for degenerate polygons with fewer than 3 vertices).
func (p *Polygon) BestDirection() (BestDirection, bool) { return p.best, p.bestOK }

// Centroid returns the arithmetic mean of the vertices (sufficient for
// translating the final track back to world coordinates; the spec
// does not require the area-weighted centroid).
func (p *Polygon) Centroid() (x, y float32) {
	n := p.N()
	if n == 0 {
		return 0, 0
	}
	var sx, sy float32
	for _, pt := range p.Pts {
		sx += pt.X()
		sy += pt.Y()
	}
	return sx / float32(n), sy / float32(n)
}

// Rotate returns a new Polygon with every vertex rotated by angleDeg
// degrees (counterclockwise, standard math convention) about the
// origin.
func (p *Polygon) Rotate(angleDeg float32) *Polygon {
	rad := angleDeg * math32.Pi / 180
	s, c := math32.Sin(rad), math32.Cos(rad)
	pts := make([]Point, p.N())
	for i, pt := range p.Pts {
		x, y := pt.X(), pt.Y()
		pts[i] = pt.WithXY(x*c-y*s, x*s+y*c)
	}
	return NewPolygon(pts)
}

// Translate returns a new Polygon with every vertex shifted by (dx, dy).
func (p *Polygon) Translate(dx, dy float32) *Polygon {
	pts := make([]Point, p.N())
	for i, pt := range p.Pts {
		pts[i] = pt.WithXY(pt.X()+dx, pt.Y()+dy)
	}
	return NewPolygon(pts)
}

// DistanceAlong sums edge lengths walking the cycle from ix1 toward
// ix2 in direction dir (+1 or -1). It reports false if ix2 is never
// reached within one full lap.
func (p *Polygon) DistanceAlong(ix1, ix2, dir int) (float32, bool) {
	n := p.N()
	if n == 0 {
		return 0, false
	}
	ix1, ix2 = mod(ix1, n), mod(ix2, n)
	if ix1 == ix2 {
		return 0, true
	}
	var sum float32
	i := ix1
	for steps := 0; steps < n; steps++ {
		var edgeLen float32
		if dir >= 0 {
			edgeLen = p.EdgeLen(i)
			i = mod(i+1, n)
		} else {
			i = mod(i-1, n)
			edgeLen = p.EdgeLen(i)
		}
		sum += edgeLen
		if i == ix2 {
			return sum, true
		}
	}
	return 0, false
}

// RotateXY rotates a bare (x, y) coordinate by angleDeg around the
// origin; used to keep islands and field boundary in sync with the
// polygon rotations performed during angle search.
func RotateXY(x, y, angleDeg float32) (float32, float32) {
	rad := angleDeg * math32.Pi / 180
	s, c := math32.Sin(rad), math32.Cos(rad)
	return x*c - y*s, x*s + y*c
}
