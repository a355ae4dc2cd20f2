package geom

import "github.com/arl/gogeo/f32/d3"

// BBox is an axis-aligned bounding box in the plane, built directly on
// gogeo's Rectangle (z stays 0 on both corners).
type BBox struct {
	R d3.Rectangle
}

// NewBBox returns the bounding box spanning [minX,maxX] x [minY,maxY].
func NewBBox(minX, minY, maxX, maxY float32) BBox {
	return BBox{R: d3.Rect(minX, minY, 0, maxX, maxY, 0)}
}

func (b BBox) MinX() float32 { return b.R.Min[0] }
func (b BBox) MinY() float32 { return b.R.Min[1] }
func (b BBox) MaxX() float32 { return b.R.Max[0] }
func (b BBox) MaxY() float32 { return b.R.Max[1] }

// Center returns the bounding box's center.
func (b BBox) Center() (x, y float32) {
	c := b.R.Center()
	return c[0], c[1]
}

// Contains reports whether (x, y) lies within b.
func (b BBox) Contains(x, y float32) bool {
	return b.R.Contains(d3.NewVec3XYZ(x, y, 0))
}

// boundsOf computes the bounding box of a set of points.
func boundsOf(pts []Point) BBox {
	if len(pts) == 0 {
		return BBox{}
	}
	minX, minY := pts[0].X(), pts[0].Y()
	maxX, maxY := minX, minY
	for _, p := range pts[1:] {
		if p.X() < minX {
			minX = p.X()
		}
		if p.X() > maxX {
			maxX = p.X()
		}
		if p.Y() < minY {
			minY = p.Y()
		}
		if p.Y() > maxY {
			maxY = p.Y()
		}
	}
	return NewBBox(minX, minY, maxX, maxY)
}
