// Package geom provides the 2D geometry primitives the center course
// generator is built on: points, bounding boxes, closed polygons with
// cyclic indexing, and segment intersection.
//
// Points and polygons are built directly on gogeo's 3D vector and
// rectangle types with the Z component always held at zero; this reuses
// gogeo's float32 vector arithmetic instead of introducing a parallel
// 2D vector type.
package geom

import (
	"github.com/arl/gogeo/f32/d3"
)

// RidgeMarker flags which side of the implement leaves a visible track.
type RidgeMarker int

const (
	RidgeNone RidgeMarker = iota
	RidgeLeft
	RidgeRight
)

// HeadlandKind identifies which kind of polygon a Point's Headland
// reference points to.
type HeadlandKind int

const (
	// HeadlandField is a pass of the field boundary's own headland.
	HeadlandField HeadlandKind = iota
	// HeadlandIsland is a pass of an island's headland.
	HeadlandIsland
)

// HeadlandRef identifies, by stable ID rather than pointer, which
// headland polygon an intersection point was found on.
type HeadlandRef struct {
	Kind     HeadlandKind
	IslandID int // valid when Kind == HeadlandIsland
	PassIx   int // index of this pass in the originating headland list
}

// Same reports whether h and o name the same headland polygon. A nil
// receiver or argument never matches.
func (h *HeadlandRef) Same(o *HeadlandRef) bool {
	if h == nil || o == nil {
		return false
	}
	return h.Kind == o.Kind && h.IslandID == o.IslandID && h.PassIx == o.PassIx
}

// EdgeIx names an edge of a polygon by its two cyclic vertex indices.
type EdgeIx struct {
	FromIx, ToIx int
}

// Point is a waypoint or polygon vertex in the plane, in metres. Most
// of its fields are tags that only apply in specific contexts (row
// waypoints, boundary intersections); zero values mean "not set".
type Point struct {
	V d3.Vec3 // {x, y, 0}

	// Waypoint tags, set while ordering rows and linking blocks.
	TurnStart         bool
	TurnEnd           bool
	RowNumber         int
	OriginalRowNumber int
	FirstTrack        bool
	LastTrack         bool
	IsConnectingTrack bool
	AdjacentIslands   map[int]bool
	UpDownRowStart    *int
	RidgeMarker       RidgeMarker

	// Intersection-only tags, set by the row generator when this
	// point is where a row segment crosses a headland.
	Angle        float32
	Headland     *HeadlandRef
	HeadlandEdge EdgeIx
	IslandID     *int
	Label        string
}

// NewPoint returns a bare Point at (x, y) with no tags set.
func NewPoint(x, y float32) Point {
	return Point{V: d3.NewVec3XYZ(x, y, 0)}
}

// X returns the point's x coordinate.
func (p Point) X() float32 { return p.V[0] }

// Y returns the point's y coordinate.
func (p Point) Y() float32 { return p.V[1] }

// WithXY returns a copy of p translated to (x, y), keeping all tags.
func (p Point) WithXY(x, y float32) Point {
	p.V = d3.NewVec3XYZ(x, y, 0)
	return p
}

// Dist returns the planar distance between p and q.
//
// gogeo's Dist2D projects onto the xz-plane (it was written for a
// y-up 3D engine); our points keep x/y in slots 0/1 and z pinned at 0,
// so the plain 3D Dist is the one that actually measures our plane.
func (p Point) Dist(q Point) float32 {
	return p.V.Dist(q.V)
}

// IsIntersection reports whether p carries boundary-intersection data.
func (p Point) IsIntersection() bool {
	return p.Headland != nil
}
