package center

import "github.com/arl/fieldcenter/geom"

// RowSegment is a single horizontal pass across the rotated bounding
// box, before it has been trimmed to the boundary. Intersections are
// kept in ascending X order as the row generator finds them.
type RowSegment struct {
	From, To          geom.Point
	Y                 float32
	OriginalRowNumber int
	Intersections     []geom.Point
	OnIsland          *int // island ID if part of this row lies on an island
	AdjacentIslands   map[int]bool
}

// SubSegment is one bottom-to-top slice of a row between a consecutive
// pair of intersections, produced by splitting a RowSegment in the
// block splitter. Blocks are built out of SubSegments, not raw
// RowSegments, because a single row can cross in and out of several
// blocks (e.g. on either side of an island).
type SubSegment struct {
	Left, Right       geom.Point
	Y                 float32
	OriginalRowNumber int
	AdjacentIslands   map[int]bool
}

// MinX returns the sub-segment's left intersection X, used for the
// block splitter's x-overlap test.
func (s *SubSegment) MinX() float32 { return s.Left.X() }

// MaxX returns the sub-segment's right intersection X.
func (s *SubSegment) MaxX() float32 { return s.Right.X() }

// Overlaps reports whether s and o's x-intervals intersect.
func (s *SubSegment) Overlaps(o *SubSegment) bool {
	return s.MinX() <= o.MaxX() && o.MinX() <= s.MaxX()
}

// Block is a maximal contiguous group of rows whose endpoints lie on
// the same boundary segments. Rows are stored bottom row first; after
// materialization each row also carries its sampled waypoints.
type Block struct {
	ID   int
	Rows []*SubSegment

	// Waypoints, filled in by the row materializer, one slice per
	// entry in Rows, in the same order.
	RowWaypoints [][]geom.Point

	Corners map[Corner]geom.Point
}

// Corner returns the intersection point at the named corner.
func (b *Block) Corner(c Corner) geom.Point { return b.Corners[c] }

// RowCount returns the number of rows in the block.
func (b *Block) RowCount() int { return len(b.Rows) }
