package center

import (
	"sort"

	"github.com/arl/fieldcenter/geom"
	"github.com/arl/fieldcenter/internal/fctx"
	"github.com/tidwall/rtree"
)

// rtreeIslandThreshold is the island count above which the row
// generator builds a broad-phase R-tree over island bounding boxes
// before testing segment intersections, pruning islands a row's y
// doesn't even overlap. Below it the brute-force loop is simpler and
// just as fast, so both paths stay exercised.
const rtreeIslandThreshold = 8

// GenerateRows emits horizontal row segments across boundary's rotated
// bounding box and records their intersections with boundary and with
// every island's outermost headland. It returns the rows (bottom to
// top) and the offset produced when useSameWidth keeps an
// overshooting last row instead of clamping it.
func GenerateRows(ctx *fctx.Context, boundary *geom.Polygon, boundaryRef *geom.HeadlandRef, islands []*Island, width, distFromBoundary float32, useSameWidth bool) ([]*RowSegment, float32) {
	ctx.StartTimer(fctx.StageRowGen)
	defer ctx.StopTimer(fctx.StageRowGen)

	bbox := boundary.BBox()
	yMin := bbox.MinY() + distFromBoundary
	yMax := bbox.MaxY() - distFromBoundary

	var ys []float32
	for y := yMin; y < yMax; y += width {
		ys = append(ys, y)
	}
	// Final segment at the next y, which may overshoot yMax.
	next := yMin + float32(len(ys))*width
	ys = append(ys, next)

	var offset float32
	n := len(ys)
	if n >= 1 {
		last := ys[n-1]
		if useSameWidth {
			offset = distFromBoundary - (bbox.MaxY() - last)
		} else {
			ys[n-1] = bbox.MaxY() - distFromBoundary
		}
	}
	if n >= 2 && abs32(ys[n-1]-ys[n-2]) < 0.1 {
		ys = ys[:n-1]
	}

	rows := make([]*RowSegment, len(ys))
	for i, y := range ys {
		rows[i] = &RowSegment{
			From:              geom.NewPoint(bbox.MinX(), y),
			To:                geom.NewPoint(bbox.MaxX(), y),
			Y:                 y,
			OriginalRowNumber: i + 1,
		}
	}

	findIntersections(rows, boundary, boundaryRef, nil)

	if len(islands) > rtreeIslandThreshold {
		generateRowIslandIntersectionsRTree(rows, islands)
	} else {
		for _, isl := range islands {
			generateRowIslandIntersections(rows, isl)
		}
	}

	for _, row := range rows {
		sortAndDedupIntersections(row)
	}

	ctx.Progressf("row generator: %d rows, %d islands tested", len(rows), len(islands))
	return rows, offset
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

// findIntersections finds every crossing of headland's edges with
// every row in rows and appends it to that row's Intersections.
func findIntersections(rows []*RowSegment, headland *geom.Polygon, ref *geom.HeadlandRef, islandID *int) {
	n := headland.N()
	for i := 0; i < n; i++ {
		cp, np := headland.At(i), headland.At(i+1)
		edgeRef := &geom.HeadlandRef{Kind: ref.Kind, IslandID: ref.IslandID, PassIx: ref.PassIx}
		for _, row := range rows {
			is, ok := geom.SegmentIntersect(cp, np, row.From, row.To)
			if !ok {
				continue
			}
			is.Angle = headland.Tangent(i)
			is.IslandID = islandID
			is.Headland = edgeRef
			is.HeadlandEdge = geom.EdgeIx{FromIx: i, ToIx: mod(i+1, n)}
			is.OriginalRowNumber = row.OriginalRowNumber
			row.Intersections = append(row.Intersections, is)
			if islandID != nil {
				id := *islandID
				row.OnIsland = &id
			}
		}
	}
}

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

func generateRowIslandIntersections(rows []*RowSegment, isl *Island) {
	ref := &geom.HeadlandRef{Kind: geom.HeadlandIsland, IslandID: isl.ID, PassIx: isl.OutermostHeadlandIx}
	id := isl.ID
	findIntersections(rows, isl.OutermostHeadland(), ref, &id)
	markAdjacentIslands(rows, isl.ID)
}

// generateRowIslandIntersectionsRTree prunes, for each row, the
// islands whose bounding box doesn't even reach that row's y before
// paying for the full edge-by-edge intersection test. It indexes
// island bounding boxes in an R-tree and queries it with each row's
// (degenerate, y-only) line, a broad-phase-then-narrow-phase shape
// borrowed from spatial collision queries over moving bodies.
func generateRowIslandIntersectionsRTree(rows []*RowSegment, islands []*Island) {
	tr := &rtree.RTree{}
	for i, isl := range islands {
		b := isl.OutermostHeadland().BBox()
		tr.Insert([2]float64{float64(b.MinX()), float64(b.MinY())},
			[2]float64{float64(b.MaxX()), float64(b.MaxY())}, i)
	}

	for _, row := range rows {
		var candidates []int
		tr.Search(
			[2]float64{float64(row.From.X()), float64(row.Y)},
			[2]float64{float64(row.To.X()), float64(row.Y)},
			func(min, max [2]float64, data interface{}) bool {
				candidates = append(candidates, data.(int))
				return true
			},
		)
		for _, ci := range candidates {
			isl := islands[ci]
			ref := &geom.HeadlandRef{Kind: geom.HeadlandIsland, IslandID: isl.ID, PassIx: isl.OutermostHeadlandIx}
			id := isl.ID
			findIntersections([]*RowSegment{row}, isl.OutermostHeadland(), ref, &id)
		}
	}
	for _, isl := range islands {
		markAdjacentIslands(rows, isl.ID)
	}
}

// markAdjacentIslands records, for every row adjacent to a row that
// touches islandID, that it borders that island.
func markAdjacentIslands(rows []*RowSegment, islandID int) {
	for i := 1; i < len(rows); i++ {
		prev, cur := rows[i-1], rows[i]
		prevOn := prev.OnIsland != nil && *prev.OnIsland == islandID
		curOn := cur.OnIsland != nil && *cur.OnIsland == islandID
		if prevOn == curOn {
			continue
		}
		var other *RowSegment
		if prevOn {
			other = cur
		} else {
			other = prev
		}
		if other.AdjacentIslands == nil {
			other.AdjacentIslands = make(map[int]bool)
		}
		other.AdjacentIslands[islandID] = true
	}
}

func sortAndDedupIntersections(row *RowSegment) {
	sort.Slice(row.Intersections, func(i, j int) bool {
		return row.Intersections[i].X() < row.Intersections[j].X()
	})
	out := row.Intersections[:0]
	for i, is := range row.Intersections {
		if i > 0 && abs32(is.X()-row.Intersections[i-1].X()) < epsilonX {
			continue
		}
		out = append(out, is)
	}
	row.Intersections = out
}

const epsilonX = 1e-4
