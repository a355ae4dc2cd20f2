package center

import (
	"github.com/arl/fieldcenter/geom"
	"github.com/arl/fieldcenter/internal/fctx"
)

// sliceBetweenEdges returns the polygon points of a connecting track:
// from the starting edge's far vertex to the ending edge's near
// vertex, both included, walking dir.
// Keeping the connector inside both edges means it never overshoots a
// row endpoint.
func sliceBetweenEdges(poly *geom.Polygon, startEdge, endEdge geom.EdgeIx, dir int) []geom.Point {
	var start, end int
	if dir >= 0 {
		start = startEdge.ToIx
		end = endEdge.FromIx
	} else {
		start = startEdge.FromIx
		end = endEdge.ToIx
	}
	idxs := poly.Iter(start, end, dir)
	pts := make([]geom.Point, len(idxs))
	for i, ix := range idxs {
		pts[i] = poly.At(ix)
	}
	return pts
}

// RowSpan locates one block row's waypoints within the linked track,
// for post-passes (ridge markers) that need to know block row
// boundaries without re-deriving them from turn tags.
type RowSpan struct {
	Start, End             int
	FirstOfBlock, LastOfBlock bool
}

// Link walks blocks in the GA's chosen order, inserting a connecting
// track between consecutive blocks (or from the headland's
// circleStart before the first) and appending each block's zig-zag
// row waypoints, producing the final output polyline and the span of
// each row within it.
func Link(ctx *fctx.Context, blocks []*Block, order []int, entryCorner []Corner, direction []int, innermost *geom.Polygon, circleStart int, nHeadlandPasses, nRowsToSkip int, resolve PolygonResolver) ([]geom.Point, []RowSpan) {
	ctx.StartTimer(fctx.StageLink)
	defer ctx.StopTimer(fctx.StageLink)

	var track []geom.Point
	var spans []RowSpan

	for i, bi := range order {
		block := blocks[bi]
		entry := entryCorner[bi]
		entryPt := block.Corner(entry)

		var connector []geom.Point
		if i == 0 {
			if entryPt.Headland != nil && entryPt.Headland.Kind == geom.HeadlandField && innermost != nil {
				circleEdge := geom.EdgeIx{FromIx: circleStart, ToIx: circleStart}
				connector = sliceBetweenEdges(innermost, circleEdge, entryPt.HeadlandEdge, direction[0])
			}
		} else {
			prevBi := order[i-1]
			prevBlock := blocks[prevBi]
			prevExit := prevBlock.Corner(ExitCorner(entryCorner[prevBi], prevBlock.RowCount(), nRowsToSkip))
			adjacent := prevExit.OriginalRowNumber-entryPt.OriginalRowNumber == 1 ||
				entryPt.OriginalRowNumber-prevExit.OriginalRowNumber == 1
			if !adjacent && prevExit.Headland != nil && prevExit.Headland.Same(entryPt.Headland) {
				poly := resolve(prevExit.Headland)
				if poly != nil {
					connector = sliceBetweenEdges(poly, prevExit.HeadlandEdge, entryPt.HeadlandEdge, direction[i-1])
				}
			}
		}

		if len(connector) > 0 {
			for j := range connector {
				connector[j].IsConnectingTrack = true
			}
			if i == 0 {
				connector[len(connector)-1].TurnStart = true
			}
			track = append(track, connector...)
		}

		for ri, wps := range block.RowWaypoints {
			row := make([]geom.Point, len(wps))
			copy(row, wps)

			isFirstRowOfFirstBlock := i == 0 && ri == 0
			isLastRowOfLastBlock := i == len(order)-1 && ri == len(block.RowWaypoints)-1
			precededByConnector := ri == 0 && len(connector) > 0

			if !precededByConnector && len(track) > 0 {
				insertTurnMidpointIfNeeded(&track, row[0])
			}

			if !isFirstRowOfFirstBlock {
				row[0].TurnEnd = true
			}
			if !isLastRowOfLastBlock {
				row[len(row)-1].TurnStart = true
			}
			if isFirstRowOfFirstBlock {
				start := len(track)
				row[0].UpDownRowStart = &start
			}
			spanStart := len(track)
			track = append(track, row...)
			spans = append(spans, RowSpan{
				Start:        spanStart,
				End:          len(track) - 1,
				FirstOfBlock: ri == 0,
				LastOfBlock:  ri == len(block.RowWaypoints)-1,
			})
		}
	}

	ctx.Progressf("linker: %d waypoints across %d blocks", len(track), len(order))
	return track, spans
}

// insertTurnMidpointIfNeeded appends a midpoint between the current
// track's last point and an upcoming row's first point when they are
// farther apart than 2*WWp, moving the turn-start marker onto it so
// the gap isn't silently left untagged.
func insertTurnMidpointIfNeeded(track *[]geom.Point, rowStart geom.Point) {
	t := *track
	last := &t[len(t)-1]
	if last.Dist(rowStart) <= 2*WWp {
		return
	}
	mid := geom.NewPoint((last.X()+rowStart.X())/2, (last.Y()+rowStart.Y())/2)
	last.TurnStart = false
	mid.TurnStart = true
	*track = append(t, mid)
}
