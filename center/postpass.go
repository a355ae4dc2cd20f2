package center

import (
	"github.com/arl/fieldcenter/geom"
	"github.com/arl/math32"
)

// AssignRidgeMarkers tags every waypoint of a turn-bounded row run with
// RidgeRight or RidgeLeft based on the sign of the direction change at
// the row's turnStart, skipping the first and last row of every block.
// It is a no-op when rows are being skipped, since the ridge left by a
// skipped pass isn't meaningful. Applied only once the whole track has
// been linked, since it needs one point of lookahead past each turn.
func AssignRidgeMarkers(track []geom.Point, spans []RowSpan, nRowsToSkip int) {
	if nRowsToSkip != 0 {
		return
	}
	for _, span := range spans {
		if span.FirstOfBlock || span.LastOfBlock {
			continue
		}
		end := span.End
		if !track[end].TurnStart || end == 0 || end+1 >= len(track) {
			continue
		}
		delta := turnDeltaAngle(track, end)
		marker := geom.RidgeRight
		if delta < 0 {
			marker = geom.RidgeLeft
		}
		for i := span.Start; i <= end; i++ {
			track[i].RidgeMarker = marker
		}
	}

	if len(spans) > 0 {
		last := spans[len(spans)-1]
		for i := last.Start; i <= last.End; i++ {
			track[i].RidgeMarker = geom.RidgeNone
		}
	}

	for i := range track {
		if track[i].TurnEnd && i+1 < len(track) {
			track[i+1].RidgeMarker = geom.RidgeNone
		}
	}
}

// turnDeltaAngle is the signed change in heading between the segment
// arriving at track[ix] and the segment leaving it.
func turnDeltaAngle(track []geom.Point, ix int) float32 {
	before := math32.Atan2(track[ix].Y()-track[ix-1].Y(), track[ix].X()-track[ix-1].X())
	after := math32.Atan2(track[ix+1].Y()-track[ix].Y(), track[ix+1].X()-track[ix].X())
	return normalizeAngle(after - before)
}

func normalizeAngle(a float32) float32 {
	for a > math32.Pi {
		a -= 2 * math32.Pi
	}
	for a <= -math32.Pi {
		a += 2 * math32.Pi
	}
	return a
}
