package center

import (
	"github.com/arl/fieldcenter/geom"
	"github.com/arl/math32"
)

// minCrossingAngle is the clamp floor for the absolute row/boundary
// crossing angle used in the end-offset formulas: π/12 (15°).
const minCrossingAngle = math32.Pi / 12

// distanceToFullCover returns |W / (2*tan(θ'))| with θ' clamped to
// |θ'| >= minCrossingAngle, which bounds the offset for crossings whose
// edge angle is near zero. Edge angles near ±π are not clamped.
func distanceToFullCover(width, theta float32) float32 {
	return abs32(width / (2 * math32.Tan(clampAngle(theta))))
}

// distanceBetweenRowEndAndHeadland returns the extra standoff needed
// so the implement fully clears the headland on an oblique crossing.
func distanceBetweenRowEndAndHeadland(width, theta float32) float32 {
	t := clampAngle(theta)
	return abs32(width/(2*math32.Sin(t))) - distanceToFullCover(width, theta)
}

func clampAngle(theta float32) float32 {
	if abs32(theta) < minCrossingAngle {
		if theta < 0 {
			return -minCrossingAngle
		}
		return minCrossingAngle
	}
	return theta
}

func endOffset(width, theta float32, nHeadlandPasses int) float32 {
	if nHeadlandPasses == 0 {
		return -distanceToFullCover(width, theta)
	}
	return distanceBetweenRowEndAndHeadland(width, theta)
}

// MaterializeBlock samples waypoints for every row of b, trimming each
// row's endpoints for its boundary-crossing angle and dropping rows
// that collapse or end up with fewer than two waypoints. It fills
// b.RowWaypoints in place, one slice per surviving row — the row and
// its waypoints are dropped together so the two slices never have to
// be kept in sync by index after the fact.
func MaterializeBlock(b *Block, width float32, nHeadlandPasses int) {
	var keptRows []*SubSegment
	var keptWaypoints [][]geom.Point

	for _, row := range b.Rows {
		wps, ok := materializeRow(row, width, nHeadlandPasses)
		if !ok {
			continue
		}
		keptRows = append(keptRows, row)
		keptWaypoints = append(keptWaypoints, wps)
	}
	b.Rows = keptRows
	b.RowWaypoints = keptWaypoints
}

func materializeRow(row *SubSegment, width float32, nHeadlandPasses int) ([]geom.Point, bool) {
	isL, isR := row.Left, row.Right
	offsetL := endOffset(width, isL.Angle, nHeadlandPasses)
	offsetR := endOffset(width, isR.Angle, nHeadlandPasses)

	newFrom := isL.X() + offsetL - 0.05*width
	newTo := isR.X() - offsetR + 0.05*width
	if newTo <= newFrom {
		return nil, false
	}

	var wps []geom.Point
	for x := newFrom; x < newTo; x += WWp {
		wps = append(wps, geom.NewPoint(x, row.Y))
	}
	if len(wps) == 0 || newTo-wps[len(wps)-1].X() > WMin {
		wps = append(wps, geom.NewPoint(newTo, row.Y))
	}
	for i := range wps {
		wps[i].OriginalRowNumber = row.OriginalRowNumber
		wps[i].AdjacentIslands = row.AdjacentIslands
	}
	if len(wps) < 2 {
		return nil, false
	}
	return wps, true
}
