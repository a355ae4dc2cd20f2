package center

import (
	"errors"
	"math/rand"

	"github.com/arl/fieldcenter/geom"
	"github.com/arl/fieldcenter/internal/fctx"
)

// maxPlausibleBlocks and minTracksPerBlock bound what GenerateFieldCenter
// considers a sane result; past them it still returns its best attempt
// but with resultIsOk = false.
const (
	maxPlausibleBlocks = 30
	minTracksPerBlock  = 2
)

// GenerateFieldCenter is the top-level entry point: given the
// headland passes (innermost last), the island set, implement width
// and settings, it runs the full pipeline — angle search, row
// generation, block splitting, row materialization and ordering, GA
// block sequencing, linking and ridge-mark post-pass — and returns the
// world-coordinate output polyline.
//
// rng drives the GA; callers that need reproducible output must pass
// a seeded *rand.Rand rather than relying on a package-level default.
func GenerateFieldCenter(ctx *fctx.Context, rng *rand.Rand, headlands Headlands, islands []*Island, width float32, headlandSettings HeadlandSettings, centerSettings CenterSettings, gaSettings GASettings) (track []geom.Point, bestAngleDeg float32, nParallelTracks int, blocks []*Block, resultIsOk bool, err error) {
	innermost := headlands.Innermost()
	if innermost == nil {
		return nil, 0, 0, nil, false, errors.New("fieldcenter: no innermost headland")
	}

	cx, cy := innermost.Centroid()
	originBoundary := innermost.Translate(-cx, -cy)
	originIslands := translateIslands(islands, -cx, -cy)

	distFromBoundary := headlandSettings.DistanceFromBoundary(width)

	bestAngleDeg, _, _ = SearchAngle(ctx, originBoundary, originIslands, width, distFromBoundary, centerSettings)

	rotBoundary := originBoundary.Rotate(bestAngleDeg)
	rotIslands := RotateIslands(originIslands, bestAngleDeg)

	boundaryRef := &geom.HeadlandRef{Kind: geom.HeadlandField}
	rows, _ := GenerateRows(ctx, rotBoundary, boundaryRef, rotIslands, width, distFromBoundary, centerSettings.Mode == Lands)
	blocks = SplitIntoBlocks(ctx, rows)

	kept := blocks[:0]
	for _, b := range blocks {
		MaterializeBlock(b, width, headlandSettings.NPasses)
		if b.RowCount() > 0 {
			kept = append(kept, b)
		}
	}
	blocks = kept

	if len(blocks) == 0 {
		return nil, 0, 0, nil, true, nil
	}

	for _, b := range blocks {
		ccw := LandsCCW(true, true, centerSettings.PipeOnLeftSide)
		order := OrderRows(centerSettings.Mode, b.RowCount(), centerSettings, ccw)
		ApplyRowOrder(b, order)
	}

	nParallelTracks = countTracks(blocks)
	resultIsOk = true
	if len(blocks) > maxPlausibleBlocks {
		resultIsOk = false
	}
	if len(blocks) > 1 && float32(nParallelTracks)/float32(len(blocks)) < minTracksPerBlock {
		resultIsOk = false
	}

	resolve := buildResolver(rotBoundary, rotIslands)
	order, entryCorner, direction := Sequence(ctx, rng, blocks, rotBoundary, headlands.CircleStart, headlands.CircleStep, headlandSettings.NPasses, centerSettings.NRowsToSkip, resolve, gaSettings)

	linked, spans := Link(ctx, blocks, order, entryCorner, direction, rotBoundary, headlands.CircleStart, headlandSettings.NPasses, centerSettings.NRowsToSkip, resolve)
	AssignRidgeMarkers(linked, spans, centerSettings.NRowsToSkip)

	track = transformBack(linked, bestAngleDeg, cx, cy)

	ctx.LogBuildTimes(0)
	return track, bestAngleDeg, nParallelTracks, blocks, resultIsOk, nil
}

func translateIslands(islands []*Island, dx, dy float32) []*Island {
	out := make([]*Island, len(islands))
	for i, isl := range islands {
		tracks := make([]*geom.Polygon, len(isl.HeadlandTracks))
		for j, t := range isl.HeadlandTracks {
			tracks[j] = t.Translate(dx, dy)
		}
		out[i] = &Island{ID: isl.ID, OutermostHeadlandIx: isl.OutermostHeadlandIx, HeadlandTracks: tracks}
	}
	return out
}

func buildResolver(innermost *geom.Polygon, islands []*Island) PolygonResolver {
	byID := make(map[int]*Island, len(islands))
	for _, isl := range islands {
		byID[isl.ID] = isl
	}
	return func(ref *geom.HeadlandRef) *geom.Polygon {
		if ref == nil {
			return nil
		}
		if ref.Kind == geom.HeadlandField {
			return innermost
		}
		if isl, ok := byID[ref.IslandID]; ok {
			return isl.OutermostHeadland()
		}
		return nil
	}
}

// transformBack undoes the angle search's rotate-then-translate-to-origin
// transform: rotate by -angleDeg about the origin, then shift by (cx, cy).
func transformBack(pts []geom.Point, angleDeg, cx, cy float32) []geom.Point {
	out := make([]geom.Point, len(pts))
	for i, p := range pts {
		x, y := geom.RotateXY(p.X(), p.Y(), -angleDeg)
		out[i] = p.WithXY(x+cx, y+cy)
	}
	return out
}
