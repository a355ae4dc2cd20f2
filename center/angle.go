package center

import (
	"github.com/arl/fieldcenter/geom"
	"github.com/arl/fieldcenter/internal/fctx"
	"github.com/arl/math32"
)

// RotateIslands returns copies of islands with every headland track
// rotated by angleDeg, for testing a candidate row angle without
// mutating the caller's geometry.
func RotateIslands(islands []*Island, angleDeg float32) []*Island {
	out := make([]*Island, len(islands))
	for i, isl := range islands {
		tracks := make([]*geom.Polygon, len(isl.HeadlandTracks))
		for j, t := range isl.HeadlandTracks {
			tracks[j] = t.Rotate(angleDeg)
		}
		out[i] = &Island{ID: isl.ID, OutermostHeadlandIx: isl.OutermostHeadlandIx, HeadlandTracks: tracks}
	}
	return out
}

func countTracks(blocks []*Block) int {
	n := 0
	for _, b := range blocks {
		n += b.RowCount()
	}
	return n
}

// SearchAngle sweeps the candidate row angles implied by settings,
// generating rows and splitting into blocks for each, and returns the
// angle with the lowest composite cost together with the row and
// block counts it produced.
func SearchAngle(ctx *fctx.Context, boundary *geom.Polygon, islands []*Island, width, distFromBoundary float32, settings CenterSettings) (bestAngleDeg float32, nTracks, nBlocks int) {
	ctx.StartTimer(fctx.StageAngleSearch)
	defer ctx.StopTimer(fctx.StageAngleSearch)

	var candidates []float32
	switch {
	case settings.UseLongestEdgeAngle:
		if bd, ok := boundary.BestDirection(); ok {
			candidates = []float32{-bd.DirDeg}
		} else {
			candidates = []float32{0}
		}
	case settings.UseBestAngle:
		for a := float32(0); a < 180; a += 2 {
			candidates = append(candidates, a)
		}
	default:
		candidates = []float32{settings.RowAngle * 180 / math32.Pi}
	}

	refDir, hasRef := boundary.BestDirection()

	boundaryRef := &geom.HeadlandRef{Kind: geom.HeadlandField}
	const sentinel = float32(1e30)
	bestScore := sentinel
	bestAngleDeg = candidates[0]

	for _, cand := range candidates {
		rotBoundary := boundary.Rotate(cand)
		rotIslands := RotateIslands(islands, cand)

		rows, _ := GenerateRows(ctx, rotBoundary, boundaryRef, rotIslands, width, distFromBoundary, false)
		blocks := SplitIntoBlocks(ctx, rows)

		candTracks := countTracks(blocks)
		candBlocks := len(blocks)

		var smallBlockScore float32
		if candBlocks > 1 {
			for _, b := range blocks {
				if b.RowCount() < smallBlockTrackCountLimit {
					smallBlockScore += float32(smallBlockTrackCountLimit - b.RowCount())
				}
			}
		}

		var angleScore float32
		if hasRef {
			diff := (cand - refDir.DirDeg) * math32.Pi / 180
			angleScore = 3 * math32.Abs(math32.Sin(diff))
		}

		score := 50*smallBlockScore + 10*float32(candBlocks) + float32(candTracks) + angleScore
		if score < bestScore {
			bestScore = score
			bestAngleDeg = cand
			nTracks = candTracks
			nBlocks = candBlocks
		}
	}

	ctx.Progressf("angle search: %d candidates, best %.1f deg (score %.2f)", len(candidates), bestAngleDeg, bestScore)
	return bestAngleDeg, nTracks, nBlocks
}
