package center

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arl/fieldcenter/geom"
	"github.com/arl/fieldcenter/internal/fctx"
)

func TestRotateIslandsPreservesTrackCount(t *testing.T) {
	track := geom.NewPolygon([]geom.Point{
		geom.NewPoint(10, 10), geom.NewPoint(14, 10), geom.NewPoint(14, 14), geom.NewPoint(10, 14),
	})
	islands := []*Island{{ID: 1, HeadlandTracks: []*geom.Polygon{track}}}
	rotated := RotateIslands(islands, 37)
	assert.Len(t, rotated, 1)
	assert.Equal(t, 1, rotated[0].ID)
	assert.Equal(t, track.N(), rotated[0].HeadlandTracks[0].N())
}

func TestSearchAngleFixedAngleReturnsThatAngle(t *testing.T) {
	boundary := squareBoundary(60)
	settings := CenterSettings{RowAngle: 0}
	bestAngle, nTracks, nBlocks := SearchAngle(fctx.Disabled(), boundary, nil, 5, 2.5, settings)
	assert.Equal(t, float32(0), bestAngle)
	assert.Greater(t, nTracks, 0)
	assert.Equal(t, 1, nBlocks)
}

// Row generation on a boundary is driven entirely by its rotated
// geometry, and rotating by 180 degrees more returns every row to the
// same set of crossings (just walked in the opposite direction), so
// the candidate score at cand and cand+180 must match.
func TestRowAndBlockCountsAreSymmetricUnder180(t *testing.T) {
	boundary := squareBoundary(60)
	ref := &geom.HeadlandRef{Kind: geom.HeadlandField}

	for _, cand := range []float32{10, 45, 77} {
		rowsA, _ := GenerateRows(fctx.Disabled(), boundary.Rotate(cand), ref, nil, 5, 2.5, false)
		rowsB, _ := GenerateRows(fctx.Disabled(), boundary.Rotate(cand+180), ref, nil, 5, 2.5, false)

		blocksA := SplitIntoBlocks(fctx.Disabled(), rowsA)
		blocksB := SplitIntoBlocks(fctx.Disabled(), rowsB)

		assert.Equal(t, countTracks(blocksA), countTracks(blocksB), "cand=%v", cand)
		assert.Equal(t, len(blocksA), len(blocksB), "cand=%v", cand)
	}
}
