package center

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arl/fieldcenter/geom"
	"github.com/arl/fieldcenter/internal/fctx"
)

func squareBoundary(side float32) *geom.Polygon {
	return geom.NewPolygon([]geom.Point{
		geom.NewPoint(0, 0),
		geom.NewPoint(side, 0),
		geom.NewPoint(side, side),
		geom.NewPoint(0, side),
	})
}

func TestGenerateRowsCountMonotoneInWidth(t *testing.T) {
	boundary := squareBoundary(100)
	ref := &geom.HeadlandRef{Kind: geom.HeadlandField}

	rowsWide, _ := GenerateRows(fctx.Disabled(), boundary, ref, nil, 20, 2, false)
	rowsNarrow, _ := GenerateRows(fctx.Disabled(), boundary, ref, nil, 4, 2, false)

	assert.GreaterOrEqual(t, len(rowsNarrow), len(rowsWide))
}

func TestGenerateRowsEachRowHasTwoBoundaryIntersections(t *testing.T) {
	boundary := squareBoundary(40)
	ref := &geom.HeadlandRef{Kind: geom.HeadlandField}
	rows, _ := GenerateRows(fctx.Disabled(), boundary, ref, nil, 5, 1, false)
	for _, r := range rows {
		assert.Len(t, r.Intersections, 2)
	}
}

func makeRowIslands(n int) []*Island {
	islands := make([]*Island, n)
	for i := 0; i < n; i++ {
		x := float32(10 + i*8)
		track := geom.NewPolygon([]geom.Point{
			geom.NewPoint(x, 40),
			geom.NewPoint(x+3, 40),
			geom.NewPoint(x+3, 60),
			geom.NewPoint(x, 60),
		})
		islands[i] = &Island{ID: i + 1, HeadlandTracks: []*geom.Polygon{track}}
	}
	return islands
}

func makeTestRows(boundary *geom.Polygon, width float32) []*RowSegment {
	ref := &geom.HeadlandRef{Kind: geom.HeadlandField}
	rows, _ := GenerateRows(fctx.Disabled(), boundary, ref, nil, width, 1, false)
	return rows
}

func TestGenerateRowsIslandIntersectionsSameBruteAndRTree(t *testing.T) {
	boundary := squareBoundary(100)
	islands := makeRowIslands(rtreeIslandThreshold + 2)

	bruteRows := makeTestRows(boundary, 5)
	for _, isl := range islands {
		generateRowIslandIntersections(bruteRows, isl)
	}

	rtreeRows := makeTestRows(boundary, 5)
	generateRowIslandIntersectionsRTree(rtreeRows, islands)

	assert.Equal(t, len(bruteRows), len(rtreeRows))
	for i := range bruteRows {
		assert.Equal(t, len(bruteRows[i].Intersections), len(rtreeRows[i].Intersections),
			"row %d: brute vs rtree intersection count differs", i)
	}
}
