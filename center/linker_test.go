package center

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arl/fieldcenter/geom"
	"github.com/arl/fieldcenter/internal/fctx"
)

func TestSliceBetweenEdgesForward(t *testing.T) {
	poly := squareBoundary(10) // (0,0) (10,0) (10,10) (0,10)
	start := geom.EdgeIx{FromIx: 0, ToIx: 1}
	end := geom.EdgeIx{FromIx: 2, ToIx: 3}
	pts := sliceBetweenEdges(poly, start, end, 1)
	assert.Equal(t, poly.At(1), pts[0])
	assert.Equal(t, poly.At(2), pts[len(pts)-1])
}

func TestSliceBetweenEdgesBackward(t *testing.T) {
	poly := squareBoundary(10)
	start := geom.EdgeIx{FromIx: 2, ToIx: 3}
	end := geom.EdgeIx{FromIx: 0, ToIx: 1}
	pts := sliceBetweenEdges(poly, start, end, -1)
	assert.Equal(t, poly.At(2), pts[0])
	assert.Equal(t, poly.At(1), pts[len(pts)-1])
}

func TestInsertTurnMidpointIfNeededAddsGapFiller(t *testing.T) {
	track := []geom.Point{geom.NewPoint(0, 0)}
	track[0].TurnStart = true
	insertTurnMidpointIfNeeded(&track, geom.NewPoint(100, 0))
	assert.Len(t, track, 2)
	assert.False(t, track[0].TurnStart)
	assert.True(t, track[1].TurnStart)
	assert.Equal(t, float32(50), track[1].X())
}

func TestInsertTurnMidpointIfNeededSkipsShortGap(t *testing.T) {
	track := []geom.Point{geom.NewPoint(0, 0)}
	insertTurnMidpointIfNeeded(&track, geom.NewPoint(1, 0))
	assert.Len(t, track, 1)
}

func TestLinkSingleBlockNoHeadland(t *testing.T) {
	row0 := []geom.Point{geom.NewPoint(0, 0), geom.NewPoint(10, 0)}
	row1 := []geom.Point{geom.NewPoint(10, 1), geom.NewPoint(0, 1)}
	block := &Block{
		ID:           1,
		Rows:         []*SubSegment{{}, {}},
		RowWaypoints: [][]geom.Point{row0, row1},
		Corners:      map[Corner]geom.Point{BL: row0[0], BR: row0[1], TL: row1[1], TR: row1[0]},
	}

	resolve := func(ref *geom.HeadlandRef) *geom.Polygon { return nil }
	track, spans := Link(fctx.Disabled(), []*Block{block}, []int{0}, []Corner{BL}, []int{1}, nil, 0, 0, 0, resolve)

	assert.Len(t, spans, 2)
	assert.Equal(t, 4, len(track))
	assert.False(t, track[0].TurnEnd, "first row of first block must not be tagged TurnEnd")
	assert.False(t, track[len(track)-1].TurnStart, "last row of last block must not be tagged TurnStart")
}
