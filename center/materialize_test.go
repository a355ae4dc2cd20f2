package center

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arl/fieldcenter/geom"
	"github.com/arl/math32"
)

func perpendicularRow(left, right float32) *SubSegment {
	l := geom.NewPoint(left, 0)
	l.Angle = math32.Pi / 2
	r := geom.NewPoint(right, 0)
	r.Angle = math32.Pi / 2
	return &SubSegment{Left: l, Right: r, Y: 0, OriginalRowNumber: 1}
}

func TestMaterializeRowSamplesWaypoints(t *testing.T) {
	row := perpendicularRow(0, 50)
	wps, ok := materializeRow(row, 4, 1)
	assert.True(t, ok)
	assert.GreaterOrEqual(t, len(wps), 2)
	for i := 1; i < len(wps); i++ {
		assert.LessOrEqual(t, wps[i-1].X(), wps[i].X())
	}
}

func TestMaterializeRowCollapsesToNothing(t *testing.T) {
	row := perpendicularRow(0, 0.01)
	_, ok := materializeRow(row, 4, 1)
	assert.False(t, ok)
}

func TestMaterializeBlockDropsCollapsedRows(t *testing.T) {
	b := &Block{
		Rows: []*SubSegment{
			perpendicularRow(0, 50),
			perpendicularRow(0, 0.01),
		},
	}
	MaterializeBlock(b, 4, 1)
	assert.Equal(t, 1, b.RowCount())
	assert.Len(t, b.RowWaypoints, 1)
}

func TestDistanceToFullCoverClampsNearParallelCrossing(t *testing.T) {
	d := distanceToFullCover(4, 0.001)
	clamped := distanceToFullCover(4, minCrossingAngle)
	assert.Equal(t, clamped, d)
}
