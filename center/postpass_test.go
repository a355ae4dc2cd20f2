package center

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arl/fieldcenter/geom"
)

func TestAssignRidgeMarkersSkipsFirstAndLastBlockRow(t *testing.T) {
	track := []geom.Point{
		geom.NewPoint(0, 0),
		geom.NewPoint(1, 0),
		geom.NewPoint(1, 1),
	}
	track[1].TurnStart = true
	spans := []RowSpan{
		{Start: 0, End: 1, FirstOfBlock: true, LastOfBlock: false},
		{Start: 2, End: 2, FirstOfBlock: false, LastOfBlock: true},
	}
	AssignRidgeMarkers(track, spans, 0)
	assert.Equal(t, geom.RidgeNone, track[0].RidgeMarker)
	assert.Equal(t, geom.RidgeNone, track[2].RidgeMarker)
}

func TestAssignRidgeMarkersNoopWhenSkippingRows(t *testing.T) {
	track := []geom.Point{geom.NewPoint(0, 0), geom.NewPoint(1, 0), geom.NewPoint(2, 1)}
	track[1].TurnStart = true
	spans := []RowSpan{{Start: 0, End: 1}, {Start: 2, End: 2}}
	AssignRidgeMarkers(track, spans, 1)
	for _, p := range track {
		assert.Equal(t, geom.RidgeNone, p.RidgeMarker)
	}
}

func TestNormalizeAngleStaysInRange(t *testing.T) {
	vals := []float32{0, 3.5, -3.5, 10, -10}
	for _, v := range vals {
		n := normalizeAngle(v)
		assert.Greater(t, n, -float32(3.2))
		assert.LessOrEqual(t, n, float32(3.2))
	}
}
