package center

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arl/fieldcenter/geom"
	"github.com/arl/fieldcenter/internal/fctx"
)

func TestGenerateFieldCenterSquareField(t *testing.T) {
	boundary := squareBoundary(40)
	headlands := Headlands{Passes: []*geom.Polygon{boundary}, CircleStart: 0, CircleStep: 1}

	centerSettings := DefaultCenterSettings()
	centerSettings.UseBestAngle = false // keep the test deterministic and fast
	headlandSettings := HeadlandSettings{NPasses: 0}
	gaSettings := DefaultGASettings()
	gaSettings.PopulationMultiplier = 8
	gaSettings.GenerationMultiplier = 3

	rng := rand.New(rand.NewSource(7))
	track, _, nTracks, blocks, ok, err := GenerateFieldCenter(
		fctx.Disabled(), rng, headlands, nil, 4, headlandSettings, centerSettings, gaSettings)

	assert.NoError(t, err)
	assert.True(t, ok)
	assert.NotEmpty(t, track)
	assert.Greater(t, nTracks, 0)
	assert.NotEmpty(t, blocks)
}

func TestGenerateFieldCenterNoInnermostHeadlandErrors(t *testing.T) {
	_, _, _, _, _, err := GenerateFieldCenter(
		fctx.Disabled(), rand.New(rand.NewSource(1)), Headlands{}, nil, 4,
		HeadlandSettings{}, DefaultCenterSettings(), DefaultGASettings())
	assert.Error(t, err)
}

func TestGenerateFieldCenterWaypointsStayWithinBoundary(t *testing.T) {
	boundary := squareBoundary(40)
	headlands := Headlands{Passes: []*geom.Polygon{boundary}, CircleStart: 0, CircleStep: 1}

	centerSettings := DefaultCenterSettings()
	centerSettings.UseBestAngle = false
	headlandSettings := HeadlandSettings{NPasses: 0}
	gaSettings := DefaultGASettings()
	gaSettings.PopulationMultiplier = 8
	gaSettings.GenerationMultiplier = 3

	rng := rand.New(rand.NewSource(3))
	track, _, _, _, _, err := GenerateFieldCenter(
		fctx.Disabled(), rng, headlands, nil, 4, headlandSettings, centerSettings, gaSettings)
	assert.NoError(t, err)

	const tol = 2.0 // width/2 tolerance at row ends, per the overlap invariant
	for _, p := range track {
		assert.GreaterOrEqual(t, p.X(), boundary.BBox().MinX()-tol)
		assert.LessOrEqual(t, p.X(), boundary.BBox().MaxX()+tol)
		assert.GreaterOrEqual(t, p.Y(), boundary.BBox().MinY()-tol)
		assert.LessOrEqual(t, p.Y(), boundary.BBox().MaxY()+tol)
	}
}
