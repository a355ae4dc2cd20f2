package center

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arl/fieldcenter/geom"
	"github.com/arl/fieldcenter/internal/fctx"
)

func TestExitCornerIsInvolution(t *testing.T) {
	corners := []Corner{BL, BR, TL, TR}
	for _, c := range corners {
		for n := 1; n <= 8; n++ {
			for s := 0; s < 4; s++ {
				exit := ExitCorner(c, n, s)
				back := ExitCorner(exit, n, s)
				assert.Equal(t, c, back, "n=%d s=%d c=%v", n, s, c)
			}
		}
	}
}

func TestExitCornerSameRowCountSameSide(t *testing.T) {
	// an even row count returns to the same left/right column.
	assert.Equal(t, BL, ExitCorner(BL, 2, 1))
	assert.Equal(t, TL, ExitCorner(BL, 2, 0))
}

func fieldHeadland(n int) *geom.Polygon {
	pts := make([]geom.Point, n)
	for i := range pts {
		pts[i] = geom.NewPoint(float32(i), 0)
	}
	return geom.NewPolygon(pts)
}

func cornerPoint(ref *geom.HeadlandRef, edge geom.EdgeIx) geom.Point {
	p := geom.NewPoint(0, 0)
	p.Headland = ref
	p.HeadlandEdge = edge
	return p
}

func TestSequenceSingleBlockTrivial(t *testing.T) {
	fieldRef := &geom.HeadlandRef{Kind: geom.HeadlandField}
	b := &Block{
		Rows: []*SubSegment{{}},
		Corners: map[Corner]geom.Point{
			BL: cornerPoint(fieldRef, geom.EdgeIx{FromIx: 0, ToIx: 1}),
			BR: cornerPoint(fieldRef, geom.EdgeIx{FromIx: 1, ToIx: 2}),
			TL: cornerPoint(fieldRef, geom.EdgeIx{FromIx: 2, ToIx: 3}),
			TR: cornerPoint(fieldRef, geom.EdgeIx{FromIx: 3, ToIx: 0}),
		},
	}
	ctx := fctx.Disabled()
	order, entry, dir := Sequence(ctx, rand.New(rand.NewSource(1)), []*Block{b}, fieldHeadland(4), 0, 1, 1, 0,
		func(ref *geom.HeadlandRef) *geom.Polygon { return fieldHeadland(4) }, DefaultGASettings())
	assert.Equal(t, []int{0}, order)
	assert.Equal(t, []Corner{BL}, entry)
	assert.Equal(t, []int{1}, dir)
}

func TestSequenceDeterministicForFixedSeed(t *testing.T) {
	fieldRef := &geom.HeadlandRef{Kind: geom.HeadlandField}
	blocks := make([]*Block, 4)
	for i := range blocks {
		base := i * 4
		blocks[i] = &Block{
			Rows: []*SubSegment{{}, {}},
			Corners: map[Corner]geom.Point{
				BL: cornerPoint(fieldRef, geom.EdgeIx{FromIx: base, ToIx: base + 1}),
				BR: cornerPoint(fieldRef, geom.EdgeIx{FromIx: base + 1, ToIx: base + 2}),
				TL: cornerPoint(fieldRef, geom.EdgeIx{FromIx: base + 2, ToIx: base + 3}),
				TR: cornerPoint(fieldRef, geom.EdgeIx{FromIx: base + 3, ToIx: base + 4}),
			},
		}
	}
	poly := fieldHeadland(16)
	resolve := func(ref *geom.HeadlandRef) *geom.Polygon { return poly }
	settings := DefaultGASettings()
	settings.PopulationMultiplier = 8
	settings.GenerationMultiplier = 5

	rng := rand.New(rand.NewSource(42))
	_, _, _ = Sequence(fctx.Disabled(), rng, blocks, poly, 0, 1, 1, 0, resolve, settings)
	// Sequence doesn't expose per-generation fitness directly; re-running
	// with a fixed seed is deterministic, which is the property that
	// matters for reproducibility in CLI use.
	order1, _, _ := Sequence(fctx.Disabled(), rand.New(rand.NewSource(42)), blocks, poly, 0, 1, 1, 0, resolve, settings)
	order2, _, _ := Sequence(fctx.Disabled(), rand.New(rand.NewSource(42)), blocks, poly, 0, 1, 1, 0, resolve, settings)
	assert.Equal(t, order1, order2)
}
