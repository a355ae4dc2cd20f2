package center

import (
	"github.com/arl/assertgo"
	"github.com/arl/fieldcenter/geom"
	"github.com/arl/fieldcenter/internal/fctx"
)

// SplitIntoBlocks groups row segments into blocks by intersection
// count and spatial overlap. Each row is first cleaned of
// spurious island/boundary intersection pairs and, if left with an
// odd count, trimmed to even before being split into sub-segments.
func SplitIntoBlocks(ctx *fctx.Context, rows []*RowSegment) []*Block {
	ctx.StartTimer(fctx.StageBlockSplit)
	defer ctx.StopTimer(fctx.StageBlockSplit)

	var open []*Block
	var closed []*Block
	nextID := 1

	for _, row := range rows {
		cleanupIntersections(row)
		if len(row.Intersections)%2 != 0 {
			row.Intersections = row.Intersections[:len(row.Intersections)-1]
		}
		subs := splitRow(row)
		if len(subs) == 0 {
			continue
		}

		startNew := len(subs) != len(open)
		if !startNew {
			for i, s := range subs {
				last := open[i].Rows[len(open[i].Rows)-1]
				if !s.Overlaps(last) {
					startNew = true
					break
				}
			}
		}

		if startNew {
			for _, b := range open {
				closeBlock(b, &nextID)
				closed = append(closed, b)
			}
			open = make([]*Block, len(subs))
			for i, s := range subs {
				open[i] = &Block{Rows: []*SubSegment{s}}
			}
		} else {
			for i, s := range subs {
				open[i].Rows = append(open[i].Rows, s)
			}
		}
	}
	for _, b := range open {
		closeBlock(b, &nextID)
		closed = append(closed, b)
	}

	ctx.Progressf("block split: %d rows into %d blocks", len(rows), len(closed))
	return closed
}

// cleanupIntersections walks a row's intersections left to right and
// erases spurious pairs caused by an island headland crossing the
// field boundary: whenever the row was off every island before the
// previous intersection, that previous intersection was an island
// crossing and this one is not, both are dropped.
func cleanupIntersections(row *RowSegment) {
	n := len(row.Intersections)
	if n == 0 {
		return
	}
	toDelete := make([]bool, n)
	onIsland := false
	for i := 1; i < n; i++ {
		prev, cur := row.Intersections[i-1], row.Intersections[i]
		if !onIsland && prev.IslandID != nil && cur.IslandID == nil {
			toDelete[i-1] = true
			toDelete[i] = true
		}
		if prev.IslandID != nil {
			onIsland = !onIsland
		}
	}
	kept := row.Intersections[:0]
	for i, is := range row.Intersections {
		if !toDelete[i] {
			kept = append(kept, is)
		}
	}
	row.Intersections = kept
}

// splitRow slices a row's (even, post-cleanup) intersection list into
// consecutive left/right pairs.
func splitRow(row *RowSegment) []*SubSegment {
	assert.True(len(row.Intersections)%2 == 0, "splitRow: odd intersection count %d after cleanup", len(row.Intersections))
	k := len(row.Intersections) / 2
	subs := make([]*SubSegment, k)
	for i := 0; i < k; i++ {
		subs[i] = &SubSegment{
			Left:              row.Intersections[2*i],
			Right:             row.Intersections[2*i+1],
			Y:                 row.Y,
			OriginalRowNumber: row.OriginalRowNumber,
			AdjacentIslands:   row.AdjacentIslands,
		}
	}
	return subs
}

func closeBlock(b *Block, nextID *int) {
	b.ID = *nextID
	*nextID++
	bottom := b.Rows[0]
	top := b.Rows[len(b.Rows)-1]
	b.Corners = map[Corner]geom.Point{
		BL: bottom.Left,
		BR: bottom.Right,
		TL: top.Left,
		TR: top.Right,
	}
}
