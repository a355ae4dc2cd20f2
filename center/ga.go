package center

import (
	"math"
	"math/rand"

	"github.com/arl/fieldcenter/geom"
	"github.com/arl/fieldcenter/internal/fctx"
)

// ExitCorner returns the corner a block is left from, entering at c,
// for a block of n rows worked with skip count s. sameSide holds when
// the zig-zag ends on the same left/right column it started on;
// sameEdge holds when it ends on the same top/bottom edge. Flipping a
// side that doesn't change is its own inverse, so for a fixed (n, s)
// this function is an involution: ExitCorner(ExitCorner(c,n,s),n,s)
// == c.
func ExitCorner(c Corner, n, s int) Corner {
	sameSide := n%2 == 0
	sameEdge := s%2 == 1
	left := c == BL || c == TL
	bottom := c == BL || c == BR
	if !sameSide {
		left = !left
	}
	if !sameEdge {
		bottom = !bottom
	}
	switch {
	case left && bottom:
		return BL
	case !left && bottom:
		return BR
	case left && !bottom:
		return TL
	default:
		return TR
	}
}

// PolygonResolver looks up the polygon a headland reference names, so
// the GA's distance function can walk it without owning the field's
// island/headland structures itself.
type PolygonResolver func(ref *geom.HeadlandRef) *geom.Polygon

// individual is a composite chromosome: B (block visiting order, a
// permutation of block indices) and E (one entry corner per block,
// indexed by block index, not by position in B).
type individual struct {
	B   []int
	E   []Corner
	dir []int // directionToNextBlock per position in B, filled by evaluate
	fit float64
}

// Sequence runs the genetic block sequencer: it returns the blocks'
// visiting order, each block's chosen entry corner, and the winning
// transition direction used to reach the next block in that order.
func Sequence(ctx *fctx.Context, rng *rand.Rand, blocks []*Block, innermost *geom.Polygon, circleStart, circleStep, nHeadlandPasses, nRowsToSkip int, resolve PolygonResolver, s GASettings) (order []int, entryCorner []Corner, direction []int) {
	ctx.StartTimer(fctx.StageGA)
	defer ctx.StopTimer(fctx.StageGA)

	nBlocks := len(blocks)
	if nBlocks == 0 {
		return nil, nil, nil
	}
	if nBlocks == 1 {
		return []int{0}, []Corner{BL}, []int{1}
	}

	popSize := s.PopulationMultiplier * nBlocks
	if popSize < 4 {
		popSize = 4
	}
	generations := s.GenerationMultiplier * nBlocks

	pop := make([]*individual, popSize)
	for i := range pop {
		pop[i] = randomIndividual(rng, nBlocks)
		evaluate(pop[i], blocks, innermost, circleStart, circleStep, nHeadlandPasses, nRowsToSkip, resolve)
	}

	best := fittest(pop)
	for gen := 0; gen < generations; gen++ {
		next := make([]*individual, 0, popSize)
		next = append(next, best) // elitism
		for len(next) < popSize {
			p1 := tournamentSelect(rng, pop, s.TournamentSize)
			p2 := tournamentSelect(rng, pop, s.TournamentSize)
			child := crossover(rng, p1, p2)
			mutate(rng, child, s.MutationRate)
			evaluate(child, blocks, innermost, circleStart, circleStep, nHeadlandPasses, nRowsToSkip, resolve)
			next = append(next, child)
		}
		pop = next
		gb := fittest(pop)
		if gb.fit > best.fit {
			best = gb
		}
		ctx.Progressf("GA generation %d: best fitness %.4f", gen, best.fit)
	}

	entryCorner = make([]Corner, nBlocks)
	copy(entryCorner, best.E)
	return best.B, entryCorner, best.dir
}

func randomIndividual(rng *rand.Rand, nBlocks int) *individual {
	b := rng.Perm(nBlocks)
	e := make([]Corner, nBlocks)
	for i := range e {
		e[i] = Corner(rng.Intn(4))
	}
	return &individual{B: b, E: e}
}

func fittest(pop []*individual) *individual {
	best := pop[0]
	for _, ind := range pop[1:] {
		if ind.fit > best.fit {
			best = ind
		}
	}
	return best
}

func tournamentSelect(rng *rand.Rand, pop []*individual, size int) *individual {
	if size < 1 {
		size = 1
	}
	best := pop[rng.Intn(len(pop))]
	for i := 1; i < size; i++ {
		c := pop[rng.Intn(len(pop))]
		if c.fit > best.fit {
			best = c
		}
	}
	return best
}

// crossover applies order-preserving crossover to B (classic OX) and
// uniform crossover to E.
func crossover(rng *rand.Rand, p1, p2 *individual) *individual {
	n := len(p1.B)
	child := &individual{B: make([]int, n), E: make([]Corner, n)}

	a, b := rng.Intn(n), rng.Intn(n)
	if a > b {
		a, b = b, a
	}
	used := make(map[int]bool, n)
	for i := a; i <= b; i++ {
		child.B[i] = p1.B[i]
		used[p1.B[i]] = true
	}
	j := 0
	for i := 0; i < n; i++ {
		if i >= a && i <= b {
			continue
		}
		for used[p2.B[j]] {
			j++
		}
		child.B[i] = p2.B[j]
		used[p2.B[j]] = true
		j++
	}

	for i := 0; i < n; i++ {
		if rng.Intn(2) == 0 {
			child.E[i] = p1.E[i]
		} else {
			child.E[i] = p2.E[i]
		}
	}
	return child
}

func mutate(rng *rand.Rand, ind *individual, rate float32) {
	n := len(ind.B)
	for i := 0; i < n; i++ {
		if rng.Float32() < rate {
			j := rng.Intn(n)
			ind.B[i], ind.B[j] = ind.B[j], ind.B[i]
		}
	}
	for i := 0; i < n; i++ {
		if rng.Float32() < rate {
			ind.E[i] = Corner(rng.Intn(4))
		}
	}
}

func startIxForDir(edge geom.EdgeIx, dir int) int {
	if dir >= 0 {
		return edge.ToIx
	}
	return edge.FromIx
}

func endIxForDir(edge geom.EdgeIx, dir int) int {
	if dir >= 0 {
		return edge.FromIx
	}
	return edge.ToIx
}

const infDistance = float32(1e18)

// evaluate computes totalDistance over ind.B/ind.E and sets ind.fit =
// 10000/totalDistance, recording the winning transition direction for
// each step in ind.dir. An infeasible step adds infDistance, which
// drives the fitness close to zero; a zero total distance gets the
// largest possible fitness.
func evaluate(ind *individual, blocks []*Block, innermost *geom.Polygon, circleStart, circleStep, nHeadlandPasses, nRowsToSkip int, resolve PolygonResolver) {
	n := len(ind.B)
	ind.dir = make([]int, n)
	var total float32

	firstBlock := blocks[ind.B[0]]
	entry := firstBlock.Corner(ind.E[ind.B[0]])
	if entry.Headland == nil || entry.Headland.Kind != geom.HeadlandField {
		total = infDistance
	} else if nHeadlandPasses > 0 {
		ix2 := endIxForDir(entry.HeadlandEdge, circleStep)
		d, ok := innermost.DistanceAlong(circleStart, ix2, circleStep)
		if !ok {
			d = infDistance
		}
		total += d
		ind.dir[0] = circleStep
	} else {
		ixF := endIxForDir(entry.HeadlandEdge, 1)
		dF, okF := innermost.DistanceAlong(circleStart, ixF, 1)
		ixB := endIxForDir(entry.HeadlandEdge, -1)
		dB, okB := innermost.DistanceAlong(circleStart, ixB, -1)
		d, dir := pickShorter(dF, okF, 1, dB, okB, -1)
		total += d
		ind.dir[0] = dir
	}

	for i := 1; i < n; i++ {
		prevBlock := blocks[ind.B[i-1]]
		prevExit := prevBlock.Corner(ExitCorner(ind.E[ind.B[i-1]], prevBlock.RowCount(), nRowsToSkip))
		curBlock := blocks[ind.B[i]]
		curEntry := curBlock.Corner(ind.E[ind.B[i]])

		if prevExit.Headland == nil || curEntry.Headland == nil || !prevExit.Headland.Same(curEntry.Headland) {
			total += infDistance
			ind.dir[i-1] = 1
			continue
		}
		poly := resolve(prevExit.Headland)
		if poly == nil {
			total += infDistance
			continue
		}
		ixF1, ixF2 := startIxForDir(prevExit.HeadlandEdge, 1), endIxForDir(curEntry.HeadlandEdge, 1)
		dF, okF := poly.DistanceAlong(ixF1, ixF2, 1)
		ixB1, ixB2 := startIxForDir(prevExit.HeadlandEdge, -1), endIxForDir(curEntry.HeadlandEdge, -1)
		dB, okB := poly.DistanceAlong(ixB1, ixB2, -1)
		d, dir := pickShorter(dF, okF, 1, dB, okB, -1)
		total += d
		ind.dir[i-1] = dir
	}

	if total <= 0 {
		ind.fit = math.MaxFloat64
		return
	}
	ind.fit = 10000 / float64(total)
}

func pickShorter(dF float32, okF bool, dirF int, dB float32, okB bool, dirB int) (float32, int) {
	switch {
	case okF && okB:
		if dF <= dB {
			return dF, dirF
		}
		return dB, dirB
	case okF:
		return dF, dirF
	case okB:
		return dB, dirB
	default:
		return infDistance, dirF
	}
}
