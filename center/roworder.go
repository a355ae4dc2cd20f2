package center

import "github.com/arl/fieldcenter/geom"

// OrderRows returns the 1-based visiting order for the n rows of a
// block under the given mode and settings: a permutation of 1..n
// naming, in traversal order, which row is worked at each step.
func OrderRows(mode Mode, n int, s CenterSettings, ccw bool) []int {
	switch mode {
	case Spiral:
		return spiralOrder(n)
	case Circular:
		return circularOrder(n)
	case Lands:
		return landsOrder(n, s.NRowsPerLand, ccw)
	default:
		return upDownOrder(n, s.NRowsToSkip, s.LeaveSkippedRowsUnworked)
	}
}

// upDownOrder walks rows in strides of nRowsToSkip+1, then — unless
// leaveUnworked — sweeps back through whatever the forward pass
// skipped, each sweep starting at the current largest unvisited row
// and stepping back by the same stride, repeating until none remain.
func upDownOrder(n, nRowsToSkip int, leaveUnworked bool) []int {
	if n <= 0 {
		return nil
	}
	stride := nRowsToSkip + 1
	if stride < 1 {
		stride = 1
	}
	visited := make([]bool, n+1)
	order := make([]int, 0, n)
	for i := 1; i <= n; i += stride {
		order = append(order, i)
		visited[i] = true
	}
	if leaveUnworked {
		return order
	}
	for {
		start := -1
		for i := n; i >= 1; i-- {
			if !visited[i] {
				start = i
				break
			}
		}
		if start < 0 {
			break
		}
		for i := start; i >= 1; i -= stride {
			if !visited[i] {
				order = append(order, i)
				visited[i] = true
			}
		}
	}
	return order
}

// spiralOrder interleaves from both ends toward the middle:
// {1, n, 2, n-1, 3, n-2, ...}, ending on the middle row when n is odd.
func spiralOrder(n int) []int {
	if n <= 0 {
		return nil
	}
	order := make([]int, 0, n)
	lo, hi := 1, n
	for lo < hi {
		order = append(order, lo, hi)
		lo++
		hi--
	}
	if lo == hi {
		order = append(order, lo)
	}
	return order
}

// circularOrder starts near the row a fixed offset (4) up from the
// bottom and alternates stepping back (-(k+1)) and forward (+k),
// shrinking k whenever the next target would leave [1,n] or repeat a
// row already visited, and falling back to a plain ascending scan of
// whatever remains once k collapses to zero. Every row is visited
// exactly once.
func circularOrder(n int) []int {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []int{1}
	}
	visited := make([]bool, n+1)
	order := make([]int, 0, n)

	k := 4
	if k+1 > n {
		k = (n - 1) / 2
	}
	cur := k + 1
	if cur < 1 || cur > n {
		cur = 1
	}
	order = append(order, cur)
	visited[cur] = true

	skipBack := true
	for len(order) < n {
		var next int
		if skipBack {
			next = cur - (k + 1)
		} else {
			next = cur + k
		}
		if next < 1 || next > n || visited[next] {
			k = (n - len(order)) / 2
			if k > 0 {
				if skipBack {
					next = cur - (k + 1)
				} else {
					next = cur + k
				}
			}
			if k <= 0 || next < 1 || next > n || visited[next] {
				next = 0
				for i := 1; i <= n; i++ {
					if !visited[i] {
						next = i
						break
					}
				}
			}
		}
		order = append(order, next)
		visited[next] = true
		cur = next
		skipBack = !skipBack
	}
	return order
}

// landsBasePattern is the counterclockwise permutation for a land of
// size k: the upper half ascending, then the lower half descending,
// so work starts near the land's middle and spirals outward —
// outermost worked last on each side, keeping the unloading pipe over
// already-worked ground.
func landsBasePattern(k int) []int {
	lower := k / 2
	pattern := make([]int, 0, k)
	for i := lower + 1; i <= k; i++ {
		pattern = append(pattern, i)
	}
	for i := lower; i >= 1; i-- {
		pattern = append(pattern, i)
	}
	return pattern
}

// landsCWPattern mirrors landsBasePattern by reflecting row indices
// end for end, giving the clockwise traversal of the same land.
func landsCWPattern(k int) []int {
	ccw := landsBasePattern(k)
	cw := make([]int, len(ccw))
	for i, v := range ccw {
		cw[i] = k + 1 - v
	}
	return cw
}

// LandsCCW implements the orientation rule selecting which of the two
// permutation tables a land should use: counterclockwise when
// leftToRight equals bottomToTop, XORed with the pipe NOT being on
// the left side.
func LandsCCW(leftToRight, bottomToTop, pipeOnLeftSide bool) bool {
	return (leftToRight == bottomToTop) != !pipeOnLeftSide
}

// landsOrder partitions n rows into consecutive lands of landSize (the
// tail land may be shorter) and applies the land permutation table for
// each land's actual size, offset into that land's row range.
func landsOrder(n, landSize int, ccw bool) []int {
	if n <= 0 {
		return nil
	}
	if landSize <= 0 {
		landSize = n
	}
	order := make([]int, 0, n)
	for start := 1; start <= n; start += landSize {
		end := start + landSize - 1
		if end > n {
			end = n
		}
		size := end - start + 1
		var pattern []int
		if ccw {
			pattern = landsBasePattern(size)
		} else {
			pattern = landsCWPattern(size)
		}
		for _, p := range pattern {
			order = append(order, start-1+p)
		}
	}
	return order
}

// ApplyRowOrder reorders b.Rows and b.RowWaypoints per the 1-based
// order (as returned by OrderRows), then reverses the waypoints of
// every second visited row so consecutive rows connect end-to-start.
func ApplyRowOrder(b *Block, order []int) {
	if len(order) != len(b.Rows) {
		return
	}
	newRows := make([]*SubSegment, len(order))
	newWps := make([][]geom.Point, len(order))
	for i, rowNum := range order {
		newRows[i] = b.Rows[rowNum-1]
		newWps[i] = b.RowWaypoints[rowNum-1]
	}
	for i := 1; i < len(newWps); i += 2 {
		reverseWaypoints(newWps[i])
	}
	b.Rows = newRows
	b.RowWaypoints = newWps
}

func reverseWaypoints(wps []geom.Point) {
	for i, j := 0, len(wps)-1; i < j; i, j = i+1, j-1 {
		wps[i], wps[j] = wps[j], wps[i]
	}
}
