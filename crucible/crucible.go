// Package crucible solves the "minimum heat loss" routing puzzle: find the
// cheapest path across a grid of per-cell entry costs, where the vehicle must
// keep moving in a straight line for at least MinRun cells after every turn,
// must turn after at most MaxRun cells, and may never reverse.
package crucible

import (
	"container/heap"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Grid is an immutable rectangular field of per-cell entry costs (0..9).
// Cells are addressed by (x, y) with 0 ≤ x < Width and 0 ≤ y < Height.
type Grid struct {
	Width, Height int
	cost          []uint8 // row-major: cost[y*Width+x]
}

// At returns the cost of entering cell (x, y).
// Callers must ensure (x, y) is in bounds.
// Complexity: O(1).
func (g *Grid) At(x, y int) int64 {
	return int64(g.cost[y*g.Width+x])
}

// InBounds reports whether (x, y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// ParseGrid builds a Grid from newline-separated rows of decimal digits.
// Returns ErrEmptyGrid for empty input, ErrNonRectangular if any row length
// differs from the first, and ErrBadCell for any non-digit character.
// Complexity: O(W×H) time and memory.
func ParseGrid(input string) (*Grid, error) {
	lines := splitLines(input)
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, ErrEmptyGrid
	}

	w := len(lines[0])
	cost := make([]uint8, 0, len(lines)*w)
	for y, line := range lines {
		if len(line) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(line), w)
		}
		for x := 0; x < len(line); x++ {
			c := line[x]
			if c < '0' || c > '9' {
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrBadCell, c, x, y)
			}
			cost = append(cost, c-'0')
		}
	}

	return &Grid{Width: w, Height: len(lines), cost: cost}, nil
}

// MinimumHeatLoss computes the minimum total entry cost of a valid route from
// (0,0) to (Width-1, Height-1). The start cell's own cost is never counted.
//
// The search is Dijkstra over the implicit vertex space
// (x, y, direction-of-entering-run); from each popped vertex it emits one
// edge per run length MinRun..MaxRun in each of the two directions
// perpendicular to the entering run (the start vertex, carrying DirStart,
// may open in all four). Run costs accumulate incrementally, so generating
// all edges of one vertex costs O(MaxRun), not O(MaxRun²).
//
// Returns ErrNilGrid, ErrBadRunBounds for invalid configuration, and
// ErrNoPath when no direction variant of the target cell is reachable.
//
// Complexity:
//
//   - Time:  O(V·MaxRun·log V) with V = Width×Height×5
//   - Space: O(V)
func MinimumHeatLoss(g *Grid, opts ...Option) (int64, error) {
	// 1) Build and validate Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return 0, ErrNilGrid
	}
	if cfg.MinRun < 1 || cfg.MaxRun < cfg.MinRun {
		return 0, ErrBadRunBounds
	}

	// 2) A 1×1 grid is already at the target; no cell is ever entered.
	if g.Width == 1 && g.Height == 1 {
		return 0, nil
	}

	// 3) dist[vertex] holds the best-known distance; math.MaxInt64 = unvisited.
	//    Vertices are flattened as (y*Width+x)*dirCount + dir.
	vertexCount := g.Width * g.Height * dirCount
	dist := make([]int64, vertexCount)
	for i := range dist {
		dist[i] = math.MaxInt64
	}
	done := make([]bool, vertexCount)

	// 4) Seed the frontier with the start vertex under the synthetic
	//    DirStart direction, at distance 0.
	start := runItem{x: 0, y: 0, dir: DirStart, dist: 0}
	dist[vertexIndex(g, 0, 0, DirStart)] = 0
	pq := runPQ{&start}
	heap.Init(&pq)

	r := &searcher{g: g, cfg: cfg, dist: dist, done: done, pq: pq}
	r.process()

	// 5) The answer is the minimum finalized distance among the direction
	//    variants of the target cell (DirStart never reoccurs past (0,0)).
	best := int64(math.MaxInt64)
	for d := North; d <= West; d++ {
		if v := dist[vertexIndex(g, g.Width-1, g.Height-1, d)]; v < best {
			best = v
		}
	}
	if best == math.MaxInt64 {
		return 0, fmt.Errorf("%w: runs of %d..%d cannot reach (%d,%d)",
			ErrNoPath, cfg.MinRun, cfg.MaxRun, g.Width-1, g.Height-1)
	}

	return best, nil
}

// Part1 parses the input and reports the minimum heat loss with runs of
// 1 to 3 cells, formatted as a decimal string.
func Part1(input string) (string, error) {
	return solve(input, 1, 3)
}

// Part2 reports the minimum heat loss for the ultra crucible: runs of
// 4 to 10 cells.
func Part2(input string) (string, error) {
	return solve(input, 4, 10)
}

func solve(input string, min, max int) (string, error) {
	g, err := ParseGrid(input)
	if err != nil {
		return "", err
	}
	loss, err := MinimumHeatLoss(g, WithRunBounds(min, max))
	if err != nil {
		return "", err
	}

	return strconv.FormatInt(loss, 10), nil
}

// searcher holds the mutable state for a single MinimumHeatLoss execution.
type searcher struct {
	g    *Grid
	cfg  Options
	dist []int64 // vertex → best-known distance (MaxInt64 = unvisited)
	done []bool  // vertex → distance finalized
	pq   runPQ   // lazy min-heap of candidate vertices
}

// vertexIndex flattens (x, y, dir) into the dist/done index space.
func vertexIndex(g *Grid, x, y int, dir Direction) int {
	return (y*g.Width+x)*dirCount + int(dir)
}

// process runs the main Dijkstra loop until the frontier empties.
// Standard lazy-deletion discipline: a popped entry whose distance was
// improved after it was queued is skipped, never reprocessed.
func (r *searcher) process() {
	for r.pq.Len() > 0 {
		// 1) Pop the smallest-distance frontier entry.
		item := heap.Pop(&r.pq).(*runItem)
		idx := vertexIndex(r.g, item.x, item.y, item.dir)

		// 2) Skip stale entries; the vertex was already finalized cheaper.
		if r.done[idx] {
			continue
		}
		r.done[idx] = true

		// 3) Relax every legal run starting at this vertex.
		r.relax(item.x, item.y, item.dir, item.dist)
	}
}

// relax emits edges for all runs of MinRun..MaxRun cells perpendicular to
// the entering direction. Entering vertically allows only horizontal runs
// and vice versa; DirStart allows all four. Reversing is impossible by
// construction since the entering axis is excluded entirely.
func (r *searcher) relax(x, y int, dir Direction, d int64) {
	wasVertical := dir == North || dir == South
	wasHorizontal := dir == East || dir == West

	if !wasVertical {
		r.relaxRun(x, y, d, 0, -1, North)
		r.relaxRun(x, y, d, 0, +1, South)
	}
	if !wasHorizontal {
		r.relaxRun(x, y, d, +1, 0, East)
		r.relaxRun(x, y, d, -1, 0, West)
	}
}

// relaxRun walks up to MaxRun cells along (dx, dy), accumulating entry costs
// incrementally, and relaxes the vertex at every step ≥ MinRun.
func (r *searcher) relaxRun(x, y int, d int64, dx, dy int, dir Direction) {
	runCost := int64(0)
	for step := 1; step <= r.cfg.MaxRun; step++ {
		nx, ny := x+dx*step, y+dy*step
		if !r.g.InBounds(nx, ny) {
			return // the rest of the run leaves the grid too
		}
		runCost += r.g.At(nx, ny)
		if step < r.cfg.MinRun {
			continue // cost accrues, but stopping here is not allowed
		}

		idx := vertexIndex(r.g, nx, ny, dir)
		newDist := d + runCost
		if newDist >= r.dist[idx] {
			continue // not strictly better: avoid duplicate heap entries
		}
		r.dist[idx] = newDist
		heap.Push(&r.pq, &runItem{x: nx, y: ny, dir: dir, dist: newDist})
	}
}

// splitLines splits input into lines, dropping a trailing blank line so both
// "1\n2" and "1\n2\n" parse identically.
func splitLines(input string) []string {
	lines := strings.Split(strings.TrimRight(input, "\n"), "\n")
	if len(lines) == 1 && lines[0] == "" {
		return nil
	}

	return lines
}

// runItem represents a search vertex and its candidate distance, stored in
// the priority queue to order vertices by increasing distance.
type runItem struct {
	x, y int
	dir  Direction
	dist int64
}

// runPQ is a min-heap of *runItem ordered by dist ascending, used with the
// lazy-decrease-key pattern: improved distances push fresh entries and
// outdated ones are discarded when popped (checked via searcher.done).
type runPQ []*runItem

// Len returns the number of items in the heap.
func (pq runPQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq runPQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

// Swap swaps two elements in the heap.
func (pq runPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap; x must be of type *runItem.
func (pq *runPQ) Push(x interface{}) { *pq = append(*pq, x.(*runItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *runPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
