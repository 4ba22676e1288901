// Package trails finds the longest simple hike through a forest maze of
// corridors, junctions and icy slopes. Corridors are condensed into a small
// weighted junction graph first; the exhaustive search over simple paths
// then runs on dozens of vertices instead of thousands of cells.
package trails

import (
	"fmt"
	"strconv"
	"strings"
)

// Grid is an immutable rectangular trail map.
// Cells are addressed by (x, y) with 0 ≤ x < Width and 0 ≤ y < Height.
type Grid struct {
	Width, Height int
	cells         []Cell // row-major: cells[y*Width+x]
}

// At returns the cell at (x, y). Callers must ensure (x, y) is in bounds.
// Complexity: O(1).
func (g *Grid) At(x, y int) Cell {
	return g.cells[y*g.Width+x]
}

// ParseGrid builds a Grid from newline-separated rows of map characters.
// Returns ErrEmptyGrid, ErrNonRectangular, or ErrBadCell on malformed input.
// Complexity: O(W×H).
func ParseGrid(input string) (*Grid, error) {
	lines := strings.Split(strings.TrimRight(input, "\n"), "\n")
	if len(lines) == 1 && lines[0] == "" {
		return nil, ErrEmptyGrid
	}
	if len(lines[0]) == 0 {
		return nil, ErrEmptyGrid
	}

	w := len(lines[0])
	cells := make([]Cell, 0, len(lines)*w)
	for y, line := range lines {
		if len(line) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(line), w)
		}
		for x := 0; x < len(line); x++ {
			var c Cell
			switch line[x] {
			case '#':
				c = Wall
			case '.':
				c = Open
			case '^':
				c = SlopeNorth
			case 'v':
				c = SlopeSouth
			case '>':
				c = SlopeEast
			case '<':
				c = SlopeWest
			default:
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrBadCell, line[x], x, y)
			}
			cells = append(cells, c)
		}
	}

	return &Grid{Width: w, Height: len(lines), cells: cells}, nil
}

// LongestHike returns the maximum number of steps of a simple (no cell
// revisited) path from the open cell on the top row to the open cell on the
// bottom row. With DefaultOptions, slopes may only be entered moving in
// their direction; WithClimbSlopes lifts that rule.
//
// Returns ErrNilGrid, ErrNoTrailhead when either trailhead is missing, and
// ErrNoRoute when no simple path connects them.
//
// Complexity: condensation is O(W×H); the exhaustive DFS is exponential in
// the junction count, which stays small for corridor-style maps.
func LongestHike(g *Grid, opts ...Option) (int64, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return 0, ErrNilGrid
	}

	jg, err := condense(g, cfg.ClimbSlopes)
	if err != nil {
		return 0, err
	}

	// Exhaustive search over simple junction paths with mark/unmark
	// backtracking; the visited set is local to this call.
	visited := make([]bool, len(jg.vertices))
	best, found := dfs(jg, visited, jg.start, 0)
	if !found {
		return 0, ErrNoRoute
	}

	return best, nil
}

// Part1 reports the longest hike with slopes respected.
func Part1(input string) (string, error) {
	return solve(input)
}

// Part2 reports the longest hike with slopes climbable.
func Part2(input string) (string, error) {
	return solve(input, WithClimbSlopes())
}

func solve(input string, opts ...Option) (string, error) {
	g, err := ParseGrid(input)
	if err != nil {
		return "", err
	}
	steps, err := LongestHike(g, opts...)
	if err != nil {
		return "", err
	}

	return strconv.FormatInt(steps, 10), nil
}

// edge is one condensed corridor: `steps` grid steps to junction `to`.
type edge struct {
	to    int
	steps int64
}

// junctionGraph is the condensed map: vertices are the start cell, the end
// cell, dead ends, and every cell with three or more walkable exits.
type junctionGraph struct {
	vertices [][]edge
	coords   []coord
	start    int
	end      int
}

type coord struct{ x, y int }

// dfs explores all simple paths from vertex v, returning the best total
// distance to the end and whether the end was reached at all. The visited
// slice is marked before descending and unmarked on return, so sibling
// branches see a clean state.
func dfs(jg *junctionGraph, visited []bool, v int, dist int64) (int64, bool) {
	if v == jg.end {
		return dist, true
	}

	visited[v] = true
	best, found := int64(0), false
	for _, e := range jg.vertices[v] {
		if visited[e.to] {
			continue
		}
		if d, ok := dfs(jg, visited, e.to, dist+e.steps); ok {
			found = true
			if d > best {
				best = d
			}
		}
	}
	visited[v] = false

	return best, found
}

// condense walks every corridor of the grid once, producing the junction
// graph. Slope legality is target-cell based: a step onto a slope is legal
// only when moving in the slope's direction (unless climbSlopes).
func condense(g *Grid, climbSlopes bool) (*junctionGraph, error) {
	// 1) Locate the trailheads: the single open cell on the top and bottom rows.
	startX, endX := -1, -1
	for x := 0; x < g.Width; x++ {
		if g.At(x, 0) == Open {
			startX = x
		}
		if g.At(x, g.Height-1) == Open {
			endX = x
		}
	}
	if startX < 0 || endX < 0 {
		return nil, ErrNoTrailhead
	}

	jg := &junctionGraph{}
	index := make(map[coord]int)
	intern := func(c coord) int {
		if idx, ok := index[c]; ok {
			return idx
		}
		idx := len(jg.vertices)
		index[c] = idx
		jg.vertices = append(jg.vertices, nil)
		jg.coords = append(jg.coords, c)

		return idx
	}

	jg.start = intern(coord{startX, 0})

	// 2) Flood the junction graph: from each newly discovered vertex, walk
	//    every legal exit corridor to the next vertex.
	seen := map[int]bool{}
	stack := []int{jg.start}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if seen[v] {
			continue
		}
		seen[v] = true

		from := jg.coords[v]
		for d := North; d < dirCount; d++ {
			if !canStep(g, from, d, climbSlopes) {
				continue
			}
			to, steps := walk(g, from, d, climbSlopes)
			w := intern(to)
			jg.vertices[v] = append(jg.vertices[v], edge{to: w, steps: steps})
			stack = append(stack, w)
		}
	}

	jg.end = intern(coord{endX, g.Height - 1})

	return jg, nil
}

// canStep reports whether a step from c in direction d lands on a walkable
// cell. Slopes admit entry only along their own direction when respected.
func canStep(g *Grid, c coord, d Direction, climbSlopes bool) bool {
	nx, ny := c.x, c.y
	switch d {
	case North:
		ny--
	case South:
		ny++
	case East:
		nx++
	case West:
		nx--
	}
	if nx < 0 || nx >= g.Width || ny < 0 || ny >= g.Height {
		return false
	}

	cell := g.At(nx, ny)
	if climbSlopes {
		return cell != Wall
	}
	switch cell {
	case Open:
		return true
	case SlopeNorth:
		return d == North
	case SlopeSouth:
		return d == South
	case SlopeEast:
		return d == East
	case SlopeWest:
		return d == West
	default:
		return false
	}
}

// walk follows a corridor from c in direction d until it reaches the next
// vertex: a grid-edge cell, a dead end, or a cell with multiple onward
// exits. Returns that cell and the number of steps taken.
func walk(g *Grid, c coord, d Direction, climbSlopes bool) (coord, int64) {
	steps := int64(0)
	for {
		// 1) Stepping off the grid ends the corridor at the boundary cell.
		if (d == West && c.x == 0) || (d == East && c.x+1 == g.Width) ||
			(d == North && c.y == 0) || (d == South && c.y+1 == g.Height) {
			return c, steps
		}

		switch d {
		case North:
			c.y--
		case South:
			c.y++
		case East:
			c.x++
		case West:
			c.x--
		}
		steps++

		// 2) Collect onward exits, never the direction we came from.
		var onward []Direction
		for nd := North; nd < dirCount; nd++ {
			if nd == d.opposite() {
				continue
			}
			if canStep(g, c, nd, climbSlopes) {
				onward = append(onward, nd)
			}
		}

		// 3) Exactly one exit means the corridor continues; anything else
		//    (dead end or junction) is a vertex.
		if len(onward) != 1 {
			return c, steps
		}
		d = onward[0]
	}
}
