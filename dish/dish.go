// Package dish simulates a tilting platform covered in sliding round rocks
// and fixed cube obstacles, with full-state cycle detection so that
// astronomically distant states (a billion spins away) are computed by
// fast-forwarding over the detected period.
package dish

import (
	"fmt"
	"strconv"
	"strings"
)

// Platform is a mutable rectangular grid of Empty, Round and Cube cells.
// Cells are addressed by (x, y) with 0 ≤ x < Width and 0 ≤ y < Height.
type Platform struct {
	Width, Height int
	cells         []Cell // row-major: cells[y*Width+x]
}

// ParsePlatform builds a Platform from newline-separated rows.
// Returns ErrEmptyGrid, ErrNonRectangular, or ErrBadCell on malformed input.
// Complexity: O(W×H).
func ParsePlatform(input string) (*Platform, error) {
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
			switch line[x] {
			case Empty, Round, Cube:
				cells = append(cells, line[x])
			default:
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrBadCell, line[x], x, y)
			}
		}
	}

	return &Platform{Width: w, Height: len(lines), cells: cells}, nil
}

// At returns the cell at (x, y). Callers must ensure (x, y) is in bounds.
// Complexity: O(1).
func (p *Platform) At(x, y int) Cell {
	return p.cells[y*p.Width+x]
}

func (p *Platform) set(x, y int, c Cell) {
	p.cells[y*p.Width+x] = c
}

// Clone returns a deep copy of the platform.
func (p *Platform) Clone() *Platform {
	cells := make([]Cell, len(p.cells))
	copy(cells, p.cells)

	return &Platform{Width: p.Width, Height: p.Height, cells: cells}
}

// String renders the platform in its input format, one row per line.
func (p *Platform) String() string {
	var sb strings.Builder
	sb.Grow(len(p.cells) + p.Height)
	for y := 0; y < p.Height; y++ {
		sb.Write(p.cells[y*p.Width : (y+1)*p.Width])
		sb.WriteByte('\n')
	}

	return sb.String()
}

// key returns the snapshot identity of the current state, used as the
// cycle-detection map key. A string copy of the raw cells is cheap (one
// allocation) and hashes natively.
func (p *Platform) key() string {
	return string(p.cells)
}

// Tilt slides every round rock maximally toward the given edge.
//
// Each lane (column for North/South, row for West/East) is compacted in one
// linear scan: a frontier tracks the next free slot since the last cube (or
// the grid edge); every round rock relocates to the frontier, and each cube
// resets the frontier to the position just past itself. No cell is visited
// twice, so a full tilt is O(W×H).
func (p *Platform) Tilt(dir Direction) {
	switch dir {
	case North:
		for x := 0; x < p.Width; x++ {
			frontier := 0
			for y := 0; y < p.Height; y++ {
				switch p.At(x, y) {
				case Round:
					p.set(x, y, Empty)
					p.set(x, frontier, Round)
					frontier++
				case Cube:
					frontier = y + 1
				}
			}
		}
	case South:
		for x := 0; x < p.Width; x++ {
			frontier := p.Height - 1
			for y := p.Height - 1; y >= 0; y-- {
				switch p.At(x, y) {
				case Round:
					p.set(x, y, Empty)
					p.set(x, frontier, Round)
					frontier--
				case Cube:
					frontier = y - 1
				}
			}
		}
	case West:
		for y := 0; y < p.Height; y++ {
			frontier := 0
			for x := 0; x < p.Width; x++ {
				switch p.At(x, y) {
				case Round:
					p.set(x, y, Empty)
					p.set(frontier, y, Round)
					frontier++
				case Cube:
					frontier = x + 1
				}
			}
		}
	case East:
		for y := 0; y < p.Height; y++ {
			frontier := p.Width - 1
			for x := p.Width - 1; x >= 0; x-- {
				switch p.At(x, y) {
				case Round:
					p.set(x, y, Empty)
					p.set(frontier, y, Round)
					frontier--
				case Cube:
					frontier = x - 1
				}
			}
		}
	}
}

// Spin performs one full settle cycle: North, West, South, East.
func (p *Platform) Spin() {
	p.Tilt(North)
	p.Tilt(West)
	p.Tilt(South)
	p.Tilt(East)
}

// Load returns the weighted sum over round rocks: each contributes its
// distance from the south edge, Height − y.
// Complexity: O(W×H).
func (p *Platform) Load() int64 {
	var total int64
	for y := 0; y < p.Height; y++ {
		for x := 0; x < p.Width; x++ {
			if p.At(x, y) == Round {
				total += int64(p.Height - y)
			}
		}
	}

	return total
}

// SpinUntil advances the platform to its state after exactly target spins,
// without performing them all: it records every state's first-seen spin
// index and, on the first repeat at spin i of a state first seen at spin p,
// the sequence is periodic with period L = i − p, so the state at target is
// the state at p + ((target − p) mod L). Since snapshots are discarded as
// soon as the period is known, the remainder is replayed literally —
// (target − i) mod L more spins from the repeated state.
//
// Returns ErrBadTarget for target < 0 and ErrNoCycle when no repeat shows
// up within Options.SpinCap spins (and target was not reached literally).
//
// Complexity: O((p + L) × W×H) time, O((p + L) × W×H) snapshot bytes.
func (p *Platform) SpinUntil(target int, opts ...Option) error {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if target < 0 {
		return ErrBadTarget
	}
	if target == 0 {
		return nil
	}

	// seen maps snapshot → first spin index at which it occurred.
	seen := map[string]int{p.key(): 0}

	for i := 1; i <= cfg.SpinCap; i++ {
		p.Spin()
		if i == target {
			return nil // reached literally before any repeat
		}
		if first, ok := seen[p.key()]; ok {
			// 1) Periodic from spin `first` with period i−first.
			// 2) Replay only the remainder of target beyond the repeat.
			remaining := (target - i) % (i - first)
			for s := 0; s < remaining; s++ {
				p.Spin()
			}

			return nil
		}
		seen[p.key()] = i
	}

	return fmt.Errorf("%w: %d spins performed", ErrNoCycle, cfg.SpinCap)
}

// Part1 tilts the platform north once and reports the load.
func Part1(input string) (string, error) {
	p, err := ParsePlatform(input)
	if err != nil {
		return "", err
	}
	p.Tilt(North)

	return strconv.FormatInt(p.Load(), 10), nil
}

// Part2 reports the load after one billion spin cycles.
func Part2(input string) (string, error) {
	p, err := ParsePlatform(input)
	if err != nil {
		return "", err
	}
	if err := p.SpinUntil(1_000_000_000); err != nil {
		return "", err
	}

	return strconv.FormatInt(p.Load(), 10), nil
}
