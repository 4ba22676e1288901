// Package crucible defines core types, options, and sentinel errors
// for the constrained-step shortest-path solver.
package crucible

import (
	"errors"
)

// Sentinel errors returned by the crucible implementation.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("crucible: input grid must have at least one row and one column")

	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("crucible: all rows must have the same length")

	// ErrBadCell indicates a grid character outside '0'..'9'.
	ErrBadCell = errors.New("crucible: grid cells must be decimal digits")

	// ErrNilGrid indicates that a nil *Grid was passed to MinimumHeatLoss.
	ErrNilGrid = errors.New("crucible: grid is nil")

	// ErrBadRunBounds indicates MinRun < 1 or MaxRun < MinRun.
	ErrBadRunBounds = errors.New("crucible: run bounds must satisfy 1 <= MinRun <= MaxRun")

	// ErrNoPath indicates that no valid route reaches the target cell
	// under the configured run constraints.
	ErrNoPath = errors.New("crucible: no path to target cell")
)

// Direction identifies the direction of the run that entered a cell.
// The search vertex space is (x, y, Direction); DirStart is the synthetic
// fifth direction assigned to the start vertex so its first move is exempt
// from the no-straight-continuation rule.
type Direction uint8

const (
	North Direction = iota // entered moving north (decreasing y)
	South                  // entered moving south (increasing y)
	East                   // entered moving east (increasing x)
	West                   // entered moving west (decreasing x)

	// DirStart marks the start vertex, which has no predecessor run.
	DirStart

	// dirCount is the size of the Direction axis of the vertex space.
	dirCount = 5
)

// String returns a human-readable direction name, mainly for error text.
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case South:
		return "South"
	case East:
		return "East"
	case West:
		return "West"
	case DirStart:
		return "Start"
	default:
		return "Unknown"
	}
}

// Options configures the run-length constraints of the search.
//
// MinRun – after turning into a direction, the crucible must travel at least
//
//	this many cells before it may turn again. Must be ≥ 1.
//
// MaxRun – the crucible must turn after at most this many consecutive cells
//
//	in one direction. Must be ≥ MinRun.
type Options struct {
	MinRun int // minimum consecutive cells per run
	MaxRun int // maximum consecutive cells per run
}

// Option represents a functional option for configuring MinimumHeatLoss.
type Option func(*Options)

// WithRunBounds sets both run-length constraints at once.
// Panics with ErrBadRunBounds on nonsensical bounds, following the
// fail-fast convention for option constructors.
func WithRunBounds(min, max int) Option {
	return func(o *Options) {
		if min < 1 || max < min {
			panic(ErrBadRunBounds.Error())
		}
		o.MinRun = min
		o.MaxRun = max
	}
}

// DefaultOptions returns the classic part-one configuration:
// runs of 1 to 3 cells.
func DefaultOptions() Options {
	return Options{MinRun: 1, MaxRun: 3}
}
