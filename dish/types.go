// Package dish defines core types, options, and sentinel errors for the
// rock-sliding platform simulation.
package dish

import (
	"errors"
)

// Sentinel errors returned by the dish implementation.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("dish: input grid must have at least one row and one column")

	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("dish: all rows must have the same length")

	// ErrBadCell indicates a grid character other than '.', 'O' or '#'.
	ErrBadCell = errors.New("dish: cells must be '.', 'O' or '#'")

	// ErrBadTarget indicates a negative spin target.
	ErrBadTarget = errors.New("dish: spin target must be non-negative")

	// ErrBadSpinCap indicates a SpinCap < 1.
	ErrBadSpinCap = errors.New("dish: spin cap must be positive")

	// ErrNoCycle indicates the state sequence did not repeat within the
	// configured spin cap. Deterministic transitions over a finite state
	// space always cycle eventually, so hitting this means either a far too
	// small cap or an implementation bug; either way we refuse to loop on.
	ErrNoCycle = errors.New("dish: no state cycle detected within spin cap")
)

// Cell is the content of one platform position. Values are the input
// characters themselves, so a row of cells is directly printable.
type Cell = byte

const (
	// Empty marks a free position.
	Empty Cell = '.'
	// Round marks a rock that slides when the platform tilts.
	Round Cell = 'O'
	// Cube marks a fixed obstacle.
	Cube Cell = '#'
)

// Direction selects a tilt direction for Platform.Tilt.
type Direction uint8

const (
	// North slides rocks toward y = 0.
	North Direction = iota
	// West slides rocks toward x = 0.
	West
	// South slides rocks toward y = Height-1.
	South
	// East slides rocks toward x = Width-1.
	East
)

// Options configures SpinUntil.
//
// SpinCap bounds the number of spins performed while hunting for a state
// cycle. Real platforms cycle within a few hundred spins; the cap exists so
// a defect surfaces as ErrNoCycle instead of an endless loop.
type Options struct {
	SpinCap int
}

// Option represents a functional option for configuring SpinUntil.
type Option func(*Options)

// WithSpinCap overrides the cycle-hunting bound.
// Panics with ErrBadSpinCap for values < 1.
func WithSpinCap(n int) Option {
	return func(o *Options) {
		if n < 1 {
			panic(ErrBadSpinCap.Error())
		}
		o.SpinCap = n
	}
}

// DefaultOptions returns the default SpinUntil configuration:
// SpinCap = 1_000_000 spins.
func DefaultOptions() Options {
	return Options{SpinCap: 1_000_000}
}
