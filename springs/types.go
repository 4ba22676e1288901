// Package springs defines core types and sentinel errors for the
// damaged-spring arrangement counter.
package springs

import (
	"errors"
)

// Sentinel errors returned by the springs implementation.
var (
	// ErrEmptyInput indicates that the input contains no records at all.
	ErrEmptyInput = errors.New("springs: input must contain at least one record")

	// ErrBadRowFormat indicates a record line that is not
	// "<cells> <comma-separated run lengths>".
	ErrBadRowFormat = errors.New("springs: record must be cells and run lengths separated by a space")

	// ErrBadCell indicates a cell character other than '.', '#' or '?'.
	ErrBadCell = errors.New("springs: cells must be '.', '#' or '?'")

	// ErrBadRunLength indicates a run length that is not a positive integer.
	ErrBadRunLength = errors.New("springs: run lengths must be positive integers")

	// ErrBadUnfoldFactor indicates an Unfold factor < 1.
	ErrBadUnfoldFactor = errors.New("springs: unfold factor must be at least 1")
)

// CellState is the condition recorded for one spring in a row.
type CellState uint8

const (
	// Operational marks a spring known to be working ('.').
	Operational CellState = iota
	// Damaged marks a spring known to be broken ('#').
	Damaged
	// Unknown marks a spring whose condition is unrecorded ('?').
	Unknown
)

// String returns the record character for the state.
func (s CellState) String() string {
	switch s {
	case Operational:
		return "."
	case Damaged:
		return "#"
	case Unknown:
		return "?"
	default:
		return "!"
	}
}

// Row is one record: the cell sequence plus the required multiset of
// contiguous damaged-run lengths, in order. Rows are value types; the
// counter never mutates them.
type Row struct {
	Cells []CellState // the spring conditions, left to right
	Runs  []int       // required damaged-run lengths, in order
}
