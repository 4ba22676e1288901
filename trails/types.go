// Package trails defines core types, options, and sentinel errors for the
// longest-hike solver.
package trails

import (
	"errors"
)

// Sentinel errors returned by the trails implementation.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("trails: input grid must have at least one row and one column")

	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("trails: all rows must have the same length")

	// ErrBadCell indicates a grid character other than '#', '.', '^', 'v', '<' or '>'.
	ErrBadCell = errors.New("trails: cells must be '#', '.', '^', 'v', '<' or '>'")

	// ErrNilGrid indicates that a nil *Grid was passed to LongestHike.
	ErrNilGrid = errors.New("trails: grid is nil")

	// ErrNoTrailhead indicates that the top or bottom row has no open cell
	// to serve as the start or end of the hike.
	ErrNoTrailhead = errors.New("trails: no open cell on the top or bottom row")

	// ErrNoRoute indicates that no simple path connects start to end.
	ErrNoRoute = errors.New("trails: no route from start to end")
)

// Cell is the content of one map position.
type Cell uint8

const (
	// Wall is impassable forest ('#').
	Wall Cell = iota
	// Open is a walkable path cell ('.').
	Open
	// SlopeNorth..SlopeWest are icy slopes ('^', 'v', '>', '<'): when slopes
	// are respected, a slope cell may only be entered moving in its direction.
	SlopeNorth
	SlopeSouth
	SlopeEast
	SlopeWest
)

// Direction is a cardinal step direction on the map.
type Direction uint8

const (
	North Direction = iota
	South
	East
	West
	// dirCount sizes per-vertex edge arrays.
	dirCount = 4
)

// opposite returns the reverse direction; walks never immediately backtrack.
func (d Direction) opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	default:
		return East
	}
}

// Options configures LongestHike.
//
// ClimbSlopes – when true, slopes are treated as ordinary open cells
//
//	(the second puzzle part); when false, a slope may only be
//	entered moving in its direction.
type Options struct {
	ClimbSlopes bool
}

// Option represents a functional option for configuring LongestHike.
type Option func(*Options)

// WithClimbSlopes makes every slope walkable in all directions.
func WithClimbSlopes() Option {
	return func(o *Options) {
		o.ClimbSlopes = true
	}
}

// DefaultOptions returns the slope-respecting configuration.
func DefaultOptions() Options {
	return Options{ClimbSlopes: false}
}
