// Package solve is the dispatch table of the puzzle solvers: an explicit
// registry mapping (day, part) to a Solver function, built once as a plain
// composite literal so the set of solvers is visible in a single place.
package solve

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/puzzlekit/crucible"
	"github.com/katalvlaran/puzzlekit/dish"
	"github.com/katalvlaran/puzzlekit/springs"
	"github.com/katalvlaran/puzzlekit/trails"
)

// Sentinel errors returned by the registry.
var (
	// ErrUnknownDay indicates that no solver is registered for the day.
	ErrUnknownDay = errors.New("solve: no solver registered for this day")

	// ErrUnknownPart indicates a part other than 1 or 2.
	ErrUnknownPart = errors.New("solve: part must be 1 or 2")
)

// Solver is one puzzle part: pure text in, decimal answer out.
type Solver func(input string) (string, error)

// key addresses one registry slot.
type key struct {
	day, part int
}

// registry is the full dispatch table. Adding a day means adding two lines.
var registry = map[key]Solver{
	{day: 12, part: 1}: springs.Part1,
	{day: 12, part: 2}: springs.Part2,
	{day: 14, part: 1}: dish.Part1,
	{day: 14, part: 2}: dish.Part2,
	{day: 17, part: 1}: crucible.Part1,
	{day: 17, part: 2}: crucible.Part2,
	{day: 23, part: 1}: trails.Part1,
	{day: 23, part: 2}: trails.Part2,
}

// Lookup returns the Solver for (day, part).
// Returns ErrUnknownPart for parts other than 1 and 2, and ErrUnknownDay
// when the day has no registered solver.
func Lookup(day, part int) (Solver, error) {
	if part != 1 && part != 2 {
		return nil, fmt.Errorf("%w: got %d", ErrUnknownPart, part)
	}
	s, ok := registry[key{day: day, part: part}]
	if !ok {
		return nil, fmt.Errorf("%w: day %d", ErrUnknownDay, day)
	}

	return s, nil
}

// Run looks up and invokes the solver for (day, part) on input.
func Run(day, part int, input string) (string, error) {
	s, err := Lookup(day, part)
	if err != nil {
		return "", err
	}

	return s(input)
}

// Days returns the sorted list of days with at least one registered solver.
func Days() []int {
	set := make(map[int]bool, len(registry))
	for k := range registry {
		set[k.day] = true
	}
	days := make([]int, 0, len(set))
	for d := range set {
		days = append(days, d)
	}
	sort.Ints(days)

	return days
}
