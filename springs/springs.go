// Package springs counts the ways to resolve a row of
// operational/damaged/unknown springs so that its maximal damaged runs match
// a required run-length sequence exactly, in order, with at least one
// operational spring between consecutive runs.
package springs

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// ParseRow parses one record line of the form "#.?.# 1,2".
// Returns ErrBadRowFormat, ErrBadCell or ErrBadRunLength on malformed text.
// Complexity: O(len(line)).
func ParseRow(line string) (Row, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return Row{}, fmt.Errorf("%w: %q", ErrBadRowFormat, line)
	}

	cells := make([]CellState, len(fields[0]))
	for i := 0; i < len(fields[0]); i++ {
		switch fields[0][i] {
		case '.':
			cells[i] = Operational
		case '#':
			cells[i] = Damaged
		case '?':
			cells[i] = Unknown
		default:
			return Row{}, fmt.Errorf("%w: %q at column %d", ErrBadCell, fields[0][i], i)
		}
	}

	parts := strings.Split(fields[1], ",")
	runs := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 1 {
			return Row{}, fmt.Errorf("%w: %q", ErrBadRunLength, p)
		}
		runs[i] = n
	}

	return Row{Cells: cells, Runs: runs}, nil
}

// ParseRows parses a whole input of newline-separated records.
// Blank lines are skipped; ErrEmptyInput if nothing remains.
func ParseRows(input string) ([]Row, error) {
	var rows []Row
	for i, line := range strings.Split(input, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		row, err := ParseRow(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil, ErrEmptyInput
	}

	return rows, nil
}

// Unfold applies the expansion transform: the cell sequence is repeated
// factor times joined by single Unknown separators, and the run list is
// repeated factor times. Returns ErrBadUnfoldFactor for factor < 1.
// Unfold never aliases the input row's slices.
func Unfold(r Row, factor int) (Row, error) {
	if factor < 1 {
		return Row{}, ErrBadUnfoldFactor
	}

	cells := make([]CellState, 0, factor*len(r.Cells)+factor-1)
	runs := make([]int, 0, factor*len(r.Runs))
	for i := 0; i < factor; i++ {
		if i > 0 {
			cells = append(cells, Unknown)
		}
		cells = append(cells, r.Cells...)
		runs = append(runs, r.Runs...)
	}

	return Row{Cells: cells, Runs: runs}, nil
}

// Count returns the number of ways to resolve every Unknown cell of the row
// so that the maximal Damaged runs equal r.Runs exactly, in order.
//
// The count is exact and overflow-safe: arithmetic is done in math/big,
// since unfolded rows routinely exceed what 32-bit counters can hold and
// pathological inputs can exceed 64 bits.
//
// The recursion only ever descends to suffixes of the cell and run
// sequences, so a state is fully identified by the two suffix lengths; the
// memo is a dense (len(Cells)+1)×(len(Runs)+1) table.
//
// Complexity:
//
//   - Time:  O(len(Cells) × len(Runs) × maxRun) worst case
//   - Space: O(len(Cells) × len(Runs)) memo entries
func Count(r Row) *big.Int {
	c := newCounter(r)

	// The result is owned by the memo table; hand out a private copy.
	return new(big.Int).Set(c.rec(0, 0))
}

// Part1 parses the records and reports the sum of arrangement counts,
// decimal-formatted.
func Part1(input string) (string, error) {
	rows, err := ParseRows(input)
	if err != nil {
		return "", err
	}

	return sumCounts(rows).String(), nil
}

// Part2 unfolds every record five-fold before counting.
func Part2(input string) (string, error) {
	rows, err := ParseRows(input)
	if err != nil {
		return "", err
	}
	for i := range rows {
		rows[i], err = Unfold(rows[i], 5)
		if err != nil {
			return "", err
		}
	}

	return sumCounts(rows).String(), nil
}

// sumCounts folds Count over all rows into one total.
func sumCounts(rows []Row) *big.Int {
	total := new(big.Int)
	for _, row := range rows {
		total.Add(total, Count(row))
	}

	return total
}

// counter holds the per-row memoization state. The cache lives exactly as
// long as one row's computation; Count is a pure function of the row, so
// sharing it across rows would change nothing but memory use.
type counter struct {
	cells []CellState
	runs  []int
	// need[ri] is the minimum number of cells required to place runs[ri:]:
	// their total length plus one separator between each consecutive pair.
	need []int
	// memo[ci][ri] caches the count for the suffix pair (cells[ci:], runs[ri:]);
	// nil marks an unset entry.
	memo [][]*big.Int
}

func newCounter(r Row) *counter {
	need := make([]int, len(r.Runs)+1)
	for ri := len(r.Runs) - 1; ri >= 0; ri-- {
		need[ri] = need[ri+1] + r.Runs[ri]
		if ri < len(r.Runs)-1 {
			need[ri]++ // separator before the following run
		}
	}

	memo := make([][]*big.Int, len(r.Cells)+1)
	for i := range memo {
		memo[i] = make([]*big.Int, len(r.Runs)+1)
	}

	return &counter{cells: r.Cells, runs: r.Runs, need: need, memo: memo}
}

// rec counts the arrangements for the suffix pair starting at cell index ci
// and run index ri. Returned values are memo-owned and must not be mutated.
func (c *counter) rec(ci, ri int) *big.Int {
	// 1) Leading Operational cells carry no information; strip them so the
	//    memo key is canonical for the state.
	for ci < len(c.cells) && c.cells[ci] == Operational {
		ci++
	}

	// 2) Base case: no cells left. Valid iff no runs remain either.
	if ci == len(c.cells) {
		if ri == len(c.runs) {
			return big.NewInt(1)
		}

		return big.NewInt(0)
	}

	// 3) Base case: no runs left. Valid iff no remaining cell is Damaged.
	if ri == len(c.runs) {
		for k := ci; k < len(c.cells); k++ {
			if c.cells[k] == Damaged {
				return big.NewInt(0)
			}
		}

		return big.NewInt(1)
	}

	if cached := c.memo[ci][ri]; cached != nil {
		return cached
	}

	// 4) Feasibility pruning: without enough room for the remaining runs
	//    plus mandatory separators, no arrangement exists.
	if len(c.cells)-ci < c.need[ri] {
		return c.set(ci, ri, big.NewInt(0))
	}

	// 5) An Unknown head splits into two disjoint worlds: treat it as
	//    Operational (skip it) or as Damaged (it starts the next run).
	if c.cells[ci] == Unknown {
		total := new(big.Int).Add(c.rec(ci+1, ri), c.consume(ci, ri))

		return c.set(ci, ri, total)
	}

	// 6) The head is Damaged: it must start the next run.
	return c.set(ci, ri, c.consume(ci, ri))
}

// consume places runs[ri] starting exactly at cell ci: all consumed cells
// must not be Operational, and the cell just past the run must not be
// Damaged (the run would be longer than required). On success it recurses
// past the run and its separator.
func (c *counter) consume(ci, ri int) *big.Int {
	run := c.runs[ri]
	if ci+run > len(c.cells) {
		return big.NewInt(0)
	}
	for k := ci; k < ci+run; k++ {
		if c.cells[k] == Operational {
			return big.NewInt(0)
		}
	}
	if ci+run < len(c.cells) && c.cells[ci+run] == Damaged {
		return big.NewInt(0)
	}

	next := ci + run + 1 // skip the separator cell, if any
	if next > len(c.cells) {
		next = len(c.cells)
	}

	return c.rec(next, ri+1)
}

// set stores v in the memo and returns it.
func (c *counter) set(ci, ri int, v *big.Int) *big.Int {
	c.memo[ci][ri] = v

	return v
}
