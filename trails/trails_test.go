// Package trails_test contains unit tests for the longest-hike solver:
// parse validation, corridor condensation on hand-built mazes, slope
// semantics, and unreachable-end handling.
package trails_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/puzzlekit/trails"
)

// snakeMaze has exactly one route: a serpentine corridor of 18 steps.
var snakeMaze = strings.Join([]string{
	"#.#####",
	"#.....#",
	"#####.#",
	"#.....#",
	"#.#####",
	"#.....#",
	"#####.#",
}, "\n") + "\n"

// forkMaze has two routes to the exit: around the right edge (12 steps) and
// a winding detour through the middle ring (16 steps).
var forkMaze = strings.Join([]string{
	"#.#######",
	"#.......#",
	"#.#####.#",
	"#.#...#.#",
	"#.#.#.#.#",
	"#...#...#",
	"#######.#",
}, "\n") + "\n"

// slopeMaze is forkMaze with a southward slope in the middle ring's western
// column: respecting it cuts off the 16-step detour.
var slopeMaze = strings.Join([]string{
	"#.#######",
	"#.......#",
	"#.#####.#",
	"#.#...#.#",
	"#.#v#.#.#",
	"#...#...#",
	"#######.#",
}, "\n") + "\n"

// ------------------------------------------------------------------------
// 1. Parse validation
// ------------------------------------------------------------------------

func TestParseGrid_Errors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		err   error
	}{
		{"Empty", "", trails.ErrEmptyGrid},
		{"Ragged", "#.#\n#.\n", trails.ErrNonRectangular},
		{"BadCell", "#.#\n#?#\n", trails.ErrBadCell},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := trails.ParseGrid(tc.input)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestParseGrid_SlopeCells(t *testing.T) {
	g, err := trails.ParseGrid("^v\n<>\n")
	require.NoError(t, err)
	assert.Equal(t, trails.SlopeNorth, g.At(0, 0))
	assert.Equal(t, trails.SlopeSouth, g.At(1, 0))
	assert.Equal(t, trails.SlopeWest, g.At(0, 1))
	assert.Equal(t, trails.SlopeEast, g.At(1, 1))
}

// ------------------------------------------------------------------------
// 2. Hikes on hand-built mazes
// ------------------------------------------------------------------------

func TestLongestHike_SingleCorridor(t *testing.T) {
	g, err := trails.ParseGrid(snakeMaze)
	require.NoError(t, err)

	steps, err := trails.LongestHike(g)
	require.NoError(t, err)
	assert.Equal(t, int64(18), steps)

	// A lone corridor is the same hike whether slopes climb or not.
	steps, err = trails.LongestHike(g, trails.WithClimbSlopes())
	require.NoError(t, err)
	assert.Equal(t, int64(18), steps)
}

// TestLongestHike_PicksLongerFork: with two routes available the solver
// must report the 16-step detour, not the 12-step direct route.
func TestLongestHike_PicksLongerFork(t *testing.T) {
	g, err := trails.ParseGrid(forkMaze)
	require.NoError(t, err)

	steps, err := trails.LongestHike(g)
	require.NoError(t, err)
	assert.Equal(t, int64(16), steps)
}

// TestLongestHike_SlopesCutTheDetour: the southward slope makes the middle
// ring one-way, so respecting slopes leaves only the 12-step route; climbing
// restores the 16-step one.
func TestLongestHike_SlopesCutTheDetour(t *testing.T) {
	g, err := trails.ParseGrid(slopeMaze)
	require.NoError(t, err)

	respecting, err := trails.LongestHike(g)
	require.NoError(t, err)
	assert.Equal(t, int64(12), respecting)

	climbing, err := trails.LongestHike(g, trails.WithClimbSlopes())
	require.NoError(t, err)
	assert.Equal(t, int64(16), climbing)
}

// ------------------------------------------------------------------------
// 3. Failure modes
// ------------------------------------------------------------------------

func TestLongestHike_NilGrid(t *testing.T) {
	_, err := trails.LongestHike(nil)
	assert.ErrorIs(t, err, trails.ErrNilGrid)
}

func TestLongestHike_NoTrailhead(t *testing.T) {
	g, err := trails.ParseGrid("###\n#.#\n#.#\n")
	require.NoError(t, err)
	_, err = trails.LongestHike(g)
	assert.ErrorIs(t, err, trails.ErrNoTrailhead)
}

func TestLongestHike_NoRoute(t *testing.T) {
	g, err := trails.ParseGrid("#.#\n###\n#.#\n")
	require.NoError(t, err)
	_, err = trails.LongestHike(g)
	assert.ErrorIs(t, err, trails.ErrNoRoute)
}

// ------------------------------------------------------------------------
// 4. Part wrappers
// ------------------------------------------------------------------------

func TestParts(t *testing.T) {
	got, err := trails.Part1(slopeMaze)
	require.NoError(t, err)
	assert.Equal(t, "12", got)

	got, err = trails.Part2(slopeMaze)
	require.NoError(t, err)
	assert.Equal(t, "16", got)
}
