// Package dish_test contains unit tests for the platform simulation:
// parse validation, single-tilt mechanics, spin idempotence on settled
// grids, and fast-forward correctness against literal simulation.
package dish_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/puzzlekit/dish"
)

const sampleInput = `O....#....
O.OO#....#
.....##...
OO.#O....O
.O.....O#.
O.#..O.#.#
..O..#O..O
.......O..
#....###..
#OO..#....
`

// ------------------------------------------------------------------------
// 1. Parse validation
// ------------------------------------------------------------------------

func TestParsePlatform_Errors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		err   error
	}{
		{"Empty", "", dish.ErrEmptyGrid},
		{"OnlyNewline", "\n", dish.ErrEmptyGrid},
		{"Ragged", "O.#\nO.\n", dish.ErrNonRectangular},
		{"BadCell", "O.#\nOx#\n", dish.ErrBadCell},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := dish.ParsePlatform(tc.input)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestParsePlatform_StringRoundTrip(t *testing.T) {
	p, err := dish.ParsePlatform(sampleInput)
	require.NoError(t, err)
	assert.Equal(t, sampleInput, p.String())
}

// ------------------------------------------------------------------------
// 2. Tilt mechanics
// ------------------------------------------------------------------------

// TestTilt_North slides a single column: rocks pile against the top edge
// and against cubes, never across them.
func TestTilt_North(t *testing.T) {
	p, err := dish.ParsePlatform(".\nO\n.\n#\n.\nO\n")
	require.NoError(t, err)

	p.Tilt(dish.North)
	assert.Equal(t, "O\n.\n.\n#\nO\n.\n", p.String())
}

// TestTilt_AllDirections checks one 3×3 grid against hand-settled results
// for each direction.
func TestTilt_AllDirections(t *testing.T) {
	const grid = "..O\n.#.\nO..\n"

	cases := []struct {
		name string
		dir  dish.Direction
		want string
	}{
		{"North", dish.North, "O.O\n.#.\n...\n"},
		{"South", dish.South, "...\n.#.\nO.O\n"},
		{"West", dish.West, "O..\n.#.\nO..\n"},
		{"East", dish.East, "..O\n.#.\n..O\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := dish.ParsePlatform(grid)
			require.NoError(t, err)
			p.Tilt(tc.dir)
			assert.Equal(t, tc.want, p.String())
		})
	}
}

// TestSpin_IdempotentOnSettled: a grid where no round rock can move in any
// direction is a fixed point of the full four-pass spin.
func TestSpin_IdempotentOnSettled(t *testing.T) {
	const settled = "OO#\nO#.\n#..\n"
	p, err := dish.ParsePlatform(settled)
	require.NoError(t, err)

	p.Spin()
	assert.Equal(t, settled, p.String(), "one spin must not move a settled grid")
	p.Spin()
	assert.Equal(t, settled, p.String(), "nor any further spin")
}

// ------------------------------------------------------------------------
// 3. Load
// ------------------------------------------------------------------------

func TestLoad(t *testing.T) {
	// Height 3: a rock on row 0 weighs 3, on row 2 weighs 1.
	p, err := dish.ParsePlatform("O..\n...\n.OO\n")
	require.NoError(t, err)
	assert.Equal(t, int64(3+1+1), p.Load())
}

// ------------------------------------------------------------------------
// 4. SpinUntil: fast-forward vs. literal simulation
// ------------------------------------------------------------------------

// TestSpinUntil_MatchesLiteralSimulation fast-forwards to several targets
// and compares against a clone spun literally, so both the cycle-detection
// arithmetic and the replay remainder are exercised.
func TestSpinUntil_MatchesLiteralSimulation(t *testing.T) {
	base, err := dish.ParsePlatform(sampleInput)
	require.NoError(t, err)

	for _, target := range []int{0, 1, 2, 7, 25, 50} {
		fast := base.Clone()
		require.NoError(t, fast.SpinUntil(target))

		slow := base.Clone()
		for i := 0; i < target; i++ {
			slow.Spin()
		}
		assert.Equal(t, slow.String(), fast.String(), "target=%d", target)
	}
}

// TestSpinUntil_FarTarget verifies the fast-forward against a literal
// simulation driven through the known period: once states repeat, the
// literal state at any index is recoverable from recorded snapshots.
func TestSpinUntil_FarTarget(t *testing.T) {
	const target = 1_000_000

	base, err := dish.ParsePlatform(sampleInput)
	require.NoError(t, err)

	// 1) Brute-force the cycle structure from scratch.
	probe := base.Clone()
	seen := map[string]int{probe.String(): 0}
	states := []string{probe.String()}
	firstSeen, repeatAt := -1, -1
	for i := 1; i <= 1000; i++ {
		probe.Spin()
		if at, ok := seen[probe.String()]; ok {
			firstSeen, repeatAt = at, i
			break
		}
		seen[probe.String()] = i
		states = append(states, probe.String())
	}
	require.NotEqual(t, -1, repeatAt, "sample grid must cycle quickly")

	// 2) state(target) = state(firstSeen + (target-firstSeen) mod period).
	period := repeatAt - firstSeen
	want := states[firstSeen+(target-firstSeen)%period]

	// 3) The fast-forward must land on exactly that state.
	fast := base.Clone()
	require.NoError(t, fast.SpinUntil(target))
	assert.Equal(t, want, fast.String())
}

func TestSpinUntil_BadTarget(t *testing.T) {
	p, err := dish.ParsePlatform(sampleInput)
	require.NoError(t, err)
	assert.ErrorIs(t, p.SpinUntil(-1), dish.ErrBadTarget)
}

func TestSpinUntil_NoCycleWithinCap(t *testing.T) {
	p, err := dish.ParsePlatform(sampleInput)
	require.NoError(t, err)
	// One spin is not enough for the sample grid to revisit a state.
	err = p.SpinUntil(1_000_000_000, dish.WithSpinCap(1))
	assert.ErrorIs(t, err, dish.ErrNoCycle)
}

func TestWithSpinCap_PanicsOnBadCap(t *testing.T) {
	assert.Panics(t, func() { dish.WithSpinCap(0) })
}

// ------------------------------------------------------------------------
// 5. End to end against the published puzzle example
// ------------------------------------------------------------------------

func TestPart1_Sample(t *testing.T) {
	got, err := dish.Part1(sampleInput)
	require.NoError(t, err)
	assert.Equal(t, "136", got)
}

func TestPart2_Sample(t *testing.T) {
	got, err := dish.Part2(sampleInput)
	require.NoError(t, err)
	assert.Equal(t, "64", got)
}
