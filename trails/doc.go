// Package trails solves the longest-hike puzzle: the maximum-length simple
// path through a forest maze from the top-row opening to the bottom-row one.
//
// What:
//
//   - Grid wraps a rectangular map of Wall, Open and slope cells.
//   - condensation collapses each corridor into one weighted edge between
//     junctions (cells with ≠ 2 walkable exits), shrinking thousands of
//     cells to a few dozen vertices.
//   - LongestHike then runs an exhaustive DFS over simple junction paths
//     with explicit mark/unmark backtracking on a per-call visited set.
//
// Why:
//
//   - Longest simple path is NP-hard in general; corridor condensation is
//     what makes exhaustive search tractable on maze-shaped inputs.
//   - Slope cells demonstrate direction-constrained edges: entry onto a
//     slope is legal only along its direction unless climbing is enabled.
//
// Complexity:
//
//   - Condensation: O(W×H) — every corridor cell is walked a constant
//     number of times.
//   - Search: exponential in the junction count (exhaustive by necessity).
//
// Options:
//
//   - WithClimbSlopes(): treat slopes as ordinary open cells.
//
// Errors:
//
//   - ErrEmptyGrid, ErrNonRectangular, ErrBadCell: malformed input text.
//   - ErrNilGrid: nil grid passed to LongestHike.
//   - ErrNoTrailhead: no opening on the top or bottom row.
//   - ErrNoRoute: the two openings are not connected by any simple path.
package trails
