// Package crucible finds the minimum-cost route across a digit grid under
// run-length turning constraints (the "crucible" routing puzzle).
//
// What:
//
//   - Grid wraps a rectangular field of per-cell entry costs (digits 0–9).
//   - MinimumHeatLoss runs Dijkstra over the implicit vertex space
//     (x, y, direction-of-entering-run), so the turn rules become plain
//     graph structure rather than path bookkeeping.
//   - Edges are whole runs: from a vertex, one edge per run length
//     MinRun..MaxRun in each perpendicular direction, weighted by the sum of
//     the entered cells' costs.
//
// Why:
//
//   - Vehicle routing with momentum: a cart that cannot turn every cell.
//   - Any shortest-path problem whose legality depends on the last move,
//     solved by folding that history into the vertex.
//
// Complexity:
//
//   - Time:  O(V·MaxRun·log V) with V = Width×Height×5
//   - Space: O(V) for distances plus the lazy heap.
//
// Options:
//
//   - WithRunBounds(min, max): minimum and maximum consecutive cells per run.
//     DefaultOptions() is runs of 1..3; the "ultra" variant uses 4..10.
//
// Errors:
//
//   - ErrEmptyGrid, ErrNonRectangular, ErrBadCell: malformed input text.
//   - ErrNilGrid, ErrBadRunBounds: invalid call configuration.
//   - ErrNoPath: no direction variant of the target cell is reachable.
package crucible
