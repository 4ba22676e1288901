// Package dish simulates the tilting rock platform (the "parabolic
// reflector dish" puzzle) and answers load queries at far-future spins.
//
// What:
//
//   - Platform is a mutable grid of Empty ('.'), Round ('O') and Cube ('#')
//     cells.
//   - Tilt slides every round rock maximally toward one edge, one linear
//     compaction scan per row or column.
//   - Spin is the fixed four-pass settle sequence North, West, South, East.
//   - SpinUntil fast-forwards to an arbitrary spin index via full-state
//     snapshot memoization: once a state repeats, the tail is periodic and
//     only the remainder modulo the period is replayed.
//
// Why:
//
//   - Deterministic simulations over finite state spaces always enter a
//     cycle; snapshot-keyed first-seen maps turn "a billion iterations"
//     into a few hundred.
//   - The same pattern fits cellular automata, game-of-life variants and
//     any settle-until-fixed-point physics toy.
//
// Complexity:
//
//   - Tilt/Spin/Load: O(W×H).
//   - SpinUntil:      O((p + L) × W×H) where p is the cycle's phase and L
//     its length — independent of the target index.
//
// Options:
//
//   - WithSpinCap(n): bound on spins performed while hunting for the cycle;
//     exceeding it yields ErrNoCycle instead of looping forever.
//
// Errors:
//
//   - ErrEmptyGrid, ErrNonRectangular, ErrBadCell: malformed input text.
//   - ErrBadTarget, ErrBadSpinCap: invalid call configuration.
//   - ErrNoCycle: no repeat within the spin cap.
package dish
