// Package springs counts valid arrangements of damaged-spring records
// (the "hot springs" counting puzzle).
//
// What:
//
//   - A Row pairs a sequence of Operational/Damaged/Unknown cells with the
//     required ordered list of maximal damaged-run lengths.
//   - Count resolves every Unknown cell both ways via recursive case
//     analysis, memoized on the (cell-suffix, run-suffix) pair.
//   - Unfold applies the standard five-fold expansion transform used by the
//     second puzzle part.
//
// Why:
//
//   - Nonogram-style line solving: how many colorings of a partially known
//     line match its clue sequence.
//   - Any pattern-placement counting over a constraint sequence where
//     exponential enumeration must be collapsed by suffix memoization.
//
// Complexity:
//
//   - Count: O(len(Cells) × len(Runs) × maxRun) time,
//     O(len(Cells) × len(Runs)) memo entries.
//
// Numeric safety:
//
//   - Counts are math/big integers. Unfolded rows overflow 32-bit counters
//     easily, and nothing in the record format bounds the count to 64 bits,
//     so the counter never performs fixed-width arithmetic.
//
// Errors:
//
//   - ErrEmptyInput, ErrBadRowFormat, ErrBadCell, ErrBadRunLength:
//     malformed record text.
//   - ErrBadUnfoldFactor: Unfold called with factor < 1.
package springs
