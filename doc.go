// Package puzzlekit is a collection of independent, self-contained grid-puzzle
// solvers — each package parses a small textual input and computes numeric
// answers, with no shared runtime or state between solvers.
//
// 🚀 What is puzzlekit?
//
//	A library of hard-engineered holiday-puzzle cores that brings together:
//		• crucible/ — constrained-step shortest path (Dijkstra with run-length rules)
//		• springs/  — memoized arrangement counting over damaged-spring records
//		• dish/     — rock-sliding simulation with full-state cycle detection
//		• trails/   — longest simple hike over a condensed corridor graph
//		• solve/    — the (day, part) → solver dispatch registry
//
// ✨ Why choose puzzlekit?
//
//   - Pure leaf computations – every solver is a function from text to text
//   - Typed failures – parse errors and impossible inputs surface as sentinel
//     errors, never panics
//   - Pure Go – no cgo, no I/O inside the solver cores
//
// Each solver package follows the same layout:
//
//	types.go  — cell/vertex types, options, sentinel errors
//	<name>.go — parsing plus the core algorithm
//	*_test.go — unit, example and benchmark tests
//
// Quick ASCII example (a crucible heat-loss grid):
//
//	    241
//	    321
//	    325
//
//	each digit is the cost of entering that cell; the solver finds the
//	cheapest corner-to-corner route under minimum/maximum run constraints.
//
// The cmd/puzzlekit binary wires the registry to files on disk:
//
//	go run ./cmd/puzzlekit -day 17 -part 1 -input input/day17.txt -t
package puzzlekit
