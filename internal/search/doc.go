// Package search implements resumable backtracking searches over a height
// grid.
//
// Three steppers share the Strategy contract:
//
//   - Naive: depth-first backtracking over every simple path.
//   - Memoized: skips cells already reached by an equal or shorter path.
//   - Heuristic: Memoized plus best-first ordering, branch-and-bound and
//     optimistic distance seeding.
//
// Each stepper keeps an explicit stack of frames instead of recursing, so a
// driver can call Step with a small budget, render the walker, and call it
// again. FindAllPaths is a recursive enumerator meant as a test oracle on
// small grids.
package search
