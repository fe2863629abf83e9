// Package pairwise assembles distance matrices across panels of series.
//
// 🚀 What it does
//
//	Given a panel X (and optionally a second panel Y), pairwise resolves
//	a metric once, compiles one kernel per series pair (the bounding
//	matrix depends on each pair's lengths) and fills an N×M matrix of
//	distances:
//
//	  D, err := pairwise.Matrix(X, nil, dist.DTW)          // N×N self-distance
//	  D, err := pairwise.Matrix(X, Y, dist.LCSS, opts...)  // N×M cross-distance
//	  D, err := pairwise.MatrixFunc(X, Y, myDistanceFunc)  // caller-supplied kernel
//
// ✨ Guarantees
//
//   - Shape validation (shared channel count across both panels, no
//     empty panel or series) happens before any kernel is built.
//   - Self-distance diagonals are computed, not special-cased: a
//     reflexive metric yields an exactly-zero diagonal because its
//     recurrence does.
//   - Pairs are independent; rows are computed in parallel, each worker
//     owning exclusive write access to its row. The only
//     synchronization is the final join.
//   - The first factory error cancels the sweep and is returned as-is,
//     so errors.Is against the dist/bound sentinels keeps working.
//
// There is no timeout or cancellation at this layer; batch control
// belongs to the caller.
package pairwise
