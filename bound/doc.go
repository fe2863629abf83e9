// Package bound constructs bounding matrices: masks that restrict which
// alignment cells (i, j) an elastic-distance kernel may visit.
//
// 🚀 What is a bounding matrix?
//
//	An len1×len2 matrix of float64 where a finite cell (0) marks a legal
//	alignment of sample i of the first series with sample j of the
//	second, and +Inf marks a forbidden one.  The +Inf sentinel is a
//	value-level contract: kernels propagate it through their cost-matrix
//	algebra, so an unreachable configuration surfaces as an infinite
//	distance rather than a wrong finite number.
//
// ✨ Strategies:
//   - None                 — every cell legal (unconstrained DP)
//   - Sakoe–Chiba band     — |i−j| ≤ radius around the diagonal
//   - Itakura parallelogram — slope-bounded region between the corners
//   - Custom               — caller-supplied matrix, used verbatim
//
// All parameter validation happens here, at build time: a band that can
// never reach the final alignment cell is rejected with ErrUnreachable
// before any DP loop runs.
//
// ⚙️ Usage:
//
//	bm, err := bound.NewSakoeChiba(100, 100, 10) // ±10 samples off-diagonal
//	if err != nil {
//	  // ErrWindow, ErrUnreachable, ...
//	}
//	_ = bm.InBand(3, 5) // true
//
// Complexity: every constructor is O(len1·len2) time and memory.
package bound
