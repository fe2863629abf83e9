// Package dist: the shared DP cost-matrix container. A flat row-major
// (n+1)×(m+1) table with sentinel row 0 and column 0; every interior
// cell depends only on its top, left and top-left neighbors plus the
// local elementary cost, which is what permits the strict row-major
// single-pass fill used by every kernel.

package dist

import "math"

// costMatrix is a flat row-major (n+1)×(m+1) DP table. It is exclusively
// owned by the single kernel invocation that allocates it and is
// discarded once the scalar result is read.
type costMatrix struct {
	stride int       // m + 1
	cells  []float64 // (n+1)*(m+1) values
}

// newCostMatrix allocates the table with every cell set to boundary and
// the origin forced to 0. DTW-family kernels pass +Inf (unvisited cells
// stay unreachable); the edit-family kernels (EDR, LCSS) pass 0, since
// they allow transitions from empty prefixes.
func newCostMatrix(n, m int, boundary float64) costMatrix {
	cells := make([]float64, (n+1)*(m+1))
	if boundary != 0 {
		for i := range cells {
			cells[i] = boundary
		}
	}
	cells[0] = 0

	return costMatrix{stride: m + 1, cells: cells}
}

// at reads cell (i, j); 1-indexed interior, row/col 0 are the boundary.
func (c costMatrix) at(i, j int) float64 { return c.cells[i*c.stride+j] }

// set writes cell (i, j).
func (c costMatrix) set(i, j int, v float64) { c.cells[i*c.stride+j] = v }

// posInf is the shared +Inf sentinel.
var posInf = math.Inf(1)
