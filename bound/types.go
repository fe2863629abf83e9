// Package bound: core types — the bounding Strategy enum and the dense
// row-major Matrix that every strategy produces.

package bound

import "math"

// Strategy selects how the bounding matrix is constructed.
//
//   - None       — every alignment cell is legal.
//   - SakoeChiba — cells within a fixed radius of the main diagonal.
//   - Itakura    — cells inside a slope-bounded parallelogram.
//
// A caller-supplied custom matrix bypasses the Strategy entirely; see
// Resolve.
type Strategy int

const (
	// None marks every cell finite; equivalent to unconstrained DP.
	None Strategy = iota

	// SakoeChiba keeps cell (i,j) iff |i-j| <= radius.
	SakoeChiba

	// Itakura keeps cells inside the parallelogram bounded by lines of
	// slope maxSlope and 1/maxSlope from the two corner cells.
	Itakura
)

// Matrix is a dense row-major len1×len2 bounding matrix.
// A finite cell marks a legal alignment; +Inf marks a forbidden one.
// Matrices are immutable after construction and safe for concurrent
// readers.
type Matrix struct {
	rows, cols int       // series lengths len1, len2
	cells      []float64 // flat backing storage, length == rows*cols
}

// Rows returns the first-series length the matrix was built for.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the second-series length the matrix was built for.
func (m *Matrix) Cols() int { return m.cols }

// At returns the raw cell value (0 or +Inf for built-in strategies;
// custom matrices may carry any finite sentinel for legal cells).
// Indices follow series sample positions: 0 ≤ i < Rows, 0 ≤ j < Cols.
func (m *Matrix) At(i, j int) float64 { return m.cells[i*m.cols+j] }

// InBand reports whether alignment cell (i, j) is legal, i.e. the cell
// value is finite (neither NaN nor ±Inf). This is the hot-path read used
// by every DP kernel; it performs no bounds validation beyond the slice
// access itself.
func (m *Matrix) InBand(i, j int) bool {
	v := m.cells[i*m.cols+j]

	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// FiniteCells counts the legal cells. Handy for tests and for sizing
// sparse DP variants.
// Complexity: O(rows·cols).
func (m *Matrix) FiniteCells() int {
	n := 0
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			if m.InBand(i, j) {
				n++
			}
		}
	}

	return n
}

// newMatrix allocates a rows×cols matrix with every cell set to fill.
func newMatrix(rows, cols int, fill float64) *Matrix {
	cells := make([]float64, rows*cols)
	if fill != 0 {
		for i := range cells {
			cells[i] = fill
		}
	}

	return &Matrix{rows: rows, cols: cols, cells: cells}
}

// validateLengths guards every constructor against non-positive lengths.
func validateLengths(len1, len2 int) error {
	if len1 <= 0 || len2 <= 0 {
		return ErrLength
	}

	return nil
}
