package bound

import (
	"fmt"
	"math"
)

// slopeTol absorbs floating-point error on the parallelogram edges so
// boundary cells are included deterministically.
const slopeTol = 1e-9

// NewNoBound builds an all-finite len1×len2 matrix: every alignment is
// legal, equivalent to unconstrained DP.
//
// Errors: ErrLength for non-positive lengths.
// Complexity: O(len1·len2).
func NewNoBound(len1, len2 int) (*Matrix, error) {
	if err := validateLengths(len1, len2); err != nil {
		return nil, err
	}

	return newMatrix(len1, len2, 0), nil
}

// NewSakoeChiba builds a diagonal band: cell (i,j) is finite iff
// |i-j| <= r, where r is resolved from window as follows:
//
//   - window in (0,1) — a fraction of the longer series length,
//     truncated to an integer radius;
//   - window >= 1     — an absolute radius, truncated to an integer;
//   - window == 0     — the main diagonal only.
//
// A band whose radius is smaller than |len1-len2| can never reach the
// final alignment cell; that configuration is rejected here with
// ErrUnreachable instead of surfacing as a puzzling +Inf deep in a DP
// pass.
//
// Errors: ErrLength, ErrWindow (negative or NaN window), ErrUnreachable.
// Complexity: O(len1·len2).
func NewSakoeChiba(len1, len2 int, window float64) (*Matrix, error) {
	if err := validateLengths(len1, len2); err != nil {
		return nil, err
	}
	if math.IsNaN(window) || window < 0 {
		return nil, fmt.Errorf("window %v: %w", window, ErrWindow)
	}

	r := radiusOf(len1, len2, window)
	if diff := len1 - len2; diff > r || -diff > r {
		return nil, fmt.Errorf("radius %d with lengths %d and %d: %w", r, len1, len2, ErrUnreachable)
	}

	m := newMatrix(len1, len2, math.Inf(1))
	for i := 0; i < len1; i++ {
		for j := 0; j < len2; j++ {
			if d := i - j; d <= r && -d <= r {
				m.cells[i*len2+j] = 0
			}
		}
	}

	return m, nil
}

// radiusOf resolves the window parameter into an integer band radius.
func radiusOf(len1, len2 int, window float64) int {
	if window > 0 && window < 1 {
		return int(window * float64(max(len1, len2)))
	}

	return int(window)
}

// NewItakura builds the Itakura parallelogram: the region between lines
// of slope maxSlope and 1/maxSlope emanating from the corner cells
// (0,0) and (len1-1, len2-1), scaled for the aspect ratio of unequal
// lengths. Edges are inclusive, and both corner cells are always
// in-bound. A maxSlope of exactly 1 degenerates to the (scaled) main
// diagonal.
//
// Errors: ErrLength, ErrSlope (maxSlope < 1, NaN or ±Inf).
// Complexity: O(len1·len2).
func NewItakura(len1, len2 int, maxSlope float64) (*Matrix, error) {
	if err := validateLengths(len1, len2); err != nil {
		return nil, err
	}
	if math.IsNaN(maxSlope) || math.IsInf(maxSlope, 0) || maxSlope < 1 {
		return nil, fmt.Errorf("max slope %v: %w", maxSlope, ErrSlope)
	}

	m := newMatrix(len1, len2, math.Inf(1))

	// Degenerate strips: a single row or column admits every alignment.
	if len1 == 1 || len2 == 1 {
		for i := range m.cells {
			m.cells[i] = 0
		}

		return m, nil
	}

	// Aspect-scaled slopes: in (i,j) index space a unit step along i
	// advances (len2-1)/(len1-1) along j on the main diagonal.
	ratio := float64(len2-1) / float64(len1-1)
	up := maxSlope * ratio   // steep edge slope
	down := ratio / maxSlope // shallow edge slope
	n1 := float64(len1 - 1)
	m1 := float64(len2 - 1)

	for i := 0; i < len1; i++ {
		fi := float64(i)
		lo := math.Max(down*fi, m1-up*(n1-fi))
		hi := math.Min(up*fi, m1-down*(n1-fi))
		for j := 0; j < len2; j++ {
			fj := float64(j)
			if fj >= lo-slopeTol && fj <= hi+slopeTol {
				m.cells[i*len2+j] = 0
			}
		}
	}

	return m, nil
}

// NewCustom wraps caller-supplied cells verbatim as a bounding matrix.
// The caller owns the semantics: finite means legal, +Inf (or NaN)
// means forbidden. The cells are copied, so later mutation of the input
// does not affect the matrix.
//
// Errors: ErrShape for an empty or ragged input.
// Complexity: O(rows·cols).
func NewCustom(cells [][]float64) (*Matrix, error) {
	rows := len(cells)
	if rows == 0 || len(cells[0]) == 0 {
		return nil, fmt.Errorf("empty custom matrix: %w", ErrShape)
	}
	cols := len(cells[0])
	m := newMatrix(rows, cols, 0)
	for i, row := range cells {
		if len(row) != cols {
			return nil, fmt.Errorf("ragged row %d: %w", i, ErrShape)
		}
		copy(m.cells[i*cols:(i+1)*cols], row)
	}

	return m, nil
}

// Resolve dispatches to the strategy constructors, mirroring the way a
// distance-kernel factory consumes this package: if custom is non-nil
// it is used verbatim (after a shape check against the series lengths)
// and every other parameter is ignored; otherwise the strategy decides
// which constructor runs with the matching parameter.
//
// Errors: ErrShape (custom shape mismatch), ErrStrategy, plus whatever
// the selected constructor returns.
func Resolve(len1, len2 int, s Strategy, window, maxSlope float64, custom *Matrix) (*Matrix, error) {
	if custom != nil {
		if custom.rows != len1 || custom.cols != len2 {
			return nil, fmt.Errorf("custom %dx%d vs series %dx%d: %w",
				custom.rows, custom.cols, len1, len2, ErrShape)
		}

		return custom, nil
	}

	switch s {
	case None:
		return NewNoBound(len1, len2)
	case SakoeChiba:
		return NewSakoeChiba(len1, len2, window)
	case Itakura:
		return NewItakura(len1, len2, maxSlope)
	default:
		return nil, fmt.Errorf("strategy %d: %w", s, ErrStrategy)
	}
}
