package pairwise_test

import (
	"testing"

	"github.com/katalvlaran/elastic/bound"
	"github.com/katalvlaran/elastic/dist"
	"github.com/katalvlaran/elastic/pairwise"
	"github.com/katalvlaran/elastic/synth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMatrix_SelfDistance verifies the N×N self-distance matrix: zero
// diagonal and symmetry for a symmetric metric.
func TestMatrix_SelfDistance(t *testing.T) {
	X := synth.Panel(5, 24, 11)

	D, err := pairwise.Matrix(X, nil, dist.DTW)
	require.NoError(t, err)
	require.Len(t, D, 5)

	for i := range D {
		require.Len(t, D[i], 5, "self-distance matrix must be square")
		assert.Equal(t, 0.0, D[i][i], "diagonal must be exactly zero")
		for j := range D {
			assert.Equal(t, D[i][j], D[j][i], "DTW self-matrix must be symmetric")
			assert.GreaterOrEqual(t, D[i][j], 0.0, "distances must be non-negative")
		}
	}
}

// TestMatrix_CrossPanels checks the N×M cross case with unequal series
// lengths across the two panels.
func TestMatrix_CrossPanels(t *testing.T) {
	X := dist.Panel{{{1, 2, 3}}, {{0, 0, 0, 0}}}
	Y := dist.Panel{{{1, 2, 3}}, {{2, 3, 4}}, {{5, 5}}}

	D, err := pairwise.Matrix(X, Y, dist.DTW)
	require.NoError(t, err)
	require.Len(t, D, 2)
	require.Len(t, D[0], 3)

	assert.Equal(t, 0.0, D[0][0], "identical pair must be zero")
	assert.Equal(t, 2.0, D[0][1], "known DTW value must appear in the grid")
}

// TestMatrix_MatchesSequentialKernels verifies the parallel sweep
// produces exactly what per-pair kernel calls produce.
func TestMatrix_MatchesSequentialKernels(t *testing.T) {
	X := synth.Panel(4, 20, 3)
	Y := synth.Panel(3, 26, 4)

	D, err := pairwise.Matrix(X, Y, dist.LCSS, dist.WithEpsilon(0.4))
	require.NoError(t, err)

	for i := range X {
		for j := range Y {
			want, err := dist.Distance(dist.LCSS, X[i], Y[j], dist.WithEpsilon(0.4))
			require.NoError(t, err)
			assert.Equal(t, want, D[i][j], "cell (%d,%d) must match a direct kernel call", i, j)
		}
	}
}

// TestMatrix_BoundedMetricsStayInUnitInterval sweeps EDR and LCSS over
// a panel and checks the [0,1] guarantee on every cell.
func TestMatrix_BoundedMetricsStayInUnitInterval(t *testing.T) {
	X := synth.Panel(6, 32, 21)

	for _, m := range []dist.Metric{dist.EDR, dist.LCSS} {
		D, err := pairwise.Matrix(X, nil, m)
		require.NoError(t, err, "metric %s", m)
		for i := range D {
			for j := range D[i] {
				assert.GreaterOrEqual(t, D[i][j], 0.0, "%s cell (%d,%d)", m, i, j)
				assert.LessOrEqual(t, D[i][j], 1.0, "%s cell (%d,%d)", m, i, j)
			}
		}
	}
}

// TestMatrix_UnknownMetric ensures the registry failure surfaces before
// any computation.
func TestMatrix_UnknownMetric(t *testing.T) {
	X := dist.Panel{{{1, 2}}}

	_, err := pairwise.Matrix(X, nil, dist.Metric("not_a_real_metric"))
	assert.ErrorIs(t, err, dist.ErrUnknownMetric, "unknown metric must fail at entry")
}

// TestMatrix_FactoryErrorsPropagate checks a per-pair factory failure
// (unreachable band over mixed lengths) cancels the sweep.
func TestMatrix_FactoryErrorsPropagate(t *testing.T) {
	X := dist.Panel{{{1, 2, 3}}, {{1, 2, 3, 4, 5}}}

	_, err := pairwise.Matrix(X, nil, dist.DTW,
		dist.WithBound(bound.SakoeChiba), dist.WithWindow(0))
	assert.ErrorIs(t, err, bound.ErrUnreachable, "factory errors must propagate with their sentinel")
}

// TestMatrix_PanelValidation covers empty panels and channel mismatches.
func TestMatrix_PanelValidation(t *testing.T) {
	_, err := pairwise.Matrix(dist.Panel{}, nil, dist.DTW)
	assert.ErrorIs(t, err, dist.ErrEmpty, "empty panel must error")

	X := dist.Panel{{{1, 2}}}
	Y := dist.Panel{{{1, 2}, {3, 4}}}
	_, err = pairwise.Matrix(X, Y, dist.DTW)
	assert.ErrorIs(t, err, dist.ErrDims, "cross-panel channel mismatch must error")

	mixed := dist.Panel{{{1, 2}}, {{1, 2}, {3, 4}}}
	_, err = pairwise.Matrix(mixed, nil, dist.DTW)
	assert.ErrorIs(t, err, dist.ErrDims, "in-panel channel mismatch must error")
}

// TestMatrixFunc_CallerKernel verifies the callable path, including the
// nil guard.
func TestMatrixFunc_CallerKernel(t *testing.T) {
	X := dist.Panel{{{1}}, {{4}}}

	// A deliberately crude kernel: absolute difference of first samples.
	abs := func(x, y dist.Series) float64 {
		d := x[0][0] - y[0][0]
		if d < 0 {
			d = -d
		}

		return d
	}

	D, err := pairwise.MatrixFunc(X, nil, abs)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0, 3}, {3, 0}}, D, "caller kernel must fill the grid")

	_, err = pairwise.MatrixFunc(X, nil, nil)
	assert.ErrorIs(t, err, pairwise.ErrNilFunc, "nil kernel must error")
}
