package dist_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/elastic/dist"
	"github.com/katalvlaran/elastic/synth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestWDTW_ZeroGHalvesDTW pins the defining identity: with g = 0 every
// sigmoid weight is exactly 0.5, so WDTW is exactly half of DTW.
func TestWDTW_ZeroGHalvesDTW(t *testing.T) {
	for _, tc := range []struct {
		name string
		x, y dist.Series
	}{
		{"short", dist.Series{{1, 2, 3}}, dist.Series{{2, 3, 4}}},
		{"unequal", dist.Series{{1, 5, 2, 8}}, dist.Series{{1, 4, 3, 8, 7}}},
		{"sine-vs-chirp", synth.Sine(40, 3, 1, 0), synth.Chirp(50, 1, 5, 1)},
	} {
		t.Run(tc.name, func(t *testing.T) {
			plain, err := dist.Distance(dist.DTW, tc.x, tc.y)
			require.NoError(t, err)
			weighted, err := dist.Distance(dist.WDTW, tc.x, tc.y, dist.WithG(0))
			require.NoError(t, err)

			assert.InDelta(t, 0.5*plain, weighted, 1e-12, "g=0 must halve unweighted DTW exactly")
		})
	}
}

// TestWDTW_Reflexive verifies distance(x, x) == 0 for any g.
func TestWDTW_Reflexive(t *testing.T) {
	x := synth.Ramp(20, 0.5)

	for _, g := range []float64{0, 0.05, 1, 10} {
		d, err := dist.Distance(dist.WDTW, x, x, dist.WithG(g))
		require.NoError(t, err)
		assert.Equal(t, 0.0, d, "self-distance must be zero for g=%v", g)
	}
}

// TestWDTW_GDampensInPhaseCost checks the sigmoid's direction: the
// midpoint sits at n/2, so increasing g drives the weight of
// small-phase-difference alignments toward 0. An in-phase pair whose
// optimal path stays near the diagonal must therefore get cheaper as g
// grows.
func TestWDTW_GDampensInPhaseCost(t *testing.T) {
	x := dist.Series{{1, 2, 3}}
	y := dist.Series{{2, 3, 4}}

	flat, err := dist.Distance(dist.WDTW, x, y, dist.WithG(0))
	require.NoError(t, err)
	curved, err := dist.Distance(dist.WDTW, x, y, dist.WithG(5))
	require.NoError(t, err)

	assert.Equal(t, 1.0, flat, "g=0 must give exactly half of DTW's 2.0")
	assert.Less(t, curved, flat, "large g must shrink near-diagonal weights")
	assert.Greater(t, curved, 0.0, "nonidentical series keep a positive distance")
}

// TestWDTW_BadG ensures non-finite g fails at factory time with ErrG.
func TestWDTW_BadG(t *testing.T) {
	x := dist.Series{{1, 2}}

	_, err := dist.NewWDTW(x, x, dist.WithG(math.NaN()))
	assert.ErrorIs(t, err, dist.ErrG, "NaN g must error")

	_, err = dist.NewWDTW(x, x, dist.WithG(math.Inf(-1)))
	assert.ErrorIs(t, err, dist.ErrG, "infinite g must error")
}

// TestWDTW_Symmetry checks d(x,y) == d(y,x) under the default g.
func TestWDTW_Symmetry(t *testing.T) {
	x := synth.Sine(30, 2, 1, 0)
	y := synth.Sine(25, 2, 1, 0.7)

	dxy, err := dist.Distance(dist.WDTW, x, y)
	require.NoError(t, err)
	dyx, err := dist.Distance(dist.WDTW, y, x)
	require.NoError(t, err)
	assert.InDelta(t, dxy, dyx, 1e-12, "weighted DTW must be symmetric")
}
