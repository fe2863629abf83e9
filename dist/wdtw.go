package dist

import (
	"fmt"
	"math"
)

// WDTW — weighted Dynamic Time Warping.
//
// A sigmoid weight vector, precomputed once at factory time,
//
//	w[k] = 1 / (1 + exp(-g * (k - n/2)))    for k in [0, len(w))
//
// scales each local cost by w[|i-j|]: the further an alignment strays
// from being in phase, the larger the penalty. With g = 0 every weight
// is exactly 0.5, so the result equals half of unweighted DTW — a
// deliberate, testable identity.
//
// Recurrence (in-band cells only, boundary +Inf, origin 0):
//
//	cost[i][j] = min(cost[i-1][j], cost[i][j-1], cost[i-1][j-1])
//	           + w[|i-j|] * Σ_k (x[k][i-1] - y[k][j-1])²
//
// Complexity: O(n·m·D) time per call; the weight vector costs O(max(n,m))
// once at construction.

// NewWDTW validates the pair's shape and the curvature constant g
// (WithG), resolves the bounding matrix, precomputes the weight vector
// and returns a compiled weighted-DTW kernel.
//
// Errors: ErrG for a non-finite g, plus everything NewDTW can return.
func NewWDTW(x, y Series, opts ...Option) (DistanceFunc, error) {
	if err := CheckPair(x, y); err != nil {
		return nil, err
	}
	cfg := gather(opts)
	if math.IsNaN(cfg.g) || math.IsInf(cfg.g, 0) {
		return nil, fmt.Errorf("g %v: %w", cfg.g, ErrG)
	}
	bm, err := cfg.resolveBound(x.Len(), y.Len())
	if err != nil {
		return nil, err
	}

	// The phase difference |i-j| ranges up to max(n,m)-1, so the vector
	// covers the longer length; the sigmoid midpoint stays at n/2.
	w := sigmoidWeights(x.Len(), y.Len(), cfg.g)

	return func(a, b Series) float64 {
		n, m := a.Len(), b.Len()
		cm := newCostMatrix(n, m, posInf)
		for i := 1; i <= n; i++ {
			for j := 1; j <= m; j++ {
				if !bm.InBand(i-1, j-1) {
					continue
				}
				d := i - j
				if d < 0 {
					d = -d
				}
				cm.set(i, j, min(cm.at(i-1, j), cm.at(i, j-1), cm.at(i-1, j-1))+
					w[d]*localSquared(a, b, i-1, j-1))
			}
		}

		return cm.at(n, m)
	}, nil
}

// sigmoidWeights evaluates the weight vector once per kernel
// construction: w[k] = 1/(1+exp(-g*(k - n/2))) for k in [0, max(n,m)).
func sigmoidWeights(n, m int, g float64) []float64 {
	half := float64(n) / 2
	w := make([]float64, max(n, m))
	for k := range w {
		w[k] = 1 / (1 + math.Exp(-g*(float64(k)-half)))
	}

	return w
}
