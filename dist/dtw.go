package dist

import "github.com/katalvlaran/elastic/bound"

// DTW — Dynamic Time Warping over squared local costs.
//
// Algorithm outline:
//  1. Resolve the bounding matrix for the shapes of x and y (factory time).
//  2. Allocate an (n+1)x(m+1) cost matrix, boundary +Inf, origin 0.
//  3. For every in-band cell, in strict row-major order:
//     cost[i][j] = min(cost[i-1][j], cost[i][j-1], cost[i-1][j-1])
//                + Σ_k (x[k][i-1] - y[k][j-1])²
//  4. The distance is cost[n][m].
//
// Out-of-band cells keep +Inf, so a bounding matrix that admits no path
// yields +Inf — a value in the cost-matrix algebra, not an error.
//
// Complexity: O(n·m·D) time, O(n·m) memory per call.

// NewDTW validates the pair's shape, resolves the bounding matrix and
// returns a compiled DTW kernel for series of those shapes.
//
// Errors: ErrEmpty, ErrRagged, ErrDims, plus the bound package
// sentinels (bound.ErrWindow, bound.ErrSlope, bound.ErrShape,
// bound.ErrUnreachable, bound.ErrStrategy).
func NewDTW(x, y Series, opts ...Option) (DistanceFunc, error) {
	if err := CheckPair(x, y); err != nil {
		return nil, err
	}
	cfg := gather(opts)
	bm, err := cfg.resolveBound(x.Len(), y.Len())
	if err != nil {
		return nil, err
	}

	return func(a, b Series) float64 {
		return dtwCost(a, b, bm).at(a.Len(), b.Len())
	}, nil
}

// dtwCost fills the DTW cost matrix. The weighted variant has its own
// fill to keep the unweighted hot loop free of the weight lookup.
func dtwCost(x, y Series, bm *bound.Matrix) costMatrix {
	n, m := x.Len(), y.Len()
	cm := newCostMatrix(n, m, posInf)
	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			if !bm.InBand(i-1, j-1) {
				continue
			}
			cm.set(i, j, min(cm.at(i-1, j), cm.at(i, j-1), cm.at(i-1, j-1))+
				localSquared(x, y, i-1, j-1))
		}
	}

	return cm
}
