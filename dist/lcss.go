package dist

import (
	"fmt"
	"math"
)

// LCSS — longest-common-subsequence distance.
//
// The DP table counts the longest chain of matching sample pairs over
// legal warpings, where a pair matches when its local Euclidean
// distance falls below epsilon. Boundary row 0 and column 0 hold 0.
//
// Recurrence (in-band cells only):
//
//	if ‖x[·][i-1] - y[·][j-1]‖ < epsilon:
//	    cost[i][j] = cost[i-1][j-1] + 1
//	else:
//	    cost[i][j] = max(cost[i][j-1], cost[i-1][j])
//
// The distance is 1 - cost[n][m]/min(n, m), bounded in [0, 1]; 0 means
// maximally similar under epsilon.
//
// epsilon defaults to DefaultLCSSEpsilon and must be strictly positive:
// with epsilon <= 0 nothing can ever match, which would make even
// distance(x, x) equal 1 and break reflexivity.

// NewLCSS validates the pair's shape and epsilon (WithEpsilon), resolves
// the bounding matrix and returns a compiled LCSS kernel.
//
// Errors: ErrEpsilon for epsilon <= 0, NaN or ±Inf, plus everything
// NewDTW can return.
func NewLCSS(x, y Series, opts ...Option) (DistanceFunc, error) {
	if err := CheckPair(x, y); err != nil {
		return nil, err
	}
	cfg := gather(opts)
	eps := cfg.epsilon
	if math.IsNaN(eps) {
		eps = DefaultLCSSEpsilon
	} else if eps <= 0 || math.IsInf(eps, 0) {
		return nil, fmt.Errorf("epsilon %v: %w", cfg.epsilon, ErrEpsilon)
	}
	bm, err := cfg.resolveBound(x.Len(), y.Len())
	if err != nil {
		return nil, err
	}

	return func(a, b Series) float64 {
		n, m := a.Len(), b.Len()
		cm := newCostMatrix(n, m, 0)
		for i := 1; i <= n; i++ {
			for j := 1; j <= m; j++ {
				if !bm.InBand(i-1, j-1) {
					continue
				}
				if localEuclidean(a, b, i-1, j-1) < eps {
					cm.set(i, j, cm.at(i-1, j-1)+1)
				} else {
					cm.set(i, j, math.Max(cm.at(i, j-1), cm.at(i-1, j)))
				}
			}
		}

		return 1 - cm.at(n, m)/float64(min(n, m))
	}, nil
}
