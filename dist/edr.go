package dist

import (
	"fmt"
	"math"
)

// EDR — edit distance on real sequences.
//
// Two samples "match" when their local Euclidean distance falls below a
// threshold epsilon; a mismatch, insertion or deletion each cost one
// edit. Boundary row 0 and column 0 hold 0, since EDR allows delete
// transitions from empty prefixes.
//
// Recurrence (in-band cells only):
//
//	sub        = 0 if ‖x[·][i-1] - y[·][j-1]‖ < epsilon else 1
//	cost[i][j] = min(cost[i-1][j-1] + sub, cost[i-1][j] + 1, cost[i][j-1] + 1)
//
// The distance is cost[n][m] / max(n, m), bounded in [0, 1].
//
// Identical series short-circuit to exactly 0 before any DP runs. This
// is a required fast path, not an optimization: with a degenerate
// epsilon (0, or an auto-epsilon of 0 on constant series) the DP would
// otherwise report a nonzero distance for bitwise-equal input.
//
// When epsilon is not supplied it defaults to max(std(x), std(y)) / 4,
// the population standard deviation over the whole series, fixed at
// factory time like every other kernel parameter.

// NewEDR validates the pair's shape and epsilon (WithEpsilon), resolves
// the bounding matrix and returns a compiled EDR kernel.
//
// Errors: ErrEpsilon for a negative, NaN or infinite epsilon, plus
// everything NewDTW can return.
func NewEDR(x, y Series, opts ...Option) (DistanceFunc, error) {
	if err := CheckPair(x, y); err != nil {
		return nil, err
	}
	cfg := gather(opts)
	eps := cfg.epsilon
	if math.IsNaN(eps) {
		eps = math.Max(stdDev(x), stdDev(y)) / 4
	} else if eps < 0 || math.IsInf(eps, 0) {
		return nil, fmt.Errorf("epsilon %v: %w", cfg.epsilon, ErrEpsilon)
	}
	bm, err := cfg.resolveBound(x.Len(), y.Len())
	if err != nil {
		return nil, err
	}

	return func(a, b Series) float64 {
		if seriesEqual(a, b) {
			return 0
		}
		n, m := a.Len(), b.Len()
		cm := newCostMatrix(n, m, 0)
		for i := 1; i <= n; i++ {
			for j := 1; j <= m; j++ {
				if !bm.InBand(i-1, j-1) {
					continue
				}
				sub := 1.0
				if localEuclidean(a, b, i-1, j-1) < eps {
					sub = 0
				}
				cm.set(i, j, min(cm.at(i-1, j-1)+sub, cm.at(i-1, j)+1, cm.at(i, j-1)+1))
			}
		}

		return cm.at(n, m) / float64(max(n, m))
	}, nil
}
