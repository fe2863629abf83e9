// Package dist: elementary distance primitives. These are the innermost
// operations of every DP kernel — pure, allocation-free, branch-free,
// called once per visited cost-matrix cell.

package dist

import "math"

// localSquared is the sum of squared per-channel differences between
// sample i of x and sample j of y.
// Complexity: O(D).
func localSquared(x, y Series, i, j int) float64 {
	var d, diff float64
	for k := range x {
		diff = x[k][i] - y[k][j]
		d += diff * diff
	}

	return d
}

// localEuclidean is the Euclidean norm of the per-channel difference at
// a single alignment cell; used by the threshold metrics (EDR, LCSS).
// Complexity: O(D).
func localEuclidean(x, y Series, i, j int) float64 {
	return math.Sqrt(localSquared(x, y, i, j))
}

// stdDev is the population standard deviation over every sample of
// every channel. EDR's default epsilon is a quarter of the larger of
// the two series' deviations, computed on the whole series.
// Complexity: O(D·M).
func stdDev(s Series) float64 {
	var sum float64
	n := 0
	for k := range s {
		for t := range s[k] {
			sum += s[k][t]
			n++
		}
	}
	if n == 0 {
		return 0
	}
	mean := sum / float64(n)

	var sq, diff float64
	for k := range s {
		for t := range s[k] {
			diff = s[k][t] - mean
			sq += diff * diff
		}
	}

	return math.Sqrt(sq / float64(n))
}
