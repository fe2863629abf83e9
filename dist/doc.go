// Package dist computes elastic distances between multivariate time
// series: DTW, weighted DTW, EDR and LCSS, plus the squared/Euclidean
// primitives they are built on.
//
// 🚀 The kernel model
//
//	Every metric is exposed as a factory:
//
//	  fn, err := dist.NewDTW(x, y, dist.WithBound(bound.SakoeChiba), dist.WithWindow(10))
//
//	The factory resolves the bounding matrix for the shapes of x and y,
//	validates every metric parameter, and returns a compiled DistanceFunc
//	closure.  The closure is a total, pure function over series of those
//	shapes: it never errors, never allocates shared state, and is safe to
//	call from many goroutines at once.  All failure surfaces at factory
//	time — never inside the DP loop.
//
// ✨ The metric registry
//
//	A fixed, read-only set of named metrics backs dynamic dispatch:
//
//	  fn, err := dist.New(dist.LCSS, x, y, dist.WithEpsilon(0.5))
//	  d, err  := dist.Distance(dist.DTW, x, y)  // one-shot helper
//
//	Unknown names fail with ErrUnknownMetric before any computation.
//
// 📐 Series model
//
//	Series is a D×M matrix: D channels, M samples per channel, channels
//	first.  Two series in one distance call must agree on D; they may
//	differ in M.  EDR and LCSS results are guaranteed to lie in [0,1];
//	DTW-family results are non-negative (and +Inf only when a custom
//	bounding matrix admits no path).
//
// See example_test.go for runnable walkthroughs and bench_test.go for
// the performance envelope.
package dist
