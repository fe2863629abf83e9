// Package elastic is a toolbox for comparing time series that drift,
// stretch or lag — elastic distance measures with constrained alignment
// and batch pairwise computation.
//
// 🚀 What is elastic?
//
//	A modern, zero-surprise library that brings together:
//		• Series model: multivariate series (channels × samples), unequal lengths welcome
//		• Bounding: Sakoe–Chiba bands, Itakura parallelograms, custom masks
//		• Kernels: DTW, weighted DTW, EDR, LCSS + squared/Euclidean primitives
//		• Pairwise: parallel N×M distance matrices over panels of series
//
// ✨ Why choose elastic?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Fail-fast guarantees – every parameter validated before the DP loop
//   - Pure Go kernels – no cgo, flat row-major hot paths
//   - Composable – compile a kernel once, call it across thousands of pairs
//
// Everything is organized under four subpackages:
//
//	bound/    — bounding-matrix construction (None, Sakoe–Chiba, Itakura, custom)
//	dist/     — distance kernels, metric registry, series model
//	pairwise/ — distance matrices across one or two panels
//	synth/    — deterministic series generators for tests, benchmarks and demos
//
// Quick ASCII intuition:
//
//	x: ───╱╲────╱╲───
//	y: ────╱╲──╱╲────
//
//	DTW warps the time axis so the two pulse trains line up before
//	their values are compared.
//
// Dive into each package's doc.go and example_test.go for runnable
// walkthroughs.
//
//	go get github.com/katalvlaran/elastic
package elastic
