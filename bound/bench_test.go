package bound_test

import (
	"testing"

	"github.com/katalvlaran/elastic/bound"
)

// benchmarkBuild runs a matrix constructor for b.N iterations and fails
// fast on unexpected errors.
func benchmarkBuild(b *testing.B, build func() (*bound.Matrix, error)) {
	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, err := build(); err != nil {
			b.Fatalf("build failed: %v", err)
		}
	}
}

// BenchmarkNoBound_500 benchmarks the unconstrained builder on a 500x500 grid.
func BenchmarkNoBound_500(b *testing.B) {
	benchmarkBuild(b, func() (*bound.Matrix, error) { return bound.NewNoBound(500, 500) })
}

// BenchmarkSakoeChiba_500 benchmarks a ±25 band on a 500x500 grid.
func BenchmarkSakoeChiba_500(b *testing.B) {
	benchmarkBuild(b, func() (*bound.Matrix, error) { return bound.NewSakoeChiba(500, 500, 25) })
}

// BenchmarkItakura_500 benchmarks a slope-2 parallelogram on a 500x500 grid.
func BenchmarkItakura_500(b *testing.B) {
	benchmarkBuild(b, func() (*bound.Matrix, error) { return bound.NewItakura(500, 500, 2) })
}
