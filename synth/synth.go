package synth

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/elastic/dist"
)

// Shared defaults.
const (
	defAmp = 1.0 // default amplitude for Sine/Chirp when amp <= 0
	twoPi  = 2 * math.Pi
)

// guardLen panics on a non-positive length; all generators share it.
func guardLen(n int) {
	if n <= 0 {
		panic("synth: series length must be positive")
	}
}

// Sine returns one channel of n samples of amp·sin(2π·freq·t + phase),
// t sweeping [0, 1).
func Sine(n int, freq, amp, phase float64) dist.Series {
	guardLen(n)
	if amp <= 0 {
		amp = defAmp
	}
	ch := make([]float64, n)
	for t := 0; t < n; t++ {
		ch[t] = amp * math.Sin(twoPi*freq*float64(t)/float64(n)+phase)
	}

	return dist.Series{ch}
}

// Chirp returns one channel of n samples whose instantaneous frequency
// sweeps linearly from f0 to f1 over the series.
func Chirp(n int, f0, f1, amp float64) dist.Series {
	guardLen(n)
	if amp <= 0 {
		amp = defAmp
	}
	ch := make([]float64, n)
	for t := 0; t < n; t++ {
		u := float64(t) / float64(n) // normalized time in [0, 1)
		// Integrated instantaneous frequency of a linear sweep.
		phase := twoPi * (f0*u + (f1-f0)*u*u/2)
		ch[t] = amp * math.Sin(phase)
	}

	return dist.Series{ch}
}

// Ramp returns one channel of n samples of slope·t.
func Ramp(n int, slope float64) dist.Series {
	guardLen(n)
	ch := make([]float64, n)
	for t := 0; t < n; t++ {
		ch[t] = slope * float64(t)
	}

	return dist.Series{ch}
}

// Noisy returns a copy of s with Gaussian noise of the given sigma
// added to every sample. sigma <= 0 returns a plain copy. The seed
// makes the noise reproducible.
func Noisy(s dist.Series, sigma float64, seed int64) dist.Series {
	rng := rand.New(rand.NewSource(seed))
	out := make(dist.Series, len(s))
	for k := range s {
		out[k] = make([]float64, len(s[k]))
		copy(out[k], s[k])
		if sigma <= 0 {
			continue
		}
		for t := range out[k] {
			out[k][t] += rng.NormFloat64() * sigma
		}
	}

	return out
}

// Panel returns count phase-shifted noisy sines of length n — a quick
// panel for pairwise tests and benchmarks. Deterministic in seed.
func Panel(count, n int, seed int64) dist.Panel {
	if count <= 0 {
		panic("synth: panel size must be positive")
	}
	guardLen(n)
	rng := rand.New(rand.NewSource(seed))
	p := make(dist.Panel, count)
	for i := range p {
		base := Sine(n, 1+float64(i%3), defAmp, rng.Float64()*twoPi)
		p[i] = Noisy(base, 0.05, rng.Int63())
	}

	return p
}
