// Package synth generates deterministic univariate test series —
// sines, chirps, ramps, optional Gaussian noise — for tests, benchmarks
// and runnable examples across the module.
//
// Determinism:
//   - No global state; noise uses a local rand seeded by the caller, so
//     the same seed always reproduces the same series.
//   - Generators panic only on nonsensical parameters (programmer
//     error, e.g. a non-positive length); they never return errors.
//
// All generators return dist.Series with a single channel; combine them
// into multichannel series or panels by slicing.
package synth
