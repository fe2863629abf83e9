// Package dist: sentinel error set.
// Factories MUST return these sentinels (optionally wrapped with
// context via fmt.Errorf + %w) and tests MUST match them with errors.Is.
// Compiled kernels never error; every condition below is detected at
// construction time.

package dist

import "errors"

var (
	// ErrEmpty is returned when a series has no channels or no samples.
	ErrEmpty = errors.New("dist: series must be non-empty")

	// ErrRagged is returned when the channels of one series differ in length.
	ErrRagged = errors.New("dist: channels must have equal length")

	// ErrDims is returned when two series (or two panels) disagree on
	// channel count.
	ErrDims = errors.New("dist: channel count mismatch")

	// ErrLengthMismatch is returned by the lock-step metrics (squared,
	// Euclidean) when the series lengths differ. The elastic metrics
	// accept unequal lengths by design.
	ErrLengthMismatch = errors.New("dist: series length mismatch")

	// ErrG is returned when the weighted-DTW curvature constant is NaN
	// or ±Inf.
	ErrG = errors.New("dist: g must be a finite number")

	// ErrEpsilon is returned when a matching threshold is out of range:
	// EDR requires a finite epsilon >= 0, LCSS a finite epsilon > 0.
	ErrEpsilon = errors.New("dist: invalid epsilon")

	// ErrUnknownMetric is returned by the registry for an unrecognized
	// metric name.
	ErrUnknownMetric = errors.New("dist: unknown metric")
)
