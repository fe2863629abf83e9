// Package bound: sentinel error set.
// All constructors MUST return these sentinels and tests MUST check them
// via errors.Is. No constructor panics on user-triggered conditions.

package bound

import "errors"

var (
	// ErrLength is returned when a series length is not strictly positive.
	ErrLength = errors.New("bound: series length must be positive")

	// ErrWindow is returned when a Sakoe–Chiba window is negative or not
	// a number. Raised at build time, never inside a DP loop.
	ErrWindow = errors.New("bound: invalid Sakoe-Chiba window")

	// ErrSlope is returned when an Itakura max slope is below 1 or not a
	// finite number.
	ErrSlope = errors.New("bound: Itakura max slope must be >= 1")

	// ErrShape is returned when a custom bounding matrix is ragged, empty,
	// or does not match the series lengths it is resolved against.
	ErrShape = errors.New("bound: bounding matrix shape mismatch")

	// ErrUnreachable is returned when a bounding configuration admits no
	// path from (0,0) to (len1-1, len2-1), e.g. a zero-radius band over
	// series of different lengths.
	ErrUnreachable = errors.New("bound: band cannot reach the final alignment cell")

	// ErrStrategy is returned for an unrecognized Strategy value.
	ErrStrategy = errors.New("bound: unknown bounding strategy")
)
