package dist

import (
	"fmt"
	"math"
)

// Squared / Euclidean — the lock-step primitives the elastic kernels
// build on, exposed as whole-series metrics in their own right. Both
// require equal sample counts (there is no warping to absorb a length
// difference) and ignore the bounding options entirely.

// NewSquared returns a kernel computing the sum of squared differences
// over every aligned sample of every channel.
//
// Errors: ErrEmpty, ErrRagged, ErrDims, ErrLengthMismatch.
func NewSquared(x, y Series, opts ...Option) (DistanceFunc, error) {
	if err := checkLockStep(x, y); err != nil {
		return nil, err
	}

	return squaredDistance, nil
}

// NewEuclidean returns a kernel computing the Euclidean norm of the
// whole-series difference: the square root of NewSquared's result.
//
// Errors: same as NewSquared.
func NewEuclidean(x, y Series, opts ...Option) (DistanceFunc, error) {
	if err := checkLockStep(x, y); err != nil {
		return nil, err
	}

	return func(a, b Series) float64 {
		return math.Sqrt(squaredDistance(a, b))
	}, nil
}

// checkLockStep extends the pair check with the equal-length requirement
// of the non-elastic metrics.
func checkLockStep(x, y Series) error {
	if err := CheckPair(x, y); err != nil {
		return err
	}
	if x.Len() != y.Len() {
		return fmt.Errorf("%d vs %d samples: %w", x.Len(), y.Len(), ErrLengthMismatch)
	}

	return nil
}

// squaredDistance is the compiled kernel body; it is already total over
// validated shapes, so every NewSquared call shares it.
func squaredDistance(x, y Series) float64 {
	var d float64
	for t := 0; t < x.Len(); t++ {
		d += localSquared(x, y, t, t)
	}

	return d
}
