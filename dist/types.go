// Package dist: core data model — Series, Panel, DistanceFunc and the
// Metric identifiers accepted by the registry.

package dist

import "fmt"

// Series is one multivariate time series stored channels-first:
// Series[k][t] is sample t of channel k. All channels must share the
// same length. Series are treated as immutable by every kernel.
type Series [][]float64

// Dims returns the channel count D.
func (s Series) Dims() int { return len(s) }

// Len returns the sample count M (length of the first channel; Validate
// guarantees all channels agree).
func (s Series) Len() int {
	if len(s) == 0 {
		return 0
	}

	return len(s[0])
}

// Validate checks the structural invariants of a single series:
// at least one channel, at least one sample, rectangular channels.
//
// Errors: ErrEmpty, ErrRagged.
func (s Series) Validate() error {
	if len(s) == 0 || len(s[0]) == 0 {
		return ErrEmpty
	}
	m := len(s[0])
	for k := 1; k < len(s); k++ {
		if len(s[k]) != m {
			return fmt.Errorf("channel %d has %d samples, want %d: %w", k, len(s[k]), m, ErrRagged)
		}
	}

	return nil
}

// CheckPair validates both series and their channel-count agreement.
// Unequal sample counts are explicitly fine — that is what the elastic
// metrics are for.
//
// Errors: ErrEmpty, ErrRagged, ErrDims.
func CheckPair(x, y Series) error {
	if err := x.Validate(); err != nil {
		return err
	}
	if err := y.Validate(); err != nil {
		return err
	}
	if x.Dims() != y.Dims() {
		return fmt.Errorf("%d vs %d channels: %w", x.Dims(), y.Dims(), ErrDims)
	}

	return nil
}

// seriesEqual reports whether two series are identical arrays: same
// shape, bitwise-equal samples. Used by the EDR fast path.
func seriesEqual(x, y Series) bool {
	if len(x) != len(y) {
		return false
	}
	for k := range x {
		if len(x[k]) != len(y[k]) {
			return false
		}
		for t := range x[k] {
			if x[k][t] != y[k][t] {
				return false
			}
		}
	}

	return true
}

// Panel is an ordered collection of series. Series within one panel may
// differ in length but must share the channel count.
type Panel []Series

// Validate checks every member series and the shared channel count.
//
// Errors: ErrEmpty (empty panel or empty member), ErrRagged, ErrDims.
func (p Panel) Validate() error {
	if len(p) == 0 {
		return fmt.Errorf("empty panel: %w", ErrEmpty)
	}
	d := p[0].Dims()
	for i, s := range p {
		if err := s.Validate(); err != nil {
			return fmt.Errorf("series %d: %w", i, err)
		}
		if s.Dims() != d {
			return fmt.Errorf("series %d has %d channels, want %d: %w", i, s.Dims(), d, ErrDims)
		}
	}

	return nil
}

// DistanceFunc is a compiled distance kernel: a pure function over two
// series of the shapes it was built for. It never errors — every
// failure mode is caught by the factory that produced it.
type DistanceFunc func(x, y Series) float64

// Metric names one of the registered distance measures. The set is
// fixed at compile time; see Metrics for the full list.
type Metric string

const (
	// DTW is unweighted dynamic time warping over squared local costs.
	DTW Metric = "dtw"

	// WDTW is weighted DTW: a sigmoid phase-difference weight scales
	// each local cost.
	WDTW Metric = "wdtw"

	// EDR is edit distance on real sequences, normalized to [0,1].
	EDR Metric = "edr"

	// LCSS is the longest-common-subsequence distance, normalized to [0,1].
	LCSS Metric = "lcss"

	// Squared is the lock-step sum of squared differences (equal lengths only).
	Squared Metric = "squared"

	// Euclidean is the square root of Squared (equal lengths only).
	Euclidean Metric = "euclidean"
)
