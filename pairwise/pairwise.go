package pairwise

import (
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/elastic/dist"
)

// ErrNilFunc is returned by MatrixFunc when no distance function is supplied.
var ErrNilFunc = errors.New("pairwise: distance func is nil")

// pairFunc computes one cell; sweep fans it out across the grid.
type pairFunc func(x, y dist.Series) (float64, error)

// Matrix computes the distance matrix between panels X and Y under the
// named metric. With Y == nil the result is the N×N self-distance
// matrix of X — diagonal included, and exactly zero there for every
// reflexive metric. Otherwise the result is len(X)×len(Y).
//
// The metric is resolved in the registry once, at entry; per-pair work
// is limited to kernel construction (the bounding matrix depends on the
// pair's lengths) and the DP pass itself.
//
// Errors: dist.ErrUnknownMetric, panel validation errors (dist.ErrEmpty,
// dist.ErrRagged, dist.ErrDims), and any factory error from the metric
// (parameter range, bound resolution).
func Matrix(X, Y dist.Panel, m dist.Metric, opts ...dist.Option) ([][]float64, error) {
	f, err := dist.Resolve(m)
	if err != nil {
		return nil, err
	}

	return sweep(X, Y, func(x, y dist.Series) (float64, error) {
		fn, err := f(x, y, opts...)
		if err != nil {
			return 0, err
		}

		return fn(x, y), nil
	})
}

// MatrixFunc computes the distance matrix using a caller-supplied
// kernel instead of a registered metric. The function is trusted to be
// total over the panel's series; panel shape validation still applies.
//
// Errors: ErrNilFunc plus the panel validation errors.
func MatrixFunc(X, Y dist.Panel, fn dist.DistanceFunc) ([][]float64, error) {
	if fn == nil {
		return nil, ErrNilFunc
	}

	return sweep(X, Y, func(x, y dist.Series) (float64, error) {
		return fn(x, y), nil
	})
}

// sweep validates the panels and fills the output grid row-parallel.
// Each goroutine owns one output row, so no cell is written twice and
// the final Wait is the only synchronization point.
func sweep(X, Y dist.Panel, pair pairFunc) ([][]float64, error) {
	if Y == nil {
		Y = X
	}
	if err := validatePanels(X, Y); err != nil {
		return nil, err
	}

	out := make([][]float64, len(X))
	for i := range out {
		out[i] = make([]float64, len(Y))
	}

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := range X {
		row := out[i]
		x := X[i]
		g.Go(func() error {
			for j := range Y {
				d, err := pair(x, Y[j])
				if err != nil {
					return err
				}
				row[j] = d
			}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// validatePanels checks each panel and the cross-panel channel count.
func validatePanels(X, Y dist.Panel) error {
	if err := X.Validate(); err != nil {
		return fmt.Errorf("panel X: %w", err)
	}
	if err := Y.Validate(); err != nil {
		return fmt.Errorf("panel Y: %w", err)
	}
	if X[0].Dims() != Y[0].Dims() {
		return fmt.Errorf("panel X has %d channels, panel Y %d: %w",
			X[0].Dims(), Y[0].Dims(), dist.ErrDims)
	}

	return nil
}
