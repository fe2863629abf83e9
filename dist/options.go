// Package dist: functional configuration for kernel factories.
// This file defines:
//   - Option and the internal config it mutates,
//   - documented defaults (constants),
//   - WithX constructors.
//
// Design goals:
//   - Deterministic behavior: no global state, defaults are named constants.
//   - Eager validation: factories check every field before compiling a kernel.
//   - One option set for all metrics: irrelevant fields are simply unused
//     (e.g. WithG on LCSS), keeping the factory signatures uniform.

package dist

import (
	"math"

	"github.com/katalvlaran/elastic/bound"
)

// Defaults — single source of truth for zero-value behavior.
const (
	// DefaultWindow is the Sakoe–Chiba radius used when WithBound(SakoeChiba)
	// is selected without an explicit window.
	DefaultWindow = 2.0

	// DefaultMaxSlope is the Itakura slope used when WithBound(Itakura)
	// is selected without an explicit slope.
	DefaultMaxSlope = 2.0

	// DefaultG is the weighted-DTW curvature constant; 0 makes every
	// weight exactly 0.5, i.e. half of unweighted DTW.
	DefaultG = 0.0

	// DefaultLCSSEpsilon is the LCSS matching threshold.
	DefaultLCSSEpsilon = 1.0
)

// config carries the resolved factory parameters. Fields are unexported;
// public APIs consume ...Option.
type config struct {
	strategy bound.Strategy
	window   float64
	maxSlope float64
	custom   *bound.Matrix
	g        float64
	epsilon  float64 // NaN means "not supplied" (metric-specific default applies)
}

// Option mutates the factory configuration.
type Option func(*config)

// defaultConfig returns the documented defaults: no bounding, sigmoid
// weight disabled (g=0), epsilon unset.
func defaultConfig() config {
	return config{
		strategy: bound.None,
		window:   DefaultWindow,
		maxSlope: DefaultMaxSlope,
		g:        DefaultG,
		epsilon:  math.NaN(),
	}
}

// gather applies opts over the defaults.
func gather(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithBound selects the bounding strategy (bound.None, bound.SakoeChiba,
// bound.Itakura). Ignored when WithBoundMatrix supplies a custom matrix.
func WithBound(s bound.Strategy) Option {
	return func(c *config) { c.strategy = s }
}

// WithWindow sets the Sakoe–Chiba window: a fraction of the longer
// length when in (0,1), an absolute radius when >= 1, diagonal-only
// when 0. Validation happens in the bound package at factory time.
func WithWindow(w float64) Option {
	return func(c *config) { c.window = w }
}

// WithMaxSlope sets the Itakura parallelogram slope (must be >= 1).
func WithMaxSlope(s float64) Option {
	return func(c *config) { c.maxSlope = s }
}

// WithBoundMatrix supplies a custom bounding matrix, used verbatim; all
// other bounding options are ignored. Its shape must match the series
// lengths the factory is called with.
func WithBoundMatrix(m *bound.Matrix) Option {
	return func(c *config) { c.custom = m }
}

// WithG sets the weighted-DTW curvature constant g: larger values
// penalize alignments with larger phase difference more sharply.
// Only consulted by NewWDTW.
func WithG(g float64) Option {
	return func(c *config) { c.g = g }
}

// WithEpsilon sets the matching threshold for EDR and LCSS. When not
// supplied, EDR defaults to max(std(x), std(y))/4 over the whole series
// and LCSS to DefaultLCSSEpsilon.
func WithEpsilon(e float64) Option {
	return func(c *config) { c.epsilon = e }
}

// resolveBound resolves the bounding matrix for the given series
// lengths according to the gathered configuration.
func (c *config) resolveBound(len1, len2 int) (*bound.Matrix, error) {
	return bound.Resolve(len1, len2, c.strategy, c.window, c.maxSlope, c.custom)
}
