// Package dist: the metric registry. A fixed, read-only mapping from
// Metric identifiers to kernel factories — resolved once per
// pairwise-distance entry, never per pair, and requiring no locking
// after package initialization.

package dist

import (
	"fmt"
	"sort"
)

// Factory is the shared constructor signature of every registered
// metric: validate eagerly, compile a DistanceFunc for the shapes of
// x and y.
type Factory func(x, y Series, opts ...Option) (DistanceFunc, error)

// registry is populated once at init and read-only afterwards.
var registry = map[Metric]Factory{
	DTW:       NewDTW,
	WDTW:      NewWDTW,
	EDR:       NewEDR,
	LCSS:      NewLCSS,
	Squared:   NewSquared,
	Euclidean: NewEuclidean,
}

// Resolve looks a metric up in the registry.
//
// Errors: ErrUnknownMetric for a name outside the fixed set.
func Resolve(m Metric) (Factory, error) {
	f, ok := registry[m]
	if !ok {
		return nil, fmt.Errorf("%q: %w", string(m), ErrUnknownMetric)
	}

	return f, nil
}

// New resolves the metric and invokes its factory — the dynamic-dispatch
// counterpart of calling NewDTW and friends directly.
func New(m Metric, x, y Series, opts ...Option) (DistanceFunc, error) {
	f, err := Resolve(m)
	if err != nil {
		return nil, err
	}

	return f(x, y, opts...)
}

// Distance is the one-shot helper: compile the kernel for x and y and
// apply it immediately.
func Distance(m Metric, x, y Series, opts ...Option) (float64, error) {
	fn, err := New(m, x, y, opts...)
	if err != nil {
		return 0, err
	}

	return fn(x, y), nil
}

// Metrics returns the registered metric names in sorted order, for
// discoverability and table-driven tests.
func Metrics() []Metric {
	names := make([]Metric, 0, len(registry))
	for m := range registry {
		names = append(names, m)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })

	return names
}
