package metrics

import (
	"fmt"

	"github.com/containerd/errdefs"

	"github.com/san-kum/datastat/internal/dataset"
)

// Func computes one scalar metric over the current dataset.
type Func func(a *dataset.Analyzer) dataset.Value

type Result struct {
	Name  string        `json:"name" yaml:"name"`
	Value dataset.Value `json:"value" yaml:"value"`
}

type Registry struct {
	metrics map[string]Func
	names   []string
}

// NewRegistry returns a registry preloaded with the built-in metrics.
func NewRegistry() *Registry {
	r := &Registry{metrics: make(map[string]Func)}

	r.Register("count", func(a *dataset.Analyzer) dataset.Value { return dataset.Some(float64(a.Len())) })
	r.Register("sum", func(a *dataset.Analyzer) dataset.Value { return dataset.Some(a.Sum()) })
	r.Register("product", func(a *dataset.Analyzer) dataset.Value { return dataset.Some(a.Product()) })
	r.Register("mean", (*dataset.Analyzer).Mean)
	r.Register("median", (*dataset.Analyzer).Median)
	r.Register("min", (*dataset.Analyzer).Min)
	r.Register("max", (*dataset.Analyzer).Max)
	r.Register("range", func(a *dataset.Analyzer) dataset.Value { return dataset.Some(a.Range()) })
	r.Register("variance", (*dataset.Analyzer).Variance)
	r.Register("stddev", (*dataset.Analyzer).StandardDeviation)
	r.Register("cv", func(a *dataset.Analyzer) dataset.Value { return dataset.Some(a.CoefficientOfVariation()) })
	r.Register("iqr", (*dataset.Analyzer).IQR)

	return r
}

// Register adds or replaces a metric. New names are appended to the
// evaluation order.
func (r *Registry) Register(name string, fn Func) {
	if _, ok := r.metrics[name]; !ok {
		r.names = append(r.names, name)
	}
	r.metrics[name] = fn
}

func (r *Registry) Get(name string) (Func, error) {
	fn, ok := r.metrics[name]
	if !ok {
		return nil, fmt.Errorf("unknown metric %q: %w", name, errdefs.ErrNotFound)
	}
	return fn, nil
}

// Names returns metric names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.names))
	copy(names, r.names)
	return names
}

func (r *Registry) Evaluate(a *dataset.Analyzer) []Result {
	results := make([]Result, 0, len(r.names))
	for _, name := range r.names {
		results = append(results, Result{Name: name, Value: r.metrics[name](a)})
	}
	return results
}
