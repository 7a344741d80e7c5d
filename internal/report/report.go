package report

import (
	"github.com/san-kum/datastat/internal/dataset"
	"github.com/san-kum/datastat/internal/metrics"
)

type Options struct {
	Percentiles   []float64
	CorrelateWith []float64
	// Registry selects the metrics; nil uses metrics.NewRegistry().
	Registry *metrics.Registry
}

type Percentile struct {
	P     float64       `json:"p" yaml:"p"`
	Value dataset.Value `json:"value" yaml:"value"`
}

type Summary struct {
	Count       int              `json:"count" yaml:"count"`
	Metrics     []metrics.Result `json:"metrics" yaml:"metrics"`
	Mode        []float64        `json:"mode" yaml:"mode"`
	Percentiles []Percentile     `json:"percentiles" yaml:"percentiles"`
	Correlation *dataset.Value   `json:"correlation,omitempty" yaml:"correlation,omitempty"`
}

// Build evaluates every registered metric and the requested order
// statistics. Correlation is included only when CorrelateWith is non-empty.
func Build(a *dataset.Analyzer, opts Options) *Summary {
	reg := opts.Registry
	if reg == nil {
		reg = metrics.NewRegistry()
	}

	s := &Summary{
		Count:       a.Len(),
		Metrics:     reg.Evaluate(a),
		Mode:        a.Mode(),
		Percentiles: make([]Percentile, 0, len(opts.Percentiles)),
	}

	for _, p := range opts.Percentiles {
		s.Percentiles = append(s.Percentiles, Percentile{P: p, Value: a.Percentile(p)})
	}

	if len(opts.CorrelateWith) > 0 {
		r := a.Correlation(opts.CorrelateWith)
		s.Correlation = &r
	}

	return s
}

// Metric returns the named metric from the summary.
func (s *Summary) Metric(name string) (dataset.Value, bool) {
	for _, m := range s.Metrics {
		if m.Name == name {
			return m.Value, true
		}
	}
	return dataset.None(), false
}
