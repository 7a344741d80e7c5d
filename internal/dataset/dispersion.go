package dataset

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Variance returns the population variance, the mean squared deviation
// from the mean, so [1 2 3 4 5] has variance 2. A single value has
// variance 0.
func (a *Analyzer) Variance() Value {
	switch len(a.data) {
	case 0:
		return None()
	case 1:
		return Some(0)
	}
	return Some(stat.PopVariance(a.data, nil))
}

func (a *Analyzer) StandardDeviation() Value {
	v, ok := a.Variance().Get()
	if !ok {
		return None()
	}
	return Some(math.Sqrt(v))
}

func (a *Analyzer) Min() Value {
	if len(a.data) == 0 {
		return None()
	}
	return Some(floats.Min(a.data))
}

func (a *Analyzer) Max() Value {
	if len(a.data) == 0 {
		return None()
	}
	return Some(floats.Max(a.data))
}

// Range returns max - min, 0 for an empty dataset.
func (a *Analyzer) Range() float64 {
	lo, ok := a.Min().Get()
	if !ok {
		return 0
	}
	hi, _ := a.Max().Get()
	return hi - lo
}

// CoefficientOfVariation returns the standard deviation as a percentage of
// the mean. An empty dataset yields NaN (0/0), not an absent value.
func (a *Analyzer) CoefficientOfVariation() float64 {
	sd := a.StandardDeviation().Or(0)
	mean := a.Mean().Or(0)
	return sd / mean * 100
}

// Normalize maps each value into [0, 1] by min-max scaling. A constant
// dataset maps to all zeros.
func (a *Analyzer) Normalize() []float64 {
	out := make([]float64, len(a.data))
	if len(a.data) == 0 {
		return out
	}

	lo := a.Min().Or(0)
	span := a.Range()
	if span == 0 {
		return out
	}
	for i, v := range a.data {
		out[i] = (v - lo) / span
	}
	return out
}
