package dataset

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

func (a *Analyzer) Sum() float64 {
	return floats.Sum(a.data)
}

// Product returns the product of all values, 1 for an empty dataset.
func (a *Analyzer) Product() float64 {
	return floats.Prod(a.data)
}

func (a *Analyzer) Mean() Value {
	if len(a.data) == 0 {
		return None()
	}
	return Some(stat.Mean(a.data, nil))
}

func (a *Analyzer) Median() Value {
	n := len(a.data)
	if n == 0 {
		return None()
	}
	sorted := a.SortData()
	mid := n / 2
	if n%2 == 1 {
		return Some(sorted[mid])
	}
	return Some((sorted[mid-1] + sorted[mid]) / 2)
}

// Mode returns every value sharing the highest frequency, ordered by first
// appearance. The result is empty, never nil, for an empty dataset.
func (a *Analyzer) Mode() []float64 {
	counts := make(map[float64]int, len(a.data))
	order := make([]float64, 0, len(a.data))
	best := 0

	for _, v := range a.data {
		if counts[v] == 0 {
			order = append(order, v)
		}
		counts[v]++
		if counts[v] > best {
			best = counts[v]
		}
	}

	modes := make([]float64, 0)
	for _, v := range order {
		if counts[v] == best {
			modes = append(modes, v)
		}
	}
	return modes
}
