package dataset

import (
	"fmt"
	"math"
	"reflect"
)

// DefaultOutlierFactor is the conventional Tukey fence multiplier.
const DefaultOutlierFactor = 1.5

// Analyzer holds an ordered, mutable sequence of real numbers.
type Analyzer struct {
	data []float64
}

// New returns an Analyzer seeded with a copy of initial.
func New(initial ...float64) *Analyzer {
	data := make([]float64, len(initial))
	copy(data, initial)
	return &Analyzer{data: data}
}

func (a *Analyzer) Len() int { return len(a.data) }

// Data returns a copy of the dataset in insertion order.
func (a *Analyzer) Data() []float64 {
	out := make([]float64, len(a.data))
	copy(out, a.data)
	return out
}

// AddData appends items after the existing values.
func (a *Analyzer) AddData(items ...float64) {
	a.data = append(a.data, items...)
}

// AddValues appends a dynamically typed sequence, such as a decoded YAML
// list. items must be a slice or array of numbers; otherwise the dataset is
// left unchanged and the error satisfies errdefs.IsInvalidArgument.
// Byte slices and arrays hold text, not numbers, and are rejected.
func (a *Analyzer) AddValues(items any) error {
	rv := reflect.ValueOf(items)
	if !rv.IsValid() || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		return ErrNotSequence
	}
	if rv.Type().Elem().Kind() == reflect.Uint8 {
		return ErrNotSequence
	}

	values := make([]float64, rv.Len())
	for i := range values {
		v, ok := toFloat(rv.Index(i))
		if !ok {
			return fmt.Errorf("element %d: %w", i, ErrNotNumeric)
		}
		values[i] = v
	}

	a.AddData(values...)
	return nil
}

func toFloat(rv reflect.Value) (float64, bool) {
	for rv.Kind() == reflect.Interface || rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return 0, false
		}
		rv = rv.Elem()
	}

	var f float64
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		f = float64(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		f = float64(rv.Uint())
	case reflect.Float32, reflect.Float64:
		f = rv.Float()
	default:
		return 0, false
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// ClearData empties the dataset.
func (a *Analyzer) ClearData() {
	a.data = a.data[:0]
}
