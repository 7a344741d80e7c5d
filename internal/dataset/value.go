package dataset

import (
	"encoding/json"
	"math"
	"strconv"
)

// Value is an optional numeric result. The zero Value is absent.
type Value struct {
	v  float64
	ok bool
}

// Some returns a present Value holding v.
func Some(v float64) Value { return Value{v: v, ok: true} }

// None returns an absent Value.
func None() Value { return Value{} }

// Get returns the held number and whether it is present.
func (v Value) Get() (float64, bool) { return v.v, v.ok }

func (v Value) Valid() bool { return v.ok }

// Or returns the held number, or def when absent.
func (v Value) Or(def float64) float64 {
	if !v.ok {
		return def
	}
	return v.v
}

func (v Value) String() string {
	if !v.ok {
		return "null"
	}
	return strconv.FormatFloat(v.v, 'g', -1, 64)
}

// MarshalJSON encodes an absent Value as null. JSON has no literal for
// non-finite numbers, so those are encoded as strings.
func (v Value) MarshalJSON() ([]byte, error) {
	if !v.ok {
		return []byte("null"), nil
	}
	if math.IsNaN(v.v) || math.IsInf(v.v, 0) {
		return json.Marshal(strconv.FormatFloat(v.v, 'g', -1, 64))
	}
	return json.Marshal(v.v)
}

func (v Value) MarshalYAML() (interface{}, error) {
	if !v.ok {
		return nil, nil
	}
	return v.v, nil
}
