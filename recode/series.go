// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package recode

import (
	"fmt"
	"reflect"

	"github.com/aclements/go-gg/generic/slice"
)

// A Series is a flat or two-dimensional sequence of discrete values
// of a single Kind, with an optional missing-value mask.
type Series struct {
	// Values is the data in row-major order.
	Values []Value

	// Missing marks values to exclude from category discovery.
	// It is either nil, meaning nothing is missing, or has the
	// same length as Values.
	Missing []bool

	// Dims is the shape of the series: {n} for a flat series or
	// {rows, cols} for a grid.
	Dims []int
}

// A TypeError reports input that cannot be converted to a Series.
type TypeError struct {
	Type   reflect.Type
	Reason string
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("cannot use %v as series data: %s", e.Type, e.Reason)
}

// numericKinds are the element kinds that slice.Convert can turn into
// float64.
var numericKinds = map[reflect.Kind]bool{
	reflect.Float32: true,
	reflect.Float64: true,
	reflect.Int:     true,
	reflect.Int8:    true,
	reflect.Int16:   true,
	reflect.Int32:   true,
	reflect.Int64:   true,
	reflect.Uint:    true,
	reflect.Uintptr: true,
	reflect.Uint8:   true,
	reflect.Uint16:  true,
	reflect.Uint32:  true,
	reflect.Uint64:  true,
}

// NewSeries converts data into a Series. data may be a []Value, a
// []string, a slice of any numeric type, or a slice of equal-length
// rows of one of those types. missing, if non-nil, must have one
// entry per element of data (in row-major order for grids).
func NewSeries(data interface{}, missing []bool) (*Series, error) {
	dv := reflect.ValueOf(data)
	if dv.Kind() != reflect.Slice {
		return nil, &TypeError{reflect.TypeOf(data), "not a slice"}
	}

	var s Series
	if dv.Type().Elem().Kind() == reflect.Slice {
		rows := dv.Len()
		cols := 0
		for i := 0; i < rows; i++ {
			row := dv.Index(i).Interface()
			vals, err := flatValues(row)
			if err != nil {
				return nil, err
			}
			if i == 0 {
				cols = len(vals)
			} else if len(vals) != cols {
				return nil, fmt.Errorf("ragged grid: row %d has %d values, want %d", i, len(vals), cols)
			}
			s.Values = append(s.Values, vals...)
		}
		s.Dims = []int{rows, cols}
	} else {
		vals, err := flatValues(data)
		if err != nil {
			return nil, err
		}
		s.Values = vals
		s.Dims = []int{len(vals)}
	}

	if missing != nil {
		if len(missing) != len(s.Values) {
			return nil, fmt.Errorf("mask has %d entries for %d values", len(missing), len(s.Values))
		}
		s.Missing = append([]bool(nil), missing...)
	}

	for i := 1; i < len(s.Values); i++ {
		if s.Values[i].kind != s.Values[0].kind {
			return nil, &TypeError{reflect.TypeOf(data), "mixed numeric and string values"}
		}
	}
	return &s, nil
}

// flatValues converts a one-dimensional slice to Values.
func flatValues(data interface{}) ([]Value, error) {
	switch data := data.(type) {
	case []Value:
		return append([]Value(nil), data...), nil
	case []string:
		vals := make([]Value, len(data))
		for i, s := range data {
			vals[i] = Str(s)
		}
		return vals, nil
	}

	rt := reflect.TypeOf(data)
	if rt.Kind() != reflect.Slice {
		return nil, &TypeError{rt, "not a slice"}
	}
	if rt.Elem().Kind() == reflect.String {
		// Named string types.
		dv := reflect.ValueOf(data)
		vals := make([]Value, dv.Len())
		for i := range vals {
			vals[i] = Str(dv.Index(i).String())
		}
		return vals, nil
	}
	if !numericKinds[rt.Elem().Kind()] {
		return nil, &TypeError{rt, "element type is neither numeric nor string"}
	}
	var fs []float64
	slice.Convert(&fs, data)
	vals := make([]Value, len(fs))
	for i, x := range fs {
		vals[i] = Num(x)
	}
	return vals, nil
}

// Len returns the number of values in s.
func (s *Series) Len() int {
	return len(s.Values)
}

// IsMissing reports whether the i'th value is masked out.
func (s *Series) IsMissing(i int) bool {
	return s.Missing != nil && s.Missing[i]
}

// Present returns the values of s that are not missing.
func (s *Series) Present() []Value {
	if s.Missing == nil {
		return s.Values
	}
	out := make([]Value, 0, len(s.Values))
	for i, v := range s.Values {
		if !s.Missing[i] {
			out = append(out, v)
		}
	}
	return out
}
