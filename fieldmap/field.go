// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fieldmap

import (
	"fmt"
	"math"
	"reflect"

	"github.com/aclements/go-gg/generic/slice"
)

// A Field is a flat or two-dimensional array of numbers with a
// missing-value mask.
type Field struct {
	// Values is the data in row-major order.
	Values []float64

	// Missing has one entry per value. Missing values are drawn
	// in the missing-value color.
	Missing []bool

	// Dims is {n} for a flat field or {rows, cols} for a raster.
	Dims []int
}

// NewField converts numeric data into a Field. data may be a slice of
// any numeric type or a slice of equal-length rows of numbers.
//
// If missing is nil, every NaN or infinite value is marked missing.
// Otherwise missing must have one entry per value and is used as is.
func NewField(data interface{}, missing []bool) (*Field, error) {
	dv := reflect.ValueOf(data)
	if dv.Kind() != reflect.Slice {
		return nil, fmt.Errorf("cannot use %T as field data: not a slice", data)
	}

	var f Field
	if dv.Type().Elem().Kind() == reflect.Slice {
		rows, cols := dv.Len(), 0
		for i := 0; i < rows; i++ {
			var row []float64
			if err := convert(&row, dv.Index(i).Interface()); err != nil {
				return nil, err
			}
			if i == 0 {
				cols = len(row)
			} else if len(row) != cols {
				return nil, fmt.Errorf("ragged raster: row %d has %d values, want %d", i, len(row), cols)
			}
			f.Values = append(f.Values, row...)
		}
		f.Dims = []int{rows, cols}
	} else {
		if err := convert(&f.Values, data); err != nil {
			return nil, err
		}
		f.Dims = []int{len(f.Values)}
	}

	if missing == nil {
		f.Missing = make([]bool, len(f.Values))
		for i, x := range f.Values {
			f.Missing[i] = math.IsNaN(x) || math.IsInf(x, 0)
		}
	} else {
		if len(missing) != len(f.Values) {
			return nil, fmt.Errorf("mask has %d entries for %d values", len(missing), len(f.Values))
		}
		f.Missing = append([]bool(nil), missing...)
	}
	return &f, nil
}

func convert(dst *[]float64, src interface{}) error {
	if xs, ok := src.([]float64); ok {
		*dst = append([]float64(nil), xs...)
		return nil
	}
	rt := reflect.TypeOf(src)
	switch rt.Elem().Kind() {
	case reflect.Float32, reflect.Float64,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		slice.Convert(dst, src)
		return nil
	}
	return fmt.Errorf("cannot use %v as field data: element type is not numeric", rt)
}

// Len returns the number of values in f.
func (f *Field) Len() int {
	return len(f.Values)
}

// Present returns the values of f that are neither missing nor
// non-finite.
func (f *Field) Present() []float64 {
	out := make([]float64, 0, len(f.Values))
	for i, x := range f.Values {
		if f.Missing[i] || math.IsNaN(x) || math.IsInf(x, 0) {
			continue
		}
		out = append(out, x)
	}
	return out
}
