// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package recode maps discrete and categorical data to dense integer
// codes suitable for driving a bounded color palette.
//
// A Table assigns the codes 0, 1, ..., K-1 to the K distinct values of
// a Series in ascending order. Encode rewrites a Series into those
// codes, and Boundaries and Centers give the bin edges and tick
// positions of a colorbar whose i'th bin is labeled with the value
// of code i.
package recode

import (
	"errors"
	"fmt"

	"golang.org/x/exp/slices"
)

// MaxCategories is the largest number of categories a Table can hold.
// It equals Sentinel, so every valid code is below Sentinel.
const MaxCategories = Sentinel

var (
	// ErrEmptyData is returned when a Table would have no
	// categories because every value is missing.
	ErrEmptyData = errors.New("no non-missing values to categorize")

	// ErrTooManyCategories is returned when a Series has more
	// than MaxCategories distinct values.
	ErrTooManyCategories = errors.New("too many distinct values")
)

// A Table is a bijection between the distinct values of a Series and
// the codes 0..K-1, assigned in ascending value order.
type Table struct {
	values []Value
	index  map[Value]int
}

// Build returns the Table of the non-missing values in s.
func Build(s *Series) (*Table, error) {
	present := s.Present()
	if len(present) == 0 {
		return nil, ErrEmptyData
	}

	index := make(map[Value]int)
	var values []Value
	for _, v := range present {
		if _, ok := index[v]; !ok {
			index[v] = 0
			values = append(values, v)
		}
	}
	if len(values) > MaxCategories {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyCategories, len(values), MaxCategories)
	}
	slices.SortFunc(values, Compare)
	for i, v := range values {
		index[v] = i
	}
	return &Table{values, index}, nil
}

// Len returns the number of categories K.
func (t *Table) Len() int {
	return len(t.values)
}

// Code returns the code of v and whether v is in t.
func (t *Table) Code(v Value) (int, bool) {
	c, ok := t.index[v]
	return c, ok
}

// Value returns the value assigned to code c. It panics if c is not
// in [0, Len()).
func (t *Table) Value(c int) Value {
	return t.values[c]
}

// Values returns the distinct values in code order.
func (t *Table) Values() []Value {
	return append([]Value(nil), t.values...)
}

// Labels returns the formatted values in code order.
func (t *Table) Labels() []string {
	labels := make([]string, len(t.values))
	for i, v := range t.values {
		labels[i] = v.String()
	}
	return labels
}
