// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package recode

import (
	"math"

	"github.com/aclements/go-moremath/vec"
)

// Sentinel is the code given to values that are missing or that do
// not appear in the Table. It is larger than any valid code.
const Sentinel = math.MaxUint16

// Encoded is a Series rewritten as Table codes.
type Encoded struct {
	// Codes holds one code per value, in the same order as the
	// Series. Missing values and values not in the Table have
	// code Sentinel.
	Codes []uint16

	// Missing is a copy of the Series mask. Unlike the Series,
	// it is never nil.
	Missing []bool

	Dims []int
}

// Encode rewrites s using the codes of t.
//
// t need not have been built from s. Values of s that t does not know
// about are encoded as Sentinel but are not marked missing, so a
// fixed Table can be used to encode held-out data.
func Encode(s *Series, t *Table) *Encoded {
	e := &Encoded{
		Codes:   make([]uint16, len(s.Values)),
		Missing: make([]bool, len(s.Values)),
		Dims:    append([]int(nil), s.Dims...),
	}
	for i, v := range s.Values {
		if s.IsMissing(i) {
			e.Missing[i] = true
			e.Codes[i] = Sentinel
			continue
		}
		if c, ok := t.Code(v); ok {
			e.Codes[i] = uint16(c)
		} else {
			e.Codes[i] = Sentinel
		}
	}
	return e
}

// Recode builds a Table from the non-missing values of s and encodes
// s with it.
func Recode(s *Series) (*Table, *Encoded, error) {
	t, err := Build(s)
	if err != nil {
		return nil, nil, err
	}
	return t, Encode(s, t), nil
}

// Float64s returns the codes as float64s.
func (e *Encoded) Float64s() []float64 {
	out := make([]float64, len(e.Codes))
	for i, c := range e.Codes {
		out[i] = float64(c)
	}
	return out
}

// Boundaries returns the K+1 bin edges 0, 1, ..., K of t's codes, so
// that bin i, [i, i+1), holds exactly code i.
//
// The last edge only closes the last bin. It must not be given a
// tick label; label the bins at Centers instead.
func Boundaries(t *Table) []float64 {
	k := t.Len()
	return vec.Linspace(0, float64(k), k+1)
}

// Centers returns the midpoints i+0.5 of the K bins of t.
func Centers(t *Table) []float64 {
	k := t.Len()
	return vec.Linspace(0.5, float64(k)-0.5, k)
}
