// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package recode

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// A Kind is the type tag of a Value.
type Kind uint8

const (
	Numeric Kind = iota
	String
)

func (k Kind) String() string {
	switch k {
	case Numeric:
		return "numeric"
	case String:
		return "string"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// A Value is a single discrete datum: either a number or a string.
//
// Values are comparable, so they can be used as map keys. Numeric
// values that compare equal as float64 are the same Value, and all
// NaNs are the same Value.
type Value struct {
	kind Kind
	nan  bool
	num  float64
	str  string
}

// Num returns a numeric Value.
func Num(x float64) Value {
	if math.IsNaN(x) {
		return Value{kind: Numeric, nan: true}
	}
	if x == 0 {
		// Fold -0 into +0 so both map to the same category.
		x = 0
	}
	return Value{kind: Numeric, num: x}
}

// Str returns a string Value.
func Str(s string) Value {
	return Value{kind: String, str: s}
}

func (v Value) Kind() Kind { return v.kind }

// Float returns the numeric value of v. It is 0 for string Values.
func (v Value) Float() float64 {
	if v.nan {
		return math.NaN()
	}
	return v.num
}

// Str returns the string value of v. It is "" for numeric Values.
func (v Value) Str() string { return v.str }

// String formats v as a legend label. Integral numbers are printed
// without a fractional part.
func (v Value) String() string {
	if v.kind == String {
		return v.str
	}
	if v.nan {
		return "NaN"
	}
	return strconv.FormatFloat(v.num, 'g', -1, 64)
}

// Compare returns -1, 0, or +1 depending on whether a sorts before,
// equal to, or after b. Numeric values are ordered numerically and
// strings lexicographically by byte. NaN sorts after every other
// number. If the kinds differ, numeric values sort first.
func Compare(a, b Value) int {
	if a.kind != b.kind {
		if a.kind < b.kind {
			return -1
		}
		return 1
	}
	if a.kind == String {
		return strings.Compare(a.str, b.str)
	}
	if a.nan || b.nan {
		switch {
		case !a.nan:
			return -1
		case !b.nan:
			return 1
		}
		return 0
	}
	switch {
	case a.num < b.num:
		return -1
	case a.num > b.num:
		return 1
	}
	return 0
}
