// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fieldmap

import (
	"fmt"
	"math"
	"sort"

	"github.com/aclements/go-moremath/scale"
	"github.com/aclements/go-moremath/stats"
)

// Extend says which ends of a colorbar get a marker showing that data
// lies beyond the colored range.
type Extend int

const (
	ExtendNeither Extend = iota
	ExtendMin
	ExtendMax
	ExtendBoth
)

func (e Extend) String() string {
	switch e {
	case ExtendNeither:
		return "neither"
	case ExtendMin:
		return "min"
	case ExtendMax:
		return "max"
	case ExtendBoth:
		return "both"
	}
	return fmt.Sprintf("Extend(%d)", int(e))
}

// Low reports whether the low end is extended.
func (e Extend) Low() bool { return e == ExtendMin || e == ExtendBoth }

// High reports whether the high end is extended.
func (e Extend) High() bool { return e == ExtendMax || e == ExtendBoth }

// A Norm maps data values onto a color scale. It is either a
// *LinearNorm or a *BoundaryNorm.
type Norm interface {
	// Extend returns the colorbar extension implied by the norm.
	Extend() Extend
}

// LinearNorm maps [Lower, Upper] linearly onto a continuous palette.
// A NaN bound is open and is taken from the data when drawing.
type LinearNorm struct {
	Lower, Upper float64
}

// Extend returns ExtendBoth, ExtendMin, or ExtendMax depending on
// which bounds are set, or ExtendNeither if both are open.
func (n *LinearNorm) Extend() Extend {
	lo, hi := !math.IsNaN(n.Lower), !math.IsNaN(n.Upper)
	switch {
	case lo && hi:
		return ExtendBoth
	case lo:
		return ExtendMin
	case hi:
		return ExtendMax
	}
	return ExtendNeither
}

// Resolve fills the open bounds of n from the present values of f and
// returns the resulting linear scale. If f has no usable values and a
// bound is still open, the scale is [-1, 1]. If the one set bound
// lies beyond all of the data, the scale collapses to that bound.
//
// Resolve assumes Lower <= Upper when both are set.
func (n *LinearNorm) Resolve(f *Field) scale.Linear {
	ls := scale.Linear{Min: n.Lower, Max: n.Upper}
	if math.IsNaN(ls.Min) || math.IsNaN(ls.Max) {
		min, max := stats.Bounds(f.Present())
		if math.IsNaN(ls.Min) {
			ls.Min = min
		}
		if math.IsNaN(ls.Max) {
			ls.Max = max
		}
	}
	if math.IsNaN(ls.Min) || math.IsNaN(ls.Max) {
		return scale.Linear{Min: -1, Max: 1}
	}
	if ls.Min > ls.Max {
		if math.IsNaN(n.Upper) {
			ls.Max = ls.Min
		} else {
			ls.Min = ls.Max
		}
	}
	return ls
}

// BoundaryNorm assigns values to the bins delimited by ascending
// Boundaries. Bin i is [Boundaries[i], Boundaries[i+1]).
type BoundaryNorm struct {
	Boundaries []float64
}

// Extend always returns ExtendNeither.
func (n *BoundaryNorm) Extend() Extend {
	return ExtendNeither
}

// Len returns the number of bins.
func (n *BoundaryNorm) Len() int {
	if len(n.Boundaries) == 0 {
		return 0
	}
	return len(n.Boundaries) - 1
}

// Bin returns the bin containing x, or -1 if x is outside every bin.
func (n *BoundaryNorm) Bin(x float64) int {
	if n.Len() == 0 || math.IsNaN(x) || x < n.Boundaries[0] || x >= n.Boundaries[len(n.Boundaries)-1] {
		return -1
	}
	b := n.Boundaries
	return sort.Search(len(b), func(i int) bool { return b[i] > x }) - 1
}
