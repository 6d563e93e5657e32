// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fieldmap

import (
	"fmt"
	"image/color"
	"math"

	"github.com/aclements/fieldmaps/colormap"
	"github.com/aclements/fieldmaps/recode"
	"github.com/aclements/go-moremath/scale"
)

// A Descriptor says how to color one map layer. It is independent of
// whether the layer is drawn as points, polygons, or a raster.
type Descriptor struct {
	// Data is the numeric data to color by. For discrete data it
	// holds the category codes, with recode.Sentinel for values
	// that have no category.
	Data *Field

	// Norm is a *LinearNorm for continuous data or a
	// *BoundaryNorm for discrete data.
	Norm Norm

	// Palette supplies the colors. For discrete data it has
	// exactly one color per category.
	Palette colormap.Palette

	// Labels names each category in code order. It is nil for
	// continuous data.
	Labels []string

	// Ticks holds the colorbar position of each label: the center
	// of its bin.
	Ticks []float64

	// Missing is the color of missing values.
	Missing color.Color

	// Extend is the colorbar extension.
	Extend Extend

	// Table is the category table of discrete data.
	Table *recode.Table

	// Codes is the encoded discrete data.
	Codes *recode.Encoded

	lin scale.Linear
}

// Discrete reports whether d describes discrete data.
func (d *Descriptor) Discrete() bool {
	_, ok := d.Norm.(*BoundaryNorm)
	return ok
}

// Range returns the data range covered by the colors: the resolved
// bounds of a continuous descriptor or the outer boundaries of a
// discrete one.
func (d *Descriptor) Range() (lo, hi float64) {
	if bn, ok := d.Norm.(*BoundaryNorm); ok {
		return bn.Boundaries[0], bn.Boundaries[len(bn.Boundaries)-1]
	}
	return d.lin.Min, d.lin.Max
}

// Color returns the color of the i'th value of d.Data.
func (d *Descriptor) Color(i int) color.Color {
	if d.Data.Missing[i] {
		return d.Missing
	}
	x := d.Data.Values[i]
	switch n := d.Norm.(type) {
	case *BoundaryNorm:
		bin := n.Bin(x)
		if bin < 0 || bin >= len(d.Palette.Colors) {
			return d.Missing
		}
		return d.Palette.Colors[bin]
	case *LinearNorm:
		if math.IsNaN(x) {
			return d.Missing
		}
		return d.Palette.Map(d.lin.Map(x))
	}
	panic(fmt.Sprintf("unknown norm type %T", d.Norm))
}

// Colors returns the color of every value of d.Data.
func (d *Descriptor) Colors() []color.Color {
	out := make([]color.Color, d.Data.Len())
	for i := range out {
		out[i] = d.Color(i)
	}
	return out
}

// A Legend describes the colorbar of a Descriptor.
type Legend struct {
	Discrete bool
	Extend   Extend

	// Lower and Upper are the ends of the colorbar.
	Lower, Upper float64

	// Boundaries are the bin edges of a discrete colorbar, and
	// Colors holds the color of each bin.
	Boundaries []float64
	Colors     []color.Color

	// Palette is the gradient of a continuous colorbar.
	Palette colormap.Palette

	// Ticks and Labels are parallel. Discrete ticks are at bin
	// centers, so the last boundary never gets a label.
	Ticks  []float64
	Labels []string
}

// Legend returns the colorbar of d. maxTicks bounds the number of
// ticks on a continuous colorbar.
func (d *Descriptor) Legend(maxTicks int) *Legend {
	l := &Legend{Extend: d.Extend, Palette: d.Palette}
	l.Lower, l.Upper = d.Range()
	if bn, ok := d.Norm.(*BoundaryNorm); ok {
		l.Discrete = true
		l.Boundaries = append([]float64(nil), bn.Boundaries...)
		l.Colors = append([]color.Color(nil), d.Palette.Colors...)
		l.Ticks = append([]float64(nil), d.Ticks...)
		l.Labels = append([]string(nil), d.Labels...)
		return l
	}
	major, _ := d.lin.Ticks(scale.TickOptions{Max: maxTicks})
	for _, x := range major {
		if x < l.Lower || x > l.Upper {
			continue
		}
		l.Ticks = append(l.Ticks, x)
		l.Labels = append(l.Labels, fmt.Sprintf("%.6g", x))
	}
	return l
}
