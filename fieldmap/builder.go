// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fieldmap turns continuous or discrete field data into
// Descriptors: everything needed to color a map layer and draw its
// colorbar, independent of how the layer itself is drawn.
package fieldmap

import (
	"fmt"
	"image/color"
	"log"
	"os"

	"github.com/aclements/fieldmaps/colormap"
	"github.com/aclements/fieldmaps/recode"
)

// Warning is a logger for conditions that don't prevent building a
// Descriptor but may give a poor map.
var Warning = log.New(os.Stderr, "[fieldmap] ", log.Lshortfile)

// A Builder builds Descriptors using the palettes of a Registry.
type Builder struct {
	Registry *colormap.Registry

	// Missing is the color of missing values.
	Missing color.Color
}

// NewBuilder returns a Builder that resolves palette names in reg.
func NewBuilder(reg *colormap.Registry) *Builder {
	return &Builder{Registry: reg, Missing: colormap.MissingColor}
}

// FromContinuous describes continuous data f colored with palette pal.
//
// lower and upper clip the color scale. Either may be NaN, in which
// case that end of the scale follows the data. Each bound that is set
// extends the colorbar at that end. It is an error for lower to be
// above upper.
func (b *Builder) FromContinuous(f *Field, pal colormap.Ref, lower, upper float64) (*Descriptor, error) {
	if lower > upper {
		return nil, fmt.Errorf("lower bound %v is above upper bound %v", lower, upper)
	}
	p, err := b.Registry.Resolve(pal)
	if err != nil {
		return nil, err
	}
	norm := &LinearNorm{Lower: lower, Upper: upper}
	return &Descriptor{
		Data:    f,
		Norm:    norm,
		Palette: p,
		Missing: b.Missing,
		Extend:  norm.Extend(),
		lin:     norm.Resolve(f),
	}, nil
}

// FromDiscrete describes discrete data s colored with palette pal.
//
// Each distinct non-missing value of s becomes one category with its
// own color and colorbar label. Categories are ordered by value. If
// every value is missing, FromDiscrete returns recode.ErrEmptyData.
func (b *Builder) FromDiscrete(s *recode.Series, pal colormap.Ref) (*Descriptor, error) {
	p, err := b.Registry.Resolve(pal)
	if err != nil {
		return nil, err
	}
	tab, enc, err := recode.Recode(s)
	if err != nil {
		return nil, err
	}

	k := tab.Len()
	if p.Qualitative && k > p.Len() {
		Warning.Printf("%d categories but palette %s has %d colors; colors will repeat", k, paletteName(p, pal), p.Len())
	}
	dp := colormap.Palette{Name: p.Name, Colors: p.Stretch(k), Qualitative: true}

	bounds := recode.Boundaries(tab)
	return &Descriptor{
		Data: &Field{
			Values:  enc.Float64s(),
			Missing: enc.Missing,
			Dims:    enc.Dims,
		},
		Norm:    &BoundaryNorm{Boundaries: bounds},
		Palette: dp,
		Labels:  tab.Labels(),
		Ticks:   recode.Centers(tab),
		Missing: b.Missing,
		Extend:  ExtendNeither,
		Table:   tab,
		Codes:   enc,
	}, nil
}

func paletteName(p colormap.Palette, ref colormap.Ref) string {
	if p.Name != "" {
		return p.Name
	}
	return fmt.Sprintf("%q", ref.String())
}
