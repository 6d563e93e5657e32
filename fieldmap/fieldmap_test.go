// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fieldmap

import (
	"bytes"
	"errors"
	"image/color"
	"math"
	"strings"
	"testing"

	"github.com/aclements/fieldmaps/colormap"
	"github.com/aclements/fieldmaps/recode"
	"github.com/google/go-cmp/cmp"
)

var nan = math.NaN()

var (
	red   = color.NRGBA{0xff, 0, 0, 0xff}
	green = color.NRGBA{0, 0xff, 0, 0xff}
	blue  = color.NRGBA{0, 0, 0xff, 0xff}
)

func newBuilder() *Builder {
	return NewBuilder(colormap.NewDefaultRegistry())
}

func TestNewFieldAutoMask(t *testing.T) {
	f, err := NewField([]float64{nan, math.Inf(1), 3, 4, math.Inf(-1)}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]bool{true, true, false, false, true}, f.Missing); diff != "" {
		t.Errorf("mask (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]float64{3, 4}, f.Present()); diff != "" {
		t.Errorf("present (-want +got):\n%s", diff)
	}
}

func TestNewFieldExplicitMask(t *testing.T) {
	mask := []bool{false, true, false}
	f, err := NewField([]int{1, 2, 3}, mask)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(mask, f.Missing); diff != "" {
		t.Errorf("mask (-want +got):\n%s", diff)
	}
	if _, err := NewField([]int{1, 2, 3}, []bool{true}); err == nil {
		t.Errorf("short mask accepted")
	}
}

func TestNewFieldRaster(t *testing.T) {
	f, err := NewField([][]float64{{1, 2}, {3, nan}, {5, 6}}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]int{3, 2}, f.Dims); diff != "" {
		t.Errorf("dims (-want +got):\n%s", diff)
	}
	if !f.Missing[3] {
		t.Errorf("NaN in raster not masked")
	}
	for _, bad := range []interface{}{
		[][]float64{{1, 2}, {3}},
		[]string{"a"},
		7,
	} {
		if _, err := NewField(bad, nil); err == nil {
			t.Errorf("NewField(%v) succeeded", bad)
		}
	}
}

func TestContinuousExtend(t *testing.T) {
	f, err := NewField([]float64{nan, math.Inf(1), 3, 4}, nil)
	if err != nil {
		t.Fatal(err)
	}
	b := newBuilder()
	for _, test := range []struct {
		lower, upper float64
		want         Extend
		str          string
	}{
		{0, 1, ExtendBoth, "both"},
		{0, nan, ExtendMin, "min"},
		{nan, 1, ExtendMax, "max"},
		{nan, nan, ExtendNeither, "neither"},
	} {
		d, err := b.FromContinuous(f, colormap.ByName(colormap.ContinuousPalette), test.lower, test.upper)
		if err != nil {
			t.Fatal(err)
		}
		if d.Extend != test.want || d.Extend.String() != test.str {
			t.Errorf("lower=%v upper=%v: extend %v, want %v", test.lower, test.upper, d.Extend, test.want)
		}
		if d.Labels != nil || d.Discrete() {
			t.Errorf("continuous descriptor has labels %v", d.Labels)
		}
		if diff := cmp.Diff([]bool{true, true, false, false}, d.Data.Missing); diff != "" {
			t.Errorf("mask (-want +got):\n%s", diff)
		}
	}
}

func TestContinuousRange(t *testing.T) {
	f, _ := NewField([]float64{nan, 2, 8, 5}, nil)
	b := newBuilder()
	for _, test := range []struct {
		lower, upper float64
		lo, hi       float64
	}{
		{nan, nan, 2, 8},
		{0, nan, 0, 8},
		{nan, 4, 2, 4},
		{1, 10, 1, 10},
		// A set bound beyond the data collapses the scale to it.
		{10, nan, 10, 10},
		{nan, 1, 1, 1},
	} {
		d, err := b.FromContinuous(f, colormap.ByName("viridis"), test.lower, test.upper)
		if err != nil {
			t.Fatal(err)
		}
		if lo, hi := d.Range(); lo != test.lo || hi != test.hi {
			t.Errorf("lower=%v upper=%v: range [%v, %v], want [%v, %v]", test.lower, test.upper, lo, hi, test.lo, test.hi)
		}
	}

	if _, err := b.FromContinuous(f, colormap.ByName("viridis"), 5, 1); err == nil {
		t.Errorf("lower=5 upper=1 succeeded")
	}

	empty, _ := NewField([]float64{nan}, nil)
	d, err := b.FromContinuous(empty, colormap.ByName("viridis"), nan, nan)
	if err != nil {
		t.Fatal(err)
	}
	if lo, hi := d.Range(); lo != -1 || hi != 1 {
		t.Errorf("empty field range [%v, %v], want [-1, 1]", lo, hi)
	}
}

func TestContinuousColors(t *testing.T) {
	f, _ := NewField([]float64{-5, 0, 10, 20, nan}, nil)
	d, err := newBuilder().FromContinuous(f, colormap.Literal(red, blue), 0, 10)
	if err != nil {
		t.Fatal(err)
	}
	first := color.RGBAModel.Convert(red)
	last := color.RGBAModel.Convert(blue)
	want := []color.Color{first, first, last, last, colormap.MissingColor}
	if diff := cmp.Diff(want, d.Colors()); diff != "" {
		t.Errorf("colors (-want +got):\n%s", diff)
	}
}

func TestDiscrete(t *testing.T) {
	s, _ := recode.NewSeries([]string{"a", "a", "b", "b", "c", "c"}, nil)
	d, err := newBuilder().FromDiscrete(s, colormap.Literal(red, green, blue))
	if err != nil {
		t.Fatal(err)
	}
	if !d.Discrete() || d.Extend != ExtendNeither {
		t.Errorf("discrete=%v extend=%v", d.Discrete(), d.Extend)
	}
	if diff := cmp.Diff([]string{"a", "b", "c"}, d.Labels); diff != "" {
		t.Errorf("labels (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]float64{0.5, 1.5, 2.5}, d.Ticks); diff != "" {
		t.Errorf("ticks (-want +got):\n%s", diff)
	}
	bn := d.Norm.(*BoundaryNorm)
	if diff := cmp.Diff([]float64{0, 1, 2, 3}, bn.Boundaries); diff != "" {
		t.Errorf("boundaries (-want +got):\n%s", diff)
	}
	if len(d.Labels) != len(bn.Boundaries)-1 {
		t.Errorf("%d labels for %d boundaries", len(d.Labels), len(bn.Boundaries))
	}
	if diff := cmp.Diff([]float64{0, 0, 1, 1, 2, 2}, d.Data.Values); diff != "" {
		t.Errorf("data (-want +got):\n%s", diff)
	}
	want := []color.Color{red, red, green, green, blue, blue}
	if diff := cmp.Diff(want, d.Colors()); diff != "" {
		t.Errorf("colors (-want +got):\n%s", diff)
	}

	l := d.Legend(10)
	if !l.Discrete || l.Extend != ExtendNeither {
		t.Errorf("legend discrete=%v extend=%v", l.Discrete, l.Extend)
	}
	for _, tick := range l.Ticks {
		if tick == l.Boundaries[len(l.Boundaries)-1] {
			t.Errorf("legend has a tick at the trailing boundary %v", tick)
		}
	}
	if diff := cmp.Diff(d.Labels, l.Labels); diff != "" {
		t.Errorf("legend labels (-want +got):\n%s", diff)
	}
}

func TestDiscreteMasked(t *testing.T) {
	s, _ := recode.NewSeries([]int{-1, -1, 3, 3, 99, 99}, []bool{true, true, false, false, false, false})
	d, err := newBuilder().FromDiscrete(s, colormap.Literal(red, green, blue))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"3", "99"}, d.Labels); diff != "" {
		t.Errorf("labels (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]uint16{recode.Sentinel, recode.Sentinel, 0, 0, 1, 1}, d.Codes.Codes); diff != "" {
		t.Errorf("codes (-want +got):\n%s", diff)
	}
	want := []color.Color{colormap.MissingColor, colormap.MissingColor, red, red, green, green}
	if diff := cmp.Diff(want, d.Colors()); diff != "" {
		t.Errorf("colors (-want +got):\n%s", diff)
	}
	if d.Palette.Len() != 2 {
		t.Errorf("palette has %d colors, want 2", d.Palette.Len())
	}
}

func TestDiscreteEmpty(t *testing.T) {
	s, _ := recode.NewSeries([]string{"a", "b"}, []bool{true, true})
	_, err := newBuilder().FromDiscrete(s, colormap.ByName(colormap.DiscretePalette))
	if !errors.Is(err, recode.ErrEmptyData) {
		t.Errorf("error = %v, want ErrEmptyData", err)
	}
}

func TestDiscreteManyCategories(t *testing.T) {
	var buf bytes.Buffer
	out := Warning.Writer()
	Warning.SetOutput(&buf)
	defer Warning.SetOutput(out)

	data := make([]int, 25)
	for i := range data {
		data[i] = i
	}
	s, _ := recode.NewSeries(data, nil)
	d, err := newBuilder().FromDiscrete(s, colormap.ByName(colormap.DiscretePalette))
	if err != nil {
		t.Fatal(err)
	}
	if d.Palette.Len() != 25 {
		t.Errorf("palette has %d colors, want 25", d.Palette.Len())
	}
	if d.Palette.Colors[20] != d.Palette.Colors[0] {
		t.Errorf("palette does not cycle")
	}
	if !strings.Contains(buf.String(), "colors will repeat") {
		t.Errorf("no warning logged; got %q", buf.String())
	}
}

func TestUnknownPalette(t *testing.T) {
	f, _ := NewField([]float64{1}, nil)
	_, err := newBuilder().FromContinuous(f, colormap.ByName("no such palette"), nan, nan)
	var upe *colormap.UnknownPaletteError
	if !errors.As(err, &upe) {
		t.Errorf("error = %v, want UnknownPaletteError", err)
	}
}

func TestContinuousLegend(t *testing.T) {
	f, _ := NewField([]float64{0, 3, 10}, nil)
	d, err := newBuilder().FromContinuous(f, colormap.ByName("viridis"), nan, 10)
	if err != nil {
		t.Fatal(err)
	}
	l := d.Legend(6)
	if l.Discrete || l.Extend != ExtendMax {
		t.Errorf("legend discrete=%v extend=%v", l.Discrete, l.Extend)
	}
	if len(l.Ticks) == 0 || len(l.Ticks) > 6 || len(l.Ticks) != len(l.Labels) {
		t.Fatalf("ticks %v labels %v", l.Ticks, l.Labels)
	}
	for _, x := range l.Ticks {
		if x < 0 || x > 10 {
			t.Errorf("tick %v outside [0, 10]", x)
		}
	}
}

func TestBoundaryNormBin(t *testing.T) {
	n := &BoundaryNorm{Boundaries: []float64{0, 1, 2, 3}}
	for _, test := range []struct {
		x    float64
		want int
	}{
		{-0.5, -1},
		{0, 0},
		{0.99, 0},
		{1, 1},
		{2.5, 2},
		{3, -1},
		{recode.Sentinel, -1},
		{nan, -1},
	} {
		if got := n.Bin(test.x); got != test.want {
			t.Errorf("Bin(%v) = %d, want %d", test.x, got, test.want)
		}
	}
}

func TestShapeChecks(t *testing.T) {
	var ise *InvalidShapeError
	for _, test := range []struct {
		name string
		err  error
		ok   bool
	}{
		{"points", CheckPoints([][]float64{{0, 0}, {1, 1}}, 2), true},
		{"points 3 cols", CheckPoints([][]float64{{0, 0, 0}, {1, 1, 1}}, 2), false},
		{"points count", CheckPoints([][]float64{{0, 0}}, 2), false},
		{"polygons", CheckPolygons([][][]float64{{{0, 0}, {1, 0}, {1, 1}}}, 1), true},
		{"polygons empty", CheckPolygons([][][]float64{{}}, 1), false},
		{"polygons 3d", CheckPolygons([][][]float64{{{0, 0, 0}}}, 1), false},
		{"polygons count", CheckPolygons([][][]float64{{{0, 0}}}, 2), false},
		{"raster 2d", CheckRaster([]int{3, 2}), true},
		{"raster 1d", CheckRaster([]int{6}), true},
		{"raster 3d", CheckRaster([]int{2, 2, 2}), false},
	} {
		if test.ok {
			if test.err != nil {
				t.Errorf("%s: unexpected error %v", test.name, test.err)
			}
		} else if !errors.As(test.err, &ise) {
			t.Errorf("%s: error = %v, want InvalidShapeError", test.name, test.err)
		}
	}
}
