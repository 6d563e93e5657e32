// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render draws field maps described by fieldmap.Descriptors.
//
// Points, polygons, and rasters are drawn as go-gg plots. Every value
// is drawn, including missing ones, which get the descriptor's
// missing-value color. Colorbars are drawn separately by
// WriteLegendSVG, and rasters can also be written as PNG images.
package render

import (
	"image/color"
	"io"

	"github.com/aclements/fieldmaps/colormap"
	"github.com/aclements/fieldmaps/fieldmap"
	"github.com/aclements/fieldmaps/recode"
	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/table"
)

// legendTicks is the maximum number of ticks on a continuous
// colorbar.
const legendTicks = 6

// A Map is a drawn map layer.
type Map struct {
	Plot       *gg.Plot
	Descriptor *fieldmap.Descriptor

	// Width and Height are the SVG size in pixels.
	Width, Height int
}

// WriteSVG writes m as an SVG image.
func (m *Map) WriteSVG(w io.Writer) error {
	return m.Plot.WriteSVG(w, m.Width, m.Height)
}

// Legend returns the colorbar of m.
func (m *Map) Legend() *fieldmap.Legend {
	return m.Descriptor.Legend(legendTicks)
}

// A Renderer draws maps with a fixed Builder, Style, and Theme.
type Renderer struct {
	Builder *fieldmap.Builder
	Style   Style
	Theme   Theme
}

// NewRenderer returns a Renderer with the default style that resolves
// palettes in reg.
func NewRenderer(reg *colormap.Registry) *Renderer {
	return &Renderer{
		Builder: fieldmap.NewBuilder(reg),
		Style:   DefaultStyle(),
	}
}

// PointsContinuous draws continuous data at coords, an n×2 array of
// x and y coordinates. See fieldmap.Builder.FromContinuous for pal,
// lower, and upper.
func (r *Renderer) PointsContinuous(f *fieldmap.Field, coords [][]float64, pal colormap.Ref, lower, upper float64) (*Map, error) {
	if err := fieldmap.CheckPoints(coords, f.Len()); err != nil {
		return nil, err
	}
	d, err := r.Builder.FromContinuous(f, pal, lower, upper)
	if err != nil {
		return nil, err
	}
	return r.Points(d, coords), nil
}

// PointsDiscrete draws discrete data at coords.
func (r *Renderer) PointsDiscrete(s *recode.Series, coords [][]float64, pal colormap.Ref) (*Map, error) {
	if err := fieldmap.CheckPoints(coords, s.Len()); err != nil {
		return nil, err
	}
	d, err := r.Builder.FromDiscrete(s, pal)
	if err != nil {
		return nil, err
	}
	return r.Points(d, coords), nil
}

// PolygonsContinuous draws continuous data as filled polygons. verts
// holds one ring of (x, y) vertices per value.
func (r *Renderer) PolygonsContinuous(f *fieldmap.Field, verts [][][]float64, pal colormap.Ref, lower, upper float64) (*Map, error) {
	if err := fieldmap.CheckPolygons(verts, f.Len()); err != nil {
		return nil, err
	}
	d, err := r.Builder.FromContinuous(f, pal, lower, upper)
	if err != nil {
		return nil, err
	}
	return r.Polygons(d, verts), nil
}

// PolygonsDiscrete draws discrete data as filled polygons.
func (r *Renderer) PolygonsDiscrete(s *recode.Series, verts [][][]float64, pal colormap.Ref) (*Map, error) {
	if err := fieldmap.CheckPolygons(verts, s.Len()); err != nil {
		return nil, err
	}
	d, err := r.Builder.FromDiscrete(s, pal)
	if err != nil {
		return nil, err
	}
	return r.Polygons(d, verts), nil
}

// RasterContinuous draws a continuous raster.
func (r *Renderer) RasterContinuous(f *fieldmap.Field, pal colormap.Ref, lower, upper float64) (*Map, error) {
	if err := fieldmap.CheckRaster(f.Dims); err != nil {
		return nil, err
	}
	d, err := r.Builder.FromContinuous(f, pal, lower, upper)
	if err != nil {
		return nil, err
	}
	return r.Raster(d), nil
}

// RasterDiscrete draws a discrete raster.
func (r *Renderer) RasterDiscrete(s *recode.Series, pal colormap.Ref) (*Map, error) {
	if err := fieldmap.CheckRaster(s.Dims); err != nil {
		return nil, err
	}
	d, err := r.Builder.FromDiscrete(s, pal)
	if err != nil {
		return nil, err
	}
	return r.Raster(d), nil
}

// Points draws d at coords, which must already have passed
// fieldmap.CheckPoints.
func (r *Renderer) Points(d *fieldmap.Descriptor, coords [][]float64) *Map {
	xs := make([]float64, len(coords))
	ys := make([]float64, len(coords))
	for i, xy := range coords {
		xs[i], ys[i] = xy[0], xy[1]
	}
	tab := new(table.Builder).
		Add("x", xs).
		Add("y", ys).
		Add("color", columnColors(d)).
		Done()

	p := gg.NewPlot(tab)
	r.Theme.Apply(p)
	size := p.Const(pointSize(r.Style.PointSize))
	p.Add(gg.LayerPoints{X: "x", Y: "y", Color: "color", Size: size})
	return r.newMap(p, d, xs, ys)
}

// pointSize converts a radius fraction to the unscaled value that
// go-gg's default size range, [0.01, 0.1], maps back to that radius.
func pointSize(frac float64) gg.Unscaled {
	const lo, hi = 0.01, 0.1
	return gg.Unscaled((frac - lo) / (hi - lo))
}

// Polygons draws d as one polygon per value. verts must already have
// passed fieldmap.CheckPolygons.
func (r *Renderer) Polygons(d *fieldmap.Descriptor, verts [][][]float64) *Map {
	var ids []int
	var xs, ys []float64
	var fills []color.Color
	for i, ring := range verts {
		c := color.NRGBAModel.Convert(d.Color(i))
		for _, xy := range ring {
			ids = append(ids, i)
			xs = append(xs, xy[0])
			ys = append(ys, xy[1])
			fills = append(fills, c)
		}
		// Close the ring.
		first, last := ring[0], ring[len(ring)-1]
		if first[0] != last[0] || first[1] != last[1] {
			ids = append(ids, i)
			xs = append(xs, first[0])
			ys = append(ys, first[1])
			fills = append(fills, c)
		}
	}
	tab := new(table.Builder).
		Add("polygon", ids).
		Add("x", xs).
		Add("y", ys).
		Add("fill", fills).
		Done()

	p := gg.NewPlot(tab)
	r.Theme.Apply(p)
	p.GroupBy("polygon")
	p.Add(gg.LayerPaths{X: "x", Y: "y", Fill: "fill"})
	return r.newMap(p, d, xs, ys)
}

// Raster draws d as a grid of tiles. d.Data.Dims must already have
// passed fieldmap.CheckRaster.
func (r *Renderer) Raster(d *fieldmap.Descriptor) *Map {
	rows, cols := gridDims(d.Data.Dims)
	xs := make([]float64, 0, rows*cols)
	ys := make([]float64, 0, rows*cols)
	for row := 0; row < rows; row++ {
		y := float64(row)
		if r.Style.Origin != "lower" {
			y = float64(rows - 1 - row)
		}
		for col := 0; col < cols; col++ {
			xs = append(xs, float64(col))
			ys = append(ys, y)
		}
	}
	tab := new(table.Builder).
		Add("x", xs).
		Add("y", ys).
		Add("fill", columnColors(d)).
		Done()

	p := gg.NewPlot(tab)
	r.Theme.Apply(p)
	p.Add(gg.LayerTiles{X: "x", Y: "y", Fill: "fill"})
	return r.newMap(p, d, xs, ys)
}

// columnColors returns the colors of d as color.NRGBA values. go-gg
// requires every element of a column to have the same concrete type,
// and the missing color differs in type from palette colors.
func columnColors(d *fieldmap.Descriptor) []color.Color {
	cs := d.Colors()
	for i, c := range cs {
		cs[i] = color.NRGBAModel.Convert(c)
	}
	return cs
}

func (r *Renderer) newMap(p *gg.Plot, d *fieldmap.Descriptor, xs, ys []float64) *Map {
	w, h := r.Style.Size(xs, ys)
	return &Map{Plot: p, Descriptor: d, Width: w, Height: h}
}

// gridDims returns the rows and columns of a raster. A flat raster is
// a single row.
func gridDims(dims []int) (rows, cols int) {
	if len(dims) == 1 {
		return 1, dims[0]
	}
	return dims[0], dims[1]
}
