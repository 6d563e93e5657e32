// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/aclements/fieldmaps/colormap"
	"github.com/aclements/fieldmaps/fieldmap"
	"golang.org/x/image/draw"
)

// RasterImage paints raster descriptor d with one Style.Scale×Scale
// block of pixels per cell. Cells are not interpolated.
func (r *Renderer) RasterImage(d *fieldmap.Descriptor) (*image.RGBA, error) {
	if err := fieldmap.CheckRaster(d.Data.Dims); err != nil {
		return nil, err
	}
	rows, cols := gridDims(d.Data.Dims)
	src := image.NewRGBA(image.Rect(0, 0, cols, rows))
	for row := 0; row < rows; row++ {
		y := row
		if r.Style.Origin == "lower" {
			y = rows - 1 - row
		}
		for col := 0; col < cols; col++ {
			// Blend over white so translucent colors such as
			// the missing color look the same as on an SVG.
			src.Set(col, y, color.White)
			draw.Draw(src, image.Rect(col, y, col+1, y+1), image.NewUniform(d.Color(row*cols+col)), image.Point{}, draw.Over)
		}
	}

	scale := r.Style.Scale
	dst := image.NewRGBA(image.Rect(0, 0, cols*scale, rows*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)

	if r.Theme.Grid {
		grid := image.NewUniform(colormap.GridlineColor)
		for x := 0; x <= cols; x++ {
			px := min(x*scale, dst.Bounds().Dx()-1)
			draw.Draw(dst, image.Rect(px, 0, px+1, rows*scale), grid, image.Point{}, draw.Over)
		}
		for y := 0; y <= rows; y++ {
			py := min(y*scale, dst.Bounds().Dy()-1)
			draw.Draw(dst, image.Rect(0, py, cols*scale, py+1), grid, image.Point{}, draw.Over)
		}
	}
	return dst, nil
}

// WritePNG encodes img as a PNG.
func WritePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}
