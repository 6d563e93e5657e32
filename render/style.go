// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-moremath/stats"
)

// Style holds the drawing options passed through to the plotting
// layer.
type Style struct {
	// Width and Height bound the size of the map in pixels. The
	// map is shrunk along one axis to keep x and y equally
	// scaled.
	Width, Height int

	// PointSize is the radius of a point as a fraction of the
	// smaller plot dimension.
	PointSize float64

	// Origin places raster row 0 at the "upper" or "lower" edge.
	Origin string

	// Scale is the number of pixels per raster cell in PNG output.
	Scale int
}

// DefaultStyle returns the package's default drawing options.
func DefaultStyle() Style {
	return Style{
		Width:     800,
		Height:    800,
		PointSize: 0.01,
		Origin:    "upper",
		Scale:     8,
	}
}

// ParseStyle applies a list of key=value settings to the default
// style.
func ParseStyle(settings []string) (Style, error) {
	s := DefaultStyle()
	for _, kv := range settings {
		k, v, ok := strings.Cut(kv, "=")
		if !ok {
			return s, fmt.Errorf("style setting %q is not key=value", kv)
		}
		var err error
		switch k {
		case "width":
			s.Width, err = strconv.Atoi(v)
		case "height":
			s.Height, err = strconv.Atoi(v)
		case "size":
			s.PointSize, err = strconv.ParseFloat(v, 64)
		case "scale":
			s.Scale, err = strconv.Atoi(v)
		case "origin":
			if v != "upper" && v != "lower" {
				err = fmt.Errorf("want upper or lower")
			}
			s.Origin = v
		default:
			return s, fmt.Errorf("unknown style setting %q", k)
		}
		if err != nil {
			return s, fmt.Errorf("style setting %s: %v", kv, err)
		}
	}
	if s.Width <= 0 || s.Height <= 0 || s.Scale <= 0 {
		return s, fmt.Errorf("style sizes must be positive")
	}
	return s, nil
}

// Size fits the bounding box of xs and ys into s.Width×s.Height while
// keeping the two axes equally scaled.
func (s Style) Size(xs, ys []float64) (w, h int) {
	xmin, xmax := stats.Bounds(xs)
	ymin, ymax := stats.Bounds(ys)
	dx, dy := xmax-xmin, ymax-ymin
	if !(dx > 0) || !(dy > 0) {
		return s.Width, s.Height
	}
	if dx/dy > float64(s.Width)/float64(s.Height) {
		return s.Width, max(1, int(float64(s.Width)*dy/dx))
	}
	return max(1, int(float64(s.Height)*dx/dy)), s.Height
}

// Theme is the package's look for map axes.
type Theme struct {
	// Grid draws grid lines on raster images. go-gg always
	// draws grid lines on SVG plots.
	Grid bool
}

// Apply labels p's axes "Easting" and "Northing" and removes the tick
// labels, which carry no information on a map.
func (t Theme) Apply(p *gg.Plot) {
	p.Add(gg.AxisLabel("x", "Easting"), gg.AxisLabel("y", "Northing"))
	noLabel := func(float64) string { return "" }
	for _, aes := range []string{"x", "y"} {
		s := gg.NewLinearScaler()
		s.SetFormatter(noLabel)
		p.SetScale(aes, s)
	}
}

