// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"fmt"
	"image/color"
	"io"
	"math"

	"github.com/aclements/fieldmaps/fieldmap"
	"github.com/ajstarks/svgo"
)

// Colorbar geometry, in pixels.
const (
	barX      = 10
	barWidth  = 20
	arrowLen  = 15
	barMargin = 10
	tickLen   = 5
	fontSize  = 12

	// gradientSteps is the number of strips a continuous
	// colorbar is drawn with.
	gradientSteps = 64
)

// WriteLegendSVG draws l as a vertical colorbar of the given size.
//
// Discrete colorbars get one swatch per bin, labeled at the bin
// center. Continuous colorbars get a gradient with ticks, and a
// triangular marker at each extended end.
func WriteLegendSVG(w io.Writer, l *fieldmap.Legend, width, height int) error {
	top := barMargin + arrowLen
	bottom := height - barMargin - arrowLen
	if bottom-top < 1 {
		return fmt.Errorf("legend height %d is too small", height)
	}
	lo, hi := l.Lower, l.Upper
	if !(hi > lo) {
		hi = lo + 1
	}
	// ypos maps a data value to a y coordinate on the bar.
	ypos := func(v float64) float64 {
		return float64(bottom) - (v-lo)/(hi-lo)*float64(bottom-top)
	}

	canvas := svg.New(w)
	canvas.Start(width, height)

	if l.Discrete {
		for i, c := range l.Colors {
			y0, y1 := ypos(l.Boundaries[i+1]), ypos(l.Boundaries[i])
			rect(canvas, y0, y1, c)
		}
	} else {
		step := (hi - lo) / gradientSteps
		for i := 0; i < gradientSteps; i++ {
			v0 := lo + float64(i)*step
			c := l.Palette.Map((v0 + step/2 - lo) / (hi - lo))
			rect(canvas, ypos(v0+step), ypos(v0), c)
		}
		if l.Extend.High() {
			c := l.Palette.Map(1)
			canvas.Polygon(
				[]int{barX, barX + barWidth/2, barX + barWidth},
				[]int{top, top - arrowLen, top},
				fill(c))
		}
		if l.Extend.Low() {
			c := l.Palette.Map(0)
			canvas.Polygon(
				[]int{barX, barX + barWidth/2, barX + barWidth},
				[]int{bottom, bottom + arrowLen, bottom},
				fill(c))
		}
	}
	canvas.Rect(barX, top, barWidth, bottom-top, "fill:none;stroke:black;stroke-width:1")

	for i, tick := range l.Ticks {
		y := int(math.Round(ypos(tick)))
		x := barX + barWidth
		canvas.Line(x, y, x+tickLen, y, "stroke:black;stroke-width:1")
		canvas.Text(x+tickLen+3, y+fontSize/3, l.Labels[i], fmt.Sprintf("font-size:%dpx;font-family:sans-serif", fontSize))
	}

	canvas.End()
	return nil
}

func rect(canvas *svg.SVG, y0, y1 float64, c color.Color) {
	top, bot := int(math.Floor(y0)), int(math.Ceil(y1))
	canvas.Rect(barX, top, barWidth, bot-top, fill(c))
}

// fill returns the SVG style for filling with c.
func fill(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	style := fmt.Sprintf("fill:rgb(%d,%d,%d);stroke:none", n.R, n.G, n.B)
	if n.A != 0xff {
		style += fmt.Sprintf(";fill-opacity:%.3g", float64(n.A)/0xff)
	}
	return style
}
