// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colormap

import "image/color"

const (
	// ContinuousPalette is the default palette for continuous data.
	ContinuousPalette = "YlGn"
	// AlternatePalette is a secondary palette for continuous data.
	AlternatePalette = "Blues"
	// DiscretePalette is the default palette for discrete data.
	DiscretePalette = "tab20_woven"
)

var (
	// ContinuousColor is a single color from ContinuousPalette.
	ContinuousColor color.Color = color.RGBA{0x62, 0xbb, 0x6e, 0xff}
	// AlternateColor is a single color from AlternatePalette.
	AlternateColor color.Color = color.RGBA{0x48, 0x96, 0xc8, 0xff}
	// MissingColor is drawn in place of missing values.
	MissingColor color.Color = color.NRGBA{0x66, 0x66, 0x66, 0x33}
	// GridlineColor is the color of optional grid lines.
	GridlineColor color.Color = color.NRGBA{0x99, 0x99, 0x99, 0x80}
)

// tab10Regular and tab10Light are the two halves of matplotlib's
// tab20 palette.
var (
	tab10Regular = []color.RGBA{
		{0x1f, 0x77, 0xb4, 0xff}, // blue
		{0xff, 0x7f, 0x0e, 0xff}, // orange
		{0x2c, 0xa0, 0x2c, 0xff}, // green
		{0xd6, 0x27, 0x28, 0xff}, // red
		{0x94, 0x67, 0xbd, 0xff}, // purple
		{0x8c, 0x56, 0x4b, 0xff}, // brown
		{0xe3, 0x77, 0xc2, 0xff}, // pink
		{0x7f, 0x7f, 0x7f, 0xff}, // gray
		{0xbc, 0xbd, 0x22, 0xff}, // olive
		{0x17, 0xbe, 0xcf, 0xff}, // cyan
	}
	tab10Light = []color.RGBA{
		{0xae, 0xc7, 0xe8, 0xff},
		{0xff, 0xbb, 0x78, 0xff},
		{0x98, 0xdf, 0x8a, 0xff},
		{0xff, 0x98, 0x96, 0xff},
		{0xc5, 0xb0, 0xd5, 0xff},
		{0xc4, 0x9c, 0x94, 0xff},
		{0xf7, 0xb6, 0xd2, 0xff},
		{0xc7, 0xc7, 0xc7, 0xff},
		{0xdb, 0xdb, 0x8d, 0xff},
		{0x9e, 0xda, 0xe5, 0xff},
	}
)

func tab10() []color.Color {
	out := make([]color.Color, len(tab10Regular))
	for i, c := range tab10Regular {
		out[i] = c
	}
	return out
}

// tab20 pairs each regular color with its light variant.
func tab20() []color.Color {
	var out []color.Color
	for i := range tab10Regular {
		out = append(out, tab10Regular[i], tab10Light[i])
	}
	return out
}

// woven reorders tab20 so that all of the regular colors come before
// the light ones. Neighboring categories then get clearly different
// colors until there are more than ten of them.
func woven() []color.Color {
	t := tab20()
	var out []color.Color
	for i := 0; i < len(t); i += 2 {
		out = append(out, t[i])
	}
	for i := 1; i < len(t); i += 2 {
		out = append(out, t[i])
	}
	return out
}
