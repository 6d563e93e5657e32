// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colormap provides the named color palettes used to draw
// field maps and a Registry to look them up by name.
package colormap

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/aclements/go-gg/palette"
)

// A Palette is an ordered list of colors.
//
// Continuous data is colored by interpolating between the colors.
// Discrete data with K categories uses K colors from the list: a
// Qualitative palette hands out its colors in order and cycles if K
// is larger than the palette, while other palettes are sampled
// evenly across their whole range.
type Palette struct {
	Name        string
	Colors      []color.Color
	Qualitative bool
}

// Len returns the number of colors in p.
func (p Palette) Len() int {
	return len(p.Colors)
}

// Gradient returns p as a continuous palette on [0, 1].
func (p Palette) Gradient() palette.RGBGradient {
	g := palette.RGBGradient{Colors: make([]color.RGBA, len(p.Colors))}
	for i, c := range p.Colors {
		g.Colors[i] = color.RGBAModel.Convert(c).(color.RGBA)
	}
	return g
}

// Map returns the color at x in [0, 1]. x is clamped to that
// interval and NaN maps to the first color.
func (p Palette) Map(x float64) color.Color {
	if len(p.Colors) == 1 {
		return p.Colors[0]
	}
	if math.IsNaN(x) || x < 0 {
		x = 0
	} else if x > 1 {
		x = 1
	}
	return p.Gradient().Map(x)
}

// Stretch returns exactly k colors from p.
func (p Palette) Stretch(k int) []color.Color {
	out := make([]color.Color, k)
	if len(p.Colors) == 0 {
		return out
	}
	if p.Qualitative || len(p.Colors) == 1 {
		for i := range out {
			out[i] = p.Colors[i%len(p.Colors)]
		}
		return out
	}
	// Sample the centers of k equal subdivisions of [0, 1].
	g := p.Gradient()
	for i := range out {
		out[i] = g.Map((float64(i) + 0.5) / float64(k))
	}
	return out
}

// A Ref refers to a palette either by registered name or by an
// explicit list of colors.
type Ref struct {
	Name   string
	Colors []color.Color
}

// ByName returns a Ref to the registered palette called name.
func ByName(name string) Ref {
	return Ref{Name: name}
}

// Literal returns a Ref to the given colors.
func Literal(colors ...color.Color) Ref {
	return Ref{Colors: colors}
}

func (r Ref) String() string {
	if r.Colors == nil {
		return r.Name
	}
	parts := make([]string, len(r.Colors))
	for i, c := range r.Colors {
		parts[i] = FormatColor(c)
	}
	return strings.Join(parts, ",")
}

// ParseRef parses a palette reference: either a palette name or a
// comma-separated list of colors in the form accepted by ParseColor.
func ParseRef(s string) (Ref, error) {
	if !strings.HasPrefix(s, "#") {
		return ByName(s), nil
	}
	var cs []color.Color
	for _, part := range strings.Split(s, ",") {
		c, err := ParseColor(strings.TrimSpace(part))
		if err != nil {
			return Ref{}, err
		}
		cs = append(cs, c)
	}
	return Literal(cs...), nil
}

// ParseColor parses a color in "#rgb", "#rrggbb", or "#rrggbbaa" form.
func ParseColor(s string) (color.Color, error) {
	hex := strings.TrimPrefix(s, "#")
	if hex == s {
		return nil, fmt.Errorf("bad color %q: missing #", s)
	}
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return nil, fmt.Errorf("bad color %q: want 3, 6, or 8 hex digits", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("bad color %q: %v", s, err)
	}
	return color.NRGBA{uint8(v >> 24), uint8(v >> 16), uint8(v >> 8), uint8(v)}, nil
}

// FormatColor formats c as "#rrggbb", or "#rrggbbaa" if c is not
// opaque.
func FormatColor(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	if n.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A)
}
