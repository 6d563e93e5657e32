// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colormap

import (
	"errors"
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var (
	red   = color.NRGBA{0xff, 0, 0, 0xff}
	green = color.NRGBA{0, 0xff, 0, 0xff}
	blue  = color.NRGBA{0, 0, 0xff, 0xff}
)

func TestDefaultRegistry(t *testing.T) {
	r := NewDefaultRegistry()
	for _, name := range []string{ContinuousPalette, AlternatePalette, DiscretePalette, "viridis", "tab10", "tab20", "Set1"} {
		p, err := r.Lookup(name)
		if err != nil {
			t.Errorf("Lookup(%q): %v", name, err)
			continue
		}
		if p.Len() == 0 {
			t.Errorf("palette %q is empty", name)
		}
	}
	if p, _ := r.Lookup(DiscretePalette); !p.Qualitative || p.Len() != 20 {
		t.Errorf("%s: qualitative=%v len=%d, want true, 20", DiscretePalette, p.Qualitative, p.Len())
	}
	if p, _ := r.Lookup(ContinuousPalette); p.Qualitative {
		t.Errorf("%s is qualitative", ContinuousPalette)
	}
}

func TestMustRegisterPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("registering an empty palette did not panic")
		}
	}()
	NewRegistry().mustRegister(Palette{Name: "empty"})
}

func TestWoven(t *testing.T) {
	w, t20 := woven(), tab20()
	for i := 0; i < 10; i++ {
		if w[i] != t20[2*i] {
			t.Errorf("woven[%d] = %v, want tab20[%d] = %v", i, w[i], 2*i, t20[2*i])
		}
		if w[10+i] != t20[2*i+1] {
			t.Errorf("woven[%d] = %v, want tab20[%d] = %v", 10+i, w[10+i], 2*i+1, t20[2*i+1])
		}
	}
}

func TestLookupUnknown(t *testing.T) {
	_, err := NewRegistry().Lookup("nope")
	var upe *UnknownPaletteError
	if !errors.As(err, &upe) || upe.Name != "nope" {
		t.Errorf("Lookup error = %v, want UnknownPaletteError", err)
	}
}

func TestRegisterReplaces(t *testing.T) {
	r := NewRegistry()
	r.Register(Palette{Name: "p", Colors: []color.Color{red}})
	r.Register(Palette{Name: "p", Colors: []color.Color{green, blue}})
	p, err := r.Lookup("p")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]color.Color{green, blue}, p.Colors); diff != "" {
		t.Errorf("colors (-want +got):\n%s", diff)
	}
	if err := r.Register(Palette{Name: "empty"}); err == nil {
		t.Errorf("registering an empty palette succeeded")
	}
	if diff := cmp.Diff([]string{"p"}, r.Names()); diff != "" {
		t.Errorf("names (-want +got):\n%s", diff)
	}
}

func TestStretch(t *testing.T) {
	q := Palette{Colors: []color.Color{red, green, blue}, Qualitative: true}
	for _, test := range []struct {
		k    int
		want []color.Color
	}{
		{1, []color.Color{red}},
		{3, []color.Color{red, green, blue}},
		{5, []color.Color{red, green, blue, red, green}},
	} {
		if diff := cmp.Diff(test.want, q.Stretch(test.k)); diff != "" {
			t.Errorf("Stretch(%d) (-want +got):\n%s", test.k, diff)
		}
	}

	seq := Palette{Colors: []color.Color{red, blue}}
	for k := 1; k <= 40; k++ {
		if got := len(seq.Stretch(k)); got != k {
			t.Errorf("sequential Stretch(%d) returned %d colors", k, got)
		}
	}
}

func TestMapClamps(t *testing.T) {
	p := Palette{Colors: []color.Color{red, green, blue}}
	first := color.RGBAModel.Convert(red)
	last := color.RGBAModel.Convert(blue)
	for _, test := range []struct {
		x    float64
		want color.Color
	}{
		{-5, first},
		{0, first},
		{1, last},
		{7, last},
	} {
		if got := p.Map(test.x); got != test.want {
			t.Errorf("Map(%v) = %v, want %v", test.x, got, test.want)
		}
	}
}

func TestParseRef(t *testing.T) {
	ref, err := ParseRef("YlGn")
	if err != nil || ref.Name != "YlGn" || ref.Colors != nil {
		t.Errorf("ParseRef(YlGn) = %+v, %v", ref, err)
	}

	ref, err = ParseRef("#f00,#00ff00, #0000ff80")
	if err != nil {
		t.Fatal(err)
	}
	want := []color.Color{red, green, color.NRGBA{0, 0, 0xff, 0x80}}
	if diff := cmp.Diff(want, ref.Colors); diff != "" {
		t.Errorf("colors (-want +got):\n%s", diff)
	}
	if got, want := ref.String(), "#ff0000,#00ff00,#0000ff80"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	for _, bad := range []string{"#12", "#zzzzzz", "#ff0000,red"} {
		if _, err := ParseRef(bad); err == nil {
			t.Errorf("ParseRef(%q) succeeded", bad)
		}
	}
}
