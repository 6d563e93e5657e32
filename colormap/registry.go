// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colormap

import (
	"errors"
	"fmt"
	"image/color"
	"sort"
	"sync"

	"github.com/aclements/go-gg/palette"
	"github.com/aclements/go-gg/palette/brewer"
	"github.com/aclements/go-moremath/vec"
)

// An UnknownPaletteError reports a palette name that is not in a
// Registry.
type UnknownPaletteError struct {
	Name string
}

func (e *UnknownPaletteError) Error() string {
	return fmt.Sprintf("unknown palette %q", e.Name)
}

// A Registry maps palette names to palettes.
type Registry struct {
	mu       sync.RWMutex
	palettes map[string]Palette
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{palettes: make(map[string]Palette)}
}

// NewDefaultRegistry returns a Registry holding the ColorBrewer
// palettes, viridis, tab10, tab20, and the package's discrete palette
// under the name DiscretePalette.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	for name, levels := range brewer.ByName {
		// Use the variant with the most levels.
		n := 0
		for l := range levels {
			if l > n {
				n = l
			}
		}
		r.mustRegister(Palette{
			Name:        name,
			Colors:      levels[n],
			Qualitative: qualitativeBrewer[name],
		})
	}

	viridis := Palette{Name: "viridis"}
	for _, x := range vec.Linspace(0, 1, 256) {
		viridis.Colors = append(viridis.Colors, palette.Viridis.Map(x))
	}
	r.mustRegister(viridis)

	r.mustRegister(Palette{Name: "tab10", Colors: tab10(), Qualitative: true})
	r.mustRegister(Palette{Name: "tab20", Colors: tab20(), Qualitative: true})
	r.mustRegister(Palette{Name: DiscretePalette, Colors: woven(), Qualitative: true})
	return r
}

// Register adds p to r under p.Name, replacing any palette already
// registered under that name.
func (r *Registry) Register(p Palette) error {
	if p.Name == "" {
		return errors.New("palette has no name")
	}
	if len(p.Colors) == 0 {
		return fmt.Errorf("palette %q has no colors", p.Name)
	}
	p.Colors = append([]color.Color(nil), p.Colors...)
	r.mu.Lock()
	r.palettes[p.Name] = p
	r.mu.Unlock()
	return nil
}

// mustRegister is like Register but panics if p is invalid.
func (r *Registry) mustRegister(p Palette) {
	if err := r.Register(p); err != nil {
		panic(err)
	}
}

// Lookup returns the palette registered under name.
func (r *Registry) Lookup(name string) (Palette, error) {
	r.mu.RLock()
	p, ok := r.palettes[name]
	r.mu.RUnlock()
	if !ok {
		return Palette{}, &UnknownPaletteError{name}
	}
	p.Colors = append([]color.Color(nil), p.Colors...)
	return p, nil
}

// Resolve returns the palette ref refers to. A literal list of colors
// resolves to a qualitative palette of those colors.
func (r *Registry) Resolve(ref Ref) (Palette, error) {
	if ref.Colors != nil {
		if len(ref.Colors) == 0 {
			return Palette{}, errors.New("empty color list")
		}
		return Palette{
			Colors:      append([]color.Color(nil), ref.Colors...),
			Qualitative: true,
		}, nil
	}
	return r.Lookup(ref.Name)
}

// Names returns the registered palette names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.palettes))
	for name := range r.palettes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var qualitativeBrewer = map[string]bool{
	"Accent":  true,
	"Dark2":   true,
	"Paired":  true,
	"Pastel1": true,
	"Pastel2": true,
	"Set1":    true,
	"Set2":    true,
	"Set3":    true,
}
