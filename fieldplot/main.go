// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command fieldplot draws a map of one data column of a CSV file.
//
// The input must have a header row. Values are drawn as points at
// (-x, -y), as polygons whose vertices are the rows sharing an -id, or
// as a raster whose cells are at integer column -x and row -y.
//
// By default values are continuous and colored along a gradient.
// With -discrete, each distinct value gets its own color and
// colorbar label instead.
//
// The map is written as SVG, or for rasters optionally as PNG. The
// colorbar can be written as a separate SVG with -legend.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"github.com/aclements/fieldmaps/colormap"
	"github.com/aclements/fieldmaps/fieldmap"
	"github.com/aclements/fieldmaps/recode"
	"github.com/aclements/fieldmaps/render"
	"github.com/aclements/go-gg/table"
	"github.com/davecgh/go-spew/spew"
	"github.com/kballard/go-shellquote"
	"golang.org/x/term"
)

// options are the column and coloring choices for one map.
type options struct {
	kind     string
	x, y, id string
	value    string
	discrete bool
	palette  colormap.Ref
	lower    float64
	upper    float64
	na       string
}

func main() {
	log.SetPrefix("fieldplot: ")
	log.SetFlags(0)

	var (
		opts        options
		flagPalette = flag.String("palette", "", "color `palette` name, or a comma-separated list of #rrggbb colors")
		flagLower   = flag.String("lower", "", "clip continuous colors below `value`")
		flagUpper   = flag.String("upper", "", "clip continuous colors above `value`")
		flagGrid    = flag.Bool("grid", false, "draw cell grid lines on PNG rasters")
		flagStyle   = flag.String("style", "", "space-separated key=value style `settings` (width, height, size, scale, origin)")
		flagOut     = flag.String("o", "", "write map to `file` (default: stdout)")
		flagFormat  = flag.String("format", "", "output `format`, svg or png (default: from -o, else svg)")
		flagLegend  = flag.String("legend", "", "write colorbar SVG to `file`")
		flagLegendW = flag.Int("legend-width", 120, "colorbar width in pixels")
		flagLegendH = flag.Int("legend-height", 400, "colorbar height in pixels")
		flagList    = flag.Bool("palettes", false, "list palette names and exit")
		flagDump    = flag.Bool("dump", false, "dump the rendering descriptor to stderr")
	)
	flag.StringVar(&opts.kind, "kind", "points", "map `kind`: points, polygons, or raster")
	flag.StringVar(&opts.x, "x", "x", "x coordinate `column`")
	flag.StringVar(&opts.y, "y", "y", "y coordinate `column`")
	flag.StringVar(&opts.id, "id", "id", "polygon id `column`")
	flag.StringVar(&opts.value, "value", "value", "data `column`")
	flag.BoolVar(&opts.discrete, "discrete", false, "treat values as categories")
	flag.StringVar(&opts.na, "na", "NA", "`string` that marks a missing value")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] input.csv\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	reg := colormap.NewDefaultRegistry()
	if *flagList {
		for _, name := range reg.Names() {
			fmt.Println(name)
		}
		return
	}
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	var err error
	if opts.palette, err = parsePalette(*flagPalette, opts.discrete); err != nil {
		log.Fatal(err)
	}
	if opts.lower, err = parseBound(*flagLower); err != nil {
		log.Fatal("-lower: ", err)
	}
	if opts.upper, err = parseBound(*flagUpper); err != nil {
		log.Fatal("-upper: ", err)
	}
	settings, err := shellquote.Split(*flagStyle)
	if err != nil {
		log.Fatal("-style: ", err)
	}
	style, err := render.ParseStyle(settings)
	if err != nil {
		log.Fatal(err)
	}

	format := *flagFormat
	if format == "" {
		format = "svg"
		if filepath.Ext(*flagOut) == ".png" {
			format = "png"
		}
	}
	if format != "svg" && format != "png" {
		log.Fatalf("unknown output format %q", format)
	}
	if format == "png" && opts.kind != "raster" {
		log.Fatal("PNG output requires -kind raster")
	}
	if format == "png" && *flagOut == "" && term.IsTerminal(int(os.Stdout.Fd())) {
		log.Fatal("refusing to write PNG to a terminal; use -o")
	}

	f, err := os.Open(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}
	tab, err := readTable(f)
	f.Close()
	if err != nil {
		log.Fatalf("%s: %v", flag.Arg(0), err)
	}

	r := render.NewRenderer(reg)
	r.Style = style
	r.Theme.Grid = *flagGrid
	m, err := buildMap(r, tab, &opts)
	if err != nil {
		log.Fatal(err)
	}
	if *flagDump {
		spew.Fdump(os.Stderr, m.Descriptor)
	}

	out := os.Stdout
	if *flagOut != "" {
		out, err = os.Create(*flagOut)
		if err != nil {
			log.Fatal(err)
		}
	}
	if format == "png" {
		img, ierr := r.RasterImage(m.Descriptor)
		if ierr != nil {
			log.Fatal(ierr)
		}
		err = render.WritePNG(out, img)
	} else {
		err = m.WriteSVG(out)
	}
	if err == nil && out != os.Stdout {
		err = out.Close()
	}
	if err != nil {
		log.Fatal(err)
	}

	if *flagLegend != "" {
		lf, err := os.Create(*flagLegend)
		if err != nil {
			log.Fatal(err)
		}
		err = render.WriteLegendSVG(lf, m.Legend(), *flagLegendW, *flagLegendH)
		if err1 := lf.Close(); err == nil {
			err = err1
		}
		if err != nil {
			log.Fatal(err)
		}
	}
}

// parsePalette parses a -palette flag, defaulting by data kind.
func parsePalette(s string, discrete bool) (colormap.Ref, error) {
	if s == "" {
		if discrete {
			return colormap.ByName(colormap.DiscretePalette), nil
		}
		return colormap.ByName(colormap.ContinuousPalette), nil
	}
	return colormap.ParseRef(s)
}

// parseBound parses a -lower or -upper flag. An empty bound is NaN,
// which leaves that end of the scale to follow the data.
func parseBound(s string) (float64, error) {
	if s == "" {
		return math.NaN(), nil
	}
	return strconv.ParseFloat(s, 64)
}

// buildMap draws the map described by opts from the columns of tab.
func buildMap(r *render.Renderer, tab *table.Table, opts *options) (*render.Map, error) {
	vals, err := column(tab, opts.value)
	if err != nil {
		return nil, err
	}
	xcol, err := coordColumn(tab, opts.x)
	if err != nil {
		return nil, err
	}
	ycol, err := coordColumn(tab, opts.y)
	if err != nil {
		return nil, err
	}

	switch opts.kind {
	case "points":
		coords := make([][]float64, len(xcol))
		for i := range coords {
			coords[i] = []float64{xcol[i], ycol[i]}
		}
		if opts.discrete {
			s, err := newSeries(vals, opts.na)
			if err != nil {
				return nil, err
			}
			return r.PointsDiscrete(s, coords, opts.palette)
		}
		f, err := newField(vals, opts.na)
		if err != nil {
			return nil, err
		}
		return r.PointsContinuous(f, coords, opts.palette, opts.lower, opts.upper)

	case "polygons":
		ids, err := column(tab, opts.id)
		if err != nil {
			return nil, err
		}
		verts, first := groupRings(ids, xcol, ycol)
		pvals := make([]string, len(first))
		for i, row := range first {
			pvals[i] = vals[row]
		}
		if opts.discrete {
			s, err := newSeries(pvals, opts.na)
			if err != nil {
				return nil, err
			}
			return r.PolygonsDiscrete(s, verts, opts.palette)
		}
		f, err := newField(pvals, opts.na)
		if err != nil {
			return nil, err
		}
		return r.PolygonsContinuous(f, verts, opts.palette, opts.lower, opts.upper)

	case "raster":
		rows, cols, cells, err := gridCells(xcol, ycol)
		if err != nil {
			return nil, err
		}
		grid := make([]string, len(cells))
		for i, row := range cells {
			grid[i] = opts.na
			if row >= 0 {
				grid[i] = vals[row]
			}
		}
		if opts.discrete {
			data, missing := parseCategories(grid, opts.na)
			var s *recode.Series
			switch data := data.(type) {
			case []float64:
				s, err = recode.NewSeries(reshape(data, rows, cols), missing)
			case []string:
				s, err = recode.NewSeries(reshape(data, rows, cols), missing)
			}
			if err != nil {
				return nil, err
			}
			return r.RasterDiscrete(s, opts.palette)
		}
		xs, missing, err := parseFloats(grid, opts.na)
		if err != nil {
			return nil, err
		}
		f, err := fieldmap.NewField(reshape(xs, rows, cols), missing)
		if err != nil {
			return nil, err
		}
		return r.RasterContinuous(f, opts.palette, opts.lower, opts.upper)
	}
	return nil, fmt.Errorf("unknown map kind %q", opts.kind)
}

func coordColumn(tab *table.Table, name string) ([]float64, error) {
	strs, err := column(tab, name)
	if err != nil {
		return nil, err
	}
	xs := make([]float64, len(strs))
	for i, s := range strs {
		if xs[i], err = strconv.ParseFloat(s, 64); err != nil {
			return nil, fmt.Errorf("column %s, row %d: %v", name, i+1, err)
		}
	}
	return xs, nil
}

func newSeries(vals []string, na string) (*recode.Series, error) {
	data, missing := parseCategories(vals, na)
	return recode.NewSeries(data, missing)
}

func newField(vals []string, na string) (*fieldmap.Field, error) {
	xs, missing, err := parseFloats(vals, na)
	if err != nil {
		return nil, err
	}
	return fieldmap.NewField(xs, missing)
}

// reshape splits xs into rows of cols values.
func reshape[T any](xs []T, rows, cols int) [][]T {
	out := make([][]T, rows)
	for i := range out {
		out[i] = xs[i*cols : (i+1)*cols]
	}
	return out
}
