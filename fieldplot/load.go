// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/aclements/go-gg/table"
)

// readTable reads a CSV file with a header row. Every column is
// left as strings so missing-value markers survive.
func readTable(r io.Reader) (*table.Table, error) {
	rows, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("no header row")
	}
	return table.TableFromStrings(rows[0], rows[1:], false), nil
}

// column returns the named column of t.
func column(t *table.Table, name string) ([]string, error) {
	col := t.Column(name)
	if col == nil {
		return nil, fmt.Errorf("no column %q", name)
	}
	return col.([]string), nil
}

// parseFloats parses strs as numbers. Entries equal to na are
// returned as NaN. They are marked missing, as are NaN and infinite
// numbers.
func parseFloats(strs []string, na string) ([]float64, []bool, error) {
	xs := make([]float64, len(strs))
	missing := make([]bool, len(strs))
	for i, s := range strs {
		if s == na {
			xs[i], missing[i] = math.NaN(), true
			continue
		}
		x, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, nil, fmt.Errorf("row %d: %v", i+1, err)
		}
		xs[i], missing[i] = x, math.IsNaN(x) || math.IsInf(x, 0)
	}
	return xs, missing, nil
}

// parseCategories returns strs as numbers if every non-missing entry
// is a number, and as strings otherwise.
func parseCategories(strs []string, na string) (interface{}, []bool) {
	if xs, missing, err := parseFloats(strs, na); err == nil {
		return xs, missing
	}
	missing := make([]bool, len(strs))
	for i, s := range strs {
		missing[i] = s == na
	}
	return strs, missing
}

// groupRings collects the vertices of each polygon, in order of first
// appearance of its id. first[i] is the row that starts polygon i.
func groupRings(ids []string, xs, ys []float64) (verts [][][]float64, first []int) {
	index := make(map[string]int)
	for i, id := range ids {
		p, ok := index[id]
		if !ok {
			p = len(verts)
			index[id] = p
			verts = append(verts, nil)
			first = append(first, i)
		}
		verts[p] = append(verts[p], []float64{xs[i], ys[i]})
	}
	return verts, first
}

// gridCells places each row at column xs[i] and row ys[i] of a grid
// just large enough to hold them all. It returns the grid's dimensions
// and, for each cell in row-major order, the input row that fills it
// or -1.
func gridCells(xs, ys []float64) (rows, cols int, cells []int, err error) {
	for i := range xs {
		x, y := xs[i], ys[i]
		if x < 0 || y < 0 || x != math.Trunc(x) || y != math.Trunc(y) {
			return 0, 0, nil, fmt.Errorf("row %d: raster cell (%g, %g) is not a non-negative integer", i+1, x, y)
		}
		cols = max(cols, int(x)+1)
		rows = max(rows, int(y)+1)
	}
	cells = make([]int, rows*cols)
	for i := range cells {
		cells[i] = -1
	}
	for i := range xs {
		c := int(ys[i])*cols + int(xs[i])
		if cells[c] != -1 {
			return 0, 0, nil, fmt.Errorf("row %d: raster cell (%g, %g) already filled", i+1, xs[i], ys[i])
		}
		cells[c] = i
	}
	return rows, cols, cells, nil
}
