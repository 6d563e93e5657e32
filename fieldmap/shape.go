// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fieldmap

import "fmt"

// An InvalidShapeError reports geometry or raster data whose shape
// can't be drawn.
type InvalidShapeError struct {
	What  string // "coords", "verts", or "raster"
	Shape []int
	Want  string
}

func (e *InvalidShapeError) Error() string {
	return fmt.Sprintf("%s has shape %v; want %s", e.What, e.Shape, e.Want)
}

// CheckPoints checks that coords is an n×2 array.
func CheckPoints(coords [][]float64, n int) error {
	for i, xy := range coords {
		if len(xy) != 2 {
			return &InvalidShapeError{"coords", []int{len(coords), len(xy)}, fmt.Sprintf("(n, 2); row %d has %d columns", i, len(xy))}
		}
	}
	if len(coords) != n {
		return &InvalidShapeError{"coords", []int{len(coords), 2}, fmt.Sprintf("(%d, 2) to match the data", n)}
	}
	return nil
}

// CheckPolygons checks that verts holds n polygons, each a non-empty
// sequence of (x, y) vertices.
func CheckPolygons(verts [][][]float64, n int) error {
	for i, poly := range verts {
		if len(poly) == 0 {
			return &InvalidShapeError{"verts", []int{len(verts), 0}, fmt.Sprintf("polygon %d to have vertices", i)}
		}
		for _, xy := range poly {
			if len(xy) != 2 {
				return &InvalidShapeError{"verts", []int{len(verts), len(poly), len(xy)}, fmt.Sprintf("(n, m, 2); polygon %d has a %d-dimensional vertex", i, len(xy))}
			}
		}
	}
	if len(verts) != n {
		return &InvalidShapeError{"verts", []int{len(verts)}, fmt.Sprintf("%d polygons to match the data", n)}
	}
	return nil
}

// CheckRaster checks that dims describes at most two dimensions.
func CheckRaster(dims []int) error {
	if len(dims) == 0 || len(dims) > 2 {
		return &InvalidShapeError{"raster", dims, "at most 2 dimensions"}
	}
	return nil
}
