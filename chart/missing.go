// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/aclements/go-gg/table"
	"golang.org/x/image/draw"
	"gonum.org/v1/gonum/stat"

	"github.com/aclements/go-explore/explore"
	"github.com/aclements/go-explore/internal/hclust"
)

var (
	presentColor = color.Gray{0x40}
	missingColor = color.Gray{0xff}
)

// nullity returns the columns of t and, for each, which rows are
// missing.
func nullity(t *table.Table) ([]string, [][]bool) {
	cols := t.Columns()
	null := make([][]bool, len(cols))
	for i, col := range cols {
		null[i] = explore.Nullity(t, col)
	}
	return cols, null
}

func indicator(null []bool) []float64 {
	xs := make([]float64, len(null))
	for i, n := range null {
		if n {
			xs[i] = 1
		}
	}
	return xs
}

// nullityImage returns an image with one pixel per cell of t: column
// j, row i is dark if present and white if missing.
func nullityImage(t *table.Table) *image.Gray {
	_, null := nullity(t)
	img := image.NewGray(image.Rect(0, 0, len(null), t.Len()))
	for j, col := range null {
		for i, n := range col {
			c := presentColor
			if n {
				c = missingColor
			}
			img.SetGray(j, i, c)
		}
	}
	return img
}

// MissingMatrix draws the nullity of every cell of t as a raster
// image, one column band per table column.
func (c *Charts) MissingMatrix(t *table.Table) error {
	return c.draw("missing matrix", func() ([]*Figure, error) {
		if t.Len() == 0 || len(t.Columns()) == 0 {
			return nil, errors.New("empty table")
		}
		w, h := c.size()
		src := nullityImage(t)
		dst := image.NewGray(image.Rect(0, 0, w, h))
		draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
		return []*Figure{{Image: dst, Width: w, Height: h}}, nil
	})
}

// MissingBar draws a bar for each column of t whose height is the
// number of present values.
func (c *Charts) MissingBar(t *table.Table) error {
	return c.draw("missing bars", func() ([]*Figure, error) {
		cols, null := nullity(t)
		g := new(geom)
		for j, col := range null {
			n := 0
			for _, m := range col {
				if !m {
					n++
				}
			}
			x0, w := slot(j, 0, 1)
			g.rect(layerFill, "", x0, x0+w, 0, float64(n))
			g.tag(fmt.Sprint(n), x0+w/2, float64(n))
		}
		if g.len() == 0 {
			return nil, errors.New("empty table")
		}
		return one(g.plot("", "present", []color.Color{presentColor}, catScale("x", cols)), nil)
	})
}

// partial returns the columns of t that are missing some but not all
// of their values, with their missing indicators.
func partial(t *table.Table) ([]string, [][]float64) {
	cols, null := nullity(t)
	var names []string
	var vecs [][]float64
	for j, col := range null {
		n := 0
		for _, m := range col {
			if m {
				n++
			}
		}
		if n > 0 && n < len(col) {
			names = append(names, cols[j])
			vecs = append(vecs, indicator(col))
		}
	}
	return names, vecs
}

// noPartial labels the missing heatmap of a table with no partially
// missing column.
const noPartial = "no column is partially missing"

// MissingHeatmap draws the correlation between the missing indicators
// of the partially missing columns of t.
func (c *Charts) MissingHeatmap(t *table.Table) error {
	return c.draw("missing heatmap", func() ([]*Figure, error) {
		names, vecs := partial(t)
		if len(names) == 0 {
			g := new(geom)
			g.tag(noPartial, 0.5, 0.5)
			g.extent(0, 1, 0, 1)
			return one(g.plot("", "", Qualitative("deep")), nil)
		}
		m := explore.NewMatrix(names, names)
		for i := range names {
			for j := i; j < len(names); j++ {
				r := stat.Correlation(vecs[i], vecs[j], nil)
				m.Values[i][j], m.Values[j][i] = r, r
			}
		}
		cm := colorMap{Continuous("RdBu"), -1, 1}
		return one(heatmap(m, cm, "%.1f", "", ""), nil)
	})
}

// MissingDendrogram clusters the columns of t by their missing
// indicators and draws the dendrogram.
func (c *Charts) MissingDendrogram(t *table.Table) error {
	return c.draw("missing dendrogram", func() ([]*Figure, error) {
		cols, null := nullity(t)
		if len(cols) < 2 {
			return nil, errors.New("need at least two columns")
		}
		pts := make([][]float64, len(null))
		for j, col := range null {
			pts[j] = indicator(col)
		}
		tree := hclust.Average(pts)
		var leaves []string
		for _, k := range tree.Leaves() {
			leaves = append(leaves, cols[k])
		}
		g := new(geom)
		dendrogram(g, tree)
		return one(g.plot("", "distance", Qualitative("deep"), catScale("x", leaves)), nil)
	})
}
