// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-moremath/stats"

	"github.com/aclements/go-explore/explore"
	"github.com/aclements/go-explore/internal/hclust"
)

// maxAnnotCells is the largest clustered matrix that gets a label in
// every cell.
const maxAnnotCells = 400

// Heatmap colors each cell of m. Cells with NaN values are left
// blank.
func (c *Charts) Heatmap(m *explore.Matrix, a explore.HeatmapArgs) error {
	return c.draw("heatmap", func() ([]*Figure, error) {
		if len(m.Rows) == 0 || len(m.Cols) == 0 {
			return nil, errors.New("empty matrix")
		}
		cm := newColorMap(a.Cmap, flatten(m))
		format := ""
		if a.Annot {
			format = a.Format
		}
		return one(heatmap(m, cm, format, a.XLabel, a.YLabel), nil)
	})
}

func flatten(m *explore.Matrix) []float64 {
	var vals []float64
	for _, row := range m.Values {
		vals = append(vals, row...)
	}
	return vals
}

// heatmap draws m as tiles, with row 0 at the top. If format is not
// "", each present cell is labeled with its value.
func heatmap(m *explore.Matrix, cm colorMap, format, xlabel, ylabel string) *gg.Plot {
	nr := len(m.Rows)
	var xs, ys []float64
	var fill []color.Color
	var tx, ty []float64
	var tl []string
	for i, row := range m.Values {
		y := float64(nr - 1 - i)
		for j, v := range row {
			xs, ys = append(xs, float64(j)), append(ys, y)
			fill = append(fill, cm.Map(v))
			if format != "" && !math.IsNaN(v) {
				tx, ty = append(tx, float64(j)), append(ty, y)
				tl = append(tl, fmt.Sprintf(format, v))
			}
		}
	}
	ylevels := make([]string, nr)
	for i, r := range m.Rows {
		ylevels[nr-1-i] = r
	}

	tiles := new(table.Builder).Add("x", xs).Add("y", ys).Add("fill", fill).Done()
	p := newPlot(tiles, xlabel, ylabel)
	p.Add(tileScale("x", m.Cols), tileScale("y", ylevels))
	p.SetScale("fill", gg.NewIdentityScale())
	p.Add(gg.LayerTiles{X: "x", Y: "y", Fill: "fill"})
	if len(tl) > 0 {
		p.Save()
		p.SetData(new(table.Builder).Add("x", tx).Add("y", ty).Add("label", uniqueLabels(tl)).Done())
		p.Add(gg.LayerTags{X: "x", Y: "y", Label: "label"})
		p.Restore()
	}
	return p
}

// zscore standardizes each row (axis Rows) or column (axis Cols) of
// vals to mean 0 and standard deviation 1. A line with no spread
// becomes all zeros.
func zscore(vals [][]float64, axis explore.Axis) {
	alongAxis(vals, axis, func(xs []float64) {
		s := stats.Sample{Xs: present(xs)}
		mean, sd := s.Mean(), s.StdDev()
		for i, x := range xs {
			if sd > 0 {
				xs[i] = (x - mean) / sd
			} else if !math.IsNaN(x) {
				xs[i] = 0
			}
		}
	})
}

// standardScale rescales each row or column of vals to [0, 1].
func standardScale(vals [][]float64, axis explore.Axis) {
	alongAxis(vals, axis, func(xs []float64) {
		lo, hi := stats.Bounds(present(xs))
		for i, x := range xs {
			if hi > lo {
				xs[i] = (x - lo) / (hi - lo)
			} else if !math.IsNaN(x) {
				xs[i] = 0
			}
		}
	})
}

// alongAxis applies f to each row or column of vals in place.
func alongAxis(vals [][]float64, axis explore.Axis, f func([]float64)) {
	switch axis {
	case explore.Rows:
		for _, row := range vals {
			f(row)
		}
	case explore.Cols:
		if len(vals) == 0 {
			return
		}
		col := make([]float64, len(vals))
		for j := range vals[0] {
			for i := range vals {
				col[i] = vals[i][j]
			}
			f(col)
			for i := range vals {
				vals[i][j] = col[i]
			}
		}
	}
}

func present(xs []float64) []float64 {
	out := make([]float64, 0, len(xs))
	for _, x := range xs {
		if !math.IsNaN(x) {
			out = append(out, x)
		}
	}
	return out
}

// clusterOrder returns the dendrogram order of the rows of vals and
// the clustering, treating NaN as 0.
func clusterOrder(vals [][]float64) ([]int, *hclust.Tree) {
	pts := make([][]float64, len(vals))
	for i, row := range vals {
		pts[i] = make([]float64, len(row))
		for j, v := range row {
			if !math.IsNaN(v) {
				pts[i][j] = v
			}
		}
	}
	tree := hclust.Average(pts)
	return tree.Leaves(), tree
}

// dendrogram adds the segments of tree to g as black lines. The
// distance axis starts at 0 and is at least 1 high when every merge
// is at distance 0.
func dendrogram(g *geom, tree *hclust.Tree) {
	if tree.N < 2 {
		return
	}
	for _, s := range tree.Segments() {
		g.path(layerInk, "", []float64{s.X0, s.X1}, []float64{s.Y0, s.Y1})
	}
	top := tree.Height(tree.Root())
	if !(top > 0) {
		top = 1
	}
	g.extent(-0.5, float64(tree.N)-0.5, 0, top)
}

var errBothScales = errors.New("cannot both z-score and standard-scale")

// ClusterMap reorders the rows and columns of m by hierarchical
// clustering and draws it as a heatmap, followed by a figure of the
// row and column dendrograms.
func (c *Charts) ClusterMap(m *explore.Matrix, a explore.ClusterArgs) error {
	return c.draw("clustermap", func() ([]*Figure, error) {
		if a.ZScore != explore.NoAxis && a.StandardScale != explore.NoAxis {
			return nil, errBothScales
		}
		if len(m.Rows) == 0 || len(m.Cols) == 0 {
			return nil, errors.New("no numeric data to cluster")
		}
		vals := make([][]float64, len(m.Rows))
		for i := range vals {
			vals[i] = append([]float64(nil), m.Values[i]...)
		}
		zscore(vals, a.ZScore)
		standardScale(vals, a.StandardScale)

		rowOrder, rowTree := clusterOrder(vals)
		tvals := make([][]float64, len(m.Cols))
		for j := range tvals {
			tvals[j] = make([]float64, len(m.Rows))
			for i := range m.Rows {
				tvals[j][i] = vals[i][j]
			}
		}
		colOrder, colTree := clusterOrder(tvals)

		out := explore.NewMatrix(nil, nil)
		out.RowLabel, out.ColLabel = m.RowLabel, m.ColLabel
		for _, j := range colOrder {
			out.Cols = append(out.Cols, m.Cols[j])
		}
		for _, i := range rowOrder {
			out.Rows = append(out.Rows, m.Rows[i])
			row := make([]float64, len(colOrder))
			for k, j := range colOrder {
				row[k] = vals[i][j]
			}
			out.Values = append(out.Values, row)
		}

		cm := newColorMap(a.Cmap, flatten(out))
		if cm.lo < 0 && cm.hi > 0 {
			cm = cm.centered()
		}
		format := ""
		if a.Annot && len(out.Rows)*len(out.Cols) <= maxAnnotCells {
			format = "%.2f"
		}
		figs := []*Figure{{Plot: heatmap(out, cm, format, out.ColLabel, out.RowLabel)}}

		g := new(geom)
		g.Col = "rows"
		dendrogram(g, rowTree)
		g.Col = "columns"
		dendrogram(g, colTree)
		if g.len() > 0 {
			p := g.plot("leaf", "distance", Qualitative("deep"), gg.FacetX{Col: "col", SplitXScales: true})
			figs = append(figs, &Figure{Title: "clustermap dendrograms", Plot: p})
		}
		return figs, nil
	})
}
