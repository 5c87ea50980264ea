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
	"github.com/aclements/go-moremath/vec"

	"github.com/aclements/go-explore/explore"
)

// histOpts are the options shared by histograms.
type histOpts struct {
	Stat       string
	Element    string
	Multiple   string
	CommonNorm bool
	Cumulative bool
}

// histogram adds the histogram of xs, split by hue, to g. If rows is
// not nil, only those rows are counted. It returns the largest bar
// height.
func histogram(g *geom, xs []float64, hue []string, rows []int, o histOpts) (float64, error) {
	levels, groupRows := groups(len(xs), hue)
	if rows != nil {
		groupRows = restrict(groupRows, rows)
	}
	samples := make([][]float64, len(levels))
	total := 0
	for i, rs := range groupRows {
		samples[i] = pick(xs, rs)
		total += len(samples[i])
	}
	edges := autoEdges(samples...)
	width := edges[1] - edges[0]

	heights := make([][]float64, len(levels))
	for i, s := range samples {
		hs := binCounts(s, edges)
		n := float64(len(s))
		if o.CommonNorm {
			n = float64(total)
		}
		if err := normalize(o.Stat, hs, n, width); err != nil {
			return 0, err
		}
		if o.Cumulative {
			cumulate(o.Stat, hs, width)
		}
		heights[i] = hs
	}
	bars, err := arrange(o.Multiple, edges, heights)
	if err != nil {
		return 0, err
	}

	top := 0.0
	for _, b := range bars {
		top = math.Max(top, b.y1)
	}
	switch o.Element {
	case "bars":
		for _, b := range bars {
			g.rect(layerFill, levels[b.hue], b.x0, b.x1, b.y0, b.y1)
		}
	case "step", "poly":
		// Trace the top of each group's bars.
		for h := range levels {
			var px, py []float64
			for _, b := range bars {
				if b.hue != h {
					continue
				}
				if o.Element == "step" {
					px = append(px, b.x0, b.x1)
					py = append(py, b.y1, b.y1)
				} else {
					px = append(px, (b.x0+b.x1)/2)
					py = append(py, b.y1)
				}
			}
			g.path(layerLine, levels[h], px, py)
		}
	default:
		return 0, fmt.Errorf("unknown histogram element %q", o.Element)
	}
	return top, nil
}

// restrict intersects each group's rows with rows.
func restrict(groupRows [][]int, rows []int) [][]int {
	keep := make(map[int]bool, len(rows))
	for _, r := range rows {
		keep[r] = true
	}
	out := make([][]int, len(groupRows))
	for i, rs := range groupRows {
		for _, r := range rs {
			if keep[r] {
				out[i] = append(out[i], r)
			}
		}
	}
	return out
}

func statLabel(stat string, cumulative bool) string {
	if cumulative {
		return "cumulative " + stat
	}
	return stat
}

// HistPlot draws a histogram of a.X.
func (c *Charts) HistPlot(t *table.Table, a explore.HistArgs) error {
	return c.draw("histogram", func() ([]*Figure, error) {
		xs, _ := numbers(t, a.X)
		g := new(geom)
		o := histOpts{a.Stat, a.Element, a.Multiple, a.CommonNorm, a.Cumulative}
		if _, err := histogram(g, xs, hueOf(t, a.Hue), nil, o); err != nil {
			return nil, err
		}
		alpha := 1.0
		if a.Multiple == "layer" && a.Hue != "" {
			alpha = 0.5
		}
		return one(g.plot(a.X, statLabel(a.Stat, a.Cumulative), withAlpha(a.Palette, alpha)), nil)
	})
}

// kdeOpts are the options shared by density curves.
type kdeOpts struct {
	Multiple   string
	CommonNorm bool
	Cumulative bool
	Fill       bool
}

// kde adds the densities of xs, split by hue, to g. If rows is not
// nil, only those rows are used. Groups without two distinct values
// are skipped; if that leaves nothing, g spans the data with no
// curves. It returns the largest density.
func kde(g *geom, xs []float64, hue []string, rows []int, o kdeOpts) (float64, error) {
	levels, groupRows := groups(len(xs), hue)
	if rows != nil {
		groupRows = restrict(groupRows, rows)
	}
	samples := make([][]float64, len(levels))
	total := 0
	for i, rs := range groupRows {
		samples[i] = pick(xs, rs)
		total += len(samples[i])
	}
	curves := densities(samples, true, o.Cumulative)
	if o.CommonNorm && total > 0 {
		for i := range curves {
			w := float64(len(samples[i])) / float64(total)
			curves[i].y = vec.Map(func(y float64) float64 { return y * w }, curves[i].y)
		}
	}
	lo, hi, err := stackCurves(o.Multiple, curves)
	if err != nil {
		return 0, err
	}
	top := 0.0
	for i := range curves {
		if len(hi[i].x) == 0 {
			continue
		}
		if o.Fill {
			bx, by := band(lo[i], hi[i])
			g.path(layerFill, levels[i], bx, by)
		}
		g.path(layerLine, levels[i], hi[i].x, hi[i].y)
		for _, y := range hi[i].y {
			top = math.Max(top, y)
		}
	}
	if top == 0 && total > 0 {
		var all []float64
		for _, xs := range samples {
			all = append(all, xs...)
		}
		lo, hi := stats.Bounds(all)
		g.extent(lo, hi, 0, 1)
	}
	return top, nil
}

// band returns the polygon between lo and hi.
func band(lo, hi curve) (xs, ys []float64) {
	n := len(hi.x)
	xs = make([]float64, 0, 2*n+1)
	ys = make([]float64, 0, 2*n+1)
	for i := 0; i < n; i++ {
		xs, ys = append(xs, hi.x[i]), append(ys, hi.y[i])
	}
	for i := n - 1; i >= 0; i-- {
		xs, ys = append(xs, lo.x[i]), append(ys, lo.y[i])
	}
	if n > 0 {
		xs, ys = append(xs, hi.x[0]), append(ys, hi.y[0])
	}
	return
}

// KDEPlot draws kernel density estimates of a.X.
func (c *Charts) KDEPlot(t *table.Table, a explore.KDEArgs) error {
	return c.draw("density", func() ([]*Figure, error) {
		xs, _ := numbers(t, a.X)
		g := new(geom)
		o := kdeOpts{a.Multiple, a.CommonNorm, a.Cumulative, a.Fill}
		if _, err := kde(g, xs, hueOf(t, a.Hue), nil, o); err != nil {
			return nil, err
		}
		ylabel := "density"
		if a.Cumulative {
			ylabel = "cumulative density"
		}
		return one(g.plot(a.X, ylabel, withAlpha(a.Palette, 0.25)), nil)
	})
}

// rug adds a short tick below the axis for each value of xs at rows.
func rug(g *geom, xs []float64, rows []int, height float64) {
	for _, r := range rows {
		if x := xs[r]; !math.IsNaN(x) {
			g.path(layerInk, "", []float64{x, x}, []float64{-height, 0})
		}
	}
}

// facetRows splits row indexes by facet label, or returns a single
// group if col is "".
func facetRows(t *table.Table, col string) ([]string, [][]int) {
	return groups(t.Len(), hueOf(t, col))
}

var errBivariateECDF = errors.New("bivariate ECDF plots are not supported")

// DisPlot draws a distribution plot of a.X, or of a.X against a.Y,
// optionally faceted into columns by a.Col.
func (c *Charts) DisPlot(t *table.Table, a explore.DisArgs) error {
	return c.draw("distribution", func() ([]*Figure, error) {
		if a.Y != "" {
			if a.Kind == "ecdf" {
				return nil, errBivariateECDF
			}
			return one(c.bivariate(t, a))
		}
		xs, _ := numbers(t, a.X)
		hue := hueOf(t, a.Hue)
		facets, facetGroups := facetRows(t, a.Col)
		g := new(geom)
		top := 0.0
		alpha := 0.25
		for f, rows := range facetGroups {
			g.Col = facets[f]
			var h float64
			var err error
			switch a.Kind {
			case "hist":
				o := histOpts{"count", "bars", "layer", a.CommonNorm, a.Cumulative}
				h, err = histogram(g, xs, hue, rows, o)
				alpha = 0.5
			case "kde":
				h, err = kde(g, xs, hue, rows, kdeOpts{"layer", a.CommonNorm, a.Cumulative, false})
			case "ecdf":
				levels, groupRows := groups(len(xs), hue)
				groupRows = restrict(groupRows, rows)
				samples := make([][]float64, len(levels))
				for i, rs := range groupRows {
					samples[i] = pick(xs, rs)
				}
				for i, e := range ecdfs(samples) {
					g.path(layerLine, levels[i], e.x, e.y)
				}
				h = 1
			default:
				err = fmt.Errorf("unknown distribution kind %q", a.Kind)
			}
			if err != nil {
				return nil, err
			}
			top = math.Max(top, h)
		}
		if a.Rug {
			for f, rows := range facetGroups {
				g.Col = facets[f]
				rug(g, xs, rows, 0.03*top)
			}
		}
		var facet []gg.Plotter
		if a.Col != "" {
			facet = append(facet, gg.FacetX{Col: "col"})
		}
		ylabel := map[string]string{"hist": "count", "kde": "density", "ecdf": "proportion"}[a.Kind]
		return one(g.plot(a.X, ylabel, withAlpha(a.Palette, alpha), facet...), nil)
	})
}

// bivariate draws a two-dimensional histogram or density of a.X and
// a.Y as tiles, with one facet row per hue level and one facet column
// per a.Col level.
func (c *Charts) bivariate(t *table.Table, a explore.DisArgs) (*gg.Plot, error) {
	xs, _ := numbers(t, a.X)
	ys, _ := numbers(t, a.Y)
	hues, hueRows := groups(t.Len(), hueOf(t, a.Hue))
	cols, colRows := facetRows(t, a.Col)

	var tx, ty, tv []float64
	var trow, tcol []string
	for h := range hues {
		for f := range cols {
			rows := restrict([][]int{hueRows[h]}, colRows[f])[0]
			px, py := pairs(xs, ys, rows)
			if len(px) < 2 || !spread(px) || !spread(py) {
				continue
			}
			var gx, gy []float64
			var d [][]float64
			switch a.Kind {
			case "hist":
				gx, gy, d = hist2(px, py)
			case "kde":
				gx, gy, d = kde2(px, py, 50)
			default:
				return nil, fmt.Errorf("unknown distribution kind %q", a.Kind)
			}
			if a.Cumulative {
				cumulate2(d)
			}
			for j := range gy {
				for i := range gx {
					tx, ty, tv = append(tx, gx[i]), append(ty, gy[j]), append(tv, d[j][i])
					trow, tcol = append(trow, hues[h]), append(tcol, cols[f])
				}
			}
		}
	}
	if len(tx) == 0 {
		return pointsOnly(xs, ys, hues, hueRows, cols, colRows, a), nil
	}

	cm := newColorMap("viridis", tv)
	fill := make([]color.Color, len(tv))
	for i, v := range tv {
		if v == 0 {
			fill[i] = color.Transparent
		} else {
			fill[i] = cm.Map(v)
		}
	}
	tab := new(table.Builder).
		Add("x", tx).Add("y", ty).Add("fill", fill).
		Add("row", trow).Add("col", tcol).
		Done()
	p := newPlot(tab, a.X, a.Y)
	if a.Hue != "" {
		p.Add(gg.FacetY{Col: "row"})
	}
	if a.Col != "" {
		p.Add(gg.FacetX{Col: "col"})
	}
	p.SetScale("fill", gg.NewIdentityScale())
	p.Add(gg.LayerTiles{X: "x", Y: "y", Fill: "fill"})
	return p, nil
}

// pointsOnly draws the points of a bivariate plot in which no facet
// has enough spread for a density.
func pointsOnly(xs, ys []float64, hues []string, hueRows [][]int, cols []string, colRows [][]int, a explore.DisArgs) *gg.Plot {
	g := new(geom)
	var facet []gg.Plotter
	if a.Hue != "" {
		facet = append(facet, gg.FacetY{Col: "row"})
	}
	if a.Col != "" {
		facet = append(facet, gg.FacetX{Col: "col"})
	}
	for h := range hues {
		g.Row = hues[h]
		for f := range cols {
			g.Col = cols[f]
			px, py := pairs(xs, ys, restrict([][]int{hueRows[h]}, colRows[f])[0])
			g.points(hues[h], px, py)
		}
	}
	return g.plot(a.X, a.Y, Qualitative(a.Palette), facet...)
}

// hist2 bins points into a Sturges-by-Sturges grid. It returns the bin
// centers and the counts, indexed [y][x].
func hist2(xs, ys []float64) (gx, gy []float64, d [][]float64) {
	ex, ey := autoEdges(xs), autoEdges(ys)
	kx, ky := len(ex)-1, len(ey)-1
	wx, wy := ex[1]-ex[0], ey[1]-ey[0]
	gx, gy = make([]float64, kx), make([]float64, ky)
	for i := range gx {
		gx[i] = ex[i] + wx/2
	}
	for j := range gy {
		gy[j] = ey[j] + wy/2
	}
	d = make([][]float64, ky)
	for j := range d {
		d[j] = make([]float64, kx)
	}
	for k := range xs {
		i := int((xs[k] - ex[0]) / wx)
		j := int((ys[k] - ey[0]) / wy)
		if i >= kx {
			i = kx - 1
		}
		if j >= ky {
			j = ky - 1
		}
		d[j][i]++
	}
	return
}

// RidgePlot draws one density of a.X per level of a.Row, stacked in
// facet rows and colored by a.Hue.
func (c *Charts) RidgePlot(t *table.Table, a explore.RidgeArgs) error {
	return c.draw("ridges", func() ([]*Figure, error) {
		xs, _ := numbers(t, a.X)
		hue := hueOf(t, a.Hue)
		rows, rowRows := facetRows(t, a.Row)
		g := new(geom)
		for r := range rows {
			g.Row = rows[r]
			if _, err := kde(g, xs, hue, rowRows[r], kdeOpts{"layer", false, false, a.Fill}); err != nil {
				return nil, err
			}
		}
		p := g.plot(a.X, "", withAlpha(a.Palette, a.Alpha), gg.FacetY{Col: "row", SplitYScales: true})
		return one(p, nil)
	})
}
