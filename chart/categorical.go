// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"fmt"
	"math"
	"math/rand"
	"sort"

	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-moremath/stats"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/aclements/go-explore/explore"
)

// bandWidth is the fraction of each category's slot that its marks
// occupy.
const bandWidth = 0.8

// slot returns the left edge and width of the h'th of n dodged marks
// in category i.
func slot(i, h, n int) (x0, w float64) {
	w = bandWidth / float64(n)
	return float64(i) - bandWidth/2 + float64(h)*w, w
}

// crossTab groups rows by category and hue. It returns the category
// levels, the hue levels (a single "" if hue is nil), and the rows of
// each (category, hue) cell.
func crossTab(cats, hue []string) (catLevels, hueLevels []string, cells [][][]int) {
	catLevels, ci := levelsOf(cats)
	hueLevels, hi := []string{""}, make([]int, len(cats))
	if hue != nil {
		hueLevels, hi = levelsOf(hue)
	}
	cells = make([][][]int, len(catLevels))
	for i := range cells {
		cells[i] = make([][]int, len(hueLevels))
	}
	for r := range cats {
		if ci[r] < 0 || hi[r] < 0 {
			continue
		}
		cells[ci[r]][hi[r]] = append(cells[ci[r]][hi[r]], r)
	}
	return
}

// colorKey returns the label that colors cell (i, h): the hue level,
// or the category itself when there is no hue.
func colorKey(catLevels, hueLevels []string, i, h int, hue []string) string {
	if hue == nil {
		return catLevels[i]
	}
	return hueLevels[h]
}

// CountPlot draws a bar for the number of rows in each level of a.X,
// dodged by a.Hue.
func (c *Charts) CountPlot(t *table.Table, a explore.CountArgs) error {
	return c.draw("count", func() ([]*Figure, error) {
		hue := hueOf(t, a.Hue)
		cats, hues, cells := crossTab(labelsOf(t, a.X), hue)
		g := new(geom)
		for i := range cats {
			for h := range hues {
				n := len(cells[i][h])
				if n == 0 {
					continue
				}
				x0, w := slot(i, h, len(hues))
				g.rect(layerFill, colorKey(cats, hues, i, h, hue), x0, x0+w, 0, float64(n))
				if a.BarLabels {
					g.tag(fmt.Sprint(n), x0+w/2, float64(n))
				}
			}
		}
		return one(g.plot(a.X, "count", Qualitative("deep"), catScale("x", cats)), nil)
	})
}

// quartiles returns the quartiles of xs.
func quartiles(xs []float64) (q1, q2, q3 float64) {
	s := stats.Sample{Xs: xs}.Copy().Sort()
	return s.Quantile(0.25), s.Quantile(0.5), s.Quantile(0.75)
}

// whiskers returns the most extreme values of sorted xs within 1.5
// IQR of the quartiles and the values beyond them.
func whiskers(xs []float64, q1, q3 float64) (lo, hi float64, outliers []float64) {
	iqr := q3 - q1
	lo, hi = q1, q3
	for _, x := range xs {
		switch {
		case x < q1-1.5*iqr || x > q3+1.5*iqr:
			outliers = append(outliers, x)
		case x < lo:
			lo = x
		case x > hi:
			hi = x
		}
	}
	return
}

// BoxPlot draws a box plot of a.Y for each level of a.X, dodged by
// a.Hue.
func (c *Charts) BoxPlot(t *table.Table, a explore.BoxArgs) error {
	return c.draw("box", func() ([]*Figure, error) {
		ys, _ := numbers(t, a.Y)
		hue := hueOf(t, a.Hue)
		cats, hues, cells := crossTab(labelsOf(t, a.X), hue)
		g := new(geom)
		for i := range cats {
			for h := range hues {
				vals := pick(ys, cells[i][h])
				if len(vals) == 0 {
					continue
				}
				x0, w := slot(i, h, len(hues))
				x0, x1, mid := x0+0.05*w, x0+0.95*w, x0+w/2
				key := colorKey(cats, hues, i, h, hue)
				q1, q2, q3 := quartiles(vals)
				lo, hi, out := whiskers(vals, q1, q3)
				g.rect(layerFill, key, x0, x1, q1, q3)
				g.path(layerInk, "", []float64{x0, x1}, []float64{q2, q2})
				g.path(layerInk, "", []float64{mid, mid}, []float64{q3, hi})
				g.path(layerInk, "", []float64{mid, mid}, []float64{q1, lo})
				for _, y := range out {
					g.points(key, []float64{mid}, []float64{y})
				}
			}
		}
		return one(g.plot(a.X, a.Y, Qualitative(a.Palette), catScale("x", cats)), nil)
	})
}

// interp returns the value of c at x by linear interpolation.
func interp(c curve, x float64) float64 {
	i := sort.SearchFloat64s(c.x, x)
	switch {
	case len(c.x) == 0:
		return 0
	case i == 0:
		return c.y[0]
	case i >= len(c.x):
		return c.y[len(c.y)-1]
	}
	f := (x - c.x[i-1]) / (c.x[i] - c.x[i-1])
	return c.y[i-1] + f*(c.y[i]-c.y[i-1])
}

// ViolinPlot draws a violin of a.Y for each level of a.X. With
// a.Split, the two hue levels share a violin, one on each side.
func (c *Charts) ViolinPlot(t *table.Table, a explore.ViolinArgs) error {
	return c.draw("violin", func() ([]*Figure, error) {
		ys, _ := numbers(t, a.Y)
		hue := hueOf(t, a.Hue)
		cats, hues, cells := crossTab(labelsOf(t, a.X), hue)
		split := a.Split && len(hues) == 2

		var samples [][]float64
		for i := range cats {
			for h := range hues {
				samples = append(samples, pick(ys, cells[i][h]))
			}
		}
		curves := densities(samples, false, false)
		peak := 0.0
		for _, cv := range curves {
			for _, d := range cv.y {
				peak = math.Max(peak, d)
			}
		}

		g := new(geom)
		for i := range cats {
			for h := range hues {
				cv := curves[i*len(hues)+h]
				if len(cv.x) == 0 {
					continue
				}
				key := colorKey(cats, hues, i, h, hue)

				// center is the violin's axis; left and right
				// scale the half-widths on each side.
				var center, half, left, right float64
				if split {
					center, half = float64(i), bandWidth/2
					if h == 0 {
						left = 1
					} else {
						right = 1
					}
				} else {
					x0, w := slot(i, h, len(hues))
					center, half = x0+w/2, w/2
					left, right = 1, 1
				}
				width := func(d float64) float64 { return 0.95 * half * d / peak }

				var px, py []float64
				for k, y := range cv.x {
					px, py = append(px, center+right*width(cv.y[k])), append(py, y)
				}
				for k := len(cv.x) - 1; k >= 0; k-- {
					px, py = append(px, center-left*width(cv.y[k])), append(py, cv.x[k])
				}
				px, py = append(px, px[0]), append(py, py[0])
				g.path(layerFill, key, px, py)

				if a.Inner == "quartile" {
					q1, q2, q3 := quartiles(samples[i*len(hues)+h])
					for _, q := range []float64{q1, q2, q3} {
						d := width(interp(cv, q))
						g.path(layerInk, "", []float64{center - left*d, center + right*d}, []float64{q, q})
					}
				}
			}
		}
		return one(g.plot(a.X, a.Y, Qualitative(a.Palette), catScale("x", cats)), nil)
	})
}

// meanCI returns the mean of xs and the half-width of its ci percent
// normal confidence interval.
func meanCI(xs []float64, ci float64) (mean, half float64) {
	s := stats.Sample{Xs: xs}
	mean = s.Mean()
	if len(xs) < 2 || ci <= 0 {
		return mean, 0
	}
	se := s.StdDev() / math.Sqrt(float64(len(xs)))
	z := distuv.UnitNormal.Quantile(0.5 + ci/200)
	return mean, z * se
}

// LinePlot draws the mean of a.Y at each value of a.X, one line per
// a.Hue level, with error bars.
func (c *Charts) LinePlot(t *table.Table, a explore.LineArgs) error {
	return c.draw("line", func() ([]*Figure, error) {
		if a.Estimator != "mean" {
			return nil, fmt.Errorf("unknown estimator %q", a.Estimator)
		}
		xs, xlevels := numbers(t, a.X)
		ys, _ := numbers(t, a.Y)
		hue := hueOf(t, a.Hue)
		levels, groupRows := groups(t.Len(), hue)

		g := new(geom)
		for h, rows := range groupRows {
			byX := make(map[float64][]float64)
			for _, r := range rows {
				if math.IsNaN(xs[r]) || math.IsNaN(ys[r]) {
					continue
				}
				byX[xs[r]] = append(byX[xs[r]], ys[r])
			}
			ux := make([]float64, 0, len(byX))
			for x := range byX {
				ux = append(ux, x)
			}
			sort.Float64s(ux)
			means := make([]float64, len(ux))
			for k, x := range ux {
				m, half := meanCI(byX[x], float64(a.CI))
				means[k] = m
				if a.ErrStyle == "bars" && half > 0 {
					g.path(layerLine, levels[h], []float64{x, x}, []float64{m - half, m + half})
				}
			}
			g.path(layerLine, levels[h], ux, means)
		}
		var opts []gg.Plotter
		if xlevels != nil {
			opts = append(opts, catScale("x", xlevels))
		}
		return one(g.plot(a.X, a.Y, Qualitative(a.Palette), opts...), nil)
	})
}

// swarmOffsets returns a vertical offset for each of xs that keeps
// points with nearby values from overlapping. Points are placed
// alternately above and below the center line.
func swarmOffsets(xs []float64, gap, limit float64) []float64 {
	order := make([]int, len(xs))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool { return xs[order[i]] < xs[order[j]] })
	off := make([]float64, len(xs))
	// Points within gap of each other in value share a column.
	start, n := 0, 0
	for k, i := range order {
		if k > 0 && xs[i]-xs[order[start]] > gap {
			start, n = k, 0
		}
		step := float64((n+1)/2) * gap
		if n%2 == 1 {
			step = -step
		}
		off[i] = math.Max(-limit, math.Min(limit, step))
		n++
	}
	return off
}

// CatPlot draws the values of a.X for each level of a.Y as a strip
// or swarm of points, optionally faceted into columns by a.Col.
func (c *Charts) CatPlot(t *table.Table, a explore.CatArgs) error {
	return c.draw("categorical", func() ([]*Figure, error) {
		xs, xlevels := numbers(t, a.X)
		hue := hueOf(t, a.Hue)
		cats, catIdx := levelsOf(labelsOf(t, a.Y))
		facets, facetGroups := facetRows(t, a.Col)
		var all []float64
		for _, rows := range facetGroups {
			all = append(all, pick(xs, rows)...)
		}
		lo, hi := stats.Bounds(all)
		gap := (hi - lo) / 100
		if gap == 0 || math.IsNaN(gap) {
			gap = 0.01
		}

		rnd := rand.New(rand.NewSource(1))
		g := new(geom)
		for f, rows := range facetGroups {
			g.Col = facets[f]
			byCat := make([][]int, len(cats))
			for _, r := range rows {
				if catIdx[r] >= 0 && !math.IsNaN(xs[r]) {
					byCat[catIdx[r]] = append(byCat[catIdx[r]], r)
				}
			}
			for i, rs := range byCat {
				vals := pick(xs, rs)
				var off []float64
				switch a.Kind {
				case "strip":
					off = make([]float64, len(vals))
					for k := range off {
						off[k] = (rnd.Float64() - 0.5) * bandWidth / 2
					}
				case "swarm":
					// Offsets are in category units; gap
					// converts value spacing to a similar
					// visual spacing.
					off = swarmOffsets(vals, gap, bandWidth/2)
					for k := range off {
						off[k] *= 0.02 / gap
					}
				default:
					return nil, fmt.Errorf("unknown categorical plot kind %q", a.Kind)
				}
				for k, r := range rs {
					key := cats[i]
					if hue != nil {
						key = hue[r]
					}
					g.points(key, []float64{vals[k]}, []float64{float64(i) + off[k]})
				}
			}
		}
		opts := []gg.Plotter{catScale("y", cats)}
		if xlevels != nil {
			opts = append(opts, catScale("x", xlevels))
		}
		if a.Col != "" {
			opts = append(opts, gg.FacetX{Col: "col"})
		}
		return one(g.plot(a.X, a.Y, Qualitative("deep"), opts...), nil)
	})
}
