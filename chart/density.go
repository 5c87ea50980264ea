// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"fmt"
	"math"
	"strconv"

	"github.com/aclements/go-gg/ggstat"
	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-moremath/stats"
	"github.com/aclements/go-moremath/vec"
	"gonum.org/v1/gonum/stat/distuv"
)

// kdePoints is the number of points at which densities are evaluated.
const kdePoints = 200

// spread reports whether xs has at least two distinct values.
func spread(xs []float64) bool {
	lo, hi := stats.Bounds(xs)
	return hi > lo
}

// sampleGrouping returns a grouping with one table per sample that
// has spread, with the sample in column "x". ids maps each group back
// to its sample index.
func sampleGrouping(samples [][]float64) (g table.Grouping, gids []table.GroupID, ids []int) {
	gb := table.NewGroupingBuilder(nil)
	for i, xs := range samples {
		if !spread(xs) {
			continue
		}
		gid := table.RootGroupID.Extend(strconv.Itoa(i))
		gb.Add(gid, new(table.Builder).Add("x", xs).Done())
		gids = append(gids, gid)
		ids = append(ids, i)
	}
	return gb.Done(), gids, ids
}

// A curve is a function sampled at increasing x.
type curve struct {
	x, y []float64
}

// densities estimates the density of each sample with a Gaussian KDE
// cut at the data range. With common set, every curve shares one grid
// spanning all samples; otherwise each spans its own sample. If
// cumulative is set the curves are CDFs. Samples without two distinct
// values get an empty curve.
func densities(samples [][]float64, common, cumulative bool) []curve {
	out := make([]curve, len(samples))
	g, gids, ids := sampleGrouping(samples)
	if len(gids) == 0 {
		return out
	}
	// A Widen of 1 spans exactly the data.
	g = ggstat.Density{
		X:      "x",
		N:      kdePoints,
		Domain: ggstat.DomainData{Widen: 1, SplitGroups: !common},
		Kernel: stats.GaussianKernel,
	}.F(g)
	col := "probability density"
	if cumulative {
		col = "cumulative density"
	}
	for k, gid := range gids {
		t := g.Table(gid)
		out[ids[k]] = curve{t.MustColumn("x").([]float64), t.MustColumn(col).([]float64)}
	}
	return out
}

// ecdfs returns the empirical CDF of each sample as a step function:
// each x appears twice, first at the level before the step.
func ecdfs(samples [][]float64) []curve {
	out := make([]curve, len(samples))
	gb := table.NewGroupingBuilder(nil)
	var gids []table.GroupID
	var ids []int
	for i, xs := range samples {
		if len(xs) == 0 {
			continue
		}
		gid := table.RootGroupID.Extend(strconv.Itoa(i))
		gb.Add(gid, new(table.Builder).Add("x", xs).Done())
		gids, ids = append(gids, gid), append(ids, i)
	}
	if len(gids) == 0 {
		return out
	}
	g := ggstat.ECDF{X: "x", Domain: ggstat.DomainData{Widen: 1}}.F(gb.Done())
	for k, gid := range gids {
		t := g.Table(gid)
		xs := t.MustColumn("x").([]float64)
		ds := t.MustColumn("cumulative density").([]float64)
		var c curve
		prev := 0.0
		for i, x := range xs {
			c.x = append(c.x, x, x)
			c.y = append(c.y, prev, ds[i])
			prev = ds[i]
		}
		out[ids[k]] = c
	}
	return out
}

// stackCurves arranges curves evaluated on a common grid according
// to multiple (layer, stack, or fill) and returns the lower and upper
// bound of each. Empty curves stay empty.
func stackCurves(multiple string, curves []curve) (lo, hi []curve, err error) {
	lo, hi = make([]curve, len(curves)), make([]curve, len(curves))
	var grid []float64
	for _, c := range curves {
		if len(c.x) > 0 {
			grid = c.x
			break
		}
	}
	for i, c := range curves {
		hi[i] = curve{c.x, append([]float64(nil), c.y...)}
		lo[i] = curve{c.x, make([]float64, len(c.y))}
	}
	switch multiple {
	case "layer":
		return lo, hi, nil
	case "stack", "fill":
	default:
		return nil, nil, fmt.Errorf("unknown multiple %q", multiple)
	}
	for j := range grid {
		total := 0.0
		for _, c := range curves {
			if len(c.y) > 0 {
				total += c.y[j]
			}
		}
		base := 0.0
		for i, c := range curves {
			if len(c.y) == 0 {
				continue
			}
			h := c.y[j]
			if multiple == "fill" {
				if total > 0 {
					h /= total
				} else {
					h = 0
				}
			}
			lo[i].y[j], hi[i].y[j] = base, base+h
			base += h
		}
	}
	return lo, hi, nil
}

// kde2 evaluates a product-Gaussian KDE of the points (xs[i], ys[i])
// on an n x n grid spanning the data. It returns the grid coordinates
// and the density at each (gx[i], gy[j]) in d[j][i].
func kde2(xs, ys []float64, n int) (gx, gy []float64, d [][]float64) {
	hx := stats.BandwidthScott(stats.Sample{Xs: xs})
	hy := stats.BandwidthScott(stats.Sample{Xs: ys})
	xlo, xhi := stats.Bounds(xs)
	ylo, yhi := stats.Bounds(ys)
	gx, gy = vec.Linspace(xlo, xhi, n), vec.Linspace(ylo, yhi, n)
	d = make([][]float64, n)
	norm := distuv.UnitNormal
	for j := range d {
		d[j] = make([]float64, n)
		for i := range d[j] {
			sum := 0.0
			for k := range xs {
				sum += norm.Prob((gx[i]-xs[k])/hx) * norm.Prob((gy[j]-ys[k])/hy)
			}
			d[j][i] = sum / (float64(len(xs)) * hx * hy)
		}
	}
	return
}

// cumulate2 replaces d with its two-dimensional running sum.
func cumulate2(d [][]float64) {
	for j := range d {
		for i := range d[j] {
			if i > 0 {
				d[j][i] += d[j][i-1]
			}
		}
	}
	for j := 1; j < len(d); j++ {
		for i := range d[j] {
			d[j][i] += d[j-1][i]
		}
	}
}

// pairs returns the rows where both xs and ys are present.
func pairs(xs, ys []float64, rows []int) (px, py []float64) {
	for _, r := range rows {
		if math.IsNaN(xs[r]) || math.IsNaN(ys[r]) {
			continue
		}
		px, py = append(px, xs[r]), append(py, ys[r])
	}
	return
}
