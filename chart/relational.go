// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"errors"
	"math"

	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-moremath/stats"

	"github.com/aclements/go-explore/explore"
)

var errNoPoints = errors.New("no rows with both x and y")

// ScatterPlot draws a point for each row with both a.X and a.Y. Points
// are colored by a.Hue and sized by a.Size. gg has no point shapes, so
// a.Style is shown as a tooltip on each point instead.
func (c *Charts) ScatterPlot(t *table.Table, a explore.ScatterArgs) error {
	return c.draw("scatter", func() ([]*Figure, error) {
		xs, xlevels := numbers(t, a.X)
		ys, ylevels := numbers(t, a.Y)
		hue := hueOf(t, a.Hue)
		var style []string
		if a.Style != "" {
			style = labelsOf(t, a.Style)
		}
		var size []float64
		if a.Size != "" {
			size, _ = numbers(t, a.Size)
		}

		var b struct {
			x, y, size, opacity []float64
			hue, style          []string
		}
		for r := range xs {
			if math.IsNaN(xs[r]) || math.IsNaN(ys[r]) {
				continue
			}
			if size != nil && math.IsNaN(size[r]) {
				continue
			}
			b.x, b.y = append(b.x, xs[r]), append(b.y, ys[r])
			b.opacity = append(b.opacity, a.Alpha)
			h := ""
			if hue != nil {
				h = hue[r]
			}
			b.hue = append(b.hue, h)
			if size != nil {
				b.size = append(b.size, size[r])
			}
			if style != nil {
				b.style = append(b.style, style[r])
			}
		}
		if len(b.x) == 0 {
			return nil, errNoPoints
		}

		tb := new(table.Builder).
			Add("x", b.x).Add("y", b.y).
			Add("hue", b.hue).Add("opacity", b.opacity)
		pts := gg.LayerPoints{X: "x", Y: "y", Color: "hue", Opacity: "opacity"}
		if size != nil {
			tb.Add("size", b.size)
			pts.Size = "size"
		}
		if style != nil {
			tb.Add("style", b.style)
		}
		p := newPlot(tb.Done(), a.X, a.Y)
		axisScale(p, "x", b.x, xlevels)
		axisScale(p, "y", b.y, ylevels)
		hueScale(p, "stroke", Qualitative("deep"))
		p.SetScale("opacity", gg.NewIdentityScale())
		p.Add(pts)
		if style != nil {
			p.Add(gg.LayerTooltips{X: "x", Y: "y", Label: "style"})
		}
		return one(p, nil)
	})
}

// LMPlot draws the points of a.X and a.Y with a polynomial fit of
// degree a.Order for each a.Hue level, surrounded by an a.CI percent
// confidence band.
func (c *Charts) LMPlot(t *table.Table, a explore.LMArgs) error {
	return c.draw("regression", func() ([]*Figure, error) {
		xs, _ := numbers(t, a.X)
		ys, _ := numbers(t, a.Y)
		levels, groupRows := groups(t.Len(), hueOf(t, a.Hue))
		order := a.Order
		if order < 1 {
			order = 1
		}

		px, py := make([][]float64, len(levels)), make([][]float64, len(levels))
		n := 0
		for h, rows := range groupRows {
			px[h], py[h] = pairs(xs, ys, rows)
			n += len(px[h])
		}
		if n == 0 {
			return nil, errNoPoints
		}
		fits := polyFits(px, py, order)

		g := new(geom)
		for h := range levels {
			if a.CI > 0 && len(fits[h].x) > 0 {
				lo, hi, ok := polyBand(px[h], py[h], order, float64(a.CI), fits[h].x)
				if ok {
					bx, by := band(curve{fits[h].x, lo}, curve{fits[h].x, hi})
					g.path(layerFill, levels[h], bx, by)
				}
			}
		}
		for h := range levels {
			g.points(levels[h], px[h], py[h])
			if len(fits[h].x) > 0 {
				g.path(layerLine, levels[h], fits[h].x, fits[h].y)
			}
		}
		return one(g.plot(a.X, a.Y, withAlpha("deep", 0.6)), nil)
	})
}

// axisScale sets the scale of aes to span xs, widened if xs has a
// single value. If levels is not nil, xs are level indexes.
func axisScale(p *gg.Plot, aes string, xs []float64, levels []string) {
	s := gg.NewLinearScaler()
	if levels != nil {
		s = catScaler(levels)
	}
	lo, hi := padSpan(stats.Bounds(xs))
	s.Include(lo).Include(hi)
	p.SetScale(aes, s)
}
