// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"errors"
	"fmt"
	"math"

	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-moremath/stats"

	"github.com/aclements/go-explore/explore"
)

// PairPlot draws a grid with one row and column per numeric column of
// t. Off-diagonal panels are scatter plots of one column against
// another and diagonal panels show each column's distribution, drawn
// as a.DiagKind ("kde" or "hist") and rescaled to the column's range.
func (c *Charts) PairPlot(t *table.Table, a explore.PairArgs) error {
	return c.draw("pairplot", func() ([]*Figure, error) {
		var vars []string
		for _, col := range explore.Classify(t, explore.Numeric) {
			if col != a.Hue {
				vars = append(vars, col)
			}
		}
		if len(vars) == 0 {
			return nil, errors.New("no numeric columns")
		}
		hue := hueOf(t, a.Hue)
		data := make([][]float64, len(vars))
		for i, v := range vars {
			data[i], _ = numbers(t, v)
		}
		levels, groupRows := groups(t.Len(), hue)

		g := new(geom)
		for i, vy := range vars {
			g.Row = vy
			for j, vx := range vars {
				g.Col = vx
				if i != j {
					for h, rows := range groupRows {
						px, py := pairs(data[j], data[i], rows)
						g.points(levels[h], px, py)
					}
					continue
				}

				diag := new(geom)
				var top float64
				var err error
				switch a.DiagKind {
				case "kde":
					top, err = kde(diag, data[i], hue, nil, kdeOpts{"layer", false, false, true})
				case "hist":
					top, err = histogram(diag, data[i], hue, nil, histOpts{"count", "bars", "layer", false, false})
				default:
					err = fmt.Errorf("unknown diagonal kind %q", a.DiagKind)
				}
				if err != nil {
					return nil, err
				}
				lo, hi := stats.Bounds(present(data[i]))
				if math.IsNaN(lo) {
					continue
				}
				g.extent(lo, hi, lo, hi)
				if top <= 0 || !(hi > lo) {
					continue
				}
				g.merge(diag, func(y float64) float64 { return lo + (hi-lo)*y/top })
			}
		}
		p := g.plot("", "", withAlpha("deep", 0.6),
			gg.FacetX{Col: "col", SplitXScales: true},
			gg.FacetY{Col: "row", SplitYScales: true})
		return one(p, nil)
	})
}
