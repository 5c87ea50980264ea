// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package explore

import (
	"errors"
	"fmt"

	"github.com/aclements/go-gg/table"
)

// ErrUnavailable is returned by Render when a required column
// parameter has no legal columns in the table.
var ErrUnavailable = errors.New("plot unavailable")

// StaleError is returned by Render when a column parameter names a
// column that is missing from the table or not legal for the
// parameter.
type StaleError struct {
	Param, Column string
}

func (e *StaleError) Error() string {
	return fmt.Sprintf("%s: column %q is not a legal choice for this table", e.Param, e.Column)
}

// Request is a fully resolved plot selection.
type Request struct {
	Tag     Tag
	Values  Values
	Relaxed bool
}

const palette = "Set2"

// Render draws the plot described by req from table t using p.
//
// Render checks every column parameter against its domain in t before
// drawing anything, so it never calls p with a stale column. Render
// panics if req.Tag is not a known plot tag.
func Render(p Primitives, t *table.Table, req Request) error {
	spec := MustLookup(req.Tag)
	if err := check(t, spec, req); err != nil {
		return err
	}
	v := req.Values

	switch spec.Tag {
	case Bars:
		x, hue := v.String("var_x"), v.String("hue")
		if v.String("tplot") == "heatmap" && hue != "" {
			return p.Heatmap(ValueCounts(t, x, hue), HeatmapArgs{
				Cmap:     "viridis",
				Annot:    true,
				Format:   "%.0f",
				ColorBar: false,
				XLabel:   hue,
				YLabel:   x,
			})
		}
		return p.CountPlot(t, CountArgs{X: x, Hue: hue, BarLabels: true})

	case Boxes:
		x, y, hue := v.String("var_x"), v.String("var_y"), v.String("hue")
		noHue := v.Bool("no_hue")
		if noHue {
			hue = ""
		}
		switch v.String("tplot") {
		case "boxplot":
			return p.BoxPlot(t, BoxArgs{X: x, Y: y, Hue: hue, Palette: palette})
		case "violin":
			split := hue != "" && NumLevels(t, hue) == 2
			return p.ViolinPlot(t, ViolinArgs{X: x, Y: y, Hue: hue, Palette: palette, Split: split, Cut: 0, Inner: "quartile"})
		case "lineplot":
			return p.LinePlot(t, LineArgs{X: x, Y: y, Hue: hue, Palette: palette, Estimator: "mean", ErrStyle: "bars", CI: 68})
		}

	case Ridges:
		x, hue := v.String("var_x"), v.String("hue_var")
		if v.Bool("no_hue") {
			hue = x
		}
		return p.RidgePlot(t, RidgeArgs{Row: x, X: v.String("var_y"), Hue: hue, Palette: palette, Fill: true, Alpha: 0.5, Cut: 0})

	case Histogram:
		return p.HistPlot(t, HistArgs{
			X:          v.String("var_x"),
			Hue:        v.String("hue_var"),
			Palette:    palette,
			Stat:       v.String("stat"),
			Element:    v.String("element"),
			Multiple:   v.String("multiple"),
			CommonNorm: v.Bool("common_norm"),
			Cumulative: v.Bool("cumulative"),
		})

	case Density1:
		return p.KDEPlot(t, KDEArgs{
			X:          v.String("var_x"),
			Hue:        v.String("hue_var"),
			Palette:    palette,
			Multiple:   v.String("multiple"),
			CommonNorm: v.Bool("common_norm"),
			Cumulative: v.Bool("cumulative"),
			Fill:       true,
			Cut:        0,
		})

	case Density2:
		a := DisArgs{
			X:          v.String("var_x"),
			Y:          v.String("var_y"),
			Hue:        v.String("hue_var"),
			Palette:    palette,
			Kind:       v.String("kind"),
			Rug:        v.Bool("rug"),
			CommonNorm: v.Bool("common_norm"),
			Cumulative: v.Bool("cumulative"),
		}
		if a.X == a.Y {
			a.Y = ""
		}
		if v.Bool("facet") {
			a.Col = v.String("col_var")
		}
		return p.DisPlot(t, a)

	case Scatter:
		a := ScatterArgs{
			X:     v.String("var_x"),
			Y:     v.String("var_y"),
			Hue:   v.String("hue"),
			Size:  v.String("size"),
			Alpha: v.Float("alpha"),
		}
		if v.Bool("use_style") {
			a.Style = v.String("style")
		}
		return p.ScatterPlot(t, a)

	case Catplot:
		a := CatArgs{
			X:    v.String("var_x"),
			Y:    v.String("var_y"),
			Hue:  v.String("hue"),
			Kind: v.String("kind"),
		}
		if v.Bool("facet") {
			a.Col = v.String("col")
		}
		return p.CatPlot(t, a)

	case Regression:
		a := LMArgs{
			X:     v.String("var_x"),
			Y:     v.String("var_y"),
			Order: v.Int("order"),
			CI:    v.Int("ci"),
		}
		if v.Bool("use_hue") {
			a.Hue = v.String("hue_var")
		}
		return p.LMPlot(t, a)

	case Correlation:
		return p.ClusterMap(Correlate(SelectNumeric(DropConstant(t))), ClusterArgs{Annot: true, Cmap: "coolwarm"})

	case Clustermap:
		m := NumericMatrix(SelectNumeric(DropConstant(t)))
		return p.ClusterMap(m, ClusterArgs{
			Annot:         true,
			Cmap:          "coolwarm",
			ZScore:        parseAxis(v.String("z_score")),
			StandardScale: parseAxis(v.String("standard_scale")),
		})

	case Pairplot:
		return p.PairPlot(t, PairArgs{Hue: v.String("hue_var"), DiagKind: v.String("kind")})

	case Missingno:
		switch v.String("tplot") {
		case "matrix":
			return p.MissingMatrix(t)
		case "bars":
			return p.MissingBar(t)
		case "heatmap":
			return p.MissingHeatmap(t)
		case "dendrogram":
			return p.MissingDendrogram(t)
		}
	}
	panic(fmt.Sprintf("no renderer for plot %q with %v", spec.Tag, v))
}

// check verifies that req's values are legal for t.
func check(t *table.Table, spec *Spec, req Request) error {
	for _, c := range Controls(t, spec, req.Relaxed) {
		v, ok := req.Values[c.Name]
		if !ok {
			return &ValueError{c.Name, nil}
		}
		if c.Kind == ColumnParam {
			name, _ := v.(string)
			if c.Disabled || name == "" {
				if c.Optional {
					continue
				}
				return fmt.Errorf("%s: no %s columns: %w", c.Name, c.Category, ErrUnavailable)
			}
			if !c.Allows(name) {
				return &StaleError{c.Name, name}
			}
			continue
		}
		if !c.Allows(v) {
			return &ValueError{c.Name, v}
		}
	}
	return nil
}

func parseAxis(s string) Axis {
	switch s {
	case "0":
		return Rows
	case "1":
		return Cols
	}
	return NoAxis
}
