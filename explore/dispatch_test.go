// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package explore

import (
	"errors"
	"math"
	"testing"

	"github.com/aclements/go-gg/table"
)

// render resolves defaults for tag on t, overrides them with set, and
// renders the result into a new recorder.
func render(t *testing.T, tab *table.Table, tag Tag, set Values) call {
	t.Helper()
	tab = Prepare(tab)
	vals := Resolve(Controls(tab, MustLookup(tag), false), nil)
	for k, v := range set {
		vals[k] = v
	}
	var r recorder
	if err := Render(&r, tab, Request{Tag: tag, Values: vals}); err != nil {
		t.Fatalf("Render(%s, %v): %v", tag, vals, err)
	}
	if len(r.calls) != 1 {
		t.Fatalf("Render(%s) made %d calls; want 1", tag, len(r.calls))
	}
	return r.calls[0]
}

func TestRenderBars(t *testing.T) {
	c := render(t, dataset1(), Bars, nil)
	if want := (CountArgs{X: "C", Hue: "C", BarLabels: true}); c.name != "CountPlot" || c.args != want {
		t.Errorf("bars = %s %+v; want CountPlot %+v", c.name, c.args, want)
	}

	c = render(t, dataset1(), Bars, Values{"var_x": "C", "hue": "D", "tplot": "heatmap"})
	if c.name != "Heatmap" {
		t.Fatalf("bars heatmap called %s", c.name)
	}
	a := c.args.(HeatmapArgs)
	if !a.Annot || a.Cmap != "viridis" || a.XLabel != "D" || a.YLabel != "C" {
		t.Errorf("heatmap args = %+v", a)
	}
	m := c.m
	if !de([]string{"x", "y", "z"}, m.Rows) || !de([]string{"cat", "dog", "bird"}, m.Cols) {
		t.Errorf("heatmap labels = %v x %v", m.Rows, m.Cols)
	}
	total := 0.0
	for i := range m.Rows {
		for j := range m.Cols {
			if v := m.At(i, j); !math.IsNaN(v) {
				total += v
			}
		}
	}
	if total != 99 {
		t.Errorf("heatmap counts sum to %v; want 99", total)
	}
}

func TestRenderBoxes(t *testing.T) {
	c := render(t, dataset1(), Boxes, Values{"no_hue": true})
	if a := c.args.(BoxArgs); c.name != "BoxPlot" || a.Hue != "" || a.Palette != "Set2" {
		t.Errorf("boxes no_hue = %s %+v", c.name, c.args)
	}

	// Split violins need exactly two hue levels.
	c = render(t, dataset1(), Boxes, Values{"tplot": "violin", "hue": "D"})
	if a := c.args.(ViolinArgs); a.Split || a.Inner != "quartile" {
		t.Errorf("violin with 3 hue levels = %+v", a)
	}
	two := new(table.Builder).
		Add("g", []string{"a", "b", "a", "b"}).
		Add("y", []float64{1, 2, 3, 4}).
		Done()
	c = render(t, two, Boxes, Values{"tplot": "violin"})
	if a := c.args.(ViolinArgs); !a.Split {
		t.Errorf("violin with 2 hue levels = %+v", a)
	}

	c = render(t, dataset1(), Boxes, Values{"tplot": "lineplot"})
	want := LineArgs{X: "C", Y: "A", Hue: "C", Palette: "Set2", Estimator: "mean", ErrStyle: "bars", CI: 68}
	if c.args != want {
		t.Errorf("lineplot = %+v; want %+v", c.args, want)
	}
}

func TestRenderRidges(t *testing.T) {
	c := render(t, dataset1(), Ridges, Values{"var_x": "D", "hue_var": "C", "no_hue": true})
	a := c.args.(RidgeArgs)
	if a.Row != "D" || a.Hue != "D" || a.X != "A" || !a.Fill || a.Alpha != 0.5 {
		t.Errorf("ridges no_hue = %+v", a)
	}
	c = render(t, dataset1(), Ridges, Values{"var_x": "D", "hue_var": "C"})
	if a := c.args.(RidgeArgs); a.Hue != "C" {
		t.Errorf("ridges hue = %q; want C", a.Hue)
	}
}

func TestRenderDensity2(t *testing.T) {
	c := render(t, dataset1(), Density2, nil)
	if a := c.args.(DisArgs); a.X != "A" || a.Y != "" || a.Col != "" {
		t.Errorf("density 2 with x == y = %+v", a)
	}
	c = render(t, dataset1(), Density2, Values{"var_y": "B", "facet": true, "col_var": "D", "kind": "kde"})
	want := DisArgs{X: "A", Y: "B", Hue: "C", Col: "D", Palette: "Set2", Kind: "kde"}
	if c.args != want {
		t.Errorf("density 2 = %+v; want %+v", c.args, want)
	}
}

func TestRenderScatter(t *testing.T) {
	c := render(t, dataset1(), Scatter, Values{"var_x": "A", "var_y": "B", "hue": "C", "alpha": 0.8})
	want := ScatterArgs{X: "A", Y: "B", Hue: "C", Size: "A", Alpha: 0.8}
	if c.args != want {
		t.Errorf("scatter = %+v; want %+v", c.args, want)
	}
	c = render(t, dataset1(), Scatter, Values{"style": "D", "use_style": true})
	if a := c.args.(ScatterArgs); a.Style != "D" {
		t.Errorf("scatter use_style: Style = %q; want D", a.Style)
	}
}

func TestRenderCatplotRegression(t *testing.T) {
	c := render(t, dataset1(), Catplot, Values{"var_x": "A", "var_y": "D", "col": "C"})
	if a := c.args.(CatArgs); a.Col != "" || a.Kind != "strip" {
		t.Errorf("catplot without facet = %+v", a)
	}
	c = render(t, dataset1(), Catplot, Values{"col": "C", "facet": true})
	if a := c.args.(CatArgs); a.Col != "C" {
		t.Errorf("catplot facet: Col = %q; want C", a.Col)
	}

	c = render(t, dataset1(), Regression, Values{"var_y": "B", "order": "2"})
	want := LMArgs{X: "A", Y: "B", Hue: "C", Order: 2, CI: 95}
	if c.args != want {
		t.Errorf("regression = %+v; want %+v", c.args, want)
	}
	c = render(t, dataset1(), Regression, Values{"use_hue": false, "ci": "0"})
	if a := c.args.(LMArgs); a.Hue != "" || a.CI != 0 {
		t.Errorf("regression without hue = %+v", a)
	}
}

func TestRenderCorrelation(t *testing.T) {
	n := 20
	x, y, k := make([]float64, n), make([]int, n), make([]float64, n)
	for i := range x {
		x[i] = float64(i)
		y[i] = 2*i + 1
		k[i] = 7
	}
	tab := new(table.Builder).Add("x", x).Add("const", k).Add("y", y).Done()

	c := render(t, tab, Correlation, nil)
	if c.name != "ClusterMap" {
		t.Fatalf("correlation called %s", c.name)
	}
	if !de([]string{"x", "y"}, c.m.Rows) || !de([]string{"x", "y"}, c.m.Cols) {
		t.Errorf("correlation labels = %v x %v; constant column should be dropped", c.m.Rows, c.m.Cols)
	}
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			if v := c.m.At(i, j); math.Abs(v-1) > 1e-9 {
				t.Errorf("corr[%d][%d] = %v; want 1", i, j, v)
			}
		}
	}
	if a := c.args.(ClusterArgs); !a.Annot || a.Cmap != "coolwarm" {
		t.Errorf("correlation args = %+v", a)
	}
}

func TestDropConstant(t *testing.T) {
	nan := math.NaN()
	tab := new(table.Builder).
		Add("x", []float64{1, 2, 3}).
		Add("const", []float64{7, nan, 7}).
		Add("empty", []float64{nan, nan, nan}).
		Add("blank", []string{"", "", ""}).
		Add("s", []string{"a", "a", "a"}).
		Done()
	got := DropConstant(tab).Columns()
	if want := []string{"x", "empty", "blank"}; !de(want, got) {
		t.Errorf("DropConstant kept %v; want %v", got, want)
	}
}

func TestRenderClustermap(t *testing.T) {
	c := render(t, dataset2(), Clustermap, Values{"z_score": "1"})
	a := c.args.(ClusterArgs)
	if a.ZScore != Cols || a.StandardScale != NoAxis {
		t.Errorf("clustermap args = %+v", a)
	}
	if !de([]string{"X", "Y"}, c.m.Cols) || len(c.m.Rows) != 50 {
		t.Errorf("clustermap matrix is %d x %v", len(c.m.Rows), c.m.Cols)
	}
}

func TestRenderMissingno(t *testing.T) {
	for tplot, want := range map[string]string{
		"matrix":     "MissingMatrix",
		"bars":       "MissingBar",
		"heatmap":    "MissingHeatmap",
		"dendrogram": "MissingDendrogram",
	} {
		if c := render(t, dataset1(), Missingno, Values{"tplot": tplot}); c.name != want {
			t.Errorf("missingno %s called %s; want %s", tplot, c.name, want)
		}
	}
	if c := render(t, dataset1(), Pairplot, nil); c.args != (PairArgs{Hue: "C", DiagKind: "kde"}) {
		t.Errorf("pairplot args = %+v", c.args)
	}
}

func TestRenderErrors(t *testing.T) {
	tab := Prepare(dataset1())
	vals := Resolve(Controls(tab, MustLookup(Scatter), false), nil)
	var r recorder

	vals["var_x"] = "gone"
	var serr *StaleError
	if err := Render(&r, tab, Request{Tag: Scatter, Values: vals}); !errors.As(err, &serr) || serr.Column != "gone" {
		t.Errorf("stale column: got %v", err)
	}
	vals["var_x"] = "C"
	if err := Render(&r, tab, Request{Tag: Scatter, Values: vals}); !errors.As(err, &serr) {
		t.Errorf("categorical column in numeric parameter: got %v", err)
	}
	if err := Render(&r, tab, Request{Tag: Scatter, Values: vals, Relaxed: true}); err != nil {
		t.Errorf("relaxed render: %v", err)
	}

	vals["var_x"] = "A"
	vals["alpha"] = "opaque"
	var verr *ValueError
	if err := Render(&r, tab, Request{Tag: Scatter, Values: vals}); !errors.As(err, &verr) {
		t.Errorf("bad slider value: got %v", err)
	}
	delete(vals, "alpha")
	if err := Render(&r, tab, Request{Tag: Scatter, Values: vals}); !errors.As(err, &verr) {
		t.Errorf("missing value: got %v", err)
	}
	if len(r.calls) != 1 {
		t.Errorf("%d primitives called; want 1", len(r.calls))
	}

	shouldPanic(t, `unknown plot tag "pie"`, func() {
		Render(&r, tab, Request{Tag: "pie", Values: Values{}})
	})
}
