// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-moremath/stats"

	"github.com/aclements/go-explore/dataset"
	"github.com/aclements/go-explore/explore"
	"github.com/aclements/go-explore/internal/hclust"
)

// encodeDisplay encodes every figure it is shown and keeps the
// encoding of the last one.
type encodeDisplay struct {
	n    int
	last bytes.Buffer
}

func (d *encodeDisplay) Show(f *Figure) error {
	d.n++
	d.last.Reset()
	return f.Encode(&d.last)
}

func TestPad(t *testing.T) {
	g := new(geom)
	g.points("", []float64{2}, []float64{0})
	g.Col = "c"
	g.path(layerLine, "", []float64{0, 1}, []float64{5, 6})
	g.pad()
	if want := []string{layerPoint, layerLine, layerFrame}; !reflect.DeepEqual(g.layers, want) {
		t.Errorf("layers = %v; want %v", g.layers, want)
	}
	// Only the single-point panel is widened.
	if want := []float64{2, 0, 1, 1, 3}; !reflect.DeepEqual(g.x, want) {
		t.Errorf("x = %v; want %v", g.x, want)
	}
	if want := []float64{0, 5, 6, -1, 1}; !reflect.DeepEqual(g.y, want) {
		t.Errorf("y = %v; want %v", g.y, want)
	}
	if g.col[3] != "" || g.col[4] != "" || g.Col != "c" {
		t.Errorf("frame facets = %q, current %q", g.col, g.Col)
	}

	g = new(geom)
	g.pad()
	if !reflect.DeepEqual(g.x, []float64{0, 1}) || !reflect.DeepEqual(g.y, []float64{0, 1}) {
		t.Errorf("empty geom framed at %v, %v; want [0 1], [0 1]", g.x, g.y)
	}

	for _, test := range []struct{ lo, hi, wlo, whi float64 }{
		{1, 2, 1, 2},
		{4, 4, 2, 6},
		{-2, -2, -3, -1},
		{0, 0, -1, 1},
		{math.NaN(), math.NaN(), 0, 1},
	} {
		lo, hi := padSpan(test.lo, test.hi)
		if lo != test.wlo || hi != test.whi {
			t.Errorf("padSpan(%v, %v) = %v, %v; want %v, %v", test.lo, test.hi, lo, hi, test.wlo, test.whi)
		}
	}
}

func TestKDESingletons(t *testing.T) {
	g := new(geom)
	top, err := kde(g, []float64{1, 2, 3, math.NaN()}, []string{"a", "b", "c", "d"}, nil, kdeOpts{"layer", false, false, true})
	if err != nil {
		t.Fatal(err)
	}
	if top != 0 {
		t.Errorf("top = %v; want 0", top)
	}
	if want := []string{layerFrame}; !reflect.DeepEqual(g.layers, want) {
		t.Errorf("layers = %v; want %v", g.layers, want)
	}
	if lo, hi := stats.Bounds(g.x); lo != 1 || hi != 3 {
		t.Errorf("x span = [%v, %v]; want [1, 3]", lo, hi)
	}

	// One group with spread is drawn and the rest skipped.
	g = new(geom)
	top, err = kde(g, []float64{1, 2, 3, 4}, []string{"a", "a", "b", "c"}, nil, kdeOpts{"stack", false, false, false})
	if err != nil {
		t.Fatal(err)
	}
	if top <= 0 || !reflect.DeepEqual(g.layers, []string{layerLine}) {
		t.Errorf("top = %v, layers = %v", top, g.layers)
	}
	for _, h := range g.hue {
		if h != "a" {
			t.Fatalf("drew curve for hue %q", h)
		}
	}
}

// singletons returns a table in which every level of the numeric
// column "id" has one row.
func singletons() *table.Table {
	n := 20
	x, y, id := make([]float64, n), make([]float64, n), make([]float64, n)
	for i := range x {
		x[i] = float64(i%7) + 0.25*float64(i)
		y[i] = math.Sin(float64(i))
		id[i] = float64(i)
	}
	return new(table.Builder).Add("x", x).Add("y", y).Add("id", id).Done()
}

func TestSingletonHues(t *testing.T) {
	tab := singletons()
	d := new(encodeDisplay)
	c := New(d, 0, 0)
	for _, test := range []struct {
		name string
		draw func() error
	}{
		{"density", func() error {
			return c.KDEPlot(tab, explore.KDEArgs{X: "x", Hue: "id", Palette: "Set2", Multiple: "layer", Fill: true})
		}},
		{"stacked density", func() error {
			return c.KDEPlot(tab, explore.KDEArgs{X: "x", Hue: "id", Palette: "Set2", Multiple: "fill", CommonNorm: true})
		}},
		{"distribution", func() error {
			return c.DisPlot(tab, explore.DisArgs{X: "x", Hue: "id", Palette: "Set2", Kind: "kde", Rug: true})
		}},
		{"faceted distribution", func() error {
			return c.DisPlot(tab, explore.DisArgs{X: "x", Hue: "id", Col: "id", Palette: "Set2", Kind: "kde"})
		}},
		{"bivariate", func() error {
			return c.DisPlot(tab, explore.DisArgs{X: "x", Y: "y", Hue: "id", Palette: "Set2", Kind: "kde"})
		}},
		{"ridges", func() error {
			return c.RidgePlot(tab, explore.RidgeArgs{Row: "id", X: "x", Hue: "id", Palette: "Set2", Fill: true, Alpha: 0.5})
		}},
		{"pairplot", func() error {
			return c.PairPlot(tab, explore.PairArgs{Hue: "id", DiagKind: "kde"})
		}},
		{"violin", func() error {
			return c.ViolinPlot(tab, explore.ViolinArgs{X: "id", Y: "x", Palette: "Set2", Inner: "quartile"})
		}},
		{"regression", func() error {
			return c.LMPlot(tab, explore.LMArgs{X: "x", Y: "y", Hue: "id", Order: 1, CI: 95})
		}},
	} {
		n := d.n
		if err := test.draw(); err != nil {
			t.Errorf("%s: %v", test.name, err)
			continue
		}
		if d.n == n {
			t.Errorf("%s: no figure", test.name)
		}
	}
}

func TestCompleteTable(t *testing.T) {
	tab := new(table.Builder).
		Add("a", []float64{1, 2, 3}).
		Add("b", []string{"x", "y", "z"}).
		Add("c", []int{4, 5, 6}).
		Done()
	d := new(encodeDisplay)
	c := New(d, 0, 0)
	if err := c.MissingHeatmap(tab); err != nil {
		t.Fatalf("MissingHeatmap: %v", err)
	}
	if !strings.Contains(d.last.String(), noPartial) {
		t.Errorf("missing heatmap of a complete table is not labeled %q", noPartial)
	}
	if err := c.MissingDendrogram(tab); err != nil {
		t.Fatalf("MissingDendrogram: %v", err)
	}
	if err := c.MissingBar(tab); err != nil {
		t.Fatalf("MissingBar: %v", err)
	}

	g := new(geom)
	dendrogram(g, hclust.Average([][]float64{{0, 0}, {0, 0}, {0, 0}}))
	if lo, hi := stats.Bounds(g.y); lo != 0 || hi != 1 {
		t.Errorf("zero-height dendrogram spans [%v, %v]; want [0, 1]", lo, hi)
	}
	if lo, hi := stats.Bounds(g.x); lo != -0.5 || hi != 2.5 {
		t.Errorf("dendrogram leaves span [%v, %v]; want [-0.5, 2.5]", lo, hi)
	}
}

func TestSingleCellHeatmap(t *testing.T) {
	m := explore.NewMatrix([]string{"r"}, []string{"c"})
	m.Values[0][0] = 3
	d := new(encodeDisplay)
	err := New(d, 0, 0).Heatmap(m, explore.HeatmapArgs{Cmap: "viridis", Annot: true, Format: "%.0f"})
	if err != nil {
		t.Fatal(err)
	}
	if d.n != 1 {
		t.Errorf("got %d figures; want 1", d.n)
	}
}

// variants returns the values of c to render besides its current
// one.
func variants(c explore.Control) []interface{} {
	var vs []interface{}
	switch c.Kind {
	case explore.ColumnParam, explore.ChoiceParam:
		if c.Disabled {
			return nil
		}
		for _, o := range c.Options {
			vs = append(vs, o)
		}
	case explore.ToggleParam:
		vs = []interface{}{true, false}
	case explore.SliderParam:
		vs = []interface{}{c.Min, c.Max}
	}
	return vs
}

func sampleSession(t *testing.T, ds string, tag explore.Tag, relaxed bool) *explore.Session {
	t.Helper()
	s, err := explore.NewSession(dataset.Samples(1))
	if err != nil {
		t.Fatal(err)
	}
	if err := s.SelectDataset(ds); err != nil {
		t.Fatal(err)
	}
	s.SetRelaxed(relaxed)
	if err := s.SelectPlot(tag); err != nil {
		t.Fatal(err)
	}
	return s
}

// TestRenderSamples draws every plot type of every sample dataset,
// varying one control at a time, and encodes every figure.
func TestRenderSamples(t *testing.T) {
	if testing.Short() {
		t.Skip("renders hundreds of figures")
	}
	d := new(encodeDisplay)
	c := New(d, 0, 0)
	render := func(s *explore.Session, name string) {
		t.Helper()
		n := d.n
		err := s.Render(c)
		switch {
		case err == nil:
			if d.n == n {
				t.Errorf("%s: no figure", name)
			}
		case errors.Is(err, explore.ErrUnavailable),
			errors.Is(err, errBivariateECDF),
			errors.Is(err, errBothScales):
		default:
			t.Errorf("%s: %v", name, err)
		}
	}
	for _, relaxed := range []bool{false, true} {
		for _, ds := range dataset.Samples(1) {
			for _, tag := range explore.Tags() {
				s := sampleSession(t, ds.Name, tag, relaxed)
				name := fmt.Sprintf("%s/%s/relaxed=%v", ds.Name, tag, relaxed)
				render(s, name)
				for _, ctl := range s.Controls() {
					orig := s.Values()[ctl.Name]
					for _, v := range variants(ctl) {
						if err := s.Set(ctl.Name, v); err != nil {
							t.Fatalf("%s: %v", name, err)
						}
						render(s, fmt.Sprintf("%s %s=%v", name, ctl.Name, v))
					}
					if err := s.Set(ctl.Name, orig); err != nil {
						t.Fatalf("%s: %v", name, err)
					}
				}
			}
		}
	}
}

func TestScatterSamples(t *testing.T) {
	s := sampleSession(t, "dataset1", explore.Scatter, false)
	for _, set := range []struct {
		name string
		v    interface{}
	}{
		{"var_x", "A"}, {"var_y", "B"}, {"hue", "C"}, {"size", "A"},
		{"alpha", 0.5}, {"use_style", false},
	} {
		if err := s.Set(set.name, set.v); err != nil {
			t.Fatal(err)
		}
	}
	d := new(encodeDisplay)
	if err := s.Render(New(d, 0, 0)); err != nil {
		t.Fatal(err)
	}
	if d.n != 1 {
		t.Fatalf("got %d figures; want 1", d.n)
	}
	svg := d.last.String()
	if !strings.HasPrefix(strings.TrimSpace(svg), "<?xml") || !strings.Contains(svg, "<svg") {
		t.Errorf("scatter is not SVG: %.80q", svg)
	}
	// One circle per row, at opacity 0.5.
	if n := strings.Count(svg, "opacity:0.5"); n != 100 {
		t.Errorf("%d points at opacity 0.5; want 100", n)
	}
}
