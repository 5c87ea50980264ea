// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chart draws statistical charts with go-gg.
//
// Charts implements explore.Primitives. Each primitive builds one or
// more Figures from a table and hands them to a Display, which decides
// where they go.
package chart

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"reflect"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/table"

	"github.com/aclements/go-explore/explore"
)

// A Figure is one rendered chart. Exactly one of Plot and Image is
// set.
type Figure struct {
	Title string

	// Plot is a go-gg plot, encoded as SVG.
	Plot *gg.Plot

	// Image is a raster chart, encoded as PNG.
	Image image.Image

	// Width and Height are the output size in pixels.
	Width, Height int
}

// Ext returns the file extension for f's encoding.
func (f *Figure) Ext() string {
	if f.Image != nil {
		return ".png"
	}
	return ".svg"
}

// Encode writes f to w as SVG or PNG.
func (f *Figure) Encode(w io.Writer) error {
	if f.Image != nil {
		return png.Encode(w, f.Image)
	}
	return f.Plot.WriteSVG(w, f.Width, f.Height)
}

// A Display receives the figures drawn by Charts.
type Display interface {
	Show(f *Figure) error
}

// Charts draws charts to a Display.
type Charts struct {
	Display Display

	// Width and Height are the default figure size in pixels.
	Width, Height int
}

var _ explore.Primitives = (*Charts)(nil)

// New returns Charts that draw width x height figures to d.
func New(d Display, width, height int) *Charts {
	return &Charts{Display: d, Width: width, Height: height}
}

// size returns the default figure size, which is 640x480 if c does
// not set one.
func (c *Charts) size() (w, h int) {
	w, h = c.Width, c.Height
	if w <= 0 {
		w = 640
	}
	if h <= 0 {
		h = 480
	}
	return
}

// draw builds figures and shows them. go-gg reports bad input by
// panicking, sometimes only when the plot is encoded, so panics from
// both build and Show are returned as errors.
func (c *Charts) draw(name string, build func() ([]*Figure, error)) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%s: %v", name, r)
		}
	}()
	figs, err := build()
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	w, h := c.size()
	for _, f := range figs {
		if f.Width == 0 {
			f.Width = w
		}
		if f.Height == 0 {
			f.Height = h
		}
		if f.Title == "" {
			f.Title = name
		}
		if err := c.Display.Show(f); err != nil {
			return err
		}
	}
	return nil
}

func one(p *gg.Plot, err error) ([]*Figure, error) {
	if err != nil {
		return nil, err
	}
	return []*Figure{{Plot: p}}, nil
}

// numbers returns column col of t as float64s. A string column is
// mapped to the index of each value among the column's levels, which
// are returned so the axis can be labeled; missing strings are NaN.
func numbers(t *table.Table, col string) ([]float64, []string) {
	seq := t.MustColumn(col)
	if reflect.TypeOf(seq).Elem().Kind() != reflect.String {
		var xs []float64
		slice.Convert(&xs, seq)
		return xs, nil
	}
	levels, idx := levelsOf(labelsOf(t, col))
	xs := make([]float64, len(idx))
	for i, k := range idx {
		if k < 0 {
			xs[i] = math.NaN()
		} else {
			xs[i] = float64(k)
		}
	}
	return xs, levels
}

// labelsOf returns column col of t as strings. Missing values are "".
func labelsOf(t *table.Table, col string) []string {
	seq := t.MustColumn(col)
	if ss, ok := seq.([]string); ok {
		return ss
	}
	rv := reflect.ValueOf(seq)
	out := make([]string, rv.Len())
	for i := range out {
		v := rv.Index(i)
		switch v.Kind() {
		case reflect.String:
			out[i] = v.String()
		case reflect.Float32, reflect.Float64:
			if f := v.Float(); !math.IsNaN(f) {
				out[i] = fmt.Sprint(f)
			}
		default:
			out[i] = fmt.Sprint(v.Interface())
		}
	}
	return out
}

// levelsOf returns the distinct non-empty labels in order of first
// appearance and the level index of each label, or -1 for "".
func levelsOf(labels []string) (levels []string, idx []int) {
	pos := make(map[string]int)
	idx = make([]int, len(labels))
	for i, l := range labels {
		if l == "" {
			idx[i] = -1
			continue
		}
		k, ok := pos[l]
		if !ok {
			k = len(levels)
			pos[l] = k
			levels = append(levels, l)
		}
		idx[i] = k
	}
	return
}

// hueOf returns the hue label of each row of t, or nil if hue is "".
func hueOf(t *table.Table, hue string) []string {
	if hue == "" {
		return nil
	}
	return labelsOf(t, hue)
}

// groups splits row indexes by hue label. With no hue, all rows are
// in a single group with an empty label. Rows with a missing hue are
// dropped.
func groups(n int, hue []string) (levels []string, rows [][]int) {
	if hue == nil {
		all := make([]int, n)
		for i := range all {
			all[i] = i
		}
		return []string{""}, [][]int{all}
	}
	levels, idx := levelsOf(hue)
	rows = make([][]int, len(levels))
	for i, k := range idx {
		if k >= 0 {
			rows[k] = append(rows[k], i)
		}
	}
	return levels, rows
}

// pick returns xs at rows, skipping NaNs.
func pick(xs []float64, rows []int) []float64 {
	out := make([]float64, 0, len(rows))
	for _, r := range rows {
		if !math.IsNaN(xs[r]) {
			out = append(out, xs[r])
		}
	}
	return out
}

// scale is a Plotter that sets the scale of an aesthetic.
type scale struct {
	aes string
	s   gg.Scaler
}

func (s scale) Apply(p *gg.Plot) { p.SetScale(s.aes, s.s) }

// catScale labels the integer positions of a continuous axis with
// levels.
func catScale(aes string, levels []string) gg.Plotter {
	return scale{aes, catScaler(levels)}
}

// tileScale is catScale for tiles centered on the level positions.
// The axis always spans every tile, so a single level still has
// width.
func tileScale(aes string, levels []string) gg.Plotter {
	s := catScaler(levels)
	s.Include(-0.5).Include(float64(len(levels)) - 0.5)
	return scale{aes, s}
}

func catScaler(levels []string) gg.ContinuousScaler {
	s := gg.NewLinearScaler()
	s.SetFormatter(func(x float64) string {
		i := int(math.Round(x))
		if math.Abs(x-float64(i)) > 1e-6 || i < 0 || i >= len(levels) {
			return ""
		}
		return levels[i]
	})
	return s
}

// hueScale maps hue labels to the colors of pal on aes.
func hueScale(p *gg.Plot, aes string, pal []color.Color) {
	s := gg.NewOrdinalScale()
	s.Ranger(gg.NewColorRanger(pal))
	p.SetScale(aes, s)
}

// geom accumulates the marks of one figure as a long table with a row
// per vertex. All layers share the table so they share the figure's
// facets and scales.
type geom struct {
	layer    []string
	id       []int
	x, y     []float64
	hue      []string
	label    []string
	row, col []string

	// Row and Col are the facet labels of marks added next.
	Row, Col string

	nextID int
	layers []string
}

// Layer names. Each layer is drawn with one go-gg layer type.
const (
	layerFill  = "fill"  // filled polygons colored by hue
	layerLine  = "line"  // polylines colored by hue
	layerInk   = "ink"   // black polylines
	layerPoint = "point" // points colored by hue
	layerTag   = "tag"   // text labels

	// layerFrame holds invisible points that extend a panel's
	// scales.
	layerFrame = "frame"
)

// use records that layer has marks.
func (g *geom) use(layer string) {
	for _, l := range g.layers {
		if l == layer {
			return
		}
	}
	g.layers = append(g.layers, layer)
}

func (g *geom) add(layer, hue, label string, xs, ys []float64) {
	if len(xs) == 0 {
		return
	}
	g.use(layer)
	for i := range xs {
		g.layer = append(g.layer, layer)
		g.id = append(g.id, g.nextID)
		g.x = append(g.x, xs[i])
		g.y = append(g.y, ys[i])
		g.hue = append(g.hue, hue)
		g.label = append(g.label, label)
		g.row = append(g.row, g.Row)
		g.col = append(g.col, g.Col)
	}
	g.nextID++
}

// path adds a polyline or, for layerFill, a polygon.
func (g *geom) path(layer, hue string, xs, ys []float64) {
	g.add(layer, hue, "", xs, ys)
}

func (g *geom) rect(layer, hue string, x0, x1, y0, y1 float64) {
	g.path(layer, hue, []float64{x0, x0, x1, x1, x0}, []float64{y0, y1, y1, y0, y0})
}

// points adds one point per x, y pair.
func (g *geom) points(hue string, xs, ys []float64) {
	for i := range xs {
		g.add(layerPoint, hue, "", xs[i:i+1], ys[i:i+1])
	}
}

// tag adds a text label at x, y.
func (g *geom) tag(label string, x, y float64) {
	g.add(layerTag, "", label, []float64{x}, []float64{y})
}

// merge adds the marks of o to g under g's current facet labels,
// mapping each y through fy.
func (g *geom) merge(o *geom, fy func(float64) float64) {
	for _, l := range o.layers {
		g.use(l)
	}
	for i := range o.id {
		g.layer = append(g.layer, o.layer[i])
		g.id = append(g.id, g.nextID+o.id[i])
		g.x = append(g.x, o.x[i])
		g.y = append(g.y, fy(o.y[i]))
		g.hue = append(g.hue, o.hue[i])
		g.label = append(g.label, o.label[i])
		g.row = append(g.row, g.Row)
		g.col = append(g.col, g.Col)
	}
	g.nextID += o.nextID
}

// extent makes the current panel span at least x0 to x1 and y0 to y1.
func (g *geom) extent(x0, x1, y0, y1 float64) {
	g.add(layerFrame, "", "", []float64{x0, x1}, []float64{y0, y1})
}

// pad widens every panel whose x or y range is empty or a single
// value, and frames an empty figure, since go-gg can neither lay out
// a plot without marks nor tick an axis of zero span.
func (g *geom) pad() {
	type panel struct{ row, col string }
	type span struct{ x0, x1, y0, y1 float64 }
	spans := make(map[panel]*span)
	var order []panel
	widen := func(lo, hi, v float64) (float64, float64) {
		if math.IsNaN(lo) || v < lo {
			lo = v
		}
		if math.IsNaN(hi) || v > hi {
			hi = v
		}
		return lo, hi
	}
	for i := range g.id {
		k := panel{g.row[i], g.col[i]}
		sp := spans[k]
		if sp == nil {
			nan := math.NaN()
			sp = &span{nan, nan, nan, nan}
			spans[k] = sp
			order = append(order, k)
		}
		if x := g.x[i]; finite(x) {
			sp.x0, sp.x1 = widen(sp.x0, sp.x1, x)
		}
		if y := g.y[i]; finite(y) {
			sp.y0, sp.y1 = widen(sp.y0, sp.y1, y)
		}
	}
	if len(order) == 0 {
		g.extent(0, 1, 0, 1)
		return
	}
	row, col := g.Row, g.Col
	for _, k := range order {
		sp := spans[k]
		x0, x1 := padSpan(sp.x0, sp.x1)
		y0, y1 := padSpan(sp.y0, sp.y1)
		if x0 != sp.x0 || x1 != sp.x1 || y0 != sp.y0 || y1 != sp.y1 {
			g.Row, g.Col = k.row, k.col
			g.extent(x0, x1, y0, y1)
		}
	}
	g.Row, g.Col = row, col
}

// padSpan returns lo, hi, widened around a single value or replaced
// by 0, 1 if there are no values.
func padSpan(lo, hi float64) (float64, float64) {
	switch {
	case math.IsNaN(lo):
		return 0, 1
	case hi > lo:
		return lo, hi
	}
	d := math.Abs(lo) / 2
	if d == 0 {
		d = 1
	}
	return lo - d, hi + d
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

func (g *geom) len() int { return len(g.id) }

func (g *geom) table() *table.Table {
	return new(table.Builder).
		Add("layer", g.layer).
		Add("shape", g.id).
		Add("x", g.x).
		Add("y", g.y).
		Add("hue", g.hue).
		Add("label", uniqueLabels(g.label)).
		Add("row", g.row).
		Add("col", g.col).
		Done()
}

// plot returns a plot of g's marks. pal colors the hue column. opts,
// typically facets and scales, are applied before any layer.
func (g *geom) plot(xlabel, ylabel string, pal []color.Color, opts ...gg.Plotter) *gg.Plot {
	g.pad()
	p := newPlot(g.table(), xlabel, ylabel)
	p.Add(opts...)
	hueScale(p, "fill", pal)
	hueScale(p, "stroke", pal)
	for _, l := range g.layers {
		p.Save()
		p.SetData(table.FilterEq(p.Data(), "layer", l))
		switch l {
		case layerFill:
			p.GroupBy("shape")
			p.Add(gg.LayerPaths{X: "x", Y: "y", Fill: "hue"})
		case layerLine:
			p.GroupBy("shape")
			p.Add(gg.LayerPaths{X: "x", Y: "y", Color: "hue"})
		case layerInk:
			p.GroupBy("shape")
			p.Add(gg.LayerPaths{X: "x", Y: "y"})
		case layerPoint:
			p.Add(gg.LayerPoints{X: "x", Y: "y", Color: "hue"})
		case layerTag:
			p.Add(gg.LayerTags{X: "x", Y: "y", Label: "label"})
		case layerFrame:
			p.SetScale("opacity", gg.NewIdentityScale())
			p.Add(gg.LayerPoints{X: "x", Y: "y", Opacity: p.Const(0.0)})
		}
		p.Restore()
	}
	return p
}

// uniqueLabels makes duplicate labels distinct by appending
// zero-width spaces, since gg.LayerTags draws one tag per label.
func uniqueLabels(labels []string) []string {
	seen := make(map[string]int)
	out := make([]string, len(labels))
	for i, l := range labels {
		if l == "" {
			continue
		}
		n := seen[l]
		seen[l] = n + 1
		for ; n > 0; n-- {
			l += "\u200b"
		}
		out[i] = l
	}
	return out
}

// newPlot returns a plot of t with x and y axis labels.
func newPlot(t table.Grouping, xlabel, ylabel string) *gg.Plot {
	p := gg.NewPlot(t)
	if xlabel != "" {
		p.Add(gg.AxisLabel("x", xlabel))
	}
	if ylabel != "" {
		p.Add(gg.AxisLabel("y", ylabel))
	}
	return p
}
