// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package explore

import "fmt"

// A Tag names one of the fixed set of plot types.
type Tag string

const (
	Bars        Tag = "bars"
	Boxes       Tag = "boxes"
	Ridges      Tag = "ridges"
	Histogram   Tag = "histogram"
	Density1    Tag = "density 1"
	Density2    Tag = "density 2"
	Scatter     Tag = "scatter"
	Catplot     Tag = "catplot"
	Regression  Tag = "regression"
	Correlation Tag = "correlation"
	Clustermap  Tag = "clustermap"
	Pairplot    Tag = "pairplot"
	Missingno   Tag = "missingno"
)

// ParamKind is the kind of control that sets a parameter.
type ParamKind int

const (
	// ColumnParam values are column names of the active table.
	ColumnParam ParamKind = iota

	// ChoiceParam values are one of a fixed list of strings.
	ChoiceParam

	// ToggleParam values are bools.
	ToggleParam

	// SliderParam values are float64s in [Min, Max].
	SliderParam
)

func (k ParamKind) String() string {
	switch k {
	case ColumnParam:
		return "column"
	case ChoiceParam:
		return "choice"
	case ToggleParam:
		return "toggle"
	case SliderParam:
		return "slider"
	}
	return fmt.Sprintf("ParamKind(%d)", int(k))
}

// Param describes one parameter of a plot type.
type Param struct {
	Name string
	Kind ParamKind

	// Category constrains the columns a ColumnParam may name
	// when relaxed mode is off.
	Category Category

	// Optional indicates that the plot can be drawn without this
	// ColumnParam. A required parameter with no legal columns
	// makes the plot unavailable.
	Optional bool

	// Choices lists the legal values of a ChoiceParam. The first
	// choice is the default unless Default is set.
	Choices []string

	// Default is the initial value of ChoiceParam, ToggleParam,
	// and SliderParam parameters.
	Default interface{}

	// Min, Max, and Step bound a SliderParam.
	Min, Max, Step float64
}

// Spec is the static description of a plot type.
type Spec struct {
	Tag Tag

	// Interactive is false for plot types that have no
	// parameters and render as soon as they are selected.
	Interactive bool

	Params []Param
}

// Param returns the parameter of s named name, or nil.
func (s *Spec) Param(name string) *Param {
	for i := range s.Params {
		if s.Params[i].Name == name {
			return &s.Params[i]
		}
	}
	return nil
}

func col(name string, c Category) Param {
	return Param{Name: name, Kind: ColumnParam, Category: c}
}

func optCol(name string, c Category) Param {
	return Param{Name: name, Kind: ColumnParam, Category: c, Optional: true}
}

func choice(name string, choices ...string) Param {
	return Param{Name: name, Kind: ChoiceParam, Choices: choices, Default: choices[0]}
}

func toggle(name string, def bool) Param {
	return Param{Name: name, Kind: ToggleParam, Default: def}
}

// specs is the plot type table, in menu order.
var specs = []*Spec{
	{Bars, true, []Param{
		col("var_x", Categorical),
		optCol("hue", Categorical),
		choice("tplot", "bars", "heatmap"),
	}},
	{Boxes, true, []Param{
		col("var_x", Categorical),
		col("var_y", Numeric),
		optCol("hue", Categorical),
		choice("tplot", "boxplot", "lineplot", "violin"),
		toggle("no_hue", false),
	}},
	{Ridges, true, []Param{
		col("var_x", Categorical),
		col("var_y", Numeric),
		optCol("hue_var", Categorical),
		toggle("no_hue", false),
	}},
	{Histogram, true, []Param{
		col("var_x", Numeric),
		optCol("hue_var", Categorical),
		choice("multiple", "layer", "dodge", "stack", "fill"),
		choice("stat", "count", "probability", "percent", "density"),
		choice("element", "bars", "step", "poly"),
		toggle("common_norm", false),
		toggle("cumulative", false),
	}},
	{Density1, true, []Param{
		col("var_x", Numeric),
		optCol("hue_var", Categorical),
		choice("multiple", "layer", "stack", "fill"),
		toggle("common_norm", false),
		toggle("cumulative", false),
	}},
	{Density2, true, []Param{
		col("var_x", Numeric),
		col("var_y", Numeric),
		optCol("hue_var", Categorical),
		optCol("col_var", Categorical),
		choice("kind", "hist", "kde", "ecdf"),
		toggle("common_norm", false),
		toggle("cumulative", false),
		toggle("facet", false),
		toggle("rug", false),
	}},
	{Scatter, true, []Param{
		col("var_x", Numeric),
		col("var_y", Numeric),
		optCol("hue", Categorical),
		optCol("style", Categorical),
		optCol("size", Numeric),
		{Name: "alpha", Kind: SliderParam, Default: 0.5, Min: 0, Max: 1, Step: 0.01},
		toggle("use_style", false),
	}},
	{Catplot, true, []Param{
		col("var_x", Any),
		col("var_y", Categorical),
		optCol("hue", Categorical),
		optCol("col", Categorical),
		choice("kind", "strip", "swarm"),
		toggle("facet", false),
	}},
	{Regression, true, []Param{
		col("var_x", Numeric),
		col("var_y", Numeric),
		optCol("hue_var", Categorical),
		choice("order", "1", "2", "3"),
		{Name: "ci", Kind: ChoiceParam, Choices: []string{"68", "95", "99", "0"}, Default: "95"},
		toggle("use_hue", true),
	}},
	{Correlation, false, nil},
	{Clustermap, true, []Param{
		choice("z_score", "none", "0", "1"),
		choice("standard_scale", "none", "0", "1"),
	}},
	{Pairplot, true, []Param{
		optCol("hue_var", Categorical),
		choice("kind", "kde", "hist"),
	}},
	{Missingno, true, []Param{
		choice("tplot", "matrix", "bars", "heatmap", "dendrogram"),
	}},
}

var specsByTag = func() map[Tag]*Spec {
	m := make(map[Tag]*Spec, len(specs))
	for _, s := range specs {
		if m[s.Tag] != nil {
			panic("duplicate plot tag " + string(s.Tag))
		}
		m[s.Tag] = s
	}
	return m
}()

// Tags returns all plot tags in menu order.
func Tags() []Tag {
	tags := make([]Tag, len(specs))
	for i, s := range specs {
		tags[i] = s.Tag
	}
	return tags
}

// Lookup returns the Spec for tag and whether tag is known.
func Lookup(tag Tag) (*Spec, bool) {
	s, ok := specsByTag[tag]
	return s, ok
}

// MustLookup is like Lookup, but panics if tag is unknown.
func MustLookup(tag Tag) *Spec {
	s, ok := specsByTag[tag]
	if !ok {
		panic(fmt.Sprintf("unknown plot tag %q", tag))
	}
	return s
}
