// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package explore

import "github.com/aclements/go-gg/table"

// Primitives is the set of rendering routines the dispatcher calls,
// one per chart kind. Column arguments name columns of the table
// passed to the routine; an empty column name means the encoding is
// not used.
//
// The statistics behind each chart (density estimation, regression,
// clustering) are the implementation's business. The chart package
// provides the standard implementation.
type Primitives interface {
	CountPlot(t *table.Table, a CountArgs) error
	Heatmap(m *Matrix, a HeatmapArgs) error
	BoxPlot(t *table.Table, a BoxArgs) error
	ViolinPlot(t *table.Table, a ViolinArgs) error
	LinePlot(t *table.Table, a LineArgs) error
	RidgePlot(t *table.Table, a RidgeArgs) error
	HistPlot(t *table.Table, a HistArgs) error
	KDEPlot(t *table.Table, a KDEArgs) error
	DisPlot(t *table.Table, a DisArgs) error
	ScatterPlot(t *table.Table, a ScatterArgs) error
	CatPlot(t *table.Table, a CatArgs) error
	LMPlot(t *table.Table, a LMArgs) error
	ClusterMap(m *Matrix, a ClusterArgs) error
	PairPlot(t *table.Table, a PairArgs) error
	MissingMatrix(t *table.Table) error
	MissingBar(t *table.Table) error
	MissingHeatmap(t *table.Table) error
	MissingDendrogram(t *table.Table) error
}

// CountArgs draws one bar per level of X (dodged by Hue) whose height
// is the number of rows with that level.
type CountArgs struct {
	X, Hue    string
	BarLabels bool
}

// HeatmapArgs colors each cell of a Matrix.
type HeatmapArgs struct {
	Cmap           string
	Annot          bool
	Format         string
	ColorBar       bool
	XLabel, YLabel string
}

// BoxArgs draws a box of Y per level of X, dodged by Hue.
type BoxArgs struct {
	X, Y, Hue string
	Palette   string
}

type ViolinArgs struct {
	X, Y, Hue string
	Palette   string

	// Split draws the two levels of Hue as the two halves of a
	// single violin.
	Split bool

	// Cut is the number of bandwidths the density extends past
	// the data extremes.
	Cut float64

	// Inner is the interior annotation: "quartile" or "".
	Inner string
}

// LineArgs draws Estimator of Y against X with ErrStyle error bars.
type LineArgs struct {
	X, Y, Hue string
	Palette   string
	Estimator string
	ErrStyle  string
	CI        int
}

// RidgeArgs draws one density of X per level of Row, each in its own
// row, grouped and colored by Hue.
type RidgeArgs struct {
	Row, X, Hue string
	Palette     string
	Fill        bool
	Alpha       float64
	Cut         float64
}

// HistArgs draws a histogram of X split by Hue.
type HistArgs struct {
	X, Hue     string
	Palette    string
	Stat       string
	Element    string
	Multiple   string
	CommonNorm bool
	Cumulative bool
}

// KDEArgs draws a kernel density estimate of X per level of Hue.
type KDEArgs struct {
	X, Hue     string
	Palette    string
	Multiple   string
	CommonNorm bool
	Cumulative bool
	Fill       bool
	Cut        float64
}

// DisArgs is a figure-level distribution plot. Y is set for bivariate
// plots and Col for column faceting.
type DisArgs struct {
	X, Y, Hue, Col string
	Palette        string
	Kind           string
	Rug            bool
	CommonNorm     bool
	Cumulative     bool
}

// ScatterArgs draws Y against X with optional encodings.
type ScatterArgs struct {
	X, Y, Hue, Style, Size string
	Alpha                  float64
}

// CatArgs is a figure-level categorical plot of Kind.
type CatArgs struct {
	X, Y, Hue, Col string
	Kind           string
}

type LMArgs struct {
	X, Y, Hue string
	Order     int

	// CI is the confidence level in percent of the band around the
	// fit. 0 draws no band.
	CI int
}

// Axis selects rows or columns of a Matrix for normalization.
type Axis int

const (
	NoAxis Axis = iota
	Rows
	Cols
)

func (a Axis) String() string {
	switch a {
	case Rows:
		return "rows"
	case Cols:
		return "cols"
	}
	return "none"
}

// ClusterArgs draws a Matrix with its rows and columns clustered.
type ClusterArgs struct {
	Annot bool
	Cmap  string

	// ZScore and StandardScale normalize along an axis before
	// clustering. At most one may be set.
	ZScore        Axis
	StandardScale Axis
}

// PairArgs draws every pair of numeric columns.
type PairArgs struct {
	Hue      string
	DiagKind string
}
