// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package explore

import (
	"fmt"
	"math"
	"reflect"
	"regexp"
	"testing"

	"github.com/aclements/go-gg/table"
)

// call records one invocation of a rendering primitive.
type call struct {
	name   string
	t      *table.Table
	m      *Matrix
	args   interface{}
}

// recorder is a Primitives that records calls.
type recorder struct {
	calls []call
}

func (r *recorder) add(name string, t *table.Table, m *Matrix, args interface{}) error {
	r.calls = append(r.calls, call{name, t, m, args})
	return nil
}

func (r *recorder) last(tb testing.TB) call {
	tb.Helper()
	if len(r.calls) == 0 {
		tb.Fatalf("no primitive was called")
	}
	return r.calls[len(r.calls)-1]
}

func (r *recorder) CountPlot(t *table.Table, a CountArgs) error   { return r.add("CountPlot", t, nil, a) }
func (r *recorder) Heatmap(m *Matrix, a HeatmapArgs) error         { return r.add("Heatmap", nil, m, a) }
func (r *recorder) BoxPlot(t *table.Table, a BoxArgs) error         { return r.add("BoxPlot", t, nil, a) }
func (r *recorder) ViolinPlot(t *table.Table, a ViolinArgs) error   { return r.add("ViolinPlot", t, nil, a) }
func (r *recorder) LinePlot(t *table.Table, a LineArgs) error       { return r.add("LinePlot", t, nil, a) }
func (r *recorder) RidgePlot(t *table.Table, a RidgeArgs) error     { return r.add("RidgePlot", t, nil, a) }
func (r *recorder) HistPlot(t *table.Table, a HistArgs) error       { return r.add("HistPlot", t, nil, a) }
func (r *recorder) KDEPlot(t *table.Table, a KDEArgs) error         { return r.add("KDEPlot", t, nil, a) }
func (r *recorder) DisPlot(t *table.Table, a DisArgs) error         { return r.add("DisPlot", t, nil, a) }
func (r *recorder) ScatterPlot(t *table.Table, a ScatterArgs) error { return r.add("ScatterPlot", t, nil, a) }
func (r *recorder) CatPlot(t *table.Table, a CatArgs) error         { return r.add("CatPlot", t, nil, a) }
func (r *recorder) LMPlot(t *table.Table, a LMArgs) error           { return r.add("LMPlot", t, nil, a) }
func (r *recorder) ClusterMap(m *Matrix, a ClusterArgs) error       { return r.add("ClusterMap", nil, m, a) }
func (r *recorder) PairPlot(t *table.Table, a PairArgs) error       { return r.add("PairPlot", t, nil, a) }
func (r *recorder) MissingMatrix(t *table.Table) error              { return r.add("MissingMatrix", t, nil, nil) }
func (r *recorder) MissingBar(t *table.Table) error                 { return r.add("MissingBar", t, nil, nil) }
func (r *recorder) MissingHeatmap(t *table.Table) error             { return r.add("MissingHeatmap", t, nil, nil) }
func (r *recorder) MissingDendrogram(t *table.Table) error          { return r.add("MissingDendrogram", t, nil, nil) }

// dataset1 mirrors the first sample dataset: two float columns, a
// Factor with three levels, and a string column with three levels.
func dataset1() *table.Table {
	const n = 99
	a, b := make([]float64, n), make([]float64, n)
	c, d := make(Factor, n), make([]string, n)
	for i := 0; i < n; i++ {
		a[i] = math.Sin(float64(i))
		b[i] = math.Cos(float64(i) * 0.7)
		c[i] = []string{"x", "y", "z"}[i%3]
		d[i] = []string{"cat", "dog", "bird"}[(i/2)%3]
	}
	return new(table.Builder).Add("A", a).Add("B", b).Add("C", c).Add("D", d).Done()
}

// dataset2 mirrors the second sample dataset.
func dataset2() *table.Table {
	const n = 50
	x, y := make([]float64, n), make([]int, n)
	z := make(Factor, n)
	for i := 0; i < n; i++ {
		x[i] = float64(i%7) - 3
		y[i] = i % 10
		z[i] = []string{"low", "high"}[i%2]
	}
	return new(table.Builder).Add("X", x).Add("Y", y).Add("Z", z).Done()
}

func datasets() []Dataset {
	return []Dataset{{"dataset1", dataset1()}, {"dataset2", dataset2()}}
}

func de(x, y interface{}) bool {
	return reflect.DeepEqual(x, y)
}

func shouldPanic(t *testing.T, re string, f func()) {
	r := regexp.MustCompile(re)
	defer func() {
		err := recover()
		if err == nil {
			t.Fatalf("want panic matching %q; got no panic", re)
		} else if !r.MatchString(fmt.Sprintf("%s", err)) {
			t.Fatalf("panic %q does not match %q", err, re)
		}
	}()
	f()
}
