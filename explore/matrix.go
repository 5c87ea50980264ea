// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package explore

import (
	"fmt"
	"math"
	"reflect"
	"strconv"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/table"
	"gonum.org/v1/gonum/stat"
)

// Matrix is a dense matrix with labeled rows and columns. NaN marks
// an absent cell.
type Matrix struct {
	RowLabel, ColLabel string
	Rows, Cols         []string
	Values             [][]float64
}

// NewMatrix returns a matrix with the given labels filled with NaN.
func NewMatrix(rows, cols []string) *Matrix {
	vals := make([][]float64, len(rows))
	for i := range vals {
		vals[i] = make([]float64, len(cols))
		for j := range vals[i] {
			vals[i][j] = math.NaN()
		}
	}
	return &Matrix{Rows: rows, Cols: cols, Values: vals}
}

// At returns the value in row i, column j.
func (m *Matrix) At(i, j int) float64 {
	return m.Values[i][j]
}

// Col returns a copy of column j.
func (m *Matrix) Col(j int) []float64 {
	col := make([]float64, len(m.Rows))
	for i := range col {
		col[i] = m.Values[i][j]
	}
	return col
}

// Transpose returns the transpose of m.
func (m *Matrix) Transpose() *Matrix {
	t := NewMatrix(m.Cols, m.Rows)
	t.RowLabel, t.ColLabel = m.ColLabel, m.RowLabel
	for i := range m.Rows {
		for j := range m.Cols {
			t.Values[j][i] = m.Values[i][j]
		}
	}
	return t
}

// ValueCounts counts the rows of t for each pair of levels of the x
// and by columns. The result has one row per level of x and one
// column per level of by, both in order of first appearance. Pairs
// that never occur are NaN rather than 0.
func ValueCounts(t *table.Table, x, by string) *Matrix {
	xl, bl := Levels(t, x), Levels(t, by)
	m := NewMatrix(labels(xl), labels(bl))
	m.RowLabel, m.ColLabel = x, by

	xi, bi := index(xl), index(bl)
	xs, bs := reflect.ValueOf(t.MustColumn(x)), reflect.ValueOf(t.MustColumn(by))
	for k := 0; k < xs.Len(); k++ {
		i, ok1 := xi[xs.Index(k).Interface()]
		j, ok2 := bi[bs.Index(k).Interface()]
		if !ok1 || !ok2 {
			continue
		}
		if math.IsNaN(m.Values[i][j]) {
			m.Values[i][j] = 0
		}
		m.Values[i][j]++
	}
	return m
}

func labels(levels []interface{}) []string {
	out := make([]string, len(levels))
	for i, l := range levels {
		out[i] = fmt.Sprint(l)
	}
	return out
}

func index(levels []interface{}) map[interface{}]int {
	idx := make(map[interface{}]int, len(levels))
	for i, l := range levels {
		idx[l] = i
	}
	return idx
}

// DropConstant returns t without the columns that have exactly one
// distinct non-missing value. Columns with no values at all are kept.
func DropConstant(t *table.Table) *table.Table {
	var b table.Builder
	for _, col := range t.Columns() {
		if NumLevels(t, col) != 1 {
			b.Add(col, t.MustColumn(col))
		}
	}
	return b.Done()
}

// SelectNumeric returns the numeric columns of t.
func SelectNumeric(t *table.Table) *table.Table {
	var b table.Builder
	for _, col := range Classify(t, Numeric) {
		b.Add(col, t.MustColumn(col))
	}
	return b.Done()
}

// Floats returns column col of t converted to float64.
func Floats(t *table.Table, col string) []float64 {
	var xs []float64
	slice.Convert(&xs, t.MustColumn(col))
	return xs
}

// Correlate returns the Pearson correlation matrix of the numeric
// columns of t. Each coefficient uses the rows where both columns are
// present; a pair with fewer than two such rows is NaN.
func Correlate(t *table.Table) *Matrix {
	cols := Classify(t, Numeric)
	data := make([][]float64, len(cols))
	for i, col := range cols {
		data[i] = Floats(t, col)
	}
	m := NewMatrix(cols, cols)
	var xs, ys []float64
	for i := range cols {
		for j := i; j < len(cols); j++ {
			xs, ys = xs[:0], ys[:0]
			for k, x := range data[i] {
				y := data[j][k]
				if math.IsNaN(x) || math.IsNaN(y) {
					continue
				}
				xs, ys = append(xs, x), append(ys, y)
			}
			r := math.NaN()
			if len(xs) >= 2 {
				r = stat.Correlation(xs, ys, nil)
			}
			m.Values[i][j], m.Values[j][i] = r, r
		}
	}
	return m
}

// NumericMatrix returns the numeric columns of t as a matrix with one
// row per table row, dropping rows with any NaN. Rows are labeled by
// their index in t.
func NumericMatrix(t *table.Table) *Matrix {
	cols := Classify(t, Numeric)
	data := make([][]float64, len(cols))
	for i, col := range cols {
		data[i] = Floats(t, col)
	}
	var rows []string
	var vals [][]float64
row:
	for k := 0; k < t.Len(); k++ {
		r := make([]float64, len(cols))
		for j := range cols {
			if math.IsNaN(data[j][k]) {
				continue row
			}
			r[j] = data[j][k]
		}
		rows = append(rows, strconv.Itoa(k))
		vals = append(vals, r)
	}
	return &Matrix{Rows: rows, Cols: cols, Values: vals}
}
