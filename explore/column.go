// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package explore

import (
	"fmt"
	"math"
	"reflect"

	"github.com/aclements/go-gg/table"
)

// A Category selects columns by semantic type.
type Category int

const (
	// Any matches every column.
	Any Category = iota

	// Categorical matches string label columns.
	Categorical

	// Numeric matches integer and floating-point columns.
	Numeric
)

func (c Category) String() string {
	switch c {
	case Any:
		return "any"
	case Categorical:
		return "categorical"
	case Numeric:
		return "numeric"
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

// ParseCategory parses the name of a Category as returned by
// Category.String.
func ParseCategory(s string) (Category, error) {
	for _, c := range []Category{Any, Categorical, Numeric} {
		if c.String() == s {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown column category %q", s)
}

// Kind is the inferred semantic type of a column.
type Kind int

const (
	KindOther Kind = iota
	KindCategorical
	KindNumeric
)

func (k Kind) String() string {
	switch k {
	case KindCategorical:
		return "categorical"
	case KindNumeric:
		return "numeric"
	}
	return "other"
}

// Matches reports whether a column of kind k belongs to category c.
func (k Kind) Matches(c Category) bool {
	switch c {
	case Categorical:
		return k == KindCategorical
	case Numeric:
		return k == KindNumeric
	}
	return true
}

// A Factor is a categorical-typed column: string labels drawn from a
// small set of levels. Classification does not treat a Factor as
// categorical; Prepare converts it to a plain []string first.
type Factor []string

var stringsType = reflect.TypeOf([]string(nil))

// KindOf returns the semantic type of column col of t, which is
// decided entirely by the column's Go type. A []string column is
// categorical; a column whose elements have an integer, unsigned, or
// floating-point kind is numeric; everything else (including bool,
// time.Time, and Factor) is other. KindOf panics if col is not a
// column of t.
func KindOf(t *table.Table, col string) Kind {
	rt := reflect.TypeOf(t.MustColumn(col))
	if rt == stringsType {
		return KindCategorical
	}
	switch rt.Elem().Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return KindNumeric
	}
	return KindOther
}

// Classify returns the names of t's columns that match category c,
// in t's column order. Classify(t, Any) returns all of t's columns.
// The result may be empty.
func Classify(t *table.Table, c Category) []string {
	cols := []string{}
	for _, col := range t.Columns() {
		if KindOf(t, col).Matches(c) {
			cols = append(cols, col)
		}
	}
	return cols
}

// Prepare returns a working copy of t in which every categorical-typed
// column (any column whose element kind is string but whose type is
// not []string, such as Factor) has been converted to a []string
// column. Other columns are shared with t; t itself is not modified.
func Prepare(t *table.Table) *table.Table {
	var b *table.Builder
	for _, col := range t.Columns() {
		seq := t.MustColumn(col)
		rv := reflect.ValueOf(seq)
		if rv.Type() == stringsType || rv.Type().Elem().Kind() != reflect.String {
			continue
		}
		strs := make([]string, rv.Len())
		for i := range strs {
			strs[i] = rv.Index(i).String()
		}
		if b == nil {
			b = table.NewBuilder(t)
		}
		b.Add(col, strs)
	}
	if b == nil {
		return t
	}
	return b.Done()
}

// Levels returns the distinct values of column col of t in order of
// first appearance. Missing values (NaN and "") are skipped.
func Levels(t *table.Table, col string) []interface{} {
	rv := reflect.ValueOf(t.MustColumn(col))
	seen := make(map[interface{}]bool)
	levels := []interface{}{}
	for i := 0; i < rv.Len(); i++ {
		v := rv.Index(i).Interface()
		if isMissing(v) || !reflect.TypeOf(v).Comparable() || seen[v] {
			continue
		}
		seen[v] = true
		levels = append(levels, v)
	}
	return levels
}

// NumLevels returns the number of distinct non-missing values in
// column col of t.
func NumLevels(t *table.Table, col string) int {
	return len(Levels(t, col))
}

func isMissing(v interface{}) bool {
	switch v := v.(type) {
	case float64:
		return math.IsNaN(v)
	case float32:
		return math.IsNaN(float64(v))
	case string:
		return v == ""
	case nil:
		return true
	}
	return false
}

// Nullity reports which rows of column col of t are missing.
func Nullity(t *table.Table, col string) []bool {
	rv := reflect.ValueOf(t.MustColumn(col))
	null := make([]bool, rv.Len())
	for i := range null {
		null[i] = isMissing(rv.Index(i).Interface())
	}
	return null
}
