// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package explore

import (
	"math"
	"testing"
	"time"

	"github.com/aclements/go-gg/table"
)

func TestKindOf(t *testing.T) {
	tab := new(table.Builder).
		Add("s", []string{"a"}).
		Add("f", Factor{"a"}).
		Add("i", []int{1}).
		Add("u8", []uint8{1}).
		Add("f32", []float32{1}).
		Add("f64", []float64{1}).
		Add("b", []bool{true}).
		Add("t", []time.Time{{}}).
		Done()
	want := map[string]Kind{
		"s": KindCategorical, "f": KindOther,
		"i": KindNumeric, "u8": KindNumeric, "f32": KindNumeric, "f64": KindNumeric,
		"b": KindOther, "t": KindOther,
	}
	for col, k := range want {
		if got := KindOf(tab, col); got != k {
			t.Errorf("KindOf(%s) = %v; want %v", col, got, k)
		}
	}
}

func TestClassify(t *testing.T) {
	tab := dataset1()
	for _, test := range []struct {
		c    Category
		want []string
	}{
		{Any, []string{"A", "B", "C", "D"}},
		{Numeric, []string{"A", "B"}},
		// C is a Factor and is only categorical after Prepare.
		{Categorical, []string{"D"}},
	} {
		if got := Classify(tab, test.c); !de(test.want, got) {
			t.Errorf("Classify(%v) = %v; want %v", test.c, got, test.want)
		}
	}

	prep := Prepare(tab)
	if want, got := []string{"C", "D"}, Classify(prep, Categorical); !de(want, got) {
		t.Errorf("Classify(Prepare(t), Categorical) = %v; want %v", got, want)
	}
	if !de(prep.Columns(), Classify(prep, Any)) {
		t.Errorf("Classify(Any) should equal Columns()")
	}

	// Every category's result is a subset of Columns in order.
	for _, c := range []Category{Any, Numeric, Categorical} {
		got := Classify(prep, c)
		j := 0
		for _, col := range prep.Columns() {
			if j < len(got) && got[j] == col {
				j++
			}
		}
		if j != len(got) {
			t.Errorf("Classify(%v) = %v is not an ordered subset of %v", c, got, prep.Columns())
		}
	}

	empty := new(table.Builder).Add("x", []float64{}).Done()
	if got := Classify(empty, Categorical); got == nil || len(got) != 0 {
		t.Errorf("Classify of table without categorical columns = %#v; want empty", got)
	}
}

func TestPrepare(t *testing.T) {
	tab := dataset1()
	prep := Prepare(tab)
	if _, ok := tab.MustColumn("C").(Factor); !ok {
		t.Fatalf("Prepare modified its input")
	}
	c, ok := prep.MustColumn("C").([]string)
	if !ok {
		t.Fatalf("Prepare did not convert C; got %T", prep.MustColumn("C"))
	}
	if c[0] != "x" || c[1] != "y" || c[2] != "z" {
		t.Errorf("converted C begins %v; want [x y z]", c[:3])
	}
	if !de(tab.Columns(), prep.Columns()) {
		t.Errorf("Prepare changed column order: %v", prep.Columns())
	}

	// A table with nothing to convert is returned as is.
	plain := dataset1()
	plain = new(table.Builder).Add("A", plain.MustColumn("A")).Done()
	if Prepare(plain) != plain {
		t.Errorf("Prepare copied a table with no categorical-typed columns")
	}
}

func TestLevels(t *testing.T) {
	tab := new(table.Builder).
		Add("s", []string{"b", "", "a", "b"}).
		Add("f", []float64{2, math.NaN(), 1, 2}).
		Done()
	if want, got := []interface{}{"b", "a"}, Levels(tab, "s"); !de(want, got) {
		t.Errorf("Levels(s) = %v; want %v", got, want)
	}
	if want, got := []interface{}{2.0, 1.0}, Levels(tab, "f"); !de(want, got) {
		t.Errorf("Levels(f) = %v; want %v", got, want)
	}
	if got := NumLevels(dataset2(), "Z"); got != 2 {
		t.Errorf("NumLevels(Z) = %d; want 2", got)
	}
}

func TestNullity(t *testing.T) {
	tab := new(table.Builder).
		Add("s", []string{"b", "", "a"}).
		Add("f", []float64{math.NaN(), 1, 2}).
		Add("i", []int{0, 1, 2}).
		Done()
	for col, want := range map[string][]bool{
		"s": {false, true, false},
		"f": {true, false, false},
		"i": {false, false, false},
	} {
		if got := Nullity(tab, col); !de(want, got) {
			t.Errorf("Nullity(%s) = %v; want %v", col, got, want)
		}
	}
}

func TestParseCategory(t *testing.T) {
	for _, c := range []Category{Any, Categorical, Numeric} {
		got, err := ParseCategory(c.String())
		if err != nil || got != c {
			t.Errorf("ParseCategory(%q) = %v, %v", c.String(), got, err)
		}
	}
	if _, err := ParseCategory("ordinal"); err == nil {
		t.Errorf("ParseCategory(ordinal) succeeded")
	}
}
