// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/aclements/go-explore/explore"
)

func TestReadCSV(t *testing.T) {
	const input = `id,score,count,label,flag
1,1.5,3,a,true
2,NA,,b,false
3,2.5,5,,true
`
	tab, err := ReadCSV(strings.NewReader(input), ',')
	if err != nil {
		t.Fatal(err)
	}
	if got := tab.MustColumn("id"); !reflect.DeepEqual(got, []int{1, 2, 3}) {
		t.Errorf("id = %#v", got)
	}
	score := tab.MustColumn("score").([]float64)
	if score[0] != 1.5 || !math.IsNaN(score[1]) || score[2] != 2.5 {
		t.Errorf("score = %v", score)
	}
	count := tab.MustColumn("count").([]float64)
	if count[0] != 3 || !math.IsNaN(count[1]) || count[2] != 5 {
		t.Errorf("count = %v; want float64 with NaN", count)
	}
	if got := tab.MustColumn("label"); !reflect.DeepEqual(got, []string{"a", "b", ""}) {
		t.Errorf("label = %#v", got)
	}
	if got := tab.MustColumn("flag"); !reflect.DeepEqual(got, []string{"true", "false", "true"}) {
		t.Errorf("flag = %#v", got)
	}
	if got := explore.Classify(tab, explore.Numeric); !reflect.DeepEqual(got, []string{"id", "score", "count"}) {
		t.Errorf("numeric columns = %v", got)
	}
}

func TestReadTSV(t *testing.T) {
	tab, err := ReadCSV(strings.NewReader("a\tb\nx\t1\ny\t2\n"), '\t')
	if err != nil {
		t.Fatal(err)
	}
	if got := tab.Columns(); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("columns = %v", got)
	}
}

func TestReadCSVEmpty(t *testing.T) {
	if _, err := ReadCSV(strings.NewReader(""), ','); err == nil {
		t.Errorf("reading empty input succeeded")
	}
}

func TestFormatOf(t *testing.T) {
	for path, want := range map[string]Format{
		"a.csv":      CSV,
		"dir/B.TSV":  TSV,
		"old.bench":  Bench,
		"log.txt":    Bench,
		"m.yaml":     Manifest,
		"m.yml":      Manifest,
		"data.jsonl": "",
	} {
		if got := FormatOf(path); got != want {
			t.Errorf("FormatOf(%q) = %q; want %q", path, got, want)
		}
	}
	if got := NameOf("dir/results.csv"); got != "results" {
		t.Errorf("NameOf = %q", got)
	}
}

func writeFile(t *testing.T, dir, name, data string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "iris.csv", "petal,species\n1.4,setosa\n4.7,versicolor\n")
	writeFile(t, dir, "runs.txt", "BenchmarkA\t10\t5 ns/op\n")
	writeFile(t, dir, "semi.dat", "x;y\n1;2\n")
	m := writeFile(t, dir, "all.yaml", `
datasets:
  - path: iris.csv
  - name: bench
    path: runs.txt
  - path: semi.dat
    format: csv
    delimiter: ";"
samples: true
session:
  plot: scatter
  values:
    var_x: petal
output:
  width: 1024
`)
	ds, err := Load(m)
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, d := range ds {
		names = append(names, d.Name)
	}
	if want := []string{"iris", "bench", "semi", "dataset1", "dataset2"}; !reflect.DeepEqual(names, want) {
		t.Fatalf("datasets = %v; want %v", names, want)
	}
	if got := ds[2].Table.Columns(); !reflect.DeepEqual(got, []string{"x", "y"}) {
		t.Errorf("semicolon columns = %v", got)
	}

	mf, err := LoadManifest(m)
	if err != nil {
		t.Fatal(err)
	}
	if mf.Session.Plot != "scatter" || mf.Session.Values["var_x"] != "petal" {
		t.Errorf("session = %+v", mf.Session)
	}
	if mf.Output.Width != 1024 || mf.Output.Height != DefaultHeight || mf.Output.Dir != DefaultOutput {
		t.Errorf("output = %+v; want defaults except width", mf.Output)
	}

	ds, err = Load(filepath.Join(dir, "iris.csv"))
	if err != nil || len(ds) != 1 || ds[0].Name != "iris" {
		t.Errorf("Load(iris.csv) = %v, %v", ds, err)
	}
	if _, err := Load(filepath.Join(dir, "missing.csv")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load(missing) = %v; want not exist", err)
	}
	if _, err := Load(filepath.Join(dir, "semi.dat")); err == nil {
		t.Errorf("Load of unknown extension succeeded")
	}
}

func TestParseManifestErrors(t *testing.T) {
	if _, err := ParseManifest([]byte("datasets:\n  - name: x\n")); err == nil {
		t.Errorf("manifest without path accepted")
	}
	if _, err := ParseManifest([]byte("datasets: [")); err == nil {
		t.Errorf("bad YAML accepted")
	}
	m, err := ParseManifest(nil)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(m.Output, DefaultManifest().Output) {
		t.Errorf("empty manifest output = %+v", m.Output)
	}
}

func TestSamples(t *testing.T) {
	ds := Samples(1)
	if len(ds) != 2 || ds[0].Name != "dataset1" || ds[1].Name != "dataset2" {
		t.Fatalf("Samples = %v", ds)
	}
	t1, t2 := ds[0].Table, ds[1].Table
	if t1.Len() != 100 || t2.Len() != 50 {
		t.Errorf("lengths = %d, %d; want 100, 50", t1.Len(), t2.Len())
	}
	if got := explore.Classify(explore.Prepare(t1), explore.Categorical); !reflect.DeepEqual(got, []string{"C", "D"}) {
		t.Errorf("dataset1 categorical = %v", got)
	}
	if got := explore.Classify(t2, explore.Numeric); !reflect.DeepEqual(got, []string{"X", "Y"}) {
		t.Errorf("dataset2 numeric = %v", got)
	}
	if !reflect.DeepEqual(Samples(1)[0].Table.MustColumn("A"), t1.MustColumn("A")) {
		t.Errorf("Samples is not deterministic")
	}
}
