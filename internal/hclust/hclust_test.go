// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hclust

import (
	"reflect"
	"testing"
)

func pts(xs ...float64) [][]float64 {
	out := make([][]float64, len(xs))
	for i, x := range xs {
		out[i] = []float64{x}
	}
	return out
}

func TestAverage(t *testing.T) {
	tree := Average(pts(0, 1, 10, 11))
	want := []Merge{
		{0, 1, 1, 2},
		{2, 3, 1, 2},
		{4, 5, 10, 4},
	}
	if !reflect.DeepEqual(want, tree.Merges) {
		t.Errorf("merges = %v; want %v", tree.Merges, want)
	}
	if got := tree.Root(); got != 6 {
		t.Errorf("Root() = %d; want 6", got)
	}
	if want, got := []int{0, 1, 2, 3}, tree.Leaves(); !reflect.DeepEqual(want, got) {
		t.Errorf("Leaves() = %v; want %v", got, want)
	}

	tree = Average(pts(10, 0, 11, 1))
	if want, got := []int{0, 2, 1, 3}, tree.Leaves(); !reflect.DeepEqual(want, got) {
		t.Errorf("Leaves() = %v; want %v", got, want)
	}
}

func TestSegments(t *testing.T) {
	segs := Average(pts(0, 1, 10, 11)).Segments()
	want := []Segment{
		{0, 0, 0, 1}, {0, 1, 1, 1}, {1, 0, 1, 1},
		{2, 0, 2, 1}, {2, 1, 3, 1}, {3, 0, 3, 1},
		{0.5, 1, 0.5, 10}, {0.5, 10, 2.5, 10}, {2.5, 1, 2.5, 10},
	}
	if !reflect.DeepEqual(want, segs) {
		t.Errorf("Segments() = %v; want %v", segs, want)
	}
}

func TestDegenerate(t *testing.T) {
	tree := Average(nil)
	if tree.Root() != -1 || len(tree.Leaves()) != 0 || len(tree.Segments()) != 0 {
		t.Errorf("empty tree = %+v", tree)
	}
	tree = Average(pts(3))
	if tree.Root() != 0 || !reflect.DeepEqual([]int{0}, tree.Leaves()) {
		t.Errorf("single-point tree = %+v", tree)
	}
}
