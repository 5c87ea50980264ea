// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hclust implements agglomerative hierarchical clustering
// with average linkage.
package hclust

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// A Merge is one step of agglomeration. Clusters are numbered as
// follows: 0 through N-1 are the leaves, and cluster N+i is the
// result of merge i.
type Merge struct {
	A, B int
	Dist float64
	Size int
}

// A Tree is the result of clustering N points.
type Tree struct {
	N      int
	Merges []Merge
}

// Average clusters points using average linkage over the Euclidean
// distance between points.
func Average(points [][]float64) *Tree {
	n := len(points)
	d := make([][]float64, n)
	for i := range d {
		d[i] = make([]float64, n)
		for j := 0; j < i; j++ {
			d[i][j] = floats.Distance(points[i], points[j], 2)
			d[j][i] = d[i][j]
		}
	}
	return AverageDist(d)
}

// AverageDist clusters using average linkage over the symmetric
// distance matrix d. d is modified.
func AverageDist(d [][]float64) *Tree {
	n := len(d)
	t := &Tree{N: n}
	if n == 0 {
		return t
	}

	// active[i] is the cluster ID in slot i, or -1 if slot i has
	// been merged away.
	active := make([]int, n)
	size := make([]int, n)
	for i := range active {
		active[i], size[i] = i, 1
	}

	for step := 0; step < n-1; step++ {
		bi, bj, best := -1, -1, math.Inf(1)
		for i := 0; i < n; i++ {
			if active[i] < 0 {
				continue
			}
			for j := i + 1; j < n; j++ {
				if active[j] < 0 {
					continue
				}
				if d[i][j] < best || bi < 0 {
					bi, bj, best = i, j, d[i][j]
				}
			}
		}

		a, b := active[bi], active[bj]
		if a > b {
			a, b = b, a
		}
		ns := size[bi] + size[bj]
		t.Merges = append(t.Merges, Merge{a, b, best, ns})

		// Lance-Williams update for average linkage. The merged
		// cluster takes slot bi.
		for k := 0; k < n; k++ {
			if active[k] < 0 || k == bi || k == bj {
				continue
			}
			nd := (float64(size[bi])*d[bi][k] + float64(size[bj])*d[bj][k]) / float64(ns)
			d[bi][k], d[k][bi] = nd, nd
		}
		active[bi], size[bi] = n+step, ns
		active[bj] = -1
	}
	return t
}

// Root returns the ID of the root cluster.
func (t *Tree) Root() int {
	if t.N == 0 {
		return -1
	}
	return t.N + len(t.Merges) - 1
}

// Height returns the merge distance of cluster id, which is 0 for a
// leaf.
func (t *Tree) Height(id int) float64 {
	if id < t.N {
		return 0
	}
	return t.Merges[id-t.N].Dist
}

// Leaves returns the leaf indexes in dendrogram order.
func (t *Tree) Leaves() []int {
	order := make([]int, 0, t.N)
	var walk func(id int)
	walk = func(id int) {
		if id < t.N {
			order = append(order, id)
			return
		}
		m := t.Merges[id-t.N]
		walk(m.A)
		walk(m.B)
	}
	if t.N > 0 {
		walk(t.Root())
	}
	return order
}

// A Segment is a line segment of a dendrogram drawing. X is in leaf
// position units, where the k'th leaf of Leaves is at X = k. Y is
// merge height.
type Segment struct {
	X0, Y0, X1, Y1 float64
}

// Segments returns the segments of the dendrogram of t. Each merge
// contributes three segments: a vertical from each child up to the
// merge height and a horizontal joining them.
func (t *Tree) Segments() []Segment {
	x := make([]float64, t.N+len(t.Merges))
	for k, leaf := range t.Leaves() {
		x[leaf] = float64(k)
	}
	segs := make([]Segment, 0, 3*len(t.Merges))
	for i, m := range t.Merges {
		id := t.N + i
		x[id] = (x[m.A] + x[m.B]) / 2
		ha, hb := t.Height(m.A), t.Height(m.B)
		segs = append(segs,
			Segment{x[m.A], ha, x[m.A], m.Dist},
			Segment{x[m.A], m.Dist, x[m.B], m.Dist},
			Segment{x[m.B], hb, x[m.B], m.Dist},
		)
	}
	return segs
}
