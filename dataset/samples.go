// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import (
	"math/rand"

	"github.com/aclements/go-gg/table"

	"github.com/aclements/go-explore/explore"
)

// Samples returns two small random datasets for trying things out:
// "dataset1" has 100 rows with numeric columns A and B, factor C, and
// categorical D; "dataset2" has 50 rows with numeric X and Y and
// factor Z. The same seed gives the same data.
func Samples(seed int64) []explore.Dataset {
	rnd := rand.New(rand.NewSource(seed))

	a, b := make([]float64, 100), make([]float64, 100)
	c := make(explore.Factor, 100)
	d := make([]string, 100)
	animals := []string{"cat", "dog", "bird"}
	for i := range a {
		a[i], b[i] = rnd.NormFloat64(), rnd.NormFloat64()
		c[i] = []string{"x", "y", "z"}[i%3]
		d[i] = animals[rnd.Intn(len(animals))]
	}

	x, y := make([]float64, 50), make([]int, 50)
	z := make(explore.Factor, 50)
	for i := range x {
		x[i], y[i] = rnd.NormFloat64(), rnd.Intn(10)
		z[i] = []string{"low", "high"}[i%2]
	}

	return []explore.Dataset{
		{Name: "dataset1", Table: new(table.Builder).
			Add("A", a).Add("B", b).Add("C", c).Add("D", d).Done()},
		{Name: "dataset2", Table: new(table.Builder).
			Add("X", x).Add("Y", y).Add("Z", z).Done()},
	}
}
