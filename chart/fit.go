// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"math"
	"strconv"

	"github.com/aclements/go-gg/ggstat"
	"github.com/aclements/go-gg/table"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// fitPoints is the number of points at which fits are evaluated.
const fitPoints = 100

// polyFits fits a polynomial of the given degree to each sample and
// evaluates it at fitPoints points across the sample's range. Samples
// with too few distinct x values for the degree get an empty curve.
func polyFits(xs, ys [][]float64, degree int) []curve {
	out := make([]curve, len(xs))
	gb := table.NewGroupingBuilder(nil)
	var gids []table.GroupID
	var ids []int
	for i := range xs {
		if distinct(xs[i]) <= degree {
			continue
		}
		gid := table.RootGroupID.Extend(strconv.Itoa(i))
		gb.Add(gid, new(table.Builder).Add("x", xs[i]).Add("y", ys[i]).Done())
		gids, ids = append(gids, gid), append(ids, i)
	}
	if len(gids) == 0 {
		return out
	}
	g := ggstat.LeastSquares{
		X:      "x",
		Y:      "y",
		N:      fitPoints,
		Domain: ggstat.DomainData{Widen: 1, SplitGroups: true},
		Degree: degree,
	}.F(gb.Done())
	for k, gid := range gids {
		t := g.Table(gid)
		out[ids[k]] = curve{t.MustColumn("x").([]float64), t.MustColumn("y").([]float64)}
	}
	return out
}

func distinct(xs []float64) int {
	seen := make(map[float64]bool)
	for _, x := range xs {
		seen[x] = true
	}
	return len(seen)
}

// design returns the Vandermonde matrix of xs for a polynomial of the
// given degree.
func design(xs []float64, degree int) *mat.Dense {
	p := degree + 1
	d := mat.NewDense(len(xs), p, nil)
	for i, x := range xs {
		v := 1.0
		for j := 0; j < p; j++ {
			d.Set(i, j, v)
			v *= x
		}
	}
	return d
}

// polyBand returns the ci percent confidence band of the least
// squares polynomial fit of ys on xs, evaluated at eval. It returns
// false if the band is undefined, such as when there are no residual
// degrees of freedom.
func polyBand(xs, ys []float64, degree int, ci float64, eval []float64) (lo, hi []float64, ok bool) {
	n, p := len(xs), degree+1
	if n <= p || ci <= 0 || ci >= 100 {
		return nil, nil, false
	}
	x := design(xs, degree)
	y := mat.NewVecDense(n, ys)

	var beta mat.VecDense
	if err := beta.SolveVec(x, y); err != nil {
		return nil, nil, false
	}
	var fitted, resid mat.VecDense
	fitted.MulVec(x, &beta)
	resid.SubVec(y, &fitted)
	s2 := mat.Dot(&resid, &resid) / float64(n-p)

	var xtx, cov mat.Dense
	xtx.Mul(x.T(), x)
	if err := cov.Inverse(&xtx); err != nil {
		return nil, nil, false
	}

	t := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(n - p)}.Quantile(0.5 + ci/200)
	lo, hi = make([]float64, len(eval)), make([]float64, len(eval))
	row := mat.NewVecDense(p, nil)
	for i, e := range eval {
		v := 1.0
		for j := 0; j < p; j++ {
			row.SetVec(j, v)
			v *= e
		}
		yhat := mat.Dot(row, &beta)
		half := t * math.Sqrt(s2*mat.Inner(row, &cov, row))
		lo[i], hi[i] = yhat-half, yhat+half
	}
	return lo, hi, true
}
