// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"fmt"
	"math"

	"github.com/aclements/go-moremath/stats"
	"github.com/aclements/go-moremath/vec"
)

// sturges returns the number of histogram bins for n observations.
func sturges(n int) int {
	if n <= 1 {
		return 1
	}
	return int(math.Ceil(math.Log2(float64(n)))) + 1
}

// binEdges returns k+1 equal-width edges spanning [lo, hi]. A
// zero-width range is widened to [lo-0.5, hi+0.5].
func binEdges(lo, hi float64, k int) []float64 {
	if lo == hi {
		lo, hi = lo-0.5, hi+0.5
	}
	return vec.Linspace(lo, hi, k+1)
}

// autoEdges returns Sturges-rule bin edges over the combined range of
// samples.
func autoEdges(samples ...[]float64) []float64 {
	n := 0
	lo, hi := math.NaN(), math.NaN()
	for _, xs := range samples {
		n += len(xs)
		l, h := stats.Bounds(xs)
		if math.IsNaN(lo) || l < lo {
			lo = l
		}
		if math.IsNaN(hi) || h > hi {
			hi = h
		}
	}
	if math.IsNaN(lo) {
		lo, hi = 0, 1
	}
	return binEdges(lo, hi, sturges(n))
}

// binCounts counts xs into the bins delimited by edges. Each bin is
// half-open except the last, which includes its right edge. NaNs and
// values outside the edges are not counted.
func binCounts(xs, edges []float64) []float64 {
	k := len(edges) - 1
	counts := make([]float64, k)
	lo, hi := edges[0], edges[k]
	w := (hi - lo) / float64(k)
	for _, x := range xs {
		if math.IsNaN(x) || x < lo || x > hi {
			continue
		}
		i := int((x - lo) / w)
		if i >= k {
			i = k - 1
		}
		counts[i]++
	}
	return counts
}

// normalize converts bin counts in place to stat, which is one of
// count, probability, percent, or density. total is the number of
// observations the stat is relative to and width is the bin width.
func normalize(stat string, counts []float64, total, width float64) error {
	var f float64
	switch stat {
	case "count":
		return nil
	case "probability":
		f = 1 / total
	case "percent":
		f = 100 / total
	case "density":
		f = 1 / (total * width)
	default:
		return fmt.Errorf("unknown histogram stat %q", stat)
	}
	if total == 0 {
		f = 0
	}
	for i := range counts {
		counts[i] *= f
	}
	return nil
}

// cumulate replaces hs with its running sum. Densities are
// integrated over the bin width.
func cumulate(stat string, hs []float64, width float64) {
	sum := 0.0
	for i, h := range hs {
		if stat == "density" {
			h *= width
		}
		sum += h
		hs[i] = sum
	}
}

// A bar is one histogram bar.
type bar struct {
	hue    int
	x0, x1 float64
	y0, y1 float64
}

// arrange lays out the bars of several hue groups that share edges.
// heights[g][i] is the height of group g in bin i. multiple is one of
// layer, dodge, stack, or fill.
func arrange(multiple string, edges []float64, heights [][]float64) ([]bar, error) {
	k := len(edges) - 1
	n := len(heights)
	var bars []bar
	switch multiple {
	case "layer":
		for g, hs := range heights {
			for i := 0; i < k; i++ {
				bars = append(bars, bar{g, edges[i], edges[i+1], 0, hs[i]})
			}
		}
	case "dodge":
		for g, hs := range heights {
			for i := 0; i < k; i++ {
				w := (edges[i+1] - edges[i]) / float64(n)
				x0 := edges[i] + float64(g)*w
				bars = append(bars, bar{g, x0, x0 + w, 0, hs[i]})
			}
		}
	case "stack", "fill":
		for i := 0; i < k; i++ {
			total := 0.0
			for _, hs := range heights {
				total += hs[i]
			}
			base := 0.0
			for g, hs := range heights {
				h := hs[i]
				if multiple == "fill" {
					if total == 0 {
						h = 0
					} else {
						h /= total
					}
				}
				bars = append(bars, bar{g, edges[i], edges[i+1], base, base + h})
				base += h
			}
		}
	default:
		return nil, fmt.Errorf("unknown multiple %q", multiple)
	}
	return bars, nil
}
