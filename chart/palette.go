// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"image/color"
	"math"

	"github.com/aclements/go-gg/palette"
)

func rgb(c uint32) color.RGBA {
	return color.RGBA{uint8(c >> 16), uint8(c >> 8), uint8(c), 0xff}
}

var qualitative = map[string][]color.RGBA{
	"Set2": {
		rgb(0x66c2a5), rgb(0xfc8d62), rgb(0x8da0cb), rgb(0xe78ac3),
		rgb(0xa6d854), rgb(0xffd92f), rgb(0xe5c494), rgb(0xb3b3b3),
	},
	"Dark2": {
		rgb(0x1b9e77), rgb(0xd95f02), rgb(0x7570b3), rgb(0xe7298a),
		rgb(0x66a61e), rgb(0xe6ab02), rgb(0xa6761d), rgb(0x666666),
	},
	"deep": {
		rgb(0x4c72b0), rgb(0xdd8452), rgb(0x55a868), rgb(0xc44e52),
		rgb(0x8172b3), rgb(0x937860), rgb(0xda8bc3), rgb(0x8c8c8c),
	},
}

var continuous = map[string]palette.Continuous{
	"viridis": palette.Viridis,
	"coolwarm": palette.RGBGradient{Colors: []color.RGBA{
		rgb(0x3b4cc0), rgb(0x7396f5), rgb(0xdddddd), rgb(0xf18d6f), rgb(0xb40426),
	}},
	"RdBu": palette.RGBGradient{Colors: []color.RGBA{
		rgb(0x67001f), rgb(0xd6604d), rgb(0xf7f7f7), rgb(0x4393c3), rgb(0x053061),
	}},
	"Greys": palette.RGBGradient{Colors: []color.RGBA{
		rgb(0xffffff), rgb(0x000000),
	}},
}

// Qualitative returns the discrete palette called name, or "deep" if
// there is no such palette.
func Qualitative(name string) []color.Color {
	return withAlpha(name, 1)
}

// withAlpha returns the discrete palette called name with opacity a.
func withAlpha(name string, a float64) []color.Color {
	pal, ok := qualitative[name]
	if !ok {
		pal = qualitative["deep"]
	}
	out := make([]color.Color, len(pal))
	for i, c := range pal {
		out[i] = color.NRGBA{c.R, c.G, c.B, uint8(math.Round(255 * a))}
	}
	return out
}

// Continuous returns the continuous colormap called name, or viridis
// if there is no such colormap.
func Continuous(name string) palette.Continuous {
	if c, ok := continuous[name]; ok {
		return c
	}
	return palette.Viridis
}

// colorMap maps values in [lo, hi] through a continuous colormap. NaN
// maps to transparent.
type colorMap struct {
	pal    palette.Continuous
	lo, hi float64
}

func newColorMap(name string, vals []float64) colorMap {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range vals {
		if math.IsNaN(v) {
			continue
		}
		lo, hi = math.Min(lo, v), math.Max(hi, v)
	}
	return colorMap{Continuous(name), lo, hi}
}

// centered widens m's range so that it is symmetric about 0.
func (m colorMap) centered() colorMap {
	r := math.Max(math.Abs(m.lo), math.Abs(m.hi))
	m.lo, m.hi = -r, r
	return m
}

func (m colorMap) Map(v float64) color.Color {
	if math.IsNaN(v) {
		return color.Transparent
	}
	x := 0.5
	if m.hi > m.lo {
		x = (v - m.lo) / (m.hi - m.lo)
	}
	return m.pal.Map(x)
}
