// Copyright 2025 The GWPopulation Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package array

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate"
)

// CPU is the default Backend. It evaluates everything in host memory
// using gonum's floats and integrate packages.
type CPU struct{}

func (CPU) Linspace(start, stop float64, n int) []float64 {
	if n < 2 {
		panic("array: Linspace needs at least 2 points")
	}
	return floats.Span(make([]float64, n), start, stop)
}

func (CPU) Meshgrid(x, y []float64) (xx, yy [][]float64) {
	xx = make([][]float64, len(y))
	yy = make([][]float64, len(y))
	for j := range y {
		xx[j] = make([]float64, len(x))
		copy(xx[j], x)
		yy[j] = make([]float64, len(x))
		floats.AddConst(y[j], yy[j])
	}
	return xx, yy
}

func (CPU) Trapz(y, x []float64) float64 {
	return integrate.Trapezoidal(x, y)
}

func (CPU) Mul(a, b []float64) []float64 {
	return floats.MulTo(make([]float64, len(a)), a, b)
}

func (CPU) Scale(c float64, a []float64) []float64 {
	return floats.ScaleTo(make([]float64, len(a)), c, a)
}

func (CPU) AddConst(c float64, a []float64) []float64 {
	dst := make([]float64, len(a))
	copy(dst, a)
	floats.AddConst(c, dst)
	return dst
}

func (CPU) Within(x []float64, lo, hi float64) []bool {
	keep := make([]bool, len(x))
	for i, v := range x {
		keep[i] = lo <= v && v <= hi
	}
	return keep
}

func (CPU) MaskTo(dst []float64, keep []bool) []float64 {
	if len(dst) != len(keep) {
		panic("array: MaskTo length mismatch")
	}
	for i, k := range keep {
		if !k {
			dst[i] = 0
		}
	}
	return dst
}
