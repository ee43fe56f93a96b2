// Copyright 2025 The GWPopulation Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package array abstracts the numeric operations the density models
// need behind a small capability interface, so the same model code can
// run against a CPU implementation or an accelerator-resident one.
//
// The backend is process-wide configuration: resolve it once at
// startup with Use and read it with Current. Model packages never
// import a concrete numeric library directly.
package array // import "github.com/lucymthomas/gwpopulation/array"

// A Backend provides the elementwise and quadrature operations the
// density models are written against. Implementations must be
// reentrant: model evaluation may call a Backend concurrently from
// multiple goroutines.
type Backend interface {
	// Linspace returns n evenly spaced values from start to stop
	// inclusive. n must be >= 2.
	Linspace(start, stop float64, n int) []float64

	// Meshgrid expands the coordinate vectors x and y into two
	// len(y)-row, len(x)-column grids: xx[j][i] = x[i] and
	// yy[j][i] = y[j].
	Meshgrid(x, y []float64) (xx, yy [][]float64)

	// Trapz integrates y sampled at coordinates x by the
	// trapezoidal rule. len(y) must equal len(x) and x must be
	// strictly increasing.
	Trapz(y, x []float64) float64

	// Mul returns the elementwise product a*b as a new slice.
	// len(a) must equal len(b).
	Mul(a, b []float64) []float64

	// Scale returns c*a as a new slice.
	Scale(c float64, a []float64) []float64

	// AddConst returns c+a as a new slice.
	AddConst(c float64, a []float64) []float64

	// Within returns the boolean mask lo <= x[i] <= hi.
	Within(x []float64, lo, hi float64) []bool

	// MaskTo zeroes dst[i] wherever keep[i] is false and returns
	// dst. len(dst) must equal len(keep).
	MaskTo(dst []float64, keep []bool) []float64
}

var current Backend = CPU{}

// Use selects the process-wide backend. It is intended to be called
// once during startup, before any model evaluation; it is not
// synchronized against concurrent Current calls.
func Use(b Backend) {
	if b == nil {
		panic("array: nil backend")
	}
	current = b
}

// Current returns the process-wide backend.
func Current() Backend {
	return current
}
