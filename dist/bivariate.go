// Copyright 2025 The GWPopulation Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// BivariateNormalKernel is the unnormalized density of a correlated
// bivariate normal distribution,
//
//	exp(-(zx² - 2·Rho·zx·zy + zy²) / (2·(1 - Rho²)))
//
// with zx = (x-MuX)/SigmaX and zy = (y-MuY)/SigmaY. It is defined on
// the whole plane; truncation and normalization are the caller's
// responsibility (the correlated effective-spin models normalize it by
// grid quadrature).
type BivariateNormalKernel struct {
	MuX, MuY       float64
	SigmaX, SigmaY float64
	Rho            float64
}

func (k BivariateNormalKernel) valid() bool {
	return k.SigmaX > 0 && k.SigmaY > 0 && math.Abs(k.Rho) < 1
}

// PDF returns the unnormalized kernel value at (x, y), or zero if the
// parameters are out of domain.
func (k BivariateNormalKernel) PDF(x, y float64) float64 {
	if !k.valid() {
		return 0
	}
	zx := (x - k.MuX) / k.SigmaX
	zy := (y - k.MuY) / k.SigmaY
	return math.Exp(-(zx*zx - 2*k.Rho*zx*zy + zy*zy) / (2 * (1 - k.Rho*k.Rho)))
}

// PDFEach returns PDF(xs[i], ys[i]) for each i.
func (k BivariateNormalKernel) PDFEach(xs, ys []float64) []float64 {
	if len(xs) != len(ys) {
		panic("dist: PDFEach length mismatch")
	}
	res := make([]float64, len(xs))
	for i := range xs {
		res[i] = k.PDF(xs[i], ys[i])
	}
	return res
}

// PDFGrid returns PDF(xx[j][i], yy[j][i]) over a meshgrid pair.
func (k BivariateNormalKernel) PDFGrid(xx, yy [][]float64) [][]float64 {
	res := make([][]float64, len(xx))
	for j := range xx {
		res[j] = k.PDFEach(xx[j], yy[j])
	}
	return res
}

// BivariateSkewNormalKernel extends BivariateNormalKernel with
// per-axis skewness: the Gaussian kernel is modulated by
// Φ(AlphaX·zx)·Φ(AlphaY·zy). In the Rho = 0 limit it factorizes into
// the product of two unnormalized one-dimensional skew-normal
// kernels.
type BivariateSkewNormalKernel struct {
	MuX, MuY       float64
	SigmaX, SigmaY float64
	AlphaX, AlphaY float64
	Rho            float64
}

// PDF returns the unnormalized kernel value at (x, y), or zero if the
// parameters are out of domain.
func (k BivariateSkewNormalKernel) PDF(x, y float64) float64 {
	base := BivariateNormalKernel{
		MuX: k.MuX, MuY: k.MuY,
		SigmaX: k.SigmaX, SigmaY: k.SigmaY,
		Rho: k.Rho,
	}
	g := base.PDF(x, y)
	if g == 0 {
		return 0
	}
	std := distuv.UnitNormal
	zx := (x - k.MuX) / k.SigmaX
	zy := (y - k.MuY) / k.SigmaY
	return g * std.CDF(k.AlphaX*zx) * std.CDF(k.AlphaY*zy)
}

// PDFEach returns PDF(xs[i], ys[i]) for each i.
func (k BivariateSkewNormalKernel) PDFEach(xs, ys []float64) []float64 {
	if len(xs) != len(ys) {
		panic("dist: PDFEach length mismatch")
	}
	res := make([]float64, len(xs))
	for i := range xs {
		res[i] = k.PDF(xs[i], ys[i])
	}
	return res
}

// PDFGrid returns PDF(xx[j][i], yy[j][i]) over a meshgrid pair.
func (k BivariateSkewNormalKernel) PDFGrid(xx, yy [][]float64) [][]float64 {
	res := make([][]float64, len(xx))
	for j := range xx {
		res[j] = k.PDFEach(xx[j], yy[j])
	}
	return res
}
