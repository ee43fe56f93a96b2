// Copyright 2025 The GWPopulation Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/lucymthomas/gwpopulation/array"
)

// TruncNormal is a normal distribution with mean Mu and standard
// deviation Sigma restricted to [Low, High] and renormalized so the
// restricted density integrates to 1.
type TruncNormal struct {
	Mu, Sigma float64
	Low, High float64
}

// norm returns the probability mass of the untruncated normal inside
// [Low, High]. Zero Sigma (or worse) has no valid normalization and
// reports zero mass.
func (d TruncNormal) norm() float64 {
	if d.High < d.Low {
		panic("dist: TruncNormal support inverted")
	}
	if d.Sigma <= 0 {
		return 0
	}
	n := distuv.Normal{Mu: d.Mu, Sigma: d.Sigma}
	return n.CDF(d.High) - n.CDF(d.Low)
}

// PDF returns the truncated normal density at x. It is zero outside
// [Low, High] and zero everywhere if Sigma <= 0.
func (d TruncNormal) PDF(x float64) float64 {
	norm := d.norm()
	if norm <= 0 || x < d.Low || x > d.High {
		return 0
	}
	n := distuv.Normal{Mu: d.Mu, Sigma: d.Sigma}
	return n.Prob(x) / norm
}

// PDFEach returns PDF(xs[i]) for each i.
func (d TruncNormal) PDFEach(xs []float64) []float64 {
	res := make([]float64, len(xs))
	norm := d.norm()
	if norm <= 0 {
		return res
	}
	n := distuv.Normal{Mu: d.Mu, Sigma: d.Sigma}
	for i, x := range xs {
		if x < d.Low || x > d.High {
			continue
		}
		res[i] = n.Prob(x) / norm
	}
	return res
}

// Bounds returns the support of the distribution.
func (d TruncNormal) Bounds() (float64, float64) {
	return d.Low, d.High
}

// TruncSkewNormal is a skew-normal distribution with location Mu,
// scale Sigma, and shape Alpha restricted to [Low, High] and
// renormalized over that interval.
//
// The skew-normal CDF has no elementary closed form, so the
// normalizing constant is computed by trapezoidal quadrature over the
// truncated support. Alpha = 0 recovers TruncNormal to within the
// quadrature error.
type TruncSkewNormal struct {
	Mu, Sigma float64
	Alpha     float64
	Low, High float64
}

// skewNormPoints is the quadrature resolution for the normalizing
// constant of the one-dimensional truncated skew-normal.
const skewNormPoints = 1000

// kernel is the unnormalized skew-normal density 2·φ(z)·Φ(Alpha·z)/σ.
func (d TruncSkewNormal) kernel(x float64) float64 {
	std := distuv.UnitNormal
	z := (x - d.Mu) / d.Sigma
	return 2 * std.Prob(z) * std.CDF(d.Alpha*z) / d.Sigma
}

// norm returns the kernel mass inside [Low, High].
func (d TruncSkewNormal) norm() float64 {
	if d.High < d.Low {
		panic("dist: TruncSkewNormal support inverted")
	}
	if d.Sigma <= 0 {
		return 0
	}
	b := array.Current()
	grid := b.Linspace(d.Low, d.High, skewNormPoints)
	vals := make([]float64, len(grid))
	for i, g := range grid {
		vals[i] = d.kernel(g)
	}
	return b.Trapz(vals, grid)
}

// PDF returns the truncated skew-normal density at x. It is zero
// outside [Low, High] and zero everywhere if Sigma <= 0.
func (d TruncSkewNormal) PDF(x float64) float64 {
	norm := d.norm()
	if norm <= 0 || x < d.Low || x > d.High {
		return 0
	}
	return d.kernel(x) / norm
}

// PDFEach returns PDF(xs[i]) for each i. The normalizing constant is
// computed once for the whole slice.
func (d TruncSkewNormal) PDFEach(xs []float64) []float64 {
	res := make([]float64, len(xs))
	norm := d.norm()
	if norm <= 0 {
		return res
	}
	for i, x := range xs {
		if x < d.Low || x > d.High {
			continue
		}
		res[i] = d.kernel(x) / norm
	}
	return res
}

// Bounds returns the support of the distribution.
func (d TruncSkewNormal) Bounds() (float64, float64) {
	return d.Low, d.High
}
