// Copyright 2025 The GWPopulation Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spin

import (
	"errors"
	"fmt"
	"math"

	"github.com/lucymthomas/gwpopulation/array"
	"github.com/lucymthomas/gwpopulation/dist"
	"github.com/lucymthomas/gwpopulation/popmodel"
)

// Quadrature resolution for the joint chi_eff/chi_p normalizing
// constant. The grid is rebuilt on every call so the constant always
// reflects the hyperparameters passed in.
const (
	chiEffPoints = 500
	chiPPoints   = 250
)

// minNormalization is the smallest normalizing constant accepted
// before the evaluation is reported as degenerate. Below this, all
// kernel mass lies outside the quadrature range and dividing by the
// constant would manufacture spurious density.
const minNormalization = 1e-300

// ErrDegenerateNormalization reports that the grid-integrated
// normalizing constant of a correlated model was zero, near-zero, or
// non-finite for the given hyperparameters. Callers typically treat
// the draw as having log-likelihood -inf.
var ErrDegenerateNormalization = errors.New("spin: degenerate normalization")

// GaussianChiEff is a truncated Gaussian density over the effective
// aligned spin chi_eff on [-1, 1].
//
// https://arxiv.org/abs/2001.06051, https://arxiv.org/abs/2010.14533
//
// The dataset must contain "chi_eff".
func GaussianChiEff(d popmodel.Dataset, muChiEff, sigmaChiEff float64) []float64 {
	return dist.TruncNormal{Mu: muChiEff, Sigma: sigmaChiEff, Low: -1, High: 1}.
		PDFEach(d.MustColumn("chi_eff"))
}

// GaussianChiP is a truncated Gaussian density over the effective
// precessing spin chi_p on [0, 1].
//
// The dataset must contain "chi_p".
func GaussianChiP(d popmodel.Dataset, muChiP, sigmaChiP float64) []float64 {
	return dist.TruncNormal{Mu: muChiP, Sigma: sigmaChiP, Low: 0, High: 1}.
		PDFEach(d.MustColumn("chi_p"))
}

// SkewGaussianChiEff is a truncated skew-normal density over chi_eff
// on [-1, 1].
//
// The dataset must contain "chi_eff".
func SkewGaussianChiEff(d popmodel.Dataset, muChiEff, sigmaChiEff, skewChiEff float64) []float64 {
	return dist.TruncSkewNormal{Mu: muChiEff, Sigma: sigmaChiEff, Alpha: skewChiEff, Low: -1, High: 1}.
		PDFEach(d.MustColumn("chi_eff"))
}

// SkewGaussianChiP is a truncated skew-normal density over chi_p on
// [0, 1].
//
// The dataset must contain "chi_p".
func SkewGaussianChiP(d popmodel.Dataset, muChiP, sigmaChiP, skewChiP float64) []float64 {
	return dist.TruncSkewNormal{Mu: muChiP, Sigma: sigmaChiP, Alpha: skewChiP, Low: 0, High: 1}.
		PDFEach(d.MustColumn("chi_p"))
}

// GaussianChiEffChiP is the joint density of chi_eff and chi_p under
// a correlated bivariate Gaussian with correlation rho, truncated to
// chi_eff in [-1, 1] and chi_p in [0, 1].
//
// For rho = 0 the joint density separates exactly, so it is evaluated
// as the literal product of GaussianChiEff and GaussianChiP with no
// quadrature. Otherwise the truncated normalizing constant has no
// closed form and is computed by trapezoidal quadrature on a
// 500x250 grid; hyperparameters for which the constant vanishes
// return ErrDegenerateNormalization.
//
// https://arxiv.org/abs/2001.06051, https://arxiv.org/abs/2010.14533
//
// The dataset must contain "chi_eff" and "chi_p".
func GaussianChiEffChiP(d popmodel.Dataset, muChiEff, sigmaChiEff, muChiP, sigmaChiP, rho float64) ([]float64, error) {
	if rho == 0 {
		return array.Current().Mul(
			GaussianChiEff(d, muChiEff, sigmaChiEff),
			GaussianChiP(d, muChiP, sigmaChiP),
		), nil
	}
	return gaussianChiEffChiPCorrelated(d, muChiEff, sigmaChiEff, muChiP, sigmaChiP, rho)
}

// gaussianChiEffChiPCorrelated is the quadrature-normalized general
// path. It is mathematically valid for any |rho| < 1 including zero;
// GaussianChiEffChiP routes rho = 0 to the separable product instead
// purely to skip the quadrature.
func gaussianChiEffChiPCorrelated(d popmodel.Dataset, muChiEff, sigmaChiEff, muChiP, sigmaChiP, rho float64) ([]float64, error) {
	b := array.Current()
	kernel := dist.BivariateNormalKernel{
		MuX: muChiEff, MuY: muChiP,
		SigmaX: sigmaChiEff, SigmaY: sigmaChiP,
		Rho: rho,
	}
	chiEff := d.MustColumn("chi_eff")
	chiP := d.MustColumn("chi_p")
	prob := kernel.PDFEach(chiEff, chiP)

	norm := gaussianNormalization(muChiEff, sigmaChiEff, muChiP, sigmaChiP, rho)
	if err := checkNormalization(norm); err != nil {
		return nil, err
	}
	prob = b.Scale(1/norm, prob)
	prob = b.MaskTo(prob, b.Within(chiEff, -1, 1))
	prob = b.MaskTo(prob, b.Within(chiP, 0, 1))
	return prob, nil
}

// SkewGaussianChiEffChiP is the skewed counterpart of
// GaussianChiEffChiP, with per-axis skewness skewChiEff and skewChiP.
// The quadrature and truncation behavior is identical.
//
// The dataset must contain "chi_eff" and "chi_p".
func SkewGaussianChiEffChiP(d popmodel.Dataset, muChiEff, sigmaChiEff, muChiP, sigmaChiP, skewChiEff, skewChiP, rho float64) ([]float64, error) {
	if rho == 0 {
		return array.Current().Mul(
			SkewGaussianChiEff(d, muChiEff, sigmaChiEff, skewChiEff),
			SkewGaussianChiP(d, muChiP, sigmaChiP, skewChiP),
		), nil
	}
	return skewGaussianChiEffChiPCorrelated(d, muChiEff, sigmaChiEff, muChiP, sigmaChiP, skewChiEff, skewChiP, rho)
}

// skewGaussianChiEffChiPCorrelated is the quadrature-normalized
// general path for the skewed model.
func skewGaussianChiEffChiPCorrelated(d popmodel.Dataset, muChiEff, sigmaChiEff, muChiP, sigmaChiP, skewChiEff, skewChiP, rho float64) ([]float64, error) {
	b := array.Current()
	kernel := dist.BivariateSkewNormalKernel{
		MuX: muChiEff, MuY: muChiP,
		SigmaX: sigmaChiEff, SigmaY: sigmaChiP,
		AlphaX: skewChiEff, AlphaY: skewChiP,
		Rho: rho,
	}
	chiEff := d.MustColumn("chi_eff")
	chiP := d.MustColumn("chi_p")
	prob := kernel.PDFEach(chiEff, chiP)

	norm := skewGaussianNormalization(muChiEff, sigmaChiEff, muChiP, sigmaChiP, skewChiEff, skewChiP, rho)
	if err := checkNormalization(norm); err != nil {
		return nil, err
	}
	prob = b.Scale(1/norm, prob)
	prob = b.MaskTo(prob, b.Within(chiEff, -1, 1))
	prob = b.MaskTo(prob, b.Within(chiP, 0, 1))
	return prob, nil
}

// gaussianNormalization integrates the unnormalized bivariate
// Gaussian kernel over chi_eff in [-1, 1] and chi_p in [0, 1] by
// nested trapezoidal quadrature, chi_eff first.
func gaussianNormalization(muChiEff, sigmaChiEff, muChiP, sigmaChiP, rho float64) float64 {
	kernel := dist.BivariateNormalKernel{
		MuX: muChiEff, MuY: muChiP,
		SigmaX: sigmaChiEff, SigmaY: sigmaChiP,
		Rho: rho,
	}
	return quadrature(kernel.PDFGrid)
}

// skewGaussianNormalization is gaussianNormalization for the skewed
// kernel.
func skewGaussianNormalization(muChiEff, sigmaChiEff, muChiP, sigmaChiP, skewChiEff, skewChiP, rho float64) float64 {
	kernel := dist.BivariateSkewNormalKernel{
		MuX: muChiEff, MuY: muChiP,
		SigmaX: sigmaChiEff, SigmaY: sigmaChiP,
		AlphaX: skewChiEff, AlphaY: skewChiP,
		Rho: rho,
	}
	return quadrature(kernel.PDFGrid)
}

// quadrature evaluates gridFn on the fixed chi_eff x chi_p mesh and
// reduces it to a scalar by nested 1-D trapezoidal integration.
func quadrature(gridFn func(xx, yy [][]float64) [][]float64) float64 {
	b := array.Current()
	chiEffLin := b.Linspace(-1, 1, chiEffPoints)
	chiPLin := b.Linspace(0, 1, chiPPoints)
	xx, yy := b.Meshgrid(chiEffLin, chiPLin)
	grid := gridFn(xx, yy)

	inner := make([]float64, len(grid))
	for j := range grid {
		inner[j] = b.Trapz(grid[j], chiEffLin)
	}
	return b.Trapz(inner, chiPLin)
}

func checkNormalization(norm float64) error {
	if math.IsNaN(norm) || math.IsInf(norm, 0) || norm < minNormalization {
		return fmt.Errorf("%w: grid integral %g", ErrDegenerateNormalization, norm)
	}
	return nil
}
