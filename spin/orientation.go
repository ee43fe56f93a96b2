// Copyright 2025 The GWPopulation Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spin

import (
	"github.com/lucymthomas/gwpopulation/array"
	"github.com/lucymthomas/gwpopulation/dist"
	"github.com/lucymthomas/gwpopulation/popmodel"
)

// IIDSpinOrientationGaussianIsotropic is the tilt mixture with both
// components sharing the aligned-component width sigmaSpin.
//
// The dataset must contain "cos_tilt_1" and "cos_tilt_2".
func IIDSpinOrientationGaussianIsotropic(d popmodel.Dataset, xiSpin, sigmaSpin float64) []float64 {
	return IndependentSpinOrientationGaussianIsotropic(d, xiSpin, sigmaSpin, sigmaSpin)
}

// IndependentSpinOrientationGaussianIsotropic is a two-component
// mixture over the tilt cosines z_1, z_2 in [-1, 1]:
//
//	p(z_1, z_2 | xi, sigma_1, sigma_2) = (1 - xi)/4
//	    + xi · N(z_1; 1, sigma_1, [-1,1]) · N(z_2; 1, sigma_2, [-1,1])
//
// where N is the truncated normal density. The isotropic component is
// uniform on [-1, 1] per axis (density 1/2 each, 1/4 jointly) and
// models dynamically formed binaries; the aligned component peaks at
// perfect alignment z = 1 and models isolated-evolution binaries.
// Whether a binary is aligned is a single mixture draw shared by both
// spins, so the aligned term carries one factor of xi, not xi per
// component.
//
// https://arxiv.org/abs/1704.08370 Eq. (4)
func IndependentSpinOrientationGaussianIsotropic(d popmodel.Dataset, xiSpin, sigma1, sigma2 float64) []float64 {
	b := array.Current()
	t1 := dist.TruncNormal{Mu: 1, Sigma: sigma1, Low: -1, High: 1}.PDFEach(d.MustColumn("cos_tilt_1"))
	t2 := dist.TruncNormal{Mu: 1, Sigma: sigma2, Low: -1, High: 1}.PDFEach(d.MustColumn("cos_tilt_2"))
	aligned := b.Mul(t1, t2)
	return b.AddConst((1-xiSpin)/4, b.Scale(xiSpin, aligned))
}
