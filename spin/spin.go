// Copyright 2025 The GWPopulation Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// spin implements population probability densities over the spin
// parameters of compact binary systems: component spin magnitudes
// (a_1, a_2), spin-orbit tilt cosines (cos_tilt_1, cos_tilt_2), and
// the effective aligned and precessing spins (chi_eff, chi_p).
//
// Each model is a pure function of a popmodel.Dataset and its scalar
// hyperparameters, returning one density value per dataset row. The
// marginal models are exactly normalized over their supports; the
// correlated chi_eff/chi_p models are normalized on the fly by grid
// quadrature.
package spin // import "github.com/lucymthomas/gwpopulation/spin"

import (
	"github.com/lucymthomas/gwpopulation/array"
	"github.com/lucymthomas/gwpopulation/popmodel"
)

// IIDSpin is the product of IIDSpinMagnitudeBeta and
// IIDSpinOrientationGaussianIsotropic: both component spins are drawn
// from a shared beta magnitude distribution and a shared
// isotropic-plus-aligned orientation mixture, with magnitudes and
// orientations independent of each other.
func IIDSpin(d popmodel.Dataset, xiSpin, sigmaSpin, amax, alphaChi, betaChi float64) []float64 {
	return array.Current().Mul(
		IIDSpinOrientationGaussianIsotropic(d, xiSpin, sigmaSpin),
		IIDSpinMagnitudeBeta(d, amax, alphaChi, betaChi),
	)
}
