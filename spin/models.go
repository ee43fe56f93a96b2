// Copyright 2025 The GWPopulation Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spin

import "github.com/lucymthomas/gwpopulation/popmodel"

// The spin models are published in the popmodel registry under the
// names used by inference configurations. The adapters pull the named
// hyperparameters out of the Params map and call the typed functions.

func init() {
	register := func(name string, f func(d popmodel.Dataset, p popmodel.Params) ([]float64, error)) {
		popmodel.Register(name, popmodel.ModelFunc(f))
	}

	register("iid_spin", func(d popmodel.Dataset, p popmodel.Params) ([]float64, error) {
		return IIDSpin(d,
			p.Get("xi_spin"), p.Get("sigma_spin"),
			p.Get("amax"), p.Get("alpha_chi"), p.Get("beta_chi"),
		), nil
	})
	register("iid_spin_magnitude_beta", func(d popmodel.Dataset, p popmodel.Params) ([]float64, error) {
		return IIDSpinMagnitudeBeta(d, p.Get("amax"), p.Get("alpha_chi"), p.Get("beta_chi")), nil
	})
	register("independent_spin_magnitude_beta", func(d popmodel.Dataset, p popmodel.Params) ([]float64, error) {
		return IndependentSpinMagnitudeBeta(d,
			p.Get("alpha_chi_1"), p.Get("alpha_chi_2"),
			p.Get("beta_chi_1"), p.Get("beta_chi_2"),
			p.Get("amax_1"), p.Get("amax_2"),
		), nil
	})
	register("iid_spin_orientation_gaussian_isotropic", func(d popmodel.Dataset, p popmodel.Params) ([]float64, error) {
		return IIDSpinOrientationGaussianIsotropic(d, p.Get("xi_spin"), p.Get("sigma_spin")), nil
	})
	register("independent_spin_orientation_gaussian_isotropic", func(d popmodel.Dataset, p popmodel.Params) ([]float64, error) {
		return IndependentSpinOrientationGaussianIsotropic(d,
			p.Get("xi_spin"), p.Get("sigma_1"), p.Get("sigma_2"),
		), nil
	})
	register("gaussian_chi_eff", func(d popmodel.Dataset, p popmodel.Params) ([]float64, error) {
		return GaussianChiEff(d, p.Get("mu_chi_eff"), p.Get("sigma_chi_eff")), nil
	})
	register("gaussian_chi_p", func(d popmodel.Dataset, p popmodel.Params) ([]float64, error) {
		return GaussianChiP(d, p.Get("mu_chi_p"), p.Get("sigma_chi_p")), nil
	})
	register("gaussian_chi_p_chi_eff", func(d popmodel.Dataset, p popmodel.Params) ([]float64, error) {
		return GaussianChiEffChiP(d,
			p.Get("mu_chi_eff"), p.Get("sigma_chi_eff"),
			p.Get("mu_chi_p"), p.Get("sigma_chi_p"),
			p.Get("rho"),
		)
	})
	register("skew_gaussian_chi_eff", func(d popmodel.Dataset, p popmodel.Params) ([]float64, error) {
		return SkewGaussianChiEff(d,
			p.Get("mu_chi_eff"), p.Get("sigma_chi_eff"), p.Get("skew_chi_eff"),
		), nil
	})
	register("skew_gaussian_chi_p", func(d popmodel.Dataset, p popmodel.Params) ([]float64, error) {
		return SkewGaussianChiP(d,
			p.Get("mu_chi_p"), p.Get("sigma_chi_p"), p.Get("skew_chi_p"),
		), nil
	})
	register("gaussian_chi_p_chi_eff_skew", func(d popmodel.Dataset, p popmodel.Params) ([]float64, error) {
		return SkewGaussianChiEffChiP(d,
			p.Get("mu_chi_eff"), p.Get("sigma_chi_eff"),
			p.Get("mu_chi_p"), p.Get("sigma_chi_p"),
			p.Get("skew_chi_eff"), p.Get("skew_chi_p"),
			p.Get("rho"),
		)
	})
}
