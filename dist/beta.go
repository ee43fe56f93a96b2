// Copyright 2025 The GWPopulation Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import "gonum.org/v1/gonum/stat/distuv"

// Beta is a beta distribution with shape parameters Alpha and Beta,
// rescaled from [0, 1] to the support [0, Scale].
//
// https://arxiv.org/abs/1805.06442 Eq. (10) uses this form for black
// hole spin magnitudes with Scale = a_max.
type Beta struct {
	Alpha, Beta float64

	// Scale is the upper end of the support. The standard beta
	// distribution has Scale = 1.
	Scale float64
}

// PDF returns the density of the rescaled beta distribution at x. It
// is zero outside [0, Scale] and zero everywhere if Alpha, Beta, or
// Scale is out of domain.
func (d Beta) PDF(x float64) float64 {
	if d.Alpha <= 0 || d.Beta <= 0 || d.Scale <= 0 {
		return 0
	}
	if x < 0 || x > d.Scale {
		return 0
	}
	b := distuv.Beta{Alpha: d.Alpha, Beta: d.Beta}
	return b.Prob(x/d.Scale) / d.Scale
}

// PDFEach returns PDF(xs[i]) for each i.
func (d Beta) PDFEach(xs []float64) []float64 {
	res := make([]float64, len(xs))
	if d.Alpha <= 0 || d.Beta <= 0 || d.Scale <= 0 {
		return res
	}
	b := distuv.Beta{Alpha: d.Alpha, Beta: d.Beta}
	for i, x := range xs {
		if x < 0 || x > d.Scale {
			continue
		}
		res[i] = b.Prob(x/d.Scale) / d.Scale
	}
	return res
}

// Bounds returns the support of the distribution.
func (d Beta) Bounds() (float64, float64) {
	return 0, d.Scale
}
