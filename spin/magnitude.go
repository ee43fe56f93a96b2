// Copyright 2025 The GWPopulation Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spin

import (
	"github.com/lucymthomas/gwpopulation/array"
	"github.com/lucymthomas/gwpopulation/dist"
	"github.com/lucymthomas/gwpopulation/popmodel"
)

// IIDSpinMagnitudeBeta is the joint density of both spin magnitudes
// under independent and identically distributed beta distributions
// rescaled to [0, amax].
//
// https://arxiv.org/abs/1805.06442 Eq. (10)
//
// The dataset must contain "a_1" and "a_2".
func IIDSpinMagnitudeBeta(d popmodel.Dataset, amax, alphaChi, betaChi float64) []float64 {
	return IndependentSpinMagnitudeBeta(d, alphaChi, alphaChi, betaChi, betaChi, amax, amax)
}

// IndependentSpinMagnitudeBeta is the joint density of both spin
// magnitudes under independent beta distributions with per-component
// shape parameters and maxima. Each rescaled beta density integrates
// to 1 over its own [0, amax_i], so the product needs no further
// normalization.
//
// The dataset must contain "a_1" and "a_2".
func IndependentSpinMagnitudeBeta(d popmodel.Dataset, alphaChi1, alphaChi2, betaChi1, betaChi2, amax1, amax2 float64) []float64 {
	p1 := dist.Beta{Alpha: alphaChi1, Beta: betaChi1, Scale: amax1}.PDFEach(d.MustColumn("a_1"))
	p2 := dist.Beta{Alpha: alphaChi2, Beta: betaChi2, Scale: amax2}.PDFEach(d.MustColumn("a_2"))
	return array.Current().Mul(p1, p2)
}
