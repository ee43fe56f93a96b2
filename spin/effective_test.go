// Copyright 2025 The GWPopulation Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucymthomas/gwpopulation/popmodel"
)

func effectiveDataset(chiEff, chiP []float64) popmodel.Dataset {
	return popmodel.Dataset{"chi_eff": chiEff, "chi_p": chiP}
}

// gridDataset flattens the full quadrature support into one dataset
// row per mesh point, returning the coordinate vectors as well.
func gridDataset(nEff, nP int) (popmodel.Dataset, []float64, []float64) {
	chiEffLin := b().Linspace(-1, 1, nEff)
	chiPLin := b().Linspace(0, 1, nP)
	xx, yy := b().Meshgrid(chiEffLin, chiPLin)
	var chiEff, chiP []float64
	for j := range xx {
		chiEff = append(chiEff, xx[j]...)
		chiP = append(chiP, yy[j]...)
	}
	return effectiveDataset(chiEff, chiP), chiEffLin, chiPLin
}

// integrate2D reduces a row-major nEff*nP-long density to its
// integral over the support.
func integrate2D(prob, chiEffLin, chiPLin []float64) float64 {
	inner := make([]float64, len(chiPLin))
	for j := range chiPLin {
		inner[j] = b().Trapz(prob[j*len(chiEffLin):(j+1)*len(chiEffLin)], chiEffLin)
	}
	return b().Trapz(inner, chiPLin)
}

func TestGaussianEffectiveFastPath(t *testing.T) {
	d := effectiveDataset(
		[]float64{-0.8, -0.2, 0, 0.4, 0.9},
		[]float64{0.05, 0.3, 0.2, 0.7, 0.95},
	)
	got, err := GaussianChiEffChiP(d, 0.1, 0.3, 0.3, 0.25, 0)
	require.NoError(t, err)
	want := b().Mul(GaussianChiEff(d, 0.1, 0.3), GaussianChiP(d, 0.3, 0.25))
	assert.Equal(t, want, got)
}

func TestGaussianEffectiveGeneralMatchesFastPath(t *testing.T) {
	// The quadrature-normalized general path evaluated in the
	// separable limit must agree with the product of marginals up
	// to the grid's quadrature error.
	d := effectiveDataset(
		[]float64{-0.5, 0, 0.25, 0.8},
		[]float64{0.1, 0.2, 0.5, 0.9},
	)
	fast, err := GaussianChiEffChiP(d, 0, 0.2, 0.2, 0.2, 0)
	require.NoError(t, err)
	general, err := gaussianChiEffChiPCorrelated(d, 0, 0.2, 0.2, 0.2, 0)
	require.NoError(t, err)
	for i := range fast {
		assert.InEpsilon(t, fast[i], general[i], 1e-4)
	}
}

func TestGaussianEffectiveNormalized(t *testing.T) {
	d, chiEffLin, chiPLin := gridDataset(401, 201)
	prob, err := GaussianChiEffChiP(d, 0, 0.2, 0.2, 0.2, 0.5)
	require.NoError(t, err)
	assert.InDelta(t, 1, integrate2D(prob, chiEffLin, chiPLin), 1e-3)
}

func TestGaussianEffectiveMode(t *testing.T) {
	// With the mode inside the support, no scanned point may beat
	// it.
	d, _, _ := gridDataset(201, 101)
	prob, err := GaussianChiEffChiP(d, 0, 0.2, 0.2, 0.2, 0.5)
	require.NoError(t, err)

	at, err := GaussianChiEffChiP(effectiveDataset([]float64{0}, []float64{0.2}), 0, 0.2, 0.2, 0.2, 0.5)
	require.NoError(t, err)
	for _, v := range prob {
		assert.LessOrEqual(t, v, at[0])
	}
}

func TestGaussianEffectiveTruncation(t *testing.T) {
	d := effectiveDataset(
		[]float64{-1.2, 1.5, 0, 0.2},
		[]float64{0.5, 0.5, -0.1, 1.4},
	)
	for _, rho := range []float64{0, 0.7, -0.4} {
		prob, err := GaussianChiEffChiP(d, 0, 0.5, 0.3, 0.5, rho)
		require.NoError(t, err)
		for i, v := range prob {
			assert.Zerof(t, v, "row %d, rho %v", i, rho)
		}
	}
}

func TestGaussianEffectiveDegenerate(t *testing.T) {
	d := effectiveDataset([]float64{0}, []float64{0.5})
	_, err := GaussianChiEffChiP(d, 100, 0.01, 0.5, 0.01, 0.5)
	assert.ErrorIs(t, err, ErrDegenerateNormalization)
}

func TestSkewGaussianEffectiveFastPath(t *testing.T) {
	d := effectiveDataset(
		[]float64{-0.3, 0.1, 0.6},
		[]float64{0.2, 0.4, 0.8},
	)
	got, err := SkewGaussianChiEffChiP(d, 0.1, 0.3, 0.3, 0.25, 2, -1, 0)
	require.NoError(t, err)
	want := b().Mul(
		SkewGaussianChiEff(d, 0.1, 0.3, 2),
		SkewGaussianChiP(d, 0.3, 0.25, -1),
	)
	assert.Equal(t, want, got)
}

func TestSkewGaussianEffectiveReducesToGaussian(t *testing.T) {
	// Zero skewness must reproduce the plain correlated model: the
	// constant Φ(0)² factor cancels between kernel and
	// normalization.
	d := effectiveDataset(
		[]float64{-0.5, 0, 0.3, 0.9},
		[]float64{0.1, 0.2, 0.6, 0.8},
	)
	plain, err := GaussianChiEffChiP(d, 0, 0.2, 0.2, 0.2, 0.5)
	require.NoError(t, err)
	skew, err := SkewGaussianChiEffChiP(d, 0, 0.2, 0.2, 0.2, 0, 0, 0.5)
	require.NoError(t, err)
	for i := range plain {
		assert.InEpsilon(t, plain[i], skew[i], 1e-10)
	}
}

func TestSkewGaussianEffectiveNormalized(t *testing.T) {
	d, chiEffLin, chiPLin := gridDataset(401, 201)
	prob, err := SkewGaussianChiEffChiP(d, 0, 0.3, 0.3, 0.2, 1.5, -0.5, 0.3)
	require.NoError(t, err)
	assert.InDelta(t, 1, integrate2D(prob, chiEffLin, chiPLin), 1e-3)
}

func TestSkewGaussianEffectiveDegenerate(t *testing.T) {
	d := effectiveDataset([]float64{0}, []float64{0.5})
	_, err := SkewGaussianChiEffChiP(d, -50, 0.01, 0.5, 0.01, 1, 1, 0.2)
	assert.ErrorIs(t, err, ErrDegenerateNormalization)
}
