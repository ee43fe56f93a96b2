// Copyright 2025 The GWPopulation Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package interped

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucymthomas/gwpopulation/array"
	"github.com/lucymthomas/gwpopulation/popmodel"
)

// nodeParams builds "f0" .. "f{n-1}" hyperparameters.
func nodeParams(fs ...float64) popmodel.Params {
	p := popmodel.Params{}
	for i, f := range fs {
		p[fmt.Sprintf("f%d", i)] = f
	}
	return p
}

func TestConstantNodesGiveUniform(t *testing.T) {
	// Equal log-density at every node interpolates to a constant,
	// and normalization makes the constant's value irrelevant: the
	// density is uniform, 1/2 per tilt axis, 1/4 jointly.
	m := SplineSpinTiltIdentical(5, Cubic)
	d := popmodel.Dataset{
		"cos_tilt_1": []float64{-0.9, 0, 0.7},
		"cos_tilt_2": []float64{0.5, -0.4, 1},
	}
	for _, level := range []float64{0, 2, -3} {
		got, err := m.Prob(d, nodeParams(level, level, level, level, level))
		require.NoError(t, err)
		for _, v := range got {
			assert.InDelta(t, 0.25, v, 1e-9)
		}
	}
}

func TestInterpolatedNormalized(t *testing.T) {
	// A single-column model integrates to 1 whatever the node
	// heights.
	m := Identical{Parameters: []string{"a_1"}, Minimum: 0, Maximum: 1, Nodes: 5, Kind: Cubic}
	p := nodeParams(0.5, -1, 2, 0.3, -0.7)

	b := array.Current()
	grid := b.Linspace(0, 1, 2001)
	got, err := m.Prob(popmodel.Dataset{"a_1": grid}, p)
	require.NoError(t, err)
	assert.InDelta(t, 1, b.Trapz(got, grid), 1e-3)
}

func TestInterpolatedOutOfRange(t *testing.T) {
	m := SplineSpinMagnitudeIdentical(5, Linear)
	d := popmodel.Dataset{
		"a_1": []float64{0.5, 1.2},
		"a_2": []float64{-0.1, 0.5},
	}
	got, err := m.Prob(d, nodeParams(0, 0, 0, 0, 0))
	require.NoError(t, err)
	assert.Zero(t, got[0])
	assert.Zero(t, got[1])
}

func TestInterpolatedShape(t *testing.T) {
	// Higher node height means higher density around that node.
	m := Identical{Parameters: []string{"a_1"}, Minimum: 0, Maximum: 1, Nodes: 3, Kind: Linear}
	d := popmodel.Dataset{"a_1": []float64{0.05, 0.95}}
	got, err := m.Prob(d, nodeParams(0, 0, 2))
	require.NoError(t, err)
	assert.Greater(t, got[1], got[0])
}

func TestInterpolatedKinds(t *testing.T) {
	d := popmodel.Dataset{"a_1": []float64{0.3}, "a_2": []float64{0.6}}
	p := nodeParams(0, 1, 0.5, -0.5, 0)
	for _, kind := range []Kind{Cubic, Linear, Akima} {
		m := SplineSpinMagnitudeIdentical(5, kind)
		got, err := m.Prob(d, p)
		require.NoErrorf(t, err, "kind %v", kind)
		assert.Positivef(t, got[0], "kind %v", kind)
	}
	assert.Panics(t, func() {
		m := SplineSpinMagnitudeIdentical(5, Kind(42))
		m.Prob(d, p)
	})
}

func TestPresetsRegistered(t *testing.T) {
	for _, name := range []string{
		"spline_spin_magnitude_identical",
		"spline_spin_tilt_identical",
	} {
		m, err := popmodel.Lookup(name)
		require.NoError(t, err)
		assert.NotNil(t, m)
	}
}

func TestIdenticalColumnsShareDensity(t *testing.T) {
	// Both columns see the same one-dimensional density, so
	// swapping the columns leaves the joint density unchanged.
	m := SplineSpinMagnitudeIdentical(5, Cubic)
	p := nodeParams(0.2, -0.4, 1.1, 0.6, -0.9)
	fwd, err := m.Prob(popmodel.Dataset{
		"a_1": []float64{0.25}, "a_2": []float64{0.75},
	}, p)
	require.NoError(t, err)
	rev, err := m.Prob(popmodel.Dataset{
		"a_1": []float64{0.75}, "a_2": []float64{0.25},
	}, p)
	require.NoError(t, err)
	assert.InDelta(t, fwd[0], rev[0], 1e-15)
}
