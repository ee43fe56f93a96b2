// Copyright 2025 The GWPopulation Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// interped provides data-driven spin densities: the shape is a spline
// through per-node hyperparameters instead of an analytic family, so
// the same inference machinery can fit populations with no assumed
// functional form. These models are drop-in alternatives to the
// analytic models in the spin package.
package interped // import "github.com/lucymthomas/gwpopulation/interped"

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/interp"

	"github.com/lucymthomas/gwpopulation/array"
	"github.com/lucymthomas/gwpopulation/popmodel"
)

// Kind selects the interpolant drawn through the nodes.
type Kind int

const (
	// Cubic is a natural cubic spline.
	Cubic Kind = iota

	// Linear interpolates piecewise linearly.
	Linear

	// Akima is an Akima cubic spline, which limits the
	// overshooting a natural cubic spline can show near sharp
	// features.
	Akima
)

// normPoints is the quadrature resolution for the per-call
// normalizing constant.
const normPoints = 1000

// ErrDegenerateNormalization reports that the interpolated density
// integrated to zero or a non-finite value for the given node
// heights.
var ErrDegenerateNormalization = errors.New("interped: degenerate normalization")

// Identical is an interpolated density shared by several dataset
// columns (typically the primary and secondary component of a
// binary). The configuration is fixed at construction; the node
// heights arrive as hyperparameters at evaluation time.
//
// Nodes are placed uniformly on [Minimum, Maximum]. The
// hyperparameters "f0" .. "f{Nodes-1}" give the log density at each
// node; the density is exp of the interpolant, renormalized by
// trapezoidal quadrature so it integrates to 1 over
// [Minimum, Maximum], and zero outside. The joint density is the
// product over all configured columns, which all share the same node
// heights.
type Identical struct {
	// Parameters are the dataset columns the density applies to.
	Parameters []string

	// [Minimum, Maximum] is the support.
	Minimum, Maximum float64

	// Nodes is the number of spline nodes. It must be >= 2.
	Nodes int

	// Kind selects the interpolant.
	Kind Kind
}

// SplineSpinMagnitudeIdentical is the non-parametric counterpart of
// the iid beta spin-magnitude model: one spline density on [0, 1]
// shared by a_1 and a_2.
func SplineSpinMagnitudeIdentical(nodes int, kind Kind) Identical {
	return Identical{
		Parameters: []string{"a_1", "a_2"},
		Minimum:    0,
		Maximum:    1,
		Nodes:      nodes,
		Kind:       kind,
	}
}

// SplineSpinTiltIdentical is the non-parametric counterpart of the
// iid tilt mixture: one spline density on [-1, 1] shared by
// cos_tilt_1 and cos_tilt_2.
func SplineSpinTiltIdentical(nodes int, kind Kind) Identical {
	return Identical{
		Parameters: []string{"cos_tilt_1", "cos_tilt_2"},
		Minimum:    -1,
		Maximum:    1,
		Nodes:      nodes,
		Kind:       kind,
	}
}

// predictor returns a fresh interpolant fitted through (xs, fs).
func (m Identical) predictor(xs, fs []float64) (interp.Predictor, error) {
	var fp interp.FittablePredictor
	switch m.Kind {
	default:
		panic(fmt.Sprint("interped: unknown interpolation kind ", m.Kind))
	case Cubic:
		fp = &interp.NaturalCubic{}
	case Linear:
		fp = &interp.PiecewiseLinear{}
	case Akima:
		fp = &interp.AkimaSpline{}
	}
	if err := fp.Fit(xs, fs); err != nil {
		return nil, err
	}
	return fp, nil
}

// Prob evaluates the interpolated joint density over the dataset. The
// node heights are read from p as "f0" .. "f{Nodes-1}".
func (m Identical) Prob(d popmodel.Dataset, p popmodel.Params) ([]float64, error) {
	b := array.Current()
	xs := b.Linspace(m.Minimum, m.Maximum, m.Nodes)
	fs := make([]float64, m.Nodes)
	for i := range fs {
		fs[i] = p.Get(fmt.Sprintf("f%d", i))
	}
	pred, err := m.predictor(xs, fs)
	if err != nil {
		return nil, err
	}

	// Normalize exp(spline) over the support.
	grid := b.Linspace(m.Minimum, m.Maximum, normPoints)
	vals := make([]float64, len(grid))
	for i, g := range grid {
		vals[i] = math.Exp(pred.Predict(g))
	}
	norm := b.Trapz(vals, grid)
	if isBadNorm(norm) {
		return nil, fmt.Errorf("%w: integral %g", ErrDegenerateNormalization, norm)
	}

	res := make([]float64, d.Len())
	for i := range res {
		res[i] = 1
	}
	for _, name := range m.Parameters {
		col := d.MustColumn(name)
		for i, x := range col {
			if x < m.Minimum || x > m.Maximum {
				res[i] = 0
				continue
			}
			res[i] *= math.Exp(pred.Predict(x)) / norm
		}
	}
	return res, nil
}
