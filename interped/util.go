// Copyright 2025 The GWPopulation Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package interped

import (
	"math"

	"github.com/lucymthomas/gwpopulation/popmodel"
)

func isBadNorm(norm float64) bool {
	return math.IsNaN(norm) || math.IsInf(norm, 0) || norm < 1e-300
}

func init() {
	// Default presets matching the analytic spin models' supports,
	// with 5 nodes and cubic interpolation.
	popmodel.Register("spline_spin_magnitude_identical", SplineSpinMagnitudeIdentical(5, Cubic))
	popmodel.Register("spline_spin_tilt_identical", SplineSpinTiltIdentical(5, Cubic))
}
