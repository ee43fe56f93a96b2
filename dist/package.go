// Copyright 2025 The GWPopulation Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// dist provides the closed-form and kernel densities the population
// models are composed from: a rescaled beta distribution, truncated
// (skew-)normal distributions, and the unnormalized bivariate
// (skew-)Gaussian kernels used by the correlated effective-spin
// models.
//
// Every type here is a pure parameter struct; constructing one
// allocates nothing and evaluation has no hidden state. Out-of-domain
// shape parameters (non-positive sigma or beta shapes) yield zero
// density rather than an error, so an inference layer can treat such
// hyperparameter draws as zero likelihood.
package dist // import "github.com/lucymthomas/gwpopulation/dist"
