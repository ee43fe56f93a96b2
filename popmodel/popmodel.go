// Copyright 2025 The GWPopulation Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// popmodel defines the contract between population density models and
// the inference layer that evaluates them: a Dataset of named,
// equal-length sample columns, a flat Params map of scalar
// hyperparameters, and the Model interface every density model
// satisfies.
//
// Models are pure functions of their arguments. They never mutate the
// Dataset, keep no state between calls, and are safe to evaluate
// concurrently.
package popmodel // import "github.com/lucymthomas/gwpopulation/popmodel"

import "fmt"

// A Dataset maps parameter names (e.g. "a_1", "cos_tilt_2",
// "chi_eff") to columns of sampled or grid-evaluated values. All
// columns must have the same length. The Dataset is owned by the
// caller; models treat it as read-only.
type Dataset map[string][]float64

// MustColumn returns the named column. A missing column is a usage
// error and panics: evaluating a density on a silently substituted
// default would corrupt the downstream inference.
func (d Dataset) MustColumn(name string) []float64 {
	col, ok := d[name]
	if !ok {
		panic(fmt.Sprintf("popmodel: dataset has no column %q", name))
	}
	return col
}

// Len returns the number of rows, i.e. the length of any column. A
// Dataset with columns of unequal length is malformed and Len panics.
func (d Dataset) Len() int {
	n := -1
	for name, col := range d {
		if n == -1 {
			n = len(col)
		} else if len(col) != n {
			panic(fmt.Sprintf("popmodel: column %q has length %d, want %d", name, len(col), n))
		}
	}
	if n == -1 {
		return 0
	}
	return n
}

// Params is a flat mapping from hyperparameter name to scalar value.
// Which names a model reads is part of that model's contract.
type Params map[string]float64

// Get returns the named hyperparameter. A missing hyperparameter is a
// usage error and panics, for the same reason as Dataset.MustColumn.
func (p Params) Get(name string) float64 {
	v, ok := p[name]
	if !ok {
		panic(fmt.Sprintf("popmodel: params have no entry %q", name))
	}
	return v
}

// A Model evaluates a population probability density pointwise over a
// dataset. The returned slice has one non-negative entry per dataset
// row. A non-nil error indicates the evaluation failed numerically
// (for example a degenerate normalizing constant); the caller decides
// how to treat it, typically as log-density -inf.
type Model interface {
	Prob(d Dataset, p Params) ([]float64, error)
}

// ModelFunc adapts an ordinary function to the Model interface.
type ModelFunc func(d Dataset, p Params) ([]float64, error)

// Prob calls f.
func (f ModelFunc) Prob(d Dataset, p Params) ([]float64, error) {
	return f(d, p)
}
