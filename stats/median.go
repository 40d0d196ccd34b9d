// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// AllEqualAbsTol and AllEqualRelTol are the tolerances within which
// WeightedMedian considers all sample values equal.
var (
	AllEqualAbsTol = 1e-8
	AllEqualRelTol = 1e-5
)

// DominantWeightTol controls when WeightedMedian treats a single
// sample as carrying all of the weight. If sum(weights)/max(weights)-1
// is below this, the median is the sample with the largest weight.
var DominantWeightTol = 1e-2

// WeightedMedian returns the median of xs where xs[i] has weight
// weights[i].
//
// The median is the point at which the interpolated weight at or
// below x equals the interpolated weight at or above x. It is found
// by root finding between the smallest and largest sample, which
// fails with a *NumericalError if no crossing lies in that range.
// Samples that are all equal and samples dominated by a single weight
// are handled directly.
//
// WeightedMedian fails with ErrSampleSize if xs is empty. It panics
// if len(xs) != len(weights).
func WeightedMedian(xs, weights []float64) (float64, error) {
	if len(xs) != len(weights) {
		panic("len(xs) != len(weights)")
	}
	switch len(xs) {
	case 0:
		return nan, ErrSampleSize
	case 1:
		return xs[0], nil
	}

	if allEqual(xs) {
		return xs[0], nil
	}
	if floats.Sum(weights)/floats.Max(weights)-1 < DominantWeightTol {
		return xs[floats.MaxIdx(weights)], nil
	}

	below := WeightedCDF{Inclusive: true}.From(xs, weights)
	above := WeightedCDF{Reverse: true, Inclusive: true}.From(xs, weights)
	m, err := Brent(func(x float64) float64 {
		return below.At(x) - above.At(x)
	}, floats.Min(xs), floats.Max(xs))
	if err != nil {
		return nan, fmt.Errorf("weighted median: %w", err)
	}
	return m, nil
}

func allEqual(xs []float64) bool {
	for _, x := range xs[1:] {
		if !floats.EqualWithinAbsOrRel(x, xs[0], AllEqualAbsTol, AllEqualRelTol) {
			return false
		}
	}
	return true
}
