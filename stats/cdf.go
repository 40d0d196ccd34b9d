// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "gonum.org/v1/gonum/floats"

// WeightedCDF represents options for constructing the cumulative
// weight curve of a weighted sample.
//
// The curve has one knot per distinct sample value. Between knots it
// is linearly interpolated, and outside the range of the knots it
// takes the value of the nearest knot. If fewer than two sample
// values remain after applying Threshold, the curve is identically 0.
//
// The default (zero) value of WeightedCDF is an ascending curve that
// starts at 0 at the smallest sample.
type WeightedCDF struct {
	// Reverse selects a right-tail curve. At each sample x it
	// holds the total weight of the samples greater than x, so
	// the curve decreases as x increases.
	Reverse bool

	// Inclusive, if set, makes the curve include the weight of
	// the boundary sample so it does not start at 0. For an
	// ascending curve this is the weight of the smallest sample;
	// for a reversed curve it is the weight of the largest.
	Inclusive bool

	// Threshold, if non-nil, drops samples below *Threshold, or
	// above it if Reverse is set.
	Threshold *float64
}

// Knots returns the knots of the cumulative weight curve for the
// sample xs with the given weights. kx is strictly increasing. ky is
// non-decreasing, or non-increasing if c.Reverse is set.
//
// Knots panics if len(xs) != len(weights).
func (c WeightedCDF) Knots(xs, weights []float64) (kx, ky []float64) {
	xs, weights = Unique(xs, weights)

	var ws []float64
	for i, x := range xs {
		if c.Threshold != nil {
			if c.Reverse && x > *c.Threshold || !c.Reverse && x < *c.Threshold {
				continue
			}
		}
		kx = append(kx, x)
		ws = append(ws, weights[i])
	}
	if len(kx) == 0 {
		return nil, nil
	}

	// Sort the knots and carry the weights along.
	inds := make([]int, len(kx))
	floats.Argsort(kx, inds)
	sorted := make([]float64, len(ws))
	for i, j := range inds {
		sorted[i] = ws[j]
	}

	ky = floats.CumSum(make([]float64, len(sorted)), sorted)
	if c.Reverse {
		total := ky[len(ky)-1]
		for i := range ky {
			ky[i] = total - ky[i]
		}
		if c.Inclusive {
			floats.AddConst(sorted[len(sorted)-1], ky)
		}
	} else if !c.Inclusive {
		floats.AddConst(-ky[0], ky)
	}
	return kx, ky
}

// From returns the cumulative weight curve for the sample xs with the
// given weights.
//
// From panics if len(xs) != len(weights).
func (c WeightedCDF) From(xs, weights []float64) Func {
	kx, ky := c.Knots(xs, weights)
	if len(kx) < 2 {
		return zeroFunc{}
	}
	return newLinearFunc(kx, ky)
}

// Unique returns the distinct values of xs and the total weight of
// each. If xs has no duplicate values, Unique returns xs and weights
// unchanged. Otherwise, ux is sorted in increasing order.
//
// Unique panics if len(xs) != len(weights).
func Unique(xs, weights []float64) (ux, uw []float64) {
	if len(xs) != len(weights) {
		panic("len(xs) != len(weights)")
	}

	sorted := append([]float64(nil), xs...)
	inds := make([]int, len(sorted))
	floats.Argsort(sorted, inds)

	dup := false
	for i := 1; i < len(sorted); i++ {
		if sorted[i] == sorted[i-1] {
			dup = true
			break
		}
	}
	if !dup {
		return xs, weights
	}

	for i, x := range sorted {
		if len(ux) == 0 || x != ux[len(ux)-1] {
			ux = append(ux, x)
			uw = append(uw, 0)
		}
		uw[len(uw)-1] += weights[inds[i]]
	}
	return ux, uw
}
