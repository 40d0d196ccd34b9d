// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "gonum.org/v1/gonum/interp"

// A Func is a continuous function of one variable.
type Func interface {
	// At returns the value of this Func at x.
	At(x float64) float64

	// AtEach returns At(xs[i]) for each i.
	AtEach(xs []float64) []float64
}

// atEach is a generic implementation of Func.AtEach.
func atEach(f Func, xs []float64) []float64 {
	res := make([]float64, len(xs))
	for i, x := range xs {
		res[i] = f.At(x)
	}
	return res
}

// zeroFunc is the constant function 0.
type zeroFunc struct{}

func (zeroFunc) At(x float64) float64 {
	return 0
}

func (zeroFunc) AtEach(xs []float64) []float64 {
	return make([]float64, len(xs))
}

// linearFunc linearly interpolates between knots. Outside the knot
// range it holds the value of the nearest knot.
type linearFunc struct {
	pl interp.PiecewiseLinear
}

// newLinearFunc returns the piecewise-linear interpolant of (xs, ys).
// xs must be strictly increasing and have at least two elements.
func newLinearFunc(xs, ys []float64) *linearFunc {
	f := new(linearFunc)
	if err := f.pl.Fit(xs, ys); err != nil {
		panic(err)
	}
	return f
}

func (f *linearFunc) At(x float64) float64 {
	return f.pl.Predict(x)
}

func (f *linearFunc) AtEach(xs []float64) []float64 {
	return atEach(f, xs)
}
