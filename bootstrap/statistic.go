// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bootstrap

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// A Statistic reduces one or more data sets to a vector of values.
//
// Eval is called with the original data once and then with each
// resampled version of it. Rows of each matrix are observations;
// axis is the axis being resampled, which is always 0. Eval must
// return the same number of values every time and must not retain
// data after it returns.
type Statistic interface {
	Eval(data []mat.Matrix, axis int) []float64
}

// StatisticFunc adapts an ordinary function to a Statistic.
type StatisticFunc func(data []mat.Matrix, axis int) []float64

// Eval returns f(data, axis).
func (f StatisticFunc) Eval(data []mat.Matrix, axis int) []float64 {
	return f(data, axis)
}

// The following statistics reduce each column separately. When given
// several matrices they pool their rows, so the result has one value
// per column.

// Mean is the arithmetic mean of each column.
type Mean struct{}

func (Mean) Eval(data []mat.Matrix, axis int) []float64 {
	return reduceColumns(data, func(col []float64) float64 {
		return stat.Mean(col, nil)
	})
}

// Variance is the variance of each column with divisor N-DDoF, where
// N is the number of rows. DDoF 0 is the population variance and DDoF
// 1 the unbiased sample variance.
type Variance struct {
	DDoF int
}

func (v Variance) Eval(data []mat.Matrix, axis int) []float64 {
	return reduceColumns(data, func(col []float64) float64 {
		return variance(col, v.DDoF)
	})
}

// StdDev is the square root of Variance.
type StdDev struct {
	DDoF int
}

func (s StdDev) Eval(data []mat.Matrix, axis int) []float64 {
	return reduceColumns(data, func(col []float64) float64 {
		return math.Sqrt(variance(col, s.DDoF))
	})
}

// Median is the median of each column. For an even number of rows it
// is the midpoint of the two middle values.
type Median struct{}

func (Median) Eval(data []mat.Matrix, axis int) []float64 {
	return reduceColumns(data, func(col []float64) float64 {
		sort.Float64s(col)
		i := len(col) / 2
		if len(col)%2 != 0 {
			return col[i]
		}
		return col[i-1] + (col[i]-col[i-1])/2
	})
}

func variance(xs []float64, ddof int) float64 {
	mean := stat.Mean(xs, nil)
	ss := 0.0
	for _, x := range xs {
		d := x - mean
		ss += d * d
	}
	return ss / float64(len(xs)-ddof)
}

// reduceColumns applies fn to each column of the row-wise
// concatenation of data. fn may modify the slice it is passed.
func reduceColumns(data []mat.Matrix, fn func(col []float64) float64) []float64 {
	_, c := data[0].Dims()
	out := make([]float64, c)
	var col []float64
	for j := range out {
		col = col[:0]
		for _, m := range data {
			r, _ := m.Dims()
			for i := 0; i < r; i++ {
				col = append(col, m.At(i, j))
			}
		}
		out[j] = fn(col)
	}
	return out
}
