// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bootstrap estimates the sampling distribution of a statistic
// by resampling data with replacement.
package bootstrap // import "github.com/aclements/go-resample/bootstrap"

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

var (
	// ErrUnsupportedAxis is returned when resampling along any
	// axis other than 0 is requested.
	ErrUnsupportedAxis = errors.New("only axis 0 is supported")

	// ErrShapeMismatch is returned when data sets differ in shape
	// outside the resampling axis, or when a statistic does not
	// return the same number of values for every trial.
	ErrShapeMismatch = errors.New("shape mismatch")

	// ErrTrials is returned when too few trials are requested.
	ErrTrials = errors.New("too few trials")

	// ErrNoData is returned when there is nothing to resample.
	ErrNoData = errors.New("no data")
)

// Options configures a bootstrap. A nil *Options is equivalent to a
// pointer to the zero value.
type Options struct {
	// Axis is the axis to resample along. Only 0, the rows of
	// each matrix, is supported.
	Axis int

	// Statistic is the statistic to bootstrap. If nil,
	// Variance{DDoF: 1} is used.
	Statistic Statistic

	// Source is the source of randomness for drawing rows. If nil,
	// the top-level functions of math/rand/v2 are used, which are
	// safe for concurrent use. A Source must not be shared between
	// goroutines.
	Source rand.Source
}

// Bootstrap returns n bootstrap replicates of a statistic of data.
//
// Each replicate evaluates the statistic on a matrix with as many
// rows as data, drawn uniformly with replacement from the rows of
// data. Row i of the result is replicate i. Its columns are the
// values of the statistic, so the result is n by the number of values
// the statistic returns for data itself.
func Bootstrap(data mat.Matrix, n int, opts *Options) (*mat.Dense, error) {
	return BootstrapMulti([]mat.Matrix{data}, n, opts)
}

// BootstrapMulti is like Bootstrap, but resamples several data sets
// at once. Every matrix in data must have the same number of columns.
// Each trial draws rows independently for each matrix and passes all
// of the resampled matrices to the statistic together.
func BootstrapMulti(data []mat.Matrix, n int, opts *Options) (*mat.Dense, error) {
	var o Options
	if opts != nil {
		o = *opts
	}
	if o.Axis != 0 {
		return nil, fmt.Errorf("axis %d: %w", o.Axis, ErrUnsupportedAxis)
	}
	if n < 1 {
		return nil, fmt.Errorf("%d trials: %w", n, ErrTrials)
	}
	if len(data) == 0 {
		return nil, ErrNoData
	}
	_, cols := data[0].Dims()
	for i, d := range data {
		r, c := d.Dims()
		if r == 0 {
			return nil, fmt.Errorf("data[%d]: %w", i, ErrNoData)
		}
		if c != cols {
			return nil, fmt.Errorf("data[%d] has %d columns, data[0] has %d: %w", i, c, cols, ErrShapeMismatch)
		}
	}

	statistic := o.Statistic
	if statistic == nil {
		statistic = Variance{DDoF: 1}
	}
	intN := rand.IntN
	if o.Source != nil {
		intN = rand.New(o.Source).IntN
	}

	fiducial := statistic.Eval(data, o.Axis)
	if len(fiducial) == 0 {
		return nil, fmt.Errorf("statistic returned no values: %w", ErrShapeMismatch)
	}
	samples := mat.NewDense(n, len(fiducial), nil)

	// The resampled matrices are reused across trials.
	resampled := make([]mat.Matrix, len(data))
	bufs := make([]*mat.Dense, len(data))
	for k, d := range data {
		r, c := d.Dims()
		bufs[k] = mat.NewDense(r, c, nil)
		resampled[k] = bufs[k]
	}
	row := make([]float64, cols)
	for i := 0; i < n; i++ {
		for k, d := range data {
			r, _ := d.Dims()
			for j := 0; j < r; j++ {
				bufs[k].SetRow(j, mat.Row(row, intN(r), d))
			}
		}
		s := statistic.Eval(resampled, o.Axis)
		if len(s) != len(fiducial) {
			return nil, fmt.Errorf("trial %d: statistic returned %d values, want %d: %w", i, len(s), len(fiducial), ErrShapeMismatch)
		}
		samples.SetRow(i, s)
	}
	return samples, nil
}

// Var returns the bootstrap variance of a statistic of data: the
// sample variance, with divisor n-1, of n bootstrap replicates. Var
// requires n >= 2.
func Var(data mat.Matrix, n int, opts *Options) ([]float64, error) {
	return VarMulti([]mat.Matrix{data}, n, opts)
}

// VarMulti is like Var, but resamples several data sets as
// BootstrapMulti does.
func VarMulti(data []mat.Matrix, n int, opts *Options) ([]float64, error) {
	if n < 2 {
		return nil, fmt.Errorf("%d trials: %w", n, ErrTrials)
	}
	samples, err := BootstrapMulti(data, n, opts)
	if err != nil {
		return nil, err
	}
	_, c := samples.Dims()
	vars := make([]float64, c)
	col := make([]float64, n)
	for j := range vars {
		vars[j] = stat.Variance(mat.Col(col, j, samples), nil)
	}
	return vars, nil
}

// StdErr returns the bootstrap standard error of a statistic of data,
// the square root of Var.
func StdErr(data mat.Matrix, n int, opts *Options) ([]float64, error) {
	vars, err := Var(data, n, opts)
	if err != nil {
		return nil, err
	}
	for i, v := range vars {
		vars[i] = math.Sqrt(v)
	}
	return vars, nil
}
