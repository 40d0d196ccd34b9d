// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stats provides weighted empirical CDFs, a weighted median
// and the root finder they rely on.
package stats // import "github.com/aclements/go-resample/stats"

import (
	"errors"
	"math"
)

var nan = math.NaN()

var (
	// ErrSampleSize is returned when a sample is empty.
	ErrSampleSize = errors.New("sample is too small")

	// ErrNotBracketed is returned by a root finder when the
	// function has the same sign at both ends of the interval.
	ErrNotBracketed = errors.New("root is not bracketed")

	// ErrNoConvergence is returned by a root finder that exhausts
	// its iteration limit.
	ErrNoConvergence = errors.New("failed to converge")
)

// A NumericalError records a failure of an iterative numerical method.
type NumericalError struct {
	Op  string
	Err error
}

func (e *NumericalError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *NumericalError) Unwrap() error {
	return e.Err
}
