// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "math"

// Tolerances for Brent. A root is accepted once it is known to within
// RootXTol + RootRTol*|x|.
var (
	RootXTol    = 2e-12
	RootRTol    = 4 * 0x1p-52
	RootMaxIter = 100
)

// Brent returns a zero of f in [lo, hi] using Brent's method. f(lo)
// and f(hi) must have opposite signs, or one of them must be 0;
// otherwise Brent fails with ErrNotBracketed.
//
// Brent, R. P. (1973) Algorithms for Minimization Without
// Derivatives, ch. 4.
func Brent(f func(float64) float64, lo, hi float64) (float64, error) {
	xpre, xcur := lo, hi
	fpre, fcur := f(xpre), f(xcur)
	if fpre == 0 {
		return xpre, nil
	}
	if fcur == 0 {
		return xcur, nil
	}
	if math.IsNaN(fpre) || math.IsNaN(fcur) || fpre*fcur > 0 {
		return nan, &NumericalError{"brent", ErrNotBracketed}
	}

	// xblk is the end of the bracket opposite xcur. spre and scur
	// are the previous two step sizes.
	var xblk, fblk, spre, scur float64
	for i := 0; i < RootMaxIter; i++ {
		if fpre != 0 && fcur != 0 && math.Signbit(fpre) != math.Signbit(fcur) {
			xblk, fblk = xpre, fpre
			spre = xcur - xpre
			scur = spre
		}
		if math.Abs(fblk) < math.Abs(fcur) {
			xpre, xcur, xblk = xcur, xblk, xcur
			fpre, fcur, fblk = fcur, fblk, fcur
		}

		delta := (RootXTol + RootRTol*math.Abs(xcur)) / 2
		sbis := (xblk - xcur) / 2
		if fcur == 0 || math.Abs(sbis) < delta {
			return xcur, nil
		}

		if math.Abs(spre) > delta && math.Abs(fcur) < math.Abs(fpre) {
			var stry float64
			if xpre == xblk {
				// Secant step.
				stry = -fcur * (xcur - xpre) / (fcur - fpre)
			} else {
				// Inverse quadratic interpolation.
				dpre := (fpre - fcur) / (xpre - xcur)
				dblk := (fblk - fcur) / (xblk - xcur)
				stry = -fcur * (fblk*dblk - fpre*dpre) / (dblk * dpre * (fblk - fpre))
			}
			if 2*math.Abs(stry) < math.Min(math.Abs(spre), 3*math.Abs(sbis)-delta) {
				spre, scur = scur, stry
			} else {
				spre, scur = sbis, sbis
			}
		} else {
			spre, scur = sbis, sbis
		}

		xpre, fpre = xcur, fcur
		switch {
		case math.Abs(scur) > delta:
			xcur += scur
		case sbis > 0:
			xcur += delta
		default:
			xcur -= delta
		}
		fcur = f(xcur)
	}
	return xcur, &NumericalError{"brent", ErrNoConvergence}
}
