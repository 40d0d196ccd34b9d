// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bootstrap

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"gonum.org/v1/gonum/mat"
)

func TestStatistics(t *testing.T) {
	data := []mat.Matrix{mat.NewDense(4, 2, []float64{
		1, 2,
		2, 4,
		3, 6,
		4, 8,
	})}
	check := func(name string, s Statistic, data []mat.Matrix, want []float64) {
		t.Helper()
		got := s.Eval(data, 0)
		if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
			t.Errorf("%s mismatch (-want +got):\n%s", name, diff)
		}
	}

	check("Mean", Mean{}, data, []float64{2.5, 5})
	check("Variance", Variance{}, data, []float64{1.25, 5})
	check("Variance(ddof=1)", Variance{DDoF: 1}, data, []float64{5.0 / 3, 20.0 / 3})
	check("StdDev", StdDev{}, data, []float64{1.118033988749895, 2.23606797749979})
	check("StdDev(ddof=1)", StdDev{DDoF: 1}, data, []float64{1.2909944487358056, 2.581988897471611})
	check("Median", Median{}, data, []float64{2.5, 5})

	// Several matrices are pooled by row.
	pooled := []mat.Matrix{
		mat.NewDense(2, 1, []float64{3, 1}),
		mat.NewDense(1, 1, []float64{2}),
	}
	check("pooled Mean", Mean{}, pooled, []float64{2})
	check("pooled Median", Median{}, pooled, []float64{2})
	check("pooled Variance", Variance{DDoF: 1}, pooled, []float64{1})

	// Median must not reorder its input.
	if got := mat.Col(nil, 0, pooled[0]); got[0] != 3 || got[1] != 1 {
		t.Errorf("Median modified its input: %v", got)
	}

	f := StatisticFunc(func(data []mat.Matrix, axis int) []float64 {
		r, c := data[0].Dims()
		return []float64{float64(r), float64(c), float64(axis)}
	})
	check("StatisticFunc", f, data, []float64{4, 2, 0})
}
