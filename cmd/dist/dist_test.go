package main

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestReadInput(t *testing.T) {
	xs, ws, err := readInput(strings.NewReader("1\n\n2.5 3\n  -4   0.5 \n"))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]float64{1, 2.5, -4}, xs); diff != "" {
		t.Errorf("values mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]float64{1, 3, 0.5}, ws); diff != "" {
		t.Errorf("weights mismatch (-want +got):\n%s", diff)
	}

	for _, in := range []string{"x\n", "1 y\n", "1 2 3\n", "1 -1\n"} {
		if _, _, err := readInput(strings.NewReader(in)); err == nil {
			t.Errorf("readInput(%q): want error", in)
		}
	}
}
