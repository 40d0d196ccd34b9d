// dist reads newline-separated numbers from stdin, each optionally
// followed by a weight, and reports their weighted median and the
// bootstrap variance of a statistic.
package main

import (
	"bufio"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/aclements/go-resample/bootstrap"
	"github.com/aclements/go-resample/stats"
)

var statistics = map[string]bootstrap.Statistic{
	"mean":   bootstrap.Mean{},
	"var":    bootstrap.Variance{DDoF: 1},
	"median": bootstrap.Median{},
}

func main() {
	var (
		trials   = pflag.IntP("trials", "n", 1000, "number of bootstrap `trials`")
		seed     = pflag.Uint64("seed", 0, "random `seed`; 0 seeds randomly")
		statName = pflag.String("stat", "mean", "bootstrapped `statistic`: mean, var or median")
		verbose  = pflag.BoolP("verbose", "v", false, "enable debug logging")
	)
	pflag.Parse()

	log := newLogger(*verbose)
	defer log.Sync()

	statistic, ok := statistics[*statName]
	if !ok {
		log.Fatal("unknown statistic", zap.String("stat", *statName))
	}

	xs, ws, err := readInput(os.Stdin)
	if err != nil {
		log.Fatal("failed to read input", zap.Error(err))
	}
	if len(xs) == 0 {
		log.Fatal("no input")
	}
	if *trials < 2 {
		log.Fatal("need at least 2 trials", zap.Int("trials", *trials))
	}
	log.Debug("read input", zap.Int("samples", len(xs)), zap.Float64("weight", floats.Sum(ws)))

	fmt.Printf("N %d  weight %.6g  min %.6g  max %.6g\n", len(xs), floats.Sum(ws), floats.Min(xs), floats.Max(xs))

	if median, err := stats.WeightedMedian(xs, ws); err != nil {
		log.Warn("failed to compute weighted median", zap.Error(err))
	} else {
		fmt.Printf("weighted median %.6g\n", median)
	}

	opts := &bootstrap.Options{Statistic: statistic}
	if *seed != 0 {
		opts.Source = rand.NewPCG(*seed, *seed)
	}
	data := mat.NewDense(len(xs), 1, xs)
	fiducial := statistic.Eval([]mat.Matrix{data}, 0)
	samples, err := bootstrap.Bootstrap(data, *trials, opts)
	if err != nil {
		log.Fatal("bootstrap failed", zap.Int("trials", *trials), zap.Error(err))
	}
	replicates := mat.Col(nil, 0, samples)
	fmt.Printf("%s %.6g  bootstrap variance %.6g  replicates [%.6g, %.6g]\n",
		*statName, fiducial[0], stat.Variance(replicates, nil), floats.Min(replicates), floats.Max(replicates))
}

func newLogger(verbose bool) *zap.Logger {
	c := zap.NewDevelopmentConfig()
	c.DisableStacktrace = true
	if !verbose {
		c.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	log, err := c.Build()
	if err != nil {
		panic(err)
	}
	return log
}

// readInput reads lines of the form "value" or "value weight". A
// missing weight is 1.
func readInput(r io.Reader) (xs, ws []float64, err error) {
	scanner := bufio.NewScanner(r)
	for line := 1; scanner.Scan(); line++ {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) > 2 {
			return nil, nil, fmt.Errorf("line %d: want value and optional weight, got %d fields", line, len(fields))
		}
		x, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, nil, fmt.Errorf("line %d: %w", line, err)
		}
		w := 1.0
		if len(fields) == 2 {
			if w, err = strconv.ParseFloat(fields[1], 64); err != nil {
				return nil, nil, fmt.Errorf("line %d: %w", line, err)
			}
			if w < 0 {
				return nil, nil, fmt.Errorf("line %d: negative weight %v", line, w)
			}
		}
		xs = append(xs, x)
		ws = append(ws, w)
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, err
	}
	return xs, ws, nil
}
