// Package stats computes the descriptive statistics behind the table views:
// describe summaries, quantiles, modes, unique values, histogram binning and
// kernel density estimates.
//
// Results follow pandas/numpy conventions so the numbers on screen match what
// the displayed code snippet prints: sample standard deviation (ddof=1),
// linear-interpolation quantiles and numpy's "auto" histogram bins.
package stats

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary is the result of describe() over one numeric column.
type Summary struct {
	Count int
	Mean  float64
	Std   float64
	Min   float64
	Q25   float64
	Q50   float64
	Q75   float64
	Max   float64
}

// Describe summarises values. Missing values must already be removed.
// An empty input has Count 0 and NaN elsewhere; a single value has NaN Std.
func Describe(values []float64) Summary {
	nan := math.NaN()
	if len(values) == 0 {
		return Summary{Mean: nan, Std: nan, Min: nan, Q25: nan, Q50: nan, Q75: nan, Max: nan}
	}

	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	mean, std := stat.MeanStdDev(sorted, nil)
	if len(sorted) < 2 {
		std = nan
	}

	return Summary{
		Count: len(sorted),
		Mean:  mean,
		Std:   std,
		Min:   floats.Min(sorted),
		Q25:   Quantile(sorted, 0.25),
		Q50:   Quantile(sorted, 0.5),
		Q75:   Quantile(sorted, 0.75),
		Max:   floats.Max(sorted),
	}
}

// Quantile returns the p-quantile of ascending values using linear
// interpolation between the closest ranks, position (n-1)*p. This is numpy's
// default method; gonum's stat.Quantile estimators use different positions.
func Quantile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return math.NaN()
	}
	if n == 1 || p <= 0 {
		return sorted[0]
	}
	if p >= 1 {
		return sorted[n-1]
	}
	h := float64(n-1) * p
	lo := math.Floor(h)
	i := int(lo)
	if i+1 >= n {
		return sorted[n-1]
	}
	return sorted[i] + (h-lo)*(sorted[i+1]-sorted[i])
}
