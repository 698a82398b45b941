package stats

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// MaxBins caps HistogramBins however narrow the Freedman-Diaconis width is.
const MaxBins = 10000

// HistogramBins picks a bin count with numpy's "auto" rule: the narrower of
// the Sturges and Freedman-Diaconis widths, Sturges alone when the IQR is 0.
// When the Freedman-Diaconis count exceeds the number of values or MaxBins,
// as a single far outlier makes it do, Sturges is used instead.
func HistogramBins(values []float64) int {
	n := len(values)
	if n == 0 {
		return 1
	}
	lo, hi := floats.Min(values), floats.Max(values)
	span := hi - lo
	if span == 0 || math.IsInf(span, 0) || math.IsNaN(span) {
		return 1
	}

	width := span / (math.Log2(float64(n)) + 1)

	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	iqr := Quantile(sorted, 0.75) - Quantile(sorted, 0.25)
	if fd := 2 * iqr * math.Pow(float64(n), -1.0/3.0); fd > 0 && fd < width {
		width = fd
	}

	limit := min(n, MaxBins)
	bins := math.Ceil(span / width)
	if bins > float64(limit) {
		sturges := int(math.Ceil(math.Log2(float64(n)) + 1))
		return min(sturges, limit)
	}
	return max(int(bins), 1)
}

// KDE evaluates a Gaussian kernel density estimate of values at points
// evenly spaced over [min, max]. The bandwidth follows Scott's rule,
// std * n^(-1/5). It returns nil when fewer than two values are given or
// they do not vary.
func KDE(values []float64, points int) (xs, ys []float64) {
	n := len(values)
	if n < 2 || points < 2 {
		return nil, nil
	}
	std := stat.StdDev(values, nil)
	if std == 0 || math.IsNaN(std) || math.IsInf(std, 0) {
		return nil, nil
	}
	bw := std * math.Pow(float64(n), -0.2)

	lo, hi := floats.Min(values), floats.Max(values)
	xs = make([]float64, points)
	floats.Span(xs, lo, hi)

	ys = make([]float64, points)
	norm := 1 / (float64(n) * bw * math.Sqrt(2*math.Pi))
	for i, x := range xs {
		var sum float64
		for _, v := range values {
			z := (x - v) / bw
			sum += math.Exp(-0.5 * z * z)
		}
		ys[i] = sum * norm
	}
	return xs, ys
}
