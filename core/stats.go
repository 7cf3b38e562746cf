package core

import (
	"math"
	"sort"
)

// Order statistics both pipelines are defined against. Quantile matches
// the linear-interpolation rule (R type 7) the whisker fences and capping
// percentiles assume; gonum's stat.Quantile cumulant kinds do not
// reproduce it, and gonum's stat.Mode iterates a map with no
// deterministic tie order, so these two stay hand-rolled. Means and
// standard deviations go through gonum at the call sites.

// Quantile returns the p-th quantile of values, p in [0, 1], using linear
// interpolation between order statistics: h = (n-1)·p, interpolate between
// floor(h) and ceil(h). NaN inputs are skipped; an empty input yields NaN.
// The input slice is not modified (a copy is sorted internally).
func Quantile(values []float64, p float64) float64 {
	xs := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) {
			xs = append(xs, v)
		}
	}
	if len(xs) == 0 || p < 0 || p > 1 {
		return math.NaN()
	}
	sort.Float64s(xs)
	if len(xs) == 1 {
		return xs[0]
	}
	h := float64(len(xs)-1) * p
	lo := int(math.Floor(h))
	hi := int(math.Ceil(h))
	if lo == hi {
		return xs[lo]
	}
	return xs[lo] + (h-float64(lo))*(xs[hi]-xs[lo])
}

// ModeFloat returns the most frequent exact value (not binned). Ties break
// on the first value encountered in column order. NaN inputs are skipped;
// an empty input yields NaN.
func ModeFloat(values []float64) float64 {
	counts := make(map[float64]int)
	var order []float64
	for _, v := range values {
		if math.IsNaN(v) {
			continue
		}
		if counts[v] == 0 {
			order = append(order, v)
		}
		counts[v]++
	}
	if len(order) == 0 {
		return math.NaN()
	}
	best := order[0]
	for _, v := range order[1:] {
		if counts[v] > counts[best] {
			best = v
		}
	}
	return best
}

// ModeLevel returns the most frequent category level. Ties break on the
// first level encountered in column order. An empty input yields "".
func ModeLevel(values []string) string {
	counts := make(map[string]int)
	var order []string
	for _, v := range values {
		if counts[v] == 0 {
			order = append(order, v)
		}
		counts[v]++
	}
	if len(order) == 0 {
		return ""
	}
	best := order[0]
	for _, v := range order[1:] {
		if counts[v] > counts[best] {
			best = v
		}
	}
	return best
}
