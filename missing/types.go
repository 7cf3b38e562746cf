// Package missing: method enumeration and per-call options.
package missing

import (
	"errors"

	"go.uber.org/zap"
)

// Method selects the imputation strategy. Dispatch is an exhaustive
// switch over this closed set, not string comparison.
type Method int

const (
	// Mean replaces every NA with the arithmetic mean of the observed
	// values. Numerical columns only.
	Mean Method = iota

	// Median replaces every NA with the median of the observed values.
	// Numerical columns only.
	Median

	// Mode replaces every NA with the most frequent observed value: the
	// exact value for numerical columns (not binned), the most frequent
	// level for categorical ones. Ties take the first value encountered.
	Mode

	// KNN imputes from a nearest-neighbor estimate over all dataset
	// columns except the auxiliary one. Numerical columns only.
	KNN

	// Rpart fits a CART tree on the observed rows (regression objective
	// for numerical targets, classification for categorical) and
	// substitutes its predictions at the missing rows.
	Rpart

	// Mice runs a chained-equations style multiple imputation with
	// random-forest conditional models, collapsing the draws per missing
	// cell by mean (numerical) or majority vote (categorical).
	Mice
)

// ErrUnknownMethod indicates a Method value outside the closed set, e.g.
// from a failed ParseMethod or an arbitrary integer conversion.
var ErrUnknownMethod = errors.New("missing: unknown method")

var methodNames = [...]string{"mean", "median", "mode", "knn", "rpart", "mice"}

// String returns the strategy name recorded on results and reports.
func (m Method) String() string {
	if m < 0 || int(m) >= len(methodNames) {
		return "unknown"
	}
	return methodNames[m]
}

// ParseMethod resolves a strategy name to its Method.
func ParseMethod(s string) (Method, error) {
	for i, name := range methodNames {
		if s == name {
			return Method(i), nil
		}
	}
	return 0, ErrUnknownMethod
}

// numericalOnly reports whether the method requires continuous arithmetic
// and is therefore illegal on categorical columns.
func (m Method) numericalOnly() bool {
	return m == Mean || m == Median || m == KNN
}

// Options configures one imputation call.
//
// Fields:
//   - Auxiliary — name of the column excluded from every predictor set
//     (typically the response variable of a later model). May be empty.
//   - Seed      — explicit seed for the stochastic mice strategy; only
//     honored when SeedSet is true, so zero remains a usable seed.
//   - SeedSet   — marks Seed as caller-provided.
//   - Verbose   — enables mice fitting diagnostics through Logger.
//   - Logger    — destination for diagnostics; nil with Verbose set falls
//     back to zap's development logger, and diagnostics are silenced
//     entirely when Verbose is false.
//   - Neighbors — k for the knn strategy.
//   - Draws     — completed imputation draws per missing cell for mice.
//   - Trees     — forest size per mice draw.
//   - MaxDepth  — depth cap passed to cart trees; 0 means unlimited.
type Options struct {
	Auxiliary string
	Seed      int64
	SeedSet   bool
	Verbose   bool
	Logger    *zap.Logger
	Neighbors int
	Draws     int
	Trees     int
	MaxDepth  int
}

// DefaultOptions returns the documented defaults: 10 neighbors, 5 draws,
// 10 trees per draw, unlimited depth, no auxiliary column, silent.
func DefaultOptions() Options {
	return Options{
		Neighbors: 10,
		Draws:     5,
		Trees:     10,
	}
}

// logger resolves the diagnostics destination: a nop logger unless
// Verbose is set, the injected Logger otherwise.
func (o *Options) logger() *zap.Logger {
	if !o.Verbose {
		return zap.NewNop()
	}
	if o.Logger != nil {
		return o.Logger
	}
	return zap.Must(zap.NewDevelopment())
}
