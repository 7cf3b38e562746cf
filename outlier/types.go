// Package outlier: method enumeration and per-call options.
package outlier

import "errors"

// Method selects the replacement strategy applied to flagged outliers.
type Method int

const (
	// Mean replaces flagged outliers with the full-column arithmetic mean.
	Mean Method = iota

	// Median replaces flagged outliers with the full-column median.
	Median

	// Mode replaces flagged outliers with the most frequent exact value.
	Mode

	// Capping Winsorizes: below the lower whisker fence → 5th percentile,
	// above the upper fence → 95th percentile.
	Capping
)

// ErrUnknownMethod indicates a Method value outside the closed set.
var ErrUnknownMethod = errors.New("outlier: unknown method")

var methodNames = [...]string{"mean", "median", "mode", "capping"}

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

// Whisker is the fixed fence multiplier of the boxplot rule.
const Whisker = 1.5

// Capping percentiles of the Winsorization strategy.
const (
	LowerCap = 0.05
	UpperCap = 0.95
)
