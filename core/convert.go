package core

import (
	"math"

	"github.com/spf13/cast"
)

// NewColumnFromValues builds a Column from untyped cells, for callers that
// do not hold a dataframe. The semantic type is inferred from the cells:
// when every observed cell coerces to float64 (numbers, numeric strings),
// the column is numerical; otherwise every cell is coerced to its string
// form and the column is categorical. nil cells and the conventional
// missing records ("", "NA", "NaN") are absent in either case.
func NewColumnFromValues(name string, values []any) *Column {
	numeric := true
	for _, v := range values {
		if isMissingCell(v) {
			continue
		}
		if _, err := cast.ToFloat64E(v); err != nil {
			numeric = false
			break
		}
	}

	if numeric {
		nums := make([]float64, len(values))
		for i, v := range values {
			if isMissingCell(v) {
				nums[i] = math.NaN()
				continue
			}
			nums[i] = cast.ToFloat64(v)
		}
		return NewNumeric(name, nums)
	}

	recs := make([]string, len(values))
	for i, v := range values {
		if isMissingCell(v) {
			continue // NewCategorical treats "" as missing
		}
		recs[i] = cast.ToString(v)
	}
	return NewCategorical(name, recs)
}

// isMissingCell reports whether an untyped cell denotes an absent value.
func isMissingCell(v any) bool {
	if v == nil {
		return true
	}
	if f, ok := v.(float64); ok && math.IsNaN(f) {
		return true
	}
	if s, ok := v.(string); ok && missingRecord(s) {
		return true
	}
	return false
}
