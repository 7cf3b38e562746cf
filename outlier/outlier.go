package outlier

import (
	"fmt"

	"gonum.org/v1/gonum/stat"

	"github.com/veltaire/imputr/core"
)

// Detect flags the outliers of a numerical column with the whisker rule:
// row i is flagged when its value lies beyond Whisker×IQR from the nearer
// quartile. Quartiles are computed over the observed values; missing
// cells are never outliers. Returned indices are ascending.
func Detect(col *core.Column) ([]int, error) {
	if col.Type() != core.Numerical {
		return nil, fmt.Errorf("outlier detection on %s column %q: %w",
			col.Type(), col.Name(), core.ErrIncompatibleMethod)
	}
	obs := col.Observed()
	if len(obs) == 0 {
		return nil, fmt.Errorf("column %q: %w", col.Name(), core.ErrEmptyColumn)
	}
	lo, hi := fences(obs)
	var pos []int
	for i := 0; i < col.Len(); i++ {
		if col.IsNA(i) {
			continue
		}
		if v := col.Float(i); v < lo || v > hi {
			pos = append(pos, i)
		}
	}
	return pos, nil
}

// Impute detects the outliers of the target column and replaces (or caps)
// them with the selected method, returning an annotated result of kind
// "outliers" that records the original values at the flagged positions.
//
// Errors:
//   - core.ErrUnknownColumn      — target absent from the dataset.
//   - core.ErrIncompatibleMethod — target column is not numerical;
//     outlier semantics are undefined for categorical data.
//   - core.ErrEmptyColumn        — no observed values.
//   - ErrUnknownMethod           — method outside the closed set.
//
// A column without outliers is not an error: the result carries the
// unmodified column and core.NoDefectsWarning.
func Impute(ds *core.Dataset, target string, method Method) (*core.Result, error) {
	if ds == nil {
		return nil, fmt.Errorf("nil dataset: %w", core.ErrBadOption)
	}
	col, err := ds.Column(target)
	if err != nil {
		return nil, err
	}
	if m := int(method); m < 0 || m >= len(methodNames) {
		return nil, fmt.Errorf("method %d: %w", m, ErrUnknownMethod)
	}
	pos, err := Detect(col)
	if err != nil {
		return nil, err
	}

	if len(pos) == 0 {
		return core.NewResult(core.KindOutliers, method.String(), col).
			Positions(nil).
			Warn(core.NoDefectsWarning).
			Build(), nil
	}

	// Originals are recorded before replacement; outliers are real data
	// and stay recoverable through Result.Restore.
	orig := make([]float64, len(pos))
	for i, p := range pos {
		orig[i] = col.Float(p)
	}

	// Replacement statistics run over the full column, outliers included.
	// The statistic is pulled toward the values it corrects; kept as-is
	// for compatibility with the reference behavior.
	obs := col.Observed()
	out := col.Clone()
	switch method {
	case Mean:
		err = replaceAll(out, pos, stat.Mean(obs, nil))
	case Median:
		err = replaceAll(out, pos, core.Quantile(obs, 0.5))
	case Mode:
		err = replaceAll(out, pos, core.ModeFloat(obs))
	case Capping:
		err = cap5th95th(out, pos, obs)
	}
	if err != nil {
		return nil, err
	}

	return core.NewResult(core.KindOutliers, method.String(), out).
		Positions(pos).
		OutlierValues(orig).
		Build(), nil
}

// replaceAll writes one statistic at every flagged position.
func replaceAll(col *core.Column, pos []int, v float64) error {
	for _, p := range pos {
		if err := col.SetFloat(p, v); err != nil {
			return err
		}
	}
	return nil
}

// cap5th95th Winsorizes the flagged positions: values below the lower
// whisker fence become the 5th percentile, values above the upper fence
// the 95th. The fences key the decision; the percentiles supply the
// replacement, so values between a fence and its percentile are left
// untouched by detection in the first place.
func cap5th95th(col *core.Column, pos []int, obs []float64) error {
	lo, _ := fences(obs)
	p05 := core.Quantile(obs, LowerCap)
	p95 := core.Quantile(obs, UpperCap)
	for _, p := range pos {
		v := p95
		if col.Float(p) < lo {
			v = p05
		}
		if err := col.SetFloat(p, v); err != nil {
			return err
		}
	}
	return nil
}

// fences returns the lower and upper whisker bounds Q1−1.5·IQR and
// Q3+1.5·IQR of the observed values.
func fences(obs []float64) (lo, hi float64) {
	q1 := core.Quantile(obs, 0.25)
	q3 := core.Quantile(obs, 0.75)
	iqr := q3 - q1
	return q1 - Whisker*iqr, q3 + Whisker*iqr
}
