package missing

import (
	"fmt"
	"math/rand"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/stat"

	"github.com/veltaire/imputr/core"
)

// Impute locates the NA positions of the target column, computes
// replacement values via the selected method, and returns an annotated
// result of kind "missing values". The caller's dataset is never mutated.
//
// Errors:
//   - core.ErrUnknownColumn      — target or Options.Auxiliary absent.
//   - core.ErrIncompatibleMethod — numerical-only method on a categorical
//     column.
//   - core.ErrEmptyColumn        — no observed values to derive from.
//   - core.ErrBadOption          — nonsensical options (negative k, ...).
//   - core.ErrFitFailed          — a model-based strategy failed to train.
//   - ErrUnknownMethod           — method outside the closed set.
//
// A column without missing values is not an error: the result carries the
// unmodified column and core.NoDefectsWarning.
func Impute(ds *core.Dataset, target string, method Method, opts *Options) (*core.Result, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err := normalize(&o); err != nil {
		return nil, err
	}
	if ds == nil {
		return nil, fmt.Errorf("nil dataset: %w", core.ErrBadOption)
	}

	// Validation happens up front, before any computation, so callers
	// never observe a half-completed imputation.
	col, err := ds.Column(target)
	if err != nil {
		return nil, err
	}
	if o.Auxiliary != "" {
		if o.Auxiliary == target {
			return nil, fmt.Errorf("auxiliary column equals target %q: %w", target, core.ErrBadOption)
		}
		if _, err = ds.Column(o.Auxiliary); err != nil {
			return nil, err
		}
	}
	if m := int(method); m < 0 || m >= len(methodNames) {
		return nil, fmt.Errorf("method %d: %w", m, ErrUnknownMethod)
	}
	if method.numericalOnly() && col.Type() == core.Categorical {
		return nil, fmt.Errorf("method %q on %s column %q: %w",
			method, col.Type(), target, core.ErrIncompatibleMethod)
	}
	if col.Len() == 0 || col.Missing() == col.Len() {
		return nil, fmt.Errorf("column %q: %w", target, core.ErrEmptyColumn)
	}

	// The defect position set is computed once and held fixed: later
	// replacement must not change which rows count as defective.
	pos := col.MissingPositions()

	// The resolved seed is a value on the result, never shared state. A
	// missing seed is drawn from the process random source once per call.
	seed := o.Seed
	if method == Mice && !o.SeedSet {
		seed = rand.Int63()
	}

	if len(pos) == 0 {
		o.logger().Warn("no missing values in column; returning unchanged",
			zap.String("column", target), zap.Stringer("method", method))
		b := core.NewResult(core.KindMissing, method.String(), col).
			Positions(nil).
			Warn(core.NoDefectsWarning)
		if method == Mice {
			// mice skips the imputation model entirely here, but the
			// resolved seed is still reported for a uniform result shape.
			b.Seed(seed)
		}
		return b.Build(), nil
	}

	out := col.Clone()
	switch method {
	case Mean:
		err = imputeMean(out, pos)
	case Median:
		err = imputeMedian(out, pos)
	case Mode:
		err = imputeMode(out, pos)
	case KNN:
		err = imputeKNN(ds, out, pos, &o)
	case Rpart:
		err = imputeRpart(ds, out, pos, &o)
	case Mice:
		err = imputeMice(ds, out, pos, seed, &o)
	}
	if err != nil {
		return nil, err
	}

	b := core.NewResult(core.KindMissing, method.String(), out).Positions(pos)
	if method == Mice {
		b.Seed(seed)
	}
	return b.Build(), nil
}

// normalize fills zero-valued knobs with defaults and rejects negatives.
func normalize(o *Options) error {
	if o.Neighbors == 0 {
		o.Neighbors = 10
	}
	if o.Draws == 0 {
		o.Draws = 5
	}
	if o.Trees == 0 {
		o.Trees = 10
	}
	if o.Neighbors < 0 || o.Draws < 0 || o.Trees < 0 || o.MaxDepth < 0 {
		return fmt.Errorf("neighbors=%d draws=%d trees=%d depth=%d: %w",
			o.Neighbors, o.Draws, o.Trees, o.MaxDepth, core.ErrBadOption)
	}
	return nil
}

// imputeMean writes the arithmetic mean of the observed values at pos.
func imputeMean(col *core.Column, pos []int) error {
	m := stat.Mean(col.Observed(), nil)
	for _, p := range pos {
		if err := col.SetFloat(p, m); err != nil {
			return err
		}
	}
	return nil
}

// imputeMedian writes the median of the observed values at pos.
func imputeMedian(col *core.Column, pos []int) error {
	m := core.Quantile(col.Observed(), 0.5)
	for _, p := range pos {
		if err := col.SetFloat(p, m); err != nil {
			return err
		}
	}
	return nil
}

// imputeMode writes the most frequent observed value at pos: exact values
// for numerical columns, levels for categorical ones.
func imputeMode(col *core.Column, pos []int) error {
	if col.Type() == core.Numerical {
		m := core.ModeFloat(col.Observed())
		for _, p := range pos {
			if err := col.SetFloat(p, m); err != nil {
				return err
			}
		}
		return nil
	}
	m := core.ModeLevel(col.ObservedLevels())
	for _, p := range pos {
		if err := col.SetLevel(p, m); err != nil {
			return err
		}
	}
	return nil
}
