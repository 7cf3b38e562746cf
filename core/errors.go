// Package core: sentinel error set shared by both imputation pipelines.
// This file defines ONLY package-level sentinel errors and the non-fatal
// Warning type. All strategies MUST return these sentinels and tests MUST
// check them via errors.Is. Fatal errors are returned at validation time,
// before any computation, so callers never observe a half-completed
// imputation.

package core

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "core: ..." for consistency and to allow
// easy grepping across logs. Do not return these sentinels bare when
// context helps; wrap with fmt.Errorf("ctx: %w", ErrX) — callers still
// match with errors.Is.

var (
	// ErrUnknownColumn indicates the requested column is not present in the
	// dataset. Raised immediately, before any computation.
	ErrUnknownColumn = errors.New("core: unknown column")

	// ErrIncompatibleMethod indicates a method/variable-type mismatch, e.g.
	// arithmetic-mean imputation requested for a categorical column.
	ErrIncompatibleMethod = errors.New("core: method incompatible with variable type")

	// ErrEmptyColumn indicates a column with no observed (non-missing)
	// values, making every replacement statistic undefined.
	ErrEmptyColumn = errors.New("core: column has no observed values")

	// ErrBadIndex indicates a row index outside the column bounds.
	ErrBadIndex = errors.New("core: row index out of range")

	// ErrBadOption indicates a nonsensical option value (e.g. Neighbors < 1).
	ErrBadOption = errors.New("core: invalid option value")

	// ErrFitFailed indicates a model-fitting strategy (knn/rpart/mice) could
	// not be trained. Fitting failures propagate; there is no silent
	// fallback to a simpler method.
	ErrFitFailed = errors.New("core: model fit failed")
)

// Warning is a non-fatal condition recorded on a Result. Unlike errors,
// warnings never abort a call: the engine still returns a valid result.
type Warning string

// NoDefectsWarning flags a call that found no defective observations.
// The corrected column equals the input exactly.
const NoDefectsWarning Warning = "no defective observations found; column returned unchanged"
