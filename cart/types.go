// Package cart: tasks, options, and the sentinel error set.
package cart

import "errors"

// Task selects the split objective and the leaf/ensemble aggregation.
type Task int

const (
	// Regression grows trees on variance reduction; leaves hold means.
	Regression Task = iota

	// Classification grows trees on Gini impurity; targets are class
	// indices (0, 1, 2, ...) stored as float64, leaves hold the majority
	// class index.
	Classification
)

// Sentinel errors for cart model fitting.
var (
	// ErrEmptyMatrix indicates an empty design matrix or target vector.
	ErrEmptyMatrix = errors.New("cart: empty design matrix")

	// ErrDimensionMismatch indicates X row count and len(y) differ, or X
	// rows have inconsistent widths.
	ErrDimensionMismatch = errors.New("cart: dimension mismatch")

	// ErrBadTarget indicates a NaN target value, or a classification
	// target that is not a non-negative integer class index.
	ErrBadTarget = errors.New("cart: invalid target value")

	// ErrNotFitted indicates Predict was called on an untrained model.
	ErrNotFitted = errors.New("cart: model not fitted")
)

// Options configures tree growth.
//
// Fields:
//   - MaxDepth        — maximum depth, root at 0; 0 means unlimited.
//   - MinSamplesSplit — minimum samples required to attempt a split.
//   - MinSamplesLeaf  — minimum samples required in each child.
//   - MaxFeatures     — features sampled per split; 0 means all (Fit) or
//     the task-standard subset (FitForest: √p classification, p/3
//     regression).
//   - Seed            — seed for feature subsampling and bootstrap.
type Options struct {
	MaxDepth        int
	MinSamplesSplit int
	MinSamplesLeaf  int
	MaxFeatures     int
	Seed            int64
}

// DefaultOptions returns the growth defaults used by the imputation
// strategies: unlimited depth, split at 2 samples, leaves of 1.
func DefaultOptions() Options {
	return Options{
		MaxDepth:        0,
		MinSamplesSplit: 2,
		MinSamplesLeaf:  1,
		MaxFeatures:     0,
		Seed:            1,
	}
}
