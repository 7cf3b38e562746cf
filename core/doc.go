// Package core defines the central Column, Dataset, and Result types shared
// by the missing-value and outlier imputation pipelines.
//
// 🚀 What lives here?
//
//	• Column  — a named, semantically typed (numerical | categorical)
//	  sequence of scalar values with an explicit missing mask
//	• Dataset — a read-only view over named columns, built from a gota
//	  dataframe.DataFrame or from Columns directly
//	• Result  — the annotated imputation result: corrected column plus
//	  defect positions, method name, variable type, original outlier
//	  values and (for stochastic methods) the resolved seed
//	• Quantile / ModeFloat / ModeLevel — the shared order statistics both
//	  pipelines are defined against
//
// Semantic typing is inferred once per call from the underlying storage
// type (Float/Int series → numerical, String/Bool series → categorical)
// and fixed for that call. The missing predicate for categorical records
// treats "", "NA" and "NaN" as absent; numerical columns use NaN.
//
// A Result is produced fresh per call and never mutated afterwards: all
// accessors return copies, and Restore reconstructs the exact
// pre-imputation column from the recorded defect metadata.
//
// Errors:
//
//	ErrUnknownColumn       - requested column absent from the dataset.
//	ErrIncompatibleMethod  - method not applicable to the variable type.
//	ErrEmptyColumn         - column holds no observed values.
//	ErrBadIndex            - row index outside column bounds.
//	ErrBadOption           - nonsensical option value.
//	ErrFitFailed           - a model-fitting strategy could not be trained.
package core
