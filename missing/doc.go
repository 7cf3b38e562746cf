// Package missing imputes the missing values (NA) of one dataset column
// via one of six interchangeable strategies, returning an annotated
// core.Result of kind "missing values".
//
// 🚀 Strategies:
//
//	mean    — arithmetic mean of the observed values     (numerical only)
//	median  — median of the observed values              (numerical only)
//	mode    — most frequent exact value or level         (either type)
//	knn     — nearest-neighbor average over the dataset  (numerical only)
//	rpart   — CART tree fit on the observed rows         (either type)
//	mice    — chained-equations style multiple imputation
//	          with random-forest conditional models       (either type)
//
// Model-based strategies (knn, rpart, mice) consult auxiliary columns of
// the same dataset. The predictor set is computed once as "all dataset
// columns minus the target minus Options.Auxiliary" — the auxiliary
// column is excluded so a response variable cannot leak into its own
// imputation model.
//
// mice is the only strategy with observable randomness: when the caller
// supplies no seed, one is drawn from the process-level random source and
// recorded on the result, so every run is reproducible from the reported
// seed. Fitting diagnostics go through zap and only when Options.Verbose
// is set; they are never emitted as errors.
//
// ⚙️ Usage:
//
//	opts := missing.DefaultOptions()
//	opts.Auxiliary = "price"
//	res, err := missing.Impute(ds, "sqft", missing.Mean, &opts)
//	if err != nil {
//	  // core.ErrUnknownColumn, core.ErrIncompatibleMethod, ...
//	}
//	if res.Flagged() {
//	  // core.NoDefectsWarning: column had no NAs, returned unchanged
//	}
//
// Validation order is fixed: unknown column → type compatibility → the
// (non-fatal) empty defect set. Fatal errors return before any
// computation; absence of missing values is a warning, never a failure.
package missing
