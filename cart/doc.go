// Package cart implements CART decision trees and bagged forests over
// plain float64 design matrices. It is the model backend of the rpart and
// mice imputation strategies.
//
// ✨ Key features:
//   - one Tree type for both tasks: variance-reduction splits for
//     Regression, Gini splits for Classification (targets are class
//     indices encoded as float64)
//   - NaN-aware: missing feature values are routed to the larger child at
//     fit time and follow the same route at predict time
//   - deterministic: sequential index-ordered split search; all
//     randomness (feature subsampling, bootstrap) flows from an explicit
//     seed, never from global state
//
// ⚙️ Usage:
//
//	opts := cart.DefaultOptions()
//	opts.Seed = 42
//	tree, err := cart.Fit(X, y, cart.Regression, opts)
//	yhat := tree.Predict(x)
//
//	forest, err := cart.FitForest(X, y, cart.Classification, opts, 25)
//	class := forest.Predict(x)
//
// Complexity: fitting is O(rows · log(rows) · features) per node level;
// memory is O(rows) beyond the caller's matrix.
package cart
