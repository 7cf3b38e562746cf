// Package imputr repairs defective observations (missing values and
// statistical outliers) in single columns of a tabular dataset, keeping
// enough provenance to audit the before/after distributions.
//
// 🚀 What is imputr?
//
//	A small, deterministic imputation engine that brings together:
//		• Missing-value strategies: mean, median, mode, knn, rpart, mice
//		• Outlier remediation: mean, median, mode, capping (Winsorization)
//		• A fixed boxplot-whisker detection rule (1.5×IQR fences)
//		• Annotated results: corrected column + defect positions, method,
//		  variable type, original outlier values and the resolved seed
//
// ✨ Why choose imputr?
//
//   - Deterministic – every stochastic step is driven by an explicit seed
//     that is reported back on the result
//   - Auditable – results reconstruct the pre-imputation column exactly
//   - Pure Go models – CART trees and bagged forests, no cgo
//
// Under the hood, everything is organized under five subpackages:
//
//	cart/    — CART decision trees & bagged forests (rpart, mice backends)
//	core/    — Column, Dataset, VariableType and the annotated Result
//	missing/ — the six missing-value strategies + dispatch
//	outlier/ — whisker-rule detection + four replacement strategies
//	report/  — before/after comparison tables & collaborator contracts
//
// Quick sketch:
//
//	    x = [1, 2, NA, 4] ──mean──▶ [1, 2, 2.333, 4]   (na_pos = {2})
//	    x = [1, 2, 3, 4, 5, 100] ──capping──▶ [1, 2, 3, 4, 5, 76.25]
//
// Columns come in through gota (dataframe/series) or plain slices; results
// go out as immutable values the reporting and plotting layers consume
// read-only.
//
//	go get github.com/veltaire/imputr
package imputr
