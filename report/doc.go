// Package report is the read-only downstream surface of the imputation
// engine: it consumes core.Result values and produces before/after
// comparisons for analysts.
//
// Two collaborator contracts are declared here and implemented by the
// surrounding toolkit:
//
//	Summarizer — renders a before/after comparison of one result
//	Plotter    — renders a density overlay (numerical) or grouped bar
//	             chart (categorical) of original vs. imputed distributions
//
// The package also ships the default Summarizer: Compare reconstructs the
// pre-imputation column from the result's defect metadata and produces
// descriptive statistics for numerical columns or a contingency table
// with row percentages for categorical ones. MethodLabel yields the
// display label, which for mice includes the resolved seed so a reader
// can replay the run.
package report
