// Package outlier detects and remediates statistical outliers in a
// numerical dataset column, returning an annotated core.Result of kind
// "outliers".
//
// Detection is one fixed rule shared by every replacement strategy: the
// classic boxplot-whisker test. A value is an outlier when it lies beyond
// 1.5× the interquartile range from the nearer quartile:
//
//	v < Q1 − 1.5·IQR   or   v > Q3 + 1.5·IQR
//
// Strategies differ only in the replacement:
//
//	mean    — arithmetic mean of the full column
//	median  — column median
//	mode    — most frequent exact value in the column
//	capping — two-sided Winsorization: below-fence values become the 5th
//	          percentile, above-fence values the 95th; values between a
//	          fence and its percentile stay untouched
//
// The mean/median/mode replacement statistic is computed over the full
// column including the outliers being replaced. That is statistically
// unusual (the statistic is pulled toward the values it corrects) and is
// preserved deliberately for compatibility; the tests pin it down.
//
// Unlike missing values, outliers are real data: the result records the
// original values at the flagged positions, so Restore recovers the
// pre-imputation column exactly. A column with no outliers yields
// core.NoDefectsWarning and an unmodified column, never an error.
package outlier
