package core

// VariableType is the semantic type of a column, inferred once per
// imputation call from the underlying storage type and fixed for that
// call. It determines which methods are legal and which summary branch
// ("mode" computation, contingency vs. descriptives) applies downstream.
type VariableType int

const (
	// Numerical marks continuous or integer columns.
	Numerical VariableType = iota

	// Categorical marks discrete (or ordered-discrete) columns.
	Categorical
)

// String returns the lowercase label used in reports and plot titles.
func (t VariableType) String() string {
	switch t {
	case Numerical:
		return "numerical"
	case Categorical:
		return "categorical"
	default:
		return "unknown"
	}
}

// Kind identifies which pipeline produced a Result and therefore which
// metadata fields are meaningful: missing values carry no original value,
// outliers do.
type Kind int

const (
	// KindMissing marks results of the missing-value imputer ("na_pos" role).
	KindMissing Kind = iota

	// KindOutliers marks results of the outlier imputer ("outlier_pos" role).
	KindOutliers
)

// String returns the label downstream collaborators key their rendering on.
func (k Kind) String() string {
	switch k {
	case KindMissing:
		return "missing values"
	case KindOutliers:
		return "outliers"
	default:
		return "unknown"
	}
}
