package core

// Result is the annotated imputation result: the corrected column wrapped
// together with its defect metadata. Both pipelines return this one shape,
// which is what lets the summary and plot collaborators be written once
// per kind+variable-type combination instead of once per method.
//
// A Result has no mutable identity: it is built once, all accessors return
// copies, and downstream collaborators consume it read-only.
type Result struct {
	col        *Column
	kind       Kind
	method     string
	vt         VariableType
	positions  []int     // defect positions ("na_pos" or "outlier_pos")
	origValues []float64 // original values at positions (outliers only)
	origLevels []string  // reserved: outlier semantics are numerical-only
	seed       int64
	seedSet    bool
	warning    Warning
}

// ResultBuilder assembles a Result. The corrected column and every slice
// are copied on Build, so later caller-side mutation cannot reach a
// published Result.
type ResultBuilder struct {
	r Result
}

// NewResult starts a builder for the given pipeline kind, method name and
// corrected column. The column's variable type is recorded as-is.
func NewResult(kind Kind, method string, col *Column) *ResultBuilder {
	return &ResultBuilder{r: Result{
		col:    col.Clone(),
		kind:   kind,
		method: method,
		vt:     col.Type(),
	}}
}

// Positions records the defect position set. The set is fixed at detection
// time: replacement never changes which rows count as defective.
func (b *ResultBuilder) Positions(pos []int) *ResultBuilder {
	b.r.positions = append([]int(nil), pos...)
	return b
}

// OutlierValues records the original values at the defect positions.
// Outliers are real data, unlike NA, so they are recoverable.
func (b *ResultBuilder) OutlierValues(v []float64) *ResultBuilder {
	b.r.origValues = append([]float64(nil), v...)
	return b
}

// Seed records the resolved random seed of a stochastic method.
func (b *ResultBuilder) Seed(seed int64) *ResultBuilder {
	b.r.seed = seed
	b.r.seedSet = true
	return b
}

// Warn attaches a non-fatal warning.
func (b *ResultBuilder) Warn(w Warning) *ResultBuilder {
	b.r.warning = w
	return b
}

// Build finalizes the Result.
func (b *ResultBuilder) Build() *Result {
	r := b.r
	r.col = b.r.col.Clone()
	return &r
}

// Column returns a copy of the corrected column.
func (r *Result) Column() *Column { return r.col.Clone() }

// Kind reports which pipeline produced the result.
func (r *Result) Kind() Kind { return r.kind }

// Method returns the strategy name used.
func (r *Result) Method() string { return r.method }

// VariableType returns the semantic type of the corrected column.
func (r *Result) VariableType() VariableType { return r.vt }

// Positions returns a copy of the defect position set.
func (r *Result) Positions() []int { return append([]int(nil), r.positions...) }

// OutlierValues returns a copy of the original values at the defect
// positions. It is nil for missing-value results.
func (r *Result) OutlierValues() []float64 {
	return append([]float64(nil), r.origValues...)
}

// Seed returns the resolved random seed and whether one was recorded.
// Only the stochastic mice method records a seed.
func (r *Result) Seed() (int64, bool) { return r.seed, r.seedSet }

// Warning returns the attached non-fatal warning, if any.
func (r *Result) Warning() Warning { return r.warning }

// Flagged reports whether a non-fatal warning was attached.
func (r *Result) Flagged() bool { return r.warning != "" }

// Restore reconstructs the pre-imputation column from the recorded defect
// metadata: missing-value results get their NAs back, outlier results get
// the original values back. Restore(Impute(x)) == x exactly.
func (r *Result) Restore() *Column {
	out := r.col.Clone()
	switch r.kind {
	case KindMissing:
		for _, p := range r.positions {
			_ = out.SetMissing(p)
		}
	case KindOutliers:
		for i, p := range r.positions {
			if i < len(r.origValues) {
				_ = out.SetFloat(p, r.origValues[i])
			}
		}
	}
	return out
}
