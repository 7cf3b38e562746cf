package report

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"gonum.org/v1/gonum/stat"

	"github.com/veltaire/imputr/core"
)

// Summarizer renders a before/after comparison of one imputation result.
type Summarizer interface {
	Summarize(r *core.Result) (*Comparison, error)
}

// Plotter renders an original-vs-imputed distribution contrast: a density
// overlay for numerical columns, a grouped bar chart for categorical
// ones. Implementations live in the surrounding toolkit; they read only
// the result's public accessors.
type Plotter interface {
	Plot(r *core.Result) error
}

// MethodLabel returns the display label of a result's method. For the
// stochastic mice strategy the resolved seed is part of the label, so the
// displayed run is reproducible.
func MethodLabel(r *core.Result) string {
	if seed, ok := r.Seed(); ok {
		return fmt.Sprintf("%s (seed: %d)", r.Method(), seed)
	}
	return r.Method()
}

// NumericSummary holds the descriptive statistics of one column state.
type NumericSummary struct {
	N       int
	Missing int
	Mean    float64
	StdDev  float64
	Min     float64
	Q1      float64
	Median  float64
	Q3      float64
	Max     float64
}

// LevelCount is one row of a categorical contingency table: a level with
// its before/after counts and row percentages.
type LevelCount struct {
	Level     string
	Before    int
	After     int
	BeforePct float64
	AfterPct  float64
}

// Comparison is a before/after contrast of one result, keyed by the
// result's kind and variable type: numerical columns compare descriptive
// statistics, categorical columns compare level frequencies.
type Comparison struct {
	Kind         core.Kind
	Method       string
	VariableType core.VariableType
	Defects      int

	// Numerical columns only.
	Before NumericSummary
	After  NumericSummary

	// Categorical columns only; levels in first-appearance order.
	Levels []LevelCount
}

// Compare builds the before/after comparison for a result. The "before"
// state is reconstructed from the recorded defect positions (and original
// outlier values), never re-supplied by the caller.
func Compare(r *core.Result) (*Comparison, error) {
	if r == nil {
		return nil, fmt.Errorf("nil result: %w", core.ErrBadOption)
	}
	before := r.Restore()
	after := r.Column()

	c := &Comparison{
		Kind:         r.Kind(),
		Method:       MethodLabel(r),
		VariableType: r.VariableType(),
		Defects:      len(r.Positions()),
	}
	if r.VariableType() == core.Numerical {
		c.Before = describe(before)
		c.After = describe(after)
		return c, nil
	}
	c.Levels = contingency(before, after)
	return c, nil
}

// describe computes the descriptive statistics of a numerical column over
// its observed values.
func describe(col *core.Column) NumericSummary {
	obs := col.Observed()
	s := NumericSummary{N: col.Len(), Missing: col.Missing()}
	if len(obs) == 0 {
		return s
	}
	s.Mean, s.StdDev = stat.MeanStdDev(obs, nil)
	s.Min = core.Quantile(obs, 0)
	s.Q1 = core.Quantile(obs, 0.25)
	s.Median = core.Quantile(obs, 0.5)
	s.Q3 = core.Quantile(obs, 0.75)
	s.Max = core.Quantile(obs, 1)
	return s
}

// contingency tallies level frequencies before and after, with row
// percentages over the respective observed totals. Levels appear in
// first-appearance order (before first, then new levels from after).
func contingency(before, after *core.Column) []LevelCount {
	index := make(map[string]int)
	var rows []LevelCount
	row := func(level string) *LevelCount {
		i, ok := index[level]
		if !ok {
			i = len(rows)
			index[level] = i
			rows = append(rows, LevelCount{Level: level})
		}
		return &rows[i]
	}

	nb, na := 0, 0
	for i := 0; i < before.Len(); i++ {
		if !before.IsNA(i) {
			row(before.Level(i)).Before++
			nb++
		}
	}
	for i := 0; i < after.Len(); i++ {
		if !after.IsNA(i) {
			row(after.Level(i)).After++
			na++
		}
	}
	for i := range rows {
		if nb > 0 {
			rows[i].BeforePct = 100 * float64(rows[i].Before) / float64(nb)
		}
		if na > 0 {
			rows[i].AfterPct = 100 * float64(rows[i].After) / float64(na)
		}
	}
	return rows
}

// String renders the comparison as a plain-text table.
func (c *Comparison) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "imputation of %s — method %s (%s, %d defects)\n",
		c.Kind, c.Method, c.VariableType, c.Defects)

	w := tabwriter.NewWriter(&b, 2, 4, 2, ' ', 0)
	if c.VariableType == core.Numerical {
		fmt.Fprintln(w, "\tbefore\tafter")
		fmt.Fprintf(w, "n\t%d\t%d\n", c.Before.N, c.After.N)
		fmt.Fprintf(w, "missing\t%d\t%d\n", c.Before.Missing, c.After.Missing)
		fmt.Fprintf(w, "mean\t%.6g\t%.6g\n", c.Before.Mean, c.After.Mean)
		fmt.Fprintf(w, "sd\t%.6g\t%.6g\n", c.Before.StdDev, c.After.StdDev)
		fmt.Fprintf(w, "min\t%.6g\t%.6g\n", c.Before.Min, c.After.Min)
		fmt.Fprintf(w, "q1\t%.6g\t%.6g\n", c.Before.Q1, c.After.Q1)
		fmt.Fprintf(w, "median\t%.6g\t%.6g\n", c.Before.Median, c.After.Median)
		fmt.Fprintf(w, "q3\t%.6g\t%.6g\n", c.Before.Q3, c.After.Q3)
		fmt.Fprintf(w, "max\t%.6g\t%.6g\n", c.Before.Max, c.After.Max)
	} else {
		fmt.Fprintln(w, "level\tbefore\t%\tafter\t%")
		for _, lv := range c.Levels {
			fmt.Fprintf(w, "%s\t%d\t%.1f\t%d\t%.1f\n",
				lv.Level, lv.Before, lv.BeforePct, lv.After, lv.AfterPct)
		}
	}
	w.Flush()
	return b.String()
}

// comparer is the default Summarizer.
type comparer struct{}

// NewSummarizer returns the default Summarizer backed by Compare.
func NewSummarizer() Summarizer { return comparer{} }

func (comparer) Summarize(r *core.Result) (*Comparison, error) { return Compare(r) }
