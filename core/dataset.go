package core

import (
	"fmt"

	"github.com/go-gota/gota/dataframe"
)

// Dataset is a read-only view over the named columns of one tabular
// structure. It is built once per imputation call and never mutated by
// the engine; model-based strategies read auxiliary columns from it to
// assemble predictor sets.
type Dataset struct {
	names []string
	cols  map[string]*Column
	rows  int
}

// FromDataFrame builds a Dataset from a gota DataFrame. Column order and
// names follow the frame; semantic types are inferred per column.
func FromDataFrame(df dataframe.DataFrame) (*Dataset, error) {
	cols := make([]*Column, 0, df.Ncol())
	for _, name := range df.Names() {
		cols = append(cols, FromSeries(df.Col(name)))
	}
	return NewDataset(cols...)
}

// NewDataset builds a Dataset from Columns directly. All columns must
// share one length and carry distinct names.
func NewDataset(cols ...*Column) (*Dataset, error) {
	d := &Dataset{cols: make(map[string]*Column, len(cols))}
	for i, c := range cols {
		if _, dup := d.cols[c.Name()]; dup {
			return nil, fmt.Errorf("duplicate column %q: %w", c.Name(), ErrBadOption)
		}
		if i == 0 {
			d.rows = c.Len()
		} else if c.Len() != d.rows {
			return nil, fmt.Errorf("column %q has %d rows, want %d: %w",
				c.Name(), c.Len(), d.rows, ErrBadOption)
		}
		d.names = append(d.names, c.Name())
		d.cols[c.Name()] = c
	}
	return d, nil
}

// Names returns the column names in dataset order.
func (d *Dataset) Names() []string {
	return append([]string(nil), d.names...)
}

// Len returns the number of rows.
func (d *Dataset) Len() int { return d.rows }

// Column resolves a column by name. The engine accepts only resolved
// names, never selector syntax; unknown names fail before any computation.
func (d *Dataset) Column(name string) (*Column, error) {
	c, ok := d.cols[name]
	if !ok {
		return nil, fmt.Errorf("column %q: %w", name, ErrUnknownColumn)
	}
	return c, nil
}

// Predictors returns all dataset columns minus the target and minus the
// auxiliary column, in dataset order. The exclusion is computed once here
// and passed explicitly into each model-fitting strategy.
func (d *Dataset) Predictors(target, aux string) []*Column {
	var out []*Column
	for _, name := range d.names {
		if name == target || (aux != "" && name == aux) {
			continue
		}
		out = append(out, d.cols[name])
	}
	return out
}

// EncodeMatrix assembles columns into an n×p float64 design matrix.
// Numerical columns pass through unchanged; categorical columns are
// label-encoded by first appearance. Missing cells stay NaN. Model-based
// strategies consume this encoding directly.
func EncodeMatrix(cols []*Column) ([][]float64, error) {
	if len(cols) == 0 {
		return nil, fmt.Errorf("no predictor columns: %w", ErrBadOption)
	}
	n := cols[0].Len()
	enc := make([][]float64, len(cols))
	for j, c := range cols {
		if c.Len() != n {
			return nil, fmt.Errorf("column %q has %d rows, want %d: %w",
				c.Name(), c.Len(), n, ErrBadOption)
		}
		_, enc[j] = c.EncodeLevels()
	}
	X := make([][]float64, n)
	for i := 0; i < n; i++ {
		X[i] = make([]float64, len(cols))
		for j := range cols {
			X[i][j] = enc[j][i]
		}
	}
	return X, nil
}
