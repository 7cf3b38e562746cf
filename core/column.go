package core

import (
	"fmt"
	"math"

	"github.com/go-gota/gota/series"
)

// Column is a named, ordered sequence of scalar values with an explicit
// missing mask. Numerical columns store float64 values (NaN mirrors the
// mask); categorical columns store string levels. A Column built from
// caller data is always a copy: imputers clone before writing, so the
// caller's dataset is never mutated.
type Column struct {
	name string
	vt   VariableType
	nums []float64 // numerical payload; NaN at missing positions
	cats []string  // categorical payload; "" at missing positions
	na   []bool    // missing mask, authoritative for both types
}

// NewNumeric builds a numerical Column. NaN values mark missing cells.
func NewNumeric(name string, values []float64) *Column {
	c := &Column{
		name: name,
		vt:   Numerical,
		nums: make([]float64, len(values)),
		na:   make([]bool, len(values)),
	}
	copy(c.nums, values)
	for i, v := range values {
		c.na[i] = math.IsNaN(v)
	}
	return c
}

// NewCategorical builds a categorical Column. Records equal to "", "NA" or
// "NaN" mark missing cells.
func NewCategorical(name string, values []string) *Column {
	c := &Column{
		name: name,
		vt:   Categorical,
		cats: make([]string, len(values)),
		na:   make([]bool, len(values)),
	}
	for i, v := range values {
		if missingRecord(v) {
			c.na[i] = true
			continue
		}
		c.cats[i] = v
	}
	return c
}

// FromSeries builds a Column from a gota series, inferring the semantic
// type from the storage type: Float and Int series become numerical,
// String and Bool series become categorical.
func FromSeries(s series.Series) *Column {
	switch s.Type() {
	case series.Float, series.Int:
		return NewNumeric(s.Name, s.Float())
	default:
		return NewCategorical(s.Name, s.Records())
	}
}

// Series converts the Column back to a gota series. Missing numerical
// cells become NaN; missing categorical cells become the "NA" record, so
// FromSeries(c.Series()) round-trips exactly.
func (c *Column) Series() series.Series {
	if c.vt == Numerical {
		return series.New(c.Floats(), series.Float, c.name)
	}
	recs := make([]string, len(c.cats))
	for i, v := range c.cats {
		if c.na[i] {
			recs[i] = "NA"
			continue
		}
		recs[i] = v
	}
	return series.New(recs, series.String, c.name)
}

// Name returns the column name.
func (c *Column) Name() string { return c.name }

// Type returns the inferred semantic type.
func (c *Column) Type() VariableType { return c.vt }

// Len returns the number of rows.
func (c *Column) Len() int { return len(c.na) }

// IsNA reports whether row i is missing. Out-of-range indices report false.
func (c *Column) IsNA(i int) bool {
	if i < 0 || i >= len(c.na) {
		return false
	}
	return c.na[i]
}

// MissingPositions returns the row indices of missing cells, ascending.
func (c *Column) MissingPositions() []int {
	var pos []int
	for i, m := range c.na {
		if m {
			pos = append(pos, i)
		}
	}
	return pos
}

// Missing returns the number of missing cells.
func (c *Column) Missing() int {
	n := 0
	for _, m := range c.na {
		if m {
			n++
		}
	}
	return n
}

// Float returns the numerical value at row i (NaN when missing or when the
// column is categorical).
func (c *Column) Float(i int) float64 {
	if c.vt != Numerical || c.na[i] {
		return math.NaN()
	}
	return c.nums[i]
}

// Level returns the categorical level at row i ("" when missing or when
// the column is numerical).
func (c *Column) Level(i int) string {
	if c.vt != Categorical || c.na[i] {
		return ""
	}
	return c.cats[i]
}

// Floats returns a copy of the numerical payload, NaN at missing cells.
func (c *Column) Floats() []float64 {
	out := make([]float64, len(c.na))
	for i := range c.na {
		out[i] = c.Float(i)
	}
	return out
}

// Levels returns a copy of the categorical payload, "" at missing cells.
func (c *Column) Levels() []string {
	out := make([]string, len(c.na))
	for i := range c.na {
		out[i] = c.Level(i)
	}
	return out
}

// Observed returns the non-missing numerical values in column order.
func (c *Column) Observed() []float64 {
	var out []float64
	for i := range c.na {
		if !c.na[i] && c.vt == Numerical {
			out = append(out, c.nums[i])
		}
	}
	return out
}

// ObservedLevels returns the non-missing categorical levels in column order.
func (c *Column) ObservedLevels() []string {
	var out []string
	for i := range c.na {
		if !c.na[i] && c.vt == Categorical {
			out = append(out, c.cats[i])
		}
	}
	return out
}

// EncodeLevels label-encodes a categorical column by first appearance:
// classes lists the distinct observed levels in column order, codes holds
// the class index per row as float64 (NaN at missing cells). Numerical
// columns encode as themselves with a nil class list.
func (c *Column) EncodeLevels() (classes []string, codes []float64) {
	if c.vt == Numerical {
		return nil, c.Floats()
	}
	index := make(map[string]int)
	codes = make([]float64, len(c.na))
	for i := range c.na {
		if c.na[i] {
			codes[i] = math.NaN()
			continue
		}
		lv := c.cats[i]
		ci, ok := index[lv]
		if !ok {
			ci = len(classes)
			index[lv] = ci
			classes = append(classes, lv)
		}
		codes[i] = float64(ci)
	}
	return classes, codes
}

// Clone returns a deep copy.
func (c *Column) Clone() *Column {
	out := &Column{name: c.name, vt: c.vt, na: append([]bool(nil), c.na...)}
	if c.nums != nil {
		out.nums = append([]float64(nil), c.nums...)
	}
	if c.cats != nil {
		out.cats = append([]string(nil), c.cats...)
	}
	return out
}

// SetFloat writes a numerical value at row i and clears its missing flag.
func (c *Column) SetFloat(i int, v float64) error {
	if c.vt != Numerical {
		return fmt.Errorf("column %q is %s: %w", c.name, c.vt, ErrIncompatibleMethod)
	}
	if i < 0 || i >= len(c.na) {
		return fmt.Errorf("row %d of column %q: %w", i, c.name, ErrBadIndex)
	}
	c.nums[i] = v
	c.na[i] = math.IsNaN(v)
	return nil
}

// SetLevel writes a categorical level at row i and clears its missing flag.
func (c *Column) SetLevel(i int, v string) error {
	if c.vt != Categorical {
		return fmt.Errorf("column %q is %s: %w", c.name, c.vt, ErrIncompatibleMethod)
	}
	if i < 0 || i >= len(c.na) {
		return fmt.Errorf("row %d of column %q: %w", i, c.name, ErrBadIndex)
	}
	if missingRecord(v) {
		return c.SetMissing(i)
	}
	c.cats[i] = v
	c.na[i] = false
	return nil
}

// SetMissing marks row i as missing.
func (c *Column) SetMissing(i int) error {
	if i < 0 || i >= len(c.na) {
		return fmt.Errorf("row %d of column %q: %w", i, c.name, ErrBadIndex)
	}
	c.na[i] = true
	if c.vt == Numerical {
		c.nums[i] = math.NaN()
	} else {
		c.cats[i] = ""
	}
	return nil
}

// missingRecord is the categorical missing predicate: empty records and
// the conventional "NA"/"NaN" spellings count as absent.
func missingRecord(v string) bool {
	return v == "" || v == "NA" || v == "NaN"
}
