package outlier_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veltaire/imputr/core"
	"github.com/veltaire/imputr/outlier"
)

// fixture returns the canonical dataset: x = [1,2,3,4,5,100], where the
// whisker rule flags 100 as the sole outlier.
func fixture(t *testing.T) *core.Dataset {
	t.Helper()
	ds, err := core.NewDataset(
		core.NewNumeric("x", []float64{1, 2, 3, 4, 5, 100}),
	)
	require.NoError(t, err)
	return ds
}

// TestDetect_WhiskerRule verifies the fixed boxplot rule flags exactly
// the value beyond 1.5×IQR from the nearer quartile.
func TestDetect_WhiskerRule(t *testing.T) {
	col := core.NewNumeric("x", []float64{1, 2, 3, 4, 5, 100})
	pos, err := outlier.Detect(col)
	require.NoError(t, err)
	assert.Equal(t, []int{5}, pos, "only 100 lies beyond Q3+1.5·IQR = 8.5")
}

// TestDetect_SkipsMissing verifies NA cells are never flagged.
func TestDetect_SkipsMissing(t *testing.T) {
	col := core.NewNumeric("x", []float64{1, 2, math.NaN(), 4, 5, 100})
	pos, err := outlier.Detect(col)
	require.NoError(t, err)
	assert.Equal(t, []int{5}, pos)
}

// TestDetect_Categorical verifies outlier semantics are undefined for
// categorical data.
func TestDetect_Categorical(t *testing.T) {
	col := core.NewCategorical("g", []string{"a", "b"})
	_, err := outlier.Detect(col)
	assert.ErrorIs(t, err, core.ErrIncompatibleMethod)
}

// TestImpute_Capping verifies the two-sided Winsorization: the flagged
// high value becomes the 95th percentile of the full column.
func TestImpute_Capping(t *testing.T) {
	res, err := outlier.Impute(fixture(t), "x", outlier.Capping)
	require.NoError(t, err)

	col := res.Column()
	assert.InDelta(t, 76.25, col.Float(5), 1e-12)
	assert.Equal(t, []int{5}, res.Positions())
	assert.Equal(t, []float64{100}, res.OutlierValues())
	assert.Equal(t, core.KindOutliers, res.Kind())
}

// TestImpute_CappingLowSide verifies the lower fence maps to the 5th
// percentile.
func TestImpute_CappingLowSide(t *testing.T) {
	ds, err := core.NewDataset(
		core.NewNumeric("x", []float64{-100, 10, 11, 12, 13, 14}),
	)
	require.NoError(t, err)

	res, err := outlier.Impute(ds, "x", outlier.Capping)
	require.NoError(t, err)
	// p05 of the full column, type-7: between -100 and 10.
	assert.InDelta(t, -72.5, res.Column().Float(0), 1e-12)
}

// TestImpute_FullColumnStatistics pins the deliberate compatibility
// choice: mean/median/mode replacements are computed over the full
// column, outliers included, so the statistic is pulled toward the very
// values it replaces.
func TestImpute_FullColumnStatistics(t *testing.T) {
	res, err := outlier.Impute(fixture(t), "x", outlier.Mean)
	require.NoError(t, err)
	assert.InDelta(t, 115.0/6.0, res.Column().Float(5), 1e-12,
		"mean includes the 100 being replaced")

	res, err = outlier.Impute(fixture(t), "x", outlier.Median)
	require.NoError(t, err)
	assert.InDelta(t, 3.5, res.Column().Float(5), 1e-12)

	res, err = outlier.Impute(fixture(t), "x", outlier.Mode)
	require.NoError(t, err)
	assert.Equal(t, 1.0, res.Column().Float(5),
		"all values are singletons; the first encountered wins")
}

// TestImpute_PreservesNonDefects verifies rows outside the flagged set
// stay bit-identical for every method.
func TestImpute_PreservesNonDefects(t *testing.T) {
	methods := []outlier.Method{outlier.Mean, outlier.Median, outlier.Mode, outlier.Capping}
	for _, m := range methods {
		res, err := outlier.Impute(fixture(t), "x", m)
		require.NoError(t, err, "method %s", m)

		col := res.Column()
		require.Equal(t, 6, col.Len())
		for i := 0; i < 5; i++ {
			assert.Equal(t, float64(i+1), col.Float(i), "method %s row %d", m, i)
		}
	}
}

// TestImpute_NoOutliersWarning verifies the valid-but-flagged state for
// every method when the whisker rule flags nothing.
func TestImpute_NoOutliersWarning(t *testing.T) {
	methods := []outlier.Method{outlier.Mean, outlier.Median, outlier.Mode, outlier.Capping}
	for _, m := range methods {
		ds, err := core.NewDataset(
			core.NewNumeric("x", []float64{1, 2, 3, 4, 5}),
		)
		require.NoError(t, err)

		res, err := outlier.Impute(ds, "x", m)
		require.NoError(t, err, "absence of outliers is never an error (method %s)", m)
		assert.True(t, res.Flagged())
		assert.Equal(t, core.NoDefectsWarning, res.Warning())
		assert.Empty(t, res.Positions())
		assert.Equal(t, []float64{1, 2, 3, 4, 5}, res.Column().Floats())
	}
}

// TestImpute_Validation pins the fatal cases.
func TestImpute_Validation(t *testing.T) {
	ds, err := core.NewDataset(
		core.NewCategorical("g", []string{"a", "b"}),
	)
	require.NoError(t, err)

	_, err = outlier.Impute(ds, "g", outlier.Mean)
	assert.ErrorIs(t, err, core.ErrIncompatibleMethod)

	_, err = outlier.Impute(ds, "missing", outlier.Mean)
	assert.ErrorIs(t, err, core.ErrUnknownColumn)

	_, err = outlier.Impute(fixture(t), "x", outlier.Method(42))
	assert.ErrorIs(t, err, outlier.ErrUnknownMethod)

	_, err = outlier.Impute(nil, "x", outlier.Mean)
	assert.ErrorIs(t, err, core.ErrBadOption)
}

// TestImpute_RestoreRoundTrip verifies the recorded outlier values
// recover the pre-imputation column exactly.
func TestImpute_RestoreRoundTrip(t *testing.T) {
	res, err := outlier.Impute(fixture(t), "x", outlier.Capping)
	require.NoError(t, err)

	before := res.Restore()
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 100}, before.Floats())
}

// TestParseMethod covers name resolution for all four strategies.
func TestParseMethod(t *testing.T) {
	for _, name := range []string{"mean", "median", "mode", "capping"} {
		m, err := outlier.ParseMethod(name)
		require.NoError(t, err)
		assert.Equal(t, name, m.String())
	}
	_, err := outlier.ParseMethod("zscore")
	assert.ErrorIs(t, err, outlier.ErrUnknownMethod)
}
