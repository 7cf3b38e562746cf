package missing_test

import (
	"math"
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veltaire/imputr/core"
	"github.com/veltaire/imputr/missing"
)

// naDataset builds the canonical fixture: x = [1, 2, NA, 4] with a fully
// observed companion column z.
func naDataset(t *testing.T) *core.Dataset {
	t.Helper()
	ds, err := core.NewDataset(
		core.NewNumeric("x", []float64{1, 2, math.NaN(), 4}),
		core.NewNumeric("z", []float64{10, 20, 29, 40}),
	)
	require.NoError(t, err)
	return ds
}

// TestImpute_Mean verifies the arithmetic-mean replacement on [1,2,NA,4].
func TestImpute_Mean(t *testing.T) {
	res, err := missing.Impute(naDataset(t), "x", missing.Mean, nil)
	require.NoError(t, err)

	col := res.Column()
	assert.InDelta(t, 2.3333333333, col.Float(2), 1e-9)
	assert.Equal(t, []int{2}, res.Positions())
	assert.Equal(t, "mean", res.Method())
	assert.Equal(t, core.KindMissing, res.Kind())
	assert.Equal(t, "missing values", res.Kind().String())
	assert.False(t, res.Flagged())
}

// TestImpute_Median verifies the median replacement on [1,2,NA,4].
func TestImpute_Median(t *testing.T) {
	res, err := missing.Impute(naDataset(t), "x", missing.Median, nil)
	require.NoError(t, err)
	assert.Equal(t, 2.0, res.Column().Float(2))
}

// TestImpute_Mode verifies the exact-value mode replacement; all observed
// values are singletons, so the tie takes the first one encountered.
func TestImpute_Mode(t *testing.T) {
	res, err := missing.Impute(naDataset(t), "x", missing.Mode, nil)
	require.NoError(t, err)
	assert.Equal(t, 1.0, res.Column().Float(2))
}

// TestImpute_ModeCategorical verifies level-frequency mode for
// categorical columns.
func TestImpute_ModeCategorical(t *testing.T) {
	ds, err := core.NewDataset(
		core.NewCategorical("g", []string{"b", "a", "", "b"}),
		core.NewNumeric("z", []float64{1, 2, 3, 4}),
	)
	require.NoError(t, err)

	res, err := missing.Impute(ds, "g", missing.Mode, nil)
	require.NoError(t, err)
	assert.Equal(t, "b", res.Column().Level(2))
	assert.Equal(t, core.Categorical, res.VariableType())
}

// TestImpute_PreservesNonDefects verifies, for every method, that the
// corrected column keeps the input length and that values outside the
// defect positions are bit-identical to the input.
func TestImpute_PreservesNonDefects(t *testing.T) {
	methods := []missing.Method{
		missing.Mean, missing.Median, missing.Mode,
		missing.KNN, missing.Rpart, missing.Mice,
	}
	for _, m := range methods {
		ds := naDataset(t)
		in, err := ds.Column("x")
		require.NoError(t, err)

		opts := missing.DefaultOptions()
		opts.Seed, opts.SeedSet = 1, true
		res, err := missing.Impute(ds, "x", m, &opts)
		require.NoError(t, err, "method %s", m)

		out := res.Column()
		require.Equal(t, in.Len(), out.Len(), "method %s", m)
		for i := 0; i < in.Len(); i++ {
			if i == 2 {
				assert.False(t, out.IsNA(i), "method %s fills the NA", m)
				continue
			}
			assert.Equal(t, in.Float(i), out.Float(i), "method %s row %d", m, i)
		}
	}
}

// TestImpute_NoDefectsWarning verifies the valid-but-flagged state: every
// method returns the unmodified column plus core.NoDefectsWarning when no
// missing values exist, and mice still records its seed.
func TestImpute_NoDefectsWarning(t *testing.T) {
	methods := []missing.Method{
		missing.Mean, missing.Median, missing.Mode,
		missing.KNN, missing.Rpart, missing.Mice,
	}
	for _, m := range methods {
		ds, err := core.NewDataset(
			core.NewNumeric("x", []float64{1, 2, 3}),
			core.NewNumeric("z", []float64{4, 5, 6}),
		)
		require.NoError(t, err)

		res, err := missing.Impute(ds, "x", m, nil)
		require.NoError(t, err, "absence of defects is never an error (method %s)", m)
		assert.True(t, res.Flagged(), "method %s", m)
		assert.Equal(t, core.NoDefectsWarning, res.Warning())
		assert.Empty(t, res.Positions())
		assert.Equal(t, []float64{1, 2, 3}, res.Column().Floats(), "method %s", m)

		_, hasSeed := res.Seed()
		assert.Equal(t, m == missing.Mice, hasSeed, "only mice reports a seed (method %s)", m)
	}
}

// TestImpute_TypeCompatibility verifies numerical-only methods fail on a
// categorical column before touching the data.
func TestImpute_TypeCompatibility(t *testing.T) {
	ds, err := core.NewDataset(
		core.NewCategorical("g", []string{"a", "", "b"}),
		core.NewNumeric("z", []float64{1, 2, 3}),
	)
	require.NoError(t, err)

	for _, m := range []missing.Method{missing.Mean, missing.Median, missing.KNN} {
		_, err := missing.Impute(ds, "g", m, nil)
		assert.ErrorIs(t, err, core.ErrIncompatibleMethod, "method %s", m)
	}
}

// TestImpute_ValidationErrors pins the fatal validation cases raised
// before any computation.
func TestImpute_ValidationErrors(t *testing.T) {
	ds := naDataset(t)

	_, err := missing.Impute(ds, "nope", missing.Mean, nil)
	assert.ErrorIs(t, err, core.ErrUnknownColumn)

	opts := missing.DefaultOptions()
	opts.Auxiliary = "ghost"
	_, err = missing.Impute(ds, "x", missing.Mean, &opts)
	assert.ErrorIs(t, err, core.ErrUnknownColumn, "auxiliary must resolve too")

	opts = missing.DefaultOptions()
	opts.Auxiliary = "x"
	_, err = missing.Impute(ds, "x", missing.Mean, &opts)
	assert.ErrorIs(t, err, core.ErrBadOption, "auxiliary may not equal the target")

	_, err = missing.Impute(ds, "x", missing.Method(99), nil)
	assert.ErrorIs(t, err, missing.ErrUnknownMethod)

	opts = missing.DefaultOptions()
	opts.Neighbors = -1
	_, err = missing.Impute(ds, "x", missing.KNN, &opts)
	assert.ErrorIs(t, err, core.ErrBadOption)

	_, err = missing.Impute(nil, "x", missing.Mean, nil)
	assert.ErrorIs(t, err, core.ErrBadOption)

	allNA, err := core.NewDataset(core.NewNumeric("x", []float64{math.NaN(), math.NaN()}))
	require.NoError(t, err)
	_, err = missing.Impute(allNA, "x", missing.Mean, nil)
	assert.ErrorIs(t, err, core.ErrEmptyColumn)
}

// TestImpute_KNN verifies the nearest-neighbor estimate: with k=1 the
// missing row copies its closest donor, with k=2 it averages both.
func TestImpute_KNN(t *testing.T) {
	opts := missing.DefaultOptions()
	opts.Neighbors = 1
	res, err := missing.Impute(naDataset(t), "x", missing.KNN, &opts)
	require.NoError(t, err)
	assert.Equal(t, 2.0, res.Column().Float(2), "z=29 sits closest to the z=20 donor")

	opts.Neighbors = 2
	res, err = missing.Impute(naDataset(t), "x", missing.KNN, &opts)
	require.NoError(t, err)
	assert.Equal(t, 3.0, res.Column().Float(2), "mean of donors x=2 and x=4")
}

// TestImpute_RpartNumerical verifies regression-tree imputation driven by
// a categorical predictor.
func TestImpute_RpartNumerical(t *testing.T) {
	ds, err := core.NewDataset(
		core.NewNumeric("x", []float64{10, 10, math.NaN(), 20, 20, math.NaN()}),
		core.NewCategorical("g", []string{"a", "a", "a", "b", "b", "b"}),
	)
	require.NoError(t, err)

	res, err := missing.Impute(ds, "x", missing.Rpart, nil)
	require.NoError(t, err)
	col := res.Column()
	assert.Equal(t, 10.0, col.Float(2))
	assert.Equal(t, 20.0, col.Float(5))
	assert.Equal(t, []int{2, 5}, res.Positions())
}

// TestImpute_RpartCategorical verifies classification-tree imputation of
// a categorical target from a numerical predictor.
func TestImpute_RpartCategorical(t *testing.T) {
	ds, err := core.NewDataset(
		core.NewCategorical("g", []string{"a", "a", "", "b", "b"}),
		core.NewNumeric("x", []float64{1, 2, 3, 10, 11}),
	)
	require.NoError(t, err)

	res, err := missing.Impute(ds, "g", missing.Rpart, nil)
	require.NoError(t, err)
	assert.Equal(t, "a", res.Column().Level(2), "x=3 falls on the a side of the split")
}

// TestImpute_RpartNeedsPredictors verifies model-based methods reject a
// dataset with nothing to learn from.
func TestImpute_RpartNeedsPredictors(t *testing.T) {
	ds, err := core.NewDataset(
		core.NewNumeric("x", []float64{1, math.NaN(), 3}),
	)
	require.NoError(t, err)

	_, err = missing.Impute(ds, "x", missing.Rpart, nil)
	assert.ErrorIs(t, err, core.ErrBadOption)
}

// TestImpute_AuxiliaryExcluded verifies the auxiliary column stays out of
// the predictor set: with the only informative predictor excluded, rpart
// falls back to the remaining constant column and predicts the overall
// mean instead of the group mean.
func TestImpute_AuxiliaryExcluded(t *testing.T) {
	ds, err := core.NewDataset(
		core.NewNumeric("x", []float64{10, 10, math.NaN(), 20, 20}),
		core.NewCategorical("g", []string{"a", "a", "a", "b", "b"}),
		core.NewNumeric("c", []float64{1, 1, 1, 1, 1}),
	)
	require.NoError(t, err)

	opts := missing.DefaultOptions()
	opts.Auxiliary = "g"
	res, err := missing.Impute(ds, "x", missing.Rpart, &opts)
	require.NoError(t, err)
	assert.Equal(t, 15.0, res.Column().Float(2), "constant predictor yields the root mean")
}

// TestImpute_MiceDeterministicGivenSeed verifies the reproducibility
// contract: the same explicit seed and inputs produce identical corrected
// columns.
func TestImpute_MiceDeterministicGivenSeed(t *testing.T) {
	build := func() *core.Dataset {
		ds, err := core.NewDataset(
			core.NewNumeric("x", []float64{1, 2, math.NaN(), 4, 5, math.NaN(), 7, 8}),
			core.NewNumeric("z", []float64{1, 2, 3, 4, 5, 6, 7, 8}),
		)
		require.NoError(t, err)
		return ds
	}

	opts := missing.DefaultOptions()
	opts.Seed, opts.SeedSet = 42, true

	r1, err := missing.Impute(build(), "x", missing.Mice, &opts)
	require.NoError(t, err)
	r2, err := missing.Impute(build(), "x", missing.Mice, &opts)
	require.NoError(t, err)

	assert.Equal(t, r1.Column().Floats(), r2.Column().Floats())

	s, ok := r1.Seed()
	require.True(t, ok)
	assert.Equal(t, int64(42), s, "explicit seed is echoed back")
}

// TestImpute_MiceAutoSeedReplays verifies that a run without a seed
// reports the seed it drew, and that replaying it reproduces the output.
func TestImpute_MiceAutoSeedReplays(t *testing.T) {
	build := func() *core.Dataset {
		ds, err := core.NewDataset(
			core.NewNumeric("x", []float64{1, 2, math.NaN(), 4, 5, math.NaN(), 7, 8}),
			core.NewNumeric("z", []float64{1, 2, 3, 4, 5, 6, 7, 8}),
		)
		require.NoError(t, err)
		return ds
	}

	first, err := missing.Impute(build(), "x", missing.Mice, nil)
	require.NoError(t, err)
	seed, ok := first.Seed()
	require.True(t, ok, "auto-generated seed must be reported")

	opts := missing.DefaultOptions()
	opts.Seed, opts.SeedSet = seed, true
	replay, err := missing.Impute(build(), "x", missing.Mice, &opts)
	require.NoError(t, err)

	assert.Equal(t, first.Column().Floats(), replay.Column().Floats())
}

// TestImpute_MiceCategorical verifies majority-vote collapsing lands on a
// level from the observed set, on cleanly separated clusters.
func TestImpute_MiceCategorical(t *testing.T) {
	ds, err := core.NewDataset(
		core.NewCategorical("g", []string{"a", "a", "", "b", "b", "b", "a", "b"}),
		core.NewNumeric("x", []float64{1, 2, 3, 10, 11, 12, 1.5, 10.5}),
	)
	require.NoError(t, err)

	opts := missing.DefaultOptions()
	opts.Seed, opts.SeedSet = 7, true
	res, err := missing.Impute(ds, "g", missing.Mice, &opts)
	require.NoError(t, err)

	assert.Equal(t, "a", res.Column().Level(2), "x=3 belongs to the a cluster")
	seed, ok := res.Seed()
	require.True(t, ok)
	assert.Equal(t, int64(7), seed)
}

// TestImpute_RestoreRoundTrip verifies summary-style reconstruction: the
// recorded defect positions recover the pre-imputation column exactly.
func TestImpute_RestoreRoundTrip(t *testing.T) {
	ds := naDataset(t)
	res, err := missing.Impute(ds, "x", missing.Median, nil)
	require.NoError(t, err)

	before := res.Restore()
	assert.True(t, before.IsNA(2))
	assert.Equal(t, []float64{1, 2, 4}, before.Observed())
}

// TestImpute_FromDataFrame exercises the gota boundary end to end.
func TestImpute_FromDataFrame(t *testing.T) {
	df := dataframe.New(
		series.New([]float64{1, 2, math.NaN(), 4}, series.Float, "x"),
		series.New([]string{"a", "b", "a", "b"}, series.String, "g"),
	)
	ds, err := core.FromDataFrame(df)
	require.NoError(t, err)

	res, err := missing.Impute(ds, "x", missing.Mean, nil)
	require.NoError(t, err)
	assert.InDelta(t, 2.3333333333, res.Column().Float(2), 1e-9)
}

// TestParseMethod covers name resolution for all six strategies.
func TestParseMethod(t *testing.T) {
	for _, name := range []string{"mean", "median", "mode", "knn", "rpart", "mice"} {
		m, err := missing.ParseMethod(name)
		require.NoError(t, err)
		assert.Equal(t, name, m.String())
	}
	_, err := missing.ParseMethod("magic")
	assert.ErrorIs(t, err, missing.ErrUnknownMethod)
}
