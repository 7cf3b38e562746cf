package missing

import (
	"fmt"
	"math"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/stat"

	"github.com/veltaire/imputr/cart"
	"github.com/veltaire/imputr/core"
)

// imputeRpart fits a single CART tree on the rows where the target is
// observed, with all dataset columns except the target and the auxiliary
// column as predictors, and substitutes its predictions at the missing
// rows. Numerical targets use the regression objective, categorical
// targets the classification objective.
func imputeRpart(ds *core.Dataset, col *core.Column, pos []int, o *Options) error {
	X, y, classes, task, err := designFor(ds, col, o)
	if err != nil {
		return err
	}

	var trainX [][]float64
	var trainY []float64
	for i := 0; i < col.Len(); i++ {
		if !col.IsNA(i) {
			trainX = append(trainX, X[i])
			trainY = append(trainY, y[i])
		}
	}

	opts := cart.DefaultOptions()
	opts.MaxDepth = o.MaxDepth
	tree, err := cart.Fit(trainX, trainY, task, opts)
	if err != nil {
		return fmt.Errorf("rpart on column %q: %w: %v", col.Name(), core.ErrFitFailed, err)
	}

	for _, p := range pos {
		pred := tree.Predict(X[p])
		if err := writePrediction(col, p, pred, classes); err != nil {
			return err
		}
	}
	return nil
}

// imputeMice runs the chained-equations style procedure: Options.Draws
// independent random-forest draws, each fit on a bootstrap of the
// observed rows, produce one completed value per missing cell; the draws
// collapse to a single value by averaging (numerical targets) or majority
// vote (categorical targets). Everything is reproducible from seed.
func imputeMice(ds *core.Dataset, col *core.Column, pos []int, seed int64, o *Options) error {
	X, y, classes, task, err := designFor(ds, col, o)
	if err != nil {
		return err
	}
	// The conditional models cannot consume NaN predictors directly, so
	// predictor gaps get a provisional mean/mode fill before fitting.
	prefill(X, ds.Predictors(col.Name(), o.Auxiliary))

	var trainX [][]float64
	var trainY []float64
	for i := 0; i < col.Len(); i++ {
		if !col.IsNA(i) {
			trainX = append(trainX, X[i])
			trainY = append(trainY, y[i])
		}
	}

	log := o.logger()
	log.Info("mice: fitting conditional models",
		zap.String("column", col.Name()),
		zap.Int("missing", len(pos)),
		zap.Int("draws", o.Draws),
		zap.Int("trees", o.Trees),
		zap.Int64("seed", seed))

	draws := make([][]float64, o.Draws)
	for d := 0; d < o.Draws; d++ {
		opts := cart.DefaultOptions()
		opts.MaxDepth = o.MaxDepth
		opts.Seed = seed + int64(d)*1000003 // distinct stream per draw
		forest, ferr := cart.FitForest(trainX, trainY, task, opts, o.Trees)
		if ferr != nil {
			return fmt.Errorf("mice draw %d on column %q: %w: %v",
				d+1, col.Name(), core.ErrFitFailed, ferr)
		}
		draws[d] = make([]float64, len(pos))
		for k, p := range pos {
			draws[d][k] = forest.Predict(X[p])
		}
		log.Info("mice: draw complete", zap.Int("draw", d+1), zap.Int("of", o.Draws))
	}

	for k, p := range pos {
		cell := make([]float64, o.Draws)
		for d := 0; d < o.Draws; d++ {
			cell[d] = draws[d][k]
		}
		var pred float64
		if task == cart.Regression {
			pred = stat.Mean(cell, nil)
		} else {
			pred = majority(cell)
		}
		if err := writePrediction(col, p, pred, classes); err != nil {
			return err
		}
	}
	return nil
}

// designFor assembles the model inputs shared by rpart and mice: the
// encoded predictor matrix (all columns minus target minus auxiliary),
// the encoded target, its level classes, and the matching cart task.
func designFor(ds *core.Dataset, col *core.Column, o *Options) ([][]float64, []float64, []string, cart.Task, error) {
	preds := ds.Predictors(col.Name(), o.Auxiliary)
	if len(preds) == 0 {
		return nil, nil, nil, 0, fmt.Errorf(
			"model-based imputation of %q needs at least one predictor column: %w",
			col.Name(), core.ErrBadOption)
	}
	X, err := core.EncodeMatrix(preds)
	if err != nil {
		return nil, nil, nil, 0, err
	}
	task := cart.Regression
	classes, y := col.EncodeLevels()
	if col.Type() == core.Categorical {
		task = cart.Classification
	}
	return X, y, classes, task, nil
}

// prefill replaces NaN predictor cells in place: column mean for encoded
// numerical predictors, most frequent code for categorical ones.
func prefill(X [][]float64, preds []*core.Column) {
	for j, pc := range preds {
		obs := make([]float64, 0, len(X))
		for i := range X {
			if !math.IsNaN(X[i][j]) {
				obs = append(obs, X[i][j])
			}
		}
		if len(obs) == 0 {
			continue
		}
		fill := stat.Mean(obs, nil)
		if pc.Type() == core.Categorical {
			fill = core.ModeFloat(obs)
		}
		for i := range X {
			if math.IsNaN(X[i][j]) {
				X[i][j] = fill
			}
		}
	}
}

// writePrediction stores a model prediction back into the column,
// translating class codes to levels for categorical targets.
func writePrediction(col *core.Column, p int, pred float64, classes []string) error {
	if col.Type() == core.Numerical {
		if math.IsNaN(pred) {
			return fmt.Errorf("prediction for row %d of %q is NaN: %w",
				p, col.Name(), core.ErrFitFailed)
		}
		return col.SetFloat(p, pred)
	}
	ci := int(pred)
	if math.IsNaN(pred) || ci < 0 || ci >= len(classes) {
		return fmt.Errorf("class code %v for row %d of %q: %w",
			pred, p, col.Name(), core.ErrFitFailed)
	}
	return col.SetLevel(p, classes[ci])
}

// majority returns the most frequent value among draws, ties going to the
// smallest value so votes are order-independent.
func majority(draws []float64) float64 {
	counts := make(map[float64]int)
	for _, v := range draws {
		counts[v]++
	}
	best := math.NaN()
	bestN := -1
	for v, n := range counts {
		if n > bestN || (n == bestN && v < best) {
			best, bestN = v, n
		}
	}
	return best
}
