package cart

import (
	"fmt"
	"math"
	"math/rand"
)

// Forest is a bagged ensemble of CART trees. Each tree trains on a
// bootstrap resample of the rows (sampled by index, not by copy) with a
// seed derived from the base seed, so a Forest is fully reproducible.
type Forest struct {
	trees    []*Tree
	task     Task
	nClasses int
}

// FitForest trains `trees` bagged CART trees on X and y. When
// Options.MaxFeatures is 0, the task-standard subset is used per split:
// √p for Classification, p/3 (at least 1) for Regression. Tree i draws
// its bootstrap sample and feature subsets from a source seeded with
// Seed+i.
func FitForest(X [][]float64, y []float64, task Task, opts Options, trees int) (*Forest, error) {
	if trees < 1 {
		return nil, fmt.Errorf("%d trees requested: %w", trees, ErrEmptyMatrix)
	}
	if len(X) == 0 || len(y) != len(X) {
		return nil, fmt.Errorf("%d rows, %d targets: %w", len(X), len(y), ErrDimensionMismatch)
	}
	p := len(X[0])
	if opts.MaxFeatures <= 0 {
		if task == Classification {
			opts.MaxFeatures = int(math.Max(1, math.Floor(math.Sqrt(float64(p)))))
		} else {
			opts.MaxFeatures = int(math.Max(1, math.Floor(float64(p)/3)))
		}
	}

	f := &Forest{task: task}
	n := len(X)
	for t := 0; t < trees; t++ {
		treeOpts := opts
		treeOpts.Seed = opts.Seed + int64(t)
		rng := rand.New(rand.NewSource(treeOpts.Seed))

		bx := make([][]float64, n)
		by := make([]float64, n)
		for i := 0; i < n; i++ {
			j := rng.Intn(n)
			bx[i] = X[j]
			by[i] = y[j]
		}

		tree, err := Fit(bx, by, task, treeOpts)
		if err != nil {
			return nil, fmt.Errorf("tree %d: %w", t, err)
		}
		if tree.nClasses > f.nClasses {
			f.nClasses = tree.nClasses
		}
		f.trees = append(f.trees, tree)
	}
	return f, nil
}

// Predict aggregates the member trees: mean for Regression, majority vote
// for Classification with ties going to the lowest class index.
func (f *Forest) Predict(x []float64) float64 {
	if len(f.trees) == 0 {
		return math.NaN()
	}
	if f.task == Regression {
		sum := 0.0
		for _, t := range f.trees {
			sum += t.Predict(x)
		}
		return sum / float64(len(f.trees))
	}
	votes := make([]int, f.nClasses)
	for _, t := range f.trees {
		c := int(t.Predict(x))
		if c >= 0 && c < len(votes) {
			votes[c]++
		}
	}
	best := 0
	for c := 1; c < len(votes); c++ {
		if votes[c] > votes[best] {
			best = c
		}
	}
	return float64(best)
}

// PredictAll predicts every row of X.
func (f *Forest) PredictAll(X [][]float64) ([]float64, error) {
	if len(f.trees) == 0 {
		return nil, ErrNotFitted
	}
	out := make([]float64, len(X))
	for i := range X {
		out[i] = f.Predict(X[i])
	}
	return out, nil
}

// Len returns the number of fitted trees.
func (f *Forest) Len() int { return len(f.trees) }
