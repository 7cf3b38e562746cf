package cart

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
)

// node holds one tree node. Internal nodes route x[feature] <= threshold
// to the left child; NaN feature values follow the naLeft flag, which
// points at the larger child chosen at fit time.
type node struct {
	leaf      bool
	feature   int
	threshold float64
	naLeft    bool
	left      *node
	right     *node
	value     float64 // leaf prediction: mean or majority class index
	size      int
}

// Tree is a fitted CART model.
type Tree struct {
	root     *node
	task     Task
	nClasses int
}

// Fit trains a CART tree on X (n×p) and y (n targets). For Regression, y
// holds real values; for Classification, y holds class indices 0..k-1
// encoded as float64. Feature values may be NaN; target values may not.
//
// Fitting is deterministic: the split search walks features and rows in
// index order, and feature subsampling (Options.MaxFeatures) draws from a
// source seeded with Options.Seed.
func Fit(X [][]float64, y []float64, task Task, opts Options) (*Tree, error) {
	if len(X) == 0 || len(y) == 0 {
		return nil, ErrEmptyMatrix
	}
	n := len(X)
	if len(y) != n {
		return nil, fmt.Errorf("%d rows, %d targets: %w", n, len(y), ErrDimensionMismatch)
	}
	p := len(X[0])
	for i := range X {
		if len(X[i]) != p {
			return nil, fmt.Errorf("row %d has %d features, want %d: %w",
				i, len(X[i]), p, ErrDimensionMismatch)
		}
	}

	t := &Tree{task: task}
	for i, v := range y {
		if math.IsNaN(v) {
			return nil, fmt.Errorf("target %d is NaN: %w", i, ErrBadTarget)
		}
		if task == Classification {
			if v < 0 || v != math.Trunc(v) {
				return nil, fmt.Errorf("target %d = %v is not a class index: %w",
					i, v, ErrBadTarget)
			}
			if int(v)+1 > t.nClasses {
				t.nClasses = int(v) + 1
			}
		}
	}

	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	rng := rand.New(rand.NewSource(opts.Seed))
	t.root = t.grow(X, y, idx, 0, p, opts, rng)
	return t, nil
}

// Predict returns the tree's prediction for one feature vector. NaN
// features follow the larger-child route chosen at fit time. An unfitted
// tree predicts NaN.
func (t *Tree) Predict(x []float64) float64 {
	nd := t.root
	if nd == nil {
		return math.NaN()
	}
	for !nd.leaf {
		v := x[nd.feature]
		switch {
		case math.IsNaN(v):
			if nd.naLeft {
				nd = nd.left
			} else {
				nd = nd.right
			}
		case v <= nd.threshold:
			nd = nd.left
		default:
			nd = nd.right
		}
	}
	return nd.value
}

// PredictAll predicts every row of X.
func (t *Tree) PredictAll(X [][]float64) ([]float64, error) {
	if t.root == nil {
		return nil, ErrNotFitted
	}
	out := make([]float64, len(X))
	for i := range X {
		out[i] = t.Predict(X[i])
	}
	return out, nil
}

// grow builds a node over the sample subset idx.
func (t *Tree) grow(X [][]float64, y []float64, idx []int, depth, p int, opts Options, rng *rand.Rand) *node {
	nd := &node{size: len(idx)}
	nd.value = t.leafValue(y, idx)

	if t.pure(y, idx) ||
		(opts.MinSamplesSplit > 0 && len(idx) < opts.MinSamplesSplit) ||
		(opts.MaxDepth > 0 && depth >= opts.MaxDepth) {
		nd.leaf = true
		return nd
	}

	feats := featureSubset(p, opts.MaxFeatures, rng)
	best := t.bestSplit(X, y, idx, feats, opts.MinSamplesLeaf)
	if best.feature < 0 {
		nd.leaf = true
		return nd
	}

	var leftIdx, rightIdx, naIdx []int
	for _, i := range idx {
		v := X[i][best.feature]
		switch {
		case math.IsNaN(v):
			naIdx = append(naIdx, i)
		case v <= best.threshold:
			leftIdx = append(leftIdx, i)
		default:
			rightIdx = append(rightIdx, i)
		}
	}
	// Missing feature values ride with the larger child.
	nd.naLeft = len(leftIdx) >= len(rightIdx)
	if nd.naLeft {
		leftIdx = append(leftIdx, naIdx...)
	} else {
		rightIdx = append(rightIdx, naIdx...)
	}
	if len(leftIdx) == 0 || len(rightIdx) == 0 {
		nd.leaf = true
		return nd
	}

	nd.feature = best.feature
	nd.threshold = best.threshold
	nd.left = t.grow(X, y, leftIdx, depth+1, p, opts, rng)
	nd.right = t.grow(X, y, rightIdx, depth+1, p, opts, rng)
	return nd
}

// candidate pairs a feature value with its row index for the sorted scan.
type candidate struct {
	v float64
	i int
}

// split holds the best candidate found for a node.
type split struct {
	feature   int
	threshold float64
	gain      float64
}

// bestSplit scans the candidate features in order and returns the split
// with the highest impurity decrease. Ties keep the earliest candidate,
// so results do not depend on map iteration or goroutine scheduling.
func (t *Tree) bestSplit(X [][]float64, y []float64, idx, feats []int, minLeaf int) split {
	best := split{feature: -1}
	if minLeaf < 1 {
		minLeaf = 1
	}
	for _, f := range feats {
		valid := make([]candidate, 0, len(idx))
		for _, i := range idx {
			if v := X[i][f]; !math.IsNaN(v) {
				valid = append(valid, candidate{v, i})
			}
		}
		if len(valid) < 2*minLeaf {
			continue
		}
		sort.Slice(valid, func(a, b int) bool {
			if valid[a].v != valid[b].v {
				return valid[a].v < valid[b].v
			}
			return valid[a].i < valid[b].i
		})

		switch t.task {
		case Regression:
			t.scanRegression(y, valid, f, minLeaf, &best)
		case Classification:
			t.scanClassification(y, valid, f, minLeaf, &best)
		}
	}
	return best
}

// scanRegression walks sorted candidates accumulating running sums, so
// each threshold is evaluated in O(1) via SSE(S) = Σy² − (Σy)²/|S|.
func (t *Tree) scanRegression(y []float64, valid []candidate, f, minLeaf int, best *split) {
	n := len(valid)
	var total, totalSq float64
	for _, pr := range valid {
		total += y[pr.i]
		totalSq += y[pr.i] * y[pr.i]
	}
	parent := totalSq - total*total/float64(n)

	var leftSum, leftSq float64
	for k := 0; k < n-1; k++ {
		yi := y[valid[k].i]
		leftSum += yi
		leftSq += yi * yi
		if valid[k].v == valid[k+1].v {
			continue
		}
		nL, nR := k+1, n-k-1
		if nL < minLeaf || nR < minLeaf {
			continue
		}
		rightSum := total - leftSum
		rightSq := totalSq - leftSq
		sseL := leftSq - leftSum*leftSum/float64(nL)
		sseR := rightSq - rightSum*rightSum/float64(nR)
		gain := parent - sseL - sseR
		if gain > best.gain+1e-12 {
			*best = split{feature: f, threshold: (valid[k].v + valid[k+1].v) / 2, gain: gain}
		}
	}
}

// scanClassification walks sorted candidates maintaining left-side class
// counts, evaluating weighted Gini impurity per threshold.
func (t *Tree) scanClassification(y []float64, valid []candidate, f, minLeaf int, best *split) {
	n := len(valid)
	totalCounts := make([]int, t.nClasses)
	for _, pr := range valid {
		totalCounts[int(y[pr.i])]++
	}
	parent := gini(totalCounts, n)

	leftCounts := make([]int, t.nClasses)
	for k := 0; k < n-1; k++ {
		leftCounts[int(y[valid[k].i])]++
		if valid[k].v == valid[k+1].v {
			continue
		}
		nL, nR := k+1, n-k-1
		if nL < minLeaf || nR < minLeaf {
			continue
		}
		rightCounts := make([]int, t.nClasses)
		for c := range totalCounts {
			rightCounts[c] = totalCounts[c] - leftCounts[c]
		}
		wL := float64(nL) / float64(n)
		wR := float64(nR) / float64(n)
		gain := parent - wL*gini(leftCounts, nL) - wR*gini(rightCounts, nR)
		if gain > best.gain+1e-12 {
			*best = split{feature: f, threshold: (valid[k].v + valid[k+1].v) / 2, gain: gain}
		}
	}
}

// leafValue computes the leaf prediction over idx.
func (t *Tree) leafValue(y []float64, idx []int) float64 {
	if len(idx) == 0 {
		return math.NaN()
	}
	if t.task == Regression {
		sum := 0.0
		for _, i := range idx {
			sum += y[i]
		}
		return sum / float64(len(idx))
	}
	counts := make([]int, t.nClasses)
	for _, i := range idx {
		counts[int(y[i])]++
	}
	bestClass := 0
	for c := 1; c < len(counts); c++ {
		if counts[c] > counts[bestClass] {
			bestClass = c
		}
	}
	return float64(bestClass)
}

// pure reports whether every target in idx is identical.
func (t *Tree) pure(y []float64, idx []int) bool {
	for _, i := range idx[1:] {
		if y[i] != y[idx[0]] {
			return false
		}
	}
	return true
}

// featureSubset returns the feature indices searched at a node: all p in
// order, or a Fisher-Yates sample of maxFeatures drawn from rng.
func featureSubset(p, maxFeatures int, rng *rand.Rand) []int {
	feats := make([]int, p)
	for j := range feats {
		feats[j] = j
	}
	if maxFeatures <= 0 || maxFeatures >= p {
		return feats
	}
	for j := 0; j < maxFeatures; j++ {
		k := j + rng.Intn(p-j)
		feats[j], feats[k] = feats[k], feats[j]
	}
	return feats[:maxFeatures]
}

// gini computes the Gini impurity of a class count vector of total n.
func gini(counts []int, n int) float64 {
	g := 1.0
	for _, c := range counts {
		f := float64(c) / float64(n)
		g -= f * f
	}
	return g
}
