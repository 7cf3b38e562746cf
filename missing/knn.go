package missing

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/veltaire/imputr/core"
)

// imputeKNN fills the missing rows of col with the mean target value of
// the k nearest rows, measured by a standardized, NA-aware Euclidean
// distance over all dataset columns except the auxiliary one. The target
// column participates in the joint distance for rows where both sides
// observe it; at a missing row it simply drops out of the feature pairs.
func imputeKNN(ds *core.Dataset, col *core.Column, pos []int, o *Options) error {
	preds := ds.Predictors("", o.Auxiliary)
	X, err := core.EncodeMatrix(preds)
	if err != nil {
		return err
	}
	standardize(X)

	n := col.Len()
	missing := make([]bool, n)
	for _, p := range pos {
		missing[p] = true
	}

	for _, p := range pos {
		type neighbor struct {
			d float64
			r int
		}
		var nbrs []neighbor
		for r := 0; r < n; r++ {
			if r == p || missing[r] {
				continue // only rows with an observed target can donate
			}
			d, ok := naDistance(X[p], X[r])
			if !ok {
				continue
			}
			nbrs = append(nbrs, neighbor{d, r})
		}
		if len(nbrs) == 0 {
			return fmt.Errorf("knn: no complete neighbor for row %d of column %q: %w",
				p, col.Name(), core.ErrFitFailed)
		}
		// Deterministic order: distance first, then row index.
		sort.Slice(nbrs, func(a, b int) bool {
			if nbrs[a].d != nbrs[b].d {
				return nbrs[a].d < nbrs[b].d
			}
			return nbrs[a].r < nbrs[b].r
		})
		k := o.Neighbors
		if k > len(nbrs) {
			k = len(nbrs)
		}
		donors := make([]float64, k)
		for i := 0; i < k; i++ {
			donors[i] = col.Float(nbrs[i].r)
		}
		if err := col.SetFloat(p, stat.Mean(donors, nil)); err != nil {
			return err
		}
	}
	return nil
}

// naDistance computes the Euclidean distance over the co-observed feature
// pairs of a and b, rescaled by the fraction of features that
// contributed, so sparse rows are comparable to dense ones. It reports
// false when no feature pair is co-observed.
func naDistance(a, b []float64) (float64, bool) {
	ca := make([]float64, 0, len(a))
	cb := make([]float64, 0, len(b))
	for j := range a {
		if math.IsNaN(a[j]) || math.IsNaN(b[j]) {
			continue
		}
		ca = append(ca, a[j])
		cb = append(cb, b[j])
	}
	if len(ca) == 0 {
		return 0, false
	}
	d := floats.Distance(ca, cb, 2)
	return d * math.Sqrt(float64(len(a))/float64(len(ca))), true
}

// standardize centers and scales each matrix column to unit variance over
// its observed cells, in place. Constant columns scale to zero so they
// cannot dominate the distance.
func standardize(X [][]float64) {
	if len(X) == 0 {
		return
	}
	p := len(X[0])
	for j := 0; j < p; j++ {
		obs := make([]float64, 0, len(X))
		for i := range X {
			if !math.IsNaN(X[i][j]) {
				obs = append(obs, X[i][j])
			}
		}
		if len(obs) == 0 {
			continue
		}
		mean, sd := stat.MeanStdDev(obs, nil)
		for i := range X {
			if math.IsNaN(X[i][j]) {
				continue
			}
			if sd == 0 || math.IsNaN(sd) {
				X[i][j] = 0
				continue
			}
			X[i][j] = (X[i][j] - mean) / sd
		}
	}
}
