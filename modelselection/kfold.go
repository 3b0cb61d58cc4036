// Package modelselection provides cross-validation and hyperparameter
// search drivers over the model.Regressor protocol. The drivers never touch
// estimator internals; they work purely through Fit, Score, Clone, and
// SetParams, so any conforming estimator can be plugged in.
package modelselection

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"
)

// Splitter defines the interface for cross-validation splitters.
type Splitter interface {
	// Split generates the train/test index pairs for each fold.
	Split(X, y mat.Matrix) []Fold
	// NSplits returns the number of folds.
	NSplits() int
}

// Fold is a single train/test partition.
type Fold struct {
	TrainIndices []int
	TestIndices  []int
}

// KFold implements the k-fold cross-validation splitter.
type KFold struct {
	nSplits int
	shuffle bool
	seed    int
}

// NewKFold creates a new k-fold splitter. Fewer than two splits falls back
// to the default of five.
func NewKFold(nSplits int, shuffle bool, seed int) *KFold {
	if nSplits < 2 {
		nSplits = 5
	}
	return &KFold{
		nSplits: nSplits,
		shuffle: shuffle,
		seed:    seed,
	}
}

// NSplits returns the number of folds.
func (kf *KFold) NSplits() int {
	return kf.nSplits
}

// Split generates train/test indices for each fold. Fold sizes differ by at
// most one sample; the first nSamples mod nSplits folds take the extra one.
func (kf *KFold) Split(X, _ mat.Matrix) []Fold {
	nSamples, _ := X.Dims()

	indices := make([]int, nSamples)
	for i := range indices {
		indices[i] = i
	}

	if kf.shuffle {
		r := rand.New(rand.NewPCG(uint64(kf.seed), uint64(kf.seed)))
		r.Shuffle(len(indices), func(i, j int) {
			indices[i], indices[j] = indices[j], indices[i]
		})
	}

	folds := make([]Fold, kf.nSplits)
	foldSize := nSamples / kf.nSplits
	remainder := nSamples % kf.nSplits

	currentIdx := 0
	for i := 0; i < kf.nSplits; i++ {
		testSize := foldSize
		if i < remainder {
			testSize++
		}

		testIndices := make([]int, testSize)
		copy(testIndices, indices[currentIdx:currentIdx+testSize])

		trainIndices := make([]int, 0, nSamples-testSize)
		trainIndices = append(trainIndices, indices[:currentIdx]...)
		trainIndices = append(trainIndices, indices[currentIdx+testSize:]...)

		folds[i] = Fold{
			TrainIndices: trainIndices,
			TestIndices:  testIndices,
		}

		currentIdx += testSize
	}

	return folds
}

// extractSubset copies the rows of X and y selected by indices.
func extractSubset(X, y mat.Matrix, indices []int) (mat.Matrix, mat.Matrix) {
	rows := len(indices)
	_, xCols := X.Dims()
	_, yCols := y.Dims()

	xSubset := mat.NewDense(rows, xCols, nil)
	ySubset := mat.NewDense(rows, yCols, nil)

	for i, idx := range indices {
		for j := 0; j < xCols; j++ {
			xSubset.Set(i, j, X.At(idx, j))
		}
		for j := 0; j < yCols; j++ {
			ySubset.Set(i, j, y.At(idx, j))
		}
	}

	return xSubset, ySubset
}
