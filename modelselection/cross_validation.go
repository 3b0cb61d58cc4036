package modelselection

import (
	"log/slog"
	"math"
	"sync"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/ridgego/core/model"
	"github.com/YuminosukeSato/ridgego/pkg/errors"
	"github.com/YuminosukeSato/ridgego/pkg/log"
)

// CVResult stores per-fold cross-validation scores.
type CVResult struct {
	TrainScores []float64
	TestScores  []float64
}

// MeanScore returns the mean held-out score across folds.
func (cv *CVResult) MeanScore() float64 {
	if len(cv.TestScores) == 0 {
		return 0.0
	}

	sum := 0.0
	for _, score := range cv.TestScores {
		sum += score
	}
	return sum / float64(len(cv.TestScores))
}

// StdScore returns the sample standard deviation of held-out scores.
func (cv *CVResult) StdScore() float64 {
	if len(cv.TestScores) <= 1 {
		return 0.0
	}

	mean := cv.MeanScore()
	sumSq := 0.0
	for _, score := range cv.TestScores {
		diff := score - mean
		sumSq += diff * diff
	}
	return math.Sqrt(sumSq / float64(len(cv.TestScores)-1))
}

// CrossValidate evaluates an estimator by k-fold cross-validation.
//
// Each fold fits a fresh clone of the estimator on the training partition
// and scores it on both partitions with the estimator's own Score. Folds run
// concurrently; the clones give every goroutine its own parameter state, so
// the shared estimator is never fitted by this function.
func CrossValidate(est model.Regressor, X, y mat.Matrix, splitter Splitter) (*CVResult, error) {
	nSamples, _ := X.Dims()
	yRows, _ := y.Dims()
	if yRows != nSamples {
		return nil, errors.NewDimensionError("CrossValidate", nSamples, yRows, 0)
	}
	if nSamples < splitter.NSplits() {
		return nil, errors.NewValueError("CrossValidate", "more splits than samples")
	}

	folds := splitter.Split(X, y)
	nFolds := len(folds)

	result := &CVResult{
		TrainScores: make([]float64, nFolds),
		TestScores:  make([]float64, nFolds),
	}

	var wg sync.WaitGroup
	foldErrs := make([]error, nFolds)

	for foldIdx := 0; foldIdx < nFolds; foldIdx++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			fold := folds[idx]

			trainX, trainY := extractSubset(X, y, fold.TrainIndices)
			testX, testY := extractSubset(X, y, fold.TestIndices)

			foldEst := est.Clone()
			if err := foldEst.Fit(trainX, trainY); err != nil {
				foldErrs[idx] = errors.Wrapf(err, "fold %d training failed", idx)
				return
			}

			trainScore, err := foldEst.Score(trainX, trainY)
			if err != nil {
				foldErrs[idx] = errors.Wrapf(err, "fold %d train scoring failed", idx)
				return
			}
			result.TrainScores[idx] = trainScore

			testScore, err := foldEst.Score(testX, testY)
			if err != nil {
				foldErrs[idx] = errors.Wrapf(err, "fold %d test scoring failed", idx)
				return
			}
			result.TestScores[idx] = testScore

			slog.Debug("cross-validation fold complete",
				log.FoldKey, idx,
				log.NSplitsKey, nFolds,
				log.TrainScoreKey, trainScore,
				log.TestScoreKey, testScore,
			)
		}(foldIdx)
	}

	wg.Wait()

	for _, err := range foldErrs {
		if err != nil {
			return nil, err
		}
	}

	slog.Debug("cross-validation complete",
		log.NSplitsKey, nFolds,
		log.MeanScoreKey, result.MeanScore(),
	)

	return result, nil
}
