package modelselection

import (
	"fmt"
	"log/slog"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/ridgego/core/model"
	"github.com/YuminosukeSato/ridgego/pkg/errors"
	"github.com/YuminosukeSato/ridgego/pkg/log"
)

// ParamGrid maps hyperparameter names to the candidate values to try.
// The search evaluates the cartesian product of all values.
type ParamGrid map[string][]interface{}

// CandidateResult records the cross-validation outcome of one parameter
// combination.
type CandidateResult struct {
	Params    map[string]interface{}
	MeanScore float64
	StdScore  float64
}

// GridSearchCV exhaustively searches a parameter grid, scoring every
// candidate by cross-validation and refitting the best one on the full data.
//
// Candidates are applied through the estimator protocol only: each one is a
// clone of the base estimator configured via SetParams, so an unknown
// parameter name in the grid fails the search with the estimator's own
// UnknownParameterError.
type GridSearchCV struct {
	estimator model.Regressor
	grid      ParamGrid
	splitter  Splitter

	// BestScore is the best mean held-out score found by Fit.
	BestScore float64
	// BestParams is the parameter combination that achieved BestScore.
	BestParams map[string]interface{}
	// BestEstimator is the best candidate refitted on the full data.
	BestEstimator model.Regressor
	// Results holds the per-candidate cross-validation outcomes in
	// evaluation order.
	Results []CandidateResult

	fitted bool
}

// NewGridSearchCV creates a new grid search over the given estimator.
func NewGridSearchCV(est model.Regressor, grid ParamGrid, splitter Splitter) *GridSearchCV {
	return &GridSearchCV{
		estimator: est,
		grid:      grid,
		splitter:  splitter,
	}
}

// Fit evaluates every parameter combination and refits the best one.
//
// Candidates whose mean score is NaN (for example R² on a constant target)
// never win; if every candidate is NaN the search fails.
func (gs *GridSearchCV) Fit(X, y mat.Matrix) error {
	candidates := enumerateCandidates(gs.grid)
	if len(candidates) == 0 {
		return errors.NewValueError("GridSearchCV.Fit", "empty parameter grid")
	}

	gs.Results = make([]CandidateResult, 0, len(candidates))
	gs.BestScore = math.Inf(-1)
	gs.BestParams = nil

	for _, params := range candidates {
		candidate := gs.estimator.Clone()
		if err := candidate.SetParams(params); err != nil {
			return err
		}

		cv, err := CrossValidate(candidate, X, y, gs.splitter)
		if err != nil {
			return errors.Wrapf(err, "candidate %v failed", params)
		}

		mean := cv.MeanScore()
		gs.Results = append(gs.Results, CandidateResult{
			Params:    params,
			MeanScore: mean,
			StdScore:  cv.StdScore(),
		})

		slog.Debug("grid search candidate evaluated",
			log.CandidateKey, fmt.Sprint(params),
			log.MeanScoreKey, mean,
		)

		if !math.IsNaN(mean) && mean > gs.BestScore {
			gs.BestScore = mean
			gs.BestParams = params
		}
	}

	if gs.BestParams == nil {
		return errors.NewValueError("GridSearchCV.Fit", "no candidate produced a defined score")
	}

	// Refit the winning configuration on the full dataset.
	best := gs.estimator.Clone()
	if err := best.SetParams(gs.BestParams); err != nil {
		return err
	}
	if err := best.Fit(X, y); err != nil {
		return errors.Wrap(err, "refit of best candidate failed")
	}
	gs.BestEstimator = best
	gs.fitted = true

	slog.Debug("grid search complete",
		log.CandidateKey, fmt.Sprint(gs.BestParams),
		log.BestScoreKey, gs.BestScore,
	)

	return nil
}

// Predict delegates to the refitted best estimator.
func (gs *GridSearchCV) Predict(X mat.Matrix) (mat.Matrix, error) {
	if !gs.fitted {
		return nil, errors.NewNotFittedError("GridSearchCV", "Predict")
	}
	return gs.BestEstimator.Predict(X)
}

// Score delegates to the refitted best estimator.
func (gs *GridSearchCV) Score(X, y mat.Matrix) (float64, error) {
	if !gs.fitted {
		return 0, errors.NewNotFittedError("GridSearchCV", "Score")
	}
	return gs.BestEstimator.Score(X, y)
}

// enumerateCandidates expands a grid into the cartesian product of its
// values. Keys are visited in sorted order so the evaluation order is
// deterministic.
func enumerateCandidates(grid ParamGrid) []map[string]interface{} {
	keys := make([]string, 0, len(grid))
	for key, values := range grid {
		if len(values) == 0 {
			return nil
		}
		keys = append(keys, key)
	}
	if len(keys) == 0 {
		return nil
	}
	sort.Strings(keys)

	candidates := []map[string]interface{}{{}}
	for _, key := range keys {
		next := make([]map[string]interface{}, 0, len(candidates)*len(grid[key]))
		for _, base := range candidates {
			for _, value := range grid[key] {
				params := make(map[string]interface{}, len(base)+1)
				for k, v := range base {
					params[k] = v
				}
				params[key] = value
				next = append(next, params)
			}
		}
		candidates = next
	}

	return candidates
}
