package linear

import (
	"fmt"
	"log/slog"
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/ridgego/core/model"
	"github.com/YuminosukeSato/ridgego/core/parallel"
	"github.com/YuminosukeSato/ridgego/metrics"
	"github.com/YuminosukeSato/ridgego/pkg/errors"
	"github.com/YuminosukeSato/ridgego/pkg/log"
)

// Row count above which matrix assembly and prediction loops run in parallel.
const parallelThreshold = 1000

// Ridge is a linear regression model with L2 regularization, solved in
// closed form via the regularized normal equations.
//
// The intercept is coupled into the linear system by augmenting X with a
// leading column of ones, and the penalty matrix leaves the intercept term
// unpenalized. Fit either fully succeeds, replacing both the intercept and
// the coefficients, or fully fails and leaves any prior fitted state
// unchanged.
type Ridge struct {
	state *model.StateManager

	// Hyperparameters
	alpha float64 // regularization strength, >= 0

	// Learned parameters
	coef_      []float64
	intercept_ float64
	nFeatures_ int
}

// NewRidge creates a new Ridge model. The default regularization strength
// is 1.0.
func NewRidge(opts ...Option) *Ridge {
	r := &Ridge{
		state: model.NewStateManager(),
		alpha: 1.0,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Fit trains the model by solving (X̃ᵀX̃ + P)w = X̃ᵀy, where X̃ = [1 | X] and
// P is alpha times the identity with a zero in the intercept position.
//
// X is never mutated; the augmentation operates on a private copy. The
// system is solved directly rather than through an explicit inverse. A
// singular system, typically only possible with alpha = 0 on rank-deficient
// data, is surfaced as a SingularMatrixError with no pseudo-inverse
// fallback.
func (r *Ridge) Fit(X, y mat.Matrix) (err error) {
	defer errors.Recover(&err, "Ridge.Fit")
	start := time.Now()

	n, p := X.Dims()
	yRows, yCols := y.Dims()

	if n == 0 || p == 0 {
		return errors.NewModelError("Ridge.Fit", "empty data", errors.ErrEmptyData)
	}
	if yRows != n {
		return errors.NewDimensionError("Ridge.Fit", n, yRows, 0)
	}
	if yCols != 1 {
		return errors.NewValueError("Ridge.Fit", "y must be a column vector")
	}
	if r.alpha < 0 {
		return errors.NewValueError("Ridge.Fit", "alpha must be non-negative")
	}

	// X̃ = [1 | X]
	aug := mat.NewDense(n, p+1, nil)
	parallel.ParallelizeWithThreshold(n, parallelThreshold, func(start, end int) {
		for i := start; i < end; i++ {
			aug.Set(i, 0, 1.0) // intercept column
			for j := 0; j < p; j++ {
				aug.Set(i, j+1, X.At(i, j))
			}
		}
	})

	var augT mat.Dense
	augT.CloneFrom(aug.T())

	// Gram matrix X̃ᵀX̃ with the ridge penalty added on the diagonal.
	// The [0][0] entry stays unpenalized so the intercept is free to absorb
	// the mean of y.
	var gram mat.Dense
	gram.Mul(&augT, aug)
	for j := 1; j <= p; j++ {
		gram.Set(j, j, gram.At(j, j)+r.alpha)
	}

	yVec := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		yVec.SetVec(i, y.At(i, 0))
	}

	var rhs mat.VecDense
	rhs.MulVec(&augT, yVec)

	w := mat.NewVecDense(p+1, nil)
	if solveErr := w.SolveVec(&gram, &rhs); solveErr != nil {
		// Any solve failure is reported uniformly as a singular system.
		return errors.NewSingularMatrixError("Ridge.Fit", p+1)
	}

	if stabErr := errors.CheckNumericalStability("Ridge.Fit", w.RawVector().Data); stabErr != nil {
		return stabErr
	}

	// Commit only after the solve succeeded in full.
	r.intercept_ = w.AtVec(0)
	coef := make([]float64, p)
	for j := 0; j < p; j++ {
		coef[j] = w.AtVec(j + 1)
	}
	r.coef_ = coef
	r.nFeatures_ = p

	r.state.SetFitted()
	r.state.SetDimensions(p, n)

	slog.Debug("fit complete",
		log.ModelNameKey, "Ridge",
		log.OperationKey, "fit",
		log.AlphaKey, r.alpha,
		log.SamplesKey, n,
		log.FeaturesKey, p,
		log.DurationMsKey, time.Since(start).Milliseconds(),
	)
	return nil
}

// Predict returns ŷ = X·coef + intercept for each row of X.
func (r *Ridge) Predict(X mat.Matrix) (mat.Matrix, error) {
	if !r.state.IsFitted() {
		return nil, errors.NewNotFittedError("Ridge", "Predict")
	}

	n, p := X.Dims()
	if p != r.nFeatures_ {
		return nil, errors.NewDimensionError("Ridge.Predict", r.nFeatures_, p, 1)
	}

	predictions := mat.NewDense(n, 1, nil)

	parallel.ParallelizeWithThreshold(n, parallelThreshold, func(start, end int) {
		for i := start; i < end; i++ {
			pred := r.intercept_
			for j := 0; j < p; j++ {
				pred += X.At(i, j) * r.coef_[j]
			}
			predictions.Set(i, 0, pred)
		}
	})

	return predictions, nil
}

// Score returns the coefficient of determination R² of the prediction.
//
// When y has zero variance the score is undefined; an
// UndefinedMetricWarning is raised and NaN is returned without an error.
// Callers must treat a constant target as a boundary condition.
func (r *Ridge) Score(X, y mat.Matrix) (float64, error) {
	if !r.state.IsFitted() {
		return 0, errors.NewNotFittedError("Ridge", "Score")
	}

	yPred, err := r.Predict(X)
	if err != nil {
		return 0, err
	}

	score, err := metrics.R2ScoreMatrix(y, yPred)
	if err != nil {
		return 0, err
	}

	slog.Debug("score computed",
		log.ModelNameKey, "Ridge",
		log.OperationKey, "score",
		log.R2ScoreKey, score,
	)
	return score, nil
}

// Coef returns a copy of the learned coefficients, or nil before fitting.
// The slice length always equals the feature count of the X most recently
// passed to Fit.
func (r *Ridge) Coef() []float64 {
	if r.coef_ == nil {
		return nil
	}
	coef := make([]float64, len(r.coef_))
	copy(coef, r.coef_)
	return coef
}

// Intercept returns the learned intercept, or 0 before fitting.
func (r *Ridge) Intercept() float64 {
	return r.intercept_
}

// Alpha returns the current regularization strength.
func (r *Ridge) Alpha() float64 {
	return r.alpha
}

// GetParams returns the model's hyperparameters.
func (r *Ridge) GetParams() map[string]interface{} {
	return map[string]interface{}{
		"alpha": r.alpha,
	}
}

// SetParams sets the model's hyperparameters. The only recognized key is
// "alpha"; any other key is rejected with an UnknownParameterError.
func (r *Ridge) SetParams(params map[string]interface{}) error {
	for key, value := range params {
		switch key {
		case "alpha":
			alpha, ok := toFloat64(value)
			if !ok {
				return errors.NewValueError("Ridge.SetParams",
					fmt.Sprintf("alpha must be numeric, got %T", value))
			}
			if alpha < 0 {
				return errors.NewValueError("Ridge.SetParams", "alpha must be non-negative")
			}
			r.alpha = alpha
		default:
			return errors.NewUnknownParameterError("Ridge", key)
		}
	}
	return nil
}

// Clone creates an unfitted copy with the same hyperparameters.
func (r *Ridge) Clone() model.Regressor {
	return NewRidge(WithAlpha(r.alpha))
}

// IsFitted returns whether the model has been fitted.
func (r *Ridge) IsFitted() bool {
	return r.state.IsFitted()
}

// String returns the string representation of the model.
func (r *Ridge) String() string {
	if !r.state.IsFitted() {
		return fmt.Sprintf("Ridge(alpha=%g)", r.alpha)
	}
	return fmt.Sprintf("Ridge(alpha=%g, n_features=%d, fitted=true)", r.alpha, r.nFeatures_)
}

// toFloat64 converts the numeric types accepted by SetParams.
func toFloat64(v interface{}) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	}
	return 0, false
}
