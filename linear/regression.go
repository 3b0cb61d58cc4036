// Package linear provides linear regression models solved in closed form.
//
// Ridge is the primary model; LinearRegression is ordinary least squares,
// equivalent to Ridge with alpha = 0 but solved through a QR factorization
// of the design matrix itself rather than the normal equations.
package linear

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/ridgego/core/model"
	"github.com/YuminosukeSato/ridgego/core/parallel"
	"github.com/YuminosukeSato/ridgego/metrics"
	"github.com/YuminosukeSato/ridgego/pkg/errors"
)

// LinearRegression is an unpenalized least-squares model.
type LinearRegression struct {
	state *model.StateManager

	coef_      []float64
	intercept_ float64
	nFeatures_ int
}

// NewLinearRegression creates a new LinearRegression model.
func NewLinearRegression() *LinearRegression {
	return &LinearRegression{
		state: model.NewStateManager(),
	}
}

// Fit trains the model on X and y using a QR factorization of [1 | X].
func (lr *LinearRegression) Fit(X, y mat.Matrix) (err error) {
	defer errors.Recover(&err, "LinearRegression.Fit")

	n, p := X.Dims()
	yRows, yCols := y.Dims()

	if n == 0 || p == 0 {
		return errors.NewModelError("LinearRegression.Fit", "empty data", errors.ErrEmptyData)
	}
	if yRows != n {
		return errors.NewDimensionError("LinearRegression.Fit", n, yRows, 0)
	}
	if yCols != 1 {
		return errors.NewValueError("LinearRegression.Fit", "y must be a column vector")
	}
	if n < p+1 {
		// QR needs at least as many rows as columns; underdetermined OLS is
		// rank-deficient by construction.
		return errors.NewSingularMatrixError("LinearRegression.Fit", p+1)
	}

	aug := mat.NewDense(n, p+1, nil)
	parallel.ParallelizeWithThreshold(n, parallelThreshold, func(start, end int) {
		for i := start; i < end; i++ {
			aug.Set(i, 0, 1.0)
			for j := 0; j < p; j++ {
				aug.Set(i, j+1, X.At(i, j))
			}
		}
	})

	var qr mat.QR
	qr.Factorize(aug)

	w := mat.NewDense(p+1, 1, nil)
	if solveErr := qr.SolveTo(w, false, y); solveErr != nil {
		return errors.NewSingularMatrixError("LinearRegression.Fit", p+1)
	}

	lr.intercept_ = w.At(0, 0)
	coef := make([]float64, p)
	for j := 0; j < p; j++ {
		coef[j] = w.At(j+1, 0)
	}
	lr.coef_ = coef
	lr.nFeatures_ = p

	lr.state.SetFitted()
	lr.state.SetDimensions(p, n)
	return nil
}

// Predict returns ŷ = X·coef + intercept for each row of X.
func (lr *LinearRegression) Predict(X mat.Matrix) (mat.Matrix, error) {
	if !lr.state.IsFitted() {
		return nil, errors.NewNotFittedError("LinearRegression", "Predict")
	}

	n, p := X.Dims()
	if p != lr.nFeatures_ {
		return nil, errors.NewDimensionError("LinearRegression.Predict", lr.nFeatures_, p, 1)
	}

	predictions := mat.NewDense(n, 1, nil)

	parallel.ParallelizeWithThreshold(n, parallelThreshold, func(start, end int) {
		for i := start; i < end; i++ {
			pred := lr.intercept_
			for j := 0; j < p; j++ {
				pred += X.At(i, j) * lr.coef_[j]
			}
			predictions.Set(i, 0, pred)
		}
	})

	return predictions, nil
}

// Score returns the coefficient of determination R² of the prediction.
func (lr *LinearRegression) Score(X, y mat.Matrix) (float64, error) {
	if !lr.state.IsFitted() {
		return 0, errors.NewNotFittedError("LinearRegression", "Score")
	}

	yPred, err := lr.Predict(X)
	if err != nil {
		return 0, err
	}

	return metrics.R2ScoreMatrix(y, yPred)
}

// Coef returns a copy of the learned coefficients, or nil before fitting.
func (lr *LinearRegression) Coef() []float64 {
	if lr.coef_ == nil {
		return nil
	}
	coef := make([]float64, len(lr.coef_))
	copy(coef, lr.coef_)
	return coef
}

// Intercept returns the learned intercept.
func (lr *LinearRegression) Intercept() float64 {
	return lr.intercept_
}

// GetParams returns the model's hyperparameters. LinearRegression has none.
func (lr *LinearRegression) GetParams() map[string]interface{} {
	return map[string]interface{}{}
}

// SetParams rejects every key, since LinearRegression has no hyperparameters.
func (lr *LinearRegression) SetParams(params map[string]interface{}) error {
	for key := range params {
		return errors.NewUnknownParameterError("LinearRegression", key)
	}
	return nil
}

// Clone creates an unfitted copy.
func (lr *LinearRegression) Clone() model.Regressor {
	return NewLinearRegression()
}

// IsFitted returns whether the model has been fitted.
func (lr *LinearRegression) IsFitted() bool {
	return lr.state.IsFitted()
}

// String returns the string representation of the model.
func (lr *LinearRegression) String() string {
	if !lr.state.IsFitted() {
		return "LinearRegression()"
	}
	return fmt.Sprintf("LinearRegression(n_features=%d, fitted=true)", lr.nFeatures_)
}
