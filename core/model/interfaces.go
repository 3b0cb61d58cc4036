// Package model provides the core estimator interfaces and state management
// shared by all ridgego models. The interfaces make the estimator protocol
// required by the model-selection harness explicit: any type implementing
// Regressor can be driven by cross-validation and grid search.
package model

import (
	"gonum.org/v1/gonum/mat"
)

// Fitter is the interface for models that can be trained.
type Fitter interface {
	// Fit trains the model on the design matrix X and target y.
	Fit(X, y mat.Matrix) error
}

// Predictor is the interface for models that can predict.
type Predictor interface {
	// Predict returns predictions for the input data.
	Predict(X mat.Matrix) (mat.Matrix, error)
}

// Scorer is the interface for models that can compute a score.
type Scorer interface {
	// Score returns the coefficient of determination R² of the prediction.
	Score(X, y mat.Matrix) (float64, error)
}

// ParameterGetter is the interface for models that expose their hyperparameters.
type ParameterGetter interface {
	// GetParams returns the model's hyperparameters.
	GetParams() map[string]interface{}
}

// ParameterSetter is the interface for models that allow parameter modification.
// Implementations reject unrecognized keys with an UnknownParameterError.
type ParameterSetter interface {
	// SetParams sets the model's hyperparameters.
	SetParams(params map[string]interface{}) error
}

// Regressor is the full protocol a regression estimator must satisfy to be
// usable with the modelselection package. Clone returns a fresh unfitted
// estimator carrying the same hyperparameters, so that each cross-validation
// fold can fit its own instance.
type Regressor interface {
	Fitter
	Predictor
	Scorer
	ParameterGetter
	ParameterSetter

	// Clone creates an unfitted copy with the same hyperparameters.
	Clone() Regressor
}

// LinearModel is the interface for fitted linear models.
type LinearModel interface {
	// Coef returns the learned coefficients.
	Coef() []float64
	// Intercept returns the learned intercept.
	Intercept() float64
}

// Transformer is the interface for feature transformers such as scalers.
type Transformer interface {
	// Transform applies the learned transformation to X.
	Transform(X mat.Matrix) (mat.Matrix, error)

	// FitTransform learns the transformation from X and applies it.
	FitTransform(X mat.Matrix) (mat.Matrix, error)
}
