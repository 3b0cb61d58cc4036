// Package log defines standard attribute keys for ridgego operations.
//
// Using these keys consistently across fit, prediction, and model-selection
// logging enables filtering of structured logs by model, operation, and
// hyperparameter values.

package log

// Model and operation context.
const (
	// ModelNameKey identifies the estimator type.
	// Examples: "Ridge", "LinearRegression", "StandardScaler"
	ModelNameKey = "model.name"

	// OperationKey specifies the operation being performed.
	// Standard values: "fit", "predict", "score", "transform"
	OperationKey = "ml.operation"

	// AlphaKey records the regularization strength used by a fit.
	AlphaKey = "model.alpha"
)

// Data shape.
const (
	// SamplesKey is the number of samples (rows) in the dataset.
	SamplesKey = "data.samples"

	// FeaturesKey is the number of features (columns) in the dataset.
	FeaturesKey = "data.features"
)

// Model selection.
const (
	// FoldKey is the index of the current cross-validation fold.
	FoldKey = "cv.fold"

	// NSplitsKey is the total number of cross-validation folds.
	NSplitsKey = "cv.n_splits"

	// TrainScoreKey records the training-set score of a fold.
	TrainScoreKey = "cv.train_score"

	// TestScoreKey records the held-out score of a fold.
	TestScoreKey = "cv.test_score"

	// MeanScoreKey records the mean held-out score across folds.
	MeanScoreKey = "cv.mean_score"

	// CandidateKey records the hyperparameter candidate under evaluation.
	CandidateKey = "search.candidate"

	// BestScoreKey records the best score found by a search.
	BestScoreKey = "search.best_score"
)

// Metrics.
const (
	// R2ScoreKey records the R² coefficient of determination.
	R2ScoreKey = "metrics.r2_score"

	// DurationMsKey records the execution time of an operation in milliseconds.
	DurationMsKey = "perf.duration_ms"
)
