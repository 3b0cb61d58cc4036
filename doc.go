// Package ridgego provides closed-form ridge regression for Go, with a
// scikit-learn-like estimator protocol for cross-validation and
// hyperparameter search.
//
// The core estimator solves the regularized normal equations directly: the
// design matrix is augmented with an intercept column, an L2 penalty is
// applied to every coefficient except the intercept, and the resulting
// linear system is solved without forming an explicit matrix inverse.
//
// # Quick Start
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/YuminosukeSato/ridgego/linear"
//	    "gonum.org/v1/gonum/mat"
//	)
//
//	func main() {
//	    X := mat.NewDense(4, 1, []float64{1, 2, 3, 4})
//	    y := mat.NewDense(4, 1, []float64{2, 4, 6, 8})
//
//	    model := linear.NewRidge(linear.WithAlpha(0.5))
//	    if err := model.Fit(X, y); err != nil {
//	        log.Fatal(err)
//	    }
//
//	    score, err := model.Score(X, y)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println("R²:", score)
//	}
//
// # Packages
//
//   - linear: Ridge and LinearRegression estimators
//   - modelselection: k-fold cross-validation, grid search, train/test split
//   - preprocessing: feature standardization
//   - metrics: regression metrics (MSE, RMSE, MAE, R²)
//   - dataset: CSV loading into gonum matrices
//   - core/model: estimator protocol interfaces and state management
//   - core/parallel: row-wise parallel processing utilities
//
// # Model Selection
//
// Any estimator implementing the model.Regressor protocol can be driven by
// the modelselection package:
//
//	grid := modelselection.ParamGrid{
//	    "alpha": {0.01, 0.1, 1.0, 10.0},
//	}
//	search := modelselection.NewGridSearchCV(
//	    linear.NewRidge(), grid, modelselection.NewKFold(5, true, 42))
//	if err := search.Fit(X, y); err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("best alpha:", search.BestParams["alpha"])
package ridgego
