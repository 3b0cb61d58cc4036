package metrics

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/ridgego/pkg/errors"
)

func TestMSE(t *testing.T) {
	tests := []struct {
		name      string
		yTrue     *mat.VecDense
		yPred     *mat.VecDense
		want      float64
		tolerance float64
		wantErr   bool
	}{
		{
			name:      "perfect prediction",
			yTrue:     mat.NewVecDense(5, []float64{1.0, 2.0, 3.0, 4.0, 5.0}),
			yPred:     mat.NewVecDense(5, []float64{1.0, 2.0, 3.0, 4.0, 5.0}),
			want:      0.0,
			tolerance: 1e-10,
			wantErr:   false,
		},
		{
			name:      "simple case",
			yTrue:     mat.NewVecDense(4, []float64{1.0, 2.0, 3.0, 4.0}),
			yPred:     mat.NewVecDense(4, []float64{1.5, 2.5, 2.5, 3.5}),
			want:      0.25, // ((0.5)^2 + (0.5)^2 + (-0.5)^2 + (-0.5)^2) / 4
			tolerance: 1e-10,
			wantErr:   false,
		},
		{
			name:      "dimension mismatch",
			yTrue:     mat.NewVecDense(3, []float64{1.0, 2.0, 3.0}),
			yPred:     mat.NewVecDense(2, []float64{1.0, 2.0}),
			wantErr:   true,
		},
		{
			name:    "empty vectors",
			yTrue:   &mat.VecDense{},
			yPred:   &mat.VecDense{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MSE(tt.yTrue, tt.yPred)

			if (err != nil) != tt.wantErr {
				t.Errorf("MSE() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if !tt.wantErr {
				if math.Abs(got-tt.want) > tt.tolerance {
					t.Errorf("MSE() = %v, want %v (tolerance: %v)", got, tt.want, tt.tolerance)
				}
			}
		})
	}
}

func TestRMSEAndMAE(t *testing.T) {
	yTrue := mat.NewVecDense(4, []float64{1, 2, 3, 4})
	yPred := mat.NewVecDense(4, []float64{2, 3, 2, 3})

	rmse, err := RMSE(yTrue, yPred)
	if err != nil {
		t.Fatalf("RMSE failed: %v", err)
	}
	if math.Abs(rmse-1.0) > 1e-10 {
		t.Errorf("RMSE = %v, want 1.0", rmse)
	}

	mae, err := MAE(yTrue, yPred)
	if err != nil {
		t.Fatalf("MAE failed: %v", err)
	}
	if math.Abs(mae-1.0) > 1e-10 {
		t.Errorf("MAE = %v, want 1.0", mae)
	}
}

func TestR2Score(t *testing.T) {
	tests := []struct {
		name      string
		yTrue     *mat.VecDense
		yPred     *mat.VecDense
		want      float64
		wantNaN   bool
		tolerance float64
		wantErr   bool
	}{
		{
			name:      "perfect prediction scores one",
			yTrue:     mat.NewVecDense(4, []float64{1, 2, 3, 4}),
			yPred:     mat.NewVecDense(4, []float64{1, 2, 3, 4}),
			want:      1.0,
			tolerance: 1e-10,
		},
		{
			name:      "mean prediction scores zero",
			yTrue:     mat.NewVecDense(4, []float64{1, 2, 3, 4}),
			yPred:     mat.NewVecDense(4, []float64{2.5, 2.5, 2.5, 2.5}),
			want:      0.0,
			tolerance: 1e-10,
		},
		{
			name:      "worse than mean is negative",
			yTrue:     mat.NewVecDense(3, []float64{1, 2, 3}),
			yPred:     mat.NewVecDense(3, []float64{3, 2, 1}),
			want:      -3.0,
			tolerance: 1e-10,
		},
		{
			name:    "constant target is NaN",
			yTrue:   mat.NewVecDense(3, []float64{5, 5, 5}),
			yPred:   mat.NewVecDense(3, []float64{5, 5, 5}),
			wantNaN: true,
		},
		{
			name:    "dimension mismatch",
			yTrue:   mat.NewVecDense(3, []float64{1, 2, 3}),
			yPred:   mat.NewVecDense(2, []float64{1, 2}),
			wantErr: true,
		},
	}

	// Keep warnings quiet during the table run.
	errors.SetWarningHandler(func(error) {})
	defer errors.SetWarningHandler(nil)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := R2Score(tt.yTrue, tt.yPred)

			if (err != nil) != tt.wantErr {
				t.Errorf("R2Score() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				return
			}

			if tt.wantNaN {
				if !math.IsNaN(got) {
					t.Errorf("R2Score() = %v, want NaN", got)
				}
				return
			}

			if math.Abs(got-tt.want) > tt.tolerance {
				t.Errorf("R2Score() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestR2ScoreConstantTargetWarns(t *testing.T) {
	var warned error
	errors.SetWarningHandler(func(w error) { warned = w })
	defer errors.SetWarningHandler(nil)

	yTrue := mat.NewVecDense(3, []float64{2, 2, 2})
	yPred := mat.NewVecDense(3, []float64{1, 2, 3})

	if _, err := R2Score(yTrue, yPred); err != nil {
		t.Fatalf("R2Score failed: %v", err)
	}

	var umw *errors.UndefinedMetricWarning
	if !errors.As(warned, &umw) {
		t.Errorf("Expected UndefinedMetricWarning, got %T: %v", warned, warned)
	}
}

func TestMatrixAdapters(t *testing.T) {
	yTrue := mat.NewDense(4, 1, []float64{1, 2, 3, 4})
	yPred := mat.NewDense(4, 1, []float64{1.5, 2.5, 2.5, 3.5})

	mse, err := MSEMatrix(yTrue, yPred)
	if err != nil {
		t.Fatalf("MSEMatrix failed: %v", err)
	}
	if math.Abs(mse-0.25) > 1e-10 {
		t.Errorf("MSEMatrix = %v, want 0.25", mse)
	}

	// Multi-column input must be rejected.
	wide := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
	if _, err := R2ScoreMatrix(wide, wide); err == nil {
		t.Error("Expected error for multi-column input")
	}
}
