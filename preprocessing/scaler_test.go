package preprocessing

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/ridgego/pkg/errors"
)

func TestStandardScaler_FitTransform(t *testing.T) {
	X := mat.NewDense(4, 2, []float64{
		1, 10,
		2, 20,
		3, 30,
		4, 40,
	})

	scaler := NewStandardScaler()
	scaled, err := scaler.FitTransform(X)
	if err != nil {
		t.Fatalf("FitTransform failed: %v", err)
	}

	// Each column must have mean 0 and population standard deviation 1.
	r, c := scaled.Dims()
	for j := 0; j < c; j++ {
		var mean float64
		for i := 0; i < r; i++ {
			mean += scaled.At(i, j)
		}
		mean /= float64(r)
		if math.Abs(mean) > 1e-10 {
			t.Errorf("Column %d mean = %g, want 0", j, mean)
		}

		var variance float64
		for i := 0; i < r; i++ {
			d := scaled.At(i, j) - mean
			variance += d * d
		}
		variance /= float64(r)
		if math.Abs(variance-1.0) > 1e-10 {
			t.Errorf("Column %d variance = %g, want 1", j, variance)
		}
	}
}

func TestStandardScaler_TransformUsesTrainingStats(t *testing.T) {
	XTrain := mat.NewDense(3, 1, []float64{0, 5, 10})
	XTest := mat.NewDense(1, 1, []float64{5})

	scaler := NewStandardScaler()
	if _, err := scaler.FitTransform(XTrain); err != nil {
		t.Fatalf("FitTransform failed: %v", err)
	}

	scaled, err := scaler.Transform(XTest)
	if err != nil {
		t.Fatalf("Transform failed: %v", err)
	}

	// 5 is the training mean, so it must map to 0.
	if math.Abs(scaled.At(0, 0)) > 1e-10 {
		t.Errorf("Training mean must map to 0, got %g", scaled.At(0, 0))
	}
}

func TestStandardScaler_InverseRoundTrip(t *testing.T) {
	X := mat.NewDense(3, 2, []float64{
		1, 100,
		2, 200,
		3, 300,
	})

	scaler := NewStandardScaler()
	scaled, err := scaler.FitTransform(X)
	if err != nil {
		t.Fatalf("FitTransform failed: %v", err)
	}

	original, err := scaler.InverseTransform(scaled)
	if err != nil {
		t.Fatalf("InverseTransform failed: %v", err)
	}

	r, c := X.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if math.Abs(original.At(i, j)-X.At(i, j)) > 1e-9 {
				t.Errorf("Round trip at (%d,%d): got %g, want %g", i, j, original.At(i, j), X.At(i, j))
			}
		}
	}
}

func TestStandardScaler_ConstantFeature(t *testing.T) {
	X := mat.NewDense(3, 1, []float64{7, 7, 7})

	scaler := NewStandardScaler()
	scaled, err := scaler.FitTransform(X)
	if err != nil {
		t.Fatalf("FitTransform failed: %v", err)
	}

	// A constant feature maps to zero rather than dividing by zero.
	for i := 0; i < 3; i++ {
		if scaled.At(i, 0) != 0 {
			t.Errorf("Constant feature row %d = %g, want 0", i, scaled.At(i, 0))
		}
	}
}

func TestStandardScaler_Errors(t *testing.T) {
	t.Run("transform before fit", func(t *testing.T) {
		scaler := NewStandardScaler()
		_, err := scaler.Transform(mat.NewDense(1, 1, []float64{1}))
		if err == nil {
			t.Fatal("Expected NotFittedError")
		}
		var nfErr *errors.NotFittedError
		if !errors.As(err, &nfErr) {
			t.Errorf("Expected NotFittedError, got %T: %v", err, err)
		}
	})

	t.Run("feature count mismatch", func(t *testing.T) {
		scaler := NewStandardScaler()
		if err := scaler.Fit(mat.NewDense(2, 2, []float64{1, 2, 3, 4})); err != nil {
			t.Fatalf("Fit failed: %v", err)
		}
		_, err := scaler.Transform(mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6}))
		if err == nil {
			t.Fatal("Expected DimensionError")
		}
		var dimErr *errors.DimensionError
		if !errors.As(err, &dimErr) {
			t.Errorf("Expected DimensionError, got %T: %v", err, err)
		}
	})
}
