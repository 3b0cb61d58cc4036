package modelselection

import (
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestKFold_Split(t *testing.T) {
	X := mat.NewDense(10, 1, []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9})

	kf := NewKFold(3, false, 0)
	folds := kf.Split(X, nil)

	if len(folds) != 3 {
		t.Fatalf("Expected 3 folds, got %d", len(folds))
	}

	seen := make(map[int]int)
	for i, fold := range folds {
		// Fold sizes differ by at most one.
		if len(fold.TestIndices) < 3 || len(fold.TestIndices) > 4 {
			t.Errorf("Fold %d test size = %d, want 3 or 4", i, len(fold.TestIndices))
		}
		if len(fold.TrainIndices)+len(fold.TestIndices) != 10 {
			t.Errorf("Fold %d does not partition the samples", i)
		}

		for _, idx := range fold.TestIndices {
			seen[idx]++
		}

		// Train and test are disjoint.
		test := make(map[int]bool)
		for _, idx := range fold.TestIndices {
			test[idx] = true
		}
		for _, idx := range fold.TrainIndices {
			if test[idx] {
				t.Errorf("Fold %d: index %d in both train and test", i, idx)
			}
		}
	}

	// Every sample appears in exactly one test set.
	for i := 0; i < 10; i++ {
		if seen[i] != 1 {
			t.Errorf("Sample %d appears in %d test sets, want 1", i, seen[i])
		}
	}
}

func TestKFold_ShuffleDeterminism(t *testing.T) {
	X := mat.NewDense(20, 1, nil)

	a := NewKFold(4, true, 42).Split(X, nil)
	b := NewKFold(4, true, 42).Split(X, nil)

	for i := range a {
		if len(a[i].TestIndices) != len(b[i].TestIndices) {
			t.Fatalf("Fold %d sizes differ between identical seeds", i)
		}
		for j := range a[i].TestIndices {
			if a[i].TestIndices[j] != b[i].TestIndices[j] {
				t.Fatalf("Fold %d differs between identical seeds", i)
			}
		}
	}
}

func TestKFold_DefaultSplits(t *testing.T) {
	kf := NewKFold(1, false, 0)
	if kf.NSplits() != 5 {
		t.Errorf("Expected fallback to 5 splits, got %d", kf.NSplits())
	}
}
