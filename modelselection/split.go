package modelselection

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/ridgego/pkg/errors"
)

// TrainTestSplit partitions X and y into a random train set and test set.
// testSize is the fraction of samples held out, in (0, 1). The split is
// deterministic for a given seed.
func TrainTestSplit(X, y mat.Matrix, testSize float64, seed int) (XTrain, XTest, yTrain, yTest mat.Matrix, err error) {
	nSamples, _ := X.Dims()
	yRows, _ := y.Dims()

	if yRows != nSamples {
		return nil, nil, nil, nil, errors.NewDimensionError("TrainTestSplit", nSamples, yRows, 0)
	}
	if testSize <= 0 || testSize >= 1 {
		return nil, nil, nil, nil, errors.NewValueError("TrainTestSplit", "testSize must be in (0, 1)")
	}

	nTest := int(float64(nSamples) * testSize)
	if nTest == 0 {
		nTest = 1
	}
	if nTest >= nSamples {
		return nil, nil, nil, nil, errors.NewValueError("TrainTestSplit", "testSize leaves no training samples")
	}

	indices := make([]int, nSamples)
	for i := range indices {
		indices[i] = i
	}
	r := rand.New(rand.NewPCG(uint64(seed), uint64(seed)))
	r.Shuffle(len(indices), func(i, j int) {
		indices[i], indices[j] = indices[j], indices[i]
	})

	XTest, yTest = extractSubset(X, y, indices[:nTest])
	XTrain, yTrain = extractSubset(X, y, indices[nTest:])
	return XTrain, XTest, yTrain, yTest, nil
}
