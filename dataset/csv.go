// Package dataset loads numeric tabular data into gonum matrices.
//
// The loader expects fully numeric columns; categorical encoding belongs to
// an upstream preparation step, not this package.
package dataset

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/ridgego/pkg/errors"
)

// LoadCSV reads a CSV stream with a header row and returns the feature
// matrix X and the target vector y. The column named target becomes y; every
// other column becomes a feature, in header order.
func LoadCSV(r io.Reader, target string) (X, y *mat.Dense, err error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to read CSV header")
	}

	targetIdx := -1
	for i, name := range header {
		if name == target {
			targetIdx = i
			break
		}
	}
	if targetIdx < 0 {
		return nil, nil, errors.Newf("target column '%s' not found in header %v", target, header)
	}

	nFeatures := len(header) - 1
	if nFeatures == 0 {
		return nil, nil, errors.NewValueError("LoadCSV", "no feature columns besides the target")
	}

	var xData, yData []float64
	row := 0
	for {
		record, readErr := reader.Read()
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return nil, nil, errors.Wrapf(readErr, "failed to read CSV row %d", row+1)
		}
		if len(record) != len(header) {
			return nil, nil, errors.Newf("row %d has %d fields, header has %d", row+1, len(record), len(header))
		}

		for i, field := range record {
			v, parseErr := strconv.ParseFloat(field, 64)
			if parseErr != nil {
				return nil, nil, errors.Wrapf(parseErr,
					"row %d, column '%s': non-numeric value %q", row+1, header[i], field)
			}
			if i == targetIdx {
				yData = append(yData, v)
			} else {
				xData = append(xData, v)
			}
		}
		row++
	}

	if row == 0 {
		return nil, nil, errors.NewModelError("LoadCSV", "empty data", errors.ErrEmptyData)
	}

	return mat.NewDense(row, nFeatures, xData), mat.NewDense(row, 1, yData), nil
}

// LoadCSVFile reads a CSV file and returns the feature matrix X and the
// target vector y.
func LoadCSVFile(path, target string) (X, y *mat.Dense, err error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "failed to open %s", path)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	return LoadCSV(file, target)
}
