package bootdw

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"gonum.org/v1/gonum/mat"
)

// LoadCSVDataset loads a regression dataset from a CSV file with a header
// row. The first column is the response y, every remaining column is a
// regressor. All cells must parse as floats; there is no missing-value
// handling.
func LoadCSVDataset(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if len(header) < 2 {
		return nil, fmt.Errorf("%w: need a response column and at least one regressor, got %d columns", ErrInputShape, len(header))
	}
	cols := len(header)
	k := cols - 1

	var (
		y     []float64
		xData []float64 // flat row-major data for mat.Dense
		row   int
	)

	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", row+2, err) // +2 for header + 1-based
		}

		// Skip completely empty lines.
		if len(record) == 1 && record[0] == "" {
			continue
		}

		if len(record) != cols {
			return nil, fmt.Errorf("row %d: expected %d columns, got %d", row+2, cols, len(record))
		}

		for j, s := range record {
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return nil, fmt.Errorf("parse float at row %d col %d (%q): %w", row+2, j+1, s, err)
			}
			if j == 0 {
				y = append(y, v)
			} else {
				xData = append(xData, v)
			}
		}
		row++
	}

	if row == 0 {
		return nil, fmt.Errorf("%w: no data rows in %s", ErrInputShape, path)
	}

	return &Dataset{
		Y:          y,
		X:          mat.NewDense(row, k, xData),
		Response:   header[0],
		Regressors: header[1:],
	}, nil
}
