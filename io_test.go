package bootdw

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadCSVDataset(t *testing.T) {
	path := writeTempCSV(t, "inflation,unemployment,rate\n1.5,4.0,0.25\n2.0,3.5,0.50\n2.5,3.0,0.75\n")

	ds, err := LoadCSVDataset(path)
	require.NoError(t, err)

	assert.Equal(t, "inflation", ds.Response)
	assert.Equal(t, []string{"unemployment", "rate"}, ds.Regressors)
	assert.Equal(t, []float64{1.5, 2.0, 2.5}, ds.Y)

	r, c := ds.X.Dims()
	assert.Equal(t, 3, r)
	assert.Equal(t, 2, c)
	assert.Equal(t, 4.0, ds.X.At(0, 0))
	assert.Equal(t, 0.75, ds.X.At(2, 1))
}

func TestLoadCSVDatasetErrors(t *testing.T) {
	_, err := LoadCSVDataset(filepath.Join(t.TempDir(), "missing.csv"))
	require.Error(t, err)

	// Only one column: no regressors.
	path := writeTempCSV(t, "y\n1.0\n2.0\n")
	_, err = LoadCSVDataset(path)
	require.ErrorIs(t, err, ErrInputShape)

	// Header only, no data rows.
	path = writeTempCSV(t, "y,x\n")
	_, err = LoadCSVDataset(path)
	require.ErrorIs(t, err, ErrInputShape)

	// Non-numeric cell.
	path = writeTempCSV(t, "y,x\n1.0,abc\n")
	_, err = LoadCSVDataset(path)
	require.Error(t, err)
}
