package bootdw

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDurbinWatsonHandComputed(t *testing.T) {
	// e = [1,-1,1,-1]: numerator (2^2)*3 = 12, denominator 4, so d = 3 and
	// rho = (-1-1-1)/4 = -0.75.
	e := []float64{1, -1, 1, -1}

	d, err := DurbinWatson(e)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, d, 1e-12)

	rho, err := EstimateRho(e)
	require.NoError(t, err)
	assert.InDelta(t, -0.75, rho, 1e-12)
}

func TestDurbinWatsonBounds(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		e := normalResiduals(50, seed)
		d, err := DurbinWatson(e)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, d, 0.0)
		assert.LessOrEqual(t, d, 4.0)
	}
}

func TestDurbinWatsonDirection(t *testing.T) {
	// Strong positive serial correlation pushes d toward 0, alternation
	// toward 4.
	n := 200
	pos := make([]float64, n)
	alt := make([]float64, n)
	base := normalResiduals(n, 3)
	pos[0] = base[0]
	for t := 1; t < n; t++ {
		pos[t] = 0.9*pos[t-1] + 0.1*base[t]
	}
	for t := 0; t < n; t++ {
		alt[t] = 1.0
		if t%2 == 1 {
			alt[t] = -1.0
		}
	}

	dPos, err := DurbinWatson(pos)
	require.NoError(t, err)
	assert.Less(t, dPos, 1.0)

	dAlt, err := DurbinWatson(alt)
	require.NoError(t, err)
	assert.Greater(t, dAlt, 3.0)
}

func TestEstimateRhoApproximatesOneMinusHalfD(t *testing.T) {
	// rho ~= 1 - d/2; the difference is the end-point term
	// (e_1^2 + e_n^2) / (2*sum e^2), which is O(1/n).
	e := normalResiduals(2000, 11)

	d, err := DurbinWatson(e)
	require.NoError(t, err)
	rho, err := EstimateRho(e)
	require.NoError(t, err)

	assert.InDelta(t, 1.0-d/2.0, rho, 0.02)
}

func TestDurbinWatsonDegenerate(t *testing.T) {
	zeros := make([]float64, 10)

	_, err := DurbinWatson(zeros)
	require.ErrorIs(t, err, ErrDegenerateResiduals)

	_, err = EstimateRho(zeros)
	require.ErrorIs(t, err, ErrDegenerateResiduals)
}

func TestDurbinWatsonTooShort(t *testing.T) {
	_, err := DurbinWatson([]float64{1.0})
	require.ErrorIs(t, err, ErrInputShape)

	_, err = EstimateRho(nil)
	require.ErrorIs(t, err, ErrInputShape)
}
