package bootdw

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBootstrapDistributionDeterministic(t *testing.T) {
	e := normalResiduals(60, 5)
	opts := BootstrapOptions{NBootstrap: 100, Seed: 42}

	d1, err := bootstrapDistribution(e, opts, EstimateRho)
	require.NoError(t, err)
	d2, err := bootstrapDistribution(e, opts, EstimateRho)
	require.NoError(t, err)

	require.Equal(t, d1, d2)

	opts.Seed = 43
	d3, err := bootstrapDistribution(e, opts, EstimateRho)
	require.NoError(t, err)
	assert.NotEqual(t, d1, d3)
}

func TestBootstrapDistributionWorkerCountInvariant(t *testing.T) {
	// The aggregate result must not depend on the parallelism degree.
	e := normalResiduals(80, 9)

	serial, err := bootstrapDistribution(e, BootstrapOptions{NBootstrap: 150, Seed: 7, Workers: 1}, DurbinWatson)
	require.NoError(t, err)
	parallel, err := bootstrapDistribution(e, BootstrapOptions{NBootstrap: 150, Seed: 7, Workers: 8}, DurbinWatson)
	require.NoError(t, err)

	require.Equal(t, serial, parallel)
}

func TestBootstrapDistributionDrawsFromSample(t *testing.T) {
	// With a first-element statistic, every replicate value must be one of
	// the source residuals.
	e := []float64{1.5, -2.25, 3.125, 0.5, -0.75}
	first := func(v []float64) (float64, error) { return v[0], nil }

	dist, err := bootstrapDistribution(e, BootstrapOptions{NBootstrap: 50, Seed: 1}, first)
	require.NoError(t, err)
	require.Len(t, dist, 50)

	members := map[float64]bool{}
	for _, v := range e {
		members[v] = true
	}
	for _, v := range dist {
		assert.True(t, members[v], "replicate value %v not drawn from the sample", v)
	}
}

func TestBootstrapDistributionInvalidParams(t *testing.T) {
	e := normalResiduals(20, 2)

	_, err := bootstrapDistribution(e, BootstrapOptions{NBootstrap: 0, Seed: 1}, EstimateRho)
	require.ErrorIs(t, err, ErrInvalidParameter)

	_, err = bootstrapDistribution(e, BootstrapOptions{NBootstrap: -5, Seed: 1}, EstimateRho)
	require.ErrorIs(t, err, ErrInvalidParameter)

	_, err = bootstrapDistribution([]float64{1.0}, BootstrapOptions{NBootstrap: 10, Seed: 1}, EstimateRho)
	require.ErrorIs(t, err, ErrInputShape)
}

func TestBootstrapDistributionPropagatesStatErrors(t *testing.T) {
	// All-zero residuals make every replicate degenerate.
	zeros := make([]float64, 20)

	_, err := bootstrapDistribution(zeros, BootstrapOptions{NBootstrap: 10, Seed: 1}, DurbinWatson)
	require.ErrorIs(t, err, ErrDegenerateResiduals)
}

func TestBootstrapQuantile(t *testing.T) {
	samples := []float64{3, 1, 4, 2}

	assert.True(t, math.IsNaN(bootstrapQuantile(nil, 0.5)))
	assert.Equal(t, 1.0, bootstrapQuantile(samples, 0))
	assert.Equal(t, 4.0, bootstrapQuantile(samples, 1))
	assert.InDelta(t, 2.5, bootstrapQuantile(samples, 0.5), 1e-12)
	// pos = 0.25*3 = 0.75, between order statistics 1 and 2.
	assert.InDelta(t, 1.75, bootstrapQuantile(samples, 0.25), 1e-12)
}
