package bootdw

import (
	"fmt"
	"math"
	"math/rand"
	"runtime"
	"sort"
	"sync"
)

// statFunc recomputes a statistic (d* or rho-hat*) on a resampled residual
// vector.
type statFunc func(e []float64) (float64, error)

// resampleResiduals fills out with a with-replacement draw from e. The
// sample size is preserved (len(out) == len(e)).
func resampleResiduals(e []float64, rng *rand.Rand, out []float64) {
	n := len(e)
	for i := range out {
		out[i] = e[rng.Intn(n)]
	}
}

// bootstrapDistribution produces the B replicate statistics of the residual
// bootstrap: for b = 1..B, resample e with replacement and recompute stat on
// the resampled vector. Replicates are computed on a bounded worker pool;
// each replicate draws from its own RNG seeded from a master stream, and its
// statistic lands in a replicate-indexed slot, so the returned slice is
// bit-identical for a given seed regardless of the worker count.
func bootstrapDistribution(e []float64, opts BootstrapOptions, stat statFunc) ([]float64, error) {
	if opts.NBootstrap <= 0 {
		return nil, fmt.Errorf("%w: NBootstrap must be > 0, got %d", ErrInvalidParameter, opts.NBootstrap)
	}
	if len(e) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 residuals, got %d", ErrInputShape, len(e))
	}

	B := opts.NBootstrap

	// Per-replication seeds so workers never share an RNG.
	masterRng := rand.New(rand.NewSource(opts.Seed))
	seeds := make([]int64, B)
	for i := range seeds {
		seeds[i] = masterRng.Int63()
	}

	numWorkers := opts.Workers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	if numWorkers > B {
		numWorkers = B
	}

	replicates := make([]float64, B)
	errs := make([]error, B)

	jobs := make(chan int)

	var wg sync.WaitGroup
	wg.Add(numWorkers)

	for w := 0; w < numWorkers; w++ {
		go func() {
			defer wg.Done()

			// Scratch vector reused across this worker's replicates; stat
			// only reads it and the value is copied out before reuse.
			buf := make([]float64, len(e))

			for b := range jobs {
				rng := rand.New(rand.NewSource(seeds[b]))
				resampleResiduals(e, rng, buf)

				s, err := stat(buf)
				if err != nil {
					errs[b] = fmt.Errorf("bootstrap replicate %d: %w", b, err)
					continue
				}
				replicates[b] = s
			}
		}()
	}

	for b := 0; b < B; b++ {
		jobs <- b
	}
	close(jobs)
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return replicates, nil
}

// bootstrapQuantile returns the empirical q-quantile of samples (0 <= q <= 1)
// using linear interpolation between order statistics.
func bootstrapQuantile(samples []float64, q float64) float64 {
	n := len(samples)
	if n == 0 {
		return math.NaN()
	}

	tmp := make([]float64, n)
	copy(tmp, samples)
	sort.Float64s(tmp)

	if q <= 0 {
		return tmp[0]
	}
	if q >= 1 {
		return tmp[n-1]
	}

	pos := q * float64(n-1)
	idxBelow := int(math.Floor(pos))
	idxAbove := int(math.Ceil(pos))

	if idxAbove == idxBelow {
		return tmp[idxBelow]
	}

	weight := pos - float64(idxBelow)
	return tmp[idxBelow]*(1.0-weight) + tmp[idxAbove]*weight
}
