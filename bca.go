package bootdw

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// stdNormal is the standard normal used for the BCa bias and acceleration
// mapping (Phi and Phi^-1).
var stdNormal = distuv.Normal{Mu: 0, Sigma: 1}

// jackknifeRho computes the leave-one-out rho-hat estimates: element i is
// rho-hat of the residual vector with observation i deleted. The deletion
// splices the vector, so the two neighbours of the deleted point become
// adjacent, which is the standard convention for jackknifing serial
// statistics here.
func jackknifeRho(e []float64) ([]float64, error) {
	n := len(e)
	if n < 3 {
		return nil, fmt.Errorf("%w: jackknife needs at least 3 residuals, got %d", ErrInputShape, n)
	}

	out := make([]float64, n)
	buf := make([]float64, n-1)
	for i := 0; i < n; i++ {
		copy(buf, e[:i])
		copy(buf[i:], e[i+1:])

		rho, err := EstimateRho(buf)
		if err != nil {
			return nil, fmt.Errorf("jackknife estimate %d: %w", i, err)
		}
		out[i] = rho
	}

	return out, nil
}

// bcaConstants computes the bias-correction constant z0 from the bootstrap
// distribution and the acceleration constant a0 from the jackknife
// estimates.
//
//	z0 = Phi^-1( #{dist_b < observed} / B )
//	a0 = sum (mean - jack_i)^3 / ( 6 * [sum (mean - jack_i)^2]^{3/2} )
//
// The z0 proportion is clamped to [1/(B+1), B/(B+1)] so it stays finite when
// the observed value sits outside the whole bootstrap distribution. a0 is 0
// when the jackknife estimates are constant.
func bcaConstants(dist []float64, observed float64, jack []float64) (z0, a0 float64) {
	B := len(dist)

	count := 0
	for _, v := range dist {
		if v < observed {
			count++
		}
	}
	prop := float64(count) / float64(B)
	lo := 1.0 / float64(B+1)
	if prop < lo {
		prop = lo
	}
	if hi := float64(B) / float64(B+1); prop > hi {
		prop = hi
	}
	z0 = stdNormal.Quantile(prop)

	var mean float64
	for _, v := range jack {
		mean += v
	}
	mean /= float64(len(jack))

	var sum2, sum3 float64
	for _, v := range jack {
		d := mean - v
		sum2 += d * d
		sum3 += d * d * d
	}
	if sum2 == 0 {
		return z0, 0
	}
	a0 = sum3 / (6.0 * math.Pow(sum2, 1.5))

	return z0, a0
}

// bcaInterval derives the BCa-corrected (1 - alpha) interval from the
// bootstrap distribution: the nominal percentile levels alpha/2 and
// 1 - alpha/2 are shifted by z0 and a0,
//
//	alpha_adj = Phi( z0 + (z0 + z_nominal) / (1 - a0*(z0 + z_nominal)) ),
//
// and the interval bounds are the empirical quantiles of the distribution at
// the adjusted levels. With z0 = 0 and a0 = 0 this reduces to the plain
// percentile interval.
func bcaInterval(dist []float64, z0, a0, alpha float64) Interval {
	adjust := func(nominal float64) float64 {
		z := stdNormal.Quantile(nominal)
		return stdNormal.CDF(z0 + (z0+z)/(1.0-a0*(z0+z)))
	}

	alpha1 := adjust(alpha / 2.0)
	alpha2 := adjust(1.0 - alpha/2.0)

	return Interval{
		Lower: bootstrapQuantile(dist, alpha1),
		Upper: bootstrapQuantile(dist, alpha2),
	}
}
