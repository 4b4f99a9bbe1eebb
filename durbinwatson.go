package bootdw

import "fmt"

// DurbinWatson computes the Durbin-Watson statistic
//
//	d = sum_{t=2..n} (e_t - e_{t-1})^2 / sum_{t=1..n} e_t^2
//
// from a residual vector of length >= 2. The statistic lies in [0, 4]; a
// value near 2 indicates no first-order serial correlation.
// Fails with ErrDegenerateResiduals when all residuals are exactly zero.
func DurbinWatson(e []float64) (float64, error) {
	if len(e) < 2 {
		return 0, fmt.Errorf("%w: need at least 2 residuals, got %d", ErrInputShape, len(e))
	}

	var num, den float64
	for t, v := range e {
		den += v * v
		if t > 0 {
			diff := v - e[t-1]
			num += diff * diff
		}
	}
	if den == 0 {
		return 0, fmt.Errorf("%w: sum of squared residuals is zero", ErrDegenerateResiduals)
	}

	return num / den, nil
}

// EstimateRho computes the lag-1 autocorrelation estimate
//
//	rho-hat = sum_{t=2..n} e_t * e_{t-1} / sum_{t=1..n} e_t^2
//
// of a residual vector. For large n, rho-hat ~= 1 - d/2 with d the
// Durbin-Watson statistic; the two differ by end-point terms of order 1/n.
// Fails with ErrDegenerateResiduals when all residuals are exactly zero.
func EstimateRho(e []float64) (float64, error) {
	if len(e) < 2 {
		return 0, fmt.Errorf("%w: need at least 2 residuals, got %d", ErrInputShape, len(e))
	}

	var num, den float64
	for t, v := range e {
		den += v * v
		if t > 0 {
			num += v * e[t-1]
		}
	}
	if den == 0 {
		return 0, fmt.Errorf("%w: sum of squared residuals is zero", ErrDegenerateResiduals)
	}

	return num / den, nil
}
