package bootdw

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/mat"
)

// defaultAlpha is the interval level used when BootstrapOptions.Alpha is
// outside (0, 1).
const defaultAlpha = 0.05

// DWTest runs the classical Durbin-Watson test: it fits OLS and reports the
// d statistic. No p-value is computed; d must be compared against tabulated
// DW critical values externally.
func DWTest(y []float64, X *mat.Dense, addConstant bool) (*TestResult, error) {
	_, d, rho, err := fitAndDiagnose(y, X, addConstant)
	if err != nil {
		return nil, err
	}

	return &TestResult{
		Method:    MethodDW,
		Statistic: d,
		Info:      Diagnostics{DW: d, Rho: rho},
	}, nil
}

// BDWTest runs the bootstrapped Durbin-Watson test: the observed d is
// compared against the empirical distribution of d* recomputed on B
// with-replacement resamples of the residuals (which destroys any serial
// structure, i.e. the H0: rho = 0 reference). The p-value is twice the
// smaller one-sided tail proportion of d* around d, capped at 1, with the
// (count+1)/(B+1) small-sample correction.
func BDWTest(y []float64, X *mat.Dense, addConstant bool, opts BootstrapOptions) (*TestResult, error) {
	fm, d, rho, err := fitAndDiagnose(y, X, addConstant)
	if err != nil {
		return nil, err
	}

	dist, err := bootstrapDistribution(fm.Residuals, opts, DurbinWatson)
	if err != nil {
		return nil, err
	}

	B := opts.NBootstrap
	countLo, countHi := 0, 0
	for _, v := range dist {
		if v <= d {
			countLo++
		}
		if v >= d {
			countHi++
		}
	}
	pLo := float64(countLo+1) / float64(B+1)
	pHi := float64(countHi+1) / float64(B+1)
	p := 2.0 * math.Min(pLo, pHi)
	if p > 1 {
		p = 1
	}

	info := bootstrapDiagnostics(d, rho, dist, opts)
	info.Percentile = percentileInterval(dist, info.Alpha)

	return &TestResult{
		Method:    MethodBDW,
		Statistic: d,
		PValue:    p,
		HasPValue: true,
		Info:      info,
	}, nil
}

// BRhoTest runs the bootstrapped-rho test: the observed rho-hat is compared
// against the distribution of rho-hat* over B residual resamples. The
// p-value is the two-sided tail proportion #{|rho*| >= |rho|} with the
// (count+1)/(B+1) correction, and a plain percentile interval is attached.
func BRhoTest(y []float64, X *mat.Dense, addConstant bool, opts BootstrapOptions) (*TestResult, error) {
	fm, d, rho, err := fitAndDiagnose(y, X, addConstant)
	if err != nil {
		return nil, err
	}

	dist, err := bootstrapDistribution(fm.Residuals, opts, EstimateRho)
	if err != nil {
		return nil, err
	}

	info := bootstrapDiagnostics(d, rho, dist, opts)
	info.Percentile = percentileInterval(dist, info.Alpha)

	return &TestResult{
		Method:    MethodBRho,
		Statistic: rho,
		PValue:    rhoPValue(dist, rho),
		HasPValue: true,
		Info:      info,
	}, nil
}

// BCaRhoTest runs the bias-corrected and accelerated bootstrapped-rho test.
// It uses the same bootstrap distribution and p-value as BRhoTest, but the
// reported interval is BCa-adjusted: the bias constant z0 comes from the
// position of rho-hat inside the bootstrap distribution and the acceleration
// constant a0 from leave-one-out jackknife estimates of rho-hat.
func BCaRhoTest(y []float64, X *mat.Dense, addConstant bool, opts BootstrapOptions) (*TestResult, error) {
	fm, d, rho, err := fitAndDiagnose(y, X, addConstant)
	if err != nil {
		return nil, err
	}

	dist, err := bootstrapDistribution(fm.Residuals, opts, EstimateRho)
	if err != nil {
		return nil, err
	}

	jack, err := jackknifeRho(fm.Residuals)
	if err != nil {
		return nil, err
	}

	info := bootstrapDiagnostics(d, rho, dist, opts)
	z0, a0 := bcaConstants(dist, rho, jack)
	ci := bcaInterval(dist, z0, a0, info.Alpha)
	info.BCa = &ci
	info.Z0 = z0
	info.A0 = a0

	return &TestResult{
		Method:    MethodBCaRho,
		Statistic: rho,
		PValue:    rhoPValue(dist, rho),
		HasPValue: true,
		Info:      info,
	}, nil
}

// AutocorrelationTest dispatches to one of the four test variants by method
// name. For MethodDW the bootstrap options are ignored.
func AutocorrelationTest(method Method, y []float64, X *mat.Dense, addConstant bool, opts BootstrapOptions) (*TestResult, error) {
	switch method {
	case MethodDW:
		return DWTest(y, X, addConstant)
	case MethodBDW:
		return BDWTest(y, X, addConstant, opts)
	case MethodBRho:
		return BRhoTest(y, X, addConstant, opts)
	case MethodBCaRho:
		return BCaRhoTest(y, X, addConstant, opts)
	default:
		return nil, fmt.Errorf("%w: unknown method %q", ErrInvalidParameter, method)
	}
}

// fitAndDiagnose runs the shared head of every pipeline: OLS fit plus the
// observed d and rho-hat.
func fitAndDiagnose(y []float64, X *mat.Dense, addConstant bool) (*FittedModel, float64, float64, error) {
	fm, err := OLSRegression(y, X, addConstant)
	if err != nil {
		return nil, 0, 0, err
	}

	d, err := DurbinWatson(fm.Residuals)
	if err != nil {
		return nil, 0, 0, err
	}

	rho, err := EstimateRho(fm.Residuals)
	if err != nil {
		return nil, 0, 0, err
	}

	return fm, d, rho, nil
}

// rhoPValue is the two-sided bootstrap p-value for the rho tests:
// (#{|rho*| >= |rho|} + 1) / (B + 1).
func rhoPValue(dist []float64, rho float64) float64 {
	count := 0
	abs := math.Abs(rho)
	for _, v := range dist {
		if math.Abs(v) >= abs {
			count++
		}
	}
	return float64(count+1) / float64(len(dist)+1)
}

// percentileInterval is the plain [alpha/2, 1-alpha/2] empirical interval.
func percentileInterval(dist []float64, alpha float64) *Interval {
	return &Interval{
		Lower: bootstrapQuantile(dist, alpha/2.0),
		Upper: bootstrapQuantile(dist, 1.0-alpha/2.0),
	}
}

// bootstrapDiagnostics assembles the diagnostics shared by the bootstrap
// variants, including mean/sd summaries of the replicate distribution.
func bootstrapDiagnostics(d, rho float64, dist []float64, opts BootstrapOptions) Diagnostics {
	alpha := opts.Alpha
	if alpha <= 0 || alpha >= 1 {
		alpha = defaultAlpha
	}

	mean, _ := stats.Mean(dist)
	sd, _ := stats.StandardDeviationSample(dist)

	return Diagnostics{
		DW:         d,
		Rho:        rho,
		NBootstrap: opts.NBootstrap,
		Seed:       opts.Seed,
		Alpha:      alpha,
		BootMean:   mean,
		BootStdDev: sd,
	}
}
