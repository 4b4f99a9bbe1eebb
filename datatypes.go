package bootdw

import (
	"gonum.org/v1/gonum/mat"
)

// Method identifies one of the four autocorrelation test variants.
type Method string

// The four test variants.
const (
	MethodDW     Method = "DW"      // classical Durbin-Watson, no internal p-value
	MethodBDW    Method = "BDW"     // bootstrapped Durbin-Watson
	MethodBRho   Method = "B-rho"   // bootstrapped rho
	MethodBCaRho Method = "BCa-rho" // bias-corrected and accelerated bootstrapped rho
)

// FittedModel holds the output of a single OLS fit: coefficients, residuals
// and fitted values. It is created once per test call and read-only after.
type FittedModel struct {
	// Beta has length k, or k+1 when an intercept column was prepended
	// (the intercept is Beta[0] in that case).
	Beta []float64
	// Residuals e = y - X*Beta, length n.
	Residuals []float64
	// Fitted values X*Beta, length n.
	Fitted []float64
}

// BootstrapOptions configures the resampling stage of the bootstrap tests.
type BootstrapOptions struct {
	// Number of bootstrap replications B (must be > 0; 200+ recommended).
	NBootstrap int

	// RNG seed. The same seed always reproduces bit-identical replicates
	// and p-values, regardless of Workers.
	Seed int64

	// Confidence level alpha for intervals (e.g. 0.05 for 95% CI).
	// Values outside (0,1) fall back to 0.05.
	Alpha float64

	// Worker goroutines for the replicate loop. <= 0 means NumCPU.
	Workers int
}

// Interval is a two-sided confidence interval.
type Interval struct {
	Lower float64
	Upper float64
}

// Diagnostics carries the per-test auxiliary quantities. Fields that a
// variant does not produce are left at their zero value; the interval
// pointers are nil when not computed.
type Diagnostics struct {
	// Durbin-Watson statistic d and lag-1 autocorrelation estimate rho-hat
	// of the observed residuals. Set by every variant.
	DW  float64
	Rho float64

	// Bootstrap configuration actually used (bootstrap variants only).
	NBootstrap int
	Seed       int64
	Alpha      float64

	// Mean and sample standard deviation of the bootstrap distribution.
	BootMean   float64
	BootStdDev float64

	// Plain percentile interval (BDW and B-rho).
	Percentile *Interval

	// BCa-adjusted interval and its correction constants (BCa-rho only).
	BCa *Interval
	Z0  float64
	A0  float64
}

// TestResult is the sole artifact of a test call. Immutable once returned.
type TestResult struct {
	Method    Method
	Statistic float64

	// PValue is meaningful only when HasPValue is true. The classical DW
	// test computes no p-value; its d must be compared against tabulated
	// critical values externally.
	PValue    float64
	HasPValue bool

	Info Diagnostics
}

// Significant reports whether the test rejects H0: rho = 0 at level alpha.
// It is false for the classical DW test, which has no internal p-value.
func (r *TestResult) Significant(alpha float64) bool {
	return r.HasPValue && r.PValue < alpha
}

// Dataset is a (response, regressors) pair loaded from a CSV file.
type Dataset struct {
	// Response vector y, length n.
	Y []float64
	// Regressor matrix X, n x k.
	X *mat.Dense
	// Column names from the CSV header.
	Response   string
	Regressors []string
}
