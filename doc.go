// Package bootdw implements tests for first-order serial correlation in the
// residuals of OLS-fit linear models: the classical Durbin-Watson statistic
// plus three residual-bootstrap variants (bootstrapped DW, bootstrapped rho,
// and bias-corrected-and-accelerated bootstrapped rho), following the
// methodology of Jeong & Chung (2001).
//
// Each test entry point is a pure, one-shot pipeline over immutable inputs;
// all randomness is driven by an explicit seed, so results are reproducible
// bit-for-bit across runs and parallelism degrees.
package bootdw
