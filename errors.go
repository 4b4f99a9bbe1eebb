package bootdw

import "errors"

// Sentinel errors for the autocorrelation testing engine. Callers should
// match with errors.Is; every failure from this package wraps exactly one
// of these.
var (
	// ErrInputShape reports a y/X length mismatch, a nil or empty input, or
	// a design with too few observations (n <= number of regressors).
	ErrInputShape = errors.New("bootdw: input shape mismatch")

	// ErrSingularDesign reports a rank-deficient design matrix, i.e. X'X is
	// not invertible.
	ErrSingularDesign = errors.New("bootdw: singular design matrix")

	// ErrDegenerateResiduals reports an all-zero residual vector, for which
	// neither the Durbin-Watson statistic nor rho-hat is defined.
	ErrDegenerateResiduals = errors.New("bootdw: degenerate residuals")

	// ErrInvalidParameter reports an out-of-range option such as a
	// non-positive bootstrap replication count.
	ErrInvalidParameter = errors.New("bootdw: invalid parameter")
)
