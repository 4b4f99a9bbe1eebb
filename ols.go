package bootdw

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// svdRankTol is the singular-value tolerance used to decide the effective
// numerical rank of a design matrix.
const svdRankTol = 1e-12

// OLSRegression fits y = X*beta by ordinary least squares and returns the
// coefficients, residuals and fitted values.
// y: response vector, length n
// X: design matrix, n x k (k >= 1)
// addConstant: prepend a column of ones so beta[0] is the intercept
// Fails with ErrInputShape when the dimensions are inconsistent or n <= m
// (m = number of columns after the intercept), and with ErrSingularDesign
// when X'X is not invertible.
func OLSRegression(y []float64, X *mat.Dense, addConstant bool) (*FittedModel, error) {
	if X == nil {
		return nil, fmt.Errorf("%w: design matrix is nil", ErrInputShape)
	}
	n := len(y)
	r, k := X.Dims()
	if n == 0 || k == 0 {
		return nil, fmt.Errorf("%w: empty input (n=%d, k=%d)", ErrInputShape, n, k)
	}
	if r != n {
		return nil, fmt.Errorf("%w: y has %d rows, X has %d", ErrInputShape, n, r)
	}

	// Build the full design, optionally with a leading intercept column.
	m := k
	if addConstant {
		m = k + 1
	}
	if n <= m {
		return nil, fmt.Errorf("%w: need more observations than regressors: n=%d, m=%d", ErrInputShape, n, m)
	}

	D := mat.NewDense(n, m, nil)
	for t := 0; t < n; t++ {
		col := 0
		if addConstant {
			D.Set(t, col, 1.0)
			col++
		}
		for j := 0; j < k; j++ {
			D.Set(t, col+j, X.At(t, j))
		}
	}

	yVec := mat.NewVecDense(n, nil)
	for t := 0; t < n; t++ {
		yVec.SetVec(t, y[t])
	}

	// First try: normal equations beta = (X'X)^(-1) X'y
	var xtx mat.Dense
	xtx.Mul(D.T(), D)

	beta := mat.NewVecDense(m, nil)

	var xtxInv mat.Dense
	if errInv := xtxInv.Inverse(&xtx); errInv == nil {
		var xty mat.VecDense
		xty.MulVec(D.T(), yVec)
		beta.MulVec(&xtxInv, &xty)
	} else {
		// X'X is singular or badly conditioned. Probe the effective rank of
		// the design itself: a rank-deficient design is a caller error, a
		// merely ill-conditioned one still has a unique LS solution.
		var svd mat.SVD
		if !svd.Factorize(D, mat.SVDThin) {
			return nil, fmt.Errorf("%w: SVD factorization failed: %v", ErrSingularDesign, errInv)
		}
		if rank := svd.Rank(svdRankTol); rank < m {
			return nil, fmt.Errorf("%w: design has rank %d, need %d", ErrSingularDesign, rank, m)
		}

		yMat := mat.NewDense(n, 1, nil)
		for t := 0; t < n; t++ {
			yMat.Set(t, 0, y[t])
		}
		var b mat.Dense
		svd.SolveTo(&b, yMat, m)
		for i := 0; i < m; i++ {
			beta.SetVec(i, b.At(i, 0))
		}
	}

	// Fitted values and residuals.
	var yHat mat.VecDense
	yHat.MulVec(D, beta)

	fm := &FittedModel{
		Beta:      make([]float64, m),
		Residuals: make([]float64, n),
		Fitted:    make([]float64, n),
	}
	for i := 0; i < m; i++ {
		fm.Beta[i] = beta.AtVec(i)
	}
	for t := 0; t < n; t++ {
		fm.Fitted[t] = yHat.AtVec(t)
		fm.Residuals[t] = y[t] - fm.Fitted[t]
	}

	return fm, nil
}
