package bootdw

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// simulateRegression generates the standard scenario used across the tests:
// y = 2 + 3*x1 - 1.5*x2 + e with AR(1) errors e_t = rho*e_{t-1} + noise.
// rho = 0 yields i.i.d. errors.
func simulateRegression(n int, rho float64, seed int64) ([]float64, *mat.Dense) {
	rng := rand.New(rand.NewSource(seed))

	X := mat.NewDense(n, 2, nil)
	for t := 0; t < n; t++ {
		X.Set(t, 0, rng.NormFloat64())
		X.Set(t, 1, rng.NormFloat64())
	}

	e := make([]float64, n)
	if rho != 0 {
		e[0] = rng.NormFloat64() / math.Sqrt(1-rho*rho)
	} else {
		e[0] = rng.NormFloat64()
	}
	for t := 1; t < n; t++ {
		e[t] = rho*e[t-1] + rng.NormFloat64()
	}

	y := make([]float64, n)
	for t := 0; t < n; t++ {
		y[t] = 2.0 + 3.0*X.At(t, 0) - 1.5*X.At(t, 1) + e[t]
	}

	return y, X
}

// normalResiduals draws an i.i.d. standard normal vector.
func normalResiduals(n int, seed int64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	e := make([]float64, n)
	for i := range e {
		e[i] = rng.NormFloat64()
	}
	return e
}
