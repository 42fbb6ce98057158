package annuity

import "math"

// BalanceFunc evaluates an annuity balance equation and its first derivative
// at a given periodic rate. It reports the domain error when the equation is
// undefined at that rate. The solver depends only on this type, so a
// different equation (e.g. one with a non-constant payment) can be swapped in
// without touching the iteration.
type BalanceFunc func(rate float64) (value, derivative float64, err error)

// Balance returns the level-payment annuity balance equation
//
//	f(r) = fv + pv·(1+r)^n + pmt·((1+r)^n − 1)·(1 + r·type)/r
//
// together with its analytic derivative with respect to r. The payment term
// is singular at r = 0, so evaluating the returned function at rate 0 yields
// the domain error.
func Balance(periodCount int, payment, presentValue, futureValue float64, timing Timing) BalanceFunc {
	n := float64(periodCount)
	ty := float64(timing)

	return func(rate float64) (float64, float64, error) {
		if rate == 0 {
			return 0, 0, numErrorf("balance equation undefined at rate 0")
		}

		pow := math.Pow(1+rate, n)
		dpow := n * math.Pow(1+rate, n-1)

		value := futureValue + presentValue*pow +
			payment*(pow-1)*(1+rate*ty)/rate

		// d/dr of the payment term via the quotient rule on
		// g(r) = (pow−1)·(1+r·type)/r.
		num := (dpow*(1+rate*ty)+(pow-1)*ty)*rate - (pow-1)*(1+rate*ty)
		derivative := presentValue*dpow + payment*num/(rate*rate)

		return value, derivative, nil
	}
}
