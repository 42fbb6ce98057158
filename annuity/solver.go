package annuity

import "math"

// Solver policy constants. These are contract values, not tuning knobs:
// tests and callers rely on the iteration budget and the convergence
// tolerance being exactly these.
const (
	// MaxIterations caps the Newton-Raphson loop; it is the only bound on
	// work performed per call.
	MaxIterations = 128
	// Precision is the convergence tolerance on successive rate iterates.
	Precision = 1e-8
	// DefaultGuess is the starting rate used when a caller has none.
	DefaultGuess = 0.1
)

// SolveRate finds a rate r with fn(r) ≈ 0 by Newton-Raphson iteration from
// guess. It returns the domain error if fn reports undefined at any iterate,
// if the derivative vanishes, or if the iteration budget runs out before the
// step size drops below Precision. An unconverged value is never returned.
// A converged iterate within Precision of 0 is the balance equation's
// singularity, not a usable rate, and is also the domain error: a cash flow
// whose true rate is 0 must fail rather than yield a near-zero residue.
//
// Newton iteration converges to the root in the guess's basin of attraction;
// equations with several roots need a different guess per root. Each call is
// independent and keeps no state, so concurrent use needs no synchronization.
func SolveRate(fn BalanceFunc, guess float64) (float64, error) {
	rate := guess

	for i := 0; i < MaxIterations; i++ {
		value, derivative, err := fn(rate)
		if err != nil {
			return 0, err
		}
		if derivative == 0 {
			return 0, numErrorf("zero derivative at rate %g (iteration %d)", rate, i)
		}

		next := rate - value/derivative
		if math.Abs(next-rate) < Precision {
			if math.Abs(next) < Precision {
				return 0, numErrorf("rate converged to the singularity at 0")
			}
			return next, nil
		}
		rate = next
	}

	return 0, numErrorf("no convergence after %d iterations", MaxIterations)
}
