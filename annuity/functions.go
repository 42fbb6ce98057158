package annuity

// IPMT returns the interest portion of the payment due at the 1-based period
// of a level-payment annuity. The only validation on this path is the
// spreadsheet contract: timing must be End or Begin and period must lie in
// [1, periodCount]; either violation is the domain error. Everything else is
// delegated to the amortization split.
func IPMT(rate float64, period, periodCount int, presentValue, futureValue float64, timing Timing) (float64, error) {
	if !timing.Valid() {
		return 0, numErrorf("timing must be 0 or 1, got %d", int(timing))
	}
	if period < 1 || period > periodCount {
		return 0, numErrorf("period %d outside [1, %d]", period, periodCount)
	}
	return InterestPortion(rate, period, periodCount, presentValue, futureValue, timing)
}

// ISPMT returns the interest due at a period under straight-line principal
// amortization: the principal shrinks by a flat principal/periodCount each
// period and interest is charged on what remains. The period index is
// 0-based; period 0 charges interest on the full principal and period ==
// periodCount is exactly 0, with no floating-point residue.
//
// No preconditions are checked. A period beyond periodCount keeps
// extrapolating the declining balance below zero; callers wanting bounds
// must enforce them.
func ISPMT(rate float64, period, periodCount int, principalRemaining float64) float64 {
	if period == periodCount {
		return 0
	}
	principalPayment := principalRemaining / float64(periodCount)
	return -rate * (principalRemaining - float64(period)*principalPayment)
}

// RATE solves for the periodic rate implied by the other cash-flow
// parameters, iterating the annuity balance equation from guess (use
// DefaultGuess when the caller has none). Non-convergence within
// MaxIterations, a rate iterate of exactly 0, and a vanishing derivative all
// yield the domain error.
func RATE(periodCount int, payment, presentValue, futureValue float64, timing Timing, guess float64) (float64, error) {
	return SolveRate(Balance(periodCount, payment, presentValue, futureValue, timing), guess)
}
