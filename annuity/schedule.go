package annuity

import "math"

// Closed-form amortization helpers. All of them share the compound factor
// (1+r)^k and are singular at r = 0, where the payment term of the annuity
// equation degenerates; rate 0 yields the domain error rather than a limit
// value, matching the balance equation's contract.

// Payment returns the level payment that amortizes presentValue to
// futureValue over periodCount periods at the given rate.
func Payment(rate float64, periodCount int, presentValue, futureValue float64, timing Timing) (float64, error) {
	if rate == 0 {
		return 0, numErrorf("payment undefined at rate 0")
	}
	pow := math.Pow(1+rate, float64(periodCount))
	return -(presentValue*pow + futureValue) / ((1 + rate*float64(timing)) * (pow - 1) / rate), nil
}

// balanceAfter returns the outstanding balance (as a future value, signed
// from the borrower's perspective) after k payments of pmt.
func balanceAfter(rate float64, k int, pmt, presentValue float64, timing Timing) float64 {
	pow := math.Pow(1+rate, float64(k))
	return -(presentValue*pow + pmt*(1+rate*float64(timing))*(pow-1)/rate)
}

// InterestPortion returns the interest component of the payment due at the
// 1-based period: the rate applied to the balance outstanding after period−1
// payments. With Begin timing the first period accrues no interest and later
// periods discount one period of compounding.
//
// Callers are expected to have validated period and timing already; this is
// the delegate behind IPMT.
func InterestPortion(rate float64, period, periodCount int, presentValue, futureValue float64, timing Timing) (float64, error) {
	if timing == Begin && period == 1 {
		return 0, nil
	}

	pmt, err := Payment(rate, periodCount, presentValue, futureValue, timing)
	if err != nil {
		return 0, err
	}

	interest := balanceAfter(rate, period-1, pmt, presentValue, timing) * rate
	if timing == Begin {
		interest /= 1 + rate
	}
	return interest, nil
}

// PrincipalPortion returns the principal component of the payment due at the
// 1-based period: the level payment minus its interest portion.
func PrincipalPortion(rate float64, period, periodCount int, presentValue, futureValue float64, timing Timing) (float64, error) {
	pmt, err := Payment(rate, periodCount, presentValue, futureValue, timing)
	if err != nil {
		return 0, err
	}
	interest, err := InterestPortion(rate, period, periodCount, presentValue, futureValue, timing)
	if err != nil {
		return 0, err
	}
	return pmt - interest, nil
}
