package annuity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInterestAndPrincipalSumToPayment(t *testing.T) {
	tests := []struct {
		name    string
		rate    float64
		periods int
		pv      float64
		fv      float64
		timing  Timing
	}{
		{name: "monthly loan", rate: 0.10 / 12, periods: 36, pv: 8000, timing: End},
		{name: "annuity due", rate: 0.10, periods: 4, pv: 1000, timing: Begin},
		{name: "with future value", rate: 0.05, periods: 6, pv: 200, fv: 100, timing: End},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pmt, err := Payment(tt.rate, tt.periods, tt.pv, tt.fv, tt.timing)
			require.NoError(t, err)

			for period := 1; period <= tt.periods; period++ {
				interest, err := InterestPortion(tt.rate, period, tt.periods, tt.pv, tt.fv, tt.timing)
				require.NoError(t, err)
				principal, err := PrincipalPortion(tt.rate, period, tt.periods, tt.pv, tt.fv, tt.timing)
				require.NoError(t, err)

				require.InDelta(t, pmt, interest+principal, 1e-9)
			}
		})
	}
}

func TestPrincipalPortionsRepayThePrincipal(t *testing.T) {
	const (
		rate    = 0.004
		periods = 24
		pv      = 12000.0
	)

	var repaid float64
	for period := 1; period <= periods; period++ {
		principal, err := PrincipalPortion(rate, period, periods, pv, 0, End)
		require.NoError(t, err)
		repaid += principal
	}

	// Outflows are negative; summed principal portions retire the debt.
	require.InDelta(t, -pv, repaid, 1e-6)
}

func TestPaymentUndefinedAtRateZero(t *testing.T) {
	_, err := Payment(0, 12, 1000, 0, End)

	require.ErrorIs(t, err, ErrNum)
}
