package domain

// RateInput are the cash-flow parameters for an implied-rate calculation.
// Timing follows the spreadsheet convention: 0 = payments at period end,
// 1 = payments at period start.
type RateInput struct {
	Periods      int     `json:"periods"`
	Payment      float64 `json:"payment"`
	PresentValue float64 `json:"present_value"`
	FutureValue  float64 `json:"future_value"`
	Timing       int     `json:"timing"`
	Guess        float64 `json:"guess"`
}

type RateResult struct {
	Rate        float64 `json:"rate"`
	Explanation string  `json:"explanation,omitempty"`
}

// InterestInput identifies one payment of a level-payment annuity whose
// interest portion is requested. Period is 1-based.
type InterestInput struct {
	Rate         float64 `json:"rate"`
	Period       int     `json:"period"`
	Periods      int     `json:"periods"`
	PresentValue float64 `json:"present_value"`
	FutureValue  float64 `json:"future_value"`
	Timing       int     `json:"timing"`
}

type InterestResult struct {
	Interest float64 `json:"interest"`
}

// StraightLineInput parameterizes a straight-line interest estimate.
// Period is 0-based; period == periods is the maturity point.
type StraightLineInput struct {
	Rate      float64 `json:"rate"`
	Period    int     `json:"period"`
	Periods   int     `json:"periods"`
	Principal float64 `json:"principal"`
}
