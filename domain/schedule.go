package domain

type ScheduleInput struct {
	Rate         float64 `json:"rate"`
	Periods      int     `json:"periods"`
	PresentValue float64 `json:"present_value"`
	FutureValue  float64 `json:"future_value"`
	Timing       int     `json:"timing"`
}

// ScheduleRow is one line of an amortization table. Money amounts are
// rounded to 2 decimals and keep spreadsheet signs (outflows negative).
type ScheduleRow struct {
	Period    int     `json:"period"`
	Payment   float64 `json:"payment"`
	Interest  float64 `json:"interest"`
	Principal float64 `json:"principal"`
	Balance   float64 `json:"balance"`
}

type ScheduleResult struct {
	Rows          []ScheduleRow `json:"rows"`
	TotalInterest float64       `json:"total_interest"`
	TotalPaid     float64       `json:"total_paid"`
	Explanation   string        `json:"explanation,omitempty"`
}
