package domain

import "time"

// CalculationRecord is one stored line of calculation history: which
// function ran, its parameters as a JSON document, and the numeric result.
type CalculationRecord struct {
	ID        string    `json:"id"`
	Function  string    `json:"function"`
	Inputs    string    `json:"inputs"`
	Result    float64   `json:"result"`
	CreatedAt time.Time `json:"created_at"`
}
