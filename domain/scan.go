package domain

// ScanInput sweeps a range of starting guesses through the rate solver.
// Newton iteration only finds the root nearest each guess, so sweeping the
// guess range surfaces equations with more than one root.
type ScanInput struct {
	Periods      int     `json:"periods"`
	Payment      float64 `json:"payment"`
	PresentValue float64 `json:"present_value"`
	FutureValue  float64 `json:"future_value"`
	Timing       int     `json:"timing"`
	GuessMin     float64 `json:"guess_min"`
	GuessMax     float64 `json:"guess_max"`
	Steps        int     `json:"steps"`
}

// ScanRoot is one distinct root found during a guess sweep, together with
// the first guess that converged to it.
type ScanRoot struct {
	Rate  float64 `json:"rate"`
	Guess float64 `json:"guess"`
}

type ScanResult struct {
	Roots     []ScanRoot `json:"roots"`
	Attempted int        `json:"attempted"`
}
