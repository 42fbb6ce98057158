package service

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"tvm-service/annuity"
	"tvm-service/domain"
)

type ScanService struct{}

func NewScanService() *ScanService {
	return &ScanService{}
}

// ScanRoots sweeps evenly spaced starting guesses through the rate solver
// and collects the distinct roots it converges to. Newton iteration returns
// only the root in a guess's basin of attraction, so the sweep is how a
// caller discovers whether the balance equation has several roots. Guesses
// that fail to converge (or land on a singularity) are simply skipped.
func (s *ScanService) ScanRoots(input domain.ScanInput) (domain.ScanResult, error) {
	if input.Periods < 1 {
		return domain.ScanResult{}, errors.New("periods must be at least 1")
	}
	if input.Periods > MaxPeriods {
		return domain.ScanResult{}, fmt.Errorf("periods exceeds the maximum of %d", MaxPeriods)
	}
	if !annuity.Timing(input.Timing).Valid() {
		return domain.ScanResult{}, errors.New("timing must be 0 (end) or 1 (begin)")
	}
	if input.GuessMin >= input.GuessMax {
		return domain.ScanResult{}, errors.New("guess_min must be below guess_max")
	}

	steps := input.Steps
	if steps <= 0 {
		steps = DefaultScanSteps
	}
	if steps > MaxScanSteps {
		return domain.ScanResult{}, fmt.Errorf("steps exceeds the maximum of %d", MaxScanSteps)
	}

	fn := annuity.Balance(
		input.Periods, input.Payment, input.PresentValue, input.FutureValue,
		annuity.Timing(input.Timing),
	)

	stride := (input.GuessMax - input.GuessMin) / float64(steps)
	var roots []domain.ScanRoot

	for i := 0; i < steps; i++ {
		guess := input.GuessMin + float64(i)*stride

		rate, err := annuity.SolveRate(fn, guess)
		if err != nil {
			continue
		}
		if containsRoot(roots, rate) {
			continue
		}
		roots = append(roots, domain.ScanRoot{Rate: rate, Guess: guess})
	}

	sort.Slice(roots, func(i, j int) bool {
		return roots[i].Rate < roots[j].Rate
	})

	return domain.ScanResult{Roots: roots, Attempted: steps}, nil
}

func containsRoot(roots []domain.ScanRoot, rate float64) bool {
	for _, r := range roots {
		if math.Abs(r.Rate-rate) < ScanRootTolerance {
			return true
		}
	}
	return false
}
