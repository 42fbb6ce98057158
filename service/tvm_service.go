package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"tvm-service/annuity"
	"tvm-service/domain"
	"tvm-service/repository"
)

// roundCents rounds a money amount to 2 decimals without binary-float drift.
func roundCents(value float64) float64 {
	out, _ := decimal.NewFromFloat(value).Round(2).Float64()
	return out
}

type TVMService struct {
	repo repository.CalculationRepository
}

// NewTVMService creates a new TVMService with the given history repository.
func NewTVMService(repo repository.CalculationRepository) *TVMService {
	return &TVMService{repo: repo}
}

// Rate solves for the periodic rate implied by the cash-flow parameters.
// A zero guess means the caller omitted one and gets the standard 0.1.
func (s *TVMService) Rate(input domain.RateInput) (domain.RateResult, error) {
	if input.Periods < 1 {
		return domain.RateResult{}, errors.New("periods must be at least 1")
	}
	if input.Periods > MaxPeriods {
		return domain.RateResult{}, fmt.Errorf("periods exceeds the maximum of %d", MaxPeriods)
	}
	if !annuity.Timing(input.Timing).Valid() {
		return domain.RateResult{}, errors.New("timing must be 0 (end) or 1 (begin)")
	}

	guess := input.Guess
	if guess == 0 {
		guess = annuity.DefaultGuess
	}

	rate, err := annuity.RATE(
		input.Periods, input.Payment, input.PresentValue, input.FutureValue,
		annuity.Timing(input.Timing), guess,
	)
	if err != nil {
		return domain.RateResult{}, err
	}

	s.record("RATE", input, rate)

	return domain.RateResult{Rate: rate}, nil
}

// InterestPayment returns the interest portion of one payment of a
// level-payment annuity. The period/timing contract itself is enforced by
// the annuity package; the service only guards request sanity.
func (s *TVMService) InterestPayment(input domain.InterestInput) (domain.InterestResult, error) {
	if input.Periods < 1 {
		return domain.InterestResult{}, errors.New("periods must be at least 1")
	}
	if input.Periods > MaxPeriods {
		return domain.InterestResult{}, fmt.Errorf("periods exceeds the maximum of %d", MaxPeriods)
	}
	if input.PresentValue > MaxPrincipal || input.PresentValue < -MaxPrincipal {
		return domain.InterestResult{}, fmt.Errorf("present value exceeds the maximum of %.0f", MaxPrincipal)
	}

	interest, err := annuity.IPMT(
		input.Rate, input.Period, input.Periods,
		input.PresentValue, input.FutureValue, annuity.Timing(input.Timing),
	)
	if err != nil {
		return domain.InterestResult{}, err
	}

	s.record("IPMT", input, interest)

	return domain.InterestResult{Interest: interest}, nil
}

// StraightLineInterest estimates interest at a period under straight-line
// principal amortization. Periods past maturity extrapolate, matching the
// core function; negative periods are rejected here.
func (s *TVMService) StraightLineInterest(input domain.StraightLineInput) (domain.InterestResult, error) {
	if input.Periods < 1 {
		return domain.InterestResult{}, errors.New("periods must be at least 1")
	}
	if input.Periods > MaxPeriods {
		return domain.InterestResult{}, fmt.Errorf("periods exceeds the maximum of %d", MaxPeriods)
	}
	if input.Period < 0 {
		return domain.InterestResult{}, errors.New("period must not be negative")
	}
	if input.Principal > MaxPrincipal || input.Principal < -MaxPrincipal {
		return domain.InterestResult{}, fmt.Errorf("principal exceeds the maximum of %.0f", MaxPrincipal)
	}

	interest := annuity.ISPMT(input.Rate, input.Period, input.Periods, input.Principal)

	s.record("ISPMT", input, interest)

	return domain.InterestResult{Interest: interest}, nil
}

// History returns the most recent calculation records.
func (s *TVMService) History(limit int) ([]domain.CalculationRecord, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return s.repo.Recent(limit)
}

// record stores a history line. Failures are logged, never surfaced: the
// calculation already succeeded.
func (s *TVMService) record(function string, inputs any, result float64) {
	payload, err := json.Marshal(inputs)
	if err != nil {
		log.Printf("Warning: failed to encode %s inputs: %v", function, err)
		return
	}

	rec := domain.CalculationRecord{
		ID:        uuid.NewString(),
		Function:  function,
		Inputs:    string(payload),
		Result:    result,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Save(rec); err != nil {
		log.Printf("Warning: failed to save %s calculation: %v", function, err)
	}
}
