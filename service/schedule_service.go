package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"tvm-service/annuity"
	"tvm-service/domain"
	"tvm-service/repository"
)

type ScheduleService struct {
	cache repository.CacheRepository
	ai    *AIService
}

func NewScheduleService(cache repository.CacheRepository) *ScheduleService {
	return &ScheduleService{
		cache: cache,
		ai:    NewAIService(),
	}
}

// BuildSchedule expands the cash-flow parameters into a full amortization
// table: one row per period with the level payment split into interest and
// principal, and the balance outstanding after the payment. Identical
// parameters always produce the identical table, so results are cached as
// JSON keyed by the inputs.
func (s *ScheduleService) BuildSchedule(input domain.ScheduleInput) (domain.ScheduleResult, error) {
	if input.Periods < 1 {
		return domain.ScheduleResult{}, errors.New("periods must be at least 1")
	}
	if input.Periods > MaxPeriods {
		return domain.ScheduleResult{}, fmt.Errorf("periods exceeds the maximum of %d", MaxPeriods)
	}
	if !annuity.Timing(input.Timing).Valid() {
		return domain.ScheduleResult{}, errors.New("timing must be 0 (end) or 1 (begin)")
	}
	if input.PresentValue > MaxPrincipal || input.PresentValue < -MaxPrincipal {
		return domain.ScheduleResult{}, fmt.Errorf("present value exceeds the maximum of %.0f", MaxPrincipal)
	}

	key := scheduleKey(input)
	if cached, ok := s.cache.Get(key); ok {
		var result domain.ScheduleResult
		if err := json.Unmarshal([]byte(cached), &result); err == nil {
			return result, nil
		}
		// Unreadable entry: fall through and recompute.
	}

	timing := annuity.Timing(input.Timing)

	pmt, err := annuity.Payment(input.Rate, input.Periods, input.PresentValue, input.FutureValue, timing)
	if err != nil {
		return domain.ScheduleResult{}, err
	}

	rows := make([]domain.ScheduleRow, 0, input.Periods)
	balance := input.PresentValue
	totalInterest := 0.0

	for period := 1; period <= input.Periods; period++ {
		interest, err := annuity.InterestPortion(
			input.Rate, period, input.Periods,
			input.PresentValue, input.FutureValue, timing,
		)
		if err != nil {
			return domain.ScheduleResult{}, err
		}
		principal, err := annuity.PrincipalPortion(
			input.Rate, period, input.Periods,
			input.PresentValue, input.FutureValue, timing,
		)
		if err != nil {
			return domain.ScheduleResult{}, err
		}

		balance += principal
		totalInterest += interest

		rows = append(rows, domain.ScheduleRow{
			Period:    period,
			Payment:   roundCents(pmt),
			Interest:  roundCents(interest),
			Principal: roundCents(principal),
			Balance:   roundCents(balance),
		})
	}

	result := domain.ScheduleResult{
		Rows:          rows,
		TotalInterest: roundCents(totalInterest),
		TotalPaid:     roundCents(pmt * float64(input.Periods)),
	}
	result.Explanation = s.ai.GenerateScheduleExplanation(input, result)

	if payload, err := json.Marshal(result); err == nil {
		if err := s.cache.Set(key, string(payload)); err != nil {
			log.Printf("Warning: failed to cache schedule: %v", err)
		}
	}

	return result, nil
}

func scheduleKey(input domain.ScheduleInput) string {
	return fmt.Sprintf("schedule:%d:%d:%g:%g:%g",
		input.Periods, input.Timing, input.Rate, input.PresentValue, input.FutureValue)
}
