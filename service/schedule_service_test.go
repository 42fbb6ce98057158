package service

import (
	"math"
	"testing"

	"tvm-service/domain"
	"tvm-service/repository"
)

func TestBuildSchedule_ThreePeriodLoan(t *testing.T) {

	cache := repository.NewMockCache()
	service := NewScheduleService(cache)

	input := domain.ScheduleInput{
		Rate:         0.10,
		Periods:      3,
		PresentValue: 1000,
	}

	result, err := service.BuildSchedule(input)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.Rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(result.Rows))
	}

	// PMT(0.10, 3, 1000) = -402.11; first period interest is -100.
	first := result.Rows[0]
	if math.Abs(first.Payment-(-402.11)) > 0.01 {
		t.Errorf("expected payment -402.11, got %v", first.Payment)
	}
	if math.Abs(first.Interest-(-100.0)) > 0.01 {
		t.Errorf("expected first interest -100.00, got %v", first.Interest)
	}

	// The final balance must amortize to zero.
	last := result.Rows[len(result.Rows)-1]
	if math.Abs(last.Balance) > 0.01 {
		t.Errorf("expected final balance 0, got %v", last.Balance)
	}

	if result.Explanation == "" {
		t.Errorf("expected a fallback explanation")
	}
}

func TestBuildSchedule_InterestPlusPrincipalEqualsPayment(t *testing.T) {

	cache := repository.NewMockCache()
	service := NewScheduleService(cache)

	result, err := service.BuildSchedule(domain.ScheduleInput{
		Rate:         0.004,
		Periods:      24,
		PresentValue: 12000,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, row := range result.Rows {
		if math.Abs(row.Interest+row.Principal-row.Payment) > 0.02 {
			t.Errorf("period %d: split %v + %v does not match payment %v",
				row.Period, row.Interest, row.Principal, row.Payment)
		}
	}
}

func TestBuildSchedule_CachesResult(t *testing.T) {

	cache := repository.NewMockCache()
	service := NewScheduleService(cache)

	input := domain.ScheduleInput{
		Rate:         0.10,
		Periods:      3,
		PresentValue: 1000,
	}

	first, err := service.BuildSchedule(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(cache.Data) != 1 {
		t.Fatalf("expected 1 cached schedule, got %d", len(cache.Data))
	}

	second, err := service.BuildSchedule(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(second.Rows) != len(first.Rows) || second.TotalPaid != first.TotalPaid {
		t.Errorf("cached schedule differs from computed one")
	}
}

func TestBuildSchedule_RateZeroIsRejected(t *testing.T) {

	cache := repository.NewMockCache()
	service := NewScheduleService(cache)

	_, err := service.BuildSchedule(domain.ScheduleInput{
		Rate:         0,
		Periods:      12,
		PresentValue: 1000,
	})

	if err == nil {
		t.Errorf("expected error for rate 0")
	}
}
