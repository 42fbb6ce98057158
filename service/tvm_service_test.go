package service

import (
	"errors"
	"math"
	"testing"

	"tvm-service/annuity"
	"tvm-service/domain"
)

type MockCalculationRepository struct {
	SaveCalled bool
	ForceError bool
	Records    []domain.CalculationRecord
}

func (m *MockCalculationRepository) Save(record domain.CalculationRecord) error {
	m.SaveCalled = true
	if m.ForceError {
		return errors.New("save error")
	}
	m.Records = append(m.Records, record)
	return nil
}

func (m *MockCalculationRepository) Recent(limit int) ([]domain.CalculationRecord, error) {
	if limit <= 0 || limit > len(m.Records) {
		limit = len(m.Records)
	}
	return m.Records[len(m.Records)-limit:], nil
}

func TestRate_Converges(t *testing.T) {

	mockRepo := &MockCalculationRepository{}
	service := NewTVMService(mockRepo)

	input := domain.RateInput{
		Periods:      10,
		Payment:      -100,
		PresentValue: 800,
	}

	result, err := service.Rate(input)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if math.Abs(result.Rate-0.0427775) > 1e-4 {
		t.Errorf("expected rate near 0.0428, got %v", result.Rate)
	}

	if !mockRepo.SaveCalled {
		t.Errorf("expected repository Save to be called")
	}
}

func TestRate_SaveFailureIsNonCritical(t *testing.T) {

	mockRepo := &MockCalculationRepository{ForceError: true}
	service := NewTVMService(mockRepo)

	input := domain.RateInput{
		Periods:      10,
		Payment:      -100,
		PresentValue: 800,
	}

	_, err := service.Rate(input)

	if err != nil {
		t.Fatalf("a failed history write must not fail the calculation: %v", err)
	}
}

func TestRate_NonConvergence(t *testing.T) {

	mockRepo := &MockCalculationRepository{}
	service := NewTVMService(mockRepo)

	// Zero payment leaves f(r) = pv·(1+r)^n with no root the iteration
	// budget can reach; the domain error must surface, not a partial rate.
	input := domain.RateInput{
		Periods:      10,
		Payment:      0,
		PresentValue: 1000,
	}

	_, err := service.Rate(input)

	if !errors.Is(err, annuity.ErrNum) {
		t.Fatalf("expected #NUM! error, got %v", err)
	}

	if mockRepo.SaveCalled {
		t.Errorf("repository Save should NOT be called on failure")
	}
}

func TestRate_InvalidPeriods(t *testing.T) {

	mockRepo := &MockCalculationRepository{}
	service := NewTVMService(mockRepo)

	_, err := service.Rate(domain.RateInput{Periods: 0, Payment: -100, PresentValue: 800})

	if err == nil {
		t.Errorf("expected error for invalid periods")
	}

	if mockRepo.SaveCalled {
		t.Errorf("repository Save should NOT be called")
	}
}

func TestInterestPayment_FirstPeriod(t *testing.T) {

	mockRepo := &MockCalculationRepository{}
	service := NewTVMService(mockRepo)

	input := domain.InterestInput{
		Rate:         0.10 / 12,
		Period:       1,
		Periods:      36,
		PresentValue: 8000,
	}

	result, err := service.InterestPayment(input)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := -66.6667
	if math.Abs(result.Interest-expected) > 1e-4 {
		t.Errorf("expected %.4f, got %.4f", expected, result.Interest)
	}
}

func TestInterestPayment_PeriodOutOfRange(t *testing.T) {

	mockRepo := &MockCalculationRepository{}
	service := NewTVMService(mockRepo)

	for _, period := range []int{0, 13} {
		input := domain.InterestInput{
			Rate:         0.05,
			Period:       period,
			Periods:      12,
			PresentValue: 1000,
		}

		_, err := service.InterestPayment(input)

		if !errors.Is(err, annuity.ErrNum) {
			t.Errorf("period %d: expected #NUM! error, got %v", period, err)
		}
	}

	if mockRepo.SaveCalled {
		t.Errorf("repository Save should NOT be called")
	}
}

func TestStraightLineInterest_TerminalPeriodIsZero(t *testing.T) {

	mockRepo := &MockCalculationRepository{}
	service := NewTVMService(mockRepo)

	input := domain.StraightLineInput{
		Rate:      0.08,
		Period:    12,
		Periods:   12,
		Principal: 50000,
	}

	result, err := service.StraightLineInterest(input)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Interest != 0 {
		t.Errorf("expected exactly 0 at maturity, got %v", result.Interest)
	}
}

func TestHistory_ReturnsSavedRecords(t *testing.T) {

	mockRepo := &MockCalculationRepository{}
	service := NewTVMService(mockRepo)

	if _, err := service.Rate(domain.RateInput{Periods: 10, Payment: -100, PresentValue: 800}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	records, err := service.History(10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].Function != "RATE" {
		t.Errorf("expected RATE record, got %q", records[0].Function)
	}
	if records[0].ID == "" {
		t.Errorf("expected record ID to be set")
	}
}
