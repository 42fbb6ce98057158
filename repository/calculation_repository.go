package repository

import "tvm-service/domain"

// CalculationRepository stores calculation history. Save failures are
// treated as non-critical by the service layer; a calculation result is
// never withheld because its record could not be written.
type CalculationRepository interface {
	Save(record domain.CalculationRecord) error
	Recent(limit int) ([]domain.CalculationRecord, error)
}
