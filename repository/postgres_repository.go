package repository

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"tvm-service/domain"
)

// PostgresRepository persists calculation history in a Postgres table:
//
//	CREATE TABLE calculations (
//	    id         UUID PRIMARY KEY,
//	    function   TEXT NOT NULL,
//	    inputs     JSONB NOT NULL,
//	    result     DOUBLE PRECISION NOT NULL,
//	    created_at TIMESTAMPTZ NOT NULL
//	);
type PostgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository opens a connection pool for the given DSN and
// verifies it with a ping.
func NewPostgresRepository(dsn string) (*PostgresRepository, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return &PostgresRepository{db: db}, nil
}

func (r *PostgresRepository) Save(record domain.CalculationRecord) error {
	_, err := r.db.Exec(
		`INSERT INTO calculations (id, function, inputs, result, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		record.ID, record.Function, record.Inputs, record.Result, record.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert calculation: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Recent(limit int) ([]domain.CalculationRecord, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.db.Query(
		`SELECT id, function, inputs, result, created_at
		 FROM calculations ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("query calculations: %w", err)
	}
	defer rows.Close()

	var records []domain.CalculationRecord
	for rows.Next() {
		var rec domain.CalculationRecord
		if err := rows.Scan(&rec.ID, &rec.Function, &rec.Inputs, &rec.Result, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan calculation: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Close releases the connection pool.
func (r *PostgresRepository) Close() error {
	return r.db.Close()
}
