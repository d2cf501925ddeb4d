package repository

import (
	"context"
	"database/sql"
)

// HealthRepository проверяет доступность базы данных.
type HealthRepository struct {
	db *sql.DB
}

func NewHealthRepository(db *sql.DB) *HealthRepository {
	return &HealthRepository{db: db}
}

func (r *HealthRepository) Ping(ctx context.Context) error {
	if err := r.db.PingContext(ctx); err != nil {
		return internal("ping", err)
	}
	return nil
}
