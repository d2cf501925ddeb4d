// Package repository содержит реализации слоя доступа к данным (Repository layer).
//
// Репозитории инкапсулируют работу с БД и не содержат бизнес-логики.
// Все ошибки приводятся к доменным ошибкам из internal/shared/errors.
// Все выборки доменных сущностей фильтруются по владельцу (user_id).
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"

	serr "github.com/IvanChernomyrdin/go-recipe-api/internal/shared/errors"
)

// pgUniqueViolation: код ошибки unique_violation.
const pgUniqueViolation = "23505"

// DBTX: общее подмножество *sql.DB и *sql.Tx, которое нужно репозиториям.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// withTx выполняет fn в транзакции: commit при успехе, rollback при ошибке или панике.
func withTx(ctx context.Context, db *sql.DB, fn func(tx DBTX) error) (err error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return internal("begin tx", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
			return
		}
		if cErr := tx.Commit(); cErr != nil {
			err = internal("commit tx", cErr)
		}
	}()

	return fn(tx)
}

// isUniqueViolation сообщает, что err: нарушение уникальности в PostgreSQL.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

// internal оборачивает ошибку БД в ErrInternal, сохраняя текст причины для логов.
func internal(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", serr.ErrInternal, op, err)
}

// uuidArray кодирует идентификаторы как литерал массива PostgreSQL ("{a,b}"),
// в запросе он приводится через $n::uuid[].
func uuidArray(ids []uuid.UUID) string {
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, id.String())
	}
	return "{" + strings.Join(parts, ",") + "}"
}

// uniqueIDs убирает повторы, сохраняя порядок.
func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
