package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/IvanChernomyrdin/go-recipe-api/internal/server/models"
	serr "github.com/IvanChernomyrdin/go-recipe-api/internal/shared/errors"
)

// TokensRepository хранит токены API (один на пользователя, только хэш ключа).
type TokensRepository struct {
	db *sql.DB
}

func NewTokensRepository(db *sql.DB) *TokensRepository {
	return &TokensRepository{db: db}
}

// Upsert сохраняет хэш нового ключа пользователя, заменяя предыдущий.
func (r *TokensRepository) Upsert(ctx context.Context, userID uuid.UUID, keyHash []byte) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO auth_tokens (user_id, key_hash)
		 VALUES ($1,$2)
		 ON CONFLICT (user_id)
		 DO UPDATE SET key_hash = EXCLUDED.key_hash, created_at = now()`,
		userID, keyHash,
	)
	if err != nil {
		return internal("upsert token", err)
	}
	return nil
}

// GetByKeyHash возвращает токен и его владельца.
//
// Ошибки:
//   - ErrUnauthorized: токен не найден
//   - ErrInternal: ошибка БД
func (r *TokensRepository) GetByKeyHash(ctx context.Context, keyHash []byte) (models.AuthToken, models.User, error) {
	var (
		t models.AuthToken
		u models.User
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT t.key_hash, t.user_id, t.created_at,
		        u.id, u.email, u.password_hash, u.name, u.is_active, u.is_staff, u.is_superuser, u.created_at
		   FROM auth_tokens t
		   JOIN users u ON u.id = t.user_id
		  WHERE t.key_hash=$1`,
		keyHash,
	).Scan(&t.KeyHash, &t.UserID, &t.CreatedAt,
		&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.IsActive, &u.IsStaff, &u.IsSuperuser, &u.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.AuthToken{}, models.User{}, serr.ErrUnauthorized
		}
		return models.AuthToken{}, models.User{}, internal("select token", err)
	}
	return t, u, nil
}

// Delete удаляет токен пользователя (logout). Отсутствие токена не ошибка.
func (r *TokensRepository) Delete(ctx context.Context, userID uuid.UUID) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM auth_tokens WHERE user_id=$1`, userID); err != nil {
		return internal("delete token", err)
	}
	return nil
}
