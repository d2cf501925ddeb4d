package tests

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/IvanChernomyrdin/go-recipe-api/internal/server/repository"
	serr "github.com/IvanChernomyrdin/go-recipe-api/internal/shared/errors"
)

func TestTokensRepository_Upsert_OK(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository.NewTokensRepository(db)

	userID := uuid.New()
	hash := []byte("hash")

	mock.ExpectExec(`INSERT INTO auth_tokens .+ ON CONFLICT \(user_id\)`).
		WithArgs(userID, hash).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Upsert(context.Background(), userID, hash))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTokensRepository_Upsert_InternalError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository.NewTokensRepository(db)

	mock.ExpectExec(`INSERT INTO auth_tokens`).WillReturnError(sql.ErrConnDone)

	err := repo.Upsert(context.Background(), uuid.New(), []byte("hash"))
	require.ErrorIs(t, err, serr.ErrInternal)
}

func TestTokensRepository_GetByKeyHash_OK(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository.NewTokensRepository(db)

	userID := uuid.New()
	hash := []byte("hash")
	now := time.Now()

	mock.ExpectQuery(`FROM auth_tokens t\s+JOIN users u`).
		WithArgs(hash).
		WillReturnRows(sqlmock.NewRows([]string{
			"key_hash", "user_id", "created_at",
			"id", "email", "password_hash", "name", "is_active", "is_staff", "is_superuser", "created_at",
		}).AddRow(hash, userID, now, userID, "test@mail.com", "h", "Test", true, false, false, now))

	tok, u, err := repo.GetByKeyHash(context.Background(), hash)
	require.NoError(t, err)
	require.Equal(t, userID, tok.UserID)
	require.Equal(t, hash, tok.KeyHash)
	require.Equal(t, "test@mail.com", u.Email)
}

// Неизвестный токен
func TestTokensRepository_GetByKeyHash_Unknown(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository.NewTokensRepository(db)

	mock.ExpectQuery(`FROM auth_tokens`).WillReturnError(sql.ErrNoRows)

	_, _, err := repo.GetByKeyHash(context.Background(), []byte("nope"))
	require.ErrorIs(t, err, serr.ErrUnauthorized)
}

func TestTokensRepository_Delete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository.NewTokensRepository(db)

	userID := uuid.New()
	mock.ExpectExec(`DELETE FROM auth_tokens WHERE user_id=`).
		WithArgs(userID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.Delete(context.Background(), userID))
	require.NoError(t, mock.ExpectationsWereMet())
}
