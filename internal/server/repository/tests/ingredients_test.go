package tests

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/stretchr/testify/require"

	"github.com/IvanChernomyrdin/go-recipe-api/internal/server/models"
	"github.com/IvanChernomyrdin/go-recipe-api/internal/server/repository"
	serr "github.com/IvanChernomyrdin/go-recipe-api/internal/shared/errors"
)

func TestIngredientsRepository_List(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository.NewIngredientsRepository(db)

	userID := uuid.New()

	mock.ExpectQuery(`FROM ingredients n WHERE n.user_id = \$1 ORDER BY n.name DESC`).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "name"}).
			AddRow(uuid.New(), userID, "Salt").
			AddRow(uuid.New(), userID, "Kale"))

	got, err := repo.List(context.Background(), userID, models.NameFilter{})
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "Salt", got[0].String())
}

func TestIngredientsRepository_List_AssignedOnly(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository.NewIngredientsRepository(db)

	userID := uuid.New()

	mock.ExpectQuery(`FROM recipe_ingredients l WHERE l.ingredient_id = n.id`).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "name"}).
			AddRow(uuid.New(), userID, "Eggs"))

	got, err := repo.List(context.Background(), userID, models.NameFilter{AssignedOnly: true})
	require.NoError(t, err)
	require.Len(t, got, 1)
}

func TestIngredientsRepository_Create_Duplicate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository.NewIngredientsRepository(db)

	mock.ExpectQuery(`INSERT INTO ingredients`).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	_, err := repo.Create(context.Background(), uuid.New(), "Salt")
	require.ErrorIs(t, err, serr.ErrAlreadyExists)
}

func TestIngredientsRepository_Rename_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository.NewIngredientsRepository(db)

	mock.ExpectQuery(`UPDATE ingredients`).WillReturnError(sql.ErrNoRows)

	_, err := repo.Rename(context.Background(), uuid.New(), uuid.New(), "Pepper")
	require.ErrorIs(t, err, serr.ErrNotFound)
}

func TestIngredientsRepository_Delete_InternalError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository.NewIngredientsRepository(db)

	mock.ExpectExec(`DELETE FROM ingredients`).WillReturnError(sql.ErrConnDone)

	err := repo.Delete(context.Background(), uuid.New(), uuid.New())
	require.ErrorIs(t, err, serr.ErrInternal)
}
