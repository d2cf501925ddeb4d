package tests

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/IvanChernomyrdin/go-recipe-api/internal/server/repository"
	serr "github.com/IvanChernomyrdin/go-recipe-api/internal/shared/errors"
)

func TestHealthRepository_Ping(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	repo := repository.NewHealthRepository(db)

	mock.ExpectPing()
	require.NoError(t, repo.Ping(context.Background()))

	mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	err = repo.Ping(context.Background())
	require.ErrorIs(t, err, serr.ErrInternal)

	require.NoError(t, mock.ExpectationsWereMet())
}
