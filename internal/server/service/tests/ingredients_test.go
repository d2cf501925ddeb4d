package tests

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/IvanChernomyrdin/go-recipe-api/internal/server/models"
	"github.com/IvanChernomyrdin/go-recipe-api/internal/server/service"
	"github.com/IvanChernomyrdin/go-recipe-api/internal/server/service/mocks"
	serr "github.com/IvanChernomyrdin/go-recipe-api/internal/shared/errors"
)

func TestIngredientsService_Create(t *testing.T) {
	repo := mocks.NewMockIngredientsRepo(gomock.NewController(t))
	svc := service.NewIngredientsService(repo)

	userID := uuid.New()
	repo.EXPECT().
		Create(gomock.Any(), userID, "Cabbage").
		Return(models.Ingredient{ID: uuid.New(), UserID: userID, Name: "Cabbage"}, nil)

	ing, err := svc.Create(context.Background(), userID, "Cabbage")
	require.NoError(t, err)
	require.Equal(t, "Cabbage", ing.String())
	require.Equal(t, userID, ing.UserID)
}

func TestIngredientsService_Create_Blank(t *testing.T) {
	svc := service.NewIngredientsService(mocks.NewMockIngredientsRepo(gomock.NewController(t)))

	_, err := svc.Create(context.Background(), uuid.New(), "")
	require.ErrorIs(t, err, serr.ErrInvalidInput)
}

func TestIngredientsService_Rename_Duplicate(t *testing.T) {
	repo := mocks.NewMockIngredientsRepo(gomock.NewController(t))
	svc := service.NewIngredientsService(repo)

	repo.EXPECT().
		Rename(gomock.Any(), gomock.Any(), gomock.Any(), "Salt").
		Return(models.Ingredient{}, serr.ErrAlreadyExists)

	_, err := svc.Rename(context.Background(), uuid.New(), uuid.New(), "Salt")
	require.ErrorIs(t, err, serr.ErrInvalidInput)
}

func TestIngredientsService_ListGetDelete(t *testing.T) {
	repo := mocks.NewMockIngredientsRepo(gomock.NewController(t))
	svc := service.NewIngredientsService(repo)

	userID, id := uuid.New(), uuid.New()
	repo.EXPECT().List(gomock.Any(), userID, models.NameFilter{}).Return([]models.Ingredient{}, nil)
	repo.EXPECT().Get(gomock.Any(), userID, id).Return(models.Ingredient{}, serr.ErrNotFound)
	repo.EXPECT().Delete(gomock.Any(), userID, id).Return(nil)

	list, err := svc.List(context.Background(), userID, models.NameFilter{})
	require.NoError(t, err)
	require.Empty(t, list)

	_, err = svc.Get(context.Background(), userID, id)
	require.ErrorIs(t, err, serr.ErrNotFound)

	require.NoError(t, svc.Delete(context.Background(), userID, id))
}
