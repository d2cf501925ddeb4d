package tests

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"io"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/IvanChernomyrdin/go-recipe-api/internal/server/models"
	"github.com/IvanChernomyrdin/go-recipe-api/internal/server/service"
	"github.com/IvanChernomyrdin/go-recipe-api/internal/server/service/mocks"
	serr "github.com/IvanChernomyrdin/go-recipe-api/internal/shared/errors"
	"github.com/IvanChernomyrdin/go-recipe-api/internal/shared/utils"
)

func newRecipesService(t *testing.T) (*service.RecipesService, *mocks.MockRecipesRepo, *mocks.MockImageStore) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRecipesRepo(ctrl)
	images := mocks.NewMockImageStore(ctrl)

	return service.NewRecipesService(repo, images, 1<<20, nil), repo, images
}

func samplePNG(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 10, 10))))
	return buf.Bytes()
}

func TestRecipesService_Create_OK(t *testing.T) {
	svc, repo, _ := newRecipesService(t)

	userID := uuid.New()
	w := models.RecipeWrite{
		Title:       "  Sample recipe ",
		TimeMinutes: 22,
		Price:       decimal.RequireFromString("5.25"),
		Link:        "https://example.com/recipe.pdf",
	}

	repo.EXPECT().
		Create(gomock.Any(), userID, gomock.Any()).
		DoAndReturn(func(_ context.Context, owner uuid.UUID, w models.RecipeWrite) (models.Recipe, error) {
			return models.Recipe{ID: uuid.New(), UserID: owner, Title: w.Title, TimeMinutes: w.TimeMinutes, Price: w.Price, Link: w.Link}, nil
		})

	rec, err := svc.Create(context.Background(), userID, w)
	require.NoError(t, err)
	require.Equal(t, "Sample recipe", rec.String())
	require.Equal(t, userID, rec.UserID)
}

// Ошибки собираются по всем полям
func TestRecipesService_Create_Invalid(t *testing.T) {
	svc, _, _ := newRecipesService(t)

	_, err := svc.Create(context.Background(), uuid.New(), models.RecipeWrite{
		Title:       "",
		TimeMinutes: 0,
		Price:       decimal.NewFromInt(-1),
		Link:        "not a url",
	})
	require.ErrorIs(t, err, serr.ErrInvalidInput)

	fields := serr.FieldsOf(err)
	for _, f := range []string{"title", "time_minutes", "price", "link"} {
		require.Contains(t, fields, f)
	}
}

func TestRecipesService_Create_PricePrecision(t *testing.T) {
	svc, _, _ := newRecipesService(t)

	for _, price := range []string{"1.005", "1000000.00"} {
		_, err := svc.Create(context.Background(), uuid.New(), models.RecipeWrite{
			Title: "x", TimeMinutes: 1, Price: decimal.RequireFromString(price),
		})
		require.ErrorIs(t, err, serr.ErrInvalidInput, price)
		require.Contains(t, serr.FieldsOf(err), "price")
	}
}

// PATCH меняет только переданные поля, связи без изменений
func TestRecipesService_Patch(t *testing.T) {
	svc, repo, _ := newRecipesService(t)

	userID, id := uuid.New(), uuid.New()
	cur := models.Recipe{ID: id, UserID: userID, Title: "Old", TimeMinutes: 10, Price: decimal.NewFromInt(5), Link: "https://example.com"}

	repo.EXPECT().Get(gomock.Any(), userID, id).Return(cur, nil)
	repo.EXPECT().
		Update(gomock.Any(), userID, id, gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ uuid.UUID, w models.RecipeWrite) (models.Recipe, error) {
			require.Equal(t, "New", w.Title)
			require.Equal(t, 10, w.TimeMinutes)
			require.Equal(t, "https://example.com", w.Link)
			require.Nil(t, w.TagIDs)
			require.NotNil(t, w.IngredientIDs)
			require.Empty(t, w.IngredientIDs)
			return models.Recipe{ID: id, Title: w.Title}, nil
		})

	var noIngredients []uuid.UUID
	rec, err := svc.Patch(context.Background(), userID, id, service.RecipePatch{
		Title:         utils.Ptr("New"),
		IngredientIDs: &noIngredients,
	})
	require.NoError(t, err)
	require.Equal(t, "New", rec.Title)
}

func TestRecipesService_Patch_Foreign(t *testing.T) {
	svc, repo, _ := newRecipesService(t)

	repo.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(models.Recipe{}, serr.ErrNotFound)

	_, err := svc.Patch(context.Background(), uuid.New(), uuid.New(), service.RecipePatch{Title: utils.Ptr("x")})
	require.ErrorIs(t, err, serr.ErrNotFound)
}

// Удаление рецепта удаляет и его изображение
func TestRecipesService_Delete_RemovesImage(t *testing.T) {
	svc, repo, images := newRecipesService(t)

	userID, id := uuid.New(), uuid.New()
	repo.EXPECT().Delete(gomock.Any(), userID, id).Return("uploads/recipe/a.png", nil)
	images.EXPECT().Delete(gomock.Any(), "uploads/recipe/a.png").Return(nil)

	require.NoError(t, svc.Delete(context.Background(), userID, id))
}

func TestRecipesService_UploadImage_OK(t *testing.T) {
	svc, repo, images := newRecipesService(t)

	userID, id := uuid.New(), uuid.New()
	data := samplePNG(t)

	repo.EXPECT().Get(gomock.Any(), userID, id).Return(models.Recipe{ID: id, UserID: userID, Title: "Soup"}, nil)

	var savedPath string
	images.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), int64(len(data)), "image/png").
		DoAndReturn(func(_ context.Context, p string, r io.Reader, _ int64, _ string) error {
			savedPath = p
			got, err := io.ReadAll(r)
			require.NoError(t, err)
			require.Equal(t, data, got)
			return nil
		})
	repo.EXPECT().
		SetImage(gomock.Any(), userID, id, gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ uuid.UUID, p string) (string, error) {
			require.Equal(t, savedPath, p)
			return "uploads/recipe/old.jpg", nil
		})
	// старый файл удаляется
	images.EXPECT().Delete(gomock.Any(), "uploads/recipe/old.jpg").Return(nil)

	rec, err := svc.UploadImage(context.Background(), userID, id, "my_image.png", bytes.NewReader(data))
	require.NoError(t, err)
	require.Equal(t, savedPath, rec.Image)
	require.True(t, strings.HasPrefix(rec.Image, "uploads/recipe/"))
	// от имени клиента остаётся только расширение
	require.True(t, strings.HasSuffix(rec.Image, ".png"))
	require.NotContains(t, rec.Image, "my_image")
}

func TestRecipesService_UploadImage_ExtensionFromContent(t *testing.T) {
	for _, filename := range []string{"evil.html", "photo.jpg", "x.svg", "noext"} {
		t.Run(filename, func(t *testing.T) {
			svc, repo, images := newRecipesService(t)

			userID, id := uuid.New(), uuid.New()
			repo.EXPECT().Get(gomock.Any(), userID, id).Return(models.Recipe{ID: id, UserID: userID}, nil)

			var savedPath string
			images.EXPECT().
				Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), "image/png").
				DoAndReturn(func(_ context.Context, p string, _ io.Reader, _ int64, _ string) error {
					savedPath = p
					return nil
				})
			repo.EXPECT().SetImage(gomock.Any(), userID, id, gomock.Any()).Return("", nil)

			rec, err := svc.UploadImage(context.Background(), userID, id, filename, bytes.NewReader(samplePNG(t)))
			require.NoError(t, err)
			require.Equal(t, savedPath, rec.Image)
			require.True(t, strings.HasSuffix(rec.Image, ".png"), rec.Image)
		})
	}
}

func TestRecipesService_UploadImage_NotImage(t *testing.T) {
	svc, repo, _ := newRecipesService(t)

	userID, id := uuid.New(), uuid.New()
	repo.EXPECT().Get(gomock.Any(), userID, id).Return(models.Recipe{ID: id}, nil)

	_, err := svc.UploadImage(context.Background(), userID, id, "x.jpg", strings.NewReader("notimage"))
	require.ErrorIs(t, err, serr.ErrInvalidInput)
	require.Contains(t, serr.FieldsOf(err), "image")
}

func TestRecipesService_UploadImage_TooLarge(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRecipesRepo(ctrl)
	svc := service.NewRecipesService(repo, mocks.NewMockImageStore(ctrl), 16, nil)

	repo.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(models.Recipe{}, nil)

	_, err := svc.UploadImage(context.Background(), uuid.New(), uuid.New(), "x.png", bytes.NewReader(samplePNG(t)))
	require.ErrorIs(t, err, serr.ErrInvalidInput)
	require.Contains(t, serr.FieldsOf(err), "image")
}

// Если привязать не удалось: новый файл не остаётся в хранилище
func TestRecipesService_UploadImage_SetImageFails(t *testing.T) {
	svc, repo, images := newRecipesService(t)

	userID, id := uuid.New(), uuid.New()
	repo.EXPECT().Get(gomock.Any(), userID, id).Return(models.Recipe{ID: id}, nil)

	var savedPath string
	images.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p string, _ io.Reader, _ int64, _ string) error {
			savedPath = p
			return nil
		})
	repo.EXPECT().SetImage(gomock.Any(), userID, id, gomock.Any()).Return("", serr.ErrNotFound)
	images.EXPECT().
		Delete(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p string) error {
			require.Equal(t, savedPath, p)
			return nil
		})

	_, err := svc.UploadImage(context.Background(), userID, id, "x.png", bytes.NewReader(samplePNG(t)))
	require.ErrorIs(t, err, serr.ErrNotFound)
}

func TestRecipesService_UploadImage_StoreError(t *testing.T) {
	svc, repo, images := newRecipesService(t)

	repo.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(models.Recipe{}, nil)
	images.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("disk full"))

	_, err := svc.UploadImage(context.Background(), uuid.New(), uuid.New(), "x.png", bytes.NewReader(samplePNG(t)))
	require.ErrorIs(t, err, serr.ErrInternal)
}
