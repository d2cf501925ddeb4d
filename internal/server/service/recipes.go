package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/IvanChernomyrdin/go-recipe-api/internal/server/models"
	"github.com/IvanChernomyrdin/go-recipe-api/internal/server/storage"
	serr "github.com/IvanChernomyrdin/go-recipe-api/internal/shared/errors"
)

// maxPrice: предел NUMERIC(8,2).
var maxPrice = decimal.RequireFromString("999999.99")

const invalidImageMsg = "upload a valid image: the file you uploaded was either not an image or a corrupted image"

// RecipesService управляет рецептами пользователя и их изображениями.
type RecipesService struct {
	repo      RecipesRepo
	images    storage.ImageStore
	maxUpload int64
	log       *zap.Logger
}

// RecipePatch: частичное обновление рецепта; nil-поля не меняются.
type RecipePatch struct {
	Title         *string
	TimeMinutes   *int
	Price         *decimal.Decimal
	Link          *string
	TagIDs        *[]uuid.UUID
	IngredientIDs *[]uuid.UUID
}

func NewRecipesService(repo RecipesRepo, images storage.ImageStore, maxUpload int64, log *zap.Logger) *RecipesService {
	if log == nil {
		log = zap.NewNop()
	}
	return &RecipesService{repo: repo, images: images, maxUpload: maxUpload, log: log}
}

func (s *RecipesService) List(ctx context.Context, userID uuid.UUID, f models.RecipeFilter) ([]models.Recipe, error) {
	return s.repo.List(ctx, userID, f)
}

func (s *RecipesService) Get(ctx context.Context, userID, id uuid.UUID) (models.Recipe, error) {
	return s.repo.Get(ctx, userID, id)
}

// Create создаёт рецепт; владелец всегда userID, связи только со своими тегами
// и ингредиентами.
func (s *RecipesService) Create(ctx context.Context, userID uuid.UUID, w models.RecipeWrite) (models.Recipe, error) {
	w, err := cleanRecipe(w)
	if err != nil {
		return models.Recipe{}, err
	}
	return s.repo.Create(ctx, userID, w)
}

// Update полностью перезаписывает поля рецепта (PUT).
func (s *RecipesService) Update(ctx context.Context, userID, id uuid.UUID, w models.RecipeWrite) (models.Recipe, error) {
	w, err := cleanRecipe(w)
	if err != nil {
		return models.Recipe{}, err
	}
	return s.repo.Update(ctx, userID, id, w)
}

// Patch обновляет только переданные поля (PATCH).
func (s *RecipesService) Patch(ctx context.Context, userID, id uuid.UUID, p RecipePatch) (models.Recipe, error) {
	cur, err := s.repo.Get(ctx, userID, id)
	if err != nil {
		return models.Recipe{}, err
	}

	w := models.RecipeWrite{
		Title:       cur.Title,
		TimeMinutes: cur.TimeMinutes,
		Price:       cur.Price,
		Link:        cur.Link,
	}
	if p.Title != nil {
		w.Title = *p.Title
	}
	if p.TimeMinutes != nil {
		w.TimeMinutes = *p.TimeMinutes
	}
	if p.Price != nil {
		w.Price = *p.Price
	}
	if p.Link != nil {
		w.Link = *p.Link
	}
	if p.TagIDs != nil {
		w.TagIDs = nonNil(*p.TagIDs)
	}
	if p.IngredientIDs != nil {
		w.IngredientIDs = nonNil(*p.IngredientIDs)
	}

	return s.Update(ctx, userID, id, w)
}

// Delete удаляет рецепт и его изображение.
func (s *RecipesService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	image, err := s.repo.Delete(ctx, userID, id)
	if err != nil {
		return err
	}
	s.removeImage(ctx, image)
	return nil
}

// UploadImage проверяет, что файл декодируется как изображение, сохраняет его
// под сгенерированным путём и привязывает к рецепту. Предыдущий файл удаляется.
func (s *RecipesService) UploadImage(ctx context.Context, userID, id uuid.UUID, filename string, r io.Reader) (models.Recipe, error) {
	rec, err := s.repo.Get(ctx, userID, id)
	if err != nil {
		return models.Recipe{}, err
	}

	data, err := storage.ReadLimited(r, s.maxUpload)
	if err != nil {
		if errors.Is(err, serr.ErrImageTooLarge) {
			return models.Recipe{}, serr.NewValidationError("image",
				fmt.Sprintf("file too large: maximum size is %d bytes", s.maxUpload))
		}
		return models.Recipe{}, fmt.Errorf("%w: read upload: %v", serr.ErrInternal, err)
	}

	info, err := storage.DetectImage(data)
	if err != nil {
		return models.Recipe{}, serr.NewValidationError("image", invalidImageMsg)
	}

	p := storage.NewRecipeImagePath(filename, info.Ext)
	if err := s.images.Save(ctx, p, bytes.NewReader(data), int64(len(data)), info.ContentType); err != nil {
		return models.Recipe{}, fmt.Errorf("%w: save image: %v", serr.ErrInternal, err)
	}

	old, err := s.repo.SetImage(ctx, userID, id, p)
	if err != nil {
		s.removeImage(ctx, p)
		return models.Recipe{}, err
	}
	if old != p {
		s.removeImage(ctx, old)
	}

	rec.Image = p
	return rec, nil
}

// ImageURL: публичный адрес изображения рецепта.
func (s *RecipesService) ImageURL(path string) string {
	if path == "" {
		return ""
	}
	return s.images.URL(path)
}

func (s *RecipesService) removeImage(ctx context.Context, path string) {
	if path == "" {
		return
	}
	if err := s.images.Delete(ctx, path); err != nil {
		s.log.Warn("remove recipe image", zap.String("path", path), zap.Error(err))
	}
}

// cleanRecipe проверяет поля рецепта и собирает ошибки по всем полям сразу.
func cleanRecipe(w models.RecipeWrite) (models.RecipeWrite, error) {
	verr := &serr.ValidationError{}

	w.Title = strings.TrimSpace(w.Title)
	switch {
	case w.Title == "":
		verr.Add("title", "this field may not be blank")
	case len([]rune(w.Title)) > maxNameLen:
		verr.Add("title", fmt.Sprintf("ensure this field has no more than %d characters", maxNameLen))
	}

	if w.TimeMinutes <= 0 {
		verr.Add("time_minutes", "ensure this value is greater than 0")
	}

	switch {
	case w.Price.IsNegative():
		verr.Add("price", "ensure this value is greater than or equal to 0")
	case w.Price.GreaterThan(maxPrice):
		verr.Add("price", "ensure that there are no more than 8 digits in total")
	case w.Price.Exponent() < -2 && !w.Price.Equal(w.Price.Round(2)):
		verr.Add("price", "ensure that there are no more than 2 decimal places")
	}

	w.Link = strings.TrimSpace(w.Link)
	if w.Link != "" && !validURL(w.Link) {
		verr.Add("link", "enter a valid URL")
	}

	if !verr.Empty() {
		return models.RecipeWrite{}, verr
	}
	return w, nil
}

func validURL(s string) bool {
	if len(s) > maxNameLen {
		return false
	}
	u, err := url.ParseRequestURI(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func nonNil(ids []uuid.UUID) []uuid.UUID {
	if ids == nil {
		return []uuid.UUID{}
	}
	return ids
}
