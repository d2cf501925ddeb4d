// HTTP-хендлеры рецептов и загрузки изображений
package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/IvanChernomyrdin/go-recipe-api/internal/server/models"
	"github.com/IvanChernomyrdin/go-recipe-api/internal/server/service"
	serr "github.com/IvanChernomyrdin/go-recipe-api/internal/shared/errors"
	"github.com/IvanChernomyrdin/go-recipe-api/internal/shared/utils"
)

// multipartMemory: сколько multipart-тела держать в памяти, остальное уходит во временные файлы.
const multipartMemory = 8 << 20

// RecipeRequest: тело создания и полного обновления рецепта.
//
// tags и ingredients: id тегов и ингредиентов текущего пользователя.
// При PUT отсутствующий список оставляет связи без изменений.
type RecipeRequest struct {
	Title       *string          `json:"title" validate:"required"`
	TimeMinutes *int             `json:"time_minutes" validate:"required"`
	Price       *decimal.Decimal `json:"price" validate:"required" swaggertype:"string" example:"5.50"`
	Link        string           `json:"link"`
	Tags        []uuid.UUID      `json:"tags" swaggertype:"array,string"`
	Ingredients []uuid.UUID      `json:"ingredients" swaggertype:"array,string"`
}

// RecipePatchRequest: частичное обновление рецепта (PATCH).
type RecipePatchRequest struct {
	Title       *string          `json:"title"`
	TimeMinutes *int             `json:"time_minutes"`
	Price       *decimal.Decimal `json:"price" swaggertype:"string" example:"5.50"`
	Link        *string          `json:"link"`
	Tags        *[]uuid.UUID     `json:"tags" swaggertype:"array,string"`
	Ingredients *[]uuid.UUID     `json:"ingredients" swaggertype:"array,string"`
}

// RecipeResponse: рецепт в списке, связи представлены id.
type RecipeResponse struct {
	ID          uuid.UUID   `json:"id"`
	Title       string      `json:"title"`
	TimeMinutes int         `json:"time_minutes"`
	Price       string      `json:"price" example:"5.50"`
	Link        string      `json:"link"`
	Image       *string     `json:"image"`
	Tags        []uuid.UUID `json:"tags"`
	Ingredients []uuid.UUID `json:"ingredients"`
	CreatedAt   time.Time   `json:"created_at"`
}

// RecipeDetailResponse: рецепт с вложенными тегами и ингредиентами.
type RecipeDetailResponse struct {
	ID          uuid.UUID       `json:"id"`
	Title       string          `json:"title"`
	TimeMinutes int             `json:"time_minutes"`
	Price       string          `json:"price" example:"5.50"`
	Link        string          `json:"link"`
	Image       *string         `json:"image"`
	Tags        []NamedResponse `json:"tags"`
	Ingredients []NamedResponse `json:"ingredients"`
	CreatedAt   time.Time       `json:"created_at"`
}

// RecipeImageResponse: ответ загрузки изображения.
type RecipeImageResponse struct {
	ID    uuid.UUID `json:"id"`
	Image string    `json:"image"`
}

func (h *Handler) imageURL(rec models.Recipe) *string {
	if rec.Image == "" {
		return nil
	}
	u := h.Svc.Recipes.ImageURL(rec.Image)
	return &u
}

func (h *Handler) toRecipeResponse(rec models.Recipe) RecipeResponse {
	return RecipeResponse{
		ID:          rec.ID,
		Title:       rec.Title,
		TimeMinutes: rec.TimeMinutes,
		Price:       rec.Price.StringFixed(2),
		Link:        rec.Link,
		Image:       h.imageURL(rec),
		Tags:        rec.TagIDs(),
		Ingredients: rec.IngredientIDs(),
		CreatedAt:   rec.CreatedAt,
	}
}

func (h *Handler) toRecipeDetail(rec models.Recipe) RecipeDetailResponse {
	tags := make([]NamedResponse, 0, len(rec.Tags))
	for _, t := range rec.Tags {
		tags = append(tags, tagResponse(t))
	}
	ingredients := make([]NamedResponse, 0, len(rec.Ingredients))
	for _, i := range rec.Ingredients {
		ingredients = append(ingredients, ingredientResponse(i))
	}

	return RecipeDetailResponse{
		ID:          rec.ID,
		Title:       rec.Title,
		TimeMinutes: rec.TimeMinutes,
		Price:       rec.Price.StringFixed(2),
		Link:        rec.Link,
		Image:       h.imageURL(rec),
		Tags:        tags,
		Ingredients: ingredients,
		CreatedAt:   rec.CreatedAt,
	}
}

// parseIDList разбирает ?tags=<id>,<id>. Некорректный id: ошибка поля.
func parseIDList(field, raw string) ([]uuid.UUID, error) {
	parts := utils.SplitIDs(raw)
	if len(parts) == 0 {
		return nil, nil
	}

	ids := make([]uuid.UUID, 0, len(parts))
	for _, p := range parts {
		id, err := uuid.Parse(p)
		if err != nil {
			return nil, serr.NewValidationError(field, `"`+p+`" is not a valid UUID`)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// ListRecipes возвращает рецепты текущего пользователя.
//
// Фильтры ?tags= и ?ingredients= принимают id через запятую;
// рецепт попадает в выборку, если связан хотя бы с одним из них.
//
// @Summary      List recipes
// @Tags         recipes
// @Produce      json
// @Security     TokenAuth
// @Param        tags        query string false "Comma separated tag IDs"
// @Param        ingredients query string false "Comma separated ingredient IDs"
// @Success      200 {array} RecipeResponse
// @Failure      400 {object} ErrorResponse "Invalid filter"
// @Failure      401 {object} ErrorResponse "Unauthorized"
// @Router       /recipe/recipes [get]
func (h *Handler) ListRecipes(w http.ResponseWriter, r *http.Request) {
	u, ok := currentUser(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	tagIDs, err := parseIDList("tags", q.Get("tags"))
	if err != nil {
		h.writeServiceError(w, r, "list recipes", err)
		return
	}
	ingredientIDs, err := parseIDList("ingredients", q.Get("ingredients"))
	if err != nil {
		h.writeServiceError(w, r, "list recipes", err)
		return
	}

	recipes, err := h.Svc.Recipes.List(r.Context(), u.ID, models.RecipeFilter{
		TagIDs:        tagIDs,
		IngredientIDs: ingredientIDs,
	})
	if err != nil {
		h.writeServiceError(w, r, "list recipes", err)
		return
	}

	out := make([]RecipeResponse, 0, len(recipes))
	for _, rec := range recipes {
		out = append(out, h.toRecipeResponse(rec))
	}
	WriteJSON(w, http.StatusOK, out)
}

// CreateRecipe создаёт рецепт; владельцем всегда становится текущий пользователь.
//
// @Summary      Create recipe
// @Tags         recipes
// @Accept       json
// @Produce      json
// @Security     TokenAuth
// @Param        request body RecipeRequest true "Recipe"
// @Success      201 {object} RecipeResponse
// @Failure      400 {object} ErrorResponse "Invalid input"
// @Failure      401 {object} ErrorResponse "Unauthorized"
// @Router       /recipe/recipes [post]
func (h *Handler) CreateRecipe(w http.ResponseWriter, r *http.Request) {
	u, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req RecipeRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeServiceError(w, r, "create recipe", err)
		return
	}

	rec, err := h.Svc.Recipes.Create(r.Context(), u.ID, req.write())
	if err != nil {
		h.writeServiceError(w, r, "create recipe", err)
		return
	}
	WriteJSON(w, http.StatusCreated, h.toRecipeResponse(rec))
}

// GetRecipe возвращает рецепт с вложенными тегами и ингредиентами.
//
// @Summary      Get recipe
// @Tags         recipes
// @Produce      json
// @Security     TokenAuth
// @Param        id path string true "Recipe ID"
// @Success      200 {object} RecipeDetailResponse
// @Failure      401 {object} ErrorResponse "Unauthorized"
// @Failure      404 {object} ErrorResponse "Not found"
// @Router       /recipe/recipes/{id} [get]
func (h *Handler) GetRecipe(w http.ResponseWriter, r *http.Request) {
	u, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	rec, err := h.Svc.Recipes.Get(r.Context(), u.ID, id)
	if err != nil {
		h.writeServiceError(w, r, "get recipe", err)
		return
	}
	WriteJSON(w, http.StatusOK, h.toRecipeDetail(rec))
}

// UpdateRecipe полностью обновляет рецепт.
//
// @Summary      Update recipe
// @Tags         recipes
// @Accept       json
// @Produce      json
// @Security     TokenAuth
// @Param        id path string true "Recipe ID"
// @Param        request body RecipeRequest true "Recipe"
// @Success      200 {object} RecipeResponse
// @Failure      400 {object} ErrorResponse "Invalid input"
// @Failure      404 {object} ErrorResponse "Not found"
// @Router       /recipe/recipes/{id} [put]
func (h *Handler) UpdateRecipe(w http.ResponseWriter, r *http.Request) {
	u, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req RecipeRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeServiceError(w, r, "update recipe", err)
		return
	}

	rec, err := h.Svc.Recipes.Update(r.Context(), u.ID, id, req.write())
	if err != nil {
		h.writeServiceError(w, r, "update recipe", err)
		return
	}
	WriteJSON(w, http.StatusOK, h.toRecipeResponse(rec))
}

// PatchRecipe обновляет только переданные поля рецепта.
//
// @Summary      Patch recipe
// @Tags         recipes
// @Accept       json
// @Produce      json
// @Security     TokenAuth
// @Param        id path string true "Recipe ID"
// @Param        request body RecipePatchRequest true "Recipe fields"
// @Success      200 {object} RecipeResponse
// @Failure      400 {object} ErrorResponse "Invalid input"
// @Failure      404 {object} ErrorResponse "Not found"
// @Router       /recipe/recipes/{id} [patch]
func (h *Handler) PatchRecipe(w http.ResponseWriter, r *http.Request) {
	u, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req RecipePatchRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeServiceError(w, r, "patch recipe", err)
		return
	}

	rec, err := h.Svc.Recipes.Patch(r.Context(), u.ID, id, service.RecipePatch{
		Title:         req.Title,
		TimeMinutes:   req.TimeMinutes,
		Price:         req.Price,
		Link:          req.Link,
		TagIDs:        req.Tags,
		IngredientIDs: req.Ingredients,
	})
	if err != nil {
		h.writeServiceError(w, r, "patch recipe", err)
		return
	}
	WriteJSON(w, http.StatusOK, h.toRecipeResponse(rec))
}

// DeleteRecipe удаляет рецепт вместе с его изображением.
//
// @Summary      Delete recipe
// @Tags         recipes
// @Security     TokenAuth
// @Param        id path string true "Recipe ID"
// @Success      204
// @Failure      404 {object} ErrorResponse "Not found"
// @Router       /recipe/recipes/{id} [delete]
func (h *Handler) DeleteRecipe(w http.ResponseWriter, r *http.Request) {
	u, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.Svc.Recipes.Delete(r.Context(), u.ID, id); err != nil {
		h.writeServiceError(w, r, "delete recipe", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// UploadRecipeImage принимает multipart-поле image и привязывает файл к рецепту.
//
// Файл должен декодироваться как изображение (jpeg, png, gif);
// имя файла заменяется сгенерированным, сохраняется только расширение.
//
// @Summary      Upload recipe image
// @Tags         recipes
// @Accept       multipart/form-data
// @Produce      json
// @Security     TokenAuth
// @Param        id    path     string true "Recipe ID"
// @Param        image formData file   true "Image file"
// @Success      200 {object} RecipeImageResponse
// @Failure      400 {object} ErrorResponse "Not an image"
// @Failure      404 {object} ErrorResponse "Not found"
// @Router       /recipe/recipes/{id}/upload-image [post]
func (h *Handler) UploadRecipeImage(w http.ResponseWriter, r *http.Request) {
	u, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.writeServiceError(w, r, "upload image", serr.NewValidationError("image", serr.ErrImageTooLarge.Error()))
			return
		}
		h.writeServiceError(w, r, "upload image", serr.NewValidationError("image", "no file was submitted"))
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("image")
	if err != nil {
		h.writeServiceError(w, r, "upload image", serr.NewValidationError("image", "no file was submitted"))
		return
	}
	defer file.Close()

	rec, err := h.Svc.Recipes.UploadImage(r.Context(), u.ID, id, header.Filename, file)
	if err != nil {
		h.writeServiceError(w, r, "upload image", err)
		return
	}

	WriteJSON(w, http.StatusOK, RecipeImageResponse{
		ID:    rec.ID,
		Image: h.Svc.Recipes.ImageURL(rec.Image),
	})
}

func (req RecipeRequest) write() models.RecipeWrite {
	return models.RecipeWrite{
		Title:         *req.Title,
		TimeMinutes:   *req.TimeMinutes,
		Price:         *req.Price,
		Link:          req.Link,
		TagIDs:        req.Tags,
		IngredientIDs: req.Ingredients,
	}
}
