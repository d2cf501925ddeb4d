// HTTP-хендлеры ингредиентов
package api

import (
	"net/http"

	"github.com/IvanChernomyrdin/go-recipe-api/internal/server/models"
)

// ListIngredients возвращает ингредиенты текущего пользователя, отсортированные по имени (по убыванию).
//
// @Summary      List ingredients
// @Tags         ingredients
// @Produce      json
// @Security     TokenAuth
// @Param        assigned_only query int false "Only ingredients assigned to at least one recipe (1/0)"
// @Success      200 {array} NamedResponse
// @Failure      401 {object} ErrorResponse "Unauthorized"
// @Router       /recipe/ingredients [get]
func (h *Handler) ListIngredients(w http.ResponseWriter, r *http.Request) {
	listNamed[models.Ingredient](h, w, r, "ingredients", h.Svc.Ingredients, ingredientResponse)
}

// CreateIngredient создаёт ингредиент для текущего пользователя.
//
// @Summary      Create ingredient
// @Tags         ingredients
// @Accept       json
// @Produce      json
// @Security     TokenAuth
// @Param        request body NameRequest true "Ingredient"
// @Success      201 {object} NamedResponse
// @Failure      400 {object} ErrorResponse "Invalid input or name taken"
// @Failure      401 {object} ErrorResponse "Unauthorized"
// @Router       /recipe/ingredients [post]
func (h *Handler) CreateIngredient(w http.ResponseWriter, r *http.Request) {
	createNamed[models.Ingredient](h, w, r, "ingredient", h.Svc.Ingredients, ingredientResponse)
}

// @Summary      Get ingredient
// @Tags         ingredients
// @Produce      json
// @Security     TokenAuth
// @Param        id path string true "Ingredient ID"
// @Success      200 {object} NamedResponse
// @Failure      401 {object} ErrorResponse "Unauthorized"
// @Failure      404 {object} ErrorResponse "Not found"
// @Router       /recipe/ingredients/{id} [get]
func (h *Handler) GetIngredient(w http.ResponseWriter, r *http.Request) {
	getNamed[models.Ingredient](h, w, r, "ingredient", h.Svc.Ingredients, ingredientResponse)
}

// @Summary      Rename ingredient
// @Tags         ingredients
// @Accept       json
// @Produce      json
// @Security     TokenAuth
// @Param        id path string true "Ingredient ID"
// @Param        request body NameRequest true "Ingredient"
// @Success      200 {object} NamedResponse
// @Failure      400 {object} ErrorResponse "Invalid input or name taken"
// @Failure      404 {object} ErrorResponse "Not found"
// @Router       /recipe/ingredients/{id} [put]
func (h *Handler) UpdateIngredient(w http.ResponseWriter, r *http.Request) {
	updateNamed[models.Ingredient](h, w, r, "ingredient", h.Svc.Ingredients, ingredientResponse, false)
}

// @Summary      Patch ingredient
// @Tags         ingredients
// @Accept       json
// @Produce      json
// @Security     TokenAuth
// @Param        id path string true "Ingredient ID"
// @Param        request body NamePatchRequest true "Ingredient fields"
// @Success      200 {object} NamedResponse
// @Failure      400 {object} ErrorResponse "Invalid input or name taken"
// @Failure      404 {object} ErrorResponse "Not found"
// @Router       /recipe/ingredients/{id} [patch]
func (h *Handler) PatchIngredient(w http.ResponseWriter, r *http.Request) {
	updateNamed[models.Ingredient](h, w, r, "ingredient", h.Svc.Ingredients, ingredientResponse, true)
}

// @Summary      Delete ingredient
// @Tags         ingredients
// @Security     TokenAuth
// @Param        id path string true "Ingredient ID"
// @Success      204
// @Failure      404 {object} ErrorResponse "Not found"
// @Router       /recipe/ingredients/{id} [delete]
func (h *Handler) DeleteIngredient(w http.ResponseWriter, r *http.Request) {
	deleteNamed[models.Ingredient](h, w, r, "ingredient", h.Svc.Ingredients)
}
