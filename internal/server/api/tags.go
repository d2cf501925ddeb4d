// HTTP-хендлеры тегов рецептов
package api

import (
	"net/http"

	"github.com/IvanChernomyrdin/go-recipe-api/internal/server/models"
)

// ListTags возвращает теги текущего пользователя, отсортированные по имени (по убыванию).
//
// @Summary      List tags
// @Tags         tags
// @Produce      json
// @Security     TokenAuth
// @Param        assigned_only query int false "Only tags assigned to at least one recipe (1/0)"
// @Success      200 {array} NamedResponse
// @Failure      401 {object} ErrorResponse "Unauthorized"
// @Router       /recipe/tags [get]
func (h *Handler) ListTags(w http.ResponseWriter, r *http.Request) {
	listNamed[models.Tag](h, w, r, "tags", h.Svc.Tags, tagResponse)
}

// CreateTag создаёт тег для текущего пользователя.
//
// @Summary      Create tag
// @Tags         tags
// @Accept       json
// @Produce      json
// @Security     TokenAuth
// @Param        request body NameRequest true "Tag"
// @Success      201 {object} NamedResponse
// @Failure      400 {object} ErrorResponse "Invalid input or name taken"
// @Failure      401 {object} ErrorResponse "Unauthorized"
// @Router       /recipe/tags [post]
func (h *Handler) CreateTag(w http.ResponseWriter, r *http.Request) {
	createNamed[models.Tag](h, w, r, "tag", h.Svc.Tags, tagResponse)
}

// @Summary      Get tag
// @Tags         tags
// @Produce      json
// @Security     TokenAuth
// @Param        id path string true "Tag ID"
// @Success      200 {object} NamedResponse
// @Failure      401 {object} ErrorResponse "Unauthorized"
// @Failure      404 {object} ErrorResponse "Not found"
// @Router       /recipe/tags/{id} [get]
func (h *Handler) GetTag(w http.ResponseWriter, r *http.Request) {
	getNamed[models.Tag](h, w, r, "tag", h.Svc.Tags, tagResponse)
}

// @Summary      Rename tag
// @Tags         tags
// @Accept       json
// @Produce      json
// @Security     TokenAuth
// @Param        id path string true "Tag ID"
// @Param        request body NameRequest true "Tag"
// @Success      200 {object} NamedResponse
// @Failure      400 {object} ErrorResponse "Invalid input or name taken"
// @Failure      404 {object} ErrorResponse "Not found"
// @Router       /recipe/tags/{id} [put]
func (h *Handler) UpdateTag(w http.ResponseWriter, r *http.Request) {
	updateNamed[models.Tag](h, w, r, "tag", h.Svc.Tags, tagResponse, false)
}

// @Summary      Patch tag
// @Tags         tags
// @Accept       json
// @Produce      json
// @Security     TokenAuth
// @Param        id path string true "Tag ID"
// @Param        request body NamePatchRequest true "Tag fields"
// @Success      200 {object} NamedResponse
// @Failure      400 {object} ErrorResponse "Invalid input or name taken"
// @Failure      404 {object} ErrorResponse "Not found"
// @Router       /recipe/tags/{id} [patch]
func (h *Handler) PatchTag(w http.ResponseWriter, r *http.Request) {
	updateNamed[models.Tag](h, w, r, "tag", h.Svc.Tags, tagResponse, true)
}

// @Summary      Delete tag
// @Tags         tags
// @Security     TokenAuth
// @Param        id path string true "Tag ID"
// @Success      204
// @Failure      404 {object} ErrorResponse "Not found"
// @Router       /recipe/tags/{id} [delete]
func (h *Handler) DeleteTag(w http.ResponseWriter, r *http.Request) {
	deleteNamed[models.Tag](h, w, r, "tag", h.Svc.Tags)
}
