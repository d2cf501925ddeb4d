package api

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/IvanChernomyrdin/go-recipe-api/internal/server/models"
	"github.com/IvanChernomyrdin/go-recipe-api/internal/shared/utils"
)

// NameRequest: тело создания и переименования тега или ингредиента.
type NameRequest struct {
	Name string `json:"name" validate:"required"`
}

// NamePatchRequest: частичное обновление (PATCH), без name ничего не меняется.
type NamePatchRequest struct {
	Name *string `json:"name"`
}

// NamedResponse: тег или ингредиент в ответе.
type NamedResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// namedService: общий контракт TagsService и IngredientsService.
type namedService[T any] interface {
	List(ctx context.Context, userID uuid.UUID, f models.NameFilter) ([]T, error)
	Create(ctx context.Context, userID uuid.UUID, name string) (T, error)
	Get(ctx context.Context, userID, id uuid.UUID) (T, error)
	Rename(ctx context.Context, userID, id uuid.UUID, name string) (T, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

func tagResponse(t models.Tag) NamedResponse {
	return NamedResponse{ID: t.ID, Name: t.Name}
}

func ingredientResponse(i models.Ingredient) NamedResponse {
	return NamedResponse{ID: i.ID, Name: i.Name}
}

func listNamed[T any](h *Handler, w http.ResponseWriter, r *http.Request, what string, svc namedService[T], conv func(T) NamedResponse) {
	u, ok := currentUser(w, r)
	if !ok {
		return
	}

	f := models.NameFilter{AssignedOnly: utils.Truthy(r.URL.Query().Get("assigned_only"))}
	items, err := svc.List(r.Context(), u.ID, f)
	if err != nil {
		h.writeServiceError(w, r, "list "+what, err)
		return
	}

	out := make([]NamedResponse, 0, len(items))
	for _, it := range items {
		out = append(out, conv(it))
	}
	WriteJSON(w, http.StatusOK, out)
}

func createNamed[T any](h *Handler, w http.ResponseWriter, r *http.Request, what string, svc namedService[T], conv func(T) NamedResponse) {
	u, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req NameRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeServiceError(w, r, "create "+what, err)
		return
	}

	it, err := svc.Create(r.Context(), u.ID, req.Name)
	if err != nil {
		h.writeServiceError(w, r, "create "+what, err)
		return
	}
	WriteJSON(w, http.StatusCreated, conv(it))
}

func getNamed[T any](h *Handler, w http.ResponseWriter, r *http.Request, what string, svc namedService[T], conv func(T) NamedResponse) {
	u, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	it, err := svc.Get(r.Context(), u.ID, id)
	if err != nil {
		h.writeServiceError(w, r, "get "+what, err)
		return
	}
	WriteJSON(w, http.StatusOK, conv(it))
}

// updateNamed обслуживает PUT (name обязателен) и PATCH (name необязателен).
func updateNamed[T any](h *Handler, w http.ResponseWriter, r *http.Request, what string, svc namedService[T], conv func(T) NamedResponse, partial bool) {
	u, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var name *string
	if partial {
		var req NamePatchRequest
		if err := decodeJSON(r, &req); err != nil {
			h.writeServiceError(w, r, "update "+what, err)
			return
		}
		name = req.Name
	} else {
		var req NameRequest
		if err := decodeJSON(r, &req); err != nil {
			h.writeServiceError(w, r, "update "+what, err)
			return
		}
		name = &req.Name
	}

	var (
		it  T
		err error
	)
	if name == nil {
		it, err = svc.Get(r.Context(), u.ID, id)
	} else {
		it, err = svc.Rename(r.Context(), u.ID, id, *name)
	}
	if err != nil {
		h.writeServiceError(w, r, "update "+what, err)
		return
	}
	WriteJSON(w, http.StatusOK, conv(it))
}

func deleteNamed[T any](h *Handler, w http.ResponseWriter, r *http.Request, what string, svc namedService[T]) {
	u, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := svc.Delete(r.Context(), u.ID, id); err != nil {
		h.writeServiceError(w, r, "delete "+what, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
