// HTTP-хендлеры регистрации, выдачи токена и профиля пользователя
package api

import (
	"net/http"

	"github.com/IvanChernomyrdin/go-recipe-api/internal/server/models"
	"github.com/IvanChernomyrdin/go-recipe-api/internal/server/service"
)

// CreateUserRequest описывает тело запроса регистрации пользователя.
type CreateUserRequest struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required"`
	Name     string `json:"name" validate:"required,max=255"`
}

// UserResponse: публичное представление пользователя. Пароль не выводится никогда.
type UserResponse struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// TokenRequest описывает тело запроса выдачи токена.
type TokenRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// TokenResponse: выданный ключ API.
type TokenResponse struct {
	Token string `json:"token"`
}

// UpdateMeRequest: полное обновление профиля (PUT).
type UpdateMeRequest struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required"`
	Name     string `json:"name" validate:"required,max=255"`
}

// PatchMeRequest: частичное обновление профиля (PATCH).
type PatchMeRequest struct {
	Email    *string `json:"email" validate:"omitempty,email,max=255"`
	Password *string `json:"password"`
	Name     *string `json:"name" validate:"omitempty,max=255"`
}

func toUserResponse(u models.User) UserResponse {
	return UserResponse{Email: u.Email, Name: u.Name}
}

// CreateUser обрабатывает регистрацию пользователя.
//
// Ответы:
//   - 201 Created: регистрация успешна;
//   - 400 Bad Request: неверный JSON, невалидные поля, email уже занят;
//   - 500 Internal Server Error: прочие ошибки.
//
// @Summary      Create user
// @Description  Registers a new user. Password is never returned.
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        request body CreateUserRequest true "New user"
// @Success      201 {object} UserResponse
// @Failure      400 {object} ErrorResponse "Invalid input or email taken"
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /user/create [post]
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeServiceError(w, r, "create user", err)
		return
	}

	u, err := h.Svc.Users.CreateUser(r.Context(), service.NewUser{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
	})
	if err != nil {
		h.writeServiceError(w, r, "create user", err)
		return
	}

	WriteJSON(w, http.StatusCreated, toUserResponse(u))
}

// CreateToken выдаёт ключ API по email и паролю.
//
// Ответы:
//   - 200 OK: {"token": "..."};
//   - 400 Bad Request: не переданы поля или неверные учётные данные (без поля token);
//   - 500 Internal Server Error: прочие ошибки.
//
// @Summary      Obtain token
// @Description  Exchanges email and password for an API token. Re-issuing replaces the previous token.
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        request body TokenRequest true "Credentials"
// @Success      200 {object} TokenResponse
// @Failure      400 {object} ErrorResponse "Invalid credentials or missing fields"
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /user/token [post]
func (h *Handler) CreateToken(w http.ResponseWriter, r *http.Request) {
	var req TokenRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeServiceError(w, r, "create token", err)
		return
	}

	key, err := h.Svc.Auth.IssueToken(r.Context(), req.Email, req.Password)
	if err != nil {
		h.writeServiceError(w, r, "create token", err)
		return
	}

	WriteJSON(w, http.StatusOK, TokenResponse{Token: key})
}

// RevokeToken удаляет ключ текущего пользователя (logout).
//
// @Summary      Revoke token
// @Tags         user
// @Security     TokenAuth
// @Success      204
// @Failure      401 {object} ErrorResponse "Unauthorized"
// @Router       /user/token [delete]
func (h *Handler) RevokeToken(w http.ResponseWriter, r *http.Request) {
	u, ok := currentUser(w, r)
	if !ok {
		return
	}

	if err := h.Svc.Auth.RevokeToken(r.Context(), u.ID); err != nil {
		h.writeServiceError(w, r, "revoke token", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Me возвращает профиль аутентифицированного пользователя.
//
// @Summary      Current user
// @Tags         user
// @Produce      json
// @Security     TokenAuth
// @Success      200 {object} UserResponse
// @Failure      401 {object} ErrorResponse "Unauthorized"
// @Router       /user/me [get]
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	u, ok := currentUser(w, r)
	if !ok {
		return
	}
	WriteJSON(w, http.StatusOK, toUserResponse(u))
}

// UpdateMe заменяет email, имя и пароль текущего пользователя.
//
// @Summary      Update current user
// @Tags         user
// @Accept       json
// @Produce      json
// @Security     TokenAuth
// @Param        request body UpdateMeRequest true "Profile"
// @Success      200 {object} UserResponse
// @Failure      400 {object} ErrorResponse "Invalid input"
// @Failure      401 {object} ErrorResponse "Unauthorized"
// @Router       /user/me [put]
func (h *Handler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	u, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req UpdateMeRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeServiceError(w, r, "update me", err)
		return
	}

	h.updateMe(w, r, u, service.UserUpdate{
		Email:    &req.Email,
		Name:     &req.Name,
		Password: &req.Password,
	})
}

// PatchMe обновляет только переданные поля профиля.
//
// @Summary      Patch current user
// @Tags         user
// @Accept       json
// @Produce      json
// @Security     TokenAuth
// @Param        request body PatchMeRequest true "Profile fields"
// @Success      200 {object} UserResponse
// @Failure      400 {object} ErrorResponse "Invalid input"
// @Failure      401 {object} ErrorResponse "Unauthorized"
// @Router       /user/me [patch]
func (h *Handler) PatchMe(w http.ResponseWriter, r *http.Request) {
	u, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req PatchMeRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeServiceError(w, r, "patch me", err)
		return
	}

	h.updateMe(w, r, u, service.UserUpdate{
		Email:    req.Email,
		Name:     req.Name,
		Password: req.Password,
	})
}

func (h *Handler) updateMe(w http.ResponseWriter, r *http.Request, u models.User, upd service.UserUpdate) {
	updated, err := h.Svc.Users.Update(r.Context(), u.ID, upd)
	if err != nil {
		h.writeServiceError(w, r, "update me", err)
		return
	}
	WriteJSON(w, http.StatusOK, toUserResponse(updated))
}
