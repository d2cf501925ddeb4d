// HTTP-хендлеры консоли администратора
package api

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/IvanChernomyrdin/go-recipe-api/internal/server/models"
	"github.com/IvanChernomyrdin/go-recipe-api/internal/server/service"
)

// AdminLoginRequest: учётные данные staff-пользователя.
type AdminLoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AdminLoginResponse: JWT консоли администратора.
type AdminLoginResponse struct {
	AccessToken string `json:"access_token"`
}

// AdminUserResponse: пользователь в консоли администратора.
type AdminUserResponse struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	Name        string    `json:"name"`
	IsActive    bool      `json:"is_active"`
	IsStaff     bool      `json:"is_staff"`
	IsSuperuser bool      `json:"is_superuser"`
	CreatedAt   time.Time `json:"created_at"`
}

// AdminCreateUserRequest: создание пользователя из консоли.
type AdminCreateUserRequest struct {
	Email       string `json:"email" validate:"required,email,max=255"`
	Password    string `json:"password" validate:"required"`
	Name        string `json:"name" validate:"max=255"`
	IsActive    *bool  `json:"is_active"`
	IsStaff     bool   `json:"is_staff"`
	IsSuperuser bool   `json:"is_superuser"`
}

// AdminUpdateUserRequest: частичное обновление пользователя из консоли.
type AdminUpdateUserRequest struct {
	Email    *string `json:"email" validate:"omitempty,email,max=255"`
	Name     *string `json:"name" validate:"omitempty,max=255"`
	Password *string `json:"password"`
	IsActive *bool   `json:"is_active"`
	IsStaff  *bool   `json:"is_staff"`
}

func toAdminUser(u models.User) AdminUserResponse {
	return AdminUserResponse{
		ID:          u.ID,
		Email:       u.Email,
		Name:        u.Name,
		IsActive:    u.IsActive,
		IsStaff:     u.IsStaff,
		IsSuperuser: u.IsSuperuser,
		CreatedAt:   u.CreatedAt,
	}
}

// AdminLogin выдаёт JWT для консоли администратора (только staff).
//
// @Summary      Admin login
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        request body AdminLoginRequest true "Credentials"
// @Success      200 {object} AdminLoginResponse
// @Failure      400 {object} ErrorResponse "Invalid credentials"
// @Failure      403 {object} ErrorResponse "Not a staff user"
// @Router       /admin/login [post]
func (h *Handler) AdminLogin(w http.ResponseWriter, r *http.Request) {
	var req AdminLoginRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeServiceError(w, r, "admin login", err)
		return
	}

	token, err := h.Svc.Auth.AdminLogin(r.Context(), req.Email, req.Password)
	if err != nil {
		h.writeServiceError(w, r, "admin login", err)
		return
	}
	WriteJSON(w, http.StatusOK, AdminLoginResponse{AccessToken: token})
}

// AdminListUsers возвращает всех пользователей.
//
// @Summary      List users
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} AdminUserResponse
// @Failure      401 {object} ErrorResponse "Unauthorized"
// @Failure      403 {object} ErrorResponse "Forbidden"
// @Router       /admin/users [get]
func (h *Handler) AdminListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.Svc.Users.List(r.Context())
	if err != nil {
		h.writeServiceError(w, r, "admin list users", err)
		return
	}

	out := make([]AdminUserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toAdminUser(u))
	}
	WriteJSON(w, http.StatusOK, out)
}

// AdminCreateUser создаёт пользователя с заданными флагами.
//
// @Summary      Create user (admin)
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body AdminCreateUserRequest true "User"
// @Success      201 {object} AdminUserResponse
// @Failure      400 {object} ErrorResponse "Invalid input"
// @Failure      403 {object} ErrorResponse "Forbidden"
// @Router       /admin/users [post]
func (h *Handler) AdminCreateUser(w http.ResponseWriter, r *http.Request) {
	var req AdminCreateUserRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeServiceError(w, r, "admin create user", err)
		return
	}

	u, err := h.Svc.Users.CreateUser(r.Context(), service.NewUser{
		Email:       req.Email,
		Password:    req.Password,
		Name:        req.Name,
		IsActive:    req.IsActive,
		IsStaff:     req.IsStaff,
		IsSuperuser: req.IsSuperuser,
	})
	if err != nil {
		h.writeServiceError(w, r, "admin create user", err)
		return
	}
	WriteJSON(w, http.StatusCreated, toAdminUser(u))
}

// @Summary      Get user (admin)
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "User ID"
// @Success      200 {object} AdminUserResponse
// @Failure      404 {object} ErrorResponse "Not found"
// @Router       /admin/users/{id} [get]
func (h *Handler) AdminGetUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	u, err := h.Svc.Users.Get(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, r, "admin get user", err)
		return
	}
	WriteJSON(w, http.StatusOK, toAdminUser(u))
}

// @Summary      Update user (admin)
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "User ID"
// @Param        request body AdminUpdateUserRequest true "User fields"
// @Success      200 {object} AdminUserResponse
// @Failure      400 {object} ErrorResponse "Invalid input"
// @Failure      404 {object} ErrorResponse "Not found"
// @Router       /admin/users/{id} [patch]
func (h *Handler) AdminUpdateUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req AdminUpdateUserRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeServiceError(w, r, "admin update user", err)
		return
	}

	u, err := h.Svc.Users.Update(r.Context(), id, service.UserUpdate{
		Email:    req.Email,
		Name:     req.Name,
		Password: req.Password,
		IsActive: req.IsActive,
		IsStaff:  req.IsStaff,
	})
	if err != nil {
		h.writeServiceError(w, r, "admin update user", err)
		return
	}
	WriteJSON(w, http.StatusOK, toAdminUser(u))
}
