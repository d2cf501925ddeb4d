// Package api реализует HTTP-слой сервера recipe API.
//
// Пакет отвечает за:
//   - обработку входящих запросов и формирование ответов (JSON, статусы);
//   - валидацию тел запросов (validator/v10);
//   - маппинг доменных ошибок (service/repository) в HTTP-коды и сообщения.
//
// Маршруты и middleware подключаются в internal/server/net/http.
package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/IvanChernomyrdin/go-recipe-api/internal/server/middleware"
	"github.com/IvanChernomyrdin/go-recipe-api/internal/server/models"
	"github.com/IvanChernomyrdin/go-recipe-api/internal/server/service"
	serr "github.com/IvanChernomyrdin/go-recipe-api/internal/shared/errors"
	"github.com/IvanChernomyrdin/go-recipe-api/internal/shared/logger"
)

// Каждый метод если будет возвращать ответ то будет это делать в JSON
// Вынес Content-Type и JSON для удобства
const (
	JsonContentType string = "application/json"
	ContentType     string = "Content-Type"
)

// Handler агрегирует зависимости HTTP-слоя и предоставляет методы-хендлеры.
//
// Handler содержит:
//   - Svc: сервисный слой (бизнес-логика);
//   - Log: логгер для записи событий и ошибок;
//   - Verifier: проверка JWT консоли администратора.
//
// Методы Handler используются роутером для обработки HTTP-запросов.
type Handler struct {
	Svc      *service.Services
	Log      *logger.HTTPLogger
	Verifier *middleware.JWTVerifier
}

// NewHandler создаёт экземпляр Handler с переданными зависимостями.
//
// svc: набор сервисов приложения,
// log: логгер (nil: без логирования),
// verifier: JWT-проверка консоли администратора.
func NewHandler(svc *service.Services, log *logger.HTTPLogger, verifier *middleware.JWTVerifier) *Handler {
	if log == nil {
		log = &logger.HTTPLogger{Logger: zap.NewNop()}
	}
	return &Handler{
		Svc:      svc,
		Log:      log,
		Verifier: verifier,
	}
}

// ErrorResponse стандартный формат ошибки API.
//
// Fields заполняется для ошибок валидации: поле -> сообщение.
type ErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// Вспомогательная функция вывода ошибки
func WriteError(w http.ResponseWriter, status int, err error) {
	WriteJSON(w, status, ErrorResponse{
		Error:  errorText(err),
		Fields: serr.FieldsOf(err),
	})
}

// WriteJSON пишет v в теле ответа со статусом status.
// Если v не кодируется в JSON, клиент получает 500 вместо обрезанного тела.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		status = http.StatusInternalServerError
		buf.Reset()
		_ = json.NewEncoder(&buf).Encode(ErrorResponse{Error: serr.ErrInternal.Error()})
	}
	w.Header().Set(ContentType, JsonContentType)
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

// errorText: сообщение верхнего уровня; для ValidationError только "invalid input".
func errorText(err error) string {
	if serr.FieldsOf(err) != nil {
		return serr.ErrInvalidInput.Error()
	}
	return err.Error()
}

// writeServiceError маппит ошибку сервисного слоя в HTTP-ответ.
//
//   - ValidationError, ErrInvalidInput, ErrBadJSON, ErrInvalidCredentials: 400
//   - ErrUnauthorized: 401
//   - ErrForbidden: 403
//   - ErrNotFound: 404 (в том числе чужой ресурс)
//   - остальное: 500, ошибка пишется в лог
func (h *Handler) writeServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	switch {
	case errors.Is(err, serr.ErrInvalidInput),
		errors.Is(err, serr.ErrBadJSON),
		errors.Is(err, serr.ErrInvalidImage):
		WriteError(w, http.StatusBadRequest, err)
	case errors.Is(err, serr.ErrInvalidCredentials):
		WriteError(w, http.StatusBadRequest, serr.ErrInvalidCredentials)
	case errors.Is(err, serr.ErrAlreadyExists):
		WriteError(w, http.StatusBadRequest, serr.ErrAlreadyExists)
	case errors.Is(err, serr.ErrUnauthorized):
		WriteError(w, http.StatusUnauthorized, serr.ErrUnauthorized)
	case errors.Is(err, serr.ErrForbidden):
		WriteError(w, http.StatusForbidden, serr.ErrForbidden)
	case errors.Is(err, serr.ErrNotFound):
		WriteError(w, http.StatusNotFound, serr.ErrNotFound)
	default:
		fields := []any{"error", err, "method", r.Method, "uri", r.RequestURI}
		if u, ok := middleware.UserFromContext(r.Context()); ok {
			fields = append(fields, "user_id", u.ID.String())
		}
		h.Log.Logger.Sugar().Errorw(op+" failed", fields...)
		WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
	}
}

// currentUser достаёт пользователя, выставленного TokenAuth/AdminOnly.
func currentUser(w http.ResponseWriter, r *http.Request) (models.User, bool) {
	u, ok := middleware.UserFromContext(r.Context())
	if !ok {
		WriteError(w, http.StatusUnauthorized, serr.ErrUnauthorized)
		return models.User{}, false
	}
	return u, true
}

// pathID разбирает {id} из URL. Некорректный id: 404, как и несуществующий.
func pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		WriteError(w, http.StatusNotFound, serr.ErrNotFound)
		return uuid.Nil, false
	}
	return id, true
}
