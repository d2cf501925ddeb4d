// Package errors содержит общие доменные ошибки приложения.
//
// Эти ошибки используются в service и repository слоях
// и маппятся на HTTP-статусы в api слое.
package errors

import (
	"errors"
	"sort"
	"strings"
)

var (
	// Входные данные невалидны (пустые поля, неправильный формат и т.п.)
	ErrInvalidInput = errors.New("invalid input")
	// Неверные учётные данные (без уточнения: нет пользователя или неверный пароль)
	ErrInvalidCredentials = errors.New("unable to authenticate with provided credentials")
	// Получена непредвиденная ошибка
	ErrInternal = errors.New("internal error")
	// Полученные JSON данные с ошибками
	ErrBadJSON = errors.New("bad json")
	// Неавторизован
	ErrUnauthorized = errors.New("authentication credentials were not provided or are invalid")
	// Нет прав (только для консоли администратора)
	ErrForbidden = errors.New("forbidden")
	// Ресурс уже существует (например email уже занят)
	ErrAlreadyExists = errors.New("already exists")
	// Ресурс не найден (в том числе чужой ресурс)
	ErrNotFound = errors.New("not found")
	// Метод не поддерживается эндпоинтом
	ErrMethodNotAllowed = errors.New("method not allowed")
	// Слишком много запросов
	ErrTooManyRequests = errors.New("too many requests")
	// ожидаемая ошибка
	ErrExpectedError = errors.New("expected error")
)

// только для изображений рецептов
var (
	ErrInvalidImage  = errors.New("upload a valid image")
	ErrImageTooLarge = errors.New("image too large")
)

// ValidationError описывает ошибку валидации с сообщениями по полям.
//
// errors.Is(err, ErrInvalidInput) возвращает true для любой ValidationError.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError создаёт ошибку валидации для одного поля.
func NewValidationError(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}

// Add добавляет сообщение для поля и возвращает саму ошибку.
func (e *ValidationError) Add(field, msg string) *ValidationError {
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}
	e.Fields[field] = msg
	return e
}

// Empty сообщает, что ни одного поля не добавлено.
func (e *ValidationError) Empty() bool {
	return len(e.Fields) == 0
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return ErrInvalidInput.Error() + ": " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// FieldsOf возвращает сообщения по полям, если err содержит ValidationError.
func FieldsOf(err error) map[string]string {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Fields
	}
	return nil
}
