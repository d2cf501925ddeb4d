// Package models содержит серверные доменные сущности:
// пользователя, токен аутентификации, теги, ингредиенты и рецепты.
package models

import (
	"time"

	"github.com/google/uuid"
)

// User: учётная запись. Email хранится нормализованным (нижний регистр),
// пароль только в виде солёного хэша.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Name         string
	IsActive     bool
	IsStaff      bool
	IsSuperuser  bool
	CreatedAt    time.Time
}

func (u User) String() string {
	return u.Email
}

// AuthToken: непрозрачный bearer-токен, один на пользователя.
// В базе хранится только SHA-256 от ключа.
type AuthToken struct {
	KeyHash   []byte
	UserID    uuid.UUID
	CreatedAt time.Time
}

// Expired сообщает, истёк ли токен при заданном ttl (0: бессрочный).
func (t AuthToken) Expired(ttl time.Duration, now time.Time) bool {
	if ttl <= 0 {
		return false
	}
	return t.CreatedAt.Add(ttl).Before(now)
}
