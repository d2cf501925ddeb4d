package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/IvanChernomyrdin/go-recipe-api/internal/server/config"
	"github.com/IvanChernomyrdin/go-recipe-api/internal/server/crypto"
	"github.com/IvanChernomyrdin/go-recipe-api/internal/server/models"
	serr "github.com/IvanChernomyrdin/go-recipe-api/internal/shared/errors"
)

// AuthService выдаёт и проверяет токены API.
//
// Ответственность:
//   - проверка email и пароля без раскрытия причины отказа
//   - выпуск непрозрачного токена (один на пользователя)
//   - разрешение токена в пользователя
//   - вход в консоль администратора (JWT только для staff)
type AuthService struct {
	users  UsersRepo
	tokens TokensRepo

	tokenTTL time.Duration
	admin    crypto.JWTConfig

	// verify сверяет пароль с хэшем; dummyHash проверяется для неизвестных
	// email, чтобы время ответа не зависело от существования аккаунта.
	verify    func(password, encoded string) (bool, error)
	dummyHash string

	now func() time.Time
}

// NewAuthService создаёт AuthService с зависимостями и настройками из конфига.
func NewAuthService(users UsersRepo, tokens TokensRepo, cfg *config.Config) *AuthService {
	return &AuthService{
		users:    users,
		tokens:   tokens,
		tokenTTL: cfg.Auth.TokenTTL,
		admin: crypto.JWTConfig{
			Issuer:     cfg.Auth.Admin.Issuer,
			Audience:   cfg.Auth.Admin.Audience,
			SigningKey: cfg.Auth.Admin.JWT.SigningKey,
			AccessTTL:  cfg.Auth.Admin.AccessTTL,
		},
		verify:    crypto.VerifyPassword,
		dummyHash: newDummyHash(cfg.Password),
		now:       time.Now,
	}
}

// newDummyHash хэширует случайную строку теми же параметрами, что и пароли пользователей.
func newDummyHash(cfg config.PasswordConfig) string {
	hash, err := crypto.HashPassword(uuid.NewString(), PasswordParamsFromConfig(cfg))
	if err != nil {
		return ""
	}
	return hash
}

// IssueToken проверяет учётные данные и выдаёт новый ключ.
// Предыдущий ключ пользователя перестаёт действовать.
//
// Ошибки:
//   - ValidationError: не передан email или пароль (до обращения к базе)
//   - ErrInvalidCredentials: нет пользователя, неверный пароль, аккаунт отключён
func (s *AuthService) IssueToken(ctx context.Context, email, password string) (string, error) {
	u, err := s.checkCredentials(ctx, email, password)
	if err != nil {
		return "", err
	}

	key, err := crypto.NewToken()
	if err != nil {
		return "", fmt.Errorf("%w: new token: %v", serr.ErrInternal, err)
	}
	if err := s.tokens.Upsert(ctx, u.ID, crypto.HashToken(key)); err != nil {
		return "", err
	}
	return key, nil
}

// Authenticate возвращает владельца ключа.
//
// Неизвестный, просроченный ключ или отключённый пользователь: ErrUnauthorized.
func (s *AuthService) Authenticate(ctx context.Context, key string) (models.User, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return models.User{}, serr.ErrUnauthorized
	}

	tok, u, err := s.tokens.GetByKeyHash(ctx, crypto.HashToken(key))
	if err != nil {
		return models.User{}, err
	}
	if tok.Expired(s.tokenTTL, s.now()) || !u.IsActive {
		return models.User{}, serr.ErrUnauthorized
	}
	return u, nil
}

// RevokeToken удаляет ключ пользователя (logout).
func (s *AuthService) RevokeToken(ctx context.Context, userID uuid.UUID) error {
	return s.tokens.Delete(ctx, userID)
}

// AdminLogin выдаёт JWT консоли администратора. Не staff: ErrForbidden.
func (s *AuthService) AdminLogin(ctx context.Context, email, password string) (string, error) {
	u, err := s.checkCredentials(ctx, email, password)
	if err != nil {
		return "", err
	}
	if !u.IsStaff {
		return "", serr.ErrForbidden
	}

	token, err := crypto.NewAdminToken(u.ID, s.now(), s.admin)
	if err != nil {
		return "", fmt.Errorf("%w: %v", serr.ErrInternal, err)
	}
	return token, nil
}

func (s *AuthService) checkCredentials(ctx context.Context, email, password string) (models.User, error) {
	email = NormalizeEmail(email)

	verr := &serr.ValidationError{}
	if email == "" {
		verr.Add("email", "this field is required")
	}
	if password == "" {
		verr.Add("password", "this field is required")
	}
	if !verr.Empty() {
		return models.User{}, verr
	}

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		// не палим существование email: хэширование выполняется в любом случае
		if errors.Is(err, serr.ErrNotFound) {
			_, _ = s.verify(password, s.dummyHash)
			return models.User{}, serr.ErrInvalidCredentials
		}
		return models.User{}, err
	}

	ok, err := s.verify(password, u.PasswordHash)
	if err != nil || !ok || !u.IsActive {
		return models.User{}, serr.ErrInvalidCredentials
	}
	return u, nil
}

// WithPasswordVerifier подменяет проверку пароля.
func (s *AuthService) WithPasswordVerifier(verify func(password, encoded string) (bool, error)) *AuthService {
	s.verify = verify
	return s
}

// WithClock подменяет источник времени (проверка срока жизни токенов).
func (s *AuthService) WithClock(now func() time.Time) *AuthService {
	s.now = now
	return s
}
