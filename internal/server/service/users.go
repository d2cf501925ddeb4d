package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/IvanChernomyrdin/go-recipe-api/internal/server/config"
	"github.com/IvanChernomyrdin/go-recipe-api/internal/server/crypto"
	"github.com/IvanChernomyrdin/go-recipe-api/internal/server/models"
	serr "github.com/IvanChernomyrdin/go-recipe-api/internal/shared/errors"
)

const maxNameLen = 255

// UsersService: хранилище учётных записей: создание, нормализация email,
// проверка и смена пароля.
type UsersService struct {
	repo      UsersRepo
	pass      crypto.PasswordParams
	minPasswd int
}

// NewUser: данные новой учётной записи. IsActive по умолчанию true.
type NewUser struct {
	Email       string
	Password    string
	Name        string
	IsActive    *bool
	IsStaff     bool
	IsSuperuser bool
}

// UserUpdate: частичное обновление; nil-поля не меняются.
type UserUpdate struct {
	Email    *string
	Name     *string
	Password *string
	IsActive *bool
	IsStaff  *bool
}

func NewUsersService(repo UsersRepo, pass crypto.PasswordParams, minPasswordLen int) *UsersService {
	return &UsersService{repo: repo, pass: pass, minPasswd: minPasswordLen}
}

// PasswordParamsFromConfig переводит настройки паролей в параметры хэширования.
func PasswordParamsFromConfig(cfg config.PasswordConfig) crypto.PasswordParams {
	return crypto.PasswordParams{
		Hasher: cfg.Hasher,
		Argon2: crypto.Argon2Params{
			Time:      cfg.Argon2.Time,
			MemoryKiB: cfg.Argon2.MemoryKiB,
			Threads:   cfg.Argon2.Threads,
			KeyLen:    cfg.Argon2.KeyLen,
			SaltLen:   cfg.Argon2.SaltLen,
		},
		BcryptCost: cfg.Bcrypt.Cost,
	}
}

// NormalizeEmail приводит адрес целиком к нижнему регистру.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// CreateUser создаёт учётную запись.
//
// Ошибки:
//   - ValidationError: пустой email, короткий пароль, email уже занят
//   - ErrInternal
func (s *UsersService) CreateUser(ctx context.Context, nu NewUser) (models.User, error) {
	email := NormalizeEmail(nu.Email)
	if email == "" {
		return models.User{}, serr.NewValidationError("email", "users must have an email address")
	}
	if err := s.checkPassword(nu.Password); err != nil {
		return models.User{}, err
	}

	hash, err := crypto.HashPassword(nu.Password, s.pass)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: hash password: %v", serr.ErrInternal, err)
	}

	active := true
	if nu.IsActive != nil {
		active = *nu.IsActive
	}

	u, err := s.repo.Create(ctx, models.User{
		Email:        email,
		PasswordHash: hash,
		Name:         strings.TrimSpace(nu.Name),
		IsActive:     active,
		IsStaff:      nu.IsStaff,
		IsSuperuser:  nu.IsSuperuser,
	})
	if errors.Is(err, serr.ErrAlreadyExists) {
		return models.User{}, emailTaken()
	}
	return u, err
}

// CreateSuperuser создаёт администратора: is_staff и is_superuser всегда true.
func (s *UsersService) CreateSuperuser(ctx context.Context, email, password string) (models.User, error) {
	return s.CreateUser(ctx, NewUser{
		Email:       email,
		Password:    password,
		IsStaff:     true,
		IsSuperuser: true,
	})
}

// CheckPassword сверяет пароль с хэшем пользователя за постоянное время.
func (s *UsersService) CheckPassword(u models.User, plaintext string) bool {
	ok, err := crypto.VerifyPassword(plaintext, u.PasswordHash)
	return err == nil && ok
}

func (s *UsersService) Get(ctx context.Context, id uuid.UUID) (models.User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *UsersService) List(ctx context.Context) ([]models.User, error) {
	return s.repo.List(ctx)
}

// Update применяет частичное обновление. Новый пароль хэшируется заново,
// email нормализуется.
func (s *UsersService) Update(ctx context.Context, userID uuid.UUID, upd UserUpdate) (models.User, error) {
	u, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return models.User{}, err
	}

	if upd.Email != nil {
		email := NormalizeEmail(*upd.Email)
		if email == "" {
			return models.User{}, serr.NewValidationError("email", "users must have an email address")
		}
		u.Email = email
	}
	if upd.Name != nil {
		u.Name = strings.TrimSpace(*upd.Name)
	}
	if upd.Password != nil {
		if err := s.checkPassword(*upd.Password); err != nil {
			return models.User{}, err
		}
		hash, err := crypto.HashPassword(*upd.Password, s.pass)
		if err != nil {
			return models.User{}, fmt.Errorf("%w: hash password: %v", serr.ErrInternal, err)
		}
		u.PasswordHash = hash
	}
	if upd.IsActive != nil {
		u.IsActive = *upd.IsActive
	}
	if upd.IsStaff != nil {
		u.IsStaff = *upd.IsStaff
	}

	u, err = s.repo.Update(ctx, u)
	if errors.Is(err, serr.ErrAlreadyExists) {
		return models.User{}, emailTaken()
	}
	return u, err
}

func (s *UsersService) checkPassword(p string) error {
	if p == "" {
		return serr.NewValidationError("password", "this field is required")
	}
	if len([]rune(p)) < s.minPasswd {
		return serr.NewValidationError("password",
			fmt.Sprintf("ensure this field has at least %d characters", s.minPasswd))
	}
	return nil
}

func emailTaken() error {
	return serr.NewValidationError("email", "user with this email already exists")
}
