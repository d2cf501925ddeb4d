// Package service содержит бизнес-логику приложения (recipe API).
// Это прослойка между HTTP-обработчиками (api) и хранилищем данных (repository).
//
// Сервисы не знают о HTTP и SQL: зависимости описаны интерфейсами ниже,
// владелец ресурса всегда передаётся явно.
package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/IvanChernomyrdin/go-recipe-api/internal/server/config"
	"github.com/IvanChernomyrdin/go-recipe-api/internal/server/models"
	"github.com/IvanChernomyrdin/go-recipe-api/internal/server/storage"
)

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks
//go:generate mockgen -source=../storage/storage.go -destination=mocks/storage.go -package=mocks

// Repositories: набор интерфейсов, которые сервисный слой ожидает от слоя repository.
type Repositories struct {
	Health      HealthRepo
	Users       UsersRepo
	Tokens      TokensRepo
	Tags        TagsRepo
	Ingredients IngredientsRepo
	Recipes     RecipesRepo
}

// Services: агрегатор всех сервисов приложения.
type Services struct {
	Health      *HealthService
	Users       *UsersService
	Auth        *AuthService
	Tags        *TagsService
	Ingredients *IngredientsService
	Recipes     *RecipesService
}

// NewServices собирает все сервисы приложения.
func NewServices(repos Repositories, images storage.ImageStore, cfg *config.Config, log *zap.Logger) *Services {
	pass := PasswordParamsFromConfig(cfg.Password)
	return &Services{
		Health:      NewHealthService(repos.Health),
		Users:       NewUsersService(repos.Users, pass, cfg.Password.MinLength),
		Auth:        NewAuthService(repos.Users, repos.Tokens, cfg),
		Tags:        NewTagsService(repos.Tags),
		Ingredients: NewIngredientsService(repos.Ingredients),
		Recipes:     NewRecipesService(repos.Recipes, images, cfg.Media.MaxUploadBytes, log),
	}
}

// HealthRepo: минимально нужное для health-check.
type HealthRepo interface {
	Ping(ctx context.Context) error
}

// UsersRepo: репозиторий учётных записей.
type UsersRepo interface {
	Create(ctx context.Context, u models.User) (models.User, error)
	GetByEmail(ctx context.Context, email string) (models.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (models.User, error)
	List(ctx context.Context) ([]models.User, error)
	Update(ctx context.Context, u models.User) (models.User, error)
}

// TokensRepo: репозиторий токенов API (хранит только хэш ключа).
type TokensRepo interface {
	Upsert(ctx context.Context, userID uuid.UUID, keyHash []byte) error
	GetByKeyHash(ctx context.Context, keyHash []byte) (models.AuthToken, models.User, error)
	Delete(ctx context.Context, userID uuid.UUID) error
}

type TagsRepo interface {
	List(ctx context.Context, userID uuid.UUID, f models.NameFilter) ([]models.Tag, error)
	Create(ctx context.Context, userID uuid.UUID, name string) (models.Tag, error)
	Get(ctx context.Context, userID, id uuid.UUID) (models.Tag, error)
	Rename(ctx context.Context, userID, id uuid.UUID, name string) (models.Tag, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type IngredientsRepo interface {
	List(ctx context.Context, userID uuid.UUID, f models.NameFilter) ([]models.Ingredient, error)
	Create(ctx context.Context, userID uuid.UUID, name string) (models.Ingredient, error)
	Get(ctx context.Context, userID, id uuid.UUID) (models.Ingredient, error)
	Rename(ctx context.Context, userID, id uuid.UUID, name string) (models.Ingredient, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// RecipesRepo: репозиторий рецептов со связями.
type RecipesRepo interface {
	List(ctx context.Context, userID uuid.UUID, f models.RecipeFilter) ([]models.Recipe, error)
	Get(ctx context.Context, userID, id uuid.UUID) (models.Recipe, error)
	Create(ctx context.Context, userID uuid.UUID, w models.RecipeWrite) (models.Recipe, error)
	Update(ctx context.Context, userID, id uuid.UUID, w models.RecipeWrite) (models.Recipe, error)
	SetImage(ctx context.Context, userID, id uuid.UUID, path string) (string, error)
	Delete(ctx context.Context, userID, id uuid.UUID) (string, error)
}
