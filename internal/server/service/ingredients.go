package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/IvanChernomyrdin/go-recipe-api/internal/server/models"
)

// IngredientsService управляет ингредиентами пользователя.
type IngredientsService struct {
	repo IngredientsRepo
}

func NewIngredientsService(repo IngredientsRepo) *IngredientsService {
	return &IngredientsService{repo: repo}
}

func (s *IngredientsService) List(ctx context.Context, userID uuid.UUID, f models.NameFilter) ([]models.Ingredient, error) {
	return s.repo.List(ctx, userID, f)
}

func (s *IngredientsService) Create(ctx context.Context, userID uuid.UUID, name string) (models.Ingredient, error) {
	name, err := cleanName(name)
	if err != nil {
		return models.Ingredient{}, err
	}
	ing, err := s.repo.Create(ctx, userID, name)
	return ing, nameTaken(err, "ingredient")
}

func (s *IngredientsService) Get(ctx context.Context, userID, id uuid.UUID) (models.Ingredient, error) {
	return s.repo.Get(ctx, userID, id)
}

func (s *IngredientsService) Rename(ctx context.Context, userID, id uuid.UUID, name string) (models.Ingredient, error) {
	name, err := cleanName(name)
	if err != nil {
		return models.Ingredient{}, err
	}
	ing, err := s.repo.Rename(ctx, userID, id, name)
	return ing, nameTaken(err, "ingredient")
}

func (s *IngredientsService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return s.repo.Delete(ctx, userID, id)
}
