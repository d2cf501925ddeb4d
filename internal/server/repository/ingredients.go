package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/IvanChernomyrdin/go-recipe-api/internal/server/models"
)

// IngredientsRepository хранит ингредиенты пользователей.
type IngredientsRepository struct {
	db *sql.DB
}

func NewIngredientsRepository(db *sql.DB) *IngredientsRepository {
	return &IngredientsRepository{db: db}
}

// List возвращает ингредиенты владельца, отсортированные по имени по убыванию.
func (r *IngredientsRepository) List(ctx context.Context, userID uuid.UUID, f models.NameFilter) ([]models.Ingredient, error) {
	rows, err := ingredientsTable.list(ctx, r.db, userID, f)
	if err != nil {
		return nil, err
	}
	out := make([]models.Ingredient, 0, len(rows))
	for _, n := range rows {
		out = append(out, toIngredient(n))
	}
	return out, nil
}

func (r *IngredientsRepository) Create(ctx context.Context, userID uuid.UUID, name string) (models.Ingredient, error) {
	n, err := ingredientsTable.create(ctx, r.db, userID, name)
	return toIngredient(n), err
}

func (r *IngredientsRepository) Get(ctx context.Context, userID, id uuid.UUID) (models.Ingredient, error) {
	n, err := ingredientsTable.get(ctx, r.db, userID, id)
	return toIngredient(n), err
}

func (r *IngredientsRepository) Rename(ctx context.Context, userID, id uuid.UUID, name string) (models.Ingredient, error) {
	n, err := ingredientsTable.rename(ctx, r.db, userID, id, name)
	return toIngredient(n), err
}

func (r *IngredientsRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return ingredientsTable.delete(ctx, r.db, userID, id)
}

func toIngredient(n namedRow) models.Ingredient {
	return models.Ingredient{ID: n.ID, UserID: n.UserID, Name: n.Name}
}
