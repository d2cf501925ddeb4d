package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/IvanChernomyrdin/go-recipe-api/internal/server/models"
)

// TagsRepository хранит теги пользователей.
type TagsRepository struct {
	db *sql.DB
}

func NewTagsRepository(db *sql.DB) *TagsRepository {
	return &TagsRepository{db: db}
}

// List возвращает теги владельца, отсортированные по имени по убыванию.
func (r *TagsRepository) List(ctx context.Context, userID uuid.UUID, f models.NameFilter) ([]models.Tag, error) {
	rows, err := tagsTable.list(ctx, r.db, userID, f)
	if err != nil {
		return nil, err
	}
	tags := make([]models.Tag, 0, len(rows))
	for _, n := range rows {
		tags = append(tags, toTag(n))
	}
	return tags, nil
}

func (r *TagsRepository) Create(ctx context.Context, userID uuid.UUID, name string) (models.Tag, error) {
	n, err := tagsTable.create(ctx, r.db, userID, name)
	return toTag(n), err
}

func (r *TagsRepository) Get(ctx context.Context, userID, id uuid.UUID) (models.Tag, error) {
	n, err := tagsTable.get(ctx, r.db, userID, id)
	return toTag(n), err
}

func (r *TagsRepository) Rename(ctx context.Context, userID, id uuid.UUID, name string) (models.Tag, error) {
	n, err := tagsTable.rename(ctx, r.db, userID, id, name)
	return toTag(n), err
}

func (r *TagsRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return tagsTable.delete(ctx, r.db, userID, id)
}

func toTag(n namedRow) models.Tag {
	return models.Tag{ID: n.ID, UserID: n.UserID, Name: n.Name}
}
