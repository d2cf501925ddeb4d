package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/IvanChernomyrdin/go-recipe-api/internal/server/models"
	serr "github.com/IvanChernomyrdin/go-recipe-api/internal/shared/errors"
)

// TagsService управляет тегами пользователя. Все операции ограничены владельцем.
type TagsService struct {
	repo TagsRepo
}

func NewTagsService(repo TagsRepo) *TagsService {
	return &TagsService{repo: repo}
}

// List: теги владельца по имени в обратном порядке.
func (s *TagsService) List(ctx context.Context, userID uuid.UUID, f models.NameFilter) ([]models.Tag, error) {
	return s.repo.List(ctx, userID, f)
}

// Create создаёт тег; владелец всегда userID.
func (s *TagsService) Create(ctx context.Context, userID uuid.UUID, name string) (models.Tag, error) {
	name, err := cleanName(name)
	if err != nil {
		return models.Tag{}, err
	}
	tag, err := s.repo.Create(ctx, userID, name)
	return tag, nameTaken(err, "tag")
}

func (s *TagsService) Get(ctx context.Context, userID, id uuid.UUID) (models.Tag, error) {
	return s.repo.Get(ctx, userID, id)
}

func (s *TagsService) Rename(ctx context.Context, userID, id uuid.UUID, name string) (models.Tag, error) {
	name, err := cleanName(name)
	if err != nil {
		return models.Tag{}, err
	}
	tag, err := s.repo.Rename(ctx, userID, id, name)
	return tag, nameTaken(err, "tag")
}

func (s *TagsService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return s.repo.Delete(ctx, userID, id)
}

// cleanName проверяет имя тега или ингредиента.
func cleanName(name string) (string, error) {
	name = strings.TrimSpace(name)
	switch {
	case name == "":
		return "", serr.NewValidationError("name", "this field may not be blank")
	case len([]rune(name)) > maxNameLen:
		return "", serr.NewValidationError("name",
			fmt.Sprintf("ensure this field has no more than %d characters", maxNameLen))
	}
	return name, nil
}

// nameTaken превращает нарушение уникальности (user, name) в ошибку поля.
func nameTaken(err error, what string) error {
	if errors.Is(err, serr.ErrAlreadyExists) {
		return serr.NewValidationError("name", what+" with this name already exists")
	}
	return err
}
