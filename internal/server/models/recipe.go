package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Tag: пользовательская метка рецепта.
type Tag struct {
	ID     uuid.UUID
	UserID uuid.UUID
	Name   string
}

func (t Tag) String() string {
	return t.Name
}

// Ingredient: ингредиент из списка пользователя.
type Ingredient struct {
	ID     uuid.UUID
	UserID uuid.UUID
	Name   string
}

func (i Ingredient) String() string {
	return i.Name
}

// Recipe: рецепт пользователя со связями на его теги и ингредиенты.
//
// Image: путь файла в хранилище изображений (пустой, если не загружено).
type Recipe struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Title       string
	TimeMinutes int
	Price       decimal.Decimal
	Link        string
	Image       string
	Tags        []Tag
	Ingredients []Ingredient
	CreatedAt   time.Time
}

func (r Recipe) String() string {
	return r.Title
}

// TagIDs возвращает идентификаторы привязанных тегов.
func (r Recipe) TagIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(r.Tags))
	for _, t := range r.Tags {
		ids = append(ids, t.ID)
	}
	return ids
}

// IngredientIDs возвращает идентификаторы привязанных ингредиентов.
func (r Recipe) IngredientIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(r.Ingredients))
	for _, i := range r.Ingredients {
		ids = append(ids, i.ID)
	}
	return ids
}

// RecipeFilter: фильтры списка рецептов (?tags=..&ingredients=..).
type RecipeFilter struct {
	TagIDs        []uuid.UUID
	IngredientIDs []uuid.UUID
}

// NameFilter: фильтры списков тегов и ингредиентов.
type NameFilter struct {
	// AssignedOnly: только привязанные хотя бы к одному рецепту.
	AssignedOnly bool
}

// RecipeWrite: значения для создания и обновления рецепта.
//
// При обновлении nil-срезы TagIDs/IngredientIDs оставляют связи без изменений,
// пустой срез очищает их.
type RecipeWrite struct {
	Title         string
	TimeMinutes   int
	Price         decimal.Decimal
	Link          string
	TagIDs        []uuid.UUID
	IngredientIDs []uuid.UUID
}
