package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/IvanChernomyrdin/go-recipe-api/internal/server/models"
	serr "github.com/IvanChernomyrdin/go-recipe-api/internal/shared/errors"
)

const recipeColumns = `r.id, r.user_id, r.title, r.time_minutes, r.price, r.link, r.image, r.created_at`

// RecipesRepository хранит рецепты и их связи с тегами и ингредиентами.
type RecipesRepository struct {
	db *sql.DB
}

func NewRecipesRepository(db *sql.DB) *RecipesRepository {
	return &RecipesRepository{db: db}
}

// List возвращает рецепты владельца в порядке создания.
//
// Фильтры по тегам и ингредиентам работают как "любой из": рецепт попадает
// в выборку, если связан хотя бы с одним из переданных id.
func (r *RecipesRepository) List(ctx context.Context, userID uuid.UUID, f models.RecipeFilter) ([]models.Recipe, error) {
	query := `SELECT ` + recipeColumns + ` FROM recipes r WHERE r.user_id = $1`
	args := []any{userID}

	if len(f.TagIDs) > 0 {
		args = append(args, uuidArray(f.TagIDs))
		query += fmt.Sprintf(` AND EXISTS (SELECT 1 FROM recipe_tags rt WHERE rt.recipe_id = r.id AND rt.tag_id = ANY($%d::uuid[]))`, len(args))
	}
	if len(f.IngredientIDs) > 0 {
		args = append(args, uuidArray(f.IngredientIDs))
		query += fmt.Sprintf(` AND EXISTS (SELECT 1 FROM recipe_ingredients ri WHERE ri.recipe_id = r.id AND ri.ingredient_id = ANY($%d::uuid[]))`, len(args))
	}
	query += ` ORDER BY r.created_at, r.id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, internal("list recipes", err)
	}
	defer rows.Close()

	recipes := []models.Recipe{}
	for rows.Next() {
		var rec models.Recipe
		if err := scanRecipe(rows, &rec); err != nil {
			return nil, internal("scan recipe", err)
		}
		recipes = append(recipes, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, internal("list recipes", err)
	}

	if err := loadLinks(ctx, r.db, recipes); err != nil {
		return nil, err
	}
	return recipes, nil
}

// Get возвращает рецепт владельца вместе с тегами и ингредиентами.
func (r *RecipesRepository) Get(ctx context.Context, userID, id uuid.UUID) (models.Recipe, error) {
	return getRecipe(ctx, r.db, userID, id)
}

// Create сохраняет рецепт и его связи в одной транзакции.
//
// Ошибки:
//   - ValidationError: среди TagIDs/IngredientIDs есть чужие или несуществующие id
//   - ErrInternal: прочие ошибки БД
func (r *RecipesRepository) Create(ctx context.Context, userID uuid.UUID, w models.RecipeWrite) (models.Recipe, error) {
	var out models.Recipe
	err := withTx(ctx, r.db, func(tx DBTX) error {
		tagIDs, ingIDs := uniqueIDs(w.TagIDs), uniqueIDs(w.IngredientIDs)
		if err := checkOwned(ctx, tx, userID, tagIDs, ingIDs); err != nil {
			return err
		}

		var id uuid.UUID
		err := tx.QueryRowContext(ctx,
			`INSERT INTO recipes (user_id, title, time_minutes, price, link)
			 VALUES ($1,$2,$3,$4,$5)
			 RETURNING id`,
			userID, w.Title, w.TimeMinutes, w.Price, w.Link,
		).Scan(&id)
		if err != nil {
			return internal("insert recipe", err)
		}

		if err := tagsTable.insertLinks(ctx, tx, id, tagIDs); err != nil {
			return err
		}
		if err := ingredientsTable.insertLinks(ctx, tx, id, ingIDs); err != nil {
			return err
		}

		out, err = getRecipe(ctx, tx, userID, id)
		return err
	})
	if err != nil {
		return models.Recipe{}, err
	}
	return out, nil
}

// Update перезаписывает поля рецепта; связи заменяются, только если срез не nil.
func (r *RecipesRepository) Update(ctx context.Context, userID, id uuid.UUID, w models.RecipeWrite) (models.Recipe, error) {
	var out models.Recipe
	err := withTx(ctx, r.db, func(tx DBTX) error {
		var tagIDs, ingIDs []uuid.UUID
		if w.TagIDs != nil {
			tagIDs = uniqueIDs(w.TagIDs)
		}
		if w.IngredientIDs != nil {
			ingIDs = uniqueIDs(w.IngredientIDs)
		}
		if err := checkOwned(ctx, tx, userID, tagIDs, ingIDs); err != nil {
			return err
		}

		err := tx.QueryRowContext(ctx,
			`UPDATE recipes SET title=$3, time_minutes=$4, price=$5, link=$6
			 WHERE id=$1 AND user_id=$2
			 RETURNING id`,
			id, userID, w.Title, w.TimeMinutes, w.Price, w.Link,
		).Scan(&id)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return serr.ErrNotFound
			}
			return internal("update recipe", err)
		}

		if tagIDs != nil {
			if err := tagsTable.replaceLinks(ctx, tx, id, tagIDs); err != nil {
				return err
			}
		}
		if ingIDs != nil {
			if err := ingredientsTable.replaceLinks(ctx, tx, id, ingIDs); err != nil {
				return err
			}
		}

		out, err = getRecipe(ctx, tx, userID, id)
		return err
	})
	if err != nil {
		return models.Recipe{}, err
	}
	return out, nil
}

// SetImage сохраняет путь изображения и возвращает предыдущий путь (или пустую строку).
func (r *RecipesRepository) SetImage(ctx context.Context, userID, id uuid.UUID, path string) (string, error) {
	var old string
	err := r.db.QueryRowContext(ctx,
		`UPDATE recipes r SET image=$3
		   FROM (SELECT id, image FROM recipes WHERE id=$1 AND user_id=$2 FOR UPDATE) prev
		  WHERE r.id = prev.id
		 RETURNING prev.image`,
		id, userID, path,
	).Scan(&old)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", serr.ErrNotFound
		}
		return "", internal("update recipe image", err)
	}
	return old, nil
}

// Delete удаляет рецепт и возвращает путь его изображения для очистки хранилища.
func (r *RecipesRepository) Delete(ctx context.Context, userID, id uuid.UUID) (string, error) {
	var image string
	err := r.db.QueryRowContext(ctx,
		`DELETE FROM recipes WHERE id=$1 AND user_id=$2 RETURNING image`,
		id, userID,
	).Scan(&image)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", serr.ErrNotFound
		}
		return "", internal("delete recipe", err)
	}
	return image, nil
}

func getRecipe(ctx context.Context, db DBTX, userID, id uuid.UUID) (models.Recipe, error) {
	var rec models.Recipe
	err := scanRecipe(db.QueryRowContext(ctx,
		`SELECT `+recipeColumns+` FROM recipes r WHERE r.id=$1 AND r.user_id=$2`,
		id, userID,
	), &rec)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Recipe{}, serr.ErrNotFound
		}
		return models.Recipe{}, internal("select recipe", err)
	}

	recipes := []models.Recipe{rec}
	if err := loadLinks(ctx, db, recipes); err != nil {
		return models.Recipe{}, err
	}
	return recipes[0], nil
}

// loadLinks подгружает теги и ингредиенты для пачки рецептов двумя запросами.
func loadLinks(ctx context.Context, db DBTX, recipes []models.Recipe) error {
	if len(recipes) == 0 {
		return nil
	}
	ids := make([]uuid.UUID, 0, len(recipes))
	for _, rec := range recipes {
		ids = append(ids, rec.ID)
	}

	tags, err := tagsTable.linked(ctx, db, ids)
	if err != nil {
		return err
	}
	ingredients, err := ingredientsTable.linked(ctx, db, ids)
	if err != nil {
		return err
	}

	for i := range recipes {
		recipes[i].Tags = make([]models.Tag, 0, len(tags[recipes[i].ID]))
		for _, n := range tags[recipes[i].ID] {
			recipes[i].Tags = append(recipes[i].Tags, toTag(n))
		}
		recipes[i].Ingredients = make([]models.Ingredient, 0, len(ingredients[recipes[i].ID]))
		for _, n := range ingredients[recipes[i].ID] {
			recipes[i].Ingredients = append(recipes[i].Ingredients, toIngredient(n))
		}
	}
	return nil
}

// checkOwned проверяет, что все переданные теги и ингредиенты принадлежат владельцу.
func checkOwned(ctx context.Context, db DBTX, userID uuid.UUID, tagIDs, ingredientIDs []uuid.UUID) error {
	verr := &serr.ValidationError{}

	if len(tagIDs) > 0 {
		n, err := tagsTable.countOwned(ctx, db, userID, tagIDs)
		if err != nil {
			return err
		}
		if n != len(tagIDs) {
			verr.Add("tags", "invalid tag id: object does not exist")
		}
	}
	if len(ingredientIDs) > 0 {
		n, err := ingredientsTable.countOwned(ctx, db, userID, ingredientIDs)
		if err != nil {
			return err
		}
		if n != len(ingredientIDs) {
			verr.Add("ingredients", "invalid ingredient id: object does not exist")
		}
	}

	if !verr.Empty() {
		return verr
	}
	return nil
}

func scanRecipe(s scanner, rec *models.Recipe) error {
	return s.Scan(&rec.ID, &rec.UserID, &rec.Title, &rec.TimeMinutes, &rec.Price, &rec.Link, &rec.Image, &rec.CreatedAt)
}
