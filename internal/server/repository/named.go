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

// namedTable описывает таблицу вида (id, user_id, name) и её связь с рецептами.
// Теги и ингредиенты устроены одинаково и отличаются только таблицами.
type namedTable struct {
	table      string // tags | ingredients
	linkTable  string // recipe_tags | recipe_ingredients
	linkColumn string // tag_id | ingredient_id
}

var (
	tagsTable        = namedTable{table: "tags", linkTable: "recipe_tags", linkColumn: "tag_id"}
	ingredientsTable = namedTable{table: "ingredients", linkTable: "recipe_ingredients", linkColumn: "ingredient_id"}
)

type namedRow struct {
	ID     uuid.UUID
	UserID uuid.UUID
	Name   string
}

// list: записи владельца по имени в обратном порядке.
func (t namedTable) list(ctx context.Context, db DBTX, userID uuid.UUID, f models.NameFilter) ([]namedRow, error) {
	query := fmt.Sprintf(`SELECT n.id, n.user_id, n.name FROM %s n WHERE n.user_id = $1`, t.table)
	if f.AssignedOnly {
		query += fmt.Sprintf(` AND EXISTS (SELECT 1 FROM %s l WHERE l.%s = n.id)`, t.linkTable, t.linkColumn)
	}
	query += ` ORDER BY n.name DESC`

	rows, err := db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, internal("list "+t.table, err)
	}
	defer rows.Close()

	out := []namedRow{}
	for rows.Next() {
		var n namedRow
		if err := rows.Scan(&n.ID, &n.UserID, &n.Name); err != nil {
			return nil, internal("scan "+t.table, err)
		}
		out = append(out, n)
	}
	if err := rows.Err(); err != nil {
		return nil, internal("list "+t.table, err)
	}
	return out, nil
}

func (t namedTable) create(ctx context.Context, db DBTX, userID uuid.UUID, name string) (namedRow, error) {
	n := namedRow{UserID: userID, Name: name}
	err := db.QueryRowContext(ctx,
		fmt.Sprintf(`INSERT INTO %s (user_id, name) VALUES ($1,$2) RETURNING id`, t.table),
		userID, name,
	).Scan(&n.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return namedRow{}, serr.ErrAlreadyExists
		}
		return namedRow{}, internal("insert "+t.table, err)
	}
	return n, nil
}

// get: запись владельца; чужая запись неотличима от отсутствующей.
func (t namedTable) get(ctx context.Context, db DBTX, userID, id uuid.UUID) (namedRow, error) {
	var n namedRow
	err := db.QueryRowContext(ctx,
		fmt.Sprintf(`SELECT id, user_id, name FROM %s WHERE id=$1 AND user_id=$2`, t.table),
		id, userID,
	).Scan(&n.ID, &n.UserID, &n.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return namedRow{}, serr.ErrNotFound
		}
		return namedRow{}, internal("select "+t.table, err)
	}
	return n, nil
}

func (t namedTable) rename(ctx context.Context, db DBTX, userID, id uuid.UUID, name string) (namedRow, error) {
	n := namedRow{ID: id, UserID: userID, Name: name}
	err := db.QueryRowContext(ctx,
		fmt.Sprintf(`UPDATE %s SET name=$3 WHERE id=$1 AND user_id=$2 RETURNING id`, t.table),
		id, userID, name,
	).Scan(&n.ID)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return namedRow{}, serr.ErrNotFound
		case isUniqueViolation(err):
			return namedRow{}, serr.ErrAlreadyExists
		}
		return namedRow{}, internal("update "+t.table, err)
	}
	return n, nil
}

func (t namedTable) delete(ctx context.Context, db DBTX, userID, id uuid.UUID) error {
	res, err := db.ExecContext(ctx,
		fmt.Sprintf(`DELETE FROM %s WHERE id=$1 AND user_id=$2`, t.table),
		id, userID,
	)
	if err != nil {
		return internal("delete "+t.table, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return internal("delete "+t.table, err)
	}
	if n == 0 {
		return serr.ErrNotFound
	}
	return nil
}

// countOwned считает, сколько из ids принадлежит владельцу.
func (t namedTable) countOwned(ctx context.Context, db DBTX, userID uuid.UUID, ids []uuid.UUID) (int, error) {
	var n int
	err := db.QueryRowContext(ctx,
		fmt.Sprintf(`SELECT count(*) FROM %s WHERE user_id=$1 AND id = ANY($2::uuid[])`, t.table),
		userID, uuidArray(ids),
	).Scan(&n)
	if err != nil {
		return 0, internal("count "+t.table, err)
	}
	return n, nil
}

// linked возвращает записи, привязанные к рецептам, сгруппированные по recipe_id.
func (t namedTable) linked(ctx context.Context, db DBTX, recipeIDs []uuid.UUID) (map[uuid.UUID][]namedRow, error) {
	out := make(map[uuid.UUID][]namedRow, len(recipeIDs))
	if len(recipeIDs) == 0 {
		return out, nil
	}

	rows, err := db.QueryContext(ctx,
		fmt.Sprintf(`SELECT l.recipe_id, n.id, n.user_id, n.name
		   FROM %s l
		   JOIN %s n ON n.id = l.%s
		  WHERE l.recipe_id = ANY($1::uuid[])
		  ORDER BY n.name DESC`, t.linkTable, t.table, t.linkColumn),
		uuidArray(recipeIDs),
	)
	if err != nil {
		return nil, internal("select linked "+t.table, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			recipeID uuid.UUID
			n        namedRow
		)
		if err := rows.Scan(&recipeID, &n.ID, &n.UserID, &n.Name); err != nil {
			return nil, internal("scan linked "+t.table, err)
		}
		out[recipeID] = append(out[recipeID], n)
	}
	if err := rows.Err(); err != nil {
		return nil, internal("select linked "+t.table, err)
	}
	return out, nil
}

// replaceLinks заменяет набор связей рецепта.
func (t namedTable) replaceLinks(ctx context.Context, db DBTX, recipeID uuid.UUID, ids []uuid.UUID) error {
	if _, err := db.ExecContext(ctx,
		fmt.Sprintf(`DELETE FROM %s WHERE recipe_id=$1`, t.linkTable),
		recipeID,
	); err != nil {
		return internal("clear "+t.linkTable, err)
	}
	return t.insertLinks(ctx, db, recipeID, ids)
}

func (t namedTable) insertLinks(ctx context.Context, db DBTX, recipeID uuid.UUID, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	if _, err := db.ExecContext(ctx,
		fmt.Sprintf(`INSERT INTO %s (recipe_id, %s) SELECT $1, unnest($2::uuid[])`, t.linkTable, t.linkColumn),
		recipeID, uuidArray(ids),
	); err != nil {
		return internal("insert "+t.linkTable, err)
	}
	return nil
}
