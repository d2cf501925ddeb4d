package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/IvanChernomyrdin/go-recipe-api/internal/server/models"
	serr "github.com/IvanChernomyrdin/go-recipe-api/internal/shared/errors"
)

const userColumns = `id, email, password_hash, name, is_active, is_staff, is_superuser, created_at`

// UsersRepository хранит учётные записи пользователей.
type UsersRepository struct {
	db *sql.DB
}

func NewUsersRepository(db *sql.DB) *UsersRepository {
	return &UsersRepository{db: db}
}

// Create сохраняет пользователя; email должен быть уже нормализован.
//
// Ошибки:
//   - ErrAlreadyExists: email занят (уникальный индекс users_email_key)
//   - ErrInternal: прочие ошибки БД
func (r *UsersRepository) Create(ctx context.Context, u models.User) (models.User, error) {
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO users (email, password_hash, name, is_active, is_staff, is_superuser)
		 VALUES ($1,$2,$3,$4,$5,$6)
		 RETURNING id, created_at`,
		u.Email, u.PasswordHash, u.Name, u.IsActive, u.IsStaff, u.IsSuperuser,
	).Scan(&u.ID, &u.CreatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			return models.User{}, serr.ErrAlreadyExists
		}
		return models.User{}, internal("insert user", err)
	}
	return u, nil
}

func (r *UsersRepository) GetByEmail(ctx context.Context, email string) (models.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE email=$1`, email)
}

func (r *UsersRepository) GetByID(ctx context.Context, id uuid.UUID) (models.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE id=$1`, id)
}

// List возвращает всех пользователей (консоль администратора).
func (r *UsersRepository) List(ctx context.Context) ([]models.User, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+userColumns+` FROM users ORDER BY email`)
	if err != nil {
		return nil, internal("list users", err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var u models.User
		if err := scanUser(rows, &u); err != nil {
			return nil, internal("scan user", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, internal("list users", err)
	}
	return users, nil
}

// Update перезаписывает изменяемые поля пользователя (последняя запись побеждает).
func (r *UsersRepository) Update(ctx context.Context, u models.User) (models.User, error) {
	err := r.db.QueryRowContext(ctx,
		`UPDATE users
		    SET email=$2, password_hash=$3, name=$4, is_active=$5, is_staff=$6, is_superuser=$7
		  WHERE id=$1
		  RETURNING created_at`,
		u.ID, u.Email, u.PasswordHash, u.Name, u.IsActive, u.IsStaff, u.IsSuperuser,
	).Scan(&u.CreatedAt)

	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return models.User{}, serr.ErrNotFound
		case isUniqueViolation(err):
			return models.User{}, serr.ErrAlreadyExists
		}
		return models.User{}, internal("update user", err)
	}
	return u, nil
}

func (r *UsersRepository) getOne(ctx context.Context, query string, arg any) (models.User, error) {
	var u models.User
	if err := scanUser(r.db.QueryRowContext(ctx, query, arg), &u); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, serr.ErrNotFound
		}
		return models.User{}, internal("select user", err)
	}
	return u, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanUser(s scanner, u *models.User) error {
	return s.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.IsActive, &u.IsStaff, &u.IsSuperuser, &u.CreatedAt)
}
