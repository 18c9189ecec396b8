package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/sdiallo/quincaillerie-api/internal/models"
)

var (
	ErrDuplicateUser = errors.New("пользователь уже существует")
)

const (
	InsertUserQuery = `
        INSERT INTO
            users (nom, prenom, email, hash, role)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id
    `
	SelectUserQuery = `
        SELECT
            id,
            nom,
            prenom,
            email,
            hash,
            role
        FROM
            users
        WHERE
            email = $1
            AND deleted_at IS NULL
    `
)

type UserDB struct {
	models.User
}

// CreateUser создает нового пользователя в базе данных
func (d *Database) CreateUser(ctx context.Context, user UserDB) (int64, error) {
	var id int64
	err := d.db.QueryRow(ctx, InsertUserQuery,
		user.Nom, user.Prenom, user.Email, user.Hash, string(user.Role)).Scan(&id)
	if err != nil {
		var e *pgconn.PgError
		if errors.As(err, &e) && e.Code == pgerrcode.UniqueViolation {
			return 0, ErrDuplicateUser
		}
		return 0, fmt.Errorf("ошибка при создании пользователя: %w", err)
	}
	return id, nil
}

// FindUser находит пользователя в базе данных по email
func (d *Database) FindUser(ctx context.Context, email string) (*UserDB, error) {
	user := &UserDB{}

	var role string
	if err := d.db.QueryRow(ctx, SelectUserQuery, email).
		Scan(&user.ID, &user.Nom, &user.Prenom, &user.Email, &user.Hash, &role); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("ошибка при получении пользователя: %w", err)
	}
	user.Role = models.Role(role)

	return user, nil
}
