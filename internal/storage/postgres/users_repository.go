package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/urbangis/server/internal/domain/users"
)

var _ users.Repository = (*UserRepository)(nil)

// uniqueViolation is the Postgres error code raised by the users_email_key
// constraint.
const uniqueViolation = "23505"

func (r *UserRepository) Create(ctx context.Context, name, email, passwordHash, role string) (users.User, error) {
	row := r.pool.QueryRow(ctx, `
INSERT INTO users (name, email, password_hash, role)
VALUES ($1, $2, $3, $4)
RETURNING id, name, email, role
`, name, email, passwordHash, role)

	var user users.User
	if err := row.Scan(&user.ID, &user.Name, &user.Email, &user.Role); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return users.User{}, users.ErrEmailTaken
		}
		return users.User{}, fmt.Errorf("insert user: %w", err)
	}
	return user, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (users.User, error) {
	row := r.pool.QueryRow(ctx, `
SELECT id, name, email, role, password_hash
  FROM users
 WHERE email = $1
`, email)

	var user users.User
	if err := row.Scan(&user.ID, &user.Name, &user.Email, &user.Role, &user.PasswordHash); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return users.User{}, users.ErrNotFound
		}
		return users.User{}, fmt.Errorf("get user by email: %w", err)
	}
	return user, nil
}
