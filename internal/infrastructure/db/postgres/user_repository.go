package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ais-aviation/auth-service/internal/core/domain"
)

// Column names are quoted because the shared table uses camelCase
// identifiers (it predates this service).
const userColumns = `id, "openId", name, email, "passwordHash", "loginMethod", role, "createdAt", "updatedAt", "lastSignedIn"`

const uniqueViolation = "23505"

type UserRepository struct {
	db DBTX
}

func NewUserRepository(db DBTX) *UserRepository {
	return &UserRepository{db: db}
}

// FindByEmail returns the user with the exact stored email, or
// domain.ErrUserNotFound. Email lookups are the only read path this service
// needs.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	user, err := scanUser(r.db.QueryRowContext(ctx, query, email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}

// Create inserts a single row and returns it with the generated id and
// server-side timestamps. A unique-index violation on email or openId maps
// to domain.ErrUserExists, so a registration race lost to a concurrent
// insert still surfaces as a conflict rather than a server error.
func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `INSERT INTO users ("openId", name, email, "passwordHash", "loginMethod", role)
	          VALUES ($1, $2, $3, $4, $5, $6)
	          RETURNING ` + userColumns

	created, err := scanUser(r.db.QueryRowContext(ctx, query,
		user.OpenID,
		nullString(user.Name),
		nullString(user.Email),
		nullString(user.PasswordHash),
		nullString(user.LoginMethod),
		user.Role,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return created, nil
}

// UpdateLastSignedIn records a successful sign-in. updatedAt moves with it,
// matching the table's touch-on-mutation convention.
func (r *UserRepository) UpdateLastSignedIn(ctx context.Context, id int64, at time.Time) error {
	query := `UPDATE users SET "lastSignedIn" = $2, "updatedAt" = $2 WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id, at)
	if err != nil {
		return fmt.Errorf("update last sign-in: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update last sign-in: %w", err)
	}
	if n == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func scanUser(row *sql.Row) (*domain.User, error) {
	var (
		u            domain.User
		name         sql.NullString
		email        sql.NullString
		passwordHash sql.NullString
		loginMethod  sql.NullString
	)
	err := row.Scan(
		&u.ID, &u.OpenID, &name, &email, &passwordHash, &loginMethod,
		&u.Role, &u.CreatedAt, &u.UpdatedAt, &u.LastSignedIn,
	)
	if err != nil {
		return nil, err
	}
	u.Name = name.String
	u.Email = email.String
	u.PasswordHash = passwordHash.String
	u.LoginMethod = loginMethod.String
	return &u, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
