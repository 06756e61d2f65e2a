package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ais-aviation/auth-service/internal/core/domain"
)

var userRows = []string{"id", "openId", "name", "email", "passwordHash", "loginMethod", "role", "createdAt", "updatedAt", "lastSignedIn"}

func newRepoWithMock(t *testing.T) (*UserRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewUserRepository(db), mock, db
}

func TestFindByEmail_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now().UTC()
	rows := sqlmock.NewRows(userRows).
		AddRow(int64(7), "local_0123456789abcdef", "Alice", "alice@example.com", "$2a$10$hash", "password", "user", now, now, now)
	mock.ExpectQuery(`(?s)^SELECT .+ FROM users WHERE email = \$1$`).
		WithArgs("alice@example.com").
		WillReturnRows(rows)

	got, err := repo.FindByEmail(context.Background(), "alice@example.com")
	if err != nil {
		t.Fatalf("FindByEmail error: %v", err)
	}
	if got.ID != 7 || got.OpenID != "local_0123456789abcdef" || got.Email != "alice@example.com" {
		t.Fatalf("unexpected user: %+v", got)
	}
	if got.PasswordHash != "$2a$10$hash" || got.Role != "user" {
		t.Fatalf("unexpected user: %+v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestFindByEmail_NullableColumns(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now().UTC()
	rows := sqlmock.NewRows(userRows).
		AddRow(int64(8), "sso_abc", nil, nil, nil, nil, "user", now, now, now)
	mock.ExpectQuery(`(?s)^SELECT .+ FROM users WHERE email = \$1$`).
		WithArgs("").
		WillReturnRows(rows)

	got, err := repo.FindByEmail(context.Background(), "")
	if err != nil {
		t.Fatalf("FindByEmail error: %v", err)
	}
	if got.Name != "" || got.Email != "" || got.PasswordHash != "" || got.LoginMethod != "" {
		t.Fatalf("expected empty strings for NULL columns, got %+v", got)
	}
}

func TestFindByEmail_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)^SELECT .+ FROM users WHERE email = \$1$`).
		WithArgs("ghost@example.com").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByEmail(context.Background(), "ghost@example.com")
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestFindByEmail_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)^SELECT .+ FROM users WHERE email = \$1$`).
		WithArgs("alice@example.com").
		WillReturnError(errors.New("db down"))

	_, err := repo.FindByEmail(context.Background(), "alice@example.com")
	if err == nil || !strings.Contains(err.Error(), "find user: db down") {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now().UTC()
	rows := sqlmock.NewRows(userRows).
		AddRow(int64(42), "local_0123456789abcdef", "Bob", "bob@example.com", "$2a$10$hash", "password", "admin", now, now, now)
	mock.ExpectQuery(`(?s)^INSERT INTO users .+ VALUES \(\$1, \$2, \$3, \$4, \$5, \$6\).+RETURNING .+$`).
		WithArgs("local_0123456789abcdef",
			sql.NullString{String: "Bob", Valid: true},
			sql.NullString{String: "bob@example.com", Valid: true},
			sql.NullString{String: "$2a$10$hash", Valid: true},
			sql.NullString{String: "password", Valid: true},
			"admin").
		WillReturnRows(rows)

	got, err := repo.Create(context.Background(), &domain.User{
		OpenID:       "local_0123456789abcdef",
		Name:         "Bob",
		Email:        "bob@example.com",
		PasswordHash: "$2a$10$hash",
		LoginMethod:  "password",
		Role:         "admin",
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID != 42 || got.Role != "admin" || !got.CreatedAt.Equal(now) {
		t.Fatalf("unexpected user: %+v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreate_UniqueViolation(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)^INSERT INTO users .+$`).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})

	_, err := repo.Create(context.Background(), &domain.User{
		OpenID: "local_0", Email: "dup@example.com", Role: "user",
	})
	if !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestCreate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)^INSERT INTO users .+$`).
		WillReturnError(errors.New("db down"))

	_, err := repo.Create(context.Background(), &domain.User{OpenID: "local_0", Role: "user"})
	if err == nil || !strings.Contains(err.Error(), "insert user: db down") {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestUpdateLastSignedIn_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	at := time.Now().UTC()
	mock.ExpectExec(`(?s)^UPDATE users SET "lastSignedIn" = \$2, "updatedAt" = \$2 WHERE id = \$1$`).
		WithArgs(int64(7), at).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.UpdateLastSignedIn(context.Background(), 7, at); err != nil {
		t.Fatalf("UpdateLastSignedIn error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUpdateLastSignedIn_NoRow(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	at := time.Now().UTC()
	mock.ExpectExec(`(?s)^UPDATE users SET .+ WHERE id = \$1$`).
		WithArgs(int64(99), at).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.UpdateLastSignedIn(context.Background(), 99, at); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
