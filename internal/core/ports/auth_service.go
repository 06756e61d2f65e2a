package ports

import (
	"context"

	"github.com/ais-aviation/auth-service/internal/core/domain"
)

// PasswordVerification is the soft result returned by VerifyPassword. Unlike
// Login, the reason distinguishes an unknown or passwordless account from a
// wrong password; this endpoint serves a trusted internal caller.
type PasswordVerification struct {
	OK     bool
	Reason string
	User   *domain.User
}

type AuthService interface {
	Register(ctx context.Context, email, password, name string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*domain.User, error)
	VerifyPassword(ctx context.Context, email, password string) (PasswordVerification, error)
}
