package ports

import (
	"context"
	"time"

	"github.com/ais-aviation/auth-service/internal/core/domain"
)

// AuthRepository defines the persistence surface for user records. The
// service only ever looks users up by email, inserts single rows, and
// touches the sign-in timestamp.
type AuthRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	UpdateLastSignedIn(ctx context.Context, id int64, at time.Time) error
}
