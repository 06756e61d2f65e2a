package service

import (
	"context"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/ais-aviation/auth-service/internal/api/metrics"
	"github.com/ais-aviation/auth-service/internal/core/domain"
	"github.com/ais-aviation/auth-service/internal/core/ports"
)

// openIDPrefix namespaces external identifiers minted by this service, as
// opposed to ids imported from social providers.
const openIDPrefix = "local_"

// VerifyPassword reasons, consumed verbatim by the main backend.
const (
	ReasonNotFound = "User not found or no password set."
	ReasonMismatch = "Password does not match."
)

// AuthService implements registration, login, and password verification
// against the shared users table.
type AuthService struct {
	repo       ports.AuthRepository
	ownerEmail string
	cost       int
	log        zerolog.Logger
}

// NewAuthService builds an AuthService. ownerEmail may be empty, which
// disables the admin bootstrap. Costs outside bcrypt's supported range fall
// back to bcrypt.DefaultCost.
func NewAuthService(repo ports.AuthRepository, ownerEmail string, bcryptCost int, log zerolog.Logger) *AuthService {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AuthService{repo: repo, ownerEmail: ownerEmail, cost: bcryptCost, log: log}
}

// Register creates a user with a freshly minted openId and a bcrypt hash of
// the password. If the email matches the configured owner email
// (case-insensitively) the account is created as admin; this guarantees the
// configured owner becomes an administrator on first registration regardless
// of registration order. Returns domain.ErrUserExists when the email is
// already taken.
func (s *AuthService) Register(ctx context.Context, email, password, name string) (*domain.User, error) {
	existing, err := s.repo.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrUserExists
	}

	start := time.Now()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	metrics.HashDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		return nil, err
	}

	role := domain.RoleUser
	if s.ownerEmail != "" && strings.EqualFold(email, s.ownerEmail) {
		role = domain.RoleAdmin
	}

	created, err := s.repo.Create(ctx, &domain.User{
		OpenID:       newOpenID(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		LoginMethod:  domain.LoginMethodPassword,
		Role:         role,
	})
	if err != nil {
		return nil, err
	}

	metrics.RegistrationsTotal.WithLabelValues(created.Role).Inc()
	s.log.Info().
		Str("open_id", created.OpenID).
		Str("role", created.Role).
		Msg("user registered")

	return created, nil
}

// Login authenticates a user by email and password. Every failure collapses
// to domain.ErrInvalidCredentials so the response never reveals whether the
// email is registered. On success the sign-in timestamp is updated
// best-effort: a failed update is logged but does not fail the login.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, error) {
	user, failure, err := s.verify(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if failure != verifyOK {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return nil, domain.ErrInvalidCredentials
	}

	now := time.Now().UTC()
	if err := s.repo.UpdateLastSignedIn(ctx, user.ID, now); err != nil {
		s.log.Warn().Err(err).Int64("user_id", user.ID).Msg("last sign-in update failed")
	} else {
		user.LastSignedIn = now
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return user, nil
}

// VerifyPassword runs the same checks as Login but reports failures as a
// soft result with a differentiated reason instead of an error. It never
// mutates state. Intended for the main backend only; exposing the reason
// publicly would undo Login's enumeration resistance.
func (s *AuthService) VerifyPassword(ctx context.Context, email, password string) (ports.PasswordVerification, error) {
	user, failure, err := s.verify(ctx, email, password)
	if err != nil {
		return ports.PasswordVerification{}, err
	}

	switch failure {
	case verifyNotFound:
		metrics.PasswordVerificationsTotal.WithLabelValues("not_found").Inc()
		return ports.PasswordVerification{Reason: ReasonNotFound}, nil
	case verifyMismatch:
		metrics.PasswordVerificationsTotal.WithLabelValues("mismatch").Inc()
		return ports.PasswordVerification{Reason: ReasonMismatch}, nil
	}

	metrics.PasswordVerificationsTotal.WithLabelValues("verified").Inc()
	return ports.PasswordVerification{OK: true, User: user}, nil
}

type verifyFailure int

const (
	verifyOK verifyFailure = iota
	verifyNotFound
	verifyMismatch
)

// verify is the single verification path shared by Login and VerifyPassword,
// so the two endpoints cannot drift apart behaviourally. An account without
// a password hash (social login) fails the same way as an unknown email.
func (s *AuthService) verify(ctx context.Context, email, password string) (*domain.User, verifyFailure, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, verifyNotFound, nil
		}
		return nil, verifyOK, err
	}
	if user.PasswordHash == "" {
		return nil, verifyNotFound, nil
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, verifyMismatch, nil
	}
	return user, verifyOK, nil
}

// newOpenID mints an external identifier: the local namespace prefix plus 16
// hex characters (64 bits) of a fresh v4 UUID. Collision-resistant, not a
// secret.
func newOpenID() string {
	id := uuid.New()
	return openIDPrefix + hex.EncodeToString(id[:])[:16]
}
