package handler

import "github.com/ais-aviation/auth-service/internal/core/domain"

// --- Request types ---

type registerRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=128"`
	Name     string `json:"name"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// verifyPasswordRequest deliberately skips email syntax validation: the
// caller is the main backend passing through whatever identifier it holds.
type verifyPasswordRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// --- Response types ---

// userPayload is the public projection of a user record. The password hash
// and timestamps never leave the service.
type userPayload struct {
	ID     int64  `json:"id"`
	OpenID string `json:"openId"`
	Name   string `json:"name,omitempty"`
	Email  string `json:"email,omitempty"`
	Role   string `json:"role"`
}

type authResponse struct {
	Success bool         `json:"success"`
	User    *userPayload `json:"user,omitempty"`
	Message string       `json:"message,omitempty"`
}

func toUserPayload(u *domain.User) *userPayload {
	if u == nil {
		return nil
	}
	return &userPayload{
		ID:     u.ID,
		OpenID: u.OpenID,
		Name:   u.Name,
		Email:  u.Email,
		Role:   u.Role,
	}
}
