package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ais-aviation/auth-service/internal/core/ports"
)

// AuthHandler exposes the credential manager over HTTP. Domain errors are
// returned as-is and mapped to status codes by the central error handler.
type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register creates a new user account.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Email, password (8-128 chars), optional name"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	user, err := h.authService.Register(c.Request().Context(), req.Email, req.Password, req.Name)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, authResponse{
		Success: true,
		User:    toUserPayload(user),
		Message: "Registration successful.",
	})
}

// Login authenticates a user with email and password.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, authResponse{
		Success: true,
		User:    toUserPayload(user),
		Message: "Login successful.",
	})
}

// VerifyPassword checks a password on behalf of the main backend. Failures
// are reported as a 200 with success=false and a differentiated reason; only
// malformed requests and infrastructure failures produce non-200 codes.
//
// @Summary      Verify a password for an internal caller
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      verifyPasswordRequest  true  "Email and password to check"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /auth/verify-password [post]
func (h *AuthHandler) VerifyPassword(c echo.Context) error {
	var req verifyPasswordRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	result, err := h.authService.VerifyPassword(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	if !result.OK {
		return c.JSON(http.StatusOK, authResponse{Success: false, Message: result.Reason})
	}
	return c.JSON(http.StatusOK, authResponse{
		Success: true,
		User:    toUserPayload(result.User),
		Message: "Password verified.",
	})
}
