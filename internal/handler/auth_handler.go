package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"contacthub/internal/apperrors"
	"contacthub/internal/auth"
	"contacthub/internal/service"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// SignupRequest represents a user signup request.
type SignupRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserResponse is the public view of a user.
type UserResponse struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
}

// AuthData bundles the issued token with the user it identifies.
type AuthData struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// Signup godoc
// @Summary Register a new user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body SignupRequest true "Signup data"
// @Success 201 {object} Envelope
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 409 {object} apperrors.ErrorResponse
// @Failure 500 {object} apperrors.ErrorResponse
// @Router /auth/signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req SignupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, token, err := h.authService.Signup(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, Envelope{
		Success: true,
		Message: "User registered successfully",
		Data: AuthData{
			Token: token,
			User:  UserResponse{ID: user.ID, Email: user.Email},
		},
	})
}

// Login godoc
// @Summary Login with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} Envelope
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 401 {object} apperrors.ErrorResponse
// @Failure 500 {object} apperrors.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, token, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, Envelope{
		Success: true,
		Message: "Login successful",
		Data: AuthData{
			Token: token,
			User:  UserResponse{ID: user.ID, Email: user.Email},
		},
	})
}

// Verify godoc
// @Summary Echo the identity behind a valid token
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Envelope
// @Failure 401 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /auth/verify [get]
func (h *AuthHandler) Verify(c echo.Context) error {
	identity, ok := auth.IdentityFrom(c)
	if !ok {
		return respondError(c, apperrors.ErrTokenMissing)
	}

	// The token itself carries the identity; the lookup only confirms the
	// account still exists for the caller's benefit.
	user, err := h.authService.FindByEmail(c.Request().Context(), identity.Email)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, Envelope{
		Success: true,
		Data: map[string]interface{}{
			"user": UserResponse{ID: user.ID, Email: user.Email},
		},
	})
}
