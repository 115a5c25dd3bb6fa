package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"finz-affiliate/internal/config"
	"finz-affiliate/internal/core/domain"
	"finz-affiliate/internal/core/services"
	"finz-affiliate/internal/pkg/response"
)

// AuthHandler handles admin authentication endpoints
type AuthHandler struct {
	authService *services.AuthService
	jwtCfg      config.JWTConfig
	cookieCfg   config.CookieConfig
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *services.AuthService, jwtCfg config.JWTConfig, cookieCfg config.CookieConfig) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		jwtCfg:      jwtCfg,
		cookieCfg:   cookieCfg,
	}
}

// Login handles admin login
// @Summary Admin login
// @Description Authenticate an admin and return an access token
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body services.LoginInput true "Login credentials"
// @Success 200 {object} response.Response{data=services.AuthResponse}
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req services.LoginInput
	if err := bind(c, &req); err != nil {
		return response.BadRequest(c, "Username and password are required")
	}

	result, err := h.authService.Login(c.UserContext(), req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingCredentials):
			return response.BadRequest(c, "Username and password are required")
		case errors.Is(err, domain.ErrInvalidCredentials):
			return response.Unauthorized(c, "Invalid username or password")
		default:
			return response.InternalServerError(c, "Failed to login")
		}
	}

	h.setAuthCookie(c, result.AccessToken)

	return response.Success(c, "Login successful", result)
}

// Logout clears the auth cookie
// @Summary Admin logout
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Response
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.clearAuthCookie(c)
	return response.Success(c, "Logout successful", nil)
}

// Me returns the logged-in admin
// @Summary Current admin
// @Tags Auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	user, err := h.authService.Me(c.UserContext(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrAdminUserNotFound) {
			return response.NotFound(c, "Admin not found")
		}
		return response.InternalServerError(c, "Failed to load admin")
	}
	return response.Success(c, "Admin retrieved", user)
}

// ChangePassword changes the logged-in admin's password
// @Summary Change password
// @Tags Auth
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body services.ChangePasswordInput true "Passwords"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /auth/password [put]
func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	var req services.ChangePasswordInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	err := h.authService.ChangePassword(c.UserContext(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingPasswordField),
			errors.Is(err, services.ErrPasswordMismatch),
			errors.Is(err, services.ErrPasswordTooShort):
			return response.BadRequest(c, err.Error())
		case errors.Is(err, services.ErrWrongCurrentPassword):
			return response.Unauthorized(c, err.Error())
		case errors.Is(err, domain.ErrAdminUserNotFound):
			return response.NotFound(c, "Admin not found")
		default:
			return response.InternalServerError(c, "Failed to change password")
		}
	}

	return response.Success(c, "Password changed", nil)
}

// setAuthCookie stores the access token in an http-only cookie
func (h *AuthHandler) setAuthCookie(c *fiber.Ctx, accessToken string) {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    accessToken,
		Path:     "/",
		MaxAge:   h.jwtCfg.AccessTokenMins * 60,
		Secure:   h.cookieCfg.Secure,
		HTTPOnly: true,
		SameSite: h.cookieCfg.SameSite,
		Domain:   h.cookieCfg.Domain,
	})
}

// clearAuthCookie expires the access token cookie
func (h *AuthHandler) clearAuthCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Now().Add(-1 * time.Hour),
		Secure:   h.cookieCfg.Secure,
		HTTPOnly: true,
		SameSite: h.cookieCfg.SameSite,
		Domain:   h.cookieCfg.Domain,
	})
}
