package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/shopworks/storefront/internal/domain/errors"
	pkgAuth "github.com/shopworks/storefront/internal/pkg/auth"
	"github.com/shopworks/storefront/internal/server/http/dto"
	"github.com/shopworks/storefront/internal/server/http/middleware"
)

// AuthHandler processes signup, login and session maintenance.
type AuthHandler struct {
	facade  AuthFacade
	cookies middleware.CookieOptions
	logger  *slog.Logger
}

// NewAuthHandler creates AuthHandler instance.
func NewAuthHandler(facade AuthFacade, cookies middleware.CookieOptions, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{facade: facade, cookies: cookies, logger: logger}
}

// Signup handles POST /api/auth/signup.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, failed("Invalid request body"))
		return
	}

	user, pair, err := h.facade.Signup(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrAlreadyExists):
			c.JSON(http.StatusBadRequest, failed("User already exists"))
		case errors.Is(err, domainErrors.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, failed(err.Error()))
		default:
			c.JSON(http.StatusInternalServerError, failed(err.Error()))
		}
		return
	}

	middleware.SetTokenPairCookies(c, pair, h.cookies)
	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "User created successfully",
		"user":    dto.NewUserPayload(user),
	})
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, failed("Invalid request body"))
		return
	}

	user, pair, err := h.facade.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, failed("Invalid email or password"))
		default:
			c.JSON(http.StatusInternalServerError, failed(err.Error()))
		}
		return
	}

	middleware.SetTokenPairCookies(c, pair, h.cookies)
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Logged in successfully",
		"user":    dto.NewUserPayload(user),
	})
}

// Logout handles POST /api/auth/logout. Revocation is best effort so a
// stale or missing refresh cookie still logs the client out.
func (h *AuthHandler) Logout(c *gin.Context) {
	token := middleware.RefreshTokenFromRequest(c)
	if err := h.facade.Logout(c.Request.Context(), token); err != nil {
		h.logger.Warn("failed to revoke refresh token", "error", err)
	}

	middleware.ClearTokenCookies(c, h.cookies)
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Logged out successfully",
	})
}

// Refresh handles POST /api/auth/refresh-token.
func (h *AuthHandler) Refresh(c *gin.Context) {
	token := middleware.RefreshTokenFromRequest(c)
	access, err := h.facade.RefreshAccessToken(c.Request.Context(), token)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrUnauthenticated):
			c.JSON(http.StatusUnauthorized, failed("Unauthorized - refresh token not found"))
		case errors.Is(err, pkgAuth.ErrInvalidToken):
			c.JSON(http.StatusUnauthorized, failed("Unauthorized - invalid refresh token"))
		default:
			c.JSON(http.StatusInternalServerError, failed(err.Error()))
		}
		return
	}

	middleware.SetAccessCookie(c, access, h.cookies)
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}
