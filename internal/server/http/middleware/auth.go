package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/shopworks/storefront/internal/domain/errors"
	"github.com/shopworks/storefront/internal/domain/model"
	pkgAuth "github.com/shopworks/storefront/internal/pkg/auth"
)

const (
	// UserContextKey is the gin context key for the resolved user record.
	UserContextKey = "currentUser"

	accessCookieName  = "accessToken"
	refreshCookieName = "refreshToken"
)

// SessionResolver maps an access token to its user record.
type SessionResolver interface {
	ResolveAccessToken(ctx context.Context, token string) (*model.User, error)
}

// RequireSession authenticates the request via the access-token cookie
// and attaches the resolved user to the context. The role is resolved
// from storage, not from the token, so stale tokens cannot hold onto a
// revoked role.
func RequireSession(resolver SessionResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(accessCookieName)
		if err != nil || token == "" {
			abortWithMessage(c, http.StatusUnauthorized, "Unauthorized - access token not found")
			return
		}

		user, err := resolver.ResolveAccessToken(c.Request.Context(), token)
		if err != nil {
			switch {
			case errors.Is(err, pkgAuth.ErrInvalidToken):
				abortWithMessage(c, http.StatusUnauthorized, "Unauthorized - invalid access token")
			case errors.Is(err, domainErrors.ErrNotFound):
				abortWithMessage(c, http.StatusUnauthorized, "Unauthorized - user not found")
			default:
				abortWithMessage(c, http.StatusInternalServerError, err.Error())
			}
			return
		}

		c.Set(UserContextKey, user)
		c.Next()
	}
}

// RequireRole gates the request on the attached user's role. It must
// run after RequireSession.
func RequireRole(role model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		val, ok := c.Get(UserContextKey)
		user, cast := val.(*model.User)
		if !ok || !cast {
			abortWithMessage(c, http.StatusUnauthorized, "Unauthorized - access token not found")
			return
		}
		if user.Role != role {
			abortWithMessage(c, http.StatusForbidden, "Forbidden - insufficient role")
			return
		}
		c.Next()
	}
}

func abortWithMessage(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{"status": "failed", "message": message})
}

// CookieOptions describe how session cookies are written. Secure is set
// in production so cookies never travel over plain HTTP there.
type CookieOptions struct {
	AccessMaxAge  int
	RefreshMaxAge int
	Secure        bool
}

// SetTokenPairCookies attaches both session cookies to the response.
func SetTokenPairCookies(c *gin.Context, pair pkgAuth.TokenPair, opts CookieOptions) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(accessCookieName, pair.AccessToken, opts.AccessMaxAge, "/", "", opts.Secure, true)
	c.SetCookie(refreshCookieName, pair.RefreshToken, opts.RefreshMaxAge, "/", "", opts.Secure, true)
}

// SetAccessCookie rewrites only the access cookie, leaving the refresh
// cookie untouched.
func SetAccessCookie(c *gin.Context, token string, opts CookieOptions) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(accessCookieName, token, opts.AccessMaxAge, "/", "", opts.Secure, true)
}

// ClearTokenCookies removes both session cookies.
func ClearTokenCookies(c *gin.Context, opts CookieOptions) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(accessCookieName, "", -1, "/", "", opts.Secure, true)
	c.SetCookie(refreshCookieName, "", -1, "/", "", opts.Secure, true)
}

// RefreshTokenFromRequest reads the refresh cookie, returning an empty
// string when absent.
func RefreshTokenFromRequest(c *gin.Context) string {
	token, err := c.Cookie(refreshCookieName)
	if err != nil {
		return ""
	}
	return token
}
