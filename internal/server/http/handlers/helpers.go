package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/shopworks/storefront/internal/domain/model"
	"github.com/shopworks/storefront/internal/server/http/middleware"
)

// CurrentUser extracts the authenticated user attached by RequireSession.
func CurrentUser(c *gin.Context) *model.User {
	val, ok := c.Get(middleware.UserContextKey)
	if !ok {
		return nil
	}
	user, _ := val.(*model.User)
	return user
}

func failed(message string) gin.H {
	return gin.H{"status": "failed", "message": message}
}
