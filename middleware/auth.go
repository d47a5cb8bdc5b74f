package middleware

import (
	"club-review/helper"
	"club-review/models"
	"club-review/session"

	"github.com/gin-gonic/gin"
)

const principalKey = "principal"

// AuthMiddleware rejects requests without a logged-in session and exposes
// the session principal to handlers.
func AuthMiddleware(h *helper.HTTPHelper) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal := session.GetLoginUser(c)
		if principal == nil {
			h.SendServiceError(c, models.ErrLoginRequired)
			c.Abort()
			return
		}

		c.Set(principalKey, *principal)
		c.Next()
	}
}

// CurrentPrincipal returns the principal set by AuthMiddleware.
func CurrentPrincipal(c *gin.Context) (models.Principal, bool) {
	value, exists := c.Get(principalKey)
	if !exists {
		return models.Principal{}, false
	}
	principal, ok := value.(models.Principal)
	return principal, ok
}
