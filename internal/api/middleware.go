// internal/api/middleware.go
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hades874/10MS-Req-Dash/internal/auth"
	"github.com/hades874/10MS-Req-Dash/internal/models"
)

// IdentityKey is where resolved identities are stored on the gin context.
const IdentityKey = "identity"

// RequireIdentity rejects public callers with 401 and stores the resolved
// identity for downstream handlers.
func RequireIdentity(resolver *auth.Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, err := resolver.Resolve(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}
		if identity == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required for status updates"})
			c.Abort()
			return
		}

		c.Set(IdentityKey, identity)
		c.Next()
	}
}

// RequireUpdater allows only team members and managers through. Submitters
// are authenticated but may not change statuses.
func RequireUpdater() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := c.MustGet(IdentityKey).(*auth.Identity)
		if !auth.CanUpdateStatus(identity.User.Role) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Only team members and managers can update statuses"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireManager gates directory administration.
func RequireManager() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := c.MustGet(IdentityKey).(*auth.Identity)
		if identity.User.Role != models.RoleManager {
			c.JSON(http.StatusForbidden, gin.H{"error": "Manager access required"})
			c.Abort()
			return
		}
		c.Next()
	}
}
