package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/samandar-s/exchange_office_app/internal/core/domain"
	portssvc "github.com/samandar-s/exchange_office_app/internal/core/ports/services"
)

// ActorMiddleware resolves the authenticated user into a domain actor and
// stores it in the context. It must run after AuthMiddleware. Services take
// the actor as an explicit argument rather than digging identity out of the
// context themselves.
func ActorMiddleware(userSvc portssvc.UserReaderSvc) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		userID, ok := GetUserIDFromContext(c)
		if !ok {
			logger.Error("Actor resolution attempted without authenticated user")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		user, err := userSvc.GetUserByID(c.Request.Context(), userID)
		if err != nil {
			logger.Warn("Failed to load user for actor resolution", "error", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unknown user"})
			return
		}

		actor := domain.Actor{
			UserID:    user.UserID,
			Role:      user.Role,
			BranchIDs: user.BranchIDs,
		}

		c.Set(string(actorKey), actor)
		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), actorKey, actor))

		c.Next()
	}
}
