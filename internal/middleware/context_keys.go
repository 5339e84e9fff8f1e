package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/samandar-s/exchange_office_app/internal/core/domain"
)

// userIDKey is the key used to store the authenticated user's ID in the context.
const userIDKey = contextKey("userID")

// actorKey is the key used to store the resolved actor in the context.
const actorKey = contextKey("actor")

// GetUserIDFromContext retrieves the authenticated user ID from the Gin context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userIDVal, exists := c.Get(string(userIDKey))
	if !exists {
		// check in the request context as well
		if userIDVal := c.Request.Context().Value(userIDKey); userIDVal != nil {
			return userIDVal.(string), true
		}
		return "", false
	}

	userID, ok := userIDVal.(string)
	if !ok {
		return "", false
	}

	return userID, true
}

// GetUserIDFromCtx retrieves the authenticated user ID from a standard context.
func GetUserIDFromCtx(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey).(string)
	return userID, ok
}

// GetActorFromContext retrieves the resolved actor from the Gin context.
// It returns the actor and a boolean indicating if it was found.
func GetActorFromContext(c *gin.Context) (domain.Actor, bool) {
	if actorVal, exists := c.Get(string(actorKey)); exists {
		if actor, ok := actorVal.(domain.Actor); ok {
			return actor, true
		}
	}
	if actor, ok := c.Request.Context().Value(actorKey).(domain.Actor); ok {
		return actor, true
	}
	return domain.Actor{}, false
}
