package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/logiteam/logiteam-api/internal/models"
	"github.com/logiteam/logiteam-api/pkg/logger"
)

// ActorResolver resolves a bearer token into an actor.
type ActorResolver interface {
	ActorFromToken(ctx context.Context, token string) (models.Actor, error)
}

// AuthRequired returns a middleware that resolves the Authorization bearer
// token into an actor and aborts unauthenticated requests. The resolved
// actor is what the services authorize against.
func AuthRequired(resolver ActorResolver, log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		actor, err := resolver.ActorFromToken(c.Request.Context(), token)
		if err != nil {
			log.Debug().Err(err).Msg("Token rejected")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set(actorKey, actor)
		c.Next()
	}
}
