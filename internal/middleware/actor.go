package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/fund_ledger/internal/apperrors"
	"github.com/SscSPs/fund_ledger/internal/core/domain"
	"github.com/gin-gonic/gin"
)

const actorKey = contextKey("actor")

// ActorResolver loads the role a user holds in a tenant.
type ActorResolver interface {
	ResolveActor(ctx context.Context, userID, tenantID string) (domain.Actor, error)
}

// ActorMiddleware runs after AuthMiddleware and turns the token identity into
// a domain.Actor using the user's membership in the claimed tenant.
func ActorMiddleware(resolver ActorResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		userID, ok := GetUserIDFromContext(c)
		if !ok {
			logger.Error("User ID not found in context")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		actor, err := resolver.ResolveActor(c.Request.Context(), userID, GetTenantIDFromContext(c))
		if err != nil {
			if errors.Is(err, apperrors.ErrForbidden) {
				logger.Warn("No membership for tenant", slog.String("error", err.Error()))
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "You are not a member of this tenant"})
				return
			}
			logger.Error("Failed to resolve actor", slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve tenant membership"})
			return
		}

		ctx := context.WithValue(c.Request.Context(), actorKey, actor)
		enriched := logger.With(slog.String("tenant_id", actor.TenantID), slog.String("role", string(actor.Role)))
		c.Request = c.Request.WithContext(WithLogger(ctx, enriched))
		c.Next()
	}
}

// GetActorFromContext returns the actor stored by ActorMiddleware.
func GetActorFromContext(c *gin.Context) (domain.Actor, bool) {
	actor, ok := c.Request.Context().Value(actorKey).(domain.Actor)
	return actor, ok
}
