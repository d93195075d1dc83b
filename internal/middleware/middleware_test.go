package middleware_test

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/fund_ledger/internal/apperrors"
	"github.com/SscSPs/fund_ledger/internal/core/domain"
	"github.com/SscSPs/fund_ledger/internal/middleware"
	"github.com/SscSPs/fund_ledger/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(slog.Default()))
	r.GET("/whoami", middleware.AuthMiddleware("secret", "fund-ledger"), func(c *gin.Context) {
		userID, ok := middleware.GetUserIDFromContext(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"user": userID, "tenant": middleware.GetTenantIDFromContext(c)})
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	r := newRouter(t)

	token, err := utils.GenerateJWT("user-1", "tenant-9", "secret", time.Hour, "fund-ledger")
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized},
		{"garbage token", "Bearer not-a-jwt", http.StatusUnauthorized},
		{"valid token", "Bearer " + token, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.status, w.Code)
			assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
			if tt.status == http.StatusOK {
				assert.JSONEq(t, `{"user":"user-1","tenant":"tenant-9"}`, w.Body.String())
			}
		})
	}
}

func TestRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	lim, err := middleware.NewLimiter("2-M")
	require.NoError(t, err)

	r := gin.New()
	r.Use(middleware.RateLimit(lim))
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

type stubResolver struct {
	role domain.Role
	err  error
}

func (s stubResolver) ResolveActor(_ context.Context, userID, tenantID string) (domain.Actor, error) {
	if s.err != nil {
		return domain.Actor{}, s.err
	}
	return domain.Actor{UserID: userID, TenantID: tenantID, Role: s.role}, nil
}

func TestActorMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	token, err := utils.GenerateJWT("user-1", "tenant-9", "secret", time.Hour, "fund-ledger")
	require.NoError(t, err)

	tests := []struct {
		name     string
		resolver stubResolver
		status   int
	}{
		{"member", stubResolver{role: domain.RoleTreasurer}, http.StatusOK},
		{"not a member", stubResolver{err: fmt.Errorf("%w: no membership", apperrors.ErrForbidden)}, http.StatusForbidden},
		{"store down", stubResolver{err: errors.New("connection refused")}, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.Use(middleware.AuthMiddleware("secret", "fund-ledger"), middleware.ActorMiddleware(tt.resolver))
			r.GET("/me", func(c *gin.Context) {
				actor, ok := middleware.GetActorFromContext(c)
				require.True(t, ok)
				c.JSON(http.StatusOK, gin.H{"role": actor.Role, "tenant": actor.TenantID})
			})

			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			req.Header.Set("Authorization", "Bearer "+token)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
			if tt.status == http.StatusOK {
				assert.JSONEq(t, `{"role":"TREASURER","tenant":"tenant-9"}`, w.Body.String())
			}
		})
	}
}
