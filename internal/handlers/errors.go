package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/fund_ledger/internal/apperrors"
	"github.com/SscSPs/fund_ledger/internal/core/domain"
	"github.com/SscSPs/fund_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// statusFor maps an error category onto an HTTP status.
func statusFor(err error) int {
	switch apperrors.Classify(err) {
	case apperrors.CategoryValidation:
		return http.StatusBadRequest
	case apperrors.CategoryPolicy:
		return http.StatusConflict
	case apperrors.CategoryNotFound:
		return http.StatusNotFound
	case apperrors.CategoryForbidden:
		return http.StatusForbidden
	}
	if errors.Is(err, apperrors.ErrDuplicate) {
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// respondError writes the error response for a failed service call. User-facing
// categories echo the error text; everything else gets fallback.
func respondError(c *gin.Context, err error, fallback string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	status := statusFor(err)
	category := apperrors.Classify(err)

	if status == http.StatusInternalServerError {
		logger.Error(fallback, slog.String("error", err.Error()), slog.String("error_category", string(category)))
		c.JSON(status, gin.H{"error": fallback})
		return
	}
	logger.Warn(fallback, slog.String("error", err.Error()), slog.String("error_category", string(category)))
	c.JSON(status, gin.H{"error": err.Error(), "category": category})
}

// bindError answers a request whose body or query could not be decoded.
func bindError(c *gin.Context, err error, what string) {
	middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to bind "+what, slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + what + ": " + err.Error()})
}

// requireActor fetches the actor set by middleware.ActorMiddleware.
func requireActor(c *gin.Context) (domain.Actor, bool) {
	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Actor not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
	}
	return actor, ok
}
