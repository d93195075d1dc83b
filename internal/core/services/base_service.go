package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/fund_ledger/internal/apperrors"
	"github.com/SscSPs/fund_ledger/internal/core/domain"
	"github.com/SscSPs/fund_ledger/internal/middleware"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Option configures the shared parts of a service.
type Option func(*BaseService)

// WithClock replaces the wall clock, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(s *BaseService) {
		s.now = now
	}
}

// WithScope sets how actors map onto tenant partitions.
func WithScope(scope Scope) Option {
	return func(s *BaseService) {
		s.scope = scope
	}
}

// BaseService provides common functionality for all services
type BaseService struct {
	scope Scope
	now   func() time.Time
}

func newBaseService(opts []Option) BaseService {
	b := BaseService{
		scope: Scope{Mode: domain.TenancyMulti},
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting. Integrity errors carry
// error_category=integrity so misconfigured posting rules stand out.
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+2)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, slog.String("error_category", string(apperrors.Classify(err))))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// logFailure logs err at a level matching its category. Expected rejections
// stay at warn; infrastructure and integrity failures are errors.
func (s *BaseService) logFailure(ctx context.Context, err error, msg string, keyvals ...any) {
	switch apperrors.Classify(err) {
	case apperrors.CategoryInfrastructure, apperrors.CategoryIntegrity:
		s.LogError(ctx, err, msg, keyvals...)
	default:
		args := append([]any{slog.String("error", err.Error())}, keyvals...)
		s.GetLogger(ctx).Warn(msg, args...)
	}
}

// Now returns the current instant in UTC.
func (s *BaseService) Now() time.Time {
	return s.now().UTC()
}

// Today returns the current calendar date as UTC midnight.
func (s *BaseService) Today() time.Time {
	return truncateDay(s.Now())
}

// authorize resolves the actor's tenant and checks the capability.
func (s *BaseService) authorize(ctx context.Context, actor domain.Actor, capability domain.Capability) (string, error) {
	tenantID, err := s.scope.TenantFor(actor)
	if err != nil {
		return "", err
	}
	if !actor.Can(capability) {
		s.GetLogger(ctx).Warn("Actor lacks capability",
			slog.String("user_id", actor.UserID),
			slog.String("role", string(actor.Role)),
			slog.String("capability", string(capability)))
		return "", fmt.Errorf("%w: role %q lacks %s", apperrors.ErrForbidden, actor.Role, capability)
	}
	return tenantID, nil
}

// truncateDay returns the calendar date of t, read in t's own location, as UTC midnight.
func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func parseDate(field, value string) (time.Time, error) {
	t, err := time.Parse(time.DateOnly, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, apperrors.NewValidationError("%s must be a date in YYYY-MM-DD format", field)
	}
	return t, nil
}

// validateStruct runs the validate tags of a request DTO.
func validateStruct(req any) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		msgs := make([]string, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			msgs = append(msgs, fmt.Sprintf("%s failed on %s", fe.Field(), fe.Tag()))
		}
		return apperrors.NewValidationError("%s", strings.Join(msgs, "; "))
	}
	return apperrors.NewValidationError("%v", err)
}
