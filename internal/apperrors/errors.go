package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates the actor lacks the capability for the requested action.
var ErrForbidden = errors.New("forbidden")

// ErrConflict indicates the resource is not in a state that allows the operation.
var ErrConflict = errors.New("conflict")

// ErrInternal is the generic infrastructure failure surfaced to callers.
var ErrInternal = errors.New("internal error")

// ErrPolicyViolation is the parent of every business-rule rejection.
// These are user-facing and never leave partial state behind.
var ErrPolicyViolation = errors.New("policy violation")

// ErrIntegrity marks misconfiguration such as an unresolvable account mapping.
var ErrIntegrity = errors.New("data integrity error")

var (
	ErrPeriodLocked       = fmt.Errorf("%w: accounting period is locked", ErrPolicyViolation)
	ErrSelfAction         = fmt.Errorf("%w: entrant cannot verify or approve their own entry", ErrPolicyViolation)
	ErrAlreadyProcessed   = fmt.Errorf("%w: entry has already been processed", ErrPolicyViolation)
	ErrAlreadyReversed    = fmt.Errorf("%w: entry has already been reversed", ErrPolicyViolation)
	ErrReversalOfReversal = fmt.Errorf("%w: a reversal entry cannot itself be reversed", ErrPolicyViolation)
	ErrDuplicateLock      = fmt.Errorf("%w: period is already locked", ErrPolicyViolation)
)

// ErrAccountMappingMissing is returned when a posting rule points at an account
// that does not exist in the tenant's chart.
var ErrAccountMappingMissing = fmt.Errorf("%w: mapped account does not exist", ErrIntegrity)

// AppError carries an HTTP-ish status code alongside the wrapped cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError wraps err with a status code and message.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError returns an AppError that matches ErrNotFound.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: 404, Message: message, Err: ErrNotFound}
}

// NewValidationError returns an error that matches ErrValidation.
func NewValidationError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// Category groups errors the way callers need to react to them.
type Category string

const (
	CategoryNone           Category = ""
	CategoryValidation     Category = "validation"
	CategoryPolicy         Category = "policy"
	CategoryIntegrity      Category = "integrity"
	CategoryNotFound       Category = "not_found"
	CategoryForbidden      Category = "forbidden"
	CategoryInfrastructure Category = "infrastructure"
)

// Classify maps an error onto its Category. Order matters: a duplicate-key race
// is reported as infrastructure, not validation.
func Classify(err error) Category {
	switch {
	case err == nil:
		return CategoryNone
	case errors.Is(err, ErrValidation):
		return CategoryValidation
	case errors.Is(err, ErrPolicyViolation):
		return CategoryPolicy
	case errors.Is(err, ErrIntegrity):
		return CategoryIntegrity
	case errors.Is(err, ErrNotFound):
		return CategoryNotFound
	case errors.Is(err, ErrForbidden):
		return CategoryForbidden
	default:
		return CategoryInfrastructure
	}
}
