package pgsql

import (
	"errors"
	"fmt"
	"testing"

	"github.com/SscSPs/fund_ledger/internal/apperrors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWriteError(t *testing.T) {
	dup := writeError(&pgconn.PgError{Code: "23505", ConstraintName: "uq_accounts_tenant_code"}, "account code 1000")
	assert.ErrorIs(t, dup, apperrors.ErrDuplicate)
	assert.Equal(t, apperrors.CategoryInfrastructure, apperrors.Classify(dup))

	fk := writeError(fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23503"}), "journal entries")
	assert.NotErrorIs(t, fk, apperrors.ErrDuplicate)
	var appErr *apperrors.AppError
	if assert.ErrorAs(t, fk, &appErr) {
		assert.Equal(t, 500, appErr.Code)
	}
}

func TestReadError(t *testing.T) {
	assert.ErrorIs(t, readError(pgx.ErrNoRows, "tenant t1"), apperrors.ErrNotFound)

	boom := errors.New("conn reset")
	err := readError(boom, "tenant t1")
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, apperrors.ErrNotFound)
}

func TestSprintfRange(t *testing.T) {
	assert.Equal(t,
		" AND ($3::date IS NULL OR e.entry_date >= $3::date) AND ($4::date IS NULL OR e.entry_date <= $4::date)",
		sprintfRange(3))
}
