package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseJWT(t *testing.T) {
	token, err := GenerateJWT("user-1", "tenant-1", "secret", time.Hour, "fund-ledger")
	require.NoError(t, err)

	claims, err := ParseAndValidateJWT(token, "secret", "fund-ledger")
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "tenant-1", claims.TenantID)

	_, err = ParseAndValidateJWT(token, "other-secret", "fund-ledger")
	assert.Error(t, err)

	_, err = ParseAndValidateJWT(token, "secret", "someone-else")
	assert.ErrorIs(t, err, jwt.ErrTokenInvalidIssuer)
}

func TestParseJWT_Expired(t *testing.T) {
	token, err := GenerateJWT("user-1", "tenant-1", "secret", -time.Minute, "")
	require.NoError(t, err)

	_, err = ParseAndValidateJWT(token, "secret", "")
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "500.00", FormatMoney(decimal.NewFromInt(500)))
	assert.Equal(t, "-12.50", FormatMoney(decimal.RequireFromString("-12.5")))
}
