package accounting

import (
	"testing"

	"github.com/SscSPs/fund_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestSignedBalance(t *testing.T) {
	totals := domain.EntryTotals{Debit: d("700.00"), Credit: d("200.00")}

	assert.True(t, d("500").Equal(SignedBalance(domain.Asset, totals)))
	assert.True(t, d("500").Equal(SignedBalance(domain.Expense, totals)))
	assert.True(t, d("-500").Equal(SignedBalance(domain.Income, totals)))
	assert.True(t, d("-500").Equal(SignedBalance(domain.Liability, totals)))
	assert.True(t, d("-500").Equal(SignedBalance(domain.Equity, totals)))
}

func TestTrialBalanceSides(t *testing.T) {
	tests := []struct {
		name       string
		typ        domain.AccountType
		balance    string
		wantDebit  string
		wantCredit string
	}{
		{"asset positive", domain.Asset, "100", "100", "0"},
		{"asset overdrawn", domain.Asset, "-40", "0", "40"},
		{"income positive", domain.Income, "250", "0", "250"},
		{"income negative", domain.Income, "-10", "10", "0"},
		{"expense positive", domain.Expense, "75.50", "75.50", "0"},
		{"zero", domain.Equity, "0", "0", "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			debit, credit := TrialBalanceSides(tt.typ, d(tt.balance))
			assert.True(t, d(tt.wantDebit).Equal(debit), "debit %s", debit)
			assert.True(t, d(tt.wantCredit).Equal(credit), "credit %s", credit)
		})
	}
}

func TestIsMoney(t *testing.T) {
	assert.True(t, IsMoney(d("500")))
	assert.True(t, IsMoney(d("500.10")))
	assert.False(t, IsMoney(d("0.001")))
	assert.True(t, WithinTolerance(d("100.00"), d("100.009")))
	assert.False(t, WithinTolerance(d("100.00"), d("100.01")))
}
