package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/SscSPs/fund_ledger/internal/core/domain"
	"github.com/fatih/color"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintTrialBalance(t *testing.T) {
	color.NoColor = true
	d := decimal.RequireFromString

	var buf bytes.Buffer
	printTrialBalance(&buf, &domain.TrialBalanceReport{
		AsOf: time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
		Rows: []domain.TrialBalanceRow{
			{Code: "1000", AccountName: "Cash in Hand", Debit: d("250"), Credit: decimal.Zero},
			{Code: "4040", AccountName: "General Donations", Debit: decimal.Zero, Credit: d("250")},
		},
		TotalDebit:  d("250"),
		TotalCredit: d("250"),
		IsBalanced:  true,
	})

	out := buf.String()
	assert.Contains(t, out, "Trial balance as of 2024-12-31")
	assert.Contains(t, out, "250.00")
	assert.Contains(t, out, "balanced")
	assert.NotContains(t, out, "OUT OF BALANCE")
}

func TestDateFlag(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.Flags().String("as-of", "", "")

	require.NoError(t, cmd.Flags().Set("as-of", "2024-03-31"))
	got, err := dateFlag(cmd, "as-of")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC), got)

	require.NoError(t, cmd.Flags().Set("as-of", "31/03/2024"))
	_, err = dateFlag(cmd, "as-of")
	assert.Error(t, err)
}

func TestPrintMonthlySummary(t *testing.T) {
	color.NoColor = true
	d := decimal.RequireFromString

	var buf bytes.Buffer
	printMonthlySummary(&buf, &domain.MonthlyCategorySummary{
		Year:         2024,
		Month:        12,
		Income:       []domain.CategoryTotal{{Category: "donation", Name: "General Donation", Count: 2, Total: d("140")}},
		Expenses:     []domain.CategoryTotal{{Category: "utilities", Name: "Utilities", Count: 1, Total: d("200")}},
		TotalIncome:  d("140"),
		TotalExpense: d("200"),
		Surplus:      d("-60"),
	})

	out := buf.String()
	assert.Contains(t, out, "Summary for 2024-12")
	assert.Contains(t, out, "General Donation")
	assert.Contains(t, out, "140.00")
	assert.Contains(t, out, "Deficit 60.00")
}
