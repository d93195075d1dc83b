package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCan(t *testing.T) {
	assert.True(t, Can(RoleAdmin, CapOverrideSelfAction))
	assert.False(t, Can(RoleTreasurer, CapOverrideSelfAction))
	assert.True(t, Can(RoleAccountant, CapVerifyEntry))
	assert.False(t, Can(RoleAccountant, CapApproveEntry))
	assert.True(t, Can(RoleAuditor, CapViewLedger))
	assert.False(t, Can(RoleAuditor, CapCreateEntry))
	assert.False(t, Can(Role("GUEST"), CapViewLedger))
	assert.False(t, Role("GUEST").IsValid())
}

func TestFormatDocumentNumber(t *testing.T) {
	day := time.Date(2024, 3, 7, 15, 4, 0, 0, time.UTC)
	assert.Equal(t, "EXP202403070001", FormatDocumentNumber(KindExpense, day, 1))
	assert.Equal(t, "RCP202403070012", FormatDocumentNumber(KindIncome, day, 12))
	assert.Equal(t, "REV-EXP202403070001", ReversalNumber("EXP202403070001"))
	assert.Equal(t, "TXN-REV-EXP202403070001", TransactionReference(ReversalNumber("EXP202403070001")))
}

func TestPeriod(t *testing.T) {
	p := PeriodOf(time.Date(2024, 12, 31, 23, 0, 0, 0, time.UTC))
	assert.Equal(t, Period{Year: 2024, Month: 12}, p)
	assert.Equal(t, "2024-12", p.String())
	assert.NoError(t, p.Validate())
	assert.Error(t, Period{Year: 2024, Month: 13}.Validate())
	assert.Error(t, Period{Year: 2024, Month: 0}.Validate())
	assert.Error(t, Period{Year: 10000, Month: 1}.Validate())
}

func TestTransaction_IsBalanced(t *testing.T) {
	txn := Transaction{Entries: []JournalEntry{
		{DebitAmount: decimal.RequireFromString("500.00"), CreditAmount: decimal.Zero},
		{DebitAmount: decimal.Zero, CreditAmount: decimal.RequireFromString("500.00")},
	}}
	assert.True(t, txn.IsBalanced())
	assert.True(t, txn.Entries[0].IsDebit())
	assert.Equal(t, "500", txn.Entries[1].Amount().String())

	txn.Entries[1].CreditAmount = decimal.RequireFromString("499.99")
	assert.False(t, txn.IsBalanced())
}

func TestDocumentKind(t *testing.T) {
	assert.True(t, KindExpense.RequiresApproval())
	assert.False(t, KindIncome.RequiresApproval())
	assert.Equal(t, TxnIncomeReversal, KindIncome.ReversalType())
	assert.Equal(t, EntityExpense, KindExpense.EntityType())
	assert.False(t, DocumentKind("income").IsValid())
}
