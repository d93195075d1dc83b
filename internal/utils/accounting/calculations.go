package accounting

import (
	"github.com/SscSPs/fund_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BalanceTolerance is the largest debit/credit difference still reported as balanced.
var BalanceTolerance = decimal.RequireFromString("0.01")

// SignedBalance applies the natural sign convention to raw entry totals.
// DEBIT to ASSET/EXPENSE -> Positive (+)
// CREDIT to LIABILITY/EQUITY/INCOME -> Positive (+)
func SignedBalance(accountType domain.AccountType, totals domain.EntryTotals) decimal.Decimal {
	if accountType.IsDebitNormal() {
		return totals.Debit.Sub(totals.Credit)
	}
	return totals.Credit.Sub(totals.Debit)
}

// SignedAmount returns the effect of a single entry on an account of accountType.
func SignedAmount(accountType domain.AccountType, entry domain.JournalEntry) decimal.Decimal {
	return SignedBalance(accountType, domain.EntryTotals{Debit: entry.DebitAmount, Credit: entry.CreditAmount})
}

// TrialBalanceSides places a signed balance on the debit or credit column.
// A debit-normal account with a negative balance lands on the credit side
// and vice versa.
func TrialBalanceSides(accountType domain.AccountType, balance decimal.Decimal) (debit, credit decimal.Decimal) {
	onDebitSide := accountType.IsDebitNormal() != balance.IsNegative()
	if onDebitSide {
		return balance.Abs(), decimal.Zero
	}
	return decimal.Zero, balance.Abs()
}

// WithinTolerance reports whether a and b differ by less than BalanceTolerance.
func WithinTolerance(a, b decimal.Decimal) bool {
	return a.Sub(b).Abs().LessThan(BalanceTolerance)
}

// IsMoney reports whether amount has at most two decimal places.
func IsMoney(amount decimal.Decimal) bool {
	return amount.Equal(amount.Round(2))
}
