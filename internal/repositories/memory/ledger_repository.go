package memory

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"time"

	"github.com/SscSPs/fund_ledger/internal/apperrors"
	"github.com/SscSPs/fund_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/fund_ledger/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

type ledgerRepo struct{ access }

var _ portsrepo.LedgerRepositoryFacade = (*ledgerRepo)(nil)

func (r *ledgerRepo) FindTransactionByID(ctx context.Context, tenantID, transactionID string) (*domain.Transaction, error) {
	var out *domain.Transaction
	err := r.read(func(st *state) error {
		txn, ok := st.transactions[transactionID]
		if !ok || txn.TenantID != tenantID {
			return apperrors.NewNotFoundError("transaction " + transactionID)
		}
		txn.Entries = slices.Clone(txn.Entries)
		out = &txn
		return nil
	})
	return out, err
}

func (r *ledgerRepo) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	return r.write(func(st *state) error {
		for _, existing := range st.transactions {
			if existing.TenantID == txn.TenantID && existing.ReferenceNumber == txn.ReferenceNumber {
				return fmt.Errorf("transaction reference %s: %w", txn.ReferenceNumber, apperrors.ErrDuplicate)
			}
		}
		for _, e := range txn.Entries {
			acc, ok := st.accounts[e.AccountID]
			if !ok || acc.TenantID != txn.TenantID {
				return fmt.Errorf("journal entry references unknown account %s", e.AccountID)
			}
		}
		txn.Entries = slices.Clone(txn.Entries)
		st.transactions[txn.TransactionID] = txn
		return nil
	})
}

func (r *ledgerRepo) MarkTransactionReversed(ctx context.Context, tenantID, transactionID string) error {
	return r.write(func(st *state) error {
		txn, ok := st.transactions[transactionID]
		if !ok || txn.TenantID != tenantID {
			return apperrors.NewNotFoundError("transaction " + transactionID)
		}
		txn.IsReversed = true
		st.transactions[transactionID] = txn
		return nil
	})
}

func inRange(date time.Time, from, to *time.Time) bool {
	if from != nil && date.Before(*from) {
		return false
	}
	if to != nil && date.After(*to) {
		return false
	}
	return true
}

func (r *ledgerRepo) SumEntries(ctx context.Context, tenantID, accountID string, from, to *time.Time) (domain.EntryTotals, error) {
	totals := domain.EntryTotals{Debit: decimal.Zero, Credit: decimal.Zero}
	err := r.read(func(st *state) error {
		for _, txn := range st.transactions {
			if txn.TenantID != tenantID {
				continue
			}
			for _, e := range txn.Entries {
				if e.AccountID == accountID && inRange(e.Date, from, to) {
					totals.Debit = totals.Debit.Add(e.DebitAmount)
					totals.Credit = totals.Credit.Add(e.CreditAmount)
				}
			}
		}
		return nil
	})
	return totals, err
}

func (r *ledgerRepo) SumEntriesByAccount(ctx context.Context, tenantID string, from, to *time.Time) (map[string]domain.EntryTotals, error) {
	out := map[string]domain.EntryTotals{}
	err := r.read(func(st *state) error {
		for _, txn := range st.transactions {
			if txn.TenantID != tenantID {
				continue
			}
			for _, e := range txn.Entries {
				if !inRange(e.Date, from, to) {
					continue
				}
				t, ok := out[e.AccountID]
				if !ok {
					t = domain.EntryTotals{Debit: decimal.Zero, Credit: decimal.Zero}
				}
				t.Debit = t.Debit.Add(e.DebitAmount)
				t.Credit = t.Credit.Add(e.CreditAmount)
				out[e.AccountID] = t
			}
		}
		return nil
	})
	return out, err
}

func (r *ledgerRepo) SumEntriesByFund(ctx context.Context, tenantID string, from, to *time.Time) (map[domain.FundType]map[string]domain.EntryTotals, error) {
	out := map[domain.FundType]map[string]domain.EntryTotals{}
	err := r.read(func(st *state) error {
		for _, txn := range st.transactions {
			if txn.TenantID != tenantID {
				continue
			}
			for _, e := range txn.Entries {
				if !inRange(e.Date, from, to) {
					continue
				}
				byAccount, ok := out[txn.FundType]
				if !ok {
					byAccount = map[string]domain.EntryTotals{}
					out[txn.FundType] = byAccount
				}
				t, ok := byAccount[e.AccountID]
				if !ok {
					t = domain.EntryTotals{Debit: decimal.Zero, Credit: decimal.Zero}
				}
				t.Debit = t.Debit.Add(e.DebitAmount)
				t.Credit = t.Credit.Add(e.CreditAmount)
				byAccount[e.AccountID] = t
			}
		}
		return nil
	})
	return out, err
}

func (r *ledgerRepo) ListEntriesByAccount(ctx context.Context, tenantID, accountID string, from, to *time.Time) ([]domain.LedgerLine, error) {
	var lines []domain.LedgerLine
	err := r.read(func(st *state) error {
		for _, txn := range st.transactions {
			if txn.TenantID != tenantID {
				continue
			}
			for _, e := range txn.Entries {
				if e.AccountID == accountID && inRange(e.Date, from, to) {
					lines = append(lines, domain.LedgerLine{JournalEntry: e, ReferenceNumber: txn.ReferenceNumber})
				}
			}
		}
		return nil
	})
	sort.SliceStable(lines, func(i, j int) bool {
		a, b := lines[i], lines[j]
		if !a.Date.Equal(b.Date) {
			return a.Date.Before(b.Date)
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.EntryID < b.EntryID
	})
	return lines, err
}
