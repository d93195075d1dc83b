package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/fund_ledger/internal/apperrors"
	"github.com/SscSPs/fund_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/fund_ledger/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cashAccount(tenant string) domain.Account {
	return domain.Account{AccountID: tenant + "-cash", TenantID: tenant, Code: "1000", Name: "Cash", AccountType: domain.Asset, IsActive: true}
}

func TestStore_DoRollsBackOnError(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	boom := errors.New("boom")

	err := store.Do(ctx, func(repos portsrepo.RepositoryProvider) error {
		require.NoError(t, repos.AccountRepo.SaveAccount(ctx, cashAccount("t1")))
		_, err := repos.DocumentRepo.NextSequence(ctx, "t1", "EXP20240101")
		require.NoError(t, err)
		return boom
	})
	assert.ErrorIs(t, err, boom)

	_, err = store.Repositories().AccountRepo.FindAccountByCode(ctx, "t1", "1000")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	seq, err := store.Repositories().DocumentRepo.NextSequence(ctx, "t1", "EXP20240101")
	require.NoError(t, err)
	assert.Equal(t, 1, seq, "sequence increment must roll back with the unit of work")
}

func TestStore_DoCommits(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	require.NoError(t, store.Do(ctx, func(repos portsrepo.RepositoryProvider) error {
		return repos.AccountRepo.SaveAccount(ctx, cashAccount("t1"))
	}))

	acc, err := store.Repositories().AccountRepo.FindAccountByCode(ctx, "t1", "1000")
	require.NoError(t, err)
	assert.Equal(t, "t1-cash", acc.AccountID)

	_, err = store.Repositories().AccountRepo.FindAccountByCode(ctx, "t2", "1000")
	assert.ErrorIs(t, err, apperrors.ErrNotFound, "accounts are partitioned by tenant")
}

func TestStore_UniqueConstraints(t *testing.T) {
	ctx := context.Background()
	repos := NewStore().Repositories()

	require.NoError(t, repos.AccountRepo.SaveAccount(ctx, cashAccount("t1")))
	dup := cashAccount("t1")
	dup.AccountID = "other"
	assert.ErrorIs(t, repos.AccountRepo.SaveAccount(ctx, dup), apperrors.ErrDuplicate)
	assert.NoError(t, repos.AccountRepo.SaveAccount(ctx, cashAccount("t2")))

	doc := domain.Document{DocumentID: "d1", TenantID: "t1", Kind: domain.KindIncome, Number: "RCP202401010001"}
	require.NoError(t, repos.DocumentRepo.SaveDocument(ctx, doc))
	doc.DocumentID = "d2"
	assert.ErrorIs(t, repos.DocumentRepo.SaveDocument(ctx, doc), apperrors.ErrDuplicate)

	lock := domain.PeriodLock{LockID: "l1", TenantID: "t1", Year: 2024, Month: 1}
	require.NoError(t, repos.PeriodLockRepo.SavePeriodLock(ctx, lock))
	assert.ErrorIs(t, repos.PeriodLockRepo.SavePeriodLock(ctx, lock), apperrors.ErrDuplicate)
}

func TestLedgerRepo_SumsWithinRange(t *testing.T) {
	ctx := context.Background()
	repos := NewStore().Repositories()
	require.NoError(t, repos.AccountRepo.SaveAccount(ctx, cashAccount("t1")))
	income := domain.Account{AccountID: "t1-income", TenantID: "t1", Code: "4040", AccountType: domain.Income}
	require.NoError(t, repos.AccountRepo.SaveAccount(ctx, income))

	day := func(d int) time.Time { return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC) }
	for i, d := range []int{5, 10, 20} {
		amt := decimal.NewFromInt(int64(100 * (i + 1)))
		txn := domain.Transaction{
			TransactionID: string(rune('a' + i)), TenantID: "t1", ReferenceNumber: "TXN-" + string(rune('a'+i)), Date: day(d),
			Entries: []domain.JournalEntry{
				{EntryID: "e1" + string(rune('a'+i)), AccountID: "t1-cash", DebitAmount: amt, CreditAmount: decimal.Zero, Date: day(d)},
				{EntryID: "e2" + string(rune('a'+i)), AccountID: "t1-income", DebitAmount: decimal.Zero, CreditAmount: amt, Date: day(d)},
			},
		}
		require.NoError(t, repos.LedgerRepo.SaveTransaction(ctx, txn))
	}

	all, err := repos.LedgerRepo.SumEntries(ctx, "t1", "t1-cash", nil, nil)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(600).Equal(all.Debit))

	from, to := day(10), day(20)
	ranged, err := repos.LedgerRepo.SumEntries(ctx, "t1", "t1-cash", &from, &to)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(500).Equal(ranged.Debit), "bounds are inclusive")

	byAccount, err := repos.LedgerRepo.SumEntriesByAccount(ctx, "t1", nil, &from)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(300).Equal(byAccount["t1-income"].Credit))

	lines, err := repos.LedgerRepo.ListEntriesByAccount(ctx, "t1", "t1-cash", nil, nil)
	require.NoError(t, err)
	require.Len(t, lines, 3)
	assert.Equal(t, "TXN-a", lines[0].ReferenceNumber)
	assert.Equal(t, day(20), lines[2].Date)
}

func TestDocumentRepo_ListPaginates(t *testing.T) {
	ctx := context.Background()
	repos := NewStore().Repositories()
	base := time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		require.NoError(t, repos.DocumentRepo.SaveDocument(ctx, domain.Document{
			DocumentID: string(rune('a' + i)), TenantID: "t1", Kind: domain.KindExpense,
			Number: domain.FormatDocumentNumber(domain.KindExpense, base, i+1), CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	page, next, err := repos.DocumentRepo.ListDocuments(ctx, "t1", domain.DocumentFilter{Limit: 2})
	require.NoError(t, err)
	require.Len(t, page, 2)
	require.NotNil(t, next)
	assert.Equal(t, "e", page[0].DocumentID, "newest first")

	page, next, err = repos.DocumentRepo.ListDocuments(ctx, "t1", domain.DocumentFilter{Limit: 2, NextToken: next})
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "b"}, []string{page[0].DocumentID, page[1].DocumentID})

	page, next, err = repos.DocumentRepo.ListDocuments(ctx, "t1", domain.DocumentFilter{Limit: 2, NextToken: next})
	require.NoError(t, err)
	assert.Len(t, page, 1)
	assert.Nil(t, next)
}
