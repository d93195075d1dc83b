package services_test

import (
	"time"

	"github.com/SscSPs/fund_ledger/internal/apperrors"
	"github.com/SscSPs/fund_ledger/internal/core/domain"
	"github.com/SscSPs/fund_ledger/internal/dto"
	"github.com/shopspring/decimal"
)

func (s *LedgerSuite) TestLockPeriod() {
	lock, err := s.svc.PeriodLock.LockPeriod(s.ctx, s.treasurer, dto.LockPeriodRequest{Year: 2024, Month: 11, Remarks: "November closed"})
	s.Require().NoError(err)
	s.Equal("treasurer-1", lock.LockedBy)

	_, err = s.svc.PeriodLock.LockPeriod(s.ctx, s.treasurer, dto.LockPeriodRequest{Year: 2024, Month: 11})
	s.ErrorIs(err, apperrors.ErrDuplicateLock)

	locked, err := s.svc.PeriodLock.IsLocked(s.ctx, s.admin.TenantID, time.Date(2024, 11, 30, 0, 0, 0, 0, time.UTC))
	s.Require().NoError(err)
	s.True(locked)
	locked, err = s.svc.PeriodLock.IsLocked(s.ctx, s.admin.TenantID, time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC))
	s.Require().NoError(err)
	s.False(locked)

	locks, err := s.svc.PeriodLock.ListLocks(s.ctx, s.auditor)
	s.Require().NoError(err)
	s.Len(locks, 1)
}

func (s *LedgerSuite) TestLockPeriod_Rejects() {
	_, err := s.svc.PeriodLock.LockPeriod(s.ctx, s.accountant, dto.LockPeriodRequest{Year: 2024, Month: 11})
	s.ErrorIs(err, apperrors.ErrForbidden)

	_, err = s.svc.PeriodLock.LockPeriod(s.ctx, s.treasurer, dto.LockPeriodRequest{Year: 2024, Month: 13})
	s.ErrorIs(err, apperrors.ErrValidation)

	err = s.svc.PeriodLock.UnlockPeriod(s.ctx, s.treasurer, 2024, 10)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *LedgerSuite) TestLockedPeriodBlocksPosting() {
	_, err := s.svc.PeriodLock.LockPeriod(s.ctx, s.treasurer, dto.LockPeriodRequest{Year: 2024, Month: 11})
	s.Require().NoError(err)

	_, err = s.svc.Document.CreateExpense(s.ctx, s.accountant, dto.CreateExpenseRequest{
		Date: "2024-11-20", Category: "utilities", FundType: "general", Payee: "X", PaymentMode: "cash", Amount: decimal.NewFromInt(5),
	})
	s.ErrorIs(err, apperrors.ErrPeriodLocked)

	docs, _, err := s.svc.Document.ListDocuments(s.ctx, s.auditor, domain.DocumentFilter{})
	s.Require().NoError(err)
	s.Empty(docs, "no partial writes")

	// a pending document cannot be posted once its month closes
	pending := s.expense(s.accountant, "2024-12-01", "utilities", domain.FundGeneral, "cash", "5")
	_, err = s.svc.Document.Verify(s.ctx, s.accountant2, domain.KindExpense, pending.DocumentID, "ok")
	s.Require().NoError(err)
	_, err = s.svc.PeriodLock.LockPeriod(s.ctx, s.treasurer, dto.LockPeriodRequest{Year: 2024, Month: 12})
	s.Require().NoError(err)

	_, err = s.svc.Document.Approve(s.ctx, s.treasurer, domain.KindExpense, pending.DocumentID, "ok")
	s.ErrorIs(err, apperrors.ErrPeriodLocked)
	s.True(s.balance("5030").IsZero())
}
