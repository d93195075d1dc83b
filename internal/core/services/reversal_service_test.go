package services_test

import (
	"github.com/SscSPs/fund_ledger/internal/apperrors"
	"github.com/SscSPs/fund_ledger/internal/core/domain"
	"github.com/SscSPs/fund_ledger/internal/dto"
	"github.com/shopspring/decimal"
)

func (s *LedgerSuite) TestReverseExpense() {
	s.setAutoVerify(true)
	original := s.expense(s.accountant, "2024-12-15", "utilities", domain.FundGeneral, "cash", "500")
	originalTxn := s.transaction(original)

	rev, err := s.svc.Reversal.Reverse(s.ctx, s.treasurer, domain.KindExpense, original.DocumentID, "Duplicate entry")
	s.Require().NoError(err)

	s.Equal("REV-EXP202412150001", rev.Number)
	s.True(rev.Amount.Equal(decimal.NewFromInt(-500)))
	s.Require().NotNil(rev.ReversalOfID)
	s.Equal(original.DocumentID, *rev.ReversalOfID)
	s.Equal("Auto-verified reversal", rev.VerificationRemarks)
	s.Equal("Auto-approved reversal: Duplicate entry", rev.ApprovalRemarks)
	s.Equal(s.clock.now.Format("2006-01-02"), rev.Date.Format("2006-01-02"))

	reloaded, err := s.svc.Document.GetDocument(s.ctx, s.auditor, domain.KindExpense, original.DocumentID)
	s.Require().NoError(err)
	s.True(reloaded.IsReversed)

	revTxn := s.transaction(rev)
	s.Equal("TXN-REV-EXP202412150001", revTxn.ReferenceNumber)
	s.Equal(domain.TxnExpenseReversal, revTxn.TransactionType)
	s.True(revTxn.TotalAmount.Equal(decimal.NewFromInt(500)))
	s.Require().NotNil(revTxn.ReversalOfID)
	s.Equal(originalTxn.TransactionID, *revTxn.ReversalOfID)
	for _, e := range revTxn.Entries {
		s.Equal("Reversal of Voucher: EXP202412150001", e.Description)
		if e.IsDebit() {
			s.Equal("1000", s.accountCode(e.AccountID))
		} else {
			s.Equal("5030", s.accountCode(e.AccountID))
		}
	}
	s.True(s.transaction(original).IsReversed)

	s.True(s.balance("5030").IsZero())
	s.True(s.balance("1000").IsZero())
	s.assertLedgerBalanced()
}

func (s *LedgerSuite) TestReverseIncome_EntryMemo() {
	s.setAutoVerify(true)
	original := s.income(s.accountant, "2024-12-15", "donation", "", "cash", "75")

	rev, err := s.svc.Reversal.Reverse(s.ctx, s.treasurer, domain.KindIncome, original.DocumentID, "Bounced")
	s.Require().NoError(err)
	s.Equal("REV-RCP202412150001", rev.Number)

	revTxn := s.transaction(rev)
	s.Require().Len(revTxn.Entries, 2)
	for _, e := range revTxn.Entries {
		s.Equal("Reversal of Receipt: RCP202412150001", e.Description)
	}
	s.True(s.balance("4040").IsZero())
}

func (s *LedgerSuite) TestReverse_Guards() {
	s.setAutoVerify(true)
	original := s.income(s.accountant, "2024-12-15", "donation", "", "cash", "100")

	_, err := s.svc.Reversal.Reverse(s.ctx, s.treasurer, domain.KindIncome, original.DocumentID, "")
	s.ErrorIs(err, apperrors.ErrValidation)

	_, err = s.svc.Reversal.Reverse(s.ctx, s.accountant, domain.KindIncome, original.DocumentID, "wrong payer")
	s.ErrorIs(err, apperrors.ErrForbidden)

	rev, err := s.svc.Reversal.Reverse(s.ctx, s.treasurer, domain.KindIncome, original.DocumentID, "wrong payer")
	s.Require().NoError(err)
	s.Equal("Auto-verified reversal: wrong payer", rev.VerificationRemarks)

	_, err = s.svc.Reversal.Reverse(s.ctx, s.treasurer, domain.KindIncome, original.DocumentID, "again")
	s.ErrorIs(err, apperrors.ErrAlreadyReversed)

	_, err = s.svc.Reversal.Reverse(s.ctx, s.treasurer, domain.KindIncome, rev.DocumentID, "undo the undo")
	s.ErrorIs(err, apperrors.ErrReversalOfReversal)

	s.True(s.balance("4040").IsZero())
}

func (s *LedgerSuite) TestReversePendingFreezesDocument() {
	doc := s.expense(s.accountant, "2024-12-15", "food", domain.FundGeneral, "cash", "60")

	rev, err := s.svc.Reversal.Reverse(s.ctx, s.treasurer, domain.KindExpense, doc.DocumentID, "entered twice")
	s.Require().NoError(err)
	s.Nil(rev.TransactionID, "nothing was posted, nothing to counter")

	_, err = s.svc.Document.Verify(s.ctx, s.accountant2, domain.KindExpense, doc.DocumentID, "ok")
	s.ErrorIs(err, apperrors.ErrAlreadyReversed)
}

func (s *LedgerSuite) TestReverse_LockedPeriods() {
	s.setAutoVerify(true)
	november := s.expense(s.accountant, "2024-11-20", "supplies", domain.FundGeneral, "cash", "20")

	_, err := s.svc.PeriodLock.LockPeriod(s.ctx, s.treasurer, dto.LockPeriodRequest{Year: 2024, Month: 11})
	s.Require().NoError(err)
	_, err = s.svc.Reversal.Reverse(s.ctx, s.treasurer, domain.KindExpense, november.DocumentID, "wrong month")
	s.ErrorIs(err, apperrors.ErrPeriodLocked, "original date is in a closed month")

	s.Require().NoError(s.svc.PeriodLock.UnlockPeriod(s.ctx, s.treasurer, 2024, 11))
	_, err = s.svc.PeriodLock.LockPeriod(s.ctx, s.treasurer, dto.LockPeriodRequest{Year: 2024, Month: 12})
	s.Require().NoError(err)
	_, err = s.svc.Reversal.Reverse(s.ctx, s.treasurer, domain.KindExpense, november.DocumentID, "wrong month")
	s.ErrorIs(err, apperrors.ErrPeriodLocked, "today is in a closed month")

	s.Require().NoError(s.svc.PeriodLock.UnlockPeriod(s.ctx, s.treasurer, 2024, 12))
	_, err = s.svc.Reversal.Reverse(s.ctx, s.treasurer, domain.KindExpense, november.DocumentID, "wrong month")
	s.NoError(err)
}
