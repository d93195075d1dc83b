package workflow

import (
	"testing"
	"time"

	"github.com/SscSPs/fund_ledger/internal/apperrors"
	"github.com/SscSPs/fund_ledger/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pendingDoc(kind domain.DocumentKind) domain.Document {
	doc := domain.Document{
		DocumentID:         "doc-1",
		Kind:               kind,
		EnteredBy:          "clerk",
		VerificationStatus: domain.VerificationPending,
	}
	if kind.RequiresApproval() {
		doc.ApprovalStatus = domain.ApprovalPending
	}
	return doc
}

func TestNext(t *testing.T) {
	tests := []struct {
		name      string
		kind      domain.DocumentKind
		from      State
		action    Action
		want      State
		wantPosts bool
		wantErr   bool
	}{
		{"income verify posts", domain.KindIncome, Pending, Verify, Verified, true, false},
		{"income reject", domain.KindIncome, Pending, Reject, Rejected, false, false},
		{"income has no approval", domain.KindIncome, Verified, Approve, Verified, false, true},
		{"expense verify does not post", domain.KindExpense, Pending, Verify, Verified, false, false},
		{"expense approve posts", domain.KindExpense, Verified, Approve, Approved, true, false},
		{"expense approve before verify", domain.KindExpense, Pending, Approve, Pending, false, true},
		{"expense reject after verify", domain.KindExpense, Verified, Reject, Rejected, false, false},
		{"rejected is terminal", domain.KindExpense, Rejected, Verify, Rejected, false, true},
		{"approved is terminal", domain.KindExpense, Approved, Reject, Approved, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, posts, err := Next(tt.kind, tt.from, tt.action)
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrAlreadyProcessed)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantPosts, posts)
		})
	}
}

func TestCheck_GuardOrder(t *testing.T) {
	clerk := domain.Actor{UserID: "clerk", Role: domain.RoleAccountant}
	treasurer := domain.Actor{UserID: "treasurer", Role: domain.RoleTreasurer}
	auditor := domain.Actor{UserID: "auditor", Role: domain.RoleAuditor}
	admin := domain.Actor{UserID: "clerk", Role: domain.RoleAdmin}

	t.Run("reversed wins over everything", func(t *testing.T) {
		doc := pendingDoc(domain.KindIncome)
		doc.IsReversed = true
		_, _, err := Check(doc, Request{Actor: clerk, Action: Verify})
		assert.ErrorIs(t, err, apperrors.ErrAlreadyReversed)
	})

	t.Run("already processed before remarks", func(t *testing.T) {
		doc := pendingDoc(domain.KindIncome)
		doc.VerificationStatus = domain.VerificationVerified
		_, _, err := Check(doc, Request{Actor: treasurer, Action: Verify})
		assert.ErrorIs(t, err, apperrors.ErrAlreadyProcessed)
	})

	t.Run("remarks required", func(t *testing.T) {
		_, _, err := Check(pendingDoc(domain.KindIncome), Request{Actor: treasurer, Action: Verify, Remarks: "  "})
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})

	t.Run("capability required", func(t *testing.T) {
		_, _, err := Check(pendingDoc(domain.KindIncome), Request{Actor: auditor, Action: Verify, Remarks: "ok"})
		assert.ErrorIs(t, err, apperrors.ErrForbidden)

		doc := pendingDoc(domain.KindExpense)
		doc.VerificationStatus = domain.VerificationVerified
		_, _, err = Check(doc, Request{Actor: domain.Actor{UserID: "other", Role: domain.RoleAccountant}, Action: Approve, Remarks: "ok"})
		assert.ErrorIs(t, err, apperrors.ErrForbidden)
	})

	t.Run("entrant cannot verify own entry", func(t *testing.T) {
		_, _, err := Check(pendingDoc(domain.KindIncome), Request{Actor: clerk, Action: Verify, Remarks: "ok"})
		assert.ErrorIs(t, err, apperrors.ErrSelfAction)
	})

	t.Run("admin overrides self action", func(t *testing.T) {
		to, posts, err := Check(pendingDoc(domain.KindIncome), Request{Actor: admin, Action: Verify, Remarks: "ok"})
		require.NoError(t, err)
		assert.Equal(t, Verified, to)
		assert.True(t, posts)
	})

	t.Run("other user verifies", func(t *testing.T) {
		to, posts, err := Check(pendingDoc(domain.KindExpense), Request{Actor: treasurer, Action: Verify, Remarks: "ok"})
		require.NoError(t, err)
		assert.Equal(t, Verified, to)
		assert.False(t, posts)
	})
}

func TestApply(t *testing.T) {
	at := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	req := Request{Actor: domain.Actor{UserID: "treasurer"}, Action: Verify, Remarks: "checked"}

	doc := pendingDoc(domain.KindExpense)
	Apply(&doc, Pending, Verified, req, at)
	assert.Equal(t, domain.VerificationVerified, doc.VerificationStatus)
	assert.Equal(t, "treasurer", *doc.VerifiedBy)
	assert.Equal(t, "checked", doc.VerificationRemarks)
	assert.Equal(t, Verified, StateOf(doc))

	req.Action = Approve
	Apply(&doc, Verified, Approved, req, at)
	assert.Equal(t, domain.ApprovalApproved, doc.ApprovalStatus)
	assert.Equal(t, Approved, StateOf(doc))

	rejected := pendingDoc(domain.KindExpense)
	req.Action = Reject
	Apply(&rejected, Pending, Rejected, req, at)
	assert.Equal(t, domain.VerificationRejected, rejected.VerificationStatus)
	assert.Equal(t, domain.ApprovalRejected, rejected.ApprovalStatus)
	assert.Equal(t, Rejected, StateOf(rejected))

	late := pendingDoc(domain.KindExpense)
	late.VerificationStatus = domain.VerificationVerified
	Apply(&late, Verified, Rejected, req, at)
	assert.Equal(t, domain.VerificationVerified, late.VerificationStatus)
	assert.Equal(t, domain.ApprovalRejected, late.ApprovalStatus)
	assert.Equal(t, Rejected, StateOf(late))
}
