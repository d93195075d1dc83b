// Package workflow holds the verification and approval state machine for
// income receipts and expense vouchers. It performs no I/O.
package workflow

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/fund_ledger/internal/apperrors"
	"github.com/SscSPs/fund_ledger/internal/core/domain"
)

// State is the lifecycle position of a document.
type State string

const (
	Pending  State = "pending"
	Verified State = "verified"
	Approved State = "approved"
	Rejected State = "rejected"
)

// Action is a transition requested by an actor.
type Action string

const (
	Verify  Action = "verify"
	Approve Action = "approve"
	Reject  Action = "reject"
)

type transition struct {
	from   State
	action Action
}

type outcome struct {
	to    State
	posts bool
}

var transitions = map[domain.DocumentKind]map[transition]outcome{
	domain.KindIncome: {
		{Pending, Verify}: {to: Verified, posts: true},
		{Pending, Reject}: {to: Rejected},
	},
	domain.KindExpense: {
		{Pending, Verify}:   {to: Verified},
		{Pending, Reject}:   {to: Rejected},
		{Verified, Approve}: {to: Approved, posts: true},
		{Verified, Reject}:  {to: Rejected},
	},
}

// StateOf derives the state from a document's status columns.
func StateOf(doc domain.Document) State {
	switch {
	case doc.VerificationStatus == domain.VerificationRejected:
		return Rejected
	case doc.VerificationStatus != domain.VerificationVerified:
		return Pending
	case !doc.Kind.RequiresApproval():
		return Verified
	case doc.ApprovalStatus == domain.ApprovalApproved:
		return Approved
	case doc.ApprovalStatus == domain.ApprovalRejected:
		return Rejected
	default:
		return Verified
	}
}

// Next returns the state reached by applying action from state, and whether
// that transition posts the document to the ledger.
func Next(kind domain.DocumentKind, from State, action Action) (State, bool, error) {
	out, ok := transitions[kind][transition{from, action}]
	if !ok {
		return from, false, fmt.Errorf("%w: cannot %s a %s %s", apperrors.ErrAlreadyProcessed, action, from, strings.ToLower(string(kind)))
	}
	return out.to, out.posts, nil
}

// Capability returns what the actor needs to perform action from state.
func Capability(from State, action Action) domain.Capability {
	switch {
	case action == Approve:
		return domain.CapApproveEntry
	case action == Reject && from == Verified:
		return domain.CapApproveEntry
	default:
		return domain.CapVerifyEntry
	}
}

// Request is one transition attempt.
type Request struct {
	Actor   domain.Actor
	Action  Action
	Remarks string
}

// Check runs the transition guards in order: not reversed, state allows the
// action, remarks present, capability held, and actor is not the entrant
// unless the role overrides separation of duties. It returns the target
// state and whether the transition posts.
func Check(doc domain.Document, req Request) (State, bool, error) {
	if doc.IsReversed {
		return "", false, apperrors.ErrAlreadyReversed
	}
	from := StateOf(doc)
	to, posts, err := Next(doc.Kind, from, req.Action)
	if err != nil {
		return "", false, err
	}
	if strings.TrimSpace(req.Remarks) == "" {
		return "", false, apperrors.NewValidationError("remarks are required to %s", req.Action)
	}
	if !req.Actor.Can(Capability(from, req.Action)) {
		return "", false, fmt.Errorf("%w: role %s cannot %s", apperrors.ErrForbidden, req.Actor.Role, req.Action)
	}
	if req.Actor.UserID == doc.EnteredBy && !req.Actor.Can(domain.CapOverrideSelfAction) {
		return "", false, apperrors.ErrSelfAction
	}
	return to, posts, nil
}

// Apply stamps the status columns for a checked transition onto doc.
func Apply(doc *domain.Document, from, to State, req Request, at time.Time) {
	actorID := req.Actor.UserID
	stampVerification := func(status domain.VerificationStatus) {
		doc.VerificationStatus = status
		doc.VerifiedBy = &actorID
		doc.VerifiedAt = &at
		doc.VerificationRemarks = req.Remarks
	}
	stampApproval := func(status domain.ApprovalStatus) {
		doc.ApprovalStatus = status
		doc.ApprovedBy = &actorID
		doc.ApprovedAt = &at
		doc.ApprovalRemarks = req.Remarks
	}

	switch {
	case to == Verified:
		stampVerification(domain.VerificationVerified)
	case to == Approved:
		stampApproval(domain.ApprovalApproved)
	case to == Rejected && from == Pending:
		stampVerification(domain.VerificationRejected)
		if doc.Kind.RequiresApproval() {
			doc.ApprovalStatus = domain.ApprovalRejected
		}
	case to == Rejected:
		stampApproval(domain.ApprovalRejected)
	}
	doc.UpdatedAt = at
}

// AuditAction maps a workflow action onto its audit trail verb.
func AuditAction(action Action) domain.AuditAction {
	switch action {
	case Verify:
		return domain.AuditVerify
	case Approve:
		return domain.AuditApprove
	default:
		return domain.AuditReject
	}
}
