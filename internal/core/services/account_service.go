package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/fund_ledger/internal/apperrors"
	"github.com/SscSPs/fund_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/fund_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fund_ledger/internal/core/ports/services"
	"github.com/SscSPs/fund_ledger/internal/dto"
	"github.com/SscSPs/fund_ledger/internal/utils/accounting"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type accountService struct {
	BaseService
	store portsrepo.Store
	audit portssvc.AuditRecorder
	rules domain.PostingRules
}

// NewAccountService creates the chart of accounts service.
func NewAccountService(store portsrepo.Store, audit portssvc.AuditRecorder, rules domain.PostingRules, opts ...Option) portssvc.AccountSvcFacade {
	return &accountService{
		BaseService: newBaseService(opts),
		store:       store,
		audit:       audit,
		rules:       rules,
	}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) ResolveAccount(ctx context.Context, actor domain.Actor, code string) (*domain.Account, error) {
	tenantID, err := s.authorize(ctx, actor, domain.CapViewLedger)
	if err != nil {
		return nil, err
	}
	return s.findByCode(ctx, s.store.Repositories(), tenantID, code)
}

func (s *accountService) findByCode(ctx context.Context, repos portsrepo.RepositoryProvider, tenantID, code string) (*domain.Account, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, apperrors.NewValidationError("account code is required")
	}
	account, err := repos.AccountRepo.FindAccountByCode(ctx, tenantID, code)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account by code", slog.String("code", code), slog.String("tenant_id", tenantID))
		}
		return nil, err
	}
	return account, nil
}

func (s *accountService) ListAccounts(ctx context.Context, actor domain.Actor, filter domain.AccountFilter) ([]domain.Account, error) {
	tenantID, err := s.authorize(ctx, actor, domain.CapViewLedger)
	if err != nil {
		return nil, err
	}
	if filter.AccountType != "" && !filter.AccountType.IsValid() {
		return nil, apperrors.NewValidationError("unknown account type %q", filter.AccountType)
	}
	accounts, err := s.store.Repositories().AccountRepo.ListAccounts(ctx, tenantID, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts", slog.String("tenant_id", tenantID))
		return nil, err
	}
	return accounts, nil
}

func (s *accountService) CreateAccount(ctx context.Context, actor domain.Actor, req dto.CreateAccountRequest) (*domain.Account, error) {
	tenantID, err := s.authorize(ctx, actor, domain.CapManageAccounts)
	if err != nil {
		return nil, err
	}
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	if !s.rules.HasFund(req.FundType) {
		return nil, apperrors.NewValidationError("unknown fund %q", req.FundType)
	}

	now := s.Now()
	account := domain.Account{
		AccountID:   uuid.NewString(),
		TenantID:    tenantID,
		Code:        strings.TrimSpace(req.Code),
		Name:        strings.TrimSpace(req.Name),
		AccountType: req.AccountType,
		FundType:    req.FundType,
		Description: req.Description,
		IsActive:    true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.UserID,
		},
	}

	err = s.store.Do(ctx, func(repos portsrepo.RepositoryProvider) error {
		if req.ParentCode != nil && *req.ParentCode != "" {
			parent, err := repos.AccountRepo.FindAccountByCode(ctx, tenantID, *req.ParentCode)
			if err != nil {
				if errors.Is(err, apperrors.ErrNotFound) {
					return apperrors.NewValidationError("parent account %s does not exist", *req.ParentCode)
				}
				return err
			}
			account.ParentAccountID = &parent.AccountID
		}
		if err := repos.AccountRepo.SaveAccount(ctx, account); err != nil {
			return err
		}
		return s.audit.Record(ctx, repos, actor, portssvc.AuditEvent{
			Action:     domain.AuditCreate,
			EntityType: domain.EntityAccount,
			EntityID:   account.AccountID,
			New:        map[string]any{"code": account.Code, "name": account.Name, "account_type": account.AccountType, "fund_type": account.FundType},
		})
	})
	if err != nil {
		s.logFailure(ctx, err, "Failed to create account", slog.String("code", account.Code), slog.String("tenant_id", tenantID))
		return nil, err
	}

	s.LogInfo(ctx, "Account created", slog.String("account_id", account.AccountID), slog.String("code", account.Code))
	return &account, nil
}

// seedChart inserts the chart accounts whose codes are missing in tenantID.
func seedChart(ctx context.Context, repos portsrepo.RepositoryProvider, tenantID, userID string, chart []domain.ChartAccount, now time.Time) (int, error) {
	created := 0
	for _, ca := range chart {
		_, err := repos.AccountRepo.FindAccountByCode(ctx, tenantID, ca.Code)
		if err == nil {
			continue
		}
		if !errors.Is(err, apperrors.ErrNotFound) {
			return created, err
		}
		account := domain.Account{
			AccountID:   uuid.NewString(),
			TenantID:    tenantID,
			Code:        ca.Code,
			Name:        ca.Name,
			AccountType: ca.Type,
			FundType:    ca.Fund,
			Description: ca.Description,
			IsActive:    true,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     userID,
				LastUpdatedAt: now,
				LastUpdatedBy: userID,
			},
		}
		if err := repos.AccountRepo.SaveAccount(ctx, account); err != nil {
			return created, fmt.Errorf("seeding account %s: %w", ca.Code, err)
		}
		created++
	}
	return created, nil
}

func (s *accountService) SeedDefaultChart(ctx context.Context, actor domain.Actor) (int, error) {
	tenantID, err := s.authorize(ctx, actor, domain.CapManageAccounts)
	if err != nil {
		return 0, err
	}

	var created int
	err = s.store.Do(ctx, func(repos portsrepo.RepositoryProvider) error {
		n, err := seedChart(ctx, repos, tenantID, actor.UserID, s.rules.Chart, s.Now())
		if err != nil {
			return err
		}
		created = n
		if n == 0 {
			return nil
		}
		return s.audit.Record(ctx, repos, actor, portssvc.AuditEvent{
			Action:     domain.AuditSeed,
			EntityType: domain.EntityAccount,
			EntityID:   tenantID,
			New:        map[string]any{"created": n},
		})
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to seed default chart", slog.String("tenant_id", tenantID))
		return 0, err
	}

	s.LogInfo(ctx, "Default chart seeded", slog.String("tenant_id", tenantID), slog.Int("created", created))
	return created, nil
}

// dayRange reduces optional bounds to calendar dates so both stores compare
// entry dates against whole days.
func dayRange(from, to *time.Time) (*time.Time, *time.Time, error) {
	if from != nil {
		d := truncateDay(*from)
		from = &d
	}
	if to != nil {
		d := truncateDay(*to)
		to = &d
	}
	if from != nil && to != nil && from.After(*to) {
		return nil, nil, apperrors.NewValidationError("from date %s is after to date %s", from.Format(time.DateOnly), to.Format(time.DateOnly))
	}
	return from, to, nil
}

func (s *accountService) GetBalance(ctx context.Context, actor domain.Actor, code string, from, to *time.Time) (decimal.Decimal, error) {
	tenantID, err := s.authorize(ctx, actor, domain.CapViewLedger)
	if err != nil {
		return decimal.Zero, err
	}
	from, to, err = dayRange(from, to)
	if err != nil {
		return decimal.Zero, err
	}
	repos := s.store.Repositories()
	account, err := s.findByCode(ctx, repos, tenantID, code)
	if err != nil {
		return decimal.Zero, err
	}
	totals, err := repos.LedgerRepo.SumEntries(ctx, tenantID, account.AccountID, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to sum entries", slog.String("account_id", account.AccountID))
		return decimal.Zero, err
	}
	return accounting.SignedBalance(account.AccountType, totals), nil
}

func (s *accountService) AccountLedger(ctx context.Context, actor domain.Actor, code string, from, to *time.Time) (*domain.AccountLedger, error) {
	tenantID, err := s.authorize(ctx, actor, domain.CapViewLedger)
	if err != nil {
		return nil, err
	}
	from, to, err = dayRange(from, to)
	if err != nil {
		return nil, err
	}
	repos := s.store.Repositories()
	account, err := s.findByCode(ctx, repos, tenantID, code)
	if err != nil {
		return nil, err
	}

	opening := decimal.Zero
	if from != nil {
		dayBefore := from.AddDate(0, 0, -1)
		totals, err := repos.LedgerRepo.SumEntries(ctx, tenantID, account.AccountID, nil, &dayBefore)
		if err != nil {
			s.LogError(ctx, err, "Failed to compute opening balance", slog.String("account_id", account.AccountID))
			return nil, err
		}
		opening = accounting.SignedBalance(account.AccountType, totals)
	}

	lines, err := repos.LedgerRepo.ListEntriesByAccount(ctx, tenantID, account.AccountID, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to list account entries", slog.String("account_id", account.AccountID))
		return nil, err
	}
	running := opening
	for i := range lines {
		running = running.Add(accounting.SignedAmount(account.AccountType, lines[i].JournalEntry))
		lines[i].RunningBalance = running
	}

	return &domain.AccountLedger{
		Account:        *account,
		OpeningBalance: opening,
		ClosingBalance: running,
		Lines:          lines,
	}, nil
}
