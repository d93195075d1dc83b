package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/SscSPs/fund_ledger/internal/apperrors"
	"github.com/SscSPs/fund_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/fund_ledger/internal/core/ports/repositories"
)

type accountRepo struct{ access }

var _ portsrepo.AccountRepositoryFacade = (*accountRepo)(nil)

func (r *accountRepo) FindAccountByID(ctx context.Context, tenantID, accountID string) (*domain.Account, error) {
	var out *domain.Account
	err := r.read(func(st *state) error {
		acc, ok := st.accounts[accountID]
		if !ok || acc.TenantID != tenantID {
			return apperrors.NewNotFoundError("account " + accountID)
		}
		out = &acc
		return nil
	})
	return out, err
}

func (r *accountRepo) FindAccountByCode(ctx context.Context, tenantID, code string) (*domain.Account, error) {
	var out *domain.Account
	err := r.read(func(st *state) error {
		for _, acc := range st.accounts {
			if acc.TenantID == tenantID && acc.Code == code {
				out = &acc
				return nil
			}
		}
		return apperrors.NewNotFoundError("account code " + code)
	})
	return out, err
}

func (r *accountRepo) FindAccountsByIDs(ctx context.Context, tenantID string, accountIDs []string) (map[string]domain.Account, error) {
	out := make(map[string]domain.Account, len(accountIDs))
	err := r.read(func(st *state) error {
		for _, id := range accountIDs {
			if acc, ok := st.accounts[id]; ok && acc.TenantID == tenantID {
				out[id] = acc
			}
		}
		return nil
	})
	return out, err
}

func (r *accountRepo) ListAccounts(ctx context.Context, tenantID string, filter domain.AccountFilter) ([]domain.Account, error) {
	var out []domain.Account
	err := r.read(func(st *state) error {
		for _, acc := range st.accounts {
			if acc.TenantID != tenantID {
				continue
			}
			if filter.AccountType != "" && acc.AccountType != filter.AccountType {
				continue
			}
			if filter.FundType != "" && acc.FundType != filter.FundType {
				continue
			}
			if filter.ActiveOnly && !acc.IsActive {
				continue
			}
			out = append(out, acc)
		}
		return nil
	})
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out, err
}

func (r *accountRepo) SaveAccount(ctx context.Context, account domain.Account) error {
	return r.write(func(st *state) error {
		for _, acc := range st.accounts {
			if acc.TenantID == account.TenantID && acc.Code == account.Code {
				return fmt.Errorf("account code %s: %w", account.Code, apperrors.ErrDuplicate)
			}
		}
		if _, ok := st.accounts[account.AccountID]; ok {
			return fmt.Errorf("account %s: %w", account.AccountID, apperrors.ErrDuplicate)
		}
		st.accounts[account.AccountID] = account
		return nil
	})
}
