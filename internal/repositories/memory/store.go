// Package memory is an in-process implementation of the repository ports.
// It backs the server in development mode and the service tests.
package memory

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/SscSPs/fund_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/fund_ledger/internal/core/ports/repositories"
)

type state struct {
	tenants      map[string]domain.Tenant
	members      map[string]domain.TenantMember // tenantID|userID
	accounts     map[string]domain.Account
	transactions map[string]domain.Transaction
	documents    map[string]domain.Document
	sequences    map[string]int // tenantID|prefix
	locks        map[string]domain.PeriodLock
	audit        []domain.AuditLog
	settings     map[string]domain.Settings
}

func newState() *state {
	return &state{
		tenants:      map[string]domain.Tenant{},
		members:      map[string]domain.TenantMember{},
		accounts:     map[string]domain.Account{},
		transactions: map[string]domain.Transaction{},
		documents:    map[string]domain.Document{},
		sequences:    map[string]int{},
		locks:        map[string]domain.PeriodLock{},
		settings:     map[string]domain.Settings{},
	}
}

func cloneMap[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// clone copies the containers. Stored values are replaced, never mutated in
// place, so sharing them between snapshots is safe.
func (s *state) clone() *state {
	return &state{
		tenants:      cloneMap(s.tenants),
		members:      cloneMap(s.members),
		accounts:     cloneMap(s.accounts),
		transactions: cloneMap(s.transactions),
		documents:    cloneMap(s.documents),
		sequences:    cloneMap(s.sequences),
		locks:        cloneMap(s.locks),
		audit:        slices.Clone(s.audit),
		settings:     cloneMap(s.settings),
	}
}

func key(parts ...string) string {
	return strings.Join(parts, "|")
}

func lockKey(tenantID string, p domain.Period) string {
	return fmt.Sprintf("%s|%04d|%02d", tenantID, p.Year, p.Month)
}

// access runs reads and writes against one state.
type access struct {
	read  func(fn func(st *state) error) error
	write func(fn func(st *state) error) error
}

// Store keeps every tenant's books in memory. Units of work run serially
// against a copy of the state that replaces the live state on success.
type Store struct {
	mu sync.RWMutex
	st *state
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{st: newState()}
}

// Do implements repositories.UnitOfWork.
func (s *Store) Do(ctx context.Context, fn func(repos portsrepo.RepositoryProvider) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	work := s.st.clone()
	direct := func(fn func(st *state) error) error { return fn(work) }
	if err := fn(providerFor(access{read: direct, write: direct})); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	s.st = work
	return nil
}

// Repositories implements repositories.Store. It must not be used from
// inside a Do callback.
func (s *Store) Repositories() portsrepo.RepositoryProvider {
	return providerFor(access{
		read: func(fn func(st *state) error) error {
			s.mu.RLock()
			defer s.mu.RUnlock()
			return fn(s.st)
		},
		write: func(fn func(st *state) error) error {
			s.mu.Lock()
			defer s.mu.Unlock()
			return fn(s.st)
		},
	})
}

func providerFor(a access) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:    &accountRepo{a},
		LedgerRepo:     &ledgerRepo{a},
		DocumentRepo:   &documentRepo{a},
		PeriodLockRepo: &periodLockRepo{a},
		AuditRepo:      &auditRepo{a},
		SettingsRepo:   &settingsRepo{a},
		TenantRepo:     &tenantRepo{a},
	}
}

var _ portsrepo.Store = (*Store)(nil)
