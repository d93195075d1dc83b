package pgsql

import (
	"context"
	"time"

	"github.com/SscSPs/fund_ledger/internal/apperrors"
	"github.com/SscSPs/fund_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/fund_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/fund_ledger/internal/models"
	"github.com/SscSPs/fund_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const transactionColumns = `transaction_id, tenant_id, reference_number, transaction_type, transaction_date,
	description, fund_type, total_amount, is_reversed, reversal_of_id, created_by, created_at`

const entryColumns = `entry_id, transaction_id, tenant_id, account_id, debit_amount, credit_amount,
	entry_date, description, created_at`

// dateRange is appended to entry queries; $N and $N+1 are the optional bounds.
const dateRange = ` AND ($%d::date IS NULL OR e.entry_date >= $%d::date) AND ($%d::date IS NULL OR e.entry_date <= $%d::date)`

type PgxLedgerRepository struct {
	db DBTX
}

// newPgxLedgerRepository creates a new repository for transactions and their journal entries.
func newPgxLedgerRepository(db DBTX) *PgxLedgerRepository {
	return &PgxLedgerRepository{db: db}
}

var _ portsrepo.LedgerRepositoryFacade = (*PgxLedgerRepository)(nil)

// SaveTransaction inserts the transaction header and queues its entries in one batch.
func (r *PgxLedgerRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)
	_, err := r.db.Exec(ctx, `
		INSERT INTO transactions (`+transactionColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);`,
		m.TransactionID, m.TenantID, m.ReferenceNumber, m.TransactionType, m.TransactionDate,
		m.Description, m.FundType, m.TotalAmount, m.IsReversed, m.ReversalOfID, m.CreatedBy, m.CreatedAt,
	)
	if err != nil {
		return writeError(err, "transaction reference "+txn.ReferenceNumber)
	}

	batch := &pgx.Batch{}
	entryQuery := `INSERT INTO journal_entries (` + entryColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);`
	for _, e := range txn.Entries {
		em := mapping.ToModelJournalEntry(e, txn.TenantID)
		batch.Queue(entryQuery,
			em.EntryID, em.TransactionID, em.TenantID, em.AccountID, em.DebitAmount, em.CreditAmount,
			em.EntryDate, em.Description, em.CreatedAt,
		)
	}
	// Close surfaces the first failing insert
	if err := r.db.SendBatch(ctx, batch).Close(); err != nil {
		return writeError(err, "journal entries of "+txn.ReferenceNumber)
	}
	return nil
}

// FindTransactionByID retrieves a transaction with its entries, debits first.
func (r *PgxLedgerRepository) FindTransactionByID(ctx context.Context, tenantID, transactionID string) (*domain.Transaction, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+transactionColumns+` FROM transactions WHERE tenant_id = $1 AND transaction_id = $2`,
		tenantID, transactionID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query transaction", err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Transaction])
	if err != nil {
		return nil, readError(err, "transaction "+transactionID)
	}

	rows, err = r.db.Query(ctx, `
		SELECT `+entryColumns+` FROM journal_entries
		WHERE tenant_id = $1 AND transaction_id = $2
		ORDER BY debit_amount > 0 DESC, entry_id`,
		tenantID, transactionID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query journal entries", err)
	}
	entries, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.JournalEntry])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to scan journal entries", err)
	}

	txn := mapping.ToDomainTransaction(m, entries)
	return &txn, nil
}

// MarkTransactionReversed flags a transaction as reversed.
func (r *PgxLedgerRepository) MarkTransactionReversed(ctx context.Context, tenantID, transactionID string) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE transactions SET is_reversed = TRUE WHERE tenant_id = $1 AND transaction_id = $2`,
		tenantID, transactionID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to mark transaction reversed", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("transaction " + transactionID)
	}
	return nil
}

// SumEntries returns the debit and credit totals of one account.
func (r *PgxLedgerRepository) SumEntries(ctx context.Context, tenantID, accountID string, from, to *time.Time) (domain.EntryTotals, error) {
	query := `
		SELECT COALESCE(SUM(e.debit_amount), 0), COALESCE(SUM(e.credit_amount), 0)
		FROM journal_entries e
		WHERE e.tenant_id = $1 AND e.account_id = $2` + sprintfRange(3)

	var totals domain.EntryTotals
	if err := r.db.QueryRow(ctx, query, tenantID, accountID, from, to).Scan(&totals.Debit, &totals.Credit); err != nil {
		return domain.EntryTotals{}, apperrors.NewAppError(500, "failed to sum entries for account "+accountID, err)
	}
	return totals, nil
}

// SumEntriesByAccount returns totals for every account with entries in range.
func (r *PgxLedgerRepository) SumEntriesByAccount(ctx context.Context, tenantID string, from, to *time.Time) (map[string]domain.EntryTotals, error) {
	query := `
		SELECT e.account_id, SUM(e.debit_amount), SUM(e.credit_amount)
		FROM journal_entries e
		WHERE e.tenant_id = $1` + sprintfRange(2) + `
		GROUP BY e.account_id`

	rows, err := r.db.Query(ctx, query, tenantID, from, to)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to sum entries by account", err)
	}
	defer rows.Close()

	out := map[string]domain.EntryTotals{}
	for rows.Next() {
		var accountID string
		var debit, credit decimal.Decimal
		if err := rows.Scan(&accountID, &debit, &credit); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan entry totals", err)
		}
		out[accountID] = domain.EntryTotals{Debit: debit, Credit: credit}
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate entry totals", err)
	}
	return out, nil
}

// SumEntriesByFund groups totals by the owning transaction's fund, then account.
func (r *PgxLedgerRepository) SumEntriesByFund(ctx context.Context, tenantID string, from, to *time.Time) (map[domain.FundType]map[string]domain.EntryTotals, error) {
	query := `
		SELECT t.fund_type, e.account_id, SUM(e.debit_amount), SUM(e.credit_amount)
		FROM journal_entries e
		JOIN transactions t ON t.transaction_id = e.transaction_id
		WHERE e.tenant_id = $1` + sprintfRange(2) + `
		GROUP BY t.fund_type, e.account_id`

	rows, err := r.db.Query(ctx, query, tenantID, from, to)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to sum entries by fund", err)
	}
	defer rows.Close()

	out := map[domain.FundType]map[string]domain.EntryTotals{}
	for rows.Next() {
		var fund, accountID string
		var debit, credit decimal.Decimal
		if err := rows.Scan(&fund, &accountID, &debit, &credit); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan fund totals", err)
		}
		byAccount, ok := out[domain.FundType(fund)]
		if !ok {
			byAccount = map[string]domain.EntryTotals{}
			out[domain.FundType(fund)] = byAccount
		}
		byAccount[accountID] = domain.EntryTotals{Debit: debit, Credit: credit}
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate fund totals", err)
	}
	return out, nil
}

// ListEntriesByAccount returns an account's entries in date order with their reference numbers.
func (r *PgxLedgerRepository) ListEntriesByAccount(ctx context.Context, tenantID, accountID string, from, to *time.Time) ([]domain.LedgerLine, error) {
	query := `
		SELECT e.entry_id, e.transaction_id, e.account_id, e.debit_amount, e.credit_amount,
		       e.entry_date, e.description, e.created_at, t.reference_number
		FROM journal_entries e
		JOIN transactions t ON t.transaction_id = e.transaction_id
		WHERE e.tenant_id = $1 AND e.account_id = $2` + sprintfRange(3) + `
		ORDER BY e.entry_date, e.created_at, e.entry_id`

	rows, err := r.db.Query(ctx, query, tenantID, accountID, from, to)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list entries for account "+accountID, err)
	}
	defer rows.Close()

	var lines []domain.LedgerLine
	for rows.Next() {
		var line domain.LedgerLine
		e := &line.JournalEntry
		if err := rows.Scan(&e.EntryID, &e.TransactionID, &e.AccountID, &e.DebitAmount, &e.CreditAmount,
			&e.Date, &e.Description, &e.CreatedAt, &line.ReferenceNumber); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan ledger line", err)
		}
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate ledger lines", err)
	}
	return lines, nil
}
