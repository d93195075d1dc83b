package pgsql

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/fund_ledger/internal/apperrors"
	"github.com/SscSPs/fund_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/fund_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/fund_ledger/internal/models"
	"github.com/SscSPs/fund_ledger/internal/utils/mapping"
	"github.com/SscSPs/fund_ledger/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const documentColumns = `document_id, tenant_id, kind, number, transaction_id, document_date, document_time,
	category, fund_type, counterparty, counterparty_contact, payment_mode, payment_reference, amount,
	description, verification_status, verified_by, verified_at, verification_remarks, approval_status,
	approved_by, approved_at, approval_remarks, entered_by, is_reversed, reversal_of_id, created_at, updated_at`

// countedDocument is the SQL form of domain.Document.Counts.
const countedDocument = ` AND transaction_id IS NOT NULL AND NOT is_reversed AND reversal_of_id IS NULL`

type PgxDocumentRepository struct {
	db DBTX
}

// newPgxDocumentRepository creates a new repository for receipts and vouchers.
func newPgxDocumentRepository(db DBTX) *PgxDocumentRepository {
	return &PgxDocumentRepository{db: db}
}

var _ portsrepo.DocumentRepositoryFacade = (*PgxDocumentRepository)(nil)

// SaveDocument inserts a new document.
func (r *PgxDocumentRepository) SaveDocument(ctx context.Context, doc domain.Document) error {
	m := mapping.ToModelDocument(doc)
	query := `
		INSERT INTO documents (` + documentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
		        $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28);
	`
	_, err := r.db.Exec(ctx, query,
		m.DocumentID, m.TenantID, m.Kind, m.Number, m.TransactionID, m.DocumentDate, m.DocumentTime,
		m.Category, m.FundType, m.Counterparty, m.CounterpartyContact, m.PaymentMode, m.PaymentReference, m.Amount,
		m.Description, m.VerificationStatus, m.VerifiedBy, m.VerifiedAt, m.VerificationRemarks, m.ApprovalStatus,
		m.ApprovedBy, m.ApprovedAt, m.ApprovalRemarks, m.EnteredBy, m.IsReversed, m.ReversalOfID, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		return writeError(err, "document number "+doc.Number)
	}
	return nil
}

// UpdateDocument persists the workflow columns, transaction link and reversal flag.
func (r *PgxDocumentRepository) UpdateDocument(ctx context.Context, doc domain.Document) error {
	m := mapping.ToModelDocument(doc)
	query := `
		UPDATE documents SET
			transaction_id = $3,
			verification_status = $4, verified_by = $5, verified_at = $6, verification_remarks = $7,
			approval_status = $8, approved_by = $9, approved_at = $10, approval_remarks = $11,
			is_reversed = $12, updated_at = $13
		WHERE tenant_id = $1 AND document_id = $2;
	`
	tag, err := r.db.Exec(ctx, query,
		m.TenantID, m.DocumentID,
		m.TransactionID,
		m.VerificationStatus, m.VerifiedBy, m.VerifiedAt, m.VerificationRemarks,
		m.ApprovalStatus, m.ApprovedBy, m.ApprovedAt, m.ApprovalRemarks,
		m.IsReversed, m.UpdatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update document "+doc.DocumentID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("document " + doc.DocumentID)
	}
	return nil
}

// FindDocumentByID retrieves a document of the given kind.
func (r *PgxDocumentRepository) FindDocumentByID(ctx context.Context, tenantID string, kind domain.DocumentKind, documentID string) (*domain.Document, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+documentColumns+` FROM documents WHERE tenant_id = $1 AND kind = $2 AND document_id = $3`,
		tenantID, string(kind), documentID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query document", err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Document])
	if err != nil {
		return nil, readError(err, kind.EntityType()+" "+documentID)
	}
	doc := mapping.ToDomainDocument(m)
	return &doc, nil
}

// ListDocuments retrieves a page of documents, newest first.
func (r *PgxDocumentRepository) ListDocuments(ctx context.Context, tenantID string, filter domain.DocumentFilter) ([]domain.Document, *string, error) {
	conds := []string{"tenant_id = $1"}
	args := []any{tenantID}
	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, strings.ReplaceAll(cond, "?", "$"+strconv.Itoa(len(args))))
	}
	if filter.Kind != "" {
		add("kind = ?", string(filter.Kind))
	}
	if filter.VerificationStatus != "" {
		add("verification_status = ?", string(filter.VerificationStatus))
	}
	if filter.ApprovalStatus != "" {
		add("approval_status = ?", string(filter.ApprovalStatus))
	}
	if filter.Category != "" {
		add("category = ?", filter.Category)
	}
	if filter.FundType != "" {
		add("fund_type = ?", string(filter.FundType))
	}
	if !filter.IncludeReversed {
		conds = append(conds, "NOT is_reversed")
	}
	if filter.NextToken != nil && *filter.NextToken != "" {
		at, id, err := pagination.DecodeToken(*filter.NextToken)
		if err != nil {
			return nil, nil, apperrors.NewValidationError("%v", err)
		}
		args = append(args, at, id)
		n := len(args)
		conds = append(conds, "(created_at, document_id) < ($"+strconv.Itoa(n-1)+", $"+strconv.Itoa(n)+")")
	}

	limit := pagination.Limit(filter.Limit)
	args = append(args, limit+1)
	query := `SELECT ` + documentColumns + ` FROM documents WHERE ` + strings.Join(conds, " AND ") +
		` ORDER BY created_at DESC, document_id DESC LIMIT $` + strconv.Itoa(len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to list documents", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Document])
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to scan documents", err)
	}

	var next *string
	if len(ms) > limit {
		ms = ms[:limit]
		last := ms[len(ms)-1]
		token := pagination.EncodeToken(last.CreatedAt, last.DocumentID)
		next = &token
	}
	docs := make([]domain.Document, len(ms))
	for i, m := range ms {
		docs[i] = mapping.ToDomainDocument(m)
	}
	return docs, next, nil
}

// NextSequence increments the (tenant, prefix) counter in one statement.
func (r *PgxDocumentRepository) NextSequence(ctx context.Context, tenantID, prefix string) (int, error) {
	query := `
		INSERT INTO document_sequences (tenant_id, prefix, last_value)
		VALUES ($1, $2, 1)
		ON CONFLICT (tenant_id, prefix) DO UPDATE SET last_value = document_sequences.last_value + 1
		RETURNING last_value;
	`
	var next int
	if err := r.db.QueryRow(ctx, query, tenantID, prefix).Scan(&next); err != nil {
		return 0, apperrors.NewAppError(500, "failed to advance sequence "+prefix, err)
	}
	return next, nil
}

// ListDocumentsOnDate returns the live documents of one day, oldest first.
func (r *PgxDocumentRepository) ListDocumentsOnDate(ctx context.Context, tenantID string, date time.Time) ([]domain.Document, error) {
	query := `SELECT ` + documentColumns + ` FROM documents
		WHERE tenant_id = $1 AND document_date = $2::date AND NOT is_reversed AND reversal_of_id IS NULL
		ORDER BY created_at, document_id`
	rows, err := r.db.Query(ctx, query, tenantID, date)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list documents on date", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Document])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to scan documents", err)
	}
	docs := make([]domain.Document, len(ms))
	for i, m := range ms {
		docs[i] = mapping.ToDomainDocument(m)
	}
	return docs, nil
}

// SumDocumentsByCategory totals counted documents of one kind per category.
func (r *PgxDocumentRepository) SumDocumentsByCategory(ctx context.Context, tenantID string, kind domain.DocumentKind, from, to time.Time) ([]domain.CategoryTotal, error) {
	query := `
		SELECT category, COUNT(*), SUM(amount)
		FROM documents
		WHERE tenant_id = $1 AND kind = $2 AND document_date >= $3::date AND document_date <= $4::date` + countedDocument + `
		GROUP BY category
		ORDER BY category`
	rows, err := r.db.Query(ctx, query, tenantID, string(kind), from, to)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to sum documents by category", err)
	}
	defer rows.Close()

	var out []domain.CategoryTotal
	for rows.Next() {
		var t domain.CategoryTotal
		if err := rows.Scan(&t.Category, &t.Count, &t.Total); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan category totals", err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate category totals", err)
	}
	return out, nil
}

// SumIncomeByPayer totals counted receipts per payer, largest first.
func (r *PgxDocumentRepository) SumIncomeByPayer(ctx context.Context, tenantID string, from, to *time.Time) ([]domain.PayerTotal, error) {
	query := `
		SELECT counterparty, COUNT(*), SUM(amount)
		FROM documents
		WHERE tenant_id = $1 AND kind = $2 AND counterparty <> ''
		  AND ($3::date IS NULL OR document_date >= $3::date)
		  AND ($4::date IS NULL OR document_date <= $4::date)` + countedDocument + `
		GROUP BY counterparty
		ORDER BY SUM(amount) DESC, counterparty`
	rows, err := r.db.Query(ctx, query, tenantID, string(domain.KindIncome), from, to)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to sum income by payer", err)
	}
	defer rows.Close()

	var out []domain.PayerTotal
	for rows.Next() {
		var (
			payer string
			count int
			total decimal.Decimal
		)
		if err := rows.Scan(&payer, &count, &total); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan payer totals", err)
		}
		out = append(out, domain.PayerTotal{Payer: payer, Count: count, Total: total})
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate payer totals", err)
	}
	return out, nil
}
