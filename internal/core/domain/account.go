package domain

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Income    AccountType = "INCOME"
	Expense   AccountType = "EXPENSE"
)

// AllAccountTypes lists account types in chart order.
var AllAccountTypes = []AccountType{Asset, Liability, Equity, Income, Expense}

// IsValid reports whether t is one of the five account types.
func (t AccountType) IsValid() bool {
	switch t {
	case Asset, Liability, Equity, Income, Expense:
		return true
	}
	return false
}

// IsDebitNormal reports whether balances of this type grow with debits.
func (t AccountType) IsDebitNormal() bool {
	return t == Asset || t == Expense
}

// FundType tags accounts, transactions and documents with the ring-fenced pool they belong to.
type FundType string

const (
	FundGeneral FundType = "general"
	FundZakat   FundType = "zakat"
	FundSadaqah FundType = "sadaqah"
	FundAmanah  FundType = "amanah"
	FundLillah  FundType = "lillah"
)

// Account represents a node in a tenant's chart of accounts.
// Balance is never stored; it is derived from posted journal entries.
type Account struct {
	AccountID       string      `json:"accountID"`
	TenantID        string      `json:"tenantID"`
	Code            string      `json:"code"` // unique within tenant
	Name            string      `json:"name"`
	AccountType     AccountType `json:"accountType"`
	FundType        FundType    `json:"fundType"`
	ParentAccountID *string     `json:"parentAccountID,omitempty"` // weak reference, display only
	Description     string      `json:"description"`
	IsActive        bool        `json:"isActive"`
	AuditFields
}

// AccountFilter narrows account listings. Zero values mean "any".
type AccountFilter struct {
	AccountType AccountType
	FundType    FundType
	ActiveOnly  bool
}
