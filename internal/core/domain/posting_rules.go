package domain

import (
	"fmt"
	"slices"
	"strings"
)

// CategoryRule maps one income or expense category onto its ledger account.
type CategoryRule struct {
	Name    string `mapstructure:"name" json:"name"`
	Account string `mapstructure:"account" json:"account"`
	// Fund is the fund an income category is ring-fenced to. Empty means the
	// document's own fund is used.
	Fund FundType `mapstructure:"fund" json:"fund,omitempty"`
	// FundAccounts redirects the category to another account for specific funds.
	FundAccounts map[FundType]string `mapstructure:"fund_accounts" json:"fundAccounts,omitempty"`
}

// CategoryRules is the mapping table for one document kind.
type CategoryRules struct {
	DefaultAccount string                  `mapstructure:"default_account" json:"defaultAccount"`
	Categories     map[string]CategoryRule `mapstructure:"categories" json:"categories"`
}

// ChartAccount is one row of the default chart of accounts.
type ChartAccount struct {
	Code        string      `mapstructure:"code" json:"code"`
	Name        string      `mapstructure:"name" json:"name"`
	Type        AccountType `mapstructure:"type" json:"type"`
	Fund        FundType    `mapstructure:"fund" json:"fund"`
	Description string      `mapstructure:"description" json:"description"`
}

// PostingRules is the declarative category x fund x payment-mode table that
// decides which account pair a document posts to. It is loaded per deployment.
type PostingRules struct {
	Funds              []FundType          `mapstructure:"funds" json:"funds"`
	PaymentModes       []string            `mapstructure:"payment_modes" json:"paymentModes"`
	CashPaymentModes   []string            `mapstructure:"cash_payment_modes" json:"cashPaymentModes"`
	CashAccount        string              `mapstructure:"cash_account" json:"cashAccount"`
	GeneralBankAccount string              `mapstructure:"general_bank_account" json:"generalBankAccount"`
	FundBankAccounts   map[FundType]string `mapstructure:"fund_bank_accounts" json:"fundBankAccounts"`
	// StrictCategories rejects categories missing from the table instead of
	// posting them to the kind's default account.
	StrictCategories bool           `mapstructure:"strict_categories" json:"strictCategories"`
	Income           CategoryRules  `mapstructure:"income" json:"income"`
	Expense          CategoryRules  `mapstructure:"expense" json:"expense"`
	Chart            []ChartAccount `mapstructure:"chart" json:"chart"`
}

// AccountPair is the result of resolving a document against PostingRules.
type AccountPair struct {
	DebitCode  string
	CreditCode string
	Fund       FundType
}

func (r PostingRules) categoryRules(kind DocumentKind) CategoryRules {
	if kind == KindExpense {
		return r.Expense
	}
	return r.Income
}

// HasCategory reports whether category is listed for kind.
func (r PostingRules) HasCategory(kind DocumentKind, category string) bool {
	_, ok := r.categoryRules(kind).Categories[category]
	return ok
}

// AcceptsCategory reports whether a document of kind may use category.
func (r PostingRules) AcceptsCategory(kind DocumentKind, category string) bool {
	if strings.TrimSpace(category) == "" {
		return false
	}
	return !r.StrictCategories || r.HasCategory(kind, category)
}

// CategoryName returns the display name of category, or the category itself.
func (r PostingRules) CategoryName(kind DocumentKind, category string) string {
	if rule, ok := r.categoryRules(kind).Categories[category]; ok && rule.Name != "" {
		return rule.Name
	}
	return category
}

// HasFund reports whether fund is one of the deployment's funds.
func (r PostingRules) HasFund(fund FundType) bool {
	return slices.Contains(r.Funds, fund)
}

// HasPaymentMode reports whether mode is accepted.
func (r PostingRules) HasPaymentMode(mode string) bool {
	return slices.Contains(r.PaymentModes, mode)
}

// IsCashMode reports whether mode settles through the cash account.
func (r PostingRules) IsCashMode(mode string) bool {
	return slices.Contains(r.CashPaymentModes, mode)
}

// FundFor returns the fund a document of kind and category lands in.
// Income categories may pin a fund; otherwise the requested fund is used,
// falling back to general.
func (r PostingRules) FundFor(kind DocumentKind, category string, requested FundType) FundType {
	if rule, ok := r.categoryRules(kind).Categories[category]; ok && kind == KindIncome && rule.Fund != "" {
		return rule.Fund
	}
	if requested != "" {
		return requested
	}
	return FundGeneral
}

// AssetAccount returns the cash or bank account for a payment mode and fund.
func (r PostingRules) AssetAccount(paymentMode string, fund FundType) string {
	if r.IsCashMode(paymentMode) {
		return r.CashAccount
	}
	if code, ok := r.FundBankAccounts[fund]; ok && code != "" {
		return code
	}
	return r.GeneralBankAccount
}

// CategoryAccount returns the income or expense account for category in fund.
func (r PostingRules) CategoryAccount(kind DocumentKind, category string, fund FundType) string {
	rules := r.categoryRules(kind)
	rule, ok := rules.Categories[category]
	if !ok {
		return rules.DefaultAccount
	}
	if code, ok := rule.FundAccounts[fund]; ok && code != "" {
		return code
	}
	if rule.Account == "" {
		return rules.DefaultAccount
	}
	return rule.Account
}

// Resolve maps a document onto the account codes it debits and credits.
// Income debits the asset account and credits the income account; expense
// debits the expense account and credits the asset account.
func (r PostingRules) Resolve(kind DocumentKind, category string, fund FundType, paymentMode string) (AccountPair, error) {
	if !kind.IsValid() {
		return AccountPair{}, fmt.Errorf("unknown document kind %q", kind)
	}
	fund = r.FundFor(kind, category, fund)
	asset := r.AssetAccount(paymentMode, fund)
	ledger := r.CategoryAccount(kind, category, fund)
	if asset == "" || ledger == "" {
		return AccountPair{}, fmt.Errorf("no account mapped for %s category %q fund %q mode %q", strings.ToLower(string(kind)), category, fund, paymentMode)
	}
	if kind == KindExpense {
		return AccountPair{DebitCode: ledger, CreditCode: asset, Fund: fund}, nil
	}
	return AccountPair{DebitCode: asset, CreditCode: ledger, Fund: fund}, nil
}

// Validate checks that every code the rules reference exists in Chart and
// that the chart is internally consistent.
func (r PostingRules) Validate() error {
	codes := make(map[string]AccountType, len(r.Chart))
	for _, a := range r.Chart {
		if a.Code == "" || a.Name == "" {
			return fmt.Errorf("chart account %q is missing code or name", a.Code)
		}
		if !a.Type.IsValid() {
			return fmt.Errorf("chart account %s has invalid type %q", a.Code, a.Type)
		}
		if _, dup := codes[a.Code]; dup {
			return fmt.Errorf("chart account code %s is duplicated", a.Code)
		}
		codes[a.Code] = a.Type
	}
	if len(r.Chart) == 0 {
		return nil
	}
	check := func(code string, want AccountType, what string) error {
		got, ok := codes[code]
		if !ok {
			return fmt.Errorf("%s references unknown account %q", what, code)
		}
		if got != want {
			return fmt.Errorf("%s references %s account %s, want %s", what, got, code, want)
		}
		return nil
	}
	if err := check(r.CashAccount, Asset, "cash_account"); err != nil {
		return err
	}
	if err := check(r.GeneralBankAccount, Asset, "general_bank_account"); err != nil {
		return err
	}
	for fund, code := range r.FundBankAccounts {
		if err := check(code, Asset, "fund_bank_accounts."+string(fund)); err != nil {
			return err
		}
	}
	for _, kr := range []struct {
		name  string
		typ   AccountType
		rules CategoryRules
	}{{"income", Income, r.Income}, {"expense", Expense, r.Expense}} {
		if err := check(kr.rules.DefaultAccount, kr.typ, kr.name+".default_account"); err != nil {
			return err
		}
		for cat, rule := range kr.rules.Categories {
			if rule.Account != "" {
				if err := check(rule.Account, kr.typ, kr.name+"."+cat); err != nil {
					return err
				}
			}
			for fund, code := range rule.FundAccounts {
				if err := check(code, kr.typ, kr.name+"."+cat+"."+string(fund)); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// DefaultPostingRules returns the built-in masjid chart and mapping table.
func DefaultPostingRules() PostingRules {
	return PostingRules{
		Funds:              []FundType{FundGeneral, FundZakat, FundSadaqah, FundAmanah, FundLillah},
		PaymentModes:       []string{"cash", "bank", "upi", "card", "cheque"},
		CashPaymentModes:   []string{"cash"},
		CashAccount:        "1000",
		GeneralBankAccount: "1010",
		FundBankAccounts: map[FundType]string{
			FundZakat:   "1020",
			FundSadaqah: "1030",
			FundAmanah:  "1040",
			FundLillah:  "1050",
		},
		StrictCategories: true,
		Income: CategoryRules{
			DefaultAccount: "4080",
			Categories: map[string]CategoryRule{
				"zakat":    {Name: "Zakat", Account: "4000", Fund: FundZakat},
				"sadaqah":  {Name: "Sadaqah", Account: "4010", Fund: FundSadaqah},
				"fidyah":   {Name: "Fidyah", Account: "4010", Fund: FundSadaqah},
				"kaffarah": {Name: "Kaffarah", Account: "4010", Fund: FundSadaqah},
				"aqeeqah":  {Name: "Aqeeqah", Account: "4010", Fund: FundSadaqah},
				"qurbani":  {Name: "Qurbani", Account: "4010", Fund: FundSadaqah},
				"fitrah":   {Name: "Zakat al-Fitr", Account: "4020", Fund: FundZakat},
				"lillah":   {Name: "Lillah", Account: "4030", Fund: FundLillah},
				"donation": {Name: "General Donation", Account: "4040", Fund: FundGeneral},
				"rental":   {Name: "Rental Income", Account: "4050", Fund: FundGeneral},
				"special":  {Name: "Special Appeal", Account: "4060", Fund: FundGeneral},
				"amanah":   {Name: "Amanah Deposit", Account: "4070", Fund: FundAmanah},
				"other":    {Name: "Other Income", Account: "4080", Fund: FundGeneral},
			},
		},
		Expense: CategoryRules{
			DefaultAccount: "5100",
			Categories: map[string]CategoryRule{
				"zakat_disbursement":   {Name: "Zakat Disbursement", Account: "5000"},
				"sadaqah_disbursement": {Name: "Sadaqah Disbursement", Account: "5010"},
				"poor_needy": {Name: "Poor & Needy Assistance", Account: "5010",
					FundAccounts: map[FundType]string{FundZakat: "5000"}},
				"salaries":     {Name: "Salaries & Honoraria", Account: "5020"},
				"utilities":    {Name: "Utilities", Account: "5030"},
				"maintenance":  {Name: "Maintenance & Repairs", Account: "5040"},
				"construction": {Name: "Construction", Account: "5050"},
				"education":    {Name: "Education Programs", Account: "5060"},
				"events":       {Name: "Events & Programs", Account: "5070"},
				"funeral":      {Name: "Funeral Services", Account: "5070"},
				"food":         {Name: "Food & Iftar", Account: "5080"},
				"supplies":     {Name: "Supplies", Account: "5090"},
				"other":        {Name: "Other Expenses", Account: "5100"},
			},
		},
		Chart: DefaultChart(),
	}
}

// DefaultChart returns the built-in masjid chart of accounts.
func DefaultChart() []ChartAccount {
	return []ChartAccount{
		{"1000", "Cash in Hand", Asset, FundGeneral, "Physical cash"},
		{"1010", "Bank Account - General", Asset, FundGeneral, "Main operating bank account"},
		{"1020", "Bank Account - Zakat", Asset, FundZakat, "Ring-fenced zakat account"},
		{"1030", "Bank Account - Sadaqah", Asset, FundSadaqah, "Sadaqah account"},
		{"1040", "Bank Account - Amanah", Asset, FundAmanah, "Trust deposits held"},
		{"1050", "Bank Account - Lillah", Asset, FundLillah, "Lillah account"},

		{"2000", "Amanah Payable", Liability, FundAmanah, "Trust money owed back to depositors"},
		{"2010", "Accounts Payable", Liability, FundGeneral, "Unpaid bills"},

		{"3000", "General Fund Balance", Equity, FundGeneral, "Accumulated general fund"},
		{"3010", "Zakat Fund Balance", Equity, FundZakat, "Accumulated zakat fund"},
		{"3020", "Sadaqah Fund Balance", Equity, FundSadaqah, "Accumulated sadaqah fund"},
		{"3030", "Amanah Fund Balance", Equity, FundAmanah, "Accumulated amanah fund"},
		{"3040", "Lillah Fund Balance", Equity, FundLillah, "Accumulated lillah fund"},

		{"4000", "Zakat Income", Income, FundZakat, "Zakat collections"},
		{"4010", "Sadaqah Income", Income, FundSadaqah, "Sadaqah, fidyah, kaffarah, aqeeqah and qurbani"},
		{"4020", "Fitrah Income", Income, FundZakat, "Zakat al-Fitr collections"},
		{"4030", "Lillah Income", Income, FundLillah, "Lillah donations"},
		{"4040", "General Donations", Income, FundGeneral, "Unrestricted donations"},
		{"4050", "Rental Income", Income, FundGeneral, "Hall and property rental"},
		{"4060", "Special Appeals", Income, FundGeneral, "Special appeal collections"},
		{"4070", "Amanah Receipts", Income, FundAmanah, "Trust deposits received"},
		{"4080", "Other Income", Income, FundGeneral, "Miscellaneous income"},

		{"5000", "Zakat Disbursement", Expense, FundZakat, "Zakat paid to eligible recipients"},
		{"5010", "Sadaqah Disbursement", Expense, FundSadaqah, "Charity and assistance to the needy"},
		{"5020", "Salaries & Honoraria", Expense, FundGeneral, "Imam and staff salaries"},
		{"5030", "Utilities", Expense, FundGeneral, "Electricity, water and gas"},
		{"5040", "Maintenance & Repairs", Expense, FundGeneral, "Building maintenance"},
		{"5050", "Construction", Expense, FundGeneral, "Construction and expansion"},
		{"5060", "Education Programs", Expense, FundGeneral, "Madrasa and classes"},
		{"5070", "Events & Programs", Expense, FundGeneral, "Events and funeral services"},
		{"5080", "Food & Iftar", Expense, FundGeneral, "Food and iftar programs"},
		{"5090", "Supplies", Expense, FundGeneral, "Consumables and supplies"},
		{"5100", "Other Expenses", Expense, FundGeneral, "Miscellaneous expenses"},
	}
}
