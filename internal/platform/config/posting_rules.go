package config

import (
	"fmt"

	"github.com/SscSPs/fund_ledger/internal/core/domain"
	"github.com/spf13/viper"
)

// LoadPostingRules reads the category/fund/payment-mode table and default
// chart from a YAML or JSON file. An empty path returns the built-in rules.
// Keys present in the file replace the built-in value for that key.
func LoadPostingRules(path string) (domain.PostingRules, error) {
	rules := domain.DefaultPostingRules()
	if path == "" {
		return rules, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return domain.PostingRules{}, fmt.Errorf("reading posting rules %s: %w", path, err)
	}

	var loaded domain.PostingRules
	if err := v.Unmarshal(&loaded); err != nil {
		return domain.PostingRules{}, fmt.Errorf("decoding posting rules %s: %w", path, err)
	}
	merge(&rules, loaded, v)

	if err := rules.Validate(); err != nil {
		return domain.PostingRules{}, fmt.Errorf("posting rules %s: %w", path, err)
	}
	return rules, nil
}

func merge(dst *domain.PostingRules, src domain.PostingRules, v *viper.Viper) {
	if v.IsSet("funds") {
		dst.Funds = src.Funds
	}
	if v.IsSet("payment_modes") {
		dst.PaymentModes = src.PaymentModes
	}
	if v.IsSet("cash_payment_modes") {
		dst.CashPaymentModes = src.CashPaymentModes
	}
	if v.IsSet("cash_account") {
		dst.CashAccount = src.CashAccount
	}
	if v.IsSet("general_bank_account") {
		dst.GeneralBankAccount = src.GeneralBankAccount
	}
	if v.IsSet("fund_bank_accounts") {
		dst.FundBankAccounts = src.FundBankAccounts
	}
	if v.IsSet("strict_categories") {
		dst.StrictCategories = src.StrictCategories
	}
	if v.IsSet("income") {
		dst.Income = src.Income
	}
	if v.IsSet("expense") {
		dst.Expense = src.Expense
	}
	if v.IsSet("chart") {
		dst.Chart = src.Chart
	}
}
