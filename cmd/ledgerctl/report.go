package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/SscSPs/fund_ledger/internal/core/domain"
	"github.com/SscSPs/fund_ledger/internal/utils"
	"github.com/fatih/color"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var (
	header = color.New(color.Bold)
	good   = color.New(color.FgGreen)
	bad    = color.New(color.FgRed, color.Bold)
)

var trialBalanceCmd = &cobra.Command{
	Use:   "trial-balance",
	Short: "Print the trial balance as of a date",
	RunE: func(cmd *cobra.Command, args []string) error {
		asOf, err := dateFlag(cmd, "as-of")
		if err != nil {
			return err
		}
		return withServices(cmd.Context(), func(ctx context.Context, e env) error {
			actor, err := e.actor(ctx)
			if err != nil {
				return err
			}
			report, err := e.services.Reporting.TrialBalance(ctx, actor, asOf)
			if err != nil {
				return err
			}
			printTrialBalance(cmd.OutOrStdout(), report)
			return nil
		})
	},
}

var fundSummaryCmd = &cobra.Command{
	Use:   "fund-summary",
	Short: "Print income, expense and assets per fund",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withServices(cmd.Context(), func(ctx context.Context, e env) error {
			actor, err := e.actor(ctx)
			if err != nil {
				return err
			}
			report, err := e.services.Reporting.FundSummary(ctx, actor)
			if err != nil {
				return err
			}
			printFundSummary(cmd.OutOrStdout(), report)
			return nil
		})
	},
}

var monthlySummaryCmd = &cobra.Command{
	Use:   "monthly-summary",
	Short: "Print one month's verified income and approved expense by category",
	RunE: func(cmd *cobra.Command, args []string) error {
		period := domain.PeriodOf(time.Now().UTC())
		if year, _ := cmd.Flags().GetInt("year"); year != 0 {
			period.Year = year
		}
		if month, _ := cmd.Flags().GetInt("month"); month != 0 {
			period.Month = month
		}
		return withServices(cmd.Context(), func(ctx context.Context, e env) error {
			actor, err := e.actor(ctx)
			if err != nil {
				return err
			}
			report, err := e.services.Reporting.MonthlyCategorySummary(ctx, actor, period)
			if err != nil {
				return err
			}
			printMonthlySummary(cmd.OutOrStdout(), report)
			return nil
		})
	},
}

func init() {
	trialBalanceCmd.Flags().String("as-of", "", "report date YYYY-MM-DD (default today)")
	monthlySummaryCmd.Flags().Int("year", 0, "calendar year (default current)")
	monthlySummaryCmd.Flags().Int("month", 0, "calendar month, 1-12 (default current)")
	rootCmd.AddCommand(trialBalanceCmd, fundSummaryCmd, monthlySummaryCmd)
}

func dateFlag(cmd *cobra.Command, name string) (time.Time, error) {
	raw, _ := cmd.Flags().GetString(name)
	if raw == "" {
		now := time.Now().UTC()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	t, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --%s, use YYYY-MM-DD: %w", name, err)
	}
	return t, nil
}

func printTrialBalance(w io.Writer, r *domain.TrialBalanceReport) {
	header.Fprintf(w, "Trial balance as of %s\n", r.AsOf.Format(time.DateOnly))
	header.Fprintf(w, "%-8s %-40s %14s %14s\n", "Code", "Account", "Debit", "Credit")
	for _, row := range r.Rows {
		fmt.Fprintf(w, "%-8s %-40s %14s %14s\n", row.Code, row.AccountName, utils.FormatMoney(row.Debit), utils.FormatMoney(row.Credit))
	}
	header.Fprintf(w, "%-8s %-40s %14s %14s\n", "", "Total", utils.FormatMoney(r.TotalDebit), utils.FormatMoney(r.TotalCredit))
	if r.IsBalanced {
		good.Fprintln(w, "balanced")
	} else {
		bad.Fprintf(w, "OUT OF BALANCE by %s\n", utils.FormatMoney(r.TotalDebit.Sub(r.TotalCredit)))
	}
}

func printFundSummary(w io.Writer, r *domain.FundSummaryReport) {
	header.Fprintf(w, "%-16s %14s %14s %14s %14s\n", "Fund", "Income", "Expense", "Surplus", "Assets")
	for _, f := range r.Funds {
		surplus := good
		if f.Surplus.IsNegative() {
			surplus = bad
		}
		fmt.Fprintf(w, "%-16s %14s %14s ", f.FundType, utils.FormatMoney(f.Income), utils.FormatMoney(f.Expense))
		surplus.Fprintf(w, "%14s", utils.FormatMoney(f.Surplus))
		fmt.Fprintf(w, " %14s\n", utils.FormatMoney(f.Assets))
	}
}

func printMonthlySummary(w io.Writer, r *domain.MonthlyCategorySummary) {
	section := func(title string, rows []domain.CategoryTotal, total decimal.Decimal) {
		header.Fprintf(w, "%-32s %6s %14s\n", title, "Count", "Amount")
		for _, row := range rows {
			fmt.Fprintf(w, "%-32s %6d %14s\n", row.Name, row.Count, utils.FormatMoney(row.Total))
		}
		header.Fprintf(w, "%-32s %6s %14s\n", "Total", "", utils.FormatMoney(total))
	}
	header.Fprintf(w, "Summary for %04d-%02d\n", r.Year, r.Month)
	section("Income", r.Income, r.TotalIncome)
	section("Expenses", r.Expenses, r.TotalExpense)
	if r.Surplus.IsNegative() {
		bad.Fprintf(w, "Deficit %s\n", utils.FormatMoney(r.Surplus.Abs()))
		return
	}
	good.Fprintf(w, "Surplus %s\n", utils.FormatMoney(r.Surplus))
}
