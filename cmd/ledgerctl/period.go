package main

import (
	"context"
	"fmt"

	"github.com/SscSPs/fund_ledger/internal/dto"
	"github.com/spf13/cobra"
)

var lockCmd = &cobra.Command{
	Use:   "lock",
	Short: "Close a calendar month to new postings",
	RunE: func(cmd *cobra.Command, args []string) error {
		year, _ := cmd.Flags().GetInt("year")
		month, _ := cmd.Flags().GetInt("month")
		remarks, _ := cmd.Flags().GetString("remarks")
		return withServices(cmd.Context(), func(ctx context.Context, e env) error {
			actor, err := e.actor(ctx)
			if err != nil {
				return err
			}
			lock, err := e.services.PeriodLock.LockPeriod(ctx, actor, dto.LockPeriodRequest{Year: year, Month: month, Remarks: remarks})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "locked %04d-%02d\n", lock.Year, lock.Month)
			return nil
		})
	},
}

var unlockCmd = &cobra.Command{
	Use:   "unlock",
	Short: "Reopen a locked month",
	RunE: func(cmd *cobra.Command, args []string) error {
		year, _ := cmd.Flags().GetInt("year")
		month, _ := cmd.Flags().GetInt("month")
		return withServices(cmd.Context(), func(ctx context.Context, e env) error {
			actor, err := e.actor(ctx)
			if err != nil {
				return err
			}
			if err := e.services.PeriodLock.UnlockPeriod(ctx, actor, year, month); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "unlocked %04d-%02d\n", year, month)
			return nil
		})
	},
}

func init() {
	for _, c := range []*cobra.Command{lockCmd, unlockCmd} {
		c.Flags().Int("year", 0, "calendar year")
		c.Flags().Int("month", 0, "calendar month, 1-12")
		_ = c.MarkFlagRequired("year")
		_ = c.MarkFlagRequired("month")
	}
	lockCmd.Flags().String("remarks", "", "why the period is closed")
	rootCmd.AddCommand(lockCmd, unlockCmd)
}
