package main

import (
	"context"
	"fmt"

	"github.com/SscSPs/fund_ledger/internal/core/domain"
	"github.com/SscSPs/fund_ledger/internal/dto"
	"github.com/spf13/cobra"
)

var tenantCmd = &cobra.Command{
	Use:   "tenant",
	Short: "Manage tenants",
}

var tenantCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Open new books; --as becomes their ADMIN",
	Example: `  # single tenancy mode: creates the default tenant
  ledgerctl tenant create --as admin@masjid.org --name "Masjid Al-Noor"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		description, _ := cmd.Flags().GetString("description")
		if asUser == "" {
			return fmt.Errorf("--as is required")
		}
		return withServices(cmd.Context(), func(ctx context.Context, e env) error {
			tenant, err := e.services.Tenant.CreateTenant(ctx, asUser, dto.CreateTenantRequest{Name: name, Description: description})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created tenant %s (%s)\n", tenant.TenantID, tenant.Name)
			return nil
		})
	},
}

var memberCmd = &cobra.Command{
	Use:   "member",
	Short: "Manage tenant memberships",
}

var memberAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Grant a user a role in the selected tenant",
	RunE: func(cmd *cobra.Command, args []string) error {
		user, _ := cmd.Flags().GetString("user")
		role, _ := cmd.Flags().GetString("role")
		return withServices(cmd.Context(), func(ctx context.Context, e env) error {
			actor, err := e.actor(ctx)
			if err != nil {
				return err
			}
			member, err := e.services.Tenant.AddMember(ctx, actor, dto.AddMemberRequest{UserID: user, Role: domain.Role(role)})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s is now %s of %s\n", member.UserID, member.Role, member.TenantID)
			return nil
		})
	},
}

var memberListCmd = &cobra.Command{
	Use:   "list",
	Short: "List members of the selected tenant",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withServices(cmd.Context(), func(ctx context.Context, e env) error {
			actor, err := e.actor(ctx)
			if err != nil {
				return err
			}
			members, err := e.services.Tenant.ListMembers(ctx, actor)
			if err != nil {
				return err
			}
			for _, m := range members {
				fmt.Fprintf(cmd.OutOrStdout(), "%-30s %-11s %s\n", m.UserID, m.Role, m.JoinedAt.Format("2006-01-02"))
			}
			return nil
		})
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create any missing accounts of the default chart",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withServices(cmd.Context(), func(ctx context.Context, e env) error {
			actor, err := e.actor(ctx)
			if err != nil {
				return err
			}
			n, err := e.services.Account.SeedDefaultChart(ctx, actor)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d accounts\n", n)
			return nil
		})
	},
}

func init() {
	tenantCreateCmd.Flags().String("name", "", "display name of the books")
	tenantCreateCmd.Flags().String("description", "", "optional description")
	_ = tenantCreateCmd.MarkFlagRequired("name")
	tenantCmd.AddCommand(tenantCreateCmd)

	memberAddCmd.Flags().String("user", "", "user ID to add")
	memberAddCmd.Flags().String("role", string(domain.RoleAccountant), "ADMIN, TREASURER, ACCOUNTANT or AUDITOR")
	_ = memberAddCmd.MarkFlagRequired("user")
	memberCmd.AddCommand(memberAddCmd, memberListCmd)

	rootCmd.AddCommand(tenantCmd, memberCmd, seedCmd)
}
