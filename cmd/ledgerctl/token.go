package main

import (
	"fmt"

	"github.com/SscSPs/fund_ledger/internal/platform/config"
	"github.com/SscSPs/fund_ledger/internal/utils"
	"github.com/spf13/cobra"
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Mint a bearer token for the API",
	Long: `Mint an HS256 bearer token signed with JWT_SECRET.

The token carries the user ID and, in multi tenancy mode, the tenant the
caller works in. Membership is checked on every request, not here.`,
	Example: `  ledgerctl token --as treasurer@masjid.org --tenant 6f1c... --expiry 24h`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if asUser == "" {
			return fmt.Errorf("--as is required")
		}
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		expiry, _ := cmd.Flags().GetDuration("expiry")
		if expiry <= 0 {
			expiry = cfg.JWTExpiryDuration
		}
		token, err := utils.GenerateJWT(asUser, tenantID, cfg.JWTSecret, expiry, cfg.JWTIssuer)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func init() {
	tokenCmd.Flags().Duration("expiry", 0, "token lifetime (default JWT_EXPIRY_DURATION)")
	rootCmd.AddCommand(tokenCmd)
}
