package main

import (
	"context"
	"fmt"
	"labelchecker/internal/auth"
	"labelchecker/internal/config"
	"labelchecker/pkg/domain"
	"labelchecker/pkg/logger"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// JWTCommand constructs the 'jwt' subcommand that issues a session token for a
// user ID. Handy for calling the API from scripts without logging in.
func JWTCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jwt",
		Short: "Generates JWT token for given user ID",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			subject, _ := cmd.Flags().GetString("subject")
			ttl, _ := cmd.Flags().GetDuration("ttl")

			var userID domain.UserID
			if err := userID.UnmarshalText([]byte(subject)); err != nil {
				logger.Fatal(ctx, "subject is not a user id", zap.String("subject", subject), zap.Error(err))
			}

			tokens, err := auth.NewTokens(cfg.JWT.PublicKey, cfg.JWT.PrivateKey, cfg.JWT.TTL, cfg.JWT.Issuer)
			if err != nil {
				logger.Fatal(ctx, "could not load jwt keys", zap.Error(err))
			}
			signed, _, err := tokens.Issue(userID.String(), time.Now(), ttl)
			if err != nil {
				logger.Fatal(ctx, "could not sign JWT", zap.Error(err))
			}

			fmt.Println(signed) //nolint: forbidigo
		},
	}

	cmd.Flags().String("subject", "", "User ID the token is issued for")
	cmd.Flags().Duration("ttl", 24*time.Hour, "Token TTL (e.g., 30s, 15m, 1h)")
	_ = cmd.MarkFlagRequired("subject")

	return cmd
}
