package main

import (
	"context"
	"labelchecker/internal/auth"
	"labelchecker/internal/config"
	"labelchecker/internal/rules"
	"labelchecker/pkg/domain"
	"labelchecker/pkg/logger"
	"labelchecker/pkg/storage"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// seedRulesCommand upserts regulatory rules, either the set embedded in the
// binary or every YAML file of --dir.
func seedRulesCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed-rules",
		Short: "Upserts regulatory rules into the database",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			dir, _ := cmd.Flags().GetString("dir")

			var (
				loaded []domain.RegulatoryRule
				err    error
			)
			if dir != "" {
				loaded, err = rules.Load(os.DirFS(dir))
			} else {
				loaded, err = rules.Defaults()
			}
			if err != nil {
				logger.Fatal(ctx, "could not load rules", zap.String("dir", dir), zap.Error(err))
			}

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			n, err := rules.New(strg).Seed(ctx, loaded)
			if err != nil {
				logger.Fatal(ctx, "could not seed rules", zap.Error(err))
			}
			logger.Info(ctx, "rules seeded", zap.Int("loaded", len(loaded)), zap.Int64("written", n))
		},
	}

	cmd.Flags().String("dir", "", "Directory of rule YAML files (defaults to the embedded set)")

	return cmd
}

// makeAdminCommand promotes an existing user to the ADMIN role.
func makeAdminCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "make-admin",
		Short: "Grants the admin role to the user with the given email",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			raw, _ := cmd.Flags().GetString("email")

			email, err := auth.NormalizeEmail(raw)
			if err != nil {
				logger.Fatal(ctx, "invalid email", zap.String("email", raw), zap.Error(err))
			}

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			user, err := strg.UserByEmail(ctx, email)
			if err != nil {
				logger.Fatal(ctx, "could not look up user", zap.Error(err))
			}
			if user == nil {
				logger.Fatal(ctx, "user not found", zap.String("email", email))
			}
			if user.Role == domain.RoleAdmin {
				logger.Info(ctx, "user is already an admin", zap.Stringer("userID", user.ID))

				return
			}

			role := domain.RoleAdmin
			if _, err := strg.UpdateUser(ctx, user.ID, storage.UserUpdates{Role: &role}); err != nil {
				logger.Fatal(ctx, "could not update user role", zap.Error(err))
			}
			logger.Info(ctx, "user promoted to admin", zap.Stringer("userID", user.ID), zap.String("email", email))
		},
	}

	cmd.Flags().String("email", "", "Email of the user to promote")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}
