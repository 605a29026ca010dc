package main

import (
	"fmt"
	"os"

	"github.com/piresc/freightdesk/internal/pkg/database"
	"github.com/piresc/freightdesk/internal/pkg/models"
	accountsrepo "github.com/piresc/freightdesk/services/accounts/repository"
	accountsuc "github.com/piresc/freightdesk/services/accounts/usecase"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	adminName     string
	adminEmail    string
	adminPhone    string
	adminPassword string
)

// migrateCmd applies the embedded schema and exits
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		postgresClient, err := database.NewPostgresClient(configs.Database)
		if err != nil {
			return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
		}
		defer postgresClient.Close()

		if err := postgresClient.Migrate(cmd.Context()); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
		zapLogger.Info("Schema applied")
		return nil
	},
}

// createAdminCmd registers a back-office admin. Admin accounts are otherwise
// created through /admin/admins, which needs an existing admin token.
var createAdminCmd = &cobra.Command{
	Use:   "create-admin",
	Short: "Create an admin account",
	Long: `Create an admin account directly in the database.

The password is read from --password or, when omitted, from ADMIN_PASSWORD.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		password := adminPassword
		if password == "" {
			password = os.Getenv("ADMIN_PASSWORD")
		}

		postgresClient, err := database.NewPostgresClient(configs.Database)
		if err != nil {
			return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
		}
		defer postgresClient.Close()

		accountUC := accountsuc.NewAccountUC(accountsrepo.NewAccountRepo(postgresClient.GetDB()), configs)
		admin, err := accountUC.CreateAdmin(cmd.Context(), &models.AdminRequest{
			Name:     adminName,
			Email:    adminEmail,
			Phone:    adminPhone,
			Password: password,
		})
		if err != nil {
			return err
		}

		zapLogger.Info("Admin account ready",
			zap.Int64("admin_id", admin.ID),
			zap.String("email", admin.Email))
		return nil
	},
}
