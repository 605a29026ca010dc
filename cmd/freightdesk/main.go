package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/piresc/freightdesk/internal/pkg/config"
	"github.com/piresc/freightdesk/internal/pkg/logger"
	"github.com/piresc/freightdesk/internal/pkg/models"
	nrpkg "github.com/piresc/freightdesk/internal/pkg/newrelic"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const appName = "freightdesk"

var (
	configPath string

	configs   *models.Config
	nrApp     *newrelic.Application
	zapLogger *logger.ZapLogger
)

// rootCmd serves the API when run without a subcommand
var rootCmd = &cobra.Command{
	Use:   appName,
	Short: "freightdesk back-office API",
	Long: `freightdesk tracks drivers, freights, fuel and supply purchases,
receipt pools and driver settlements for a road-freight carrier.

Run without arguments to start the HTTP server.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configs = config.InitConfig(configPath)

		// Initialize New Relic and Zap logger
		nrApp = nrpkg.InitNewRelic(configs)
		if nrApp != nil {
			if err := nrApp.WaitForConnection(10 * time.Second); err != nil {
				log.Printf("Warning: New Relic connection timeout: %v", err)
			} else {
				log.Println("New Relic connection established")
			}
		}

		var err error
		zapLogger, err = logger.InitZapLoggerFromConfig(configs, nrApp)
		if err != nil {
			return fmt.Errorf("failed to create Zap logger: %w", err)
		}
		logger.SetGlobalLogger(zapLogger)

		zapLogger.Info("Starting application",
			zap.String("app", appName),
			zap.String("command", cmd.Name()),
			zap.String("version", configs.App.Version),
			zap.String("environment", configs.App.Environment),
		)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if zapLogger != nil {
			_ = zapLogger.Close()
		}
		if nrApp != nil {
			nrApp.Shutdown(10 * time.Second)
		}
	},
	RunE: runServe,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c",
		config.GetEnv("CONFIG_PATH", "config/freightdesk.env"), "Path to the .env file loaded when APP_ENV=local")

	createAdminCmd.Flags().StringVar(&adminName, "name", "", "Admin name (required)")
	createAdminCmd.Flags().StringVar(&adminEmail, "email", "", "Admin e-mail (required)")
	createAdminCmd.Flags().StringVar(&adminPhone, "phone", "", "Admin phone for password resets")
	createAdminCmd.Flags().StringVar(&adminPassword, "password", "", "Admin password (or set ADMIN_PASSWORD env)")
	createAdminCmd.MarkFlagRequired("name")
	createAdminCmd.MarkFlagRequired("email")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(createAdminCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
