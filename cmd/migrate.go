package cmd

import (
	"fmt"

	"finledger/core/config"
	"finledger/core/database"
	"finledger/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// migrateCmd creates or updates the database schema.
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		defer logg.Sync()

		db, err := database.Connect(cfg.Database)
		if err != nil {
			return fmt.Errorf("database connection required: %w", err)
		}

		models := schemaModels()
		if err := database.Migrate(db, models...); err != nil {
			return err
		}
		logg.Info("Schema migrated", zap.String("driver", cfg.Database.Driver), zap.Int("models", len(models)))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(migrateCmd)
}
