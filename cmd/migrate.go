package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/Dosada05/tournament-hub/db"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply or revert the database schema",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply every pending migration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dbConn, closeDB, err := openDatabase()
		if err != nil {
			return err
		}
		defer closeDB()

		if err := db.MigrateUp(dbConn, cfg.DatabaseDriver); err != nil {
			return err
		}
		logger.Info("migrations applied", slog.String("driver", cfg.DatabaseDriver))
		return nil
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Revert every applied migration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dbConn, closeDB, err := openDatabase()
		if err != nil {
			return err
		}
		defer closeDB()

		if err := db.MigrateDown(dbConn, cfg.DatabaseDriver); err != nil {
			return fmt.Errorf("migrate down: %w", err)
		}
		logger.Info("migrations reverted", slog.String("driver", cfg.DatabaseDriver))
		return nil
	},
}

func init() {
	migrateCmd.AddCommand(migrateUpCmd, migrateDownCmd)
}
