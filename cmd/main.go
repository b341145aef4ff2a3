// @title Tournament Hub API
// @version 1.0
// @description Tournaments, teams, match results and user profiles.
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Dosada05/tournament-hub/config"
	"github.com/Dosada05/tournament-hub/db"
)

const dbConnectTimeout = 5 * time.Second

var (
	cfg    *config.Config
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:           "tournament-hub",
	Short:         "Tournament management API",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		logger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
		slog.SetDefault(logger)
		return nil
	},
}

func main() {
	rootCmd.AddCommand(serveCmd, migrateCmd)
	if err := rootCmd.Execute(); err != nil {
		if logger != nil {
			logger.Error("command failed", slog.Any("error", err))
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func openDatabase() (*sql.DB, func(), error) {
	dbConn, err := db.Connect(cfg.DatabaseDriver, cfg.DatabaseURL, dbConnectTimeout)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	logger.Info("database connection established", slog.String("driver", cfg.DatabaseDriver))

	closeFn := func() {
		if err := dbConn.Close(); err != nil {
			logger.Error("failed to close database connection", slog.Any("error", err))
		} else {
			logger.Info("database connection closed")
		}
	}
	return dbConn, closeFn, nil
}
