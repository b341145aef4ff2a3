package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/Dosada05/tournament-hub/brackets"
	"github.com/Dosada05/tournament-hub/db"
	_ "github.com/Dosada05/tournament-hub/docs"
	"github.com/Dosada05/tournament-hub/handlers"
	"github.com/Dosada05/tournament-hub/repositories"
	"github.com/Dosada05/tournament-hub/routes"
	"github.com/Dosada05/tournament-hub/scheduler"
	"github.com/Dosada05/tournament-hub/services"
	"github.com/Dosada05/tournament-hub/storage"
)

const shutdownTimeout = 15 * time.Second

var runMigrations bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return serve(ctx)
	},
}

func init() {
	serveCmd.Flags().BoolVar(&runMigrations, "migrate", false, "apply pending migrations before serving")
}

func serve(ctx context.Context) error {
	logger.Info("configuration loaded", slog.Int("port", cfg.ServerPort))

	dbConn, closeDB, err := openDatabase()
	if err != nil {
		return err
	}
	defer closeDB()

	if runMigrations {
		if err := db.MigrateUp(dbConn, cfg.DatabaseDriver); err != nil {
			return err
		}
		logger.Info("migrations applied")
	}

	var uploader storage.FileUploader
	if cfg.StorageEnabled() {
		uploader, err = storage.NewCloudflareR2Uploader(ctx, storage.CloudflareR2UploaderConfig{
			AccountID:       cfg.R2AccountID,
			AccessKeyID:     cfg.R2AccessKeyID,
			SecretAccessKey: cfg.R2SecretAccessKey,
			BucketName:      cfg.R2BucketName,
			PublicBaseURL:   cfg.R2PublicBaseURL,
		})
		if err != nil {
			return fmt.Errorf("failed to initialize Cloudflare R2 uploader: %w", err)
		}
		logger.Info("Cloudflare R2 uploader initialized")
	} else {
		logger.Warn("R2 storage not configured, avatar uploads disabled")
	}

	hubCtx, stopHub := context.WithCancel(context.Background())
	defer stopHub()
	wsHub := brackets.NewHub(logger)
	go wsHub.Run(hubCtx)

	userRepo := repositories.NewPostgresUserRepository(dbConn)
	teamRepo := repositories.NewPostgresTeamRepository(dbConn)
	tournamentRepo := repositories.NewPostgresTournamentRepository(dbConn)
	matchRepo := repositories.NewPostgresMatchRepository(dbConn)

	authService := services.NewAuthService(userRepo)
	userService := services.NewUserService(userRepo, teamRepo, tournamentRepo, uploader, logger)
	teamService := services.NewTeamService(dbConn, teamRepo, tournamentRepo, uploader, logger)
	tournamentService := services.NewTournamentService(tournamentRepo, logger)
	matchService := services.NewMatchService(
		dbConn,
		matchRepo,
		teamRepo,
		tournamentRepo,
		brackets.NewRoundRobinGenerator(),
		wsHub,
		logger,
	)

	jobs, err := scheduler.New(logger)
	if err != nil {
		return fmt.Errorf("failed to create scheduler: %w", err)
	}
	if err := scheduler.RegisterStatusSyncJob(jobs, tournamentService, cfg.StatusSyncInterval); err != nil {
		return err
	}
	jobs.Start()
	defer func() {
		if err := jobs.Stop(); err != nil {
			logger.Error("failed to stop scheduler", slog.Any("error", err))
		}
	}()

	router := routes.SetupRoutes(routes.Handlers{
		Auth:       handlers.NewAuthHandler(authService, cfg.AuthSecret, logger),
		User:       handlers.NewUserHandler(userService, logger),
		Profile:    handlers.NewProfileHandler(userService, cfg.AuthURL, logger),
		Team:       handlers.NewTeamHandler(teamService, logger),
		Tournament: handlers.NewTournamentHandler(tournamentService, logger),
		Match:      handlers.NewMatchHandler(matchService, logger),
		WebSocket:  handlers.NewWebSocketHandler(wsHub, logger),
	}, routes.Options{
		JWTSecret:      cfg.AuthSecret,
		AllowedOrigins: cfg.CORSAllowedOrigins,
		Logger:         logger,
	})

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("starting server", slog.String("address", server.Addr))
		serverErrors <- server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		logger.Info("server stopped gracefully")
	case <-ctx.Done():
		logger.Info("shutdown signal received")

		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancelShutdown()

		logger.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))
		if err := server.Shutdown(shutdownCtx); err != nil {
			if closeErr := server.Close(); closeErr != nil {
				logger.Error("failed to force close server", slog.Any("error", closeErr))
			}
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		logger.Info("server shutdown complete")
	}

	logger.Info("application exited")
	return nil
}
