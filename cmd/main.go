package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	_ "github.com/lib/pq"

	"github.com/praiaclube/beachtennis-system/config"
	"github.com/praiaclube/beachtennis-system/db"
	"github.com/praiaclube/beachtennis-system/handlers"
	"github.com/praiaclube/beachtennis-system/live"
	"github.com/praiaclube/beachtennis-system/repositories"
	"github.com/praiaclube/beachtennis-system/routes"
	"github.com/praiaclube/beachtennis-system/services"
	"github.com/praiaclube/beachtennis-system/storage"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("configuration loaded", slog.Int("port", cfg.ServerPort))

	dbConn, err := db.Connect(cfg.DatabaseURL, 5*time.Second)
	if err != nil {
		logger.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := dbConn.Close(); err != nil {
			logger.Error("failed to close database connection", slog.Any("error", err))
		}
	}()
	logger.Info("database connection established")

	if err := db.Migrate(dbConn); err != nil {
		logger.Error("failed to run database migrations", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("database migrations applied")

	// Logo uploads are optional: without R2 credentials the sponsor module
	// still works, minus logos.
	var uploader storage.FileUploader
	if cfg.R2Configured() {
		uploader, err = storage.NewCloudflareR2Uploader(storage.CloudflareR2UploaderConfig{
			AccountID:       cfg.R2AccountID,
			AccessKeyID:     cfg.R2AccessKeyID,
			SecretAccessKey: cfg.R2SecretAccessKey,
			BucketName:      cfg.R2BucketName,
			PublicBaseURL:   cfg.R2PublicBaseURL,
		})
		if err != nil {
			logger.Error("failed to initialize object storage", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("object storage initialized", slog.String("bucket", cfg.R2BucketName))
	} else {
		logger.Warn("object storage not configured, sponsor logo uploads disabled")
	}

	hub := live.NewHub(logger)
	go hub.Run()

	userRepo := repositories.NewPostgresUserRepository(dbConn)
	categoryRepo := repositories.NewPostgresCategoryRepository(dbConn)
	participantRepo := repositories.NewPostgresParticipantRepository(dbConn)
	pairRepo := repositories.NewPostgresPairRepository(dbConn)
	tournamentRepo := repositories.NewPostgresTournamentRepository(dbConn)
	matchRepo := repositories.NewPostgresMatchRepository(dbConn)
	quickRepo := repositories.NewPostgresQuickRepository(dbConn)
	sponsorRepo := repositories.NewPostgresSponsorRepository(dbConn)
	dashboardRepo := repositories.NewPostgresDashboardRepository(dbConn)

	authService := services.NewAuthService(userRepo)
	categoryService := services.NewCategoryService(categoryRepo)
	participantService := services.NewParticipantService(participantRepo)
	pairService := services.NewPairService(pairRepo, participantRepo)
	tournamentService := services.NewTournamentService(dbConn, tournamentRepo, pairRepo, participantRepo, matchRepo)
	matchService := services.NewMatchService(dbConn, matchRepo, tournamentRepo, hub, logger)
	quickService := services.NewQuickService(dbConn, quickRepo)
	sponsorService := services.NewSponsorService(sponsorRepo, uploader, logger)
	dashboardService := services.NewDashboardService(dashboardRepo)

	router := chi.NewRouter()
	routes.SetupRoutes(router, routes.Deps{
		Auth:           handlers.NewAuthHandler(authService, cfg.JWTSecretKey),
		Category:       handlers.NewCategoryHandler(categoryService),
		Participant:    handlers.NewParticipantHandler(participantService),
		Pair:           handlers.NewPairHandler(pairService, participantService),
		Tournament:     handlers.NewTournamentHandler(tournamentService),
		Match:          handlers.NewMatchHandler(matchService),
		Quick:          handlers.NewQuickHandler(quickService),
		Sponsor:        handlers.NewSponsorHandler(sponsorService),
		Dashboard:      handlers.NewDashboardHandler(dashboardService),
		WebSocket:      handlers.NewWebSocketHandler(hub),
		JWTSecret:      cfg.JWTSecretKey,
		AllowedOrigins: cfg.AllowedOrigins,
	})
	logger.Info("routes configured")

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

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("server stopped gracefully")
	case sig := <-quit:
		logger.Info("shutdown signal received", slog.String("signal", sig.String()))

		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancelShutdown()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", slog.Any("error", err))
			if closeErr := server.Close(); closeErr != nil {
				logger.Error("failed to force close server", slog.Any("error", closeErr))
			}
			os.Exit(1)
		}
		logger.Info("server shutdown complete")
	}
}
