package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/simranbali-ace04/CampusHubX/internal/config"
	"github.com/simranbali-ace04/CampusHubX/internal/database"
	"github.com/simranbali-ace04/CampusHubX/internal/handler"
	"github.com/simranbali-ace04/CampusHubX/internal/metrics"
	"github.com/simranbali-ace04/CampusHubX/internal/notifier"
	"github.com/simranbali-ace04/CampusHubX/internal/repository"
	"github.com/simranbali-ace04/CampusHubX/internal/usecase"
	"github.com/simranbali-ace04/CampusHubX/shared/auth"
	"github.com/simranbali-ace04/CampusHubX/shared/mailer"
	"github.com/simranbali-ace04/CampusHubX/shared/validator"
)

func main() {
	logger := newLogger()
	cfg := config.New(&logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client := database.Connect(ctx, &logger, cfg)
	defer database.Disconnect(context.Background(), &logger, client)

	db := client.Database(cfg.MongoDatabase)

	collegeRepo := repository.NewCollegeMongoRepository(ctx, &logger, db)
	studentRepo := repository.NewStudentMongoRepository(ctx, &logger, db)
	achievementRepo := repository.NewAchievementMongoRepository(ctx, &logger, db)
	projectRepo := repository.NewProjectMongoRepository(ctx, &logger, db)
	recruiterRepo := repository.NewRecruiterMongoRepository(ctx, &logger, db)
	opportunityRepo := repository.NewOpportunityMongoRepository(ctx, &logger, db)
	applicationRepo := repository.NewApplicationMongoRepository(ctx, &logger, db)
	skillRepo := repository.NewSkillMongoRepository(db)

	applicationNotifier := notifier.NewEmailNotifier(mailer.NewMailer(&logger), studentRepo, &logger)

	resolver := usecase.NewOwnerResolver(collegeRepo, studentRepo, recruiterRepo)
	verificationUsecase := usecase.NewVerificationUsecase(studentRepo, achievementRepo, projectRepo, &logger)
	pendingUsecase := usecase.NewPendingQueueUsecase(studentRepo, achievementRepo, projectRepo, skillRepo)
	dashboardUsecase := usecase.NewDashboardUsecase(studentRepo, achievementRepo, projectRepo)
	collegeUsecase := usecase.NewCollegeUsecase(collegeRepo, studentRepo, achievementRepo, projectRepo, skillRepo)
	applicationUsecase := usecase.NewApplicationUsecase(
		applicationRepo,
		opportunityRepo,
		studentRepo,
		usecase.SkillOverlapScorer,
		applicationNotifier,
	)

	requestValidator, err := validator.New()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create request validator")
	}

	appMetrics := metrics.New()
	jwtAuth := auth.NewJWTAuthenticator(cfg.Token.Audience, cfg.Token.Issuer)

	collegeHandler := handler.NewCollegeHandler(
		resolver,
		collegeUsecase,
		dashboardUsecase,
		pendingUsecase,
		verificationUsecase,
		requestValidator,
		appMetrics,
		&logger,
	)
	applicationHandler := handler.NewApplicationHandler(
		resolver,
		applicationUsecase,
		requestValidator,
		appMetrics,
		&logger,
	)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      handler.NewRouter(cfg, &logger, jwtAuth, collegeHandler, applicationHandler),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().Str("addr", cfg.HTTPAddr).Msg("starting HTTP server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	<-ctx.Done()
	logger.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown failed")
	}
}

func newLogger() zerolog.Logger {
	if os.Getenv("ENVIRONMENT") == "development" {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	}

	return zerolog.New(os.Stderr).With().Timestamp().Logger()
}
