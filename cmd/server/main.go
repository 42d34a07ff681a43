package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"

	"roboticsclub/config"
	"roboticsclub/internal/adapters/auth"
	"roboticsclub/internal/adapters/email"
	delivery "roboticsclub/internal/delivery/http"
	"roboticsclub/internal/delivery/http/controllers"
	"roboticsclub/internal/delivery/http/middleware"
	"roboticsclub/internal/repository/postgres"
	"roboticsclub/internal/services"
)

// @title Robotics Club API
// @version 1.0
// @description Backend for the university robotics club site: events, workshop registrations, membership applications, and the admin dashboard.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Exit(1)
	}
	logger := config.NewLogger()

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := db.PingContext(ctx); err != nil {
		cancel()
		logger.Error("ping database", "error", err)
		os.Exit(1)
	}
	if err := postgres.Migrate(ctx, db); err != nil {
		cancel()
		logger.Error("migrate", "error", err)
		os.Exit(1)
	}
	cancel()

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.Mailer.Provider,
		FromAddress: cfg.Mailer.FromAddress,
		FromName:    cfg.Mailer.FromName,
		SES: email.SESConfig{
			Region:          cfg.Mailer.SESRegion,
			AccessKeyID:     cfg.Mailer.SESAccessKeyID,
			SecretAccessKey: cfg.Mailer.SESSecretAccessKey,
		},
	})
	if err != nil {
		logger.Error("mailer", "error", err)
		os.Exit(1)
	}

	// Repositories
	adminRepo := postgres.NewAdminRepository(db)
	eventRepo := postgres.NewEventRepository(db)
	regRepo := postgres.NewWorkshopRegistrationRepository(db)
	appRepo := postgres.NewMemberApplicationRepository(db)
	statsRepo := postgres.NewStatsRepository(db)

	// Services
	emailService := services.NewEmailService(mailer, email.NewTemplateRenderer())
	authService := services.NewAuthService(
		adminRepo,
		auth.NewBcryptHasher(bcrypt.DefaultCost),
		auth.NewJWTIssuer(cfg.JWTSecret),
		time.Duration(cfg.JWTExpiryHours)*time.Hour,
	)
	eventService := services.NewEventService(eventRepo)
	workshopService := services.NewWorkshopService(eventRepo, regRepo, emailService)
	memberService := services.NewMemberService(appRepo)
	statsService := services.NewStatsService(statsRepo)

	// Controllers
	authController := controllers.NewAuthController(logger, authService)
	eventController := controllers.NewEventController(logger, eventService)
	workshopController := controllers.NewWorkshopController(logger, workshopService)
	memberController := controllers.NewMemberController(logger, memberService)
	statsController := controllers.NewStatsController(logger, statsService)

	mux := delivery.NewRouter(
		auth.NewJWTVerifier(cfg.JWTSecret),
		authController,
		eventController,
		workshopController,
		memberController,
		statsController,
	)
	handler := middleware.CORS(cfg.AllowedOrigins, middleware.LoggingMiddleware(logger, mux))

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "port", cfg.Port, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", "error", err)
	}
	logger.Info("server stopped")
}
