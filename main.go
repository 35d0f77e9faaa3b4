package main

import (
	"context"
	"database/sql"
	"log"

	"tempmail/internal/config"
	"tempmail/internal/handler"
	"tempmail/internal/logger"
	"tempmail/internal/provider"
	"tempmail/internal/provider/gmail"
	"tempmail/internal/provider/maildrop"
	"tempmail/internal/repository"
	"tempmail/internal/repository/memory"
	"tempmail/internal/repository/postgres"
	"tempmail/internal/resend"
	"tempmail/internal/router"
	"tempmail/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	_ "github.com/lib/pq"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.Fatal("Config validation failed:", err)
	}

	// Initialize logger
	appLogger := logger.New()

	// Initialize repository (postgres or in-memory based on DATABASE_URL)
	var mailboxRepo repository.MailboxRepository

	if cfg.DatabaseURL != "" {
		db, err := sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			log.Fatal("Failed to connect to database:", err)
		}
		defer db.Close()

		if err := postgres.InitializeDatabase(db); err != nil {
			log.Fatal("Failed to initialize database:", err)
		}
		mailboxRepo = postgres.NewPostgresMailboxRepository(db)

		appLogger.Info("Using PostgreSQL mailbox repository")
	} else {
		mailboxRepo = memory.NewInMemoryMailboxRepository()

		appLogger.Info("Using in-memory mailbox repository")
	}

	// Provider adapters. Maildrop needs no credentials; Gmail is optional
	// and only wired when OAuth material is configured.
	maildropAdapter := maildrop.NewClient(cfg.MaildropAPIURL, appLogger)

	var gmailAdapter provider.Adapter
	if cfg.GmailConfigured() {
		client, err := gmail.NewClient(context.Background(), gmail.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RefreshToken: cfg.GmailRefreshToken,
			BatchSize:    cfg.GmailBatchSize,
			BatchPause:   cfg.GmailBatchPause,
		}, appLogger)
		if err != nil {
			log.Fatal("Failed to create Gmail client:", err)
		}
		gmailAdapter = client
		appLogger.Info("Gmail provider enabled")
	} else {
		appLogger.Info("Gmail provider disabled, no OAuth credentials configured")
	}

	// Initialize services
	pollService := service.NewPollService(maildropAdapter, gmailAdapter, appLogger)
	mailboxService := service.NewMailboxService(mailboxRepo, appLogger)

	resendClient := resend.NewClient(cfg.ResendAPIURL, cfg.ResendAPIKey, appLogger)
	sendService := service.NewSendService(resendClient, cfg.ResendFrom, appLogger)

	// Initialize handlers
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	checkHandler := handler.NewCheckHandler(pollService, mailboxService, e.Logger)
	mailboxHandler := handler.NewMailboxHandler(mailboxService, e.Logger)
	sendHandler := handler.NewSendHandler(sendService, e.Logger)

	// Setup routes
	router.SetupRoutes(e, checkHandler, mailboxHandler, sendHandler)

	// Start server
	appLogger.Info("Starting server on port", cfg.Port)
	if err := e.Start(":" + cfg.Port); err != nil {
		appLogger.Error("Failed to start server:", err)
	}
}
