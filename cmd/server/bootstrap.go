package main

import (
	"github.com/robfig/cron/v3"

	"github.com/tasknest/tasknest/internal/config"
	"github.com/tasknest/tasknest/internal/handlers"
	"github.com/tasknest/tasknest/internal/metrics"
	"github.com/tasknest/tasknest/internal/models"
	"github.com/tasknest/tasknest/internal/services"
	"github.com/tasknest/tasknest/internal/store"
	"github.com/tasknest/tasknest/internal/utils"
	"github.com/tasknest/tasknest/pkg/logger"
)

// appServices holds all initialized services and handlers needed by the application.
type appServices struct {
	cfg         *config.Config
	metrics     *metrics.Collector
	sweeper     *cron.Cron
	authHandler *handlers.AuthHandler
	todoHandler *handlers.TodoHandler
	tagHandler  *handlers.TagHandler
}

// bootstrap initializes all application dependencies: database, stores, services, schedulers.
func bootstrap(cfg *config.Config) *appServices {
	utils.SetJWTSecret(cfg.JWT.Secret)

	if err := models.InitDB(&cfg.Database); err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}

	if err := models.AutoMigrate(); err != nil {
		logger.Fatalf("Failed to migrate database: %v", err)
	}

	db := models.GetDB()
	userStore := store.NewGormUserStore(db)
	sessionStore := store.NewGormSessionStore(db)
	mailer := services.NewEmailService(&cfg.SMTP)

	authService := services.NewAuthService(userStore, sessionStore, mailer, &cfg.Auth, &cfg.JWT)
	todoService := services.NewTodoService(db)
	tagService := services.NewTagService(db)

	sweeper := services.StartSessionSweeper(sessionStore)

	var collector *metrics.Collector
	if cfg.Metrics.Enabled {
		collector = metrics.NewCollector()
	}

	return &appServices{
		cfg:         cfg,
		metrics:     collector,
		sweeper:     sweeper,
		authHandler: handlers.NewAuthHandler(authService),
		todoHandler: handlers.NewTodoHandler(todoService),
		tagHandler:  handlers.NewTagHandler(tagService),
	}
}
