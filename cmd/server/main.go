package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	swagger "github.com/gofiber/swagger"
	"github.com/localnerve/legalaid-api/internal/ai"
	"github.com/localnerve/legalaid-api/internal/config"
	"github.com/localnerve/legalaid-api/internal/database"
	"github.com/localnerve/legalaid-api/internal/handlers"
	"github.com/localnerve/legalaid-api/internal/policy"
	"github.com/localnerve/legalaid-api/internal/services"

	_ "github.com/localnerve/legalaid-api/docs/api" // Swagger docs
)

// @title Legal Aid API
// @version 1.0.0
// @description Legal information, community forum, lawyer case management and legal aid applications
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url https://github.com/localnerve/legalaid-api
// @contact.email info@localnerve.com

// @license.name AGPL-3.0
// @license.url https://www.gnu.org/licenses/agpl-3.0.html

// @host localhost:3000
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name cookie_session

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer database.Close(db)

	if cfg.AutoMigrate {
		if err := database.Migrate(db); err != nil {
			slog.Error("failed to run migrations", "error", err)
			os.Exit(1)
		}
		if _, err := database.SeedTemplates(context.Background(), db); err != nil {
			slog.Error("failed to seed document templates", "error", err)
			os.Exit(1)
		}
	}

	authz, err := policy.NewAuthorizer()
	if err != nil {
		slog.Error("failed to load access policy", "error", err)
		os.Exit(1)
	}

	sessions := services.NewAuthorizerSessions(cfg, cfg.AppURL)
	initCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := sessions.Init(initCtx); err != nil {
		// Retried on the first authenticated request.
		slog.Warn("authorizer not ready", "error", err)
	}
	cancel()

	var assistant *ai.Assistant
	if cfg.OpenAIAPIKey != "" {
		llm := ai.NewOpenAICompleter(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.OpenAIModel)
		assistant = ai.NewAssistant(llm, cfg.LLMTimeout)
	} else {
		slog.Warn("OPENAI_API_KEY not set, AI routes disabled")
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())

	prometheus := fiberprometheus.New("legalaid")
	prometheus.RegisterAt(app, "/metrics")
	app.Use(prometheus.Middleware)

	app.Get("/swagger/*", swagger.HandlerDefault)

	handlers.Register(app, handlers.Deps{
		Config:    cfg,
		DB:        db,
		Sessions:  sessions,
		Policy:    authz,
		Assistant: assistant,
	})

	app.Use(handlers.NotFound)

	// Graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		slog.Info("gracefully shutting down")
		_ = app.Shutdown()
	}()

	slog.Info("starting server", "port", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
