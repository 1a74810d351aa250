package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	_ "time/tzdata" // triage.timezone must resolve in minimal containers

	"github.com/joho/godotenv"

	"emergency-triage/config"
	_ "emergency-triage/docs" // Swagger docs
	"emergency-triage/internal/chat/repository"
	"emergency-triage/internal/chat/repository/memory"
	tgDelivery "emergency-triage/internal/chat/delivery/telegram"
	chatRedis "emergency-triage/internal/chat/repository/redis"
	chatUC "emergency-triage/internal/chat/usecase"
	"emergency-triage/internal/httpserver"
	"emergency-triage/internal/knowledge"
	knowledgeUC "emergency-triage/internal/knowledge/usecase"
	"emergency-triage/internal/middleware"
	"emergency-triage/internal/router"
	"emergency-triage/internal/triage"
	triageUC "emergency-triage/internal/triage/usecase"
	"emergency-triage/pkg/datemath"
	"emergency-triage/pkg/log"
	pkgRedis "emergency-triage/pkg/redis"
	"emergency-triage/pkg/telegram"
)

// @title       Emergency Triage API
// @description Keyword triage of home and vehicle emergencies: danger override, trade routing, safety advice and cost estimates.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 0. Local .env (optional)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Println("Warning: could not load .env: ", err)
	}

	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Emergency Triage...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Engines
	clock, err := datemath.NewClock(cfg.Triage.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Triage.Timezone, err)
		clock, _ = datemath.NewClock("UTC")
	}

	kb := knowledge.NewDefault()

	cities := cfg.Triage.Cities
	if len(cities) == 0 {
		cities = router.DefaultCities
	}
	keywordRouter := router.New(router.Config{
		Tables:      router.DefaultTables(),
		Cities:      cities,
		RoutePrefix: cfg.Triage.RoutePrefix,
	}, kb)

	estimator := triage.NewEstimator(triage.DefaultCatalog(), clock)

	// 4. Session store
	var (
		sessionRepo repository.Repository
		readiness   func(context.Context) error
	)
	switch cfg.Session.Backend {
	case config.SessionBackendRedis:
		rdb, rErr := pkgRedis.Config{
			URL:          cfg.Redis.URL,
			ReadTimeout:  cfg.Redis.ReadTimeout,
			WriteTimeout: cfg.Redis.WriteTimeout,
			DialTimeout:  cfg.Redis.DialTimeout,
		}.New(ctx)
		if rErr != nil {
			logger.Error(ctx, "Failed to connect to Redis: ", rErr)
			return
		}
		defer rdb.Close()

		sessionRepo = chatRedis.New(rdb, cfg.Session.TTL, logger)
		readiness = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
		logger.Info(ctx, "✅ Redis session store initialized")
	default:
		sessionRepo = memory.New(cfg.Session.MaxSessions, cfg.Session.TTL)
		logger.Infof(ctx, "In-memory session store (max %d, ttl %s)", cfg.Session.MaxSessions, cfg.Session.TTL)
	}

	chatUseCase := chatUC.New(sessionRepo, keywordRouter, logger)

	// 5. Telegram channel (optional)
	var telegramHandler tgDelivery.Handler
	if cfg.Telegram.BotToken != "" {
		bot := telegram.NewBot(cfg.Telegram.BotToken)
		telegramHandler = tgDelivery.New(logger, chatUseCase, bot, cfg.Telegram.SecretToken)

		if cfg.Telegram.WebhookURL != "" {
			if whErr := bot.SetWebhook(ctx, cfg.Telegram.WebhookURL, cfg.Telegram.SecretToken); whErr != nil {
				logger.Warnf(ctx, "Failed to set Telegram webhook: %v", whErr)
			} else {
				logger.Infof(ctx, "✅ Telegram webhook registered at %s", cfg.Telegram.WebhookURL)
			}
		}
	} else {
		logger.Info(ctx, "Telegram channel disabled: TELEGRAM_BOT_TOKEN is empty")
	}

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,
		Middleware: middleware.Config{
			RateLimitPerMin: cfg.RateLimit.PerMin,
			RateLimitBurst:  cfg.RateLimit.Burst,
		},
		ReadinessCheck:   readiness,
		MetricsEnabled:   cfg.Metrics.Enabled,
		MetricsPath:      cfg.Metrics.Path,
		ChatUseCase:      chatUseCase,
		TriageUseCase:    triageUC.New(estimator, logger),
		KnowledgeUseCase: knowledgeUC.New(kb, logger),
		TelegramHandler:  telegramHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
