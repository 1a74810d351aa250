package httpserver

import (
	"context"
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"emergency-triage/internal/chat"
	tgDelivery "emergency-triage/internal/chat/delivery/telegram"
	"emergency-triage/internal/knowledge"
	"emergency-triage/internal/middleware"
	"emergency-triage/internal/triage"
	"emergency-triage/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration

	// Middleware
	mw middleware.Middleware

	// ready is an optional dependency probe for /ready
	ready func(ctx context.Context) error

	// Metrics
	metricsEnabled bool
	metricsPath    string

	// Domains
	chatUC      chat.UseCase
	triageUC    triage.UseCase
	knowledgeUC knowledge.UseCase

	// Optional channels
	telegramHandler tgDelivery.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration

	Middleware middleware.Config

	// ReadinessCheck, if set, must succeed for /ready to report ready.
	ReadinessCheck func(ctx context.Context) error

	MetricsEnabled bool
	MetricsPath    string

	// Domains
	ChatUseCase      chat.UseCase
	TriageUseCase    triage.UseCase
	KnowledgeUseCase knowledge.UseCase

	// TelegramHandler is optional; nil skips the webhook route.
	TelegramHandler tgDelivery.Handler
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		shutdownTimeout: cfg.ShutdownTimeout,
		mw:              middleware.New(logger, cfg.Middleware),
		ready:           cfg.ReadinessCheck,
		metricsEnabled:  cfg.MetricsEnabled,
		metricsPath:     cfg.MetricsPath,
		chatUC:          cfg.ChatUseCase,
		triageUC:        cfg.TriageUseCase,
		knowledgeUC:     cfg.KnowledgeUseCase,
		telegramHandler: cfg.TelegramHandler,
	}

	if srv.shutdownTimeout <= 0 {
		srv.shutdownTimeout = 10 * time.Second
	}
	if srv.metricsPath == "" {
		srv.metricsPath = "/metrics"
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.chatUC == nil {
		return errors.New("chat usecase is required")
	}
	if srv.triageUC == nil {
		return errors.New("triage usecase is required")
	}
	if srv.knowledgeUC == nil {
		return errors.New("knowledge usecase is required")
	}
	return nil
}
