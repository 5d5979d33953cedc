package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"univio/internal/extraction"
	tgDelivery "univio/internal/extraction/delivery/telegram"
	"univio/internal/middleware"
	"univio/internal/priority"
	"univio/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	middleware  middleware.Config

	// Domains
	priorityUC   priority.UseCase
	extractionUC extraction.UseCase

	// Optional: only set when a bot token is configured
	telegramHandler tgDelivery.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	Middleware  middleware.Config

	PriorityUC   priority.UseCase
	ExtractionUC extraction.UseCase

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
		middleware:      cfg.Middleware,
		priorityUC:      cfg.PriorityUC,
		extractionUC:    cfg.ExtractionUC,
		telegramHandler: cfg.TelegramHandler,
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
	if srv.priorityUC == nil {
		return errors.New("priority use case is required")
	}
	if srv.extractionUC == nil {
		return errors.New("extraction use case is required")
	}
	return nil
}
