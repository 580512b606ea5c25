package httpserver

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	mappingHTTP "task-metadata-sync/internal/mapping/delivery/http"
	"task-metadata-sync/internal/middleware"
	"task-metadata-sync/internal/sync"
	syncHTTP "task-metadata-sync/internal/sync/delivery/http"
	"task-metadata-sync/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	mw          middleware.Middleware
	metrics     http.Handler
	readyCheck  func(ctx context.Context) error
	store       string
	startedAt   time.Time

	// Domain
	resolveHandler mappingHTTP.Handler
	syncHandler    syncHTTP.Handler

	// Memos webhook
	webhookHandler sync.Handler
	webhookGuard   gin.HandlerFunc
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	APIKey      string

	// Metrics serves /metrics when set.
	Metrics http.Handler
	// ReadyCheck backs /ready; nil means always ready.
	ReadyCheck func(ctx context.Context) error
	// Store names the document store driver reported by the health routes.
	Store string

	ResolveHandler mappingHTTP.Handler
	SyncHandler    syncHTTP.Handler

	WebhookHandler sync.Handler
	// WebhookGuard runs before the Memos webhook handler.
	WebhookGuard gin.HandlerFunc
}

// New creates a new HTTPServer instance with its routes mapped.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:              logger,
		gin:            gin.New(),
		port:           cfg.Port,
		mode:           cfg.Mode,
		environment:    cfg.Environment,
		mw:             middleware.New(logger, cfg.APIKey),
		metrics:        cfg.Metrics,
		readyCheck:     cfg.ReadyCheck,
		store:          cfg.Store,
		startedAt:      time.Now(),
		resolveHandler: cfg.ResolveHandler,
		syncHandler:    cfg.SyncHandler,
		webhookHandler: cfg.WebhookHandler,
		webhookGuard:   cfg.WebhookGuard,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	srv.mapHandlers()
	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	return nil
}

// Handler exposes the routed engine.
func (srv *HTTPServer) Handler() http.Handler {
	return srv.gin
}
