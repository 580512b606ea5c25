package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"task-metadata-sync/config"
	_ "task-metadata-sync/docs" // Swagger docs
	"task-metadata-sync/internal/app"
	"task-metadata-sync/internal/httpserver"
	mappingHTTP "task-metadata-sync/internal/mapping/delivery/http"
	"task-metadata-sync/internal/sync"
	syncHTTP "task-metadata-sync/internal/sync/delivery/http"
	"task-metadata-sync/internal/webhook"
	"task-metadata-sync/pkg/log"
)

// @title       Task Metadata Sync API
// @description Derives frontmatter properties from the task checklists in markdown notes.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load(os.Getenv("TASKMETA_CONFIG"))
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
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

	logger.Info(ctx, "Starting Task Metadata Sync...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Store driver: %s", cfg.Store.Driver)

	// 3. Domain components
	components, err := app.New(cfg, logger, prometheus.DefaultRegisterer)
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize components: %v", err)
		os.Exit(1)
	}
	defer components.UseCase.Close()

	// 4. Change sources
	if cfg.Store.Driver == config.StoreDriverVault && cfg.Sync.Watch {
		watcher, err := sync.NewWatcher(cfg.Store.Vault.Root, components.UseCase.Notify, logger)
		if err != nil {
			logger.Errorf(ctx, "Failed to start vault watcher: %v", err)
			os.Exit(1)
		}
		go func() {
			if err := watcher.Run(ctx); err != nil {
				logger.Errorf(ctx, "Vault watcher stopped: %v", err)
			}
		}()
		logger.Infof(ctx, "Watching vault %s", cfg.Store.Vault.Root)
	}

	srvCfg := httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		APIKey:         cfg.HTTPServer.APIKey,
		Metrics:        promhttp.Handler(),
		ReadyCheck:     app.ReadyCheck(cfg),
		Store:          cfg.Store.Driver,
		ResolveHandler: mappingHTTP.New(logger, components.Resolver, components.Rules),
		SyncHandler:    syncHTTP.New(logger, components.UseCase),
	}

	if cfg.Store.Driver == config.StoreDriverMemos && cfg.Sync.Webhook.Enabled {
		security := webhook.NewSecurityValidator(webhook.SecurityConfig{
			Secret:          cfg.Sync.Webhook.Secret,
			AllowedIPs:      cfg.Sync.Webhook.AllowedIPs,
			RateLimitPerMin: cfg.Sync.Webhook.RateLimitPerMin,
		})
		srvCfg.WebhookHandler = sync.NewWebhookHandler(components.UseCase, logger)
		srvCfg.WebhookGuard = security.Guard("memos", logger)
		if cfg.Sync.Webhook.Secret == "" {
			logger.Warn(ctx, "Memos webhook enabled without a secret")
		}
	}

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, srvCfg)
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize HTTP server: %v", err)
		os.Exit(1)
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Errorf(ctx, "Failed to run server: %v", err)
		os.Exit(1)
	}

	logger.Info(ctx, "Server stopped gracefully")
}
