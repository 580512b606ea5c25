package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	mappingHTTP "task-metadata-sync/internal/mapping/delivery/http"
	"task-metadata-sync/internal/model"
	syncHTTP "task-metadata-sync/internal/sync/delivery/http"
)

func (srv *HTTPServer) mapHandlers() {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
}

func (srv *HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery(), srv.mw.RequestID(), srv.mw.Logger())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "HTTP mode: production")
	} else {
		srv.l.Infof(ctx, "HTTP mode: %s", srv.environment)
	}
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheckHandler)
	srv.gin.GET("/live", srv.liveCheck)

	if srv.metrics != nil {
		srv.gin.GET("/metrics", gin.WrapH(srv.metrics))
	}

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes.
func (srv *HTTPServer) registerDomainRoutes() {
	ctx := context.Background()
	api := srv.gin.Group("/api/v1", srv.mw.Auth())

	if srv.resolveHandler != nil {
		mappingHTTP.RegisterRoutes(api, srv.resolveHandler)
		srv.l.Infof(ctx, "Resolve route registered at POST /api/v1/resolve")
	}

	if srv.syncHandler != nil {
		syncHTTP.RegisterRoutes(api, srv.syncHandler)
		srv.l.Infof(ctx, "Document sync routes registered under /api/v1/documents")
	} else {
		srv.l.Infof(ctx, "Sync handler not configured, skipping document routes")
	}

	if srv.webhookHandler != nil {
		handlers := []gin.HandlerFunc{}
		if srv.webhookGuard != nil {
			handlers = append(handlers, srv.webhookGuard)
		}
		handlers = append(handlers, srv.webhookHandler.HandleMemosWebhook)
		srv.gin.POST("/webhook/memos", handlers...)
		srv.l.Infof(ctx, "Memos webhook route registered at POST /webhook/memos")
	} else {
		srv.l.Infof(ctx, "Webhook handler not configured, skipping Memos webhook route")
	}
}
