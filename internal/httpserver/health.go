package httpserver

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"task-metadata-sync/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthVersion = "1.0.0"
	ServiceName   = "task-metadata-sync"
)

type healthResp struct {
	Status    string            `json:"status"`
	Version   string            `json:"version"`
	Service   string            `json:"service"`
	Store     string            `json:"store,omitempty"`
	StartedAt response.DateTime `json:"started_at"`
	Uptime    string            `json:"uptime"`
}

func (srv *HTTPServer) newHealthResp(status string) healthResp {
	return healthResp{
		Status:    status,
		Version:   HealthVersion,
		Service:   ServiceName,
		Store:     srv.store,
		StartedAt: response.DateTime(srv.startedAt),
		Uptime:    time.Since(srv.startedAt).Truncate(time.Second).String(),
	}
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} healthResp "API is healthy"
// @Router /health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, srv.newHealthResp("healthy"))
}

// readyCheckHandler reports whether the document store is reachable.
// @Summary Readiness Check
// @Description Check if the document store can serve reads
// @Tags Health
// @Produce json
// @Success 200 {object} healthResp "API is ready"
// @Failure 503 {object} response.Resp "Document store unavailable"
// @Router /ready [get]
func (srv *HTTPServer) readyCheckHandler(c *gin.Context) {
	if srv.readyCheck != nil {
		if err := srv.readyCheck(c.Request.Context()); err != nil {
			srv.l.Warnf(c.Request.Context(), "readiness check failed: %v", err)
			response.ErrorWithStatus(c, http.StatusServiceUnavailable, http.StatusServiceUnavailable, err)
			return
		}
	}
	response.OK(c, srv.newHealthResp("ready"))
}

// liveCheck
// @Summary Liveness Check
// @Tags Health
// @Produce json
// @Success 200 {object} healthResp "API is alive"
// @Router /live [get]
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, srv.newHealthResp("alive"))
}
