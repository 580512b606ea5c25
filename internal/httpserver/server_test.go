package httpserver_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-metadata-sync/internal/httpserver"
	"task-metadata-sync/pkg/log"
)

type recordingWebhook struct{ called bool }

func (r *recordingWebhook) HandleMemosWebhook(c *gin.Context) {
	r.called = true
	c.Status(http.StatusAccepted)
}

func TestNew_Validation(t *testing.T) {
	_, err := httpserver.New(log.NewNop(), httpserver.Config{Logger: log.NewNop(), Mode: gin.TestMode})
	assert.Error(t, err)

	_, err = httpserver.New(log.NewNop(), httpserver.Config{Port: 8080})
	assert.Error(t, err)
}

func TestSystemRoutes(t *testing.T) {
	reg := prometheus.NewRegistry()
	counter := prometheus.NewCounter(prometheus.CounterOpts{Name: "taskmeta_test_total", Help: "test"})
	reg.MustRegister(counter)
	counter.Inc()

	ready := errors.New("vault root missing")
	srv, err := httpserver.New(log.NewNop(), httpserver.Config{
		Port:       8080,
		Mode:       gin.TestMode,
		Metrics:    promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
		ReadyCheck: func(ctx context.Context) error { return ready },
		Store:      "vault",
	})
	require.NoError(t, err)

	get := func(path string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		return w
	}

	health := get("/health")
	assert.Equal(t, http.StatusOK, health.Code)
	assert.Contains(t, health.Body.String(), `"store":"vault"`)
	assert.Contains(t, health.Body.String(), `"status":"healthy"`)
	assert.Equal(t, http.StatusOK, get("/live").Code)
	assert.Equal(t, http.StatusServiceUnavailable, get("/ready").Code)

	w := get("/metrics")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "taskmeta_test_total 1"))

	ready = nil
	assert.Equal(t, http.StatusOK, get("/ready").Code)
}

func TestWebhookRoute_Guarded(t *testing.T) {
	hook := &recordingWebhook{}
	srv, err := httpserver.New(log.NewNop(), httpserver.Config{
		Port:           8080,
		Mode:           gin.TestMode,
		WebhookHandler: hook,
		WebhookGuard: func(c *gin.Context) {
			if c.Query("token") != "ok" {
				c.AbortWithStatus(http.StatusUnauthorized)
			}
		},
	})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/webhook/memos", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, hook.called)

	w = httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/webhook/memos?token=ok", nil))
	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.True(t, hook.called)
}
