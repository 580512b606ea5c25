package http

import (
	"github.com/gin-gonic/gin"

	"task-metadata-sync/internal/sync"
	"task-metadata-sync/pkg/log"
)

// Handler is the public interface for the document sync HTTP delivery layer.
type Handler interface {
	SyncDocument(c *gin.Context)
	SyncAll(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc sync.UseCase
}

// New creates a new HTTP handler for document sync.
func New(l log.Logger, uc sync.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
