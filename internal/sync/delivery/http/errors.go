package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"task-metadata-sync/internal/document"
	"task-metadata-sync/internal/sync"
	"task-metadata-sync/pkg/frontmatter"
	"task-metadata-sync/pkg/response"
)

var errInvalidBody = errors.New("invalid request body")

// writeError translates use case errors into envelope responses.
func (h *handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, document.ErrDocumentNotFound):
		response.NotFound(c, document.ErrDocumentNotFound)
	case errors.Is(err, document.ErrInvalidDocumentID):
		response.Error(c, document.ErrInvalidDocumentID, nil)
	case errors.Is(err, frontmatter.ErrInvalidHeader):
		response.Error(c, err, nil)
	case errors.Is(err, sync.ErrAlreadyProcessing):
		response.Conflict(c, sync.ErrAlreadyProcessing)
	default:
		h.l.Errorf(c.Request.Context(), "sync delivery: %v", err)
		response.InternalError(c, err)
	}
}
