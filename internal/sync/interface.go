package sync

import (
	"context"

	"github.com/gin-gonic/gin"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// ProcessDocument resolves one document and writes its header when it changed
	ProcessDocument(ctx context.Context, id string) (ProcessOutput, error)

	// ProcessAll runs ProcessDocument over every document in the repository
	ProcessAll(ctx context.Context) (ProcessAllOutput, error)

	// Notify schedules a debounced pass for a document that changed outside of us
	Notify(id string)

	// Close cancels pending notifications
	Close()
}

// Handler defines the interface for the webhook sync handler.
type Handler interface {
	// HandleMemosWebhook processes incoming webhook payloads from Memos.
	HandleMemosWebhook(c *gin.Context)
}
