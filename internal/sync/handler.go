package sync

import (
	"github.com/gin-gonic/gin"

	"task-metadata-sync/internal/document/repository/memos"
	pkgResponse "task-metadata-sync/pkg/response"
)

// HandleMemosWebhook schedules a pass for created or updated memos and
// acknowledges immediately.
func (h *WebhookHandler) HandleMemosWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	var payload MemosWebhookPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.l.Errorf(ctx, "webhook: failed to parse payload: %v", err)
		pkgResponse.Error(c, ErrInvalidPayload, nil)
		return
	}

	memoID := payload.memoID()
	if memoID == "" {
		h.l.Warnf(ctx, "webhook: %s without memo id", payload.ActivityType)
		pkgResponse.Error(c, ErrInvalidPayload, nil)
		return
	}

	h.l.Infof(ctx, "webhook: received %s for memo %s", payload.ActivityType, memoID)

	switch payload.ActivityType {
	case ActivityMemoCreated, ActivityMemoUpdated:
		h.uc.Notify(memoID)
		pkgResponse.OK(c, gin.H{"status": "accepted"})
	default:
		pkgResponse.OK(c, gin.H{"status": "ignored"})
	}
}

func (p MemosWebhookPayload) memoID() string {
	return memos.Memo{UID: p.Memo.UID, Name: p.Memo.Name}.ID()
}
