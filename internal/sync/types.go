package sync

import (
	"time"

	"task-metadata-sync/internal/checklist"
	"task-metadata-sync/internal/model"
)

const (
	DefaultDebounce     = 2 * time.Second
	DefaultCooldown     = 5 * time.Second
	DefaultRetryBackoff = 2 * time.Second
	DefaultMaxRetries   = 3
	notifyTimeout       = 2 * time.Minute
)

// Options tune a UseCase. Zero durations fall back to the defaults.
type Options struct {
	DryRun       bool
	Debounce     time.Duration
	Cooldown     time.Duration
	MaxRetries   int
	RetryBackoff time.Duration
}

func (o Options) withDefaults() Options {
	if o.Debounce <= 0 {
		o.Debounce = DefaultDebounce
	}
	if o.Cooldown <= 0 {
		o.Cooldown = DefaultCooldown
	}
	if o.MaxRetries <= 0 {
		o.MaxRetries = DefaultMaxRetries
	}
	if o.RetryBackoff <= 0 {
		o.RetryBackoff = DefaultRetryBackoff
	}
	return o
}

// ProcessOutput describes one document pass.
type ProcessOutput struct {
	ID      string          `json:"id"`
	Tasks   int             `json:"tasks"`
	Stats   checklist.Stats `json:"stats"`
	Updates []model.Update  `json:"updates"`
	Changed bool            `json:"changed"`
	Written bool            `json:"written"`
	Content string          `json:"-"`
}

// ProcessAllOutput collects per-document results. Failed maps document IDs
// to error messages.
type ProcessAllOutput struct {
	Results []ProcessOutput   `json:"results"`
	Failed  map[string]string `json:"failed,omitempty"`
}

// Written counts the documents whose content was written back.
func (o ProcessAllOutput) Written() int {
	n := 0
	for _, r := range o.Results {
		if r.Written {
			n++
		}
	}
	return n
}

// MemosWebhookPayload matches Memos API v1 webhook format.
type MemosWebhookPayload struct {
	ActivityType string `json:"activityType"` // e.g., "memos.memo.created"
	Memo         struct {
		Name string `json:"name"` // e.g., "memos/123"
		UID  string `json:"uid"`
	} `json:"memo"`
}

const (
	ActivityMemoCreated = "memos.memo.created"
	ActivityMemoUpdated = "memos.memo.updated"
	ActivityMemoDeleted = "memos.memo.deleted"
)
