package sync

import (
	"task-metadata-sync/internal/document/repository"
	"task-metadata-sync/internal/mapping"
	pkgLog "task-metadata-sync/pkg/log"
)

type implUseCase struct {
	repo      repository.Repository
	resolver  mapping.Resolver
	rules     mapping.Rules
	opts      Options
	guard     *Guard
	debouncer *Debouncer
	metrics   *Metrics
	l         pkgLog.Logger
}

// New wires a sync use case. rules are cloned; metrics may be nil.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	resolver mapping.Resolver,
	rules mapping.Rules,
	metrics *Metrics,
	opts Options,
) UseCase {
	opts = opts.withDefaults()
	uc := &implUseCase{
		repo:     repo,
		resolver: resolver,
		rules:    rules.Clone(),
		opts:     opts,
		guard:    NewGuard(opts.Cooldown),
		metrics:  metrics,
		l:        l,
	}
	uc.debouncer = NewDebouncer(opts.Debounce, uc.processNotified)
	return uc
}

type WebhookHandler struct {
	uc UseCase
	l  pkgLog.Logger
}

func NewWebhookHandler(uc UseCase, l pkgLog.Logger) *WebhookHandler {
	return &WebhookHandler{
		uc: uc,
		l:  l,
	}
}
