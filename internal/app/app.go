// Package app wires configuration into the components both binaries share.
package app

import (
	"context"
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"

	"task-metadata-sync/config"
	"task-metadata-sync/internal/checklist"
	"task-metadata-sync/internal/document/repository"
	"task-metadata-sync/internal/document/repository/memos"
	"task-metadata-sync/internal/document/repository/vault"
	"task-metadata-sync/internal/mapping"
	"task-metadata-sync/internal/sync"
	"task-metadata-sync/pkg/datemath"
	"task-metadata-sync/pkg/log"
)

// Components are the wired domain services.
type Components struct {
	Repository repository.Repository
	Resolver   mapping.Resolver
	Rules      mapping.Rules
	Metrics    *sync.Metrics
	UseCase    sync.UseCase
}

// New builds every component from cfg. Metrics are registered on reg when
// it is not nil.
func New(cfg *config.Config, l log.Logger, reg prometheus.Registerer) (*Components, error) {
	repo, err := NewRepository(cfg, l)
	if err != nil {
		return nil, err
	}

	resolver, err := NewResolver(cfg, l)
	if err != nil {
		return nil, err
	}

	rules := cfg.Rules.Mapping()
	metrics := sync.NewMetrics(reg)
	uc := sync.New(l, repo, resolver, rules, metrics, sync.Options{
		DryRun:   cfg.Sync.DryRun,
		Debounce: cfg.Sync.Debounce,
		Cooldown: cfg.Sync.Cooldown,
	})

	return &Components{
		Repository: repo,
		Resolver:   resolver,
		Rules:      rules,
		Metrics:    metrics,
		UseCase:    uc,
	}, nil
}

func NewResolver(cfg *config.Config, l log.Logger) (mapping.Resolver, error) {
	dates, err := datemath.NewParser(cfg.Rules.Timezone)
	if err != nil {
		return nil, fmt.Errorf("date parser: %w", err)
	}
	return mapping.New(l, checklist.New(), dates, nil), nil
}

func NewRepository(cfg *config.Config, l log.Logger) (repository.Repository, error) {
	switch cfg.Store.Driver {
	case config.StoreDriverVault:
		return vault.New(cfg.Store.Vault.Root, l), nil
	case config.StoreDriverMemos:
		client := memos.NewClient(cfg.Store.Memos.URL, cfg.Store.Memos.AccessToken)
		return memos.New(client, cfg.Store.Memos.PageSize, l), nil
	}
	return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
}

// ReadyCheck reports whether the configured store can be reached.
func ReadyCheck(cfg *config.Config) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		if cfg.Store.Driver != config.StoreDriverVault {
			return nil
		}
		info, err := os.Stat(cfg.Store.Vault.Root)
		if err != nil {
			return err
		}
		if !info.IsDir() {
			return fmt.Errorf("%s is not a directory", cfg.Store.Vault.Root)
		}
		return nil
	}
}
