package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"task-metadata-sync/config"
	"task-metadata-sync/internal/app"
	"task-metadata-sync/internal/sync"
)

// watchCmd keeps a vault in sync until interrupted
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch a vault and sync documents as they change",
	Long: `Watch every markdown file below the vault root and update its frontmatter
shortly after it changes. Stops on SIGINT or SIGTERM.

Examples:
  taskmeta watch --vault ~/notes`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.Store.Driver != config.StoreDriverVault {
		return errors.New("watch needs the vault store; pass --vault")
	}
	l := newLogger(cfg)

	components, err := app.New(cfg, l, nil)
	if err != nil {
		return err
	}
	defer components.UseCase.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	watcher, err := sync.NewWatcher(cfg.Store.Vault.Root, components.UseCase.Notify, l)
	if err != nil {
		return err
	}
	l.Infof(ctx, "Watching vault %s", cfg.Store.Vault.Root)
	return watcher.Run(ctx)
}
