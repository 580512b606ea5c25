package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"task-metadata-sync/internal/app"
	"task-metadata-sync/internal/sync"
)

var syncDryRun bool

// syncCmd writes derived properties into documents
var syncCmd = &cobra.Command{
	Use:   "sync [id...]",
	Short: "Write derived frontmatter into documents",
	Long: `Resolve and write frontmatter for the given document IDs, or for every
document in the store when none are given. IDs are paths relative to the
vault root, or memo uids for the memos store.

Examples:
  taskmeta sync --vault ~/notes
  taskmeta sync --dry-run projects/launch.md`,
	RunE: runSync,
}

func init() {
	syncCmd.Flags().BoolVar(&syncDryRun, "dry-run", false, "resolve and report without writing")
}

func runSync(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if syncDryRun {
		cfg.Sync.DryRun = true
	}
	l := newLogger(cfg)

	components, err := app.New(cfg, l, nil)
	if err != nil {
		return err
	}
	defer components.UseCase.Close()

	ctx := cmd.Context()
	if len(args) == 0 {
		out, err := components.UseCase.ProcessAll(ctx)
		if err != nil {
			return err
		}
		if err := printJSON(cmd.OutOrStdout(), out); err != nil {
			return err
		}
		if len(out.Failed) > 0 {
			return fmt.Errorf("%d documents failed", len(out.Failed))
		}
		return nil
	}

	results := make([]sync.ProcessOutput, 0, len(args))
	var failed int
	for _, id := range args {
		out, err := components.UseCase.ProcessDocument(ctx, id)
		if err != nil {
			l.Errorf(ctx, "sync %s: %v", id, err)
			failed++
			continue
		}
		results = append(results, out)
	}
	if err := printJSON(cmd.OutOrStdout(), results); err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d documents failed", failed)
	}
	return nil
}
