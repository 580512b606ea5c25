package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"task-metadata-sync/internal/app"
	"task-metadata-sync/internal/model"
	"task-metadata-sync/pkg/frontmatter"
)

var resolvePreview bool

// resolveCmd prints the updates the configured rules produce for a file
var resolveCmd = &cobra.Command{
	Use:   "resolve <file>",
	Short: "Print the frontmatter updates for a markdown file without writing",
	Long: `Resolve the configured mapping rules against a markdown file and print the
resulting frontmatter updates. The file is never modified.

Examples:
  taskmeta resolve notes/project.md
  taskmeta resolve --preview notes/project.md`,
	Args: cobra.ExactArgs(1),
	RunE: runResolve,
}

func init() {
	resolveCmd.Flags().BoolVar(&resolvePreview, "preview", false, "print the merged document instead of the updates")
}

func runResolve(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	l := newLogger(cfg)

	raw, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read %s: %w", args[0], err)
	}

	resolver, err := app.NewResolver(cfg, l)
	if err != nil {
		return err
	}
	out := resolver.ResolveDocument(cmd.Context(), string(raw), cfg.Rules.Mapping())

	if !resolvePreview {
		updates := out.Updates
		if updates == nil {
			updates = []model.Update{}
		}
		return printJSON(cmd.OutOrStdout(), updates)
	}

	fields := make([]frontmatter.Field, 0, len(out.Updates))
	for _, u := range out.Updates {
		fields = append(fields, frontmatter.Field{Key: u.Key, Value: u.Value.Interface(), Overwrite: u.Overwrite})
	}
	merged, _, err := frontmatter.Merge(string(raw), fields)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), merged)
	return err
}
