package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"task-metadata-sync/internal/checklist"
	"task-metadata-sync/internal/model"
)

// tasksCmd prints the parsed task records of a file
var tasksCmd = &cobra.Command{
	Use:   "tasks <file>",
	Short: "Print the tasks parsed from a markdown file",
	Long: `Parse every task line of a markdown file and print the records as JSON,
together with completion statistics.

Examples:
  taskmeta tasks notes/project.md`,
	Args: cobra.ExactArgs(1),
	RunE: runTasks,
}

type tasksOutput struct {
	Tasks []model.Task    `json:"tasks"`
	Stats checklist.Stats `json:"stats"`
}

func runTasks(cmd *cobra.Command, args []string) error {
	raw, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read %s: %w", args[0], err)
	}

	svc := checklist.New()
	tasks := svc.ParseDocument(string(raw))
	if tasks == nil {
		tasks = []model.Task{}
	}
	return printJSON(cmd.OutOrStdout(), tasksOutput{Tasks: tasks, Stats: svc.Stats(tasks)})
}
