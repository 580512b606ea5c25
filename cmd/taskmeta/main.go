// Package main implements the taskmeta CLI.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	// configPath points at config.yaml; empty means the default search paths.
	configPath string
	// vaultRoot overrides the store with a vault at this path.
	vaultRoot string
	// logLevel overrides logger.level.
	logLevel string

	version = "dev"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "taskmeta",
	Short: "Derive frontmatter properties from markdown task checklists",
	Long: `taskmeta reads the task lines of markdown notes and writes properties
such as progress, next due date or open task counts into their YAML header,
according to the mapping rules in config.yaml.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default: ./config/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&vaultRoot, "vault", "", "vault root; overrides store settings")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")

	rootCmd.AddCommand(tasksCmd)
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(syncCmd)
	rootCmd.AddCommand(watchCmd)
}
