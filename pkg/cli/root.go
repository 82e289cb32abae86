// Package cli wires the task store, deadline monitor, and calendar sync into
// a subcommand interface.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/mustdoapp/mustdo/pkg/config"
	"github.com/mustdoapp/mustdo/pkg/task"
)

var tasksFileFlag string

var rootCmd = &cobra.Command{
	Use:   "mustdo",
	Short: "Deadline-focused task list with alarms",
	Long: `MustDo keeps a flat list of tasks with optional HH:MM deadlines.
A task whose deadline passes is flagged once and raises an alarm; check
and watch drive that from cron or a foreground loop, and sync mirrors
deadline tasks to a Google Calendar.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&tasksFileFlag, "file", "f", "",
		"tasks file (default from config, falling back to tasks.json)")
}

// openStore loads config and the task list. The returned path is where
// mutations should be saved back to.
func openStore() (*task.Store, string, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, "", nil, err
	}

	path := cfg.TasksFile
	if tasksFileFlag != "" {
		path = tasksFileFlag
	}

	store := task.NewStore()
	if err := store.Load(path); err != nil {
		return nil, "", nil, err
	}
	return store, path, cfg, nil
}
