package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mustdoapp/mustdo/pkg/task"
)

var addAt string

var addCmd = &cobra.Command{
	Use:   "add <description> [HH:MM]",
	Short: "Add a task, optionally with a deadline",
	Long: `Add appends a task to the list. A trailing HH:MM token in the
description is taken as the deadline for today, rolling over to tomorrow if
that time has already passed. Use --at to pass the deadline explicitly and
keep time-like text in the description.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, path, _, err := openStore()
		if err != nil {
			return err
		}

		input := strings.Join(args, " ")
		description, deadlineText := input, addAt
		if addAt == "" {
			description, deadlineText = task.Split(input)
		}

		t, err := store.Add(description, deadlineText)
		if err != nil {
			return err
		}
		if err := store.Save(path); err != nil {
			return err
		}

		if t.Deadline != nil {
			fmt.Printf("Added %q (due %s)\n", t.Description, t.Deadline.Format("15:04"))
		} else {
			fmt.Printf("Added %q\n", t.Description)
		}
		return nil
	},
}

func init() {
	addCmd.Flags().StringVar(&addAt, "at", "", "deadline as HH:MM (disables trailing-token parsing)")
	rootCmd.AddCommand(addCmd)
}
