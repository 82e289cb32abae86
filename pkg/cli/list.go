package cli

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/mustdoapp/mustdo/pkg/task"
)

// The original palette: green for done, red for overdue, plain otherwise.
var (
	completedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	overdueStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks in insertion order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, _, err := openStore()
		if err != nil {
			return err
		}
		if store.Len() == 0 {
			fmt.Println("No tasks.")
			return nil
		}

		now := time.Now()
		for i, t := range store.Tasks() {
			fmt.Println(renderTask(i+1, t, now))
		}
		return nil
	},
}

func renderTask(n int, t *task.Task, now time.Time) string {
	line := fmt.Sprintf("%3d. %s", n, t.Description)
	if t.Deadline != nil {
		line += fmt.Sprintf(" (due %s)", t.Deadline.Format("15:04"))
	}
	switch {
	case t.Completed:
		return completedStyle.Render(line + " ✓")
	case t.Overdue(now):
		return overdueStyle.Render(line)
	default:
		return line
	}
}

func init() {
	rootCmd.AddCommand(listCmd)
}
