package cli

import (
	"fmt"
	"log"
	"time"

	"github.com/spf13/cobra"

	"github.com/mustdoapp/mustdo/pkg/alert"
	"github.com/mustdoapp/mustdo/pkg/monitor"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Flag newly overdue tasks and ring the alarm once",
	Long: `Check runs a single deadline pass: tasks whose deadline has passed
and that were not yet flagged are marked notified, printed, and saved. The
alarm rings once if anything became due. Suitable for a cron entry.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, path, cfg, err := openStore()
		if err != nil {
			return err
		}

		due := monitor.New(store).Check(time.Now())
		if len(due) == 0 {
			return nil
		}

		for _, t := range due {
			fmt.Println(overdueStyle.Render(
				fmt.Sprintf("Due: %s (%s)", t.Description, t.Deadline.Format("15:04"))))
		}
		ringer := &alert.Ringer{Command: cfg.AlarmCommand}
		if err := ringer.Ring(); err != nil {
			log.Printf("Warning: %v", err)
		}
		return store.Save(path)
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
