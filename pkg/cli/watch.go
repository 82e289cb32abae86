package cli

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/mustdoapp/mustdo/pkg/alert"
	"github.com/mustdoapp/mustdo/pkg/monitor"
)

var watchInterval time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Check deadlines periodically until interrupted",
	Long: `Watch runs the deadline check on a fixed interval, ringing the
alarm and saving the list whenever tasks become due. The store is assumed
quiescent while watch runs; concurrent edits from another process are
overwritten on the next save.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, path, cfg, err := openStore()
		if err != nil {
			return err
		}

		mon := monitor.New(store)
		ringer := &alert.Ringer{Command: cfg.AlarmCommand}

		ticker := time.NewTicker(watchInterval)
		defer ticker.Stop()
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

		for {
			due := mon.Check(time.Now())
			if len(due) > 0 {
				for _, t := range due {
					fmt.Println(overdueStyle.Render(
						fmt.Sprintf("Due: %s (%s)", t.Description, t.Deadline.Format("15:04"))))
				}
				if err := ringer.Ring(); err != nil {
					log.Printf("Warning: %v", err)
				}
				if err := store.Save(path); err != nil {
					log.Printf("Warning: could not save tasks: %v", err)
				}
			}

			select {
			case <-ticker.C:
			case <-sig:
				return store.Save(path)
			}
		}
	},
}

func init() {
	watchCmd.Flags().DurationVar(&watchInterval, "interval", time.Minute, "time between deadline checks")
	rootCmd.AddCommand(watchCmd)
}
