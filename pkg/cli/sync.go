package cli

import (
	"log"
	"time"

	"github.com/spf13/cobra"

	"github.com/mustdoapp/mustdo/pkg/gcal"
	"github.com/mustdoapp/mustdo/pkg/index"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Mirror deadline tasks to the configured Google Calendar",
	Long: `Sync pushes every task that has a deadline to the configured
calendar as a 30-minute event, patching events that already exist and
removing events whose task was deleted. Run "mustdo auth" first.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, cfg, err := openStore()
		if err != nil {
			return err
		}

		idx, err := index.New()
		if err != nil {
			log.Printf("Warning: failed to load event index: %v", err)
		}

		client, err := gcal.New(cmd.Context(), cfg.Calendar, idx)
		if err != nil {
			return err
		}

		now := time.Now()
		present := make(map[string]bool)
		for _, t := range store.Tasks() {
			if t.Deadline == nil {
				continue
			}
			present[t.Description] = true
			if _, err := client.SyncTask(t, now); err != nil {
				log.Printf("Error syncing %q: %v", t.Description, err)
			}
		}

		if idx != nil {
			for _, key := range idx.Keys() {
				if present[key] {
					continue
				}
				if err := client.DeleteByKey(key); err != nil {
					log.Printf("Error removing event for %q: %v", key, err)
				}
			}
			return idx.Save()
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(syncCmd)
}
