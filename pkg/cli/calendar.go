package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mustdoapp/mustdo/pkg/config"
)

var calendarCmd = &cobra.Command{
	Use:   "calendar <name>",
	Short: "Set the default Google Calendar for sync",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		cfg.Calendar = args[0]
		if err := config.Save(cfg); err != nil {
			return err
		}
		fmt.Printf("Default calendar set to: %s\n", cfg.Calendar)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(calendarCmd)
}
