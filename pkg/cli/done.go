package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var doneCmd = &cobra.Command{
	Use:   "done <n>",
	Short: "Mark a task completed by its list position",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid task number %q", args[0])
		}

		store, path, _, err := openStore()
		if err != nil {
			return err
		}
		if err := store.Complete(n - 1); err != nil {
			return err
		}
		if err := store.Save(path); err != nil {
			return err
		}

		fmt.Printf("Completed %q\n", store.Tasks()[n-1].Description)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(doneCmd)
}
