package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var rmCmd = &cobra.Command{
	Use:   "rm <n>",
	Short: "Delete a task by its list position",
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

		if n < 1 || n > store.Len() {
			return fmt.Errorf("no task at position %d", n)
		}
		removed := store.Tasks()[n-1].Description
		if err := store.Delete(n - 1); err != nil {
			return err
		}
		if err := store.Save(path); err != nil {
			return err
		}

		fmt.Printf("Deleted %q\n", removed)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(rmCmd)
}
