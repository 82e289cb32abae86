package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mustdoapp/mustdo/pkg/auth"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Authenticate with Google Calendar",
	Long: `Auth discards any cached OAuth token and runs the web
authorization flow again. Requires credentials.json in the config
directory (a "Desktop app" OAuth client from the Google Cloud console).`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := auth.RemoveToken(); err != nil {
			return fmt.Errorf("could not remove existing token: %w", err)
		}
		if _, err := auth.Service(cmd.Context()); err != nil {
			return fmt.Errorf("authentication failed: %w", err)
		}
		fmt.Println("Authentication successful.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(authCmd)
}
