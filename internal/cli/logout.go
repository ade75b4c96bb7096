// logout.go implements the "hiremind logout" command.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Discard the stored session",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := newEnv()
		if err != nil {
			return err
		}
		defer env.close()

		if err := env.store.Clear(); err != nil {
			return fmt.Errorf("clearing session: %w", err)
		}
		fmt.Println("Signed out.")
		return nil
	},
}
