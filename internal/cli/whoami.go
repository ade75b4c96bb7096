// whoami.go implements the "hiremind whoami" command.
package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/prajaltale/HireMind/internal/auth"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in account",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := newEnv()
		if err != nil {
			return err
		}
		defer env.close()

		sess, err := env.requireSession()
		if err != nil {
			return err
		}

		fmt.Printf("%s <%s>\n", sess.DisplayName(), sess.User.Email)
		if info, ok := auth.Inspect(sess.Token); ok && !info.ExpiresAt.IsZero() {
			suffix := ""
			if auth.LooksExpired(sess.Token) {
				suffix = " (expired)"
			}
			fmt.Printf("Token expires %s%s\n", info.ExpiresAt.Local().Format(time.RFC1123), suffix)
		}
		return nil
	},
}
