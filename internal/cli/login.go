// login.go implements the "hiremind login" command and its demo-SSO and
// registration variants.
package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/prajaltale/HireMind/internal/api"
	"github.com/prajaltale/HireMind/internal/session"
)

var (
	loginEmail    string
	loginPassword string
	loginName     string
	loginRegister bool
	loginGoogle   bool
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in and store the session locally",
	Long: `Authenticate against the HireMind backend and store the session
token under the state directory for later commands.

With --register a new account is created first. With --google the demo
SSO flow is used: only an email is needed and the display name is
derived from it.`,
	RunE: runLogin,
}

func runLogin(cmd *cobra.Command, args []string) error {
	env, err := newEnv()
	if err != nil {
		return err
	}
	defer env.close()

	if loginEmail == "" {
		return fmt.Errorf("--email is required")
	}

	var resp *api.AuthResponse
	switch {
	case loginGoogle:
		name := loginEmail
		if at := strings.Index(loginEmail, "@"); at > 0 {
			name = loginEmail[:at]
		}
		resp, err = env.client.GoogleSignIn(context.Background(), loginEmail, name)

	case loginRegister:
		if loginName == "" {
			return fmt.Errorf("--name is required with --register")
		}
		password, perr := readPassword()
		if perr != nil {
			return perr
		}
		resp, err = env.client.Register(context.Background(), loginEmail, password, loginName)

	default:
		password, perr := readPassword()
		if perr != nil {
			return perr
		}
		resp, err = env.client.Login(context.Background(), loginEmail, password)
	}
	if err != nil {
		return fmt.Errorf("authentication failed: %w", err)
	}

	sess := &session.Session{
		Token: resp.AccessToken,
		User:  session.User{Email: resp.User.Email, Name: resp.User.Name},
	}
	if err := env.store.Save(sess); err != nil {
		return fmt.Errorf("storing session: %w", err)
	}

	fmt.Printf("Signed in as %s\n", sess.DisplayName())
	return nil
}

// readPassword uses the --password flag when given, otherwise prompts
// without echo.
func readPassword() (string, error) {
	if loginPassword != "" {
		return loginPassword, nil
	}
	fmt.Fprint(os.Stderr, "Password: ")
	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("reading password: %w", err)
	}
	if len(raw) == 0 {
		return "", fmt.Errorf("password must not be empty")
	}
	return string(raw), nil
}

func init() {
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "Account email")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "Account password (prompted when omitted)")
	loginCmd.Flags().StringVar(&loginName, "name", "", "Full name, used with --register")
	loginCmd.Flags().BoolVar(&loginRegister, "register", false, "Create the account first")
	loginCmd.Flags().BoolVar(&loginGoogle, "google", false, "Use the demo Google sign-in flow")
}
