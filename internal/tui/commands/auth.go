// Package commands provides Bubble Tea commands for TUI operations.
package commands

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/prajaltale/HireMind/internal/api"
	"github.com/prajaltale/HireMind/internal/session"
	"github.com/prajaltale/HireMind/internal/tui"
)

func sessionFromAuth(resp *api.AuthResponse) *session.Session {
	return &session.Session{
		Token: resp.AccessToken,
		User:  session.User{Email: resp.User.Email, Name: resp.User.Name},
	}
}

// LoginCmd authenticates with email and password.
func LoginCmd(client *api.Client, email, password string) tea.Cmd {
	return func() tea.Msg {
		resp, err := client.Login(context.Background(), email, password)
		if err != nil {
			return tui.AuthErrorMsg{Err: err}
		}
		return tui.AuthSuccessMsg{Session: sessionFromAuth(resp)}
	}
}

// RegisterCmd creates an account and signs in.
func RegisterCmd(client *api.Client, email, password, name string) tea.Cmd {
	return func() tea.Msg {
		resp, err := client.Register(context.Background(), email, password, name)
		if err != nil {
			return tui.AuthErrorMsg{Err: err}
		}
		return tui.AuthSuccessMsg{Session: sessionFromAuth(resp)}
	}
}

// GoogleSignInCmd runs the demo SSO flow: no password, display name derived
// from the email local part.
func GoogleSignInCmd(client *api.Client, email string) tea.Cmd {
	return func() tea.Msg {
		name := email
		if at := strings.Index(email, "@"); at > 0 {
			name = email[:at]
		}
		resp, err := client.GoogleSignIn(context.Background(), email, name)
		if err != nil {
			return tui.AuthErrorMsg{Err: err}
		}
		return tui.AuthSuccessMsg{Session: sessionFromAuth(resp)}
	}
}
