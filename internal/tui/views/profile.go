package views

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/prajaltale/HireMind/internal/auth"
	"github.com/prajaltale/HireMind/internal/session"
	"github.com/prajaltale/HireMind/internal/tui"
)

// maxProfileWidth is the maximum width for the profile box.
const maxProfileWidth = 70

// ProfileModel renders the signed-in user's account details.
type ProfileModel struct {
	sess   *session.Session
	width  int
	height int
}

// NewProfileModel creates the profile view for the given session.
func NewProfileModel(sess *session.Session, width, height int) ProfileModel {
	return ProfileModel{sess: sess, width: width, height: height}
}

// Init returns the initial command for the profile view.
func (m ProfileModel) Init() tea.Cmd {
	return nil
}

// SetSession swaps the rendered session after a re-login.
func (m *ProfileModel) SetSession(sess *session.Session) {
	m.sess = sess
}

// Update handles messages for the profile view.
func (m ProfileModel) Update(msg tea.Msg) (ProfileModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func kv(label, value string) string {
	return tui.DimStyle.Render(label+":") + " " + value + "\n"
}

// View renders the profile view.
func (m ProfileModel) View() string {
	var b strings.Builder

	b.WriteString(tui.TitleStyle.Render("Profile"))
	b.WriteString("\n\n")

	if m.sess == nil || !m.sess.Valid() {
		b.WriteString(tui.DimStyle.Render("Not signed in."))
	} else {
		avatar := tui.SelectedStyle.Render(" " + m.sess.AvatarInitial() + " ")
		b.WriteString(avatar + "  " + tui.Sanitize(m.sess.DisplayName()))
		b.WriteString("\n\n")
		b.WriteString(kv("Email", tui.Sanitize(m.sess.User.Email)))

		if info, ok := auth.Inspect(m.sess.Token); ok {
			if !info.ExpiresAt.IsZero() {
				label := "Token expires"
				value := info.ExpiresAt.Local().Format(time.RFC1123)
				if auth.LooksExpired(m.sess.Token) {
					value = tui.WarningStyle.Render(value + " (expired)")
				}
				b.WriteString(kv(label, value))
			}
			if info.Subject != "" && info.Subject != m.sess.User.Email {
				b.WriteString(kv("Subject", tui.Sanitize(info.Subject)))
			}
		}
	}

	b.WriteString("\n")
	b.WriteString(tui.DimStyle.Render("Tab: next view · Ctrl+L: logout"))

	boxWidth := maxProfileWidth
	if m.width-4 < boxWidth {
		boxWidth = m.width - 4
	}
	return tui.BoxStyle.Width(boxWidth).Render(b.String())
}
