package views

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/prajaltale/HireMind/internal/api"
	"github.com/prajaltale/HireMind/internal/history"
	"github.com/prajaltale/HireMind/internal/tui"
)

// maxDashboardWidth is the maximum width for the dashboard box.
const maxDashboardWidth = 90

// missingStat is shown for a metric the server reported as absent.
const missingStat = "–"

// DashboardModel is the view model for the dashboard screen. It renders
// whatever stats snapshot it was last given; loading is driven by the app
// on every entry into this view.
type DashboardModel struct {
	userName string
	stats    *api.DashboardStats
	recent   []history.Interview
	loading  bool
	width    int
	height   int
}

// NewDashboardModel creates the dashboard view in its loading state.
func NewDashboardModel(userName string, width, height int) DashboardModel {
	return DashboardModel{
		userName: userName,
		loading:  true,
		width:    width,
		height:   height,
	}
}

// Init returns the initial command for the dashboard view.
func (m DashboardModel) Init() tea.Cmd {
	return nil
}

// SetStats replaces the rendered snapshot with a fresh one.
func (m *DashboardModel) SetStats(stats api.DashboardStats) {
	m.stats = &stats
	m.loading = false
}

// SetLoading marks the view as refreshing. The previous snapshot keeps
// rendering underneath so the screen never flashes empty.
func (m *DashboardModel) SetLoading() {
	m.loading = true
}

// RefreshFailed ends the loading state. The last good snapshot stays on
// screen; the failure itself goes to the diagnostic log, not the user.
func (m *DashboardModel) RefreshFailed() {
	m.loading = false
}

// SetRecent replaces the local interview history list.
func (m *DashboardModel) SetRecent(items []history.Interview) {
	m.recent = items
}

// Update handles messages for the dashboard view.
func (m DashboardModel) Update(msg tea.Msg) (DashboardModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

// formatScore renders a score metric, distinguishing a real zero from a
// value the server never reported.
func formatScore(v *float64) string {
	if v == nil {
		return missingStat
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

// formatCount renders the sessions counter. An absent count means no
// sessions yet, so it reads as zero rather than unknown.
func formatCount(v *int) string {
	if v == nil {
		return "0"
	}
	return strconv.Itoa(*v)
}

func statCard(label, value string) string {
	return tui.BoxStyle.Render(tui.DimStyle.Render(label) + "\n" + tui.TitleStyle.Render(value))
}

// View renders the dashboard view.
func (m DashboardModel) View() string {
	var b strings.Builder

	b.WriteString(tui.TitleStyle.Render("Dashboard"))
	if m.userName != "" {
		b.WriteString(tui.DimStyle.Render("  welcome back, " + tui.Sanitize(m.userName)))
	}
	b.WriteString("\n\n")

	if m.stats == nil && m.loading {
		b.WriteString(tui.DimStyle.Render("Loading stats..."))
		b.WriteString("\n")
	} else {
		var last, sessions, avg string
		if m.stats != nil {
			last = formatScore(m.stats.LastATSScore)
			sessions = formatCount(m.stats.SessionsCount)
			avg = formatScore(m.stats.AvgInterviewScore)
		} else {
			last, sessions, avg = missingStat, "0", missingStat
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
			statCard("Last ATS score", last), " ",
			statCard("Interview sessions", sessions), " ",
			statCard("Avg interview score", avg)))
		b.WriteString("\n")
		if m.loading {
			b.WriteString(tui.DimStyle.Render("Refreshing..."))
			b.WriteString("\n")
		}
	}

	if len(m.recent) > 0 {
		b.WriteString("\n")
		b.WriteString(tui.TitleStyle.Render("Recent interviews"))
		b.WriteString("\n")
		for _, it := range m.recent {
			line := fmt.Sprintf("%s  %d/%d answered  avg %.1f",
				it.CreatedAt.Format("2006-01-02 15:04"),
				it.AnsweredCount, it.QuestionCount, it.AverageScore)
			b.WriteString("  " + line + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(tui.DimStyle.Render("Tab: next view · Ctrl+L: logout · Ctrl+C ×2: exit"))

	boxWidth := maxDashboardWidth
	if m.width-4 < boxWidth {
		boxWidth = m.width - 4
	}
	return tui.BoxStyle.Width(boxWidth).Render(b.String())
}
