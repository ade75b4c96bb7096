package commands

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/prajaltale/HireMind/internal/api"
	"github.com/prajaltale/HireMind/internal/history"
	"github.com/prajaltale/HireMind/internal/tui"
)

// LoadStatsCmd fetches dashboard stats. Failures are reported as
// StatsErrorMsg, which the app logs without surfacing to the user.
func LoadStatsCmd(client *api.Client) tea.Cmd {
	return func() tea.Msg {
		stats, err := client.DashboardStats(context.Background())
		if err != nil {
			return tui.StatsErrorMsg{Err: err}
		}
		return tui.StatsLoadedMsg{Stats: stats}
	}
}

// LoadHistoryCmd fetches recent local interview history for the user.
func LoadHistoryCmd(store *history.Store, userEmail string, limit int) tea.Cmd {
	return func() tea.Msg {
		if store == nil {
			return tui.HistoryLoadedMsg{}
		}
		interviews, err := store.ListInterviews(userEmail, limit)
		return tui.HistoryLoadedMsg{Interviews: interviews, Err: err}
	}
}
