// stats.go implements the "hiremind stats" command showing dashboard
// metrics without the TUI.
package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show dashboard metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := newEnv()
		if err != nil {
			return err
		}
		defer env.close()

		if _, err := env.requireSession(); err != nil {
			return err
		}

		stats, err := env.client.DashboardStats(context.Background())
		if err != nil {
			return fmt.Errorf("fetching stats: %w", err)
		}

		last := "–"
		if stats.LastATSScore != nil {
			last = strconv.FormatFloat(*stats.LastATSScore, 'f', -1, 64)
		}
		sessions := "0"
		if stats.SessionsCount != nil {
			sessions = strconv.Itoa(*stats.SessionsCount)
		}
		avg := "–"
		if stats.AvgInterviewScore != nil {
			avg = strconv.FormatFloat(*stats.AvgInterviewScore, 'f', -1, 64)
		}

		fmt.Printf("Last ATS score:       %s\n", last)
		fmt.Printf("Interview sessions:   %s\n", sessions)
		fmt.Printf("Avg interview score:  %s\n", avg)
		return nil
	},
}
