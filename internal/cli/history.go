// history.go implements the "hiremind history" command listing past
// interview sessions and ATS runs from the local store.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past interviews and ATS runs",
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
		if env.history == nil {
			return fmt.Errorf("local history is unavailable")
		}

		interviews, err := env.history.ListInterviews(sess.User.Email, historyLimit)
		if err != nil {
			return fmt.Errorf("listing interviews: %w", err)
		}
		runs, err := env.history.ListATSRuns(sess.User.Email, historyLimit)
		if err != nil {
			return fmt.Errorf("listing ATS runs: %w", err)
		}

		if len(interviews) == 0 && len(runs) == 0 {
			fmt.Println("No history yet.")
			return nil
		}

		if len(interviews) > 0 {
			fmt.Println("Interviews:")
			for _, it := range interviews {
				fmt.Printf("  %s  %d/%d answered  avg %.1f\n",
					it.CreatedAt.Format("2006-01-02 15:04"),
					it.AnsweredCount, it.QuestionCount, it.AverageScore)
			}
		}
		if len(runs) > 0 {
			fmt.Println("ATS runs:")
			for _, r := range runs {
				fmt.Printf("  %s  score %.0f  matched %d  missing %d\n",
					r.CreatedAt.Format("2006-01-02 15:04"),
					r.Score, r.MatchedCount, r.MissingCount)
			}
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 10, "Maximum entries per list")
}
