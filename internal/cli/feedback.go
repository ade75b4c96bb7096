// feedback.go implements the "hiremind feedback" command: qualitative
// resume review from the command line.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	fbResumePath string
	fbJDPath     string
	fbLocal      bool
)

var feedbackCmd = &cobra.Command{
	Use:   "feedback",
	Short: "Get qualitative feedback on a resume",
	Long: `Review the resume at --resume against the job description read from
--jd (a text file) or from stdin. Prints strengths, weaknesses, and
suggestions.`,
	RunE: runFeedback,
}

func runFeedback(cmd *cobra.Command, args []string) error {
	env, err := newEnv()
	if err != nil {
		return err
	}
	defer env.close()

	if _, err := env.requireSession(); err != nil {
		return err
	}

	resumeText, err := loadResumeText(env, fbResumePath, fbLocal)
	if err != nil {
		return err
	}
	jd, err := loadJobDescription(fbJDPath)
	if err != nil {
		return err
	}

	fb, err := env.client.ResumeFeedback(context.Background(), resumeText, jd)
	if err != nil {
		return fmt.Errorf("fetching feedback: %w", err)
	}

	printSection("Strengths", fb.Strengths)
	printSection("Weaknesses", fb.Weaknesses)
	printSection("Suggestions", fb.Suggestions)
	if fb.Recommendation != "" {
		fmt.Printf("\nRecommendation: %s\n", fb.Recommendation)
	}
	return nil
}

func printSection(title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Printf("%s:\n", title)
	for _, it := range items {
		fmt.Printf("  - %s\n", it)
	}
}

func init() {
	feedbackCmd.Flags().StringVar(&fbResumePath, "resume", "", "Path to the resume PDF")
	feedbackCmd.Flags().StringVar(&fbJDPath, "jd", "", "Path to a job description text file (stdin when omitted)")
	feedbackCmd.Flags().BoolVar(&fbLocal, "local", false, "Extract resume text locally instead of uploading the PDF")
	_ = feedbackCmd.MarkFlagRequired("resume")
}
