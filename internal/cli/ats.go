// ats.go implements the "hiremind ats" command: score a resume against a
// job description from the command line.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/prajaltale/HireMind/internal/resume"
)

var (
	atsResumePath string
	atsJDPath     string
	atsLocal      bool
)

var atsCmd = &cobra.Command{
	Use:   "ats",
	Short: "Score a resume against a job description",
	Long: `Score the resume at --resume against the job description read from
--jd (a text file) or from stdin.

By default the resume is parsed server-side. With --local the text is
extracted from the PDF on this machine and only the extracted text is
sent.`,
	RunE: runATS,
}

func runATS(cmd *cobra.Command, args []string) error {
	env, err := newEnv()
	if err != nil {
		return err
	}
	defer env.close()

	sess, err := env.requireSession()
	if err != nil {
		return err
	}

	resumeText, err := loadResumeText(env, atsResumePath, atsLocal)
	if err != nil {
		return err
	}
	jd, err := loadJobDescription(atsJDPath)
	if err != nil {
		return err
	}

	result, err := env.client.ATSScore(context.Background(), resumeText, jd)
	if err != nil {
		return fmt.Errorf("scoring resume: %w", err)
	}

	fmt.Printf("Score: %.0f/100\n", result.Score)
	if len(result.MatchedSkills) > 0 {
		fmt.Printf("Matched: %s\n", strings.Join(result.MatchedSkills, ", "))
	}
	if len(result.MissingSkills) > 0 {
		fmt.Printf("Missing: %s\n", strings.Join(result.MissingSkills, ", "))
	}

	if env.history != nil {
		_, err := env.history.RecordATSRun(sess.User.Email, result.Score,
			len(result.MatchedSkills), len(result.MissingSkills))
		if err != nil {
			env.logger.Warn("recording ATS run failed", zap.Error(err))
		}
	}
	return nil
}

// loadResumeText produces the resume text either by local PDF extraction
// or by uploading for server-side parsing.
func loadResumeText(e *env, path string, local bool) (string, error) {
	if !resume.AcceptsFilename(path) {
		return "", fmt.Errorf("only PDF resumes are accepted: %s", path)
	}

	if local {
		text, err := resume.ExtractText(path)
		if err != nil {
			return "", fmt.Errorf("extracting text from %s: %w", path, err)
		}
		return text, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()
	text, err := e.client.ParseResume(context.Background(), path, f)
	if err != nil {
		return "", fmt.Errorf("parsing resume: %w", err)
	}
	return text, nil
}

// loadJobDescription reads the job description from the given file, or
// from stdin when no file is named.
func loadJobDescription(path string) (string, error) {
	var raw []byte
	var err error
	if path != "" {
		raw, err = os.ReadFile(path)
	} else {
		raw, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		return "", fmt.Errorf("reading job description: %w", err)
	}
	jd := strings.TrimSpace(string(raw))
	if jd == "" {
		return "", fmt.Errorf("job description is empty")
	}
	return jd, nil
}

func init() {
	atsCmd.Flags().StringVar(&atsResumePath, "resume", "", "Path to the resume PDF")
	atsCmd.Flags().StringVar(&atsJDPath, "jd", "", "Path to a job description text file (stdin when omitted)")
	atsCmd.Flags().BoolVar(&atsLocal, "local", false, "Extract resume text locally instead of uploading the PDF")
	_ = atsCmd.MarkFlagRequired("resume")
}
