package commands

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/prajaltale/HireMind/internal/api"
	"github.com/prajaltale/HireMind/internal/tui"
)

// UploadResumeCmd uploads the file at path for server-side parsing.
func UploadResumeCmd(client *api.Client, path string) tea.Cmd {
	return func() tea.Msg {
		f, err := os.Open(path)
		if err != nil {
			return tui.ResumeParseErrorMsg{Err: fmt.Errorf("open %s: %w", path, err)}
		}
		defer f.Close()

		text, err := client.ParseResume(context.Background(), path, f)
		if err != nil {
			return tui.ResumeParseErrorMsg{Err: err}
		}
		return tui.ResumeParsedMsg{Text: text}
	}
}

// ATSScoreCmd requests the match score for the current resume and job
// description.
func ATSScoreCmd(client *api.Client, resumeText, jobDescription string) tea.Cmd {
	return func() tea.Msg {
		result, err := client.ATSScore(context.Background(), resumeText, jobDescription)
		if err != nil {
			return tui.ATSErrorMsg{Err: err}
		}
		return tui.ATSResultMsg{Result: result}
	}
}

// FeedbackCmd requests the qualitative resume review.
func FeedbackCmd(client *api.Client, resumeText, jobDescription string) tea.Cmd {
	return func() tea.Msg {
		fb, err := client.ResumeFeedback(context.Background(), resumeText, jobDescription)
		if err != nil {
			return tui.FeedbackErrorMsg{Err: err}
		}
		return tui.FeedbackResultMsg{Feedback: fb}
	}
}
