package commands

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/prajaltale/HireMind/internal/api"
	"github.com/prajaltale/HireMind/internal/history"
	"github.com/prajaltale/HireMind/internal/interview"
	"github.com/prajaltale/HireMind/internal/tui"
)

// dashboardReturnDelay is how long the summary result stays on screen
// before the app routes back to the dashboard.
const dashboardReturnDelay = 500 * time.Millisecond

// GenerateQuestionsCmd requests the fixed-size question list.
func GenerateQuestionsCmd(client *api.Client, resumeText, jobDescription string) tea.Cmd {
	return func() tea.Msg {
		questions, err := client.InterviewQuestions(context.Background(), resumeText, jobDescription)
		if err != nil {
			return tui.QuestionsErrorMsg{Err: err}
		}
		return tui.QuestionsMsg{Questions: questions}
	}
}

// EvaluateCmd submits one answer for evaluation.
func EvaluateCmd(client *api.Client, req api.EvaluateRequest) tea.Cmd {
	return func() tea.Msg {
		eval, err := client.Evaluate(context.Background(), req)
		if err != nil {
			return tui.EvaluationErrorMsg{Err: err}
		}
		return tui.EvaluationMsg{Evaluation: eval}
	}
}

// SaveSummaryCmd persists the session summary to the backend and records it
// in local history. The local write is best-effort: a history failure does
// not fail the save.
func SaveSummaryCmd(client *api.Client, hist *history.Store, userEmail string, summary interview.Summary) tea.Cmd {
	return func() tea.Msg {
		err := client.SaveInterviewSession(context.Background(), summary.QuestionCount, summary.AverageScore)

		if hist != nil {
			_, _ = hist.RecordInterview(userEmail, summary.QuestionCount, summary.AverageScore, summary.Scores)
		}

		return tui.SummarySavedMsg{Summary: summary, Err: err}
	}
}

// ReturnToDashboardCmd fires InterviewDoneMsg after the fixed delay,
// regardless of how the save went.
func ReturnToDashboardCmd() tea.Cmd {
	return tea.Tick(dashboardReturnDelay, func(time.Time) tea.Msg {
		return tui.InterviewDoneMsg{}
	})
}

// ListenTranscriptCmd waits for the next finalized transcript segment. The
// app re-arms it after every delivery, mirroring a streaming listener.
func ListenTranscriptCmd(ch <-chan string) tea.Cmd {
	return func() tea.Msg {
		segment, ok := <-ch
		if !ok {
			return nil
		}
		return tui.TranscriptSegmentMsg{Segment: segment}
	}
}
