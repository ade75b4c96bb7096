// Package tui implements the terminal user interface using Bubble Tea.
package tui

import (
	"github.com/prajaltale/HireMind/internal/api"
	"github.com/prajaltale/HireMind/internal/history"
	"github.com/prajaltale/HireMind/internal/interview"
	"github.com/prajaltale/HireMind/internal/session"
)

// ============================================================================
// Navigation Messages
// ============================================================================

// NavigateMsg requests a switch to the named view. The router rejects it
// with a notice while unauthenticated.
type NavigateMsg struct {
	Target ViewState
}

// LogoutMsg requests clearing the session and returning to the auth view.
type LogoutMsg struct{}

// NoticeMsg surfaces a blocking notice line to the user.
type NoticeMsg struct {
	Text string
}

// CtrlCResetMsg resets the Ctrl+C confirmation state after its timeout.
type CtrlCResetMsg struct{}

// ============================================================================
// Auth Messages
// ============================================================================

// AuthSuccessMsg signals a completed auth call of any mode.
type AuthSuccessMsg struct {
	Session *session.Session
}

// AuthErrorMsg signals a failed auth call; the user stays unauthenticated.
type AuthErrorMsg struct {
	Err error
}

// ============================================================================
// Dashboard Messages
// ============================================================================

// StatsLoadedMsg carries fresh dashboard stats.
type StatsLoadedMsg struct {
	Stats *api.DashboardStats
}

// StatsErrorMsg signals a failed stats refresh. Logged only; prior values
// stay on screen.
type StatsErrorMsg struct {
	Err error
}

// HistoryLoadedMsg carries the recent local interview history.
type HistoryLoadedMsg struct {
	Interviews []history.Interview
	Err        error
}

// ============================================================================
// Resume / Panel Messages
// ============================================================================

// ResumeParsedMsg carries the text extracted from an uploaded resume.
type ResumeParsedMsg struct {
	Text string
}

// ResumeParseErrorMsg signals a failed upload or parse; prior resume text
// is left untouched.
type ResumeParseErrorMsg struct {
	Err error
}

// ATSResultMsg carries a fresh ATS score.
type ATSResultMsg struct {
	Result *api.ATSResult
}

// ATSErrorMsg signals a failed ATS request.
type ATSErrorMsg struct {
	Err error
}

// FeedbackResultMsg carries a fresh resume feedback response.
type FeedbackResultMsg struct {
	Feedback *api.Feedback
}

// FeedbackErrorMsg signals a failed feedback request.
type FeedbackErrorMsg struct {
	Err error
}

// ============================================================================
// Interview Messages
// ============================================================================

// QuestionsMsg carries a generated question list.
type QuestionsMsg struct {
	Questions []string
}

// QuestionsErrorMsg signals failed question generation; the flow returns
// to idle.
type QuestionsErrorMsg struct {
	Err error
}

// EvaluationMsg carries the evaluation of the current answer.
type EvaluationMsg struct {
	Evaluation *api.Evaluation
}

// EvaluationErrorMsg signals a failed evaluation; index and answer are
// preserved.
type EvaluationErrorMsg struct {
	Err error
}

// SummarySavedMsg reports the outcome of persisting the session summary.
type SummarySavedMsg struct {
	Summary interview.Summary
	Err     error
}

// InterviewDoneMsg fires after the post-save delay: refresh the dashboard
// and route to it.
type InterviewDoneMsg struct{}

// TranscriptSegmentMsg delivers one finalized transcript segment.
type TranscriptSegmentMsg struct {
	Segment string
}
