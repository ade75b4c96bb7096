// Package app wires the views, commands, and shared model into one Bubble
// Tea program.
package app

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/prajaltale/HireMind/internal/api"
	"github.com/prajaltale/HireMind/internal/tui"
	"github.com/prajaltale/HireMind/internal/tui/commands"
	"github.com/prajaltale/HireMind/internal/tui/views"
)

// ctrlCWindow is how long the exit confirmation stays armed.
const ctrlCWindow = 2 * time.Second

// recentHistoryLimit is how many past interviews the dashboard lists.
const recentHistoryLimit = 5

// App is the root Bubble Tea model. It owns the shared application state
// and routes every message to exactly one visible view.
type App struct {
	model *tui.Model

	auth      views.AuthModel
	dashboard views.DashboardModel
	resume    views.ResumeModel
	interview views.InterviewModel
	profile   views.ProfileModel

	// base name of the file currently uploading, shown on success
	pendingUpload string
	recording     bool
}

// New creates the root app around a prepared model.
func New(m *tui.Model) *App {
	a := &App{model: m}
	a.buildViews()
	return a
}

// buildViews constructs every view from current model state. Called at
// startup and again after login and logout so no view carries stale state
// across sessions.
func (a *App) buildViews() {
	w, h := a.model.Width, a.model.Height
	a.auth = views.NewAuthModel(w, h)
	a.dashboard = views.NewDashboardModel(a.model.Session.DisplayName(), w, h)
	a.resume = views.NewResumeModel(w, h)
	a.interview = views.NewInterviewModel(a.model.Flow, a.model.Transcriber != nil, w, h)
	a.profile = views.NewProfileModel(a.model.Session, w, h)
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	cmds := []tea.Cmd{
		a.auth.Init(),
		commands.ListenTranscriptCmd(a.model.TranscriptChan),
	}
	if a.model.Authenticated() {
		cmds = append(cmds, a.refreshDashboard()...)
	}
	return tea.Batch(cmds...)
}

// refreshDashboard kicks off the stats and history loads.
func (a *App) refreshDashboard() []tea.Cmd {
	a.dashboard.SetLoading()
	return []tea.Cmd{
		commands.LoadStatsCmd(a.model.Client),
		commands.LoadHistoryCmd(a.model.History, a.model.Session.User.Email, recentHistoryLimit),
	}
}

// navigate switches to the target view, refusing while unauthenticated.
func (a *App) navigate(target tui.ViewState) tea.Cmd {
	if !a.model.Authenticated() {
		a.model.Notice = "Sign in to continue."
		a.model.State = tui.StateAuth
		return nil
	}
	a.model.State = target
	if target == tui.StateDashboard {
		return tea.Batch(a.refreshDashboard()...)
	}
	return nil
}

// textEntryActive reports whether the visible view routes plain keystrokes
// into a text field, in which case digit keys must type, not navigate.
func (a *App) textEntryActive() bool {
	switch a.model.State {
	case tui.StateResume, tui.StateInterview, tui.StateAuth:
		return true
	}
	return false
}

// nextView returns the view after the current one in the tab cycle.
func (a *App) nextView() tui.ViewState {
	for i, v := range tui.AuthedViews {
		if v == a.model.State {
			return tui.AuthedViews[(i+1)%len(tui.AuthedViews)]
		}
	}
	return tui.StateDashboard
}

// logout tears down the session and all user-scoped state.
func (a *App) logout() {
	a.stopRecording()
	if a.model.Speaker != nil {
		a.model.Speaker.Cancel()
	}
	if err := a.model.Store.Clear(); err != nil {
		a.model.Logger.Warn("clearing stored session failed", zap.Error(err))
	}
	a.model.Session = nil
	a.model.Client.SetToken("")
	a.model.ClearAppState()
	a.model.State = tui.StateAuth
	a.buildViews()
	a.model.Notice = "Signed out."
}

func (a *App) stopRecording() {
	if a.recording && a.model.Transcriber != nil {
		a.model.Transcriber.Stop()
	}
	a.recording = false
	a.interview.SetRecording(false)
}

// startRecording begins voice capture. Finalized segments go through the
// transcript channel so they enter the update loop like any other message;
// a full channel drops the segment rather than blocking the audio callback.
func (a *App) startRecording() {
	ch := a.model.TranscriptChan
	err := a.model.Transcriber.Start(func(segment string) {
		select {
		case ch <- segment:
		default:
		}
	})
	if err != nil {
		a.model.Notice = "Voice capture unavailable on this system."
		return
	}
	a.recording = true
	a.interview.SetRecording(true)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.model.Width = msg.Width
		a.model.Height = msg.Height
		a.auth, _ = a.auth.Update(msg)
		a.dashboard, _ = a.dashboard.Update(msg)
		a.resume, _ = a.resume.Update(msg)
		a.interview, _ = a.interview.Update(msg)
		a.profile, _ = a.profile.Update(msg)
		return a, nil

	case tea.KeyMsg:
		return a.updateKey(msg)

	case tui.CtrlCResetMsg:
		a.model.CtrlCPending = false
		return a, nil

	case tui.NavigateMsg:
		return a, a.navigate(msg.Target)

	case tui.LogoutMsg:
		a.logout()
		return a, nil

	case tui.NoticeMsg:
		a.model.Notice = msg.Text
		return a, nil
	}

	if cmd, handled := a.updateData(msg); handled {
		return a, cmd
	}
	return a.updateActiveView(msg)
}

// updateKey handles the global key bindings, then hands the key to the
// active view.
func (a *App) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	// Any keypress clears a pending notice.
	if key != tui.KeyCtrlC {
		a.model.Notice = ""
		a.model.CtrlCPending = false
	}

	switch key {
	case tui.KeyCtrlC:
		if a.model.CtrlCPending {
			return a, tea.Quit
		}
		a.model.CtrlCPending = true
		a.model.Notice = "Press Ctrl+C again to exit."
		return a, tea.Tick(ctrlCWindow, func(time.Time) tea.Msg {
			return tui.CtrlCResetMsg{}
		})

	case tui.KeyCtrlL:
		if a.model.Authenticated() {
			a.logout()
			return a, nil
		}

	case tui.KeyTab:
		if a.model.Authenticated() {
			return a, a.navigate(a.nextView())
		}

	case "1", "2", "3", "4":
		// direct view jumps, only where digits cannot be input text
		if a.model.Authenticated() && !a.textEntryActive() {
			idx := int(key[0] - '1')
			return a, a.navigate(tui.AuthedViews[idx])
		}
	}

	return a.updateActiveView(msg)
}

// updateActiveView routes a message to the single visible view and handles
// the intents it emits.
func (a *App) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.model.State {
	case tui.StateAuth:
		a.auth, cmd = a.auth.Update(msg)
	case tui.StateDashboard:
		a.dashboard, cmd = a.dashboard.Update(msg)
	case tui.StateResume:
		a.resume, cmd = a.resume.Update(msg)
	case tui.StateInterview:
		a.interview, cmd = a.interview.Update(msg)
	case tui.StateProfile:
		a.profile, cmd = a.profile.Update(msg)
	}
	return a, cmd
}

// updateData handles every data and intent message. The second return is
// false when the message is not one of ours and should go to the active
// view instead.
func (a *App) updateData(msg tea.Msg) (tea.Cmd, bool) {
	switch msg := msg.(type) {

	// ---- auth ----

	case views.SubmitAuthMsg:
		a.auth.SetBusy(true)
		switch msg.Mode {
		case views.ModeRegister:
			return commands.RegisterCmd(a.model.Client, msg.Email, msg.Password, msg.Name), true
		case views.ModeGoogle:
			return commands.GoogleSignInCmd(a.model.Client, msg.Email), true
		default:
			return commands.LoginCmd(a.model.Client, msg.Email, msg.Password), true
		}

	case tui.AuthSuccessMsg:
		a.model.Session = msg.Session
		a.model.Client.SetToken(msg.Session.Token)
		if err := a.model.Store.Save(msg.Session); err != nil {
			a.model.Logger.Warn("persisting session failed", zap.Error(err))
		}
		a.model.State = tui.StateDashboard
		a.buildViews()
		return tea.Batch(a.refreshDashboard()...), true

	case tui.AuthErrorMsg:
		a.auth.SetBusy(false)
		a.auth.SetError(msg.Err.Error())
		return nil, true

	// ---- dashboard ----

	case tui.StatsLoadedMsg:
		a.dashboard.SetStats(*msg.Stats)
		return nil, true

	case tui.StatsErrorMsg:
		a.model.Logger.Warn("dashboard stats refresh failed", zap.Error(msg.Err))
		a.dashboard.RefreshFailed()
		return nil, true

	case tui.HistoryLoadedMsg:
		if msg.Err != nil {
			a.model.Logger.Warn("loading local history failed", zap.Error(msg.Err))
			return nil, true
		}
		a.dashboard.SetRecent(msg.Interviews)
		return nil, true

	// ---- resume ----

	case views.UploadRequestedMsg:
		a.pendingUpload = filepath.Base(msg.Path)
		a.resume.SetParsing()
		return commands.UploadResumeCmd(a.model.Client, msg.Path), true

	case tui.ResumeParsedMsg:
		a.model.ResumeText = msg.Text
		a.resume.SetParsed(a.pendingUpload, len(msg.Text))
		return nil, true

	case tui.ResumeParseErrorMsg:
		a.resume.SetParseError(msg.Err.Error())
		return nil, true

	case views.ATSRequestedMsg:
		a.model.JobDescription = a.resume.JobDescription()
		a.resume.SetATSBusy()
		return commands.ATSScoreCmd(a.model.Client, a.model.ResumeText, a.model.JobDescription), true

	case tui.ATSResultMsg:
		a.model.ATSResult = msg.Result
		a.resume.SetATSResult(*msg.Result)
		if a.model.History != nil {
			_, err := a.model.History.RecordATSRun(a.model.Session.User.Email, msg.Result.Score,
				len(msg.Result.MatchedSkills), len(msg.Result.MissingSkills))
			if err != nil {
				a.model.Logger.Warn("recording ATS run failed", zap.Error(err))
			}
		}
		// a fresh score changes the dashboard's last-score metric
		return commands.LoadStatsCmd(a.model.Client), true

	case tui.ATSErrorMsg:
		a.resume.SetATSError(msg.Err.Error())
		return nil, true

	case views.FeedbackRequestedMsg:
		a.model.JobDescription = a.resume.JobDescription()
		a.resume.SetFeedbackBusy()
		return commands.FeedbackCmd(a.model.Client, a.model.ResumeText, a.model.JobDescription), true

	case tui.FeedbackResultMsg:
		a.resume.SetFeedbackResult(*msg.Feedback)
		return nil, true

	case tui.FeedbackErrorMsg:
		a.resume.SetFeedbackError(msg.Err.Error())
		return nil, true

	// ---- interview ----

	case views.StartInterviewMsg:
		a.model.JobDescription = a.resume.JobDescription()
		if a.model.ResumeText == "" || a.model.JobDescription == "" {
			a.model.Notice = "Upload a resume and add a job description first."
			return nil, true
		}
		if err := a.model.Flow.Begin(); err != nil {
			return nil, true
		}
		a.interview.SessionStarted()
		return commands.GenerateQuestionsCmd(a.model.Client, a.model.ResumeText, a.model.JobDescription), true

	case tui.QuestionsMsg:
		if err := a.model.Flow.QuestionsReady(msg.Questions); err != nil {
			a.model.Logger.Warn("question generation returned no questions", zap.Error(err))
			a.model.Notice = "Question generation failed, try again."
		}
		return nil, true

	case tui.QuestionsErrorMsg:
		a.model.Flow.QuestionsFailed()
		a.model.Notice = "Question generation failed: " + msg.Err.Error()
		return nil, true

	case views.SpeakQuestionMsg:
		question, ok := a.model.Flow.Question()
		if !ok {
			return nil, true
		}
		if a.model.Speaker == nil {
			a.model.Notice = "Speech output unavailable on this system."
			return nil, true
		}
		if err := a.model.Speaker.Speak(question); err != nil {
			a.model.Logger.Warn("speaking question failed", zap.Error(err))
			a.model.Notice = "Speech output unavailable on this system."
		}
		return nil, true

	case views.ToggleRecordingMsg:
		if a.recording {
			a.stopRecording()
		} else {
			a.startRecording()
		}
		return nil, true

	case tui.TranscriptSegmentMsg:
		a.interview.AppendTranscript(msg.Segment)
		return commands.ListenTranscriptCmd(a.model.TranscriptChan), true

	case views.EvaluateAnswerMsg:
		question, ok := a.model.Flow.Question()
		if !ok {
			return nil, true
		}
		if err := a.model.Flow.BeginEvaluation(); err != nil {
			return nil, true
		}
		a.stopRecording()
		req := api.EvaluateRequest{
			Question:       question,
			AnswerText:     msg.Answer,
			ResumeText:     a.model.ResumeText,
			JobDescription: a.model.JobDescription,
		}
		return commands.EvaluateCmd(a.model.Client, req), true

	case tui.EvaluationMsg:
		if err := a.model.Flow.EvaluationReady(*msg.Evaluation); err != nil {
			a.model.Logger.Warn("evaluation arrived outside evaluating state", zap.Error(err))
			return nil, true
		}
		if a.model.Speaker != nil {
			line := fmt.Sprintf("Score %.0f out of 10.", msg.Evaluation.Score)
			if len(msg.Evaluation.Suggestions) > 0 {
				line += " " + msg.Evaluation.Suggestions[0]
			}
			if err := a.model.Speaker.Speak(line); err != nil {
				a.model.Logger.Warn("speaking evaluation failed", zap.Error(err))
			}
		}
		return nil, true

	case tui.EvaluationErrorMsg:
		a.model.Flow.EvaluationFailed()
		a.interview.SetEvalError(msg.Err.Error())
		return nil, true

	case views.NextQuestionMsg:
		if err := a.model.Flow.Next(); err == nil {
			a.interview.NextQuestionShown()
		}
		return nil, true

	case views.EndInterviewMsg:
		a.stopRecording()
		if a.model.Speaker != nil {
			a.model.Speaker.Cancel()
		}
		summary, err := a.model.Flow.End()
		if err != nil {
			return nil, true
		}
		a.interview.SetSaving()
		return commands.SaveSummaryCmd(a.model.Client, a.model.History, a.model.Session.User.Email, summary), true

	case tui.SummarySavedMsg:
		saveErr := ""
		if msg.Err != nil {
			a.model.Logger.Warn("saving interview session failed", zap.Error(msg.Err))
			saveErr = msg.Err.Error()
		}
		a.interview.SetSummary(msg.Summary, saveErr)
		return commands.ReturnToDashboardCmd(), true

	case tui.InterviewDoneMsg:
		if a.model.State == tui.StateInterview {
			return a.navigate(tui.StateDashboard), true
		}
		return nil, true
	}

	return nil, false
}

// View implements tea.Model.
func (a *App) View() string {
	var header string
	if a.model.Authenticated() {
		var tabs []string
		for _, v := range tui.AuthedViews {
			if v == a.model.State {
				tabs = append(tabs, tui.ActiveTabStyle.Render(v.Name()))
			} else {
				tabs = append(tabs, tui.InactiveTabStyle.Render(v.Name()))
			}
		}
		header = strings.Join(tabs, " ") + "\n"
	}

	notice := ""
	if a.model.Notice != "" {
		notice = tui.WarningStyle.Render(tui.Sanitize(a.model.Notice)) + "\n"
	}

	var body string
	switch a.model.State {
	case tui.StateAuth:
		body = a.auth.View()
	case tui.StateDashboard:
		body = a.dashboard.View()
	case tui.StateResume:
		body = a.resume.View()
	case tui.StateInterview:
		body = a.interview.View()
	case tui.StateProfile:
		body = a.profile.View()
	}

	return header + notice + body
}
