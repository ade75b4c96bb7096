package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/prajaltale/HireMind/internal/interview"
	"github.com/prajaltale/HireMind/internal/tui"
)

// ============================================================================
// Message Types
// ============================================================================

// StartInterviewMsg asks the app to generate questions and begin a session.
type StartInterviewMsg struct{}

// SpeakQuestionMsg asks the app to read the current question aloud.
type SpeakQuestionMsg struct{}

// ToggleRecordingMsg asks the app to start or stop voice capture.
type ToggleRecordingMsg struct{}

// EvaluateAnswerMsg submits the typed (or transcribed) answer for scoring.
type EvaluateAnswerMsg struct {
	Answer string
}

// NextQuestionMsg advances to the next question.
type NextQuestionMsg struct{}

// EndInterviewMsg finishes the session and saves the summary.
type EndInterviewMsg struct{}

// ============================================================================
// InterviewModel
// ============================================================================

// maxInterviewWidth is the maximum width for the interview box.
const maxInterviewWidth = 100

// InterviewModel is the view model for the mock interview screen. The
// session state machine itself lives in the shared flow; this model owns
// only the answer editor and per-question display state.
type InterviewModel struct {
	flow   *interview.Flow
	answer textarea.Model

	recording bool
	speechOK  bool
	evalErr   string
	saving    bool
	saveErr   string
	summary   *interview.Summary

	width  int
	height int
}

// NewInterviewModel creates the interview view around the shared flow.
// speechAvailable controls whether the recording hint is shown at all.
func NewInterviewModel(flow *interview.Flow, speechAvailable bool, width, height int) InterviewModel {
	answer := textarea.New()
	answer.Placeholder = "type your answer, or Ctrl+R to record"
	answer.CharLimit = 0
	answer.SetWidth(80)
	answer.SetHeight(8)

	return InterviewModel{
		flow:     flow,
		answer:   answer,
		speechOK: speechAvailable,
		width:    width,
		height:   height,
	}
}

// Init returns the initial command for the interview view.
func (m InterviewModel) Init() tea.Cmd {
	return nil
}

// AppendTranscript appends one finalized speech segment to the answer.
// Interim segments never reach this method.
func (m *InterviewModel) AppendTranscript(segment string) {
	segment = strings.TrimSpace(tui.Sanitize(segment))
	if segment == "" {
		return
	}
	cur := m.answer.Value()
	if cur != "" && !strings.HasSuffix(cur, " ") {
		segment = " " + segment
	}
	m.answer.SetValue(cur + segment)
}

// SetRecording toggles the capture indicator.
func (m *InterviewModel) SetRecording(on bool) {
	m.recording = on
}

// SetEvalError shows an inline evaluation failure for the current question.
func (m *InterviewModel) SetEvalError(text string) {
	m.evalErr = text
}

// NextQuestionShown clears per-question state when the app advances the flow.
func (m *InterviewModel) NextQuestionShown() {
	m.answer.Reset()
	m.evalErr = ""
}

// SessionStarted clears everything left over from a previous run.
func (m *InterviewModel) SessionStarted() {
	m.answer.Reset()
	m.evalErr = ""
	m.saveErr = ""
	m.summary = nil
	m.saving = false
}

// SetSaving marks the summary save as in flight.
func (m *InterviewModel) SetSaving() {
	m.saving = true
}

// SetSummary shows the final summary. saveErr is non-empty when the backend
// save failed; the summary still renders.
func (m *InterviewModel) SetSummary(s interview.Summary, saveErr string) {
	m.saving = false
	m.summary = &s
	m.saveErr = saveErr
}

// Update handles messages for the interview view.
func (m InterviewModel) Update(msg tea.Msg) (InterviewModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+g":
			if m.flow.State() == interview.StateIdle || m.flow.State() == interview.StateFinished {
				return m, func() tea.Msg { return StartInterviewMsg{} }
			}
			return m, nil

		case "ctrl+o":
			if m.flow.State() == interview.StateActive {
				return m, func() tea.Msg { return SpeakQuestionMsg{} }
			}
			return m, nil

		case "ctrl+r":
			if m.speechOK && m.flow.State() == interview.StateActive {
				return m, func() tea.Msg { return ToggleRecordingMsg{} }
			}
			return m, nil

		case "ctrl+e":
			if m.flow.State() != interview.StateActive {
				return m, nil
			}
			answer := strings.TrimSpace(m.answer.Value())
			if answer == "" {
				m.evalErr = "Answer is empty."
				return m, nil
			}
			m.evalErr = ""
			return m, func() tea.Msg { return EvaluateAnswerMsg{Answer: answer} }

		case "ctrl+n":
			if m.flow.State() != interview.StateActive {
				return m, nil
			}
			if m.flow.Index() >= m.flow.Total()-1 {
				return m, func() tea.Msg {
					return tui.NoticeMsg{Text: "Last question. End the interview to finish."}
				}
			}
			return m, func() tea.Msg { return NextQuestionMsg{} }

		case "ctrl+x":
			switch m.flow.State() {
			case interview.StateActive, interview.StateEvaluating:
				return m, func() tea.Msg { return EndInterviewMsg{} }
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	if m.flow.State() == interview.StateActive {
		var cmd tea.Cmd
		if !m.answer.Focused() {
			cmd = m.answer.Focus()
		}
		var inputCmd tea.Cmd
		m.answer, inputCmd = m.answer.Update(msg)
		return m, tea.Batch(cmd, inputCmd)
	}
	return m, nil
}

func (m InterviewModel) renderEvaluation() string {
	eval, ok := m.flow.Result(m.flow.Index())
	if !ok {
		return ""
	}
	var b strings.Builder
	b.WriteString(tui.SuccessStyle.Render(fmt.Sprintf("Score: %.1f/10", eval.Score)))
	b.WriteString("\n")
	if len(eval.Strengths) > 0 {
		b.WriteString(renderList("Strengths", eval.Strengths))
	}
	if len(eval.Weaknesses) > 0 {
		b.WriteString(renderList("Weaknesses", eval.Weaknesses))
	}
	if len(eval.Suggestions) > 0 {
		b.WriteString(renderList("Suggestions", eval.Suggestions))
	}
	return b.String()
}

func (m InterviewModel) renderSummary() string {
	var b strings.Builder
	b.WriteString(tui.TitleStyle.Render("Interview complete"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Answered %d of %d questions\n", m.summary.AnsweredCount, m.summary.QuestionCount))
	b.WriteString(tui.SuccessStyle.Render(fmt.Sprintf("Average score: %.1f/10", m.summary.AverageScore)))
	b.WriteString("\n")
	if m.saving {
		b.WriteString(tui.DimStyle.Render("Saving session..."))
		b.WriteString("\n")
	} else if m.saveErr != "" {
		b.WriteString(tui.WarningStyle.Render("Session not saved: " + tui.Sanitize(m.saveErr)))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(tui.DimStyle.Render("Returning to dashboard... (Ctrl+G: new interview)"))
	return b.String()
}

// View renders the interview view.
func (m InterviewModel) View() string {
	var b strings.Builder

	b.WriteString(tui.TitleStyle.Render("Mock interview"))
	b.WriteString("\n\n")

	switch m.flow.State() {
	case interview.StateIdle:
		b.WriteString("Five questions tailored to your resume and the job description.\n")
		b.WriteString("Answer by typing or by voice, one question at a time.\n\n")
		b.WriteString(tui.DimStyle.Render("Ctrl+G: start interview"))

	case interview.StateGenerating:
		b.WriteString(tui.DimStyle.Render("Generating questions..."))

	case interview.StateActive, interview.StateEvaluating:
		question, _ := m.flow.Question()
		b.WriteString(tui.SelectedStyle.Render(fmt.Sprintf("Question %d/%d", m.flow.Index()+1, m.flow.Total())))
		b.WriteString("\n")
		b.WriteString(tui.Sanitize(question))
		b.WriteString("\n\n")

		b.WriteString(m.answer.View())
		b.WriteString("\n")

		if m.recording {
			b.WriteString(tui.ErrorStyle.Render("● recording"))
			b.WriteString("\n")
		}
		if m.flow.State() == interview.StateEvaluating {
			b.WriteString(tui.DimStyle.Render("Evaluating answer..."))
			b.WriteString("\n")
		} else if m.evalErr != "" {
			b.WriteString(tui.ErrorStyle.Render(tui.Sanitize(m.evalErr)))
			b.WriteString("\n")
		}
		if ev := m.renderEvaluation(); ev != "" {
			b.WriteString("\n")
			b.WriteString(ev)
		}

		b.WriteString("\n")
		hints := []string{"Ctrl+O: hear question"}
		if m.speechOK {
			hints = append(hints, "Ctrl+R: record")
		}
		hints = append(hints, "Ctrl+E: evaluate")
		if m.flow.Index() < m.flow.Total()-1 {
			hints = append(hints, "Ctrl+N: next")
		}
		hints = append(hints, "Ctrl+X: end")
		b.WriteString(tui.DimStyle.Render(strings.Join(hints, " · ")))

	case interview.StateFinished:
		if m.summary != nil {
			b.WriteString(m.renderSummary())
		} else {
			b.WriteString(tui.DimStyle.Render("Wrapping up..."))
		}
	}

	boxWidth := maxInterviewWidth
	if m.width-4 < boxWidth {
		boxWidth = m.width - 4
	}
	return tui.BoxStyle.Width(boxWidth).Render(b.String())
}
