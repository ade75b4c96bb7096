package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/prajaltale/HireMind/internal/api"
	"github.com/prajaltale/HireMind/internal/resume"
	"github.com/prajaltale/HireMind/internal/tui"
)

// ============================================================================
// Message Types
// ============================================================================

// UploadRequestedMsg asks the app to parse the resume at Path.
type UploadRequestedMsg struct {
	Path string
}

// ATSRequestedMsg asks the app to score the current resume against the
// current job description.
type ATSRequestedMsg struct{}

// FeedbackRequestedMsg asks the app to fetch qualitative resume feedback.
type FeedbackRequestedMsg struct{}

// ============================================================================
// ResumeModel
// ============================================================================

// maxResumeWidth is the maximum width for the resume box.
const maxResumeWidth = 100

// maxSkillTags caps how many skill tags either gap list renders.
const maxSkillTags = 30

// gaugeSegments is the resolution of the score dial. Each segment covers
// ten degrees of the original circular indicator.
const gaugeSegments = 36

// resumeFocus identifies which input currently receives keystrokes.
type resumeFocus int

const (
	focusPath resumeFocus = iota
	focusJobDesc
)

// ResumeModel is the view model for the resume screen: a file path input,
// a job description editor, and the two result panels. Each panel keeps an
// independent busy flag so one slow request never blocks the other.
type ResumeModel struct {
	path    textinput.Model
	jobDesc textarea.Model
	focus   resumeFocus

	resumeName  string
	resumeChars int
	parsing     bool
	parseErr    string
	hasResume   bool

	atsBusy   bool
	atsErr    string
	atsResult *api.ATSResult

	fbBusy   bool
	fbErr    string
	feedback *api.Feedback

	width  int
	height int
}

// NewResumeModel creates the resume view with the path input focused.
func NewResumeModel(width, height int) ResumeModel {
	path := textinput.New()
	path.Placeholder = "path to resume (.pdf)"
	path.CharLimit = 512
	path.Width = 60
	path.Focus()

	jd := textarea.New()
	jd.Placeholder = "paste the job description here"
	jd.CharLimit = 0
	jd.SetWidth(80)
	jd.SetHeight(6)

	return ResumeModel{
		path:    path,
		jobDesc: jd,
		width:   width,
		height:  height,
	}
}

// Init returns the initial command for the resume view.
func (m ResumeModel) Init() tea.Cmd {
	return textinput.Blink
}

// JobDescription returns the job description text as currently typed.
func (m ResumeModel) JobDescription() string {
	return strings.TrimSpace(m.jobDesc.Value())
}

// SetParsing marks an upload in flight.
func (m *ResumeModel) SetParsing() {
	m.parsing = true
	m.parseErr = ""
}

// SetParsed records a successful upload of the named file and how much
// text came back.
func (m *ResumeModel) SetParsed(filename string, chars int) {
	m.parsing = false
	m.resumeName = filename
	m.resumeChars = chars
	m.hasResume = true
}

// SetParseError records a failed upload. A previously parsed resume stays
// usable.
func (m *ResumeModel) SetParseError(text string) {
	m.parsing = false
	m.parseErr = text
}

// SetATSBusy marks the score panel as waiting on the backend.
func (m *ResumeModel) SetATSBusy() {
	m.atsBusy = true
	m.atsErr = ""
}

// SetATSResult replaces the score panel's content.
func (m *ResumeModel) SetATSResult(r api.ATSResult) {
	m.atsBusy = false
	m.atsResult = &r
}

// SetATSError notes the failure but keeps the previous result on screen.
func (m *ResumeModel) SetATSError(text string) {
	m.atsBusy = false
	m.atsErr = text
}

// SetFeedbackBusy marks the feedback panel as waiting on the backend.
func (m *ResumeModel) SetFeedbackBusy() {
	m.fbBusy = true
	m.fbErr = ""
}

// SetFeedbackResult replaces the feedback panel's content.
func (m *ResumeModel) SetFeedbackResult(f api.Feedback) {
	m.fbBusy = false
	m.feedback = &f
}

// SetFeedbackError notes the failure but keeps the previous result.
func (m *ResumeModel) SetFeedbackError(text string) {
	m.fbBusy = false
	m.fbErr = text
}

// Update handles messages for the resume view.
func (m ResumeModel) Update(msg tea.Msg) (ResumeModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+u":
			path := strings.TrimSpace(m.path.Value())
			if path == "" {
				m.parseErr = "Enter a resume path first."
				return m, nil
			}
			if !resume.AcceptsFilename(path) {
				m.parseErr = "Only PDF resumes are accepted."
				return m, nil
			}
			if m.parsing {
				return m, nil
			}
			return m, func() tea.Msg { return UploadRequestedMsg{Path: path} }

		case "ctrl+a":
			if m.atsBusy {
				return m, nil
			}
			if !m.hasResume || m.JobDescription() == "" {
				m.atsErr = "Upload a resume and add a job description first."
				return m, nil
			}
			return m, func() tea.Msg { return ATSRequestedMsg{} }

		case "ctrl+f":
			if m.fbBusy {
				return m, nil
			}
			if !m.hasResume || m.JobDescription() == "" {
				m.fbErr = "Upload a resume and add a job description first."
				return m, nil
			}
			return m, func() tea.Msg { return FeedbackRequestedMsg{} }

		case tui.KeyEsc:
			// toggle between the path input and the description editor
			if m.focus == focusPath {
				m.focus = focusJobDesc
				m.path.Blur()
				return m, m.jobDesc.Focus()
			}
			m.focus = focusPath
			m.jobDesc.Blur()
			m.path.Focus()
			return m, textinput.Blink

		case tui.KeyEnter:
			if m.focus == focusPath {
				m.focus = focusJobDesc
				m.path.Blur()
				return m, m.jobDesc.Focus()
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	var cmd tea.Cmd
	if m.focus == focusPath {
		m.path, cmd = m.path.Update(msg)
	} else {
		m.jobDesc, cmd = m.jobDesc.Update(msg)
	}
	return m, cmd
}

// renderGauge draws the score dial as filled segments out of gaugeSegments,
// proportional to score over 100.
func renderGauge(score float64) string {
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	filled := int(score/100*gaugeSegments + 0.5)
	return tui.GaugeFullStyle.Render(strings.Repeat("█", filled)) +
		tui.GaugeEmptyStyle.Render(strings.Repeat("░", gaugeSegments-filled))
}

// renderTags renders up to maxSkillTags skill names in the given style.
func renderTags(skills []string, style lipgloss.Style) string {
	if len(skills) > maxSkillTags {
		skills = skills[:maxSkillTags]
	}
	var tags []string
	for _, s := range skills {
		tags = append(tags, style.Render("["+tui.Sanitize(s)+"]"))
	}
	return strings.Join(tags, " ")
}

func renderList(title string, items []string) string {
	var b strings.Builder
	b.WriteString(tui.TitleStyle.Render(title))
	b.WriteString("\n")
	for _, it := range items {
		b.WriteString("  • " + tui.Sanitize(it) + "\n")
	}
	return b.String()
}

func (m ResumeModel) atsPanel() string {
	var b strings.Builder
	b.WriteString(tui.TitleStyle.Render("ATS score"))
	b.WriteString("\n")
	switch {
	case m.atsBusy:
		b.WriteString(tui.DimStyle.Render("Scoring..."))
		b.WriteString("\n")
	case m.atsResult != nil:
		b.WriteString(fmt.Sprintf("%s %.0f/100\n", renderGauge(m.atsResult.Score), m.atsResult.Score))
		if len(m.atsResult.MatchedSkills) > 0 {
			b.WriteString("matched:  " + renderTags(m.atsResult.MatchedSkills, tui.MatchedTagStyle) + "\n")
		}
		if len(m.atsResult.MissingSkills) > 0 {
			b.WriteString("missing:  " + renderTags(m.atsResult.MissingSkills, tui.MissingTagStyle) + "\n")
		}
	default:
		b.WriteString(tui.DimStyle.Render("Ctrl+A to score the resume against the job description."))
		b.WriteString("\n")
	}
	if m.atsErr != "" {
		b.WriteString(tui.ErrorStyle.Render(tui.Sanitize(m.atsErr)))
		b.WriteString("\n")
	}
	return b.String()
}

func (m ResumeModel) feedbackPanel() string {
	var b strings.Builder
	b.WriteString(tui.TitleStyle.Render("Resume feedback"))
	b.WriteString("\n")
	switch {
	case m.fbBusy:
		b.WriteString(tui.DimStyle.Render("Reviewing..."))
		b.WriteString("\n")
	case m.feedback != nil:
		b.WriteString(renderList("Strengths", m.feedback.Strengths))
		b.WriteString(renderList("Weaknesses", m.feedback.Weaknesses))
		b.WriteString(renderList("Suggestions", m.feedback.Suggestions))
		if m.feedback.Recommendation != "" {
			b.WriteString(tui.SuccessStyle.Render(tui.Sanitize(m.feedback.Recommendation)))
			b.WriteString("\n")
		}
	default:
		b.WriteString(tui.DimStyle.Render("Ctrl+F for a qualitative review."))
		b.WriteString("\n")
	}
	if m.fbErr != "" {
		b.WriteString(tui.ErrorStyle.Render(tui.Sanitize(m.fbErr)))
		b.WriteString("\n")
	}
	return b.String()
}

// View renders the resume view.
func (m ResumeModel) View() string {
	var b strings.Builder

	b.WriteString(tui.TitleStyle.Render("Resume"))
	b.WriteString("\n\n")

	b.WriteString(m.path.View())
	b.WriteString("\n")
	switch {
	case m.parsing:
		b.WriteString(tui.DimStyle.Render("Uploading..."))
	case m.parseErr != "":
		b.WriteString(tui.ErrorStyle.Render(tui.Sanitize(m.parseErr)))
	case m.hasResume:
		b.WriteString(tui.SuccessStyle.Render(fmt.Sprintf("✓ %s (%d characters extracted)", tui.Sanitize(m.resumeName), m.resumeChars)))
	default:
		b.WriteString(tui.DimStyle.Render("No resume uploaded yet."))
	}
	b.WriteString("\n\n")

	b.WriteString(tui.DimStyle.Render("Job description"))
	b.WriteString("\n")
	b.WriteString(m.jobDesc.View())
	b.WriteString("\n\n")

	b.WriteString(m.atsPanel())
	b.WriteString("\n")
	b.WriteString(m.feedbackPanel())

	b.WriteString("\n")
	b.WriteString(tui.DimStyle.Render("Esc: switch field · Ctrl+U: upload · Ctrl+A: ATS score · Ctrl+F: feedback · Tab: next view"))

	boxWidth := maxResumeWidth
	if m.width-4 < boxWidth {
		boxWidth = m.width - 4
	}
	return tui.BoxStyle.Width(boxWidth).Render(b.String())
}
