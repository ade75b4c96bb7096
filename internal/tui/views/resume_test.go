package views

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/prajaltale/HireMind/internal/api"
)

func TestRenderGaugeProportions(t *testing.T) {
	tests := []struct {
		name   string
		score  float64
		filled int
	}{
		{"zero", 0, 0},
		{"quarter", 25, 9},
		{"half", 50, 18},
		{"full", 100, 36},
		{"over full clamps", 140, 36},
		{"negative clamps", -5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := renderGauge(tt.score)
			if n := strings.Count(got, "█"); n != tt.filled {
				t.Errorf("renderGauge(%v) filled = %d, want %d", tt.score, n, tt.filled)
			}
			if n := strings.Count(got, "█") + strings.Count(got, "░"); n != gaugeSegments {
				t.Errorf("renderGauge(%v) total segments = %d, want %d", tt.score, n, gaugeSegments)
			}
		})
	}
}

func TestRenderTagsCapsAtThirty(t *testing.T) {
	var skills []string
	for i := 0; i < 50; i++ {
		skills = append(skills, "skill")
	}

	got := renderTags(skills, tagTestStyle())
	if n := strings.Count(got, "[skill]"); n != maxSkillTags {
		t.Errorf("rendered %d tags, want %d", n, maxSkillTags)
	}
}

func TestRenderTagsSanitizesNames(t *testing.T) {
	got := renderTags([]string{"Go\x1b[31m", "<script>alert(1)</script>"}, tagTestStyle())
	if strings.Contains(got, "\x1b[31m") {
		t.Error("escape sequence survived sanitization")
	}
	if !strings.Contains(got, "<script>alert(1)</script>") {
		t.Error("markup should render as literal text")
	}
}

func TestResumeViewRejectsNonPDFPath(t *testing.T) {
	m := NewResumeModel(100, 40)
	m.path.SetValue("notes.txt")

	m, cmd := m.Update(keyMsg("ctrl+u"))
	if cmd != nil {
		t.Fatal("expected no upload command for a non-PDF path")
	}
	if m.parseErr == "" {
		t.Error("expected an inline error for a non-PDF path")
	}
}

func TestResumeViewATSRequiresInputs(t *testing.T) {
	m := NewResumeModel(100, 40)

	m, cmd := m.Update(keyMsg("ctrl+a"))
	if cmd != nil {
		t.Fatal("expected no score command without a resume")
	}
	if m.atsErr == "" {
		t.Error("expected an inline error without a resume")
	}
}

func TestResumeViewKeepsStaleResultOnError(t *testing.T) {
	m := NewResumeModel(100, 40)
	m.SetATSResult(api.ATSResult{Score: 72})

	m.SetATSBusy()
	m.SetATSError("HTTP 502")

	if m.atsResult == nil || m.atsResult.Score != 72 {
		t.Error("previous result should survive a failed refresh")
	}
	if m.atsBusy {
		t.Error("busy flag should clear on error")
	}
}

func TestResumeViewIndependentPanelBusyFlags(t *testing.T) {
	m := NewResumeModel(100, 40)
	m.hasResume = true
	m.jobDesc.SetValue("build terminals")

	m.SetATSBusy()
	_, cmd := m.Update(keyMsg("ctrl+f"))
	if cmd == nil {
		t.Error("feedback should be requestable while the score panel is busy")
	}
}

func keyMsg(s string) tea.KeyMsg {
	types := map[string]tea.KeyType{
		"ctrl+a": tea.KeyCtrlA,
		"ctrl+e": tea.KeyCtrlE,
		"ctrl+f": tea.KeyCtrlF,
		"ctrl+g": tea.KeyCtrlG,
		"ctrl+n": tea.KeyCtrlN,
		"ctrl+r": tea.KeyCtrlR,
		"ctrl+u": tea.KeyCtrlU,
		"ctrl+x": tea.KeyCtrlX,
		"enter":  tea.KeyEnter,
		"tab":    tea.KeyTab,
		"esc":    tea.KeyEsc,
		"up":     tea.KeyUp,
		"down":   tea.KeyDown,
	}
	if kt, ok := types[s]; ok {
		return tea.KeyMsg{Type: kt}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func tagTestStyle() lipgloss.Style {
	return lipgloss.NewStyle()
}
